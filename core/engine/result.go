package engine

import (
	"github.com/shopspring/decimal"

	"quotepilot/core/model"
	"quotepilot/core/pricing"
)

// Kind classifies a quote failure
type Kind string

const (
	// KindValidation covers invalid codes and token-count mismatches
	KindValidation Kind = "validation"

	// KindUnknownModel means the requested model is not registered
	KindUnknownModel Kind = "unknown_model"
)

// Quote is a successfully priced part number
type Quote struct {
	Model       string          `json:"model" yaml:"model"`
	PartNumber  string          `json:"part_number" yaml:"part_number"`
	Breakdown   []pricing.Line  `json:"breakdown" yaml:"breakdown"`
	BasePrice   decimal.Decimal `json:"base_price" yaml:"base_price"`
	AddersTotal decimal.Decimal `json:"adders_total" yaml:"adders_total"`
	TotalPrice  decimal.Decimal `json:"total_price" yaml:"total_price"`
	Currency    string          `json:"currency" yaml:"currency"`
}

// Failure is a quote that could not be priced. It is returned as data.
type Failure struct {
	Kind        Kind          `json:"kind" yaml:"kind"`
	Model       string        `json:"model" yaml:"model"`
	Message     string        `json:"error" yaml:"error"`
	Segment     string        `json:"segment,omitempty" yaml:"segment,omitempty"`
	Key         string        `json:"key,omitempty" yaml:"key,omitempty"`
	Position    int           `json:"position" yaml:"position"`
	InvalidCode string        `json:"invalid_code" yaml:"invalid_code"`
	ValidCodes  model.CodeSet `json:"valid_codes" yaml:"valid_codes"`
	Unexpected  []string      `json:"unexpected_tokens,omitempty" yaml:"unexpected_tokens,omitempty"`
	Available   []string      `json:"available_models,omitempty" yaml:"available_models,omitempty"`
	Err         error         `json:"-" yaml:"-"`
}

// Error implements the error interface
func (f *Failure) Error() string {
	return f.Message
}

// Unwrap returns the underlying typed error
func (f *Failure) Unwrap() error {
	return f.Err
}

// Result holds exactly one of Quote or Failure
type Result struct {
	Quote   *Quote
	Failure *Failure
}

// OK reports whether the quote succeeded
func (r Result) OK() bool {
	return r.Quote != nil
}

// Err returns the failure as an error, nil on success
func (r Result) Err() error {
	if r.Failure == nil {
		return nil
	}
	return r.Failure
}

func validationFailure(modelName string, ve *model.ValidationError) Result {
	return Result{Failure: &Failure{
		Kind:        KindValidation,
		Model:       modelName,
		Message:     ve.Message,
		Segment:     ve.Segment,
		Key:         ve.Key,
		Position:    ve.Position,
		InvalidCode: ve.InvalidCode,
		ValidCodes:  ve.ValidCodes,
		Unexpected:  ve.Unexpected,
		Err:         ve,
	}}
}

func unknownModelFailure(err error, modelName string, available []string) Result {
	return Result{Failure: &Failure{
		Kind:       KindUnknownModel,
		Model:      modelName,
		Message:    err.Error(),
		ValidCodes: model.CodeSet{},
		Available:  available,
		Err:        err,
	}}
}
