// Package engine provides the quote orchestrator.
// CLI, HTTP and batch callers are thin wrappers around this engine.
package engine

import (
	stderrors "errors"
	"sort"
	"strings"

	"go.uber.org/zap"

	"quotepilot/core/model"
	"quotepilot/core/parser"
	"quotepilot/core/pricing"
	"quotepilot/core/registry"
	"quotepilot/core/validator"
	"quotepilot/internal/errors"
)

// Engine quotes part numbers against a sealed catalog.
// It holds no mutable state and is safe for concurrent use.
type Engine struct {
	catalog *registry.Catalog
	logger  *zap.Logger
}

// Option configures an Engine
type Option func(*Engine)

// WithLogger sets the logger used for quote tracing
func WithLogger(logger *zap.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// New creates an engine over catalog
func New(catalog *registry.Catalog, opts ...Option) *Engine {
	if catalog == nil {
		catalog = registry.Empty()
	}
	e := &Engine{
		catalog: catalog,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Catalog returns the catalog the engine quotes against
func (e *Engine) Catalog() *registry.Catalog {
	return e.catalog
}

// ListModels returns registered model names in registration order
func (e *Engine) ListModels() []string {
	return e.catalog.ListModels()
}

// Describe returns a copy of the named model's definition. The name is
// matched ignoring case.
func (e *Engine) Describe(modelName string) (*model.Definition, error) {
	if def, ok := e.catalog.Lookup(modelName); ok {
		return def.Clone(), nil
	}
	_, err := e.catalog.Get(modelName)
	return nil, err
}

// Quote parses, validates and prices raw against the named model
func (e *Engine) Quote(modelName, raw string) Result {
	def, err := e.catalog.Get(modelName)
	if err != nil {
		var available []string
		var unknown *registry.UnknownModelError
		if stderrors.As(err, &unknown) {
			available = unknown.Available
		}
		e.logger.Debug("quote rejected", zap.String("model", modelName), zap.Error(err))
		return unknownModelFailure(err, modelName, available)
	}

	result := quoteDefinition(def, raw)
	if result.OK() {
		e.logger.Debug("quote priced",
			zap.String("model", def.Name),
			zap.String("part_number", result.Quote.PartNumber),
			zap.String("total", result.Quote.TotalPrice.String()),
		)
	} else {
		e.logger.Debug("quote failed",
			zap.String("model", def.Name),
			zap.String("segment", result.Failure.Segment),
			zap.String("invalid_code", result.Failure.InvalidCode),
		)
	}
	return result
}

// QuotePartNumber infers the model from the leading token(s) of raw.
// The longest matching registered name wins.
func (e *Engine) QuotePartNumber(raw string) Result {
	modelName, ok := e.InferModel(raw)
	if !ok {
		name := ""
		if tokens := parser.Tokenize(raw); len(tokens) > 0 {
			name = tokens[0]
		}
		return e.Quote(name, raw)
	}
	return e.Quote(modelName, raw)
}

// InferModel finds the registered model whose name prefixes raw
func (e *Engine) InferModel(raw string) (string, bool) {
	tokens := parser.Tokenize(raw)
	names := e.catalog.ListModels()
	sort.SliceStable(names, func(i, j int) bool { return len(names[i]) > len(names[j]) })

	for _, name := range names {
		if len(parser.StripPrefix(tokens, name)) < len(tokens) {
			return name, true
		}
	}
	return "", false
}

// CheckDefault verifies a definition's default part number quotes
// successfully. Definitions without a default pass.
func CheckDefault(def *model.Definition) error {
	if def.DefaultPartNumber == "" {
		return nil
	}
	result := quoteDefinition(def, def.DefaultPartNumber)
	if result.OK() {
		return nil
	}
	return errors.Wrapf(errors.TypeDefinition, result.Failure,
		"default part number %q is not valid", def.DefaultPartNumber).
		WithContext("model", def.Name).
		WithContext("segment", result.Failure.Segment).
		WithContext("code", result.Failure.InvalidCode)
}

// NewBuilder returns a registry builder that rejects definitions whose
// default part number does not quote
func NewBuilder() *registry.Builder {
	return registry.NewBuilder().WithDefaultChecker(CheckDefault)
}

func quoteDefinition(def *model.Definition, raw string) Result {
	assignment, err := parser.Parse(def, raw)
	if err != nil {
		return failureFrom(def.Name, err)
	}

	selections, err := validator.Validate(assignment)
	if err != nil {
		return failureFrom(def.Name, err)
	}

	breakdown := pricing.Price(def, selections)
	return Result{Quote: &Quote{
		Model:       def.Name,
		PartNumber:  Normalize(def.Name, assignment.Values()),
		Breakdown:   breakdown.Lines,
		BasePrice:   breakdown.BasePrice,
		AddersTotal: breakdown.AddersTotal,
		TotalPrice:  breakdown.Total,
		Currency:    breakdown.Currency,
	}}
}

func failureFrom(modelName string, err error) Result {
	var ve *model.ValidationError
	if stderrors.As(err, &ve) {
		return validationFailure(modelName, ve)
	}
	// parser and validator only return ValidationError
	return Result{Failure: &Failure{
		Kind:       KindValidation,
		Model:      modelName,
		Message:    err.Error(),
		ValidCodes: model.CodeSet{},
		Err:        err,
	}}
}

// Normalize renders the canonical part number for tokens
func Normalize(modelName string, tokens []string) string {
	return modelName + model.Delimiter + strings.Join(tokens, model.Delimiter)
}
