package output

import (
	"github.com/shopspring/decimal"

	"quotepilot/core/batch"
	"quotepilot/core/engine"
	"quotepilot/core/model"
)

// QuoteSuccess is the serialized form of a priced quote
type QuoteSuccess struct {
	OK           bool `json:"ok" yaml:"ok"`
	engine.Quote `yaml:",inline"`
}

// QuoteFailure is the serialized form of a failed quote
type QuoteFailure struct {
	OK             bool `json:"ok" yaml:"ok"`
	engine.Failure `yaml:",inline"`
}

// QuoteView returns the envelope for result
func QuoteView(result engine.Result) interface{} {
	if result.OK() {
		return QuoteSuccess{OK: true, Quote: *result.Quote}
	}
	return QuoteFailure{OK: false, Failure: *result.Failure}
}

// CodeView is one code of a segment with its adder
type CodeView struct {
	Code        string          `json:"code" yaml:"code"`
	Description string          `json:"description" yaml:"description"`
	Adder       decimal.Decimal `json:"adder" yaml:"adder"`
}

// SegmentView describes one segment of a model
type SegmentView struct {
	Position int        `json:"position" yaml:"position"`
	Name     string     `json:"name" yaml:"name"`
	Key      string     `json:"key" yaml:"key"`
	Codes    []CodeView `json:"codes" yaml:"codes"`
}

// ModelView describes a model for display
type ModelView struct {
	Name              string          `json:"name" yaml:"name"`
	Description       string          `json:"description,omitempty" yaml:"description,omitempty"`
	BasePrice         decimal.Decimal `json:"base_price" yaml:"base_price"`
	Currency          string          `json:"currency" yaml:"currency"`
	DefaultPartNumber string          `json:"default_part_number,omitempty" yaml:"default_part_number,omitempty"`
	SegmentCount      int             `json:"segment_count" yaml:"segment_count"`
	Segments          []SegmentView   `json:"segments,omitempty" yaml:"segments,omitempty"`
}

// NewModelView builds the full description of def
func NewModelView(def *model.Definition) ModelView {
	view := NewModelSummary(def)
	view.Segments = make([]SegmentView, len(def.Segments))
	for i := range def.Segments {
		seg := &def.Segments[i]
		codes := make([]CodeView, len(seg.Codes))
		for j, opt := range seg.Codes {
			codes[j] = CodeView{Code: opt.Code, Description: opt.Description, Adder: seg.Adder(opt.Code)}
		}
		view.Segments[i] = SegmentView{
			Position: seg.Position,
			Name:     seg.Name,
			Key:      seg.Key,
			Codes:    codes,
		}
	}
	return view
}

// NewModelSummary builds a description of def without segments
func NewModelSummary(def *model.Definition) ModelView {
	return ModelView{
		Name:              def.Name,
		Description:       def.Description,
		BasePrice:         def.BasePrice,
		Currency:          def.CurrencyCode(),
		DefaultPartNumber: def.DefaultPartNumber,
		SegmentCount:      def.SegmentCount(),
	}
}

// ModelsView lists model summaries
type ModelsView struct {
	Models []ModelView `json:"models" yaml:"models"`
	Count  int         `json:"count" yaml:"count"`
}

// NewModelsView summarizes defs in order
func NewModelsView(defs []*model.Definition) ModelsView {
	view := ModelsView{Models: make([]ModelView, len(defs)), Count: len(defs)}
	for i, def := range defs {
		view.Models[i] = NewModelSummary(def)
	}
	return view
}

// BatchEntryView is one line of a batch report
type BatchEntryView struct {
	Label         string           `json:"label" yaml:"label"`
	Model         string           `json:"model,omitempty" yaml:"model,omitempty"`
	PartNumber    string           `json:"part_number" yaml:"part_number"`
	Quantity      int64            `json:"quantity" yaml:"quantity"`
	OK            bool             `json:"ok" yaml:"ok"`
	Quote         *engine.Quote    `json:"quote,omitempty" yaml:"quote,omitempty"`
	Failure       *engine.Failure  `json:"failure,omitempty" yaml:"failure,omitempty"`
	ExtendedPrice *decimal.Decimal `json:"extended_price,omitempty" yaml:"extended_price,omitempty"`
}

// BatchView is the serialized form of a batch report
type BatchView struct {
	Entries   []BatchEntryView           `json:"entries" yaml:"entries"`
	Succeeded int                        `json:"succeeded" yaml:"succeeded"`
	Failed    int                        `json:"failed" yaml:"failed"`
	Totals    map[string]decimal.Decimal `json:"totals" yaml:"totals"`
	Duration  string                     `json:"duration" yaml:"duration"`
}

// NewBatchView builds the serialized form of report
func NewBatchView(report *batch.Report) BatchView {
	view := BatchView{
		Entries:   make([]BatchEntryView, len(report.Entries)),
		Succeeded: report.Succeeded,
		Failed:    report.Failed,
		Totals:    report.Totals,
		Duration:  report.Duration.String(),
	}
	for i, entry := range report.Entries {
		ev := BatchEntryView{
			Label:      entry.Line.Label,
			Model:      entry.Line.Model,
			PartNumber: entry.Line.PartNumber,
			Quantity:   entry.Line.Quantity,
			OK:         entry.Result.OK(),
			Quote:      entry.Result.Quote,
			Failure:    entry.Result.Failure,
		}
		if ev.OK {
			extended := entry.ExtendedPrice
			ev.ExtendedPrice = &extended
			ev.Model = entry.Result.Quote.Model
		}
		view.Entries[i] = ev
	}
	return view
}
