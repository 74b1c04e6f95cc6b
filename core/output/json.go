package output

import (
	"encoding/json"
	"io"

	"quotepilot/core/batch"
	"quotepilot/core/engine"
	"quotepilot/core/model"
)

// JSONFormatter writes indented JSON
type JSONFormatter struct{}

// NewJSONFormatter creates a JSON formatter
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// Format returns the format type
func (f *JSONFormatter) Format() Format {
	return FormatJSON
}

// RenderQuote writes a quote envelope
func (f *JSONFormatter) RenderQuote(w io.Writer, result engine.Result) error {
	return writeJSON(w, QuoteView(result))
}

// RenderModel writes a model description
func (f *JSONFormatter) RenderModel(w io.Writer, def *model.Definition) error {
	return writeJSON(w, NewModelView(def))
}

// RenderModels writes model summaries
func (f *JSONFormatter) RenderModels(w io.Writer, defs []*model.Definition) error {
	return writeJSON(w, NewModelsView(defs))
}

// RenderBatch writes a batch report
func (f *JSONFormatter) RenderBatch(w io.Writer, report *batch.Report) error {
	return writeJSON(w, NewBatchView(report))
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
