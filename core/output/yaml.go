package output

import (
	"io"

	"gopkg.in/yaml.v3"

	"quotepilot/core/batch"
	"quotepilot/core/engine"
	"quotepilot/core/model"
)

// YAMLFormatter writes YAML documents
type YAMLFormatter struct{}

// NewYAMLFormatter creates a YAML formatter
func NewYAMLFormatter() *YAMLFormatter {
	return &YAMLFormatter{}
}

// Format returns the format type
func (f *YAMLFormatter) Format() Format {
	return FormatYAML
}

// RenderQuote writes a quote envelope
func (f *YAMLFormatter) RenderQuote(w io.Writer, result engine.Result) error {
	return writeYAML(w, QuoteView(result))
}

// RenderModel writes a model description
func (f *YAMLFormatter) RenderModel(w io.Writer, def *model.Definition) error {
	return writeYAML(w, NewModelView(def))
}

// RenderModels writes model summaries
func (f *YAMLFormatter) RenderModels(w io.Writer, defs []*model.Definition) error {
	return writeYAML(w, NewModelsView(defs))
}

// RenderBatch writes a batch report
func (f *YAMLFormatter) RenderBatch(w io.Writer, report *batch.Report) error {
	return writeYAML(w, NewBatchView(report))
}

func writeYAML(w io.Writer, v interface{}) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
