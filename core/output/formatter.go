// Package output provides output formatting interfaces.
// This package produces human and machine-readable outputs.
package output

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"quotepilot/core/batch"
	"quotepilot/core/engine"
	"quotepilot/core/model"
	"quotepilot/internal/errors"
)

// Format represents output format type
type Format string

const (
	// FormatCLI is a human-readable CLI table
	FormatCLI Format = "cli"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"

	// FormatYAML is machine-readable YAML
	FormatYAML Format = "yaml"
)

// Formatter produces output in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// RenderQuote writes a quote success or failure
	RenderQuote(w io.Writer, result engine.Result) error

	// RenderModel writes one model's full description
	RenderModel(w io.Writer, def *model.Definition) error

	// RenderModels writes a summary of every registered model
	RenderModels(w io.Writer, defs []*model.Definition) error

	// RenderBatch writes a batch report
	RenderBatch(w io.Writer, report *batch.Report) error
}

// Options configures formatter construction
type Options struct {
	// Color is auto, always or never (CLI only)
	Color string

	// ShowDetails includes per-segment breakdowns (CLI only)
	ShowDetails bool

	// Verbose adds debug lines (CLI only)
	Verbose bool
}

// Registry maps formats to formatter constructors
type Registry struct {
	constructors map[Format]func(Options) Formatter
}

// NewRegistry creates a registry holding the built-in formatters
func NewRegistry() *Registry {
	r := &Registry{constructors: make(map[Format]func(Options) Formatter)}
	r.Register(FormatCLI, func(opts Options) Formatter { return NewCLIFormatter(opts) })
	r.Register(FormatJSON, func(Options) Formatter { return NewJSONFormatter() })
	r.Register(FormatYAML, func(Options) Formatter { return NewYAMLFormatter() })
	return r
}

// Register adds or replaces a formatter constructor
func (r *Registry) Register(format Format, constructor func(Options) Formatter) {
	r.constructors[format] = constructor
}

// Formats returns the registered formats, sorted
func (r *Registry) Formats() []Format {
	formats := make([]Format, 0, len(r.constructors))
	for f := range r.constructors {
		formats = append(formats, f)
	}
	sort.Slice(formats, func(i, j int) bool { return formats[i] < formats[j] })
	return formats
}

// Get builds the formatter for format
func (r *Registry) Get(format Format, opts Options) (Formatter, error) {
	constructor, ok := r.constructors[format]
	if !ok {
		names := make([]string, 0, len(r.constructors))
		for _, f := range r.Formats() {
			names = append(names, string(f))
		}
		return nil, errors.Input(fmt.Sprintf("unknown output format %q (valid: %s)", format, strings.Join(names, ", "))).
			WithContext("format", string(format))
	}
	return constructor(opts), nil
}

var defaultRegistry = NewRegistry()

// New builds a built-in formatter by name
func New(format string, opts Options) (Formatter, error) {
	return defaultRegistry.Get(Format(strings.ToLower(format)), opts)
}
