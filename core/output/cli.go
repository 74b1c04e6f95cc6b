package output

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"quotepilot/core/batch"
	"quotepilot/core/engine"
	"quotepilot/core/model"
	"quotepilot/core/ui"
)

// CLIFormatter writes human-readable tables
type CLIFormatter struct {
	color       string
	showDetails bool
	verbose     bool
}

// NewCLIFormatter creates a CLI formatter
func NewCLIFormatter(opts Options) *CLIFormatter {
	return &CLIFormatter{
		color:       opts.Color,
		showDetails: opts.ShowDetails,
		verbose:     opts.Verbose,
	}
}

func (f *CLIFormatter) writer(w io.Writer) *ui.Writer {
	out := ui.NewWriter(w, f.color)
	if f.verbose {
		out.SetVerbosity(2)
	}
	return out
}

// Format returns the format type
func (f *CLIFormatter) Format() Format {
	return FormatCLI
}

// RenderQuote writes the itemized breakdown or the failure details
func (f *CLIFormatter) RenderQuote(w io.Writer, result engine.Result) error {
	out := f.writer(w)
	if !result.OK() {
		renderFailure(out, result.Failure)
		return nil
	}

	q := result.Quote
	out.Header("Quote " + q.PartNumber)
	out.Debug("model %s, %d segments, currency %s", q.Model, len(q.Breakdown), q.Currency)

	if f.showDetails {
		table := out.NewTable("#", "Segment", "Code", "Description", "Adder").AlignRight(0).AlignRight(4)
		for _, line := range q.Breakdown {
			table.AddRow(
				strconv.Itoa(line.Position+1),
				line.Segment,
				line.Code,
				line.Description,
				FormatAdder(line.Adder, q.Currency),
			)
		}
		table.Render()
		out.Println("")
	}

	out.Box(
		fmt.Sprintf("%-12s %20s", "Base price", FormatMoney(q.BasePrice, q.Currency)),
		fmt.Sprintf("%-12s %20s", "Adders", FormatMoney(q.AddersTotal, q.Currency)),
		out.Bold(fmt.Sprintf("%-12s %20s", "Total", FormatMoney(q.TotalPrice, q.Currency))),
	)
	return nil
}

func renderFailure(out *ui.Writer, failure *engine.Failure) {
	out.Error("%s", failure.Message)

	switch failure.Kind {
	case engine.KindUnknownModel:
		if len(failure.Available) > 0 {
			out.Field("Available", strings.Join(failure.Available, ", "))
		}
	default:
		out.Field("Model", failure.Model)
		out.Field("Segment", failure.Segment)
		out.Field("Invalid code", strconv.Quote(failure.InvalidCode))
		if len(failure.Unexpected) > 0 {
			out.Field("Unexpected", strings.Join(failure.Unexpected, model.Delimiter))
		}
		out.Println("")
		out.SubHeader("Valid options")
		table := out.NewTable("Code", "Description")
		for _, opt := range failure.ValidCodes {
			table.AddRow(opt.Code, opt.Description)
		}
		table.Render()
	}
}

// RenderModel writes a model's segments and codes
func (f *CLIFormatter) RenderModel(w io.Writer, def *model.Definition) error {
	out := f.writer(w)
	view := NewModelView(def)

	out.Header(view.Name)
	if view.Description != "" {
		out.Field("Description", view.Description)
	}
	out.Field("Base price", FormatMoney(view.BasePrice, view.Currency))
	if view.DefaultPartNumber != "" {
		out.Field("Default", view.DefaultPartNumber)
	}
	out.Field("Segments", strconv.Itoa(view.SegmentCount))

	for _, seg := range view.Segments {
		out.Println("")
		out.SubHeader(fmt.Sprintf("%d. %s %s", seg.Position+1, seg.Name, out.Dim("("+seg.Key+")")))
		table := out.NewTable("Code", "Description", "Adder").AlignRight(2)
		for _, c := range seg.Codes {
			table.AddRow(c.Code, c.Description, FormatAdder(c.Adder, view.Currency))
		}
		table.Render()
	}
	return nil
}

// RenderModels writes one row per model
func (f *CLIFormatter) RenderModels(w io.Writer, defs []*model.Definition) error {
	out := f.writer(w)
	if len(defs) == 0 {
		out.Warning("no models registered")
		return nil
	}

	table := out.NewTable("Model", "Description", "Segments", "Base price", "Default part number").
		AlignRight(2).AlignRight(3)
	for _, def := range defs {
		view := NewModelSummary(def)
		table.AddRow(
			view.Name,
			view.Description,
			strconv.Itoa(view.SegmentCount),
			FormatMoney(view.BasePrice, view.Currency),
			view.DefaultPartNumber,
		)
	}
	table.Render()
	out.Info("%d models registered", len(defs))
	return nil
}

// RenderBatch writes one row per line followed by totals
func (f *CLIFormatter) RenderBatch(w io.Writer, report *batch.Report) error {
	out := f.writer(w)
	out.Header("Batch Quote")

	table := out.NewTable("Label", "Part number", "Qty", "Unit price", "Extended", "Status").
		AlignRight(2).AlignRight(3).AlignRight(4)
	for _, entry := range report.Entries {
		qty := strconv.FormatInt(entry.Line.Quantity, 10)
		if entry.Result.OK() {
			q := entry.Result.Quote
			table.AddRow(
				entry.Line.Label,
				q.PartNumber,
				qty,
				FormatMoney(q.TotalPrice, q.Currency),
				FormatMoney(entry.ExtendedPrice, q.Currency),
				"ok",
			)
			continue
		}
		table.AddRow(entry.Line.Label, entry.Line.PartNumber, qty, "", "", "failed")
	}
	table.Render()

	if f.showDetails && report.Failed > 0 {
		out.Println("")
		out.SubHeader("Failures")
		for _, entry := range report.Entries {
			if entry.Result.OK() {
				continue
			}
			out.Error("%s: %s", entry.Line.Label, entry.Result.Failure.Message)
		}
	}

	out.Println("")
	lines := []string{
		fmt.Sprintf("%-12s %20d", "Succeeded", report.Succeeded),
		fmt.Sprintf("%-12s %20d", "Failed", report.Failed),
	}
	for _, code := range report.Currencies() {
		lines = append(lines, out.Bold(fmt.Sprintf("%-12s %20s", "Total", FormatMoney(report.Totals[code], code))))
	}
	out.Box(lines...)

	out.Debug("quoted %d lines in %s", len(report.Entries), report.Duration)
	if report.Failed > 0 {
		out.Warning("%d of %d lines failed", report.Failed, len(report.Entries))
	} else {
		out.Success("all %d lines priced", len(report.Entries))
	}
	return nil
}
