// Package ui - Terminal user interface
// Styled CLI output: headers, status lines, tables and boxes.
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Color modes
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Writer is the UI output destination
type Writer struct {
	out       io.Writer
	renderer  *lipgloss.Renderer
	verbosity int

	bold    lipgloss.Style
	dim     lipgloss.Style
	header  lipgloss.Style
	success lipgloss.Style
	warning lipgloss.Style
	failure lipgloss.Style
	info    lipgloss.Style
	box     lipgloss.Style
}

// NewWriter creates a UI writer. colorMode is auto, always or never; auto
// enables colour only when out is a terminal.
func NewWriter(out io.Writer, colorMode string) *Writer {
	if out == nil {
		out = os.Stdout
	}

	r := lipgloss.NewRenderer(out)
	switch colorMode {
	case ColorAlways:
		if r.ColorProfile() == termenv.Ascii {
			r.SetColorProfile(termenv.ANSI256)
		}
	case ColorNever:
		r.SetColorProfile(termenv.Ascii)
	default:
		if !IsTerminal(out) {
			r.SetColorProfile(termenv.Ascii)
		}
	}

	return &Writer{
		out:       out,
		renderer:  r,
		verbosity: 1,
		bold:      r.NewStyle().Bold(true),
		dim:       r.NewStyle().Faint(true),
		header:    r.NewStyle().Bold(true).Foreground(lipgloss.Color("6")),
		success:   r.NewStyle().Foreground(lipgloss.Color("2")),
		warning:   r.NewStyle().Foreground(lipgloss.Color("3")),
		failure:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("1")),
		info:      r.NewStyle().Foreground(lipgloss.Color("4")),
		box:       r.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
	}
}

// IsTerminal reports whether out is a terminal
func IsTerminal(out io.Writer) bool {
	f, ok := out.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// SetVerbosity sets output verbosity (0=quiet, 1=normal, 2=verbose)
func (w *Writer) SetVerbosity(level int) {
	w.verbosity = level
}

// Print writes formatted text
func (w *Writer) Print(format string, args ...interface{}) {
	fmt.Fprintf(w.out, format, args...)
}

// Println writes a line with newline
func (w *Writer) Println(format string, args ...interface{}) {
	w.Print(format+"\n", args...)
}

// Bold renders text in bold
func (w *Writer) Bold(text string) string {
	return w.bold.Render(text)
}

// Dim renders text faint
func (w *Writer) Dim(text string) string {
	return w.dim.Render(text)
}

// Header prints a section header
func (w *Writer) Header(title string) {
	w.Println("")
	w.Println("%s", w.header.Render("━━━ "+title+" ━━━"))
	w.Println("")
}

// SubHeader prints a subsection header
func (w *Writer) SubHeader(title string) {
	w.Println("%s", w.bold.Render("▸ "+title))
}

// Success prints a success message
func (w *Writer) Success(format string, args ...interface{}) {
	w.Println("%s%s", w.success.Render("✓ "), fmt.Sprintf(format, args...))
}

// Warning prints a warning
func (w *Writer) Warning(format string, args ...interface{}) {
	w.Println("%s%s", w.warning.Render("⚠ "), fmt.Sprintf(format, args...))
}

// Error prints an error
func (w *Writer) Error(format string, args ...interface{}) {
	w.Println("%s", w.failure.Render("✗ "+fmt.Sprintf(format, args...)))
}

// Info prints an info message
func (w *Writer) Info(format string, args ...interface{}) {
	if w.verbosity < 1 {
		return
	}
	w.Println("%s%s", w.info.Render("ℹ "), fmt.Sprintf(format, args...))
}

// Debug prints a debug message
func (w *Writer) Debug(format string, args ...interface{}) {
	if w.verbosity < 2 {
		return
	}
	w.Println("%s", w.dim.Render("  "+fmt.Sprintf(format, args...)))
}

// Field prints an aligned "label: value" line
func (w *Writer) Field(label, value string) {
	w.Println("  %s %s", w.bold.Render(fmt.Sprintf("%-16s", label+":")), value)
}

// Box prints lines inside a rounded border
func (w *Writer) Box(lines ...string) {
	w.Println("%s", w.box.Render(strings.Join(lines, "\n")))
}

// Table renders a table
type Table struct {
	w       *Writer
	headers []string
	rows    [][]string
	widths  []int
	right   map[int]bool
}

// NewTable creates a table
func (w *Writer) NewTable(headers ...string) *Table {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	return &Table{
		w:       w,
		headers: headers,
		rows:    [][]string{},
		widths:  widths,
		right:   make(map[int]bool),
	}
}

// AlignRight right-aligns the given column
func (t *Table) AlignRight(col int) *Table {
	t.right[col] = true
	return t
}

// AddRow adds a row to the table
func (t *Table) AddRow(cells ...string) {
	// Pad or truncate cells to match header count
	row := make([]string, len(t.headers))
	for i := range row {
		if i < len(cells) {
			row[i] = cells[i]
		}
		if width := lipgloss.Width(row[i]); width > t.widths[i] {
			t.widths[i] = width
		}
	}
	t.rows = append(t.rows, row)
}

// Render prints the table
func (t *Table) Render() {
	t.w.Println("%s", t.w.bold.Render(t.line(t.headers)))

	sep := make([]string, len(t.widths))
	for i, width := range t.widths {
		sep[i] = strings.Repeat("─", width)
	}
	t.w.Println("%s", strings.Join(sep, "─┼─"))

	for _, row := range t.rows {
		t.w.Println("%s", t.line(row))
	}
}

func (t *Table) line(cells []string) string {
	padded := make([]string, len(cells))
	for i, cell := range cells {
		gap := strings.Repeat(" ", t.widths[i]-lipgloss.Width(cell))
		if t.right[i] {
			padded[i] = gap + cell
		} else {
			padded[i] = cell + gap
		}
	}
	return strings.TrimRight(strings.Join(padded, " │ "), " ")
}
