package output

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"quotepilot/core/batch"
	"quotepilot/core/engine"
	"quotepilot/core/model"
	"quotepilot/models"
)

func testEngine(t *testing.T) *engine.Engine {
	t.Helper()
	return engine.New(models.MustBootstrap())
}

func TestNewFormatter(t *testing.T) {
	for _, name := range []string{"cli", "json", "yaml", "JSON"} {
		f, err := New(name, Options{})
		require.NoError(t, err)
		assert.NotNil(t, f)
	}

	_, err := New("xml", Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "valid: cli, json, yaml")
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "USD 1,000.00", FormatMoney(decimal.NewFromInt(1000), "USD"))
	assert.Equal(t, "USD 3,225.00", FormatMoney(decimal.NewFromInt(3225), "USD"))
	assert.Equal(t, "USD 0.01", FormatMoney(decimal.RequireFromString("0.005"), "USD"))
	assert.Equal(t, "JPY 1,000", FormatMoney(decimal.RequireFromString("999.6"), "JPY"))
	assert.Equal(t, "-50.00", FormatAdder(decimal.NewFromInt(-50), "USD"))
	assert.Equal(t, "+150.00", FormatAdder(decimal.NewFromInt(150), "USD"))
	assert.Equal(t, "-", FormatAdder(decimal.Zero, "USD"))
}

func TestFormatMoneyKeepsExactDigits(t *testing.T) {
	tests := []struct {
		amount string
		code   string
		want   string
	}{
		{"12345678901234567.89", "USD", "USD 12,345,678,901,234,567.89"},
		{"9007199254740993", "USD", "USD 9,007,199,254,740,993.00"},
		{"-1234.5", "USD", "USD -1,234.50"},
		{"-0.004", "USD", "USD 0.00"},
		{"0.125", "EUR", "EUR 0.13"},
		{"123456789012345678901234.5", "USD", "USD 123456789012345678901234.50"},
	}

	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatMoney(decimal.RequireFromString(tt.amount), tt.code))
		})
	}
}

func TestJSONQuoteSuccess(t *testing.T) {
	r := testEngine(t).Quote("QPSAH200S", "QPSAH200S-B-M-G-3-C-3-1-1-C-1-02")

	var buf bytes.Buffer
	require.NoError(t, NewJSONFormatter().RenderQuote(&buf, r))

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, true, decoded["ok"])
	assert.Equal(t, "QPSAH200S-B-M-G-3-C-3-1-1-C-1-02", decoded["part_number"])
	assert.Equal(t, "1150", decoded["total_price"])
	assert.Len(t, decoded["breakdown"], 11)
}

func TestJSONQuoteFailureKeepsCodeOrder(t *testing.T) {
	r := testEngine(t).Quote("QPSAH200S", "QPSAH200S-A-Q-G-3-C-3-1-1-C-1-02")

	var buf bytes.Buffer
	require.NoError(t, NewJSONFormatter().RenderQuote(&buf, r))

	out := buf.String()
	assert.Contains(t, out, `"ok": false`)
	assert.Contains(t, out, `"segment": "Span range"`)
	assert.Contains(t, out, `"invalid_code": "Q"`)
	assert.Less(t, bytes.Index(buf.Bytes(), []byte(`"D":`)), bytes.Index(buf.Bytes(), []byte(`"M":`)))
}

func TestYAMLQuoteFailure(t *testing.T) {
	r := testEngine(t).Quote("QPMAG", "QPMAG-04-XX-SS-F1-C-1-1-C-00")

	var buf bytes.Buffer
	require.NoError(t, NewYAMLFormatter().RenderQuote(&buf, r))

	var decoded struct {
		OK          bool              `yaml:"ok"`
		Segment     string            `yaml:"segment"`
		InvalidCode string            `yaml:"invalid_code"`
		ValidCodes  map[string]string `yaml:"valid_codes"`
	}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.False(t, decoded.OK)
	assert.Equal(t, "Liner material", decoded.Segment)
	assert.Equal(t, "XX", decoded.InvalidCode)
	assert.Equal(t, "PTFE liner", decoded.ValidCodes["PT"])
	assert.Len(t, decoded.ValidCodes, 4)
}

func TestCLIQuote(t *testing.T) {
	r := testEngine(t).Quote("QPMAG", "QPMAG-12-HR-TI-F3-S-3-2-E-03")

	var buf bytes.Buffer
	require.NoError(t, NewCLIFormatter(Options{Color: "never", ShowDetails: true}).RenderQuote(&buf, r))

	out := buf.String()
	assert.Contains(t, out, "Quote QPMAG-12-HR-TI-F3-S-3-2-E-03")
	assert.Contains(t, out, "Hard rubber liner")
	assert.Contains(t, out, "-50.00")
	assert.Contains(t, out, "USD 3,225.00")
	assert.NotContains(t, out, "\x1b[")
}

func TestCLIQuoteFailure(t *testing.T) {
	r := testEngine(t).Quote("QPSAH200S", "QPSAH200S-Z-M-G-3-C-3-1-1-C-1-02")

	var buf bytes.Buffer
	require.NoError(t, NewCLIFormatter(Options{Color: "never"}).RenderQuote(&buf, r))

	out := buf.String()
	assert.Contains(t, out, "Invalid code [Z] for segment [Output signal type]")
	assert.Contains(t, out, "Profibus digital communication")
	assert.Contains(t, out, `"Z"`)
}

func TestCLIUnknownModel(t *testing.T) {
	r := testEngine(t).Quote("QPX", "QPX-1")

	var buf bytes.Buffer
	require.NoError(t, NewCLIFormatter(Options{Color: "never"}).RenderQuote(&buf, r))
	assert.Contains(t, buf.String(), "QPMAG, QPSAH200S")
}

func TestModelViews(t *testing.T) {
	e := testEngine(t)
	def, err := e.Describe("QPMAG")
	require.NoError(t, err)

	view := NewModelView(def)
	assert.Equal(t, 9, view.SegmentCount)
	require.Len(t, view.Segments, 9)
	assert.Equal(t, "Liner material", view.Segments[1].Name)
	assert.Equal(t, "-50", view.Segments[1].Codes[1].Adder.String())

	var buf bytes.Buffer
	require.NoError(t, NewCLIFormatter(Options{Color: "never"}).RenderModel(&buf, def))
	assert.Contains(t, buf.String(), "2. Liner material (liner_material)")

	defs := []*model.Definition{def}
	buf.Reset()
	require.NoError(t, NewJSONFormatter().RenderModels(&buf, defs))
	var listed ModelsView
	require.NoError(t, json.Unmarshal(buf.Bytes(), &listed))
	assert.Equal(t, 1, listed.Count)
	assert.Equal(t, "QPMAG", listed.Models[0].Name)
	assert.Empty(t, listed.Models[0].Segments)
}

func TestBatchRendering(t *testing.T) {
	lines := []batch.Line{
		{Label: "a", PartNumber: "QPMAG-04-PT-SS-F1-C-1-1-C-00", Quantity: 2},
		{Label: "b", Model: "QPMAG", PartNumber: "QPMAG-99-PT-SS-F1-C-1-1-C-00", Quantity: 1},
	}
	report, err := batch.NewRunner(testEngine(t), 2, nil).Run(context.Background(), lines)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, NewCLIFormatter(Options{Color: "never", ShowDetails: true}).RenderBatch(&buf, report))
	out := buf.String()
	assert.Contains(t, out, "USD 3,600.00")
	assert.Contains(t, out, "1 of 2 lines failed")
	assert.Contains(t, out, "b: Invalid code [99] for segment [Line size]")

	buf.Reset()
	require.NoError(t, NewJSONFormatter().RenderBatch(&buf, report))
	var view struct {
		Entries []struct {
			Label         string `json:"label"`
			OK            bool   `json:"ok"`
			ExtendedPrice string `json:"extended_price"`
		} `json:"entries"`
		Totals map[string]string `json:"totals"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &view))
	require.Len(t, view.Entries, 2)
	assert.Equal(t, "3600", view.Entries[0].ExtendedPrice)
	assert.False(t, view.Entries[1].OK)
	assert.Equal(t, "3600", view.Totals["USD"])
}

func TestCLIVerboseAddsDebugLines(t *testing.T) {
	r := testEngine(t).Quote("QPMAG", "QPMAG-04-PT-SS-F1-C-1-1-C-00")

	var quiet, verbose bytes.Buffer
	require.NoError(t, NewCLIFormatter(Options{Color: "never"}).RenderQuote(&quiet, r))
	require.NoError(t, NewCLIFormatter(Options{Color: "never", Verbose: true}).RenderQuote(&verbose, r))

	assert.NotContains(t, quiet.String(), "model QPMAG, 9 segments, currency USD")
	assert.Contains(t, verbose.String(), "model QPMAG, 9 segments, currency USD")
}

func TestCLIModelsSummary(t *testing.T) {
	e := testEngine(t)
	var defs []*model.Definition
	for _, name := range e.ListModels() {
		def, err := e.Describe(name)
		require.NoError(t, err)
		defs = append(defs, def)
	}

	var buf bytes.Buffer
	require.NoError(t, NewCLIFormatter(Options{Color: "never"}).RenderModels(&buf, defs))
	assert.Contains(t, buf.String(), "QPSAH200S-A-M-G-3-C-3-1-1-C-1-02")
	assert.Contains(t, buf.String(), "2 models registered")
}
