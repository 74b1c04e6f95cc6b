package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quotepilot/internal/config"
	"quotepilot/internal/errors"
)

// run executes the root command with an isolated, missing config file
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cfg := filepath.Join(t.TempDir(), "missing.json")

	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(append([]string{"--config", cfg}, args...))

	err := root.Execute()
	return out.String(), err
}

func TestCommandTree(t *testing.T) {
	root := NewRootCmd()
	for _, name := range []string{"quote", "models", "describe", "batch", "version", "config"} {
		cmd, _, err := root.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, cmd.Name())
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "quotepilot version "+Version+"\n", out)
}

func TestQuoteCommand(t *testing.T) {
	out, err := run(t, "quote", "QPMAG-12-HR-TI-F3-S-3-2-E-03")
	require.NoError(t, err)
	assert.Contains(t, out, "Hard rubber liner")
	assert.Contains(t, out, "USD 3,225.00")
}

func TestQuoteCommandJSON(t *testing.T) {
	out, err := run(t, "quote", "--model", "QPSAH200S", "-f", "json", "QPSAH200S-A-M-G-3-C-3-1-1-C-1-02")
	require.NoError(t, err)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &body), out)
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, "1000", body["total_price"])
}

func TestQuoteCommandFailure(t *testing.T) {
	out, err := run(t, "quote", "-f", "json", "QPSAH200S-Z-M-G-3-C-3-1-1-C-1-02")
	assert.ErrorIs(t, err, ErrQuoteFailed)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &body), out)
	assert.Equal(t, false, body["ok"])
	assert.Equal(t, "Z", body["invalid_code"])
	assert.Equal(t, "Output signal type", body["segment"])
}

func TestQuoteCommandRejectsUnknownFormat(t *testing.T) {
	_, err := run(t, "quote", "-f", "xml", "QPMAG-04-PT-SS-F1-C-1-1-C-00")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrQuoteFailed)
	assert.Contains(t, err.Error(), "unknown output format")
}

func TestModelsCommand(t *testing.T) {
	out, err := run(t, "models", "--format", "json")
	require.NoError(t, err)

	var body struct {
		Models []struct {
			Name string `json:"name"`
		} `json:"models"`
		Count int `json:"count"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &body), out)
	assert.Equal(t, 2, body.Count)
	assert.Equal(t, "QPSAH200S", body.Models[0].Name)
	assert.Equal(t, "QPMAG", body.Models[1].Name)
}

func TestDescribeCommand(t *testing.T) {
	out, err := run(t, "describe", "QPMAG")
	require.NoError(t, err)
	assert.Contains(t, out, "Liner material")
	assert.Contains(t, out, "PTFE liner")

	out, err = run(t, "describe", "qpmag")
	require.NoError(t, err)
	assert.Contains(t, out, "Liner material")

	_, err = run(t, "describe", "NOPE")
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeNotFound))
	assert.Contains(t, err.Error(), "unknown model 'NOPE'")
}

func TestVerboseQuoteShowsDebugLines(t *testing.T) {
	out, err := run(t, "quote", "-f", "cli", "QPMAG-04-PT-SS-F1-C-1-1-C-00")
	require.NoError(t, err)
	assert.NotContains(t, out, "model QPMAG, 9 segments, currency USD")

	out, err = run(t, "-v", "quote", "-f", "cli", "QPMAG-04-PT-SS-F1-C-1-1-C-00")
	require.NoError(t, err)
	assert.Contains(t, out, "model QPMAG, 9 segments, currency USD")
}

func TestBatchCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quotes.hcl")
	require.NoError(t, os.WriteFile(path, []byte(`
quote "dp" {
  part_number = "QPSAH200S-A-M-G-3-C-3-1-1-C-1-02"
  quantity    = 2
}

quote "mag" {
  model       = "QPMAG"
  part_number = "QPMAG-12-HR-TI-F3-S-3-2-E-03"
}
`), 0644))

	out, err := run(t, "batch", "--workers", "2", "-f", "json", path)
	require.NoError(t, err)

	var body struct {
		Succeeded int               `json:"succeeded"`
		Failed    int               `json:"failed"`
		Totals    map[string]string `json:"totals"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &body), out)
	assert.Equal(t, 2, body.Succeeded)
	assert.Equal(t, 0, body.Failed)
	assert.Equal(t, "5225", body.Totals["USD"])
}

func TestBatchCommandFailsOnRejectedLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quotes.hcl")
	require.NoError(t, os.WriteFile(path, []byte(`
quote "bad" {
  part_number = "QPMAG-04-ZZ-SS-F1-C-1-1-C-00"
}
`), 0644))

	_, err := run(t, "batch", path)
	assert.ErrorIs(t, err, ErrQuoteFailed)
}

func TestBatchCommandMissingFile(t *testing.T) {
	_, err := run(t, "batch", filepath.Join(t.TempDir(), "nope.hcl"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrQuoteFailed)
}

func TestConfigCommand(t *testing.T) {
	out, err := run(t, "config")
	require.NoError(t, err)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &body), out)
	output := body["output"].(map[string]interface{})
	assert.Equal(t, "cli", output["default_format"])
	assert.Equal(t, float64(4), body["batch"].(map[string]interface{})["workers"])
}

func TestConfigCommandSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "saved", "quotepilot.json")

	out, err := run(t, "config", "--save", path)
	require.NoError(t, err)
	assert.Contains(t, out, "default_format")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "cli", cfg.Output.DefaultFormat)
	assert.Equal(t, 4, cfg.Batch.Workers)
}
