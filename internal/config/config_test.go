package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quotepilot/internal/errors"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
}

func TestLoadReadsJSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quotepilot.json")
	content := `{
  "server": {"addr": ":9090", "read_timeout": "3s"},
  "output": {"default_format": "yaml"},
  "batch": {"workers": 8},
  "logging": {"level": "debug"}
}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, 3*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 15*time.Second, cfg.Server.WriteTimeout)
	assert.Equal(t, "yaml", cfg.Output.DefaultFormat)
	assert.Equal(t, 8, cfg.Batch.Workers)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
}

func TestEnvironmentOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quotepilot.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"server": {"addr": ":9090"}}`), 0644))

	t.Setenv("QUOTEPILOT_SERVER_ADDR", ":7070")
	t.Setenv("QUOTEPILOT_BATCH_WORKERS", "2")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":7070", cfg.Server.Addr)
	assert.Equal(t, 2, cfg.Batch.Workers)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quotepilot.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"output": {"default_format": "html"}}`), 0644))

	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeConfig))
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "quotepilot.json")

	cfg := Default()
	cfg.Server.Addr = ":6060"
	cfg.Batch.Workers = 3
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
