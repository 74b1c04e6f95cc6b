// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"quotepilot/internal/errors"
	"quotepilot/internal/logging"
)

// EnvPrefix is the prefix for environment overrides (QUOTEPILOT_SERVER_ADDR, ...)
const EnvPrefix = "QUOTEPILOT"

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version" mapstructure:"version"`

	// Server contains HTTP server configuration
	Server ServerConfig `json:"server" mapstructure:"server"`

	// Output contains output configuration
	Output OutputConfig `json:"output" mapstructure:"output"`

	// Batch contains batch quoting configuration
	Batch BatchConfig `json:"batch" mapstructure:"batch"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging" mapstructure:"logging"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	// Addr is the listen address
	Addr string `json:"addr" mapstructure:"addr"`

	// UIPath is a directory of static UI files served under /ui (empty disables)
	UIPath string `json:"ui_path" mapstructure:"ui_path"`

	// ReadTimeout bounds reading a request
	ReadTimeout time.Duration `json:"read_timeout" mapstructure:"read_timeout"`

	// WriteTimeout bounds writing a response
	WriteTimeout time.Duration `json:"write_timeout" mapstructure:"write_timeout"`

	// Mode is the gin mode (debug, release, test)
	Mode string `json:"mode" mapstructure:"mode"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// DefaultFormat is the default output format
	DefaultFormat string `json:"default_format" mapstructure:"default_format"`

	// ShowDetails shows the per-segment breakdown
	ShowDetails bool `json:"show_details" mapstructure:"show_details"`

	// Color is auto, always or never
	Color string `json:"color" mapstructure:"color"`
}

// BatchConfig contains batch quoting settings
type BatchConfig struct {
	// Workers is the number of lines quoted concurrently
	Workers int `json:"workers" mapstructure:"workers"`
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Version: "1.0",
		Server: ServerConfig{
			Addr:         ":8080",
			UIPath:       "",
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			Mode:         "release",
		},
		Output: OutputConfig{
			DefaultFormat: "cli",
			ShowDetails:   true,
			Color:         "auto",
		},
		Batch: BatchConfig{
			Workers: 4,
		},
		Logging: logging.DefaultConfig(),
	}
}

// DefaultPath returns $HOME/.quotepilot.json
func DefaultPath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".quotepilot.json")
}

// Load loads configuration from a file, layering environment overrides on top.
// A missing file yields the defaults (still subject to environment overrides).
func Load(path string) (*Config, error) {
	v := newViper()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			v.SetConfigFile(path)
			if err := v.ReadInConfig(); err != nil {
				return nil, errors.Config("failed to read config file "+path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, errors.Config("failed to stat config file "+path, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.Config("failed to decode config", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newViper() *viper.Viper {
	v := viper.New()

	d := Default()
	v.SetDefault("version", d.Version)
	v.SetDefault("server.addr", d.Server.Addr)
	v.SetDefault("server.ui_path", d.Server.UIPath)
	v.SetDefault("server.read_timeout", d.Server.ReadTimeout)
	v.SetDefault("server.write_timeout", d.Server.WriteTimeout)
	v.SetDefault("server.mode", d.Server.Mode)
	v.SetDefault("output.default_format", d.Output.DefaultFormat)
	v.SetDefault("output.show_details", d.Output.ShowDetails)
	v.SetDefault("output.color", d.Output.Color)
	v.SetDefault("batch.workers", d.Batch.Workers)
	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.format", d.Logging.Format)
	v.SetDefault("logging.output", d.Logging.Output)
	v.SetDefault("logging.development", d.Logging.Development)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Validate checks values that would otherwise fail late
func (c *Config) Validate() error {
	switch c.Output.DefaultFormat {
	case "cli", "json", "yaml":
	default:
		return errors.Newf(errors.TypeConfig, "unsupported output format: %s", c.Output.DefaultFormat)
	}
	switch c.Output.Color {
	case "auto", "always", "never":
	default:
		return errors.Newf(errors.TypeConfig, "unsupported color mode: %s", c.Output.Color)
	}
	if c.Batch.Workers < 1 {
		return errors.Newf(errors.TypeConfig, "batch.workers must be at least 1, got %d", c.Batch.Workers)
	}
	return nil
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
