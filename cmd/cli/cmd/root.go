// Package cmd provides the CLI commands for quotepilot.
package cmd

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"quotepilot/core/engine"
	"quotepilot/core/output"
	"quotepilot/internal/config"
	"quotepilot/internal/logging"
	"quotepilot/models"
)

// Version is the CLI version, overridden at link time
var Version = "0.1.0"

// ErrQuoteFailed reports that a quote or batch line was rejected after the
// failure was already rendered
var ErrQuoteFailed = stderrors.New("quote failed")

type rootOptions struct {
	cfgFile string
	verbose bool

	engine *engine.Engine
}

// NewRootCmd builds the command tree
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "quotepilot",
		Short: "Validate and price configurable part numbers",
		Long: `quotepilot parses dash-delimited part numbers, validates every segment
against the registered product model and prices the configuration.

Examples:
  quotepilot quote QPSAH200S-A-M-G-3-C-3-1-1-C-1-02
  quotepilot quote --format json QPMAG-04-PT-SS-F1-C-1-1-C-00
  quotepilot describe QPMAG
  quotepilot batch ./quotes.hcl`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.init()
		},
	}

	cmd.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "config file (default is $HOME/.quotepilot.json)")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose output")

	cmd.AddCommand(newQuoteCmd(opts))
	cmd.AddCommand(newModelsCmd(opts))
	cmd.AddCommand(newDescribeCmd(opts))
	cmd.AddCommand(newBatchCmd(opts))
	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newConfigCmd())

	return cmd
}

// Execute runs the CLI
func Execute() error {
	return NewRootCmd().Execute()
}

func (o *rootOptions) init() error {
	path := o.cfgFile
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	if o.verbose {
		cfg.Logging.Level = "debug"
	}
	config.Set(cfg)

	if err := logging.Initialize(cfg.Logging); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	logging.Debug("configuration loaded",
		zap.String("path", path),
		zap.String("format", cfg.Output.DefaultFormat),
	)

	catalog, err := models.Bootstrap(logging.Logger)
	if err != nil {
		return err
	}
	o.engine = engine.New(catalog, engine.WithLogger(logging.Logger))
	return nil
}

// formatter resolves the output format, falling back to the configured default
func (o *rootOptions) formatter(format string, showDetails bool) (output.Formatter, error) {
	cfg := config.Get()
	if format == "" {
		format = cfg.Output.DefaultFormat
	}
	return output.New(format, output.Options{
		Color:       cfg.Output.Color,
		ShowDetails: showDetails,
		Verbose:     o.verbose,
	})
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "quotepilot version %s\n", Version)
			return err
		},
	}
}

func newConfigCmd() *cobra.Command {
	var savePath string

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Get()
			if savePath != "" {
				if err := cfg.Save(savePath); err != nil {
					return fmt.Errorf("failed to save config: %w", err)
				}
				logging.Info("configuration saved", zap.String("path", savePath))
			}
			return writeConfig(cmd.OutOrStdout(), cfg)
		},
	}

	cmd.Flags().StringVar(&savePath, "save", "", "also write the effective configuration to this file")
	return cmd
}

func writeConfig(w io.Writer, cfg *config.Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
