package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"quotepilot/core/batch"
	"quotepilot/internal/config"
	"quotepilot/internal/logging"
)

type batchOptions struct {
	*rootOptions
	workers int
	format  string
}

func newBatchCmd(root *rootOptions) *cobra.Command {
	opts := &batchOptions{rootOptions: root}

	cmd := &cobra.Command{
		Use:   "batch <file.hcl>",
		Short: "Quote every line of an HCL batch file",
		Long: `Quote every "quote" block of an HCL batch file concurrently.

Example file:
  quote "line-1" {
    part_number = "QPSAH200S-A-M-G-3-C-3-1-1-C-1-02"
    quantity    = 3
  }

Exits non-zero when any line fails.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			workers := config.Get().Batch.Workers
			if cmd.Flags().Changed("workers") {
				workers = opts.workers
			}
			return opts.run(cmd, args[0], workers)
		},
	}

	cmd.Flags().IntVar(&opts.workers, "workers", 4, "number of lines quoted concurrently")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "output format: cli, json, yaml")
	return cmd
}

func (o *batchOptions) run(cmd *cobra.Command, path string, workers int) error {
	formatter, err := o.formatter(o.format, config.Get().Output.ShowDetails)
	if err != nil {
		return err
	}

	lines, err := batch.LoadFile(path)
	if err != nil {
		return err
	}

	logger := logging.With(zap.String("file", path))
	report, err := batch.NewRunner(o.engine, workers, logger).Run(cmd.Context(), lines)
	if err != nil {
		return err
	}

	if err := formatter.RenderBatch(cmd.OutOrStdout(), report); err != nil {
		return err
	}
	if report.Failed > 0 {
		logging.Warn("batch finished with rejected lines",
			zap.String("file", path),
			zap.Int("failed", report.Failed),
			zap.Int("succeeded", report.Succeeded),
		)
		return ErrQuoteFailed
	}
	return nil
}
