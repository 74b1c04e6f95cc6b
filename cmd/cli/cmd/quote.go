package cmd

import (
	"github.com/spf13/cobra"

	"quotepilot/core/engine"
	"quotepilot/internal/config"
)

type quoteOptions struct {
	*rootOptions
	model   string
	format  string
	details bool
}

func newQuoteCmd(root *rootOptions) *cobra.Command {
	opts := &quoteOptions{rootOptions: root}

	cmd := &cobra.Command{
		Use:   "quote <part-number>",
		Short: "Validate and price a part number",
		Long: `Validate a part number against its product model and print the price breakdown.

The model is inferred from the part-number prefix unless --model is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			showDetails := config.Get().Output.ShowDetails
			if cmd.Flags().Changed("details") {
				showDetails = opts.details
			}
			return opts.run(cmd, args[0], showDetails)
		},
	}

	cmd.Flags().StringVar(&opts.model, "model", "", "product model (inferred from the prefix when omitted)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "output format: cli, json, yaml")
	cmd.Flags().BoolVar(&opts.details, "details", true, "show the per-segment breakdown")

	return cmd
}

func (o *quoteOptions) run(cmd *cobra.Command, partNumber string, showDetails bool) error {
	formatter, err := o.formatter(o.format, showDetails)
	if err != nil {
		return err
	}

	var result engine.Result
	if o.model == "" {
		result = o.engine.QuotePartNumber(partNumber)
	} else {
		result = o.engine.Quote(o.model, partNumber)
	}

	if err := formatter.RenderQuote(cmd.OutOrStdout(), result); err != nil {
		return err
	}
	if !result.OK() {
		return ErrQuoteFailed
	}
	return nil
}
