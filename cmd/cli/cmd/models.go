package cmd

import (
	"github.com/spf13/cobra"

	"quotepilot/core/model"
	"quotepilot/internal/errors"
)

type modelsOptions struct {
	*rootOptions
	format string
}

func newModelsCmd(root *rootOptions) *cobra.Command {
	opts := &modelsOptions{rootOptions: root}

	cmd := &cobra.Command{
		Use:   "models",
		Short: "List registered product models",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter, err := opts.formatter(opts.format, false)
			if err != nil {
				return err
			}
			names := opts.engine.ListModels()
			defs := make([]*model.Definition, 0, len(names))
			for _, name := range names {
				def, err := opts.engine.Describe(name)
				if err != nil {
					return err
				}
				defs = append(defs, def)
			}
			return formatter.RenderModels(cmd.OutOrStdout(), defs)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "output format: cli, json, yaml")
	return cmd
}

func newDescribeCmd(root *rootOptions) *cobra.Command {
	opts := &modelsOptions{rootOptions: root}

	cmd := &cobra.Command{
		Use:   "describe <model>",
		Short: "Show a model's segments, codes and adders",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter, err := opts.formatter(opts.format, true)
			if err != nil {
				return err
			}
			def, err := opts.engine.Describe(args[0])
			if err != nil {
				return errors.NotFound("model", args[0], err)
			}
			return formatter.RenderModel(cmd.OutOrStdout(), def)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "output format: cli, json, yaml")
	return cmd
}
