package cmd

import (
	"github.com/spf13/cobra"

	"github.com/alycrisco/Core/internal/cmdtypes"
	"github.com/alycrisco/Core/internal/cmdutil"
	"github.com/alycrisco/Core/internal/output"
)

// NewShowCmd creates the show command.
func NewShowCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	var sel cmdutil.SelectionFlags

	c := &cobra.Command{
		Use:   "show <file>",
		Short: "Show a specification",
		Long: `Show a specification's display name, platforms and subspec tree.

With -o yaml or -o json the node is dumped with its attributes and
subspecs in declaration order.

Examples:
  # Summary of the root specification
  podspec show Pusher.podspec.yaml

  # Dump one subspec as JSON
  podspec show Pusher.podspec.yaml --subspec Pusher/Core -o json`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runShow(c, cfg, args[0], &sel)
		},
	}
	sel.AddTo(c)

	return c
}

func runShow(c *cobra.Command, cfg *cmdtypes.GlobalConfig, path string, sel *cmdutil.SelectionFlags) error {
	spec, err := cmdutil.LoadSpec(path, sel.Subspec)
	if err != nil {
		return err
	}
	format, err := cfg.OutputFormat(output.FormatTree)
	if err != nil {
		return err
	}

	switch format {
	case output.FormatYAML, output.FormatJSON:
		return output.WriteValue(c.OutOrStdout(), spec.ToValue(), format)
	default:
		return cmdutil.WriteSpecSummary(c.OutOrStdout(), spec, cfg.Styles())
	}
}
