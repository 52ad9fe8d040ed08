package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alycrisco/Core/internal/cmdtypes"
	"github.com/alycrisco/Core/internal/compare"
	"github.com/alycrisco/Core/internal/loader"
	"github.com/alycrisco/Core/internal/output"
)

// NewDiffCmd creates the diff command.
func NewDiffCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "diff <from> <to>",
		Short: "Compare two specifications",
		Long: `Compare two specification manifests node by node.

Nodes are matched by their name below the root, so a renamed root still
lines up with its subspecs. Manifests in different formats can be
compared.

Examples:
  podspec diff Pusher.podspec.yaml Pusher.podspec.hcl`,
		Args: cobra.ExactArgs(2),
		RunE: func(c *cobra.Command, args []string) error {
			return runDiff(c, cfg, args[0], args[1])
		},
	}
}

func runDiff(c *cobra.Command, cfg *cmdtypes.GlobalConfig, fromPath, toPath string) error {
	from, err := loader.LoadFile(fromPath)
	if err != nil {
		return err
	}
	to, err := loader.LoadFile(toPath)
	if err != nil {
		return err
	}

	result, err := compare.Specifications(from, to, compare.Options{UseColor: cfg.Color})
	if err != nil {
		return err
	}
	output.Debug("compared specifications",
		"from", from.Name(),
		"to", to.Name(),
		"equal", from.Equal(to),
		"summary", result.Summary(),
	)

	_, err = fmt.Fprintln(c.OutOrStdout(), output.RenderDiff(result.Added, result.Removed, result.ModifiedItems(), cfg.Styles()))
	return err
}
