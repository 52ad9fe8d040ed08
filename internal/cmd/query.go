package cmd

import (
	"github.com/spf13/cobra"

	"github.com/alycrisco/Core/internal/cmdtypes"
	"github.com/alycrisco/Core/internal/cmdutil"
	"github.com/alycrisco/Core/internal/core"
	oerrors "github.com/alycrisco/Core/internal/errors"
	"github.com/alycrisco/Core/internal/output"
	"github.com/alycrisco/Core/internal/query"
)

// NewQueryCmd creates the query command.
func NewQueryCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	var sel cmdutil.SelectionFlags

	c := &cobra.Command{
		Use:   "query <file> <jsonpath>",
		Short: "Query a specification with JSONPath",
		Long: `Evaluate a JSONPath expression against a specification's attributes and
print the matches as a list.

Examples:
  # Names of the direct subspecs
  podspec query Pusher.podspec.yaml '$.subspecs[*].name'

  # Every framework declared anywhere, as YAML
  podspec query Pusher.podspec.yaml '$..frameworks' -o yaml`,
		Args: cobra.ExactArgs(2),
		RunE: func(c *cobra.Command, args []string) error {
			format, err := cfg.OutputFormat(output.FormatJSON)
			if err != nil {
				return err
			}
			if format != output.FormatJSON && format != output.FormatYAML {
				return oerrors.NewValidationError("query prints yaml or json", "", "output", "Use -o json or -o yaml.")
			}

			spec, err := cmdutil.LoadSpec(args[0], sel.Subspec)
			if err != nil {
				return err
			}
			results, err := query.Run(spec, args[1])
			if err != nil {
				return err
			}
			output.Debug("evaluated query", "expr", args[1], "matches", len(results))
			return output.WriteValue(c.OutOrStdout(), core.ListValue(results...), format)
		},
	}
	sel.AddTo(c)

	return c
}
