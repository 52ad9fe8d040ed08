package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alycrisco/Core/internal/checksum"
	"github.com/alycrisco/Core/internal/cmdtypes"
	"github.com/alycrisco/Core/internal/loader"
	"github.com/alycrisco/Core/internal/output"
)

// NewChecksumCmd creates the checksum command.
func NewChecksumCmd(_ *cmdtypes.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "checksum <file>",
		Short: "Print the checksum of a manifest",
		Long: `Print the SHA-1 checksum of the manifest a specification was loaded
from. The manifest must load successfully.`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			spec, err := loader.LoadFile(args[0])
			if err != nil {
				return err
			}
			sum, err := checksum.Of(spec)
			if err != nil {
				return err
			}
			output.Debug("computed checksum", "name", spec.Name(), "file", spec.DefinedInFile())
			_, err = fmt.Fprintln(c.OutOrStdout(), sum)
			return err
		},
	}
}
