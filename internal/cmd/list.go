package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/alycrisco/Core/internal/cmdtypes"
	"github.com/alycrisco/Core/internal/cmdutil"
	"github.com/alycrisco/Core/internal/core"
	oerrors "github.com/alycrisco/Core/internal/errors"
	"github.com/alycrisco/Core/internal/loader"
	"github.com/alycrisco/Core/internal/output"
)

// NewListCmd creates the list command.
func NewListCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "list [dir]",
		Short: "List the manifests below a directory",
		Long: `Find every manifest below a directory and list its name and version.

Manifests that fail to load are reported and skipped; the command then
exits with the validation error code.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runList(c, cfg, cmdutil.ResolveDir(args))
		},
	}
}

func runList(c *cobra.Command, cfg *cmdtypes.GlobalConfig, dir string) error {
	format, err := cfg.OutputFormat(output.FormatTable)
	if err != nil {
		return err
	}
	paths, err := loader.Discover(dir)
	if err != nil {
		return err
	}

	styles := cfg.Styles()
	tbl := output.NewTable("NAME", "VERSION", "PATH").SetStyle(output.TableStyleFor(styles))
	var items []core.Value
	failed := 0
	for _, path := range paths {
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			rel = path
		}
		spec, err := loader.LoadFile(path)
		if err != nil {
			failed++
			output.Warn("skipping manifest", "path", rel, "error", err)
			continue
		}
		version := "-"
		if v, err := spec.Version(); err == nil && !v.IsZero() {
			version = v.String()
		}
		tbl.Row(spec.Name(), version, rel)
		items = append(items, core.MapOf("name", spec.Name(), "version", version, "path", rel))
	}

	out := c.OutOrStdout()
	switch format {
	case output.FormatYAML, output.FormatJSON:
		err = output.WriteValue(out, core.ListValue(items...), format)
	default:
		if tbl.Len() == 0 {
			_, err = fmt.Fprintln(out, styles.Muted.Render("No manifests found in "+dir))
		} else {
			_, err = fmt.Fprintln(out, tbl.String())
		}
	}
	if err != nil {
		return err
	}

	if failed > 0 {
		return &cmdtypes.ExitError{
			Err:     oerrors.Wrap(oerrors.ErrValidation, fmt.Sprintf("%d of %d manifests failed to load", failed, len(paths))),
			Code:    cmdtypes.ExitValidationError,
			Printed: true,
		}
	}
	return nil
}
