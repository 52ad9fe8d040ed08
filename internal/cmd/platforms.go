package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alycrisco/Core/internal/cmdtypes"
	"github.com/alycrisco/Core/internal/core"
	"github.com/alycrisco/Core/internal/loader"
	"github.com/alycrisco/Core/internal/output"
)

// NewPlatformsCmd creates the platforms command.
func NewPlatformsCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "platforms <file>",
		Short: "Show the platforms of every node",
		Long: `Show the platforms each node of a specification tree is available on,
with the deployment target resolved through its ancestors.

A node that declares no platforms inherits its parent's; a tree that
declares none is available on every known platform.`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runPlatforms(c, cfg, args[0])
		},
	}
}

func runPlatforms(c *cobra.Command, cfg *cmdtypes.GlobalConfig, path string) error {
	spec, err := loader.LoadFile(path)
	if err != nil {
		return err
	}
	format, err := cfg.OutputFormat(output.FormatTable)
	if err != nil {
		return err
	}

	nodes := append([]*core.Specification{spec}, spec.RecursiveSubspecs()...)
	var rows []output.PlatformRow
	doc := core.NewMap()
	for _, n := range nodes {
		platforms, err := n.AvailablePlatforms()
		if err != nil {
			return err
		}
		targets := core.NewMap()
		for _, p := range platforms {
			rows = append(rows, output.PlatformRow{Spec: n.Name(), Platform: p})
			if p.DeploymentTarget.IsZero() {
				targets.Set(p.Name, core.Null())
			} else {
				targets.Set(p.Name, p.DeploymentTarget.String())
			}
		}
		doc.Set(n.Name(), targets)
	}

	switch format {
	case output.FormatYAML, output.FormatJSON:
		return output.WriteValue(c.OutOrStdout(), doc, format)
	default:
		_, err = fmt.Fprintln(c.OutOrStdout(), output.RenderPlatformTable(rows, cfg.Styles()))
		return err
	}
}
