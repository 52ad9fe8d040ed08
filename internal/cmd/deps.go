package cmd

import (
	"github.com/spf13/cobra"

	"github.com/alycrisco/Core/internal/cmdtypes"
	"github.com/alycrisco/Core/internal/cmdutil"
	"github.com/alycrisco/Core/internal/core"
	"github.com/alycrisco/Core/internal/output"
)

// NewDepsCmd creates the deps command.
func NewDepsCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	var (
		sel    cmdutil.SelectionFlags
		filter cmdutil.DepsFilterFlags
	)

	c := &cobra.Command{
		Use:   "deps <file>",
		Short: "List the dependencies of a specification",
		Long: `List the dependencies a specification needs.

By default both the declared dependencies and the implicit dependencies on
the node's own subspecs are shown. The implicit part is the default
subspecs when declared, or every subspec supporting the platform.

With --platform only the dependencies declared for that platform are
considered.

Examples:
  # All dependencies of the root
  podspec deps Pusher.podspec.yaml

  # Dependencies of one subspec on iOS 12
  podspec deps Pusher.podspec.yaml --subspec Pusher/Extras --platform ios@12.0`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runDeps(c, cfg, args[0], &sel, &filter)
		},
	}
	sel.AddTo(c)
	filter.AddTo(c)

	return c
}

func runDeps(c *cobra.Command, cfg *cmdtypes.GlobalConfig, path string, sel *cmdutil.SelectionFlags, filter *cmdutil.DepsFilterFlags) error {
	if err := filter.Validate(); err != nil {
		return err
	}
	format, err := cfg.OutputFormat(output.FormatTable)
	if err != nil {
		return err
	}
	platform, hasPlatform, err := cfg.Platform()
	if err != nil {
		return err
	}
	spec, err := cmdutil.LoadSpec(path, sel.Subspec)
	if err != nil {
		return err
	}

	log := output.SpecLogger(spec.Name())
	if hasPlatform {
		supported, err := spec.SupportedOnPlatform(platform)
		if err != nil {
			return err
		}
		if !supported {
			log.Warn("specification does not support platform", "platform", platform.String())
		}
	}

	deps, err := dependencies(spec, filter, platform, hasPlatform)
	if err != nil {
		return err
	}
	log.Debug("resolved dependencies", "count", len(deps), "platform", platform.Name)

	return cmdutil.WriteDependencies(c.OutOrStdout(), deps, format, cfg.Styles())
}

func dependencies(spec *core.Specification, filter *cmdutil.DepsFilterFlags, p core.Platform, hasPlatform bool) ([]core.Dependency, error) {
	switch {
	case filter.ExternalOnly && hasPlatform:
		return spec.DependenciesOn(p)
	case filter.ExternalOnly:
		return spec.Dependencies()
	case filter.ImplicitOnly && hasPlatform:
		return spec.SubspecDependenciesOn(p)
	case filter.ImplicitOnly:
		return spec.SubspecDependencies()
	case hasPlatform:
		return spec.AllDependenciesOn(p)
	default:
		return spec.AllDependencies()
	}
}
