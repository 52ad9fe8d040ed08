// Package cmd provides CLI command implementations.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alycrisco/Core/internal/cmdtypes"
	"github.com/alycrisco/Core/internal/config"
	oerrors "github.com/alycrisco/Core/internal/errors"
	"github.com/alycrisco/Core/internal/output"
)

// rootFlags holds the raw global flag values.
type rootFlags struct {
	config     string
	verbose    bool
	output     string
	color      string
	timestamps bool
	platform   string
}

// NewRootCmd creates the root command for the podspec CLI.
func NewRootCmd() *cobra.Command {
	var flags rootFlags
	cfg := &cmdtypes.GlobalConfig{}

	rootCmd := &cobra.Command{
		Use:   "podspec",
		Short: "Inspect package specifications",
		Long: `podspec loads package specification manifests and answers questions
about them: their subspec tree, the platforms they support, and the
dependencies a node needs on a given platform.

Manifests are read from *.podspec.yaml, *.podspec.json, *.podspec.cue and
*.podspec.hcl files.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(c *cobra.Command, args []string) error {
			return initializeGlobals(c, &flags, cfg)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flags.config, "config", "", "Path to config file (env: PODSPEC_CONFIG)")
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose output")
	pf.StringVarP(&flags.output, "output", "o", "", "Output format: yaml, json, table, tree (env: PODSPEC_OUTPUT)")
	pf.StringVar(&flags.color, "color", "", "Color mode: auto, always, never (env: PODSPEC_COLOR)")
	pf.BoolVar(&flags.timestamps, "timestamps", true, "Show timestamps in log output")
	pf.StringVar(&flags.platform, "platform", "", "Target platform, e.g. ios@12.0 (env: PODSPEC_PLATFORM)")

	rootCmd.AddCommand(NewShowCmd(cfg))
	rootCmd.AddCommand(NewDepsCmd(cfg))
	rootCmd.AddCommand(NewPlatformsCmd(cfg))
	rootCmd.AddCommand(NewChecksumCmd(cfg))
	rootCmd.AddCommand(NewDiffCmd(cfg))
	rootCmd.AddCommand(NewQueryCmd(cfg))
	rootCmd.AddCommand(NewListCmd(cfg))
	rootCmd.AddCommand(NewConfigCmd(cfg))
	rootCmd.AddCommand(NewVersionCmd(cfg))

	return rootCmd
}

// initializeGlobals loads configuration, applies precedence and sets up
// logging. A broken config file does not stop other commands from running.
func initializeGlobals(c *cobra.Command, flags *rootFlags, cfg *cmdtypes.GlobalConfig) error {
	pathResult, err := config.ResolveConfigPath(flags.config)
	if err != nil {
		return oerrors.Wrap(oerrors.ErrNotFound, "could not determine home directory")
	}
	cfg.ConfigPath, err = config.ExpandPath(pathResult.Value)
	if err != nil {
		return fmt.Errorf("expanding config path: %w", err)
	}
	cfg.Verbose = flags.verbose

	loaded, err := config.NewLoader().Load(cfg.ConfigPath)
	cfg.ConfigErr = err
	if err != nil {
		loaded = nil
	}

	changed := c.Flags().Changed
	settings, err := config.ResolveSettings(loaded, config.Flags{
		Platform:      flags.platform,
		PlatformSet:   changed("platform"),
		Output:        flags.output,
		OutputSet:     changed("output"),
		Color:         flags.color,
		ColorSet:      changed("color"),
		Timestamps:    flags.timestamps,
		TimestampsSet: changed("timestamps"),
	})
	if err != nil {
		return fmt.Errorf("resolving configuration: %w", err)
	}
	cfg.Settings = settings

	output.SetupLogging(output.LogConfig{
		Verbose:    flags.verbose,
		Timestamps: settings.Timestamps,
	})

	color, err := output.ResolveColor(settings.Color.Value, os.Stdout.Fd())
	if err != nil {
		return oerrors.NewValidationError(err.Error(), "", "color", "")
	}
	cfg.Color = color

	if cfg.ConfigErr != nil && !isConfigCommand(c) {
		output.Warn("ignoring invalid config file, run 'podspec config vet' for details", "path", cfg.ConfigPath)
	}

	config.LogResolvedValues(append([]config.ResolvedValue{pathResult}, settings.Values()...))
	output.Debug("initializing CLI",
		"config", cfg.ConfigPath,
		"platform", settings.Platform.Value,
		"output", settings.Output.Value,
		"color", cfg.Color,
	)
	return nil
}

func isConfigCommand(c *cobra.Command) bool {
	for p := c; p != nil; p = p.Parent() {
		if p.Name() == "config" {
			return true
		}
	}
	return false
}
