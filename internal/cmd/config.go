package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alycrisco/Core/internal/cmdtypes"
	"github.com/alycrisco/Core/internal/config"
	oerrors "github.com/alycrisco/Core/internal/errors"
	"github.com/alycrisco/Core/internal/output"
)

// NewConfigCmd creates the config command group.
func NewConfigCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	c := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
		Long:  `Configuration management for the podspec CLI.`,
	}

	c.AddCommand(NewConfigInitCmd(cfg))
	c.AddCommand(NewConfigVetCmd(cfg))

	return c
}

// NewConfigInitCmd creates the config init command.
func NewConfigInitCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	var force bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Initialize default configuration",
		Long: `Initialize the podspec CLI configuration.

Writes a default config file to ~/.podspec/config.yaml, or to the path
given by --config or PODSPEC_CONFIG.

Examples:
  # Initialize configuration
  podspec config init

  # Overwrite existing configuration
  podspec config init --force`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			if err := config.WriteDefault(cfg.ConfigPath, force); err != nil {
				return err
			}
			out := c.OutOrStdout()
			fmt.Fprintln(out, output.FormatCheckmark("Configuration initialized at "+cfg.ConfigPath))
			fmt.Fprintln(out, "Validate with: podspec config vet")
			return nil
		},
	}

	c.Flags().BoolVarP(&force, "force", "f", false,
		"Overwrite existing configuration")

	return c
}

// NewConfigVetCmd creates the config vet command.
func NewConfigVetCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "vet",
		Short: "Validate configuration",
		Long: `Validate the podspec CLI configuration file.

Checks performed:
  1. Config file exists at resolved path
  2. Config file is valid YAML
  3. Every key is known and every value is allowed

The config path is resolved using precedence:
  --config flag > PODSPEC_CONFIG env > ~/.podspec/config.yaml`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runConfigVet(c, cfg)
		},
	}
}

func runConfigVet(c *cobra.Command, cfg *cmdtypes.GlobalConfig) error {
	output.Debug("validating config", "path", cfg.ConfigPath)

	exists, err := config.FileExists(cfg.ConfigPath)
	if err != nil {
		return oerrors.Wrap(oerrors.ErrInvalidOperation, "could not inspect "+cfg.ConfigPath)
	}
	if !exists {
		return &oerrors.DetailError{
			Type:     "not found",
			Message:  "configuration file not found",
			Location: cfg.ConfigPath,
			Hint:     "Run 'podspec config init' to create default configuration",
			Cause:    oerrors.ErrNotFound,
		}
	}

	if cfg.ConfigErr != nil {
		return cfg.ConfigErr
	}

	fmt.Fprintln(c.OutOrStdout(), output.FormatCheckmark("Configuration is valid: "+cfg.ConfigPath))
	return nil
}
