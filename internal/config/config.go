// Package config provides configuration loading and management.
package config

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Default: true. Override with --timestamps flag.
	Timestamps *bool `mapstructure:"timestamps" yaml:"timestamps,omitempty"`
}

// Config represents the podspec CLI configuration, loaded from
// ~/.podspec/config.yaml.
type Config struct {
	// Platform is the default target platform for dependency queries,
	// e.g. "ios@12.0".
	// Env: PODSPEC_PLATFORM
	Platform string `mapstructure:"platform" yaml:"platform,omitempty"`

	// Output is the default output format: yaml, json, table or tree.
	// Env: PODSPEC_OUTPUT
	Output string `mapstructure:"output" yaml:"output,omitempty"`

	// Color selects colored output: auto, always or never.
	// Env: PODSPEC_COLOR
	Color string `mapstructure:"color" yaml:"color,omitempty"`

	// Log contains logging-related settings.
	Log LogConfig `mapstructure:"log" yaml:"log,omitempty"`
}

// DefaultColor is used when no source sets the color mode.
const DefaultColor = "auto"

// DefaultConfig returns a Config with all default values populated.
func DefaultConfig() *Config {
	return &Config{
		Color: DefaultColor,
	}
}

// DefaultConfigTemplate is written by `podspec config init`.
const DefaultConfigTemplate = `# podspec CLI configuration
#
# Precedence for every key: flag > PODSPEC_* environment variable > this file > default.

# Default target platform for "podspec deps", e.g. ios@12.0.
# platform: ios@12.0

# Default output format: yaml, json, table or tree.
# output: table

# Colored output: auto, always or never.
color: auto

log:
  # Show timestamps in log output.
  timestamps: true
`
