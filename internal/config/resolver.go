package config

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/alycrisco/Core/internal/output"
)

// ConfigSource indicates where a configuration value came from.
type ConfigSource string

const (
	// SourceFlag indicates value came from command-line flag.
	SourceFlag ConfigSource = "flag"
	// SourceEnv indicates value came from environment variable.
	SourceEnv ConfigSource = "env"
	// SourceConfig indicates value came from config file.
	SourceConfig ConfigSource = "config"
	// SourceDefault indicates value is the built-in default.
	SourceDefault ConfigSource = "default"
)

// ResolvedValue is a configuration value and where it came from.
type ResolvedValue struct {
	Key    string
	Value  string
	Source ConfigSource

	// Shadowed contains values that were overridden by higher precedence.
	Shadowed map[ConfigSource]string
}

// EnvVar returns the environment variable consulted for key, e.g.
// "log.timestamps" -> "PODSPEC_LOG_TIMESTAMPS".
func EnvVar(key string) string {
	return envPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}

// ResolveOptions holds the candidate values for one key.
type ResolveOptions struct {
	Key string

	// Flag is used when FlagSet is true.
	Flag    string
	FlagSet bool

	// Config is the config file value; empty means unset.
	Config string

	// Default is used when no other source is set.
	Default string
}

// Resolve picks a value using precedence flag > env > config > default and
// records every lower-precedence value that was set.
func Resolve(opts ResolveOptions) ResolvedValue {
	type candidate struct {
		source ConfigSource
		value  string
		set    bool
	}
	env, envSet := os.LookupEnv(EnvVar(opts.Key))
	candidates := []candidate{
		{SourceFlag, opts.Flag, opts.FlagSet},
		{SourceEnv, env, envSet && env != ""},
		{SourceConfig, opts.Config, opts.Config != ""},
		{SourceDefault, opts.Default, true},
	}

	result := ResolvedValue{Key: opts.Key, Shadowed: make(map[ConfigSource]string)}
	for _, c := range candidates {
		if !c.set {
			continue
		}
		if result.Source == "" {
			result.Value = c.value
			result.Source = c.source
			continue
		}
		if c.source != SourceDefault || c.value != "" {
			result.Shadowed[c.source] = c.value
		}
	}
	return result
}

// ResolveConfigPath resolves the config file path using precedence:
// --config flag > PODSPEC_CONFIG env > ~/.podspec/config.yaml.
func ResolveConfigPath(flag string) (ResolvedValue, error) {
	paths, err := DefaultPaths()
	if err != nil {
		return ResolvedValue{}, err
	}
	return Resolve(ResolveOptions{
		Key:     "config",
		Flag:    flag,
		FlagSet: flag != "",
		Default: paths.ConfigFile,
	}), nil
}

// Flags holds the global flag values relevant to configuration.
type Flags struct {
	Platform    string
	PlatformSet bool

	Output    string
	OutputSet bool

	Color    string
	ColorSet bool

	Timestamps    bool
	TimestampsSet bool
}

// Settings is the fully resolved configuration.
type Settings struct {
	Platform ResolvedValue
	Output   ResolvedValue
	Color    ResolvedValue

	// Timestamps is nil when no source set it.
	Timestamps *bool

	TimestampsSource ConfigSource
}

// Values lists the resolved values for logging.
func (s *Settings) Values() []ResolvedValue {
	return []ResolvedValue{s.Platform, s.Output, s.Color}
}

// ResolveSettings applies precedence to every configuration key. cfg may be
// nil when no config file was loaded.
func ResolveSettings(cfg *Config, flags Flags) (*Settings, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	s := &Settings{
		Platform: Resolve(ResolveOptions{Key: "platform", Flag: flags.Platform, FlagSet: flags.PlatformSet, Config: cfg.Platform}),
		Output:   Resolve(ResolveOptions{Key: "output", Flag: flags.Output, FlagSet: flags.OutputSet, Config: cfg.Output}),
		Color:    Resolve(ResolveOptions{Key: "color", Flag: flags.Color, FlagSet: flags.ColorSet, Config: cfg.Color, Default: DefaultColor}),
	}

	configTimestamps := ""
	if cfg.Log.Timestamps != nil {
		configTimestamps = strconv.FormatBool(*cfg.Log.Timestamps)
	}
	ts := Resolve(ResolveOptions{
		Key:     "log.timestamps",
		Flag:    strconv.FormatBool(flags.Timestamps),
		FlagSet: flags.TimestampsSet,
		Config:  configTimestamps,
	})
	if ts.Source != SourceDefault {
		b, err := strconv.ParseBool(ts.Value)
		if err != nil {
			return nil, fmt.Errorf("invalid %s value %q from %s: %w", EnvVar(ts.Key), ts.Value, ts.Source, err)
		}
		s.Timestamps = &b
	}
	s.TimestampsSource = ts.Source

	if s.Platform.Value != "" {
		if err := ValidatePlatform(s.Platform.Value); err != nil {
			return nil, fmt.Errorf("invalid platform from %s: %w", s.Platform.Source, err)
		}
	}
	return s, nil
}

// LogResolvedValues logs configuration resolution at DEBUG level.
func LogResolvedValues(values []ResolvedValue) {
	for _, v := range values {
		output.Debug("config value resolved",
			"key", v.Key,
			"value", v.Value,
			"source", v.Source,
		)
		sources := make([]string, 0, len(v.Shadowed))
		for source := range v.Shadowed {
			sources = append(sources, string(source))
		}
		sort.Strings(sources)
		for _, source := range sources {
			output.Debug("  shadowed by higher precedence",
				"key", v.Key,
				"shadowed_source", source,
				"shadowed_value", v.Shadowed[ConfigSource(source)],
			)
		}
	}
}
