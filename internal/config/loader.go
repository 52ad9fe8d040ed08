package config

import (
	"fmt"

	"github.com/spf13/viper"

	oerrors "github.com/alycrisco/Core/internal/errors"
	"github.com/alycrisco/Core/internal/output"
)

// Environment variable prefix for podspec configuration.
const envPrefix = "PODSPEC"

// Loader reads the configuration file.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a new configuration loader.
func NewLoader() *Loader {
	return &Loader{v: viper.New()}
}

// Load reads the YAML config file at path and validates it against the
// configuration schema. A missing file yields the defaults; an empty path
// means the default location.
func (l *Loader) Load(path string) (*Config, error) {
	if path == "" {
		paths, err := DefaultPaths()
		if err != nil {
			return nil, fmt.Errorf("getting config file path: %w", err)
		}
		path = paths.ConfigFile
	}

	expanded, err := ExpandPath(path)
	if err != nil {
		return nil, fmt.Errorf("expanding config path: %w", err)
	}

	exists, err := FileExists(expanded)
	if err != nil {
		return nil, fmt.Errorf("checking config file: %w", err)
	}
	if !exists {
		output.Debug("no config file, using defaults", "path", expanded)
		return DefaultConfig(), nil
	}

	l.v.SetConfigFile(expanded)
	l.v.SetConfigType("yaml")
	l.v.SetDefault("color", DefaultColor)

	if err := l.v.ReadInConfig(); err != nil {
		return nil, &oerrors.DetailError{
			Type:     "invalid config",
			Message:  err.Error(),
			Location: expanded,
			Hint:     "The config file must be valid YAML.",
			Cause:    oerrors.ErrValidation,
		}
	}

	validator, err := NewValidator()
	if err != nil {
		return nil, err
	}
	if err := validator.Validate(l.v.AllSettings()); err != nil {
		return nil, &oerrors.DetailError{
			Type:     "invalid config",
			Message:  err.Error(),
			Location: expanded,
			Hint:     "Run 'podspec config init --force' to regenerate a default config.",
			Cause:    oerrors.ErrValidation,
		}
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	output.Debug("loaded config", "path", expanded)
	return &cfg, nil
}
