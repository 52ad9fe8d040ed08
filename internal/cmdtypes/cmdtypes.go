// Package cmdtypes provides shared types for the cmd package and its helpers.
// It is separate from internal/cmd so that internal/cmdutil can use them
// without an import cycle.
package cmdtypes

import (
	"github.com/alycrisco/Core/internal/config"
	"github.com/alycrisco/Core/internal/core"
	oerrors "github.com/alycrisco/Core/internal/errors"
	"github.com/alycrisco/Core/internal/output"
)

// GlobalConfig holds CLI-wide configuration resolved during PersistentPreRunE.
// It is created once by the root command and passed into every sub-command
// constructor.
type GlobalConfig struct {
	Settings   *config.Settings
	ConfigPath string // resolved --config path

	// ConfigErr is the error from loading the config file, if any. Commands
	// other than config vet run on defaults when it is set.
	ConfigErr error

	Verbose bool
	Color   bool
}

// Styles returns the styles for the resolved color mode.
func (g *GlobalConfig) Styles() *output.Styles {
	if g == nil {
		return output.NoColorStyles()
	}
	return output.StylesFor(g.Color)
}

// OutputFormat returns the resolved output format, or fallback when no
// source set one.
func (g *GlobalConfig) OutputFormat(fallback output.OutputFormat) (output.OutputFormat, error) {
	if g == nil || g.Settings == nil || g.Settings.Output.Value == "" {
		return fallback, nil
	}
	f, err := output.ParseOutputFormat(g.Settings.Output.Value)
	if err != nil {
		return "", oerrors.NewValidationError(err.Error(), "", "output", "")
	}
	return f, nil
}

// Platform returns the resolved target platform. ok is false when no
// platform was configured.
func (g *GlobalConfig) Platform() (p core.Platform, ok bool, err error) {
	if g == nil || g.Settings == nil || g.Settings.Platform.Value == "" {
		return core.Platform{}, false, nil
	}
	p, err = core.ParsePlatform(g.Settings.Platform.Value)
	if err != nil {
		return core.Platform{}, false, err
	}
	return p, true, nil
}

// Exit codes, aliased from internal/errors.
const (
	ExitSuccess          = oerrors.ExitSuccess
	ExitGeneralError     = oerrors.ExitGeneralError
	ExitValidationError  = oerrors.ExitValidationError
	ExitEvaluationError  = oerrors.ExitEvaluationError
	ExitInvalidOperation = oerrors.ExitInvalidOperation
	ExitNotFound         = oerrors.ExitNotFound
	ExitParseError       = oerrors.ExitParseError
)

// ExitError is a type alias to internal/errors.ExitError.
type ExitError = oerrors.ExitError
