// Package cmdutil provides shared command utilities: flag groups, manifest
// loading and output helpers used by several podspec subcommands.
package cmdutil

import (
	"github.com/spf13/cobra"

	oerrors "github.com/alycrisco/Core/internal/errors"
)

// SelectionFlags holds the flag that narrows a command to one subspec
// (show, deps, query).
type SelectionFlags struct {
	Subspec string
}

// AddTo registers the selection flags on the given cobra command.
func (f *SelectionFlags) AddTo(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.Subspec, "subspec", "s", "",
		"Subspec to operate on, e.g. Pod/Core or Core (default: the root)")
}

// DepsFilterFlags selects which part of a dependency list is shown.
type DepsFilterFlags struct {
	ImplicitOnly bool
	ExternalOnly bool
}

// AddTo registers the dependency filter flags on the given cobra command.
func (f *DepsFilterFlags) AddTo(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.ImplicitOnly, "implicit-only", false,
		"Only show dependencies on the specification's own subspecs")
	cmd.Flags().BoolVar(&f.ExternalOnly, "external-only", false,
		"Only show declared dependencies")
}

// Validate checks that at most one filter is set.
func (f *DepsFilterFlags) Validate() error {
	if f.ImplicitOnly && f.ExternalOnly {
		return oerrors.NewValidationError("--implicit-only and --external-only are mutually exclusive", "", "", "")
	}
	return nil
}

// ResolveDir returns the directory argument, or "." when none was given.
func ResolveDir(args []string) string {
	if len(args) > 0 && args[0] != "" {
		return args[0]
	}
	return "."
}
