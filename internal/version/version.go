// Package version provides version information for the podspec CLI.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
)

// Build-time variables set via ldflags.
var (
	// Version is the CLI version (set via ldflags).
	Version = "v0.0.0-dev"

	// GitCommit is the git commit hash.
	GitCommit = "unknown"

	// BuildDate is the build timestamp.
	BuildDate = "unknown"
)

// evaluatorModules are the modules backing the manifest evaluators, in the
// order they are reported.
var evaluatorModules = []struct {
	Format string
	Path   string
}{
	{"yaml/json", "gopkg.in/yaml.v3"},
	{"cue", "cuelang.org/go"},
	{"hcl", "github.com/hashicorp/hcl/v2"},
}

// Dependency is a manifest evaluator library and the version linked in.
type Dependency struct {
	Format  string `json:"format"`
	Module  string `json:"module"`
	Version string `json:"version"`
}

// Info contains version information.
type Info struct {
	// Version is the CLI version (set via ldflags).
	Version string `json:"version"`

	// GitCommit is the git commit hash.
	GitCommit string `json:"gitCommit"`

	// BuildDate is the build timestamp.
	BuildDate string `json:"buildDate"`

	// GoVersion is the Go version used to build.
	GoVersion string `json:"goVersion"`

	// Evaluators lists the manifest evaluator libraries.
	Evaluators []Dependency `json:"evaluators"`
}

// Get returns the current version information.
func Get() Info {
	var deps []*debug.Module
	if bi, ok := debug.ReadBuildInfo(); ok {
		deps = bi.Deps
	}
	return Info{
		Version:    Version,
		GitCommit:  GitCommit,
		BuildDate:  BuildDate,
		GoVersion:  runtime.Version(),
		Evaluators: evaluators(deps),
	}
}

// evaluators resolves the linked version of each evaluator module. Modules
// absent from deps, as in test binaries, report "unknown".
func evaluators(deps []*debug.Module) []Dependency {
	versions := make(map[string]string, len(deps))
	for _, d := range deps {
		if d.Replace != nil {
			d = d.Replace
		}
		versions[d.Path] = d.Version
	}

	out := make([]Dependency, 0, len(evaluatorModules))
	for _, m := range evaluatorModules {
		v := versions[m.Path]
		if v == "" {
			v = "unknown"
		}
		out = append(out, Dependency{Format: m.Format, Module: m.Path, Version: v})
	}
	return out
}

// String returns a human-readable version string.
func (i Info) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "podspec version %s\n", i.Version)
	fmt.Fprintf(&sb, "  Commit:    %s\n", i.GitCommit)
	fmt.Fprintf(&sb, "  Built:     %s\n", i.BuildDate)
	fmt.Fprintf(&sb, "  Go:        %s\n", i.GoVersion)
	sb.WriteString("\nEvaluators:\n")
	for _, e := range i.Evaluators {
		fmt.Fprintf(&sb, "  %-10s %s %s\n", e.Format, e.Module, e.Version)
	}
	return strings.TrimRight(sb.String(), "\n")
}
