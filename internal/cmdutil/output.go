package cmdutil

import (
	"fmt"
	"io"
	"strings"

	"github.com/alycrisco/Core/internal/core"
	"github.com/alycrisco/Core/internal/output"
)

// WriteDependencies prints deps as a table, or as a YAML/JSON list of
// dependency strings.
func WriteDependencies(w io.Writer, deps []core.Dependency, format output.OutputFormat, styles *output.Styles) error {
	switch format {
	case output.FormatYAML, output.FormatJSON:
		items := make([]string, len(deps))
		for i, d := range deps {
			items[i] = d.String()
		}
		return output.WriteValue(w, core.StringList(items...), format)
	default:
		if len(deps) == 0 {
			_, err := fmt.Fprintln(w, styles.Muted.Render("No dependencies"))
			return err
		}
		_, err := fmt.Fprintln(w, output.RenderDependencyTable(deps, styles))
		return err
	}
}

// WriteSpecSummary prints the display form of spec followed by its
// platforms and subspec tree.
func WriteSpecSummary(w io.Writer, spec *core.Specification, styles *output.Styles) error {
	platforms, err := spec.AvailablePlatforms()
	if err != nil {
		return err
	}
	names := make([]string, len(platforms))
	for i, p := range platforms {
		names[i] = p.String()
	}

	var sb strings.Builder
	sb.WriteString(styles.Header.Render(spec.String()))
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "%s %s\n", styles.Muted.Render("Platforms:"), strings.Join(names, ", "))
	if file := spec.DefinedInFile(); file != "" {
		fmt.Fprintf(&sb, "%s %s\n", styles.Muted.Render("File:"), file)
	}
	sb.WriteString("\n")
	sb.WriteString(output.RenderTree(output.SpecTree(spec), styles))

	_, err = io.WriteString(w, sb.String())
	return err
}
