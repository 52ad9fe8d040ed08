// Package compare reports the differences between two specification trees.
package compare

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/gonvenience/ytbx"
	"github.com/homeport/dyff/pkg/dyff"
	"gopkg.in/yaml.v3"

	"github.com/alycrisco/Core/internal/core"
	"github.com/alycrisco/Core/internal/output"
)

// Result holds the outcome of comparing two specification trees. Nodes are
// matched by their name relative to the root.
type Result struct {
	// Added lists nodes only present in the second tree.
	Added []string

	// Removed lists nodes only present in the first tree.
	Removed []string

	// Modified lists nodes present in both whose attributes differ.
	Modified []Modified
}

// Modified is a node present in both trees with a rendered attribute diff.
type Modified struct {
	Name string
	Diff string
}

// IsEmpty reports whether the trees matched.
func (r *Result) IsEmpty() bool {
	return len(r.Added) == 0 && len(r.Removed) == 0 && len(r.Modified) == 0
}

// Summary returns a short description of the changes.
func (r *Result) Summary() string {
	if r.IsEmpty() {
		return "No changes"
	}

	parts := make([]string, 0, 3)
	if len(r.Added) > 0 {
		parts = append(parts, fmt.Sprintf("%d added", len(r.Added)))
	}
	if len(r.Removed) > 0 {
		parts = append(parts, fmt.Sprintf("%d removed", len(r.Removed)))
	}
	if len(r.Modified) > 0 {
		parts = append(parts, fmt.Sprintf("%d modified", len(r.Modified)))
	}
	return strings.Join(parts, ", ")
}

// ModifiedItems converts the modified nodes for output.RenderDiff.
func (r *Result) ModifiedItems() []output.ModifiedItem {
	items := make([]output.ModifiedItem, len(r.Modified))
	for i, m := range r.Modified {
		items[i] = output.ModifiedItem{Name: m.Name, Diff: m.Diff}
	}
	return items
}

// Options configures a comparison.
type Options struct {
	// UseColor renders dyff reports with table styling.
	UseColor bool
}

// Specifications compares the tree containing from against the tree
// containing to.
func Specifications(from, to *core.Specification, opts Options) (*Result, error) {
	result := &Result{
		Added:    make([]string, 0),
		Removed:  make([]string, 0),
		Modified: make([]Modified, 0),
	}

	fromNodes := index(from.Root())
	toNodes := index(to.Root())

	for _, key := range fromNodes.order {
		f := fromNodes.nodes[key]
		t, ok := toNodes.nodes[key]
		if !ok {
			result.Removed = append(result.Removed, f.Name())
			continue
		}
		diff, err := compareNodes(f, t, opts.UseColor)
		if err != nil {
			return nil, fmt.Errorf("comparing %s: %w", t.Name(), err)
		}
		if diff != "" {
			result.Modified = append(result.Modified, Modified{Name: t.Name(), Diff: diff})
		}
	}

	for _, key := range toNodes.order {
		if _, ok := fromNodes.nodes[key]; !ok {
			result.Added = append(result.Added, toNodes.nodes[key].Name())
		}
	}

	output.Debug("compared specifications",
		"from", from.Root().Name(),
		"to", to.Root().Name(),
		"summary", result.Summary(),
	)
	return result, nil
}

type nodeIndex struct {
	order []string
	nodes map[string]*core.Specification
}

// index keys every node of root by its name below the root; the root is "".
func index(root *core.Specification) nodeIndex {
	idx := nodeIndex{order: []string{""}, nodes: map[string]*core.Specification{"": root}}
	prefix := root.Name() + core.Separator
	for _, sub := range root.RecursiveSubspecs() {
		key := strings.TrimPrefix(sub.Name(), prefix)
		idx.order = append(idx.order, key)
		idx.nodes[key] = sub
	}
	return idx
}

// nodeDocument is the YAML document a node is compared as: its own
// attributes, name included.
func nodeDocument(spec *core.Specification) ([]byte, error) {
	return yaml.Marshal(spec.Attributes().ToValue())
}

func compareNodes(from, to *core.Specification, useColor bool) (string, error) {
	fromYAML, err := nodeDocument(from)
	if err != nil {
		return "", fmt.Errorf("serializing %s: %w", from.Name(), err)
	}
	toYAML, err := nodeDocument(to)
	if err != nil {
		return "", fmt.Errorf("serializing %s: %w", to.Name(), err)
	}
	return diffYAML(fromYAML, toYAML, useColor)
}

// diffYAML returns a dyff report for two YAML documents, or "" when they
// are semantically equal.
func diffYAML(from, to []byte, useColor bool) (string, error) {
	fromInput, err := parseYAMLInput("from", from)
	if err != nil {
		return "", fmt.Errorf("parsing from YAML: %w", err)
	}

	toInput, err := parseYAMLInput("to", to)
	if err != nil {
		return "", fmt.Errorf("parsing to YAML: %w", err)
	}

	report, err := dyff.CompareInputFiles(fromInput, toInput)
	if err != nil {
		return "", fmt.Errorf("comparing YAML: %w", err)
	}

	if len(report.Diffs) == 0 {
		return "", nil
	}

	return renderDyffReport(report, useColor)
}

func parseYAMLInput(name string, data []byte) (ytbx.InputFile, error) {
	docs, err := ytbx.LoadYAMLDocuments(bytes.TrimSpace(data))
	if err != nil {
		return ytbx.InputFile{}, err
	}
	return ytbx.InputFile{Location: name, Documents: docs}, nil
}

func renderDyffReport(report dyff.Report, useColor bool) (string, error) {
	var buf bytes.Buffer

	reportWriter := &dyff.HumanReport{
		Report:            report,
		DoNotInspectCerts: true,
		NoTableStyle:      !useColor,
		OmitHeader:        true,
	}

	if err := reportWriter.WriteReport(io.Writer(&buf)); err != nil {
		return "", fmt.Errorf("writing report: %w", err)
	}

	lines := strings.Split(buf.String(), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.TrimSpace(strings.Join(lines, "\n")), nil
}
