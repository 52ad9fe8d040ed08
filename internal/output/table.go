package output

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/alycrisco/Core/internal/core"
)

// TableStyle defines the style for table output.
type TableStyle struct {
	// Border is the border style.
	Border lipgloss.Border

	// BorderStyle colors the borders.
	BorderStyle lipgloss.Style

	// HeaderStyle is the style for header cells.
	HeaderStyle lipgloss.Style

	// CellStyle is the style for regular cells.
	CellStyle lipgloss.Style
}

// TableStyleFor derives a table style from a style set.
func TableStyleFor(styles *Styles) TableStyle {
	return TableStyle{
		Border:      lipgloss.NormalBorder(),
		BorderStyle: styles.Border,
		HeaderStyle: styles.Header,
		CellStyle:   lipgloss.NewStyle(),
	}
}

// Table represents a styled table.
type Table struct {
	headers []string
	rows    [][]string
	style   TableStyle
}

// NewTable creates a new table with the given headers.
func NewTable(headers ...string) *Table {
	return &Table{
		headers: headers,
		rows:    make([][]string, 0),
		style:   TableStyleFor(GetStyles()),
	}
}

// Row adds a row to the table.
func (t *Table) Row(cells ...string) *Table {
	t.rows = append(t.rows, cells)
	return t
}

// SetStyle sets the table style.
func (t *Table) SetStyle(style TableStyle) *Table {
	t.style = style
	return t
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// String renders the table as a string.
func (t *Table) String() string {
	tbl := table.New().
		Border(t.style.Border).
		BorderStyle(t.style.BorderStyle).
		Headers(t.headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return t.style.HeaderStyle
			}
			return t.style.CellStyle
		})

	for _, row := range t.rows {
		tbl.Row(row...)
	}

	return tbl.String()
}

// RenderDependencyTable renders one row per dependency: its name and its
// comma-separated requirements, or "any" when unconstrained.
func RenderDependencyTable(deps []core.Dependency, styles *Styles) string {
	t := NewTable("NAME", "REQUIREMENTS").SetStyle(TableStyleFor(styles))
	for _, d := range deps {
		reqs := make([]string, len(d.Requirements))
		for i, r := range d.Requirements {
			reqs[i] = r.String()
		}
		requirement := strings.Join(reqs, ", ")
		if requirement == "" {
			requirement = "any"
		}
		t.Row(d.Name, requirement)
	}
	return t.String()
}

// PlatformRow is one line of a platform table.
type PlatformRow struct {
	Spec     string
	Platform core.Platform
}

// RenderPlatformTable renders the available platforms of each node.
func RenderPlatformTable(rows []PlatformRow, styles *Styles) string {
	t := NewTable("SPEC", "PLATFORM", "DEPLOYMENT TARGET").SetStyle(TableStyleFor(styles))
	for _, r := range rows {
		target := "-"
		if !r.Platform.DeploymentTarget.IsZero() {
			target = r.Platform.DeploymentTarget.String()
		}
		t.Row(r.Spec, r.Platform.DisplayName(), target)
	}
	return t.String()
}
