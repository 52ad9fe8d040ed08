package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Color palette. Never use inline lipgloss.Color literals outside this block.
var (
	// ColorCyan is used for identifiable nouns: specification names, dependency names.
	ColorCyan = lipgloss.Color("14")

	colorGreen = lipgloss.Color("82")

	// ColorYellow marks modified subspecs.
	ColorYellow = lipgloss.Color("220")

	colorRed = lipgloss.Color("196")

	// ColorGreenCheck is used for the completion checkmark.
	ColorGreenCheck = lipgloss.Color("10")

	// ColorDimGray is used for borders and other structural chrome.
	ColorDimGray = lipgloss.Color("240")

	colorBlue = lipgloss.Color("12")
)

// Styles groups the styles renderers use. Callers pick GetStyles or
// NoColorStyles depending on the resolved color mode.
type Styles struct {
	Bold    lipgloss.Style
	Muted   lipgloss.Style
	Noun    lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Header  lipgloss.Style
	Border  lipgloss.Style
}

// GetStyles returns the colored style set.
func GetStyles() *Styles {
	return &Styles{
		Bold:    lipgloss.NewStyle().Bold(true),
		Muted:   lipgloss.NewStyle().Faint(true),
		Noun:    lipgloss.NewStyle().Foreground(ColorCyan),
		Success: lipgloss.NewStyle().Foreground(colorGreen),
		Error:   lipgloss.NewStyle().Foreground(colorRed),
		Warning: lipgloss.NewStyle().Foreground(ColorYellow),
		Header:  lipgloss.NewStyle().Bold(true).Foreground(colorBlue),
		Border:  lipgloss.NewStyle().Foreground(ColorDimGray),
	}
}

// NoColorStyles returns a style set that renders text unchanged.
func NoColorStyles() *Styles {
	plain := lipgloss.NewStyle()
	return &Styles{
		Bold:    plain,
		Muted:   plain,
		Noun:    plain,
		Success: plain,
		Error:   plain,
		Warning: plain,
		Header:  plain,
		Border:  plain,
	}
}

// StylesFor returns GetStyles when color is true and NoColorStyles otherwise.
func StylesFor(color bool) *Styles {
	if color {
		return GetStyles()
	}
	return NoColorStyles()
}

// Color modes accepted by the --color flag and the color config key.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// ValidColorModes lists the accepted color modes.
func ValidColorModes() []string {
	return []string{ColorAuto, ColorAlways, ColorNever}
}

// ResolveColor decides whether output written to fd should be colored.
// auto colors only terminals.
func ResolveColor(mode string, fd uintptr) (bool, error) {
	switch strings.ToLower(mode) {
	case "", ColorAuto:
		return term.IsTerminal(int(fd)), nil //nolint:gosec // file descriptors fit in int
	case ColorAlways:
		return true, nil
	case ColorNever:
		return false, nil
	default:
		return false, fmt.Errorf("invalid color mode %q (valid: %s)", mode, strings.Join(ValidColorModes(), ", "))
	}
}

// FormatCheckmark renders a green checkmark with a message for stdout output.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(ColorGreenCheck).Render("✔")
	return check + " " + msg
}
