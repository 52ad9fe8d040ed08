package output

import (
	"os"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func stripAnsi(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

func TestFormatCheckmark(t *testing.T) {
	result := FormatCheckmark("Specifications are identical")
	assert.Equal(t, "✔ Specifications are identical", stripAnsi(result))
}

func TestNoColorStyles_RenderPlain(t *testing.T) {
	s := NoColorStyles()
	assert.Equal(t, "x", s.Success.Render("x"))
	assert.Equal(t, "x", s.Noun.Render("x"))
	assert.False(t, s.Bold.GetBold())
}

func TestStylesFor(t *testing.T) {
	assert.True(t, StylesFor(true).Bold.GetBold())
	assert.False(t, StylesFor(false).Bold.GetBold())
}

func TestResolveColor(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "out")
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })

	tests := []struct {
		mode string
		want bool
	}{
		{"always", true},
		{"ALWAYS", true},
		{"never", false},
		{"auto", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.mode, func(t *testing.T) {
			got, err := ResolveColor(tt.mode, f.Fd())
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveColor_Invalid(t *testing.T) {
	_, err := ResolveColor("sometimes", 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "auto, always, never")
}
