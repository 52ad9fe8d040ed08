package cmd

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alycrisco/Core/internal/testutil"
)

func TestDiffCmd_Identical(t *testing.T) {
	out, err := execute(t, "diff", fixture(t, "yaml"), fixture(t, "hcl"))
	require.NoError(t, err)
	assert.Contains(t, out, "Specifications are identical")
}

func TestDiffCmd_Changes(t *testing.T) {
	dir := t.TempDir()
	from := testutil.WriteFile(t, dir, "a.podspec.yaml", "name: Pod\nversion: \"1.0\"\nsubspecs:\n  - name: Core\n  - name: Old\n")
	to := testutil.WriteFile(t, dir, "b.podspec.yaml", "name: Pod\nversion: \"1.1\"\nsubspecs:\n  - name: Core\n  - name: New\n")

	out, err := execute(t, "diff", from, to, "--color", "never")
	require.NoError(t, err)

	assert.Contains(t, out, "Summary: 1 added, 1 removed, 1 modified")
	assert.True(t, strings.Contains(out, "New"))
	assert.True(t, strings.Contains(out, "Old"))
}

func TestDiffCmd_NeedsTwoFiles(t *testing.T) {
	_, err := execute(t, "diff", fixture(t, "yaml"))
	require.Error(t, err)
}
