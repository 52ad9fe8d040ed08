package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alycrisco/Core/internal/testutil"
)

// execute runs the root command with args in an isolated HOME and returns
// what it wrote to stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	for _, key := range []string{"PODSPEC_CONFIG", "PODSPEC_PLATFORM", "PODSPEC_OUTPUT", "PODSPEC_COLOR", "PODSPEC_LOG_TIMESTAMPS"} {
		t.Setenv(key, "")
	}

	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func fixture(t *testing.T, format string) string {
	t.Helper()
	return testutil.FixturePath(t, "Pusher.podspec."+format)
}

func TestNewRootCmd(t *testing.T) {
	root := NewRootCmd()

	assert.Equal(t, "podspec", root.Use)
	assert.True(t, root.SilenceUsage)
	assert.True(t, root.SilenceErrors)

	for _, name := range []string{"config", "verbose", "output", "color", "timestamps", "platform"} {
		assert.NotNil(t, root.PersistentFlags().Lookup(name), name)
	}

	var names []string
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.Subset(t, names, []string{"show", "deps", "platforms", "checksum", "diff", "query", "list", "config", "version"})
}

func TestRootCmd_InvalidColor(t *testing.T) {
	_, err := execute(t, "version", "--color", "sometimes")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sometimes")
}

func TestRootCmd_InvalidPlatform(t *testing.T) {
	_, err := execute(t, "version", "--platform", "android")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown platform")
}

func TestRootCmd_InvalidConfigFileIsIgnored(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WriteFile(t, dir, "config.yaml", "output: xml\n")

	out, err := execute(t, "show", fixture(t, "yaml"), "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Pusher (1.0)")
}

func TestRootCmd_ConfigFileSetsOutput(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WriteFile(t, dir, "config.yaml", "output: json\n")

	out, err := execute(t, "show", fixture(t, "yaml"), "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, `"name": "Pusher"`)
}
