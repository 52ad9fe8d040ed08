package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlatformsCmd_Table(t *testing.T) {
	out, err := execute(t, "platforms", fixture(t, "yaml"))
	require.NoError(t, err)

	assert.Contains(t, out, "SPEC")
	assert.Contains(t, out, "DEPLOYMENT TARGET")
	assert.Contains(t, out, "Pusher/Extras/Deep")
	assert.Contains(t, out, "10.10")
}

func TestPlatformsCmd_JSON(t *testing.T) {
	out, err := execute(t, "platforms", fixture(t, "json"), "-o", "json")
	require.NoError(t, err)

	assert.Contains(t, out, `"Pusher": {`)
	assert.Contains(t, out, `"Pusher/Core": {`)
	assert.Contains(t, out, `"ios": "9.0"`)
	assert.Contains(t, out, `"osx": "10.10"`)
	assert.NotContains(t, out, "tvos")
}
