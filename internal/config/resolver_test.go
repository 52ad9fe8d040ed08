package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvVar(t *testing.T) {
	assert.Equal(t, "PODSPEC_PLATFORM", EnvVar("platform"))
	assert.Equal(t, "PODSPEC_LOG_TIMESTAMPS", EnvVar("log.timestamps"))
}

func TestResolve_FlagPrecedence(t *testing.T) {
	t.Setenv("PODSPEC_OUTPUT", "json")

	result := Resolve(ResolveOptions{Key: "output", Flag: "tree", FlagSet: true, Config: "table", Default: "yaml"})

	assert.Equal(t, "tree", result.Value)
	assert.Equal(t, SourceFlag, result.Source)
	assert.Equal(t, map[ConfigSource]string{
		SourceEnv:     "json",
		SourceConfig:  "table",
		SourceDefault: "yaml",
	}, result.Shadowed)
}

func TestResolve_EnvPrecedence(t *testing.T) {
	t.Setenv("PODSPEC_OUTPUT", "json")

	result := Resolve(ResolveOptions{Key: "output", Config: "table"})

	assert.Equal(t, "json", result.Value)
	assert.Equal(t, SourceEnv, result.Source)
	assert.Equal(t, "table", result.Shadowed[SourceConfig])
	assert.NotContains(t, result.Shadowed, SourceFlag)
}

func TestResolve_ConfigFallback(t *testing.T) {
	t.Setenv("PODSPEC_OUTPUT", "")

	result := Resolve(ResolveOptions{Key: "output", Config: "table"})

	assert.Equal(t, "table", result.Value)
	assert.Equal(t, SourceConfig, result.Source)
	assert.Empty(t, result.Shadowed)
}

func TestResolve_Default(t *testing.T) {
	t.Setenv("PODSPEC_COLOR", "")

	result := Resolve(ResolveOptions{Key: "color", Default: "auto"})

	assert.Equal(t, "auto", result.Value)
	assert.Equal(t, SourceDefault, result.Source)
}

func TestResolve_FlagSetToEmpty(t *testing.T) {
	t.Setenv("PODSPEC_PLATFORM", "")

	result := Resolve(ResolveOptions{Key: "platform", Flag: "", FlagSet: true, Config: "ios"})

	assert.Equal(t, "", result.Value)
	assert.Equal(t, SourceFlag, result.Source)
	assert.Equal(t, "ios", result.Shadowed[SourceConfig])
}

func TestResolveConfigPath(t *testing.T) {
	t.Setenv("HOME", "/home/tester")

	t.Run("default", func(t *testing.T) {
		t.Setenv("PODSPEC_CONFIG", "")
		result, err := ResolveConfigPath("")
		require.NoError(t, err)
		assert.Equal(t, "/home/tester/.podspec/config.yaml", result.Value)
		assert.Equal(t, SourceDefault, result.Source)
	})

	t.Run("env", func(t *testing.T) {
		t.Setenv("PODSPEC_CONFIG", "/etc/podspec.yaml")
		result, err := ResolveConfigPath("")
		require.NoError(t, err)
		assert.Equal(t, "/etc/podspec.yaml", result.Value)
		assert.Equal(t, SourceEnv, result.Source)
		assert.Equal(t, "/home/tester/.podspec/config.yaml", result.Shadowed[SourceDefault])
	})

	t.Run("flag", func(t *testing.T) {
		t.Setenv("PODSPEC_CONFIG", "/etc/podspec.yaml")
		result, err := ResolveConfigPath("./local.yaml")
		require.NoError(t, err)
		assert.Equal(t, "./local.yaml", result.Value)
		assert.Equal(t, SourceFlag, result.Source)
		assert.Equal(t, "/etc/podspec.yaml", result.Shadowed[SourceEnv])
	})
}

func TestResolveSettings(t *testing.T) {
	for _, key := range []string{"PODSPEC_PLATFORM", "PODSPEC_OUTPUT", "PODSPEC_COLOR", "PODSPEC_LOG_TIMESTAMPS"} {
		t.Setenv(key, "")
	}
	cfg := &Config{Platform: "ios@12.0", Output: "table", Color: "never", Log: LogConfig{Timestamps: boolPtr(false)}}

	s, err := ResolveSettings(cfg, Flags{Output: "json", OutputSet: true})
	require.NoError(t, err)

	assert.Equal(t, "ios@12.0", s.Platform.Value)
	assert.Equal(t, SourceConfig, s.Platform.Source)
	assert.Equal(t, "json", s.Output.Value)
	assert.Equal(t, SourceFlag, s.Output.Source)
	assert.Equal(t, "never", s.Color.Value)
	require.NotNil(t, s.Timestamps)
	assert.False(t, *s.Timestamps)
	assert.Equal(t, SourceConfig, s.TimestampsSource)
	assert.Len(t, s.Values(), 3)
}

func TestResolveSettings_NilConfig(t *testing.T) {
	for _, key := range []string{"PODSPEC_PLATFORM", "PODSPEC_OUTPUT", "PODSPEC_COLOR", "PODSPEC_LOG_TIMESTAMPS"} {
		t.Setenv(key, "")
	}

	s, err := ResolveSettings(nil, Flags{})
	require.NoError(t, err)

	assert.Equal(t, "", s.Platform.Value)
	assert.Equal(t, DefaultColor, s.Color.Value)
	assert.Nil(t, s.Timestamps)
	assert.Equal(t, SourceDefault, s.TimestampsSource)
}

func TestResolveSettings_EnvTimestamps(t *testing.T) {
	t.Setenv("PODSPEC_LOG_TIMESTAMPS", "false")
	t.Setenv("PODSPEC_PLATFORM", "")

	s, err := ResolveSettings(nil, Flags{})
	require.NoError(t, err)
	require.NotNil(t, s.Timestamps)
	assert.False(t, *s.Timestamps)
	assert.Equal(t, SourceEnv, s.TimestampsSource)
}

func TestResolveSettings_Errors(t *testing.T) {
	t.Run("bad timestamps env", func(t *testing.T) {
		t.Setenv("PODSPEC_LOG_TIMESTAMPS", "maybe")
		_, err := ResolveSettings(nil, Flags{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "PODSPEC_LOG_TIMESTAMPS")
	})

	t.Run("unknown platform flag", func(t *testing.T) {
		t.Setenv("PODSPEC_LOG_TIMESTAMPS", "")
		_, err := ResolveSettings(nil, Flags{Platform: "android", PlatformSet: true})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "from flag")
	})
}

func boolPtr(b bool) *bool {
	return &b
}
