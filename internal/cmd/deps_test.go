package cmd

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/alycrisco/Core/internal/errors"
)

func TestDepsCmd(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    []string
		notWant []string
	}{
		{
			name: "all",
			args: nil,
			want: []string{`"SocketRocket (~> 0.5)"`, `"Pusher/Core (= 1.0)"`, `"Pusher/Extras (= 1.0)"`},
		},
		{
			name:    "external only",
			args:    []string{"--external-only"},
			want:    []string{`"SocketRocket (~> 0.5)"`},
			notWant: []string{"Pusher/Core"},
		},
		{
			name:    "implicit only",
			args:    []string{"--implicit-only"},
			want:    []string{`"Pusher/Core (= 1.0)"`, `"Pusher/Extras (= 1.0)"`},
			notWant: []string{"SocketRocket"},
		},
		{
			name: "subspec inherits",
			args: []string{"--subspec", "Pusher/Extras", "--platform", "ios@12.0"},
			want: []string{`"SocketRocket (~> 0.5)"`, `"Reachability"`, `"Pusher/Extras/Deep (= 1.0)"`},
		},
		{
			name:    "unsupported platform drops subspecs",
			args:    []string{"--platform", "tvos"},
			want:    []string{`"SocketRocket (~> 0.5)"`},
			notWant: []string{"Pusher/Core"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"deps", fixture(t, "yaml"), "-o", "json"}, tt.args...)
			out, err := execute(t, args...)
			require.NoError(t, err)
			for _, w := range tt.want {
				assert.Contains(t, out, w)
			}
			for _, w := range tt.notWant {
				assert.NotContains(t, out, w)
			}
		})
	}
}

func TestDepsCmd_Table(t *testing.T) {
	out, err := execute(t, "deps", fixture(t, "cue"), "--color", "never")
	require.NoError(t, err)

	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "REQUIREMENTS")
	assert.Contains(t, out, "SocketRocket")
	assert.Contains(t, out, "~> 0.5")
}

func TestDepsCmd_FiltersAreExclusive(t *testing.T) {
	_, err := execute(t, "deps", fixture(t, "yaml"), "--implicit-only", "--external-only")
	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrValidation))
}
