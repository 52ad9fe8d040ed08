package cmdutil

import (
	"errors"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/alycrisco/Core/internal/errors"
)

func TestSelectionFlags_AddTo(t *testing.T) {
	cmd := &cobra.Command{Use: "test"}
	var f SelectionFlags
	f.AddTo(cmd)

	require.NoError(t, cmd.ParseFlags([]string{"-s", "Pod/Core"}))
	assert.Equal(t, "Pod/Core", f.Subspec)
}

func TestDepsFilterFlags_Validate(t *testing.T) {
	tests := []struct {
		name    string
		flags   DepsFilterFlags
		wantErr bool
	}{
		{"none", DepsFilterFlags{}, false},
		{"implicit", DepsFilterFlags{ImplicitOnly: true}, false},
		{"external", DepsFilterFlags{ExternalOnly: true}, false},
		{"both", DepsFilterFlags{ImplicitOnly: true, ExternalOnly: true}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.flags.Validate()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, oerrors.ErrValidation))
			assert.Contains(t, err.Error(), "mutually exclusive")
		})
	}
}

func TestDepsFilterFlags_AddTo(t *testing.T) {
	cmd := &cobra.Command{Use: "test"}
	var f DepsFilterFlags
	f.AddTo(cmd)

	require.NoError(t, cmd.ParseFlags([]string{"--external-only"}))
	assert.True(t, f.ExternalOnly)
	assert.False(t, f.ImplicitOnly)
}

func TestResolveDir(t *testing.T) {
	assert.Equal(t, ".", ResolveDir(nil))
	assert.Equal(t, ".", ResolveDir([]string{""}))
	assert.Equal(t, "pods", ResolveDir([]string{"pods"}))
}
