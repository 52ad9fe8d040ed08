package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/alycrisco/Core/internal/errors"
)

func TestNameAndVersionFromString(t *testing.T) {
	tests := []struct {
		in       string
		wantName string
		wantVer  string
		wantHead bool
	}{
		{"libPusher (1.0)", "libPusher", "1.0", false},
		{"RestKit/Network (0.20.3)", "RestKit/Network", "0.20.3", false},
		{"libPusher (HEAD based on 1.0)", "libPusher", "HEAD based on 1.0", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			name, v, err := NameAndVersionFromString(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, name)
			assert.Equal(t, tt.wantVer, v.String())
			assert.Equal(t, tt.wantHead, v.IsHead())
		})
	}
}

func TestNameAndVersionFromString_RoundTrip(t *testing.T) {
	for _, version := range []string{"1.0", "2.0-beta.1", "HEAD based on 1.0"} {
		s := New("libPusher")
		s.Store(AttrVersion, version)

		name, v, err := NameAndVersionFromString(s.String())
		require.NoError(t, err)
		assert.Equal(t, s.Name(), name)
		want, err := s.Version()
		require.NoError(t, err)
		assert.Equal(t, want, v)
	}
}

func TestNameAndVersionFromString_Invalid(t *testing.T) {
	for _, in := range []string{"libPusher", "libPusher ()", "lib Pusher (1.0)", "libPusher (x.y)"} {
		t.Run(in, func(t *testing.T) {
			_, _, err := NameAndVersionFromString(in)
			require.Error(t, err)
			assert.True(t, errors.Is(err, oerrors.ErrParse))
		})
	}
}

func TestRootName(t *testing.T) {
	assert.Equal(t, "RestKit", RootName("RestKit/Network/Extras"))
	assert.Equal(t, "RestKit", RootName("RestKit"))
	assert.Equal(t, "", RootName(""))
}
