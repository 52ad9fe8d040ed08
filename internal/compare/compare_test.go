package compare_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alycrisco/Core/internal/compare"
	"github.com/alycrisco/Core/internal/core"
	"github.com/alycrisco/Core/internal/loader"
	"github.com/alycrisco/Core/internal/testutil"
)

func load(t *testing.T, name string) *core.Specification {
	t.Helper()
	spec, err := loader.LoadFile(testutil.FixturePath(t, name))
	require.NoError(t, err)
	return spec
}

func TestSpecifications_AcrossFormatsIdentical(t *testing.T) {
	result, err := compare.Specifications(
		load(t, "Pusher.podspec.yaml"),
		load(t, "Pusher.podspec.hcl"),
		compare.Options{},
	)
	require.NoError(t, err)

	assert.True(t, result.IsEmpty(), "unexpected changes: %+v", result)
	assert.Equal(t, "No changes", result.Summary())
}

func TestSpecifications_AddedRemovedModified(t *testing.T) {
	from := core.New("Pod")
	from.Store("version", "1.0")
	from.NewSubspec("Core").Store("frameworks", []any{"UIKit"})
	from.NewSubspec("Old")

	to := core.New("Pod")
	to.Store("version", "1.1")
	to.NewSubspec("Core").Store("frameworks", []any{"UIKit"})
	to.NewSubspec("New")

	result, err := compare.Specifications(from, to, compare.Options{})
	require.NoError(t, err)

	assert.Equal(t, []string{"Pod/New"}, result.Added)
	assert.Equal(t, []string{"Pod/Old"}, result.Removed)
	require.Len(t, result.Modified, 1)
	assert.Equal(t, "Pod", result.Modified[0].Name)
	assert.Contains(t, result.Modified[0].Diff, "version")
	assert.Contains(t, result.Modified[0].Diff, "1.1")
	assert.Equal(t, "1 added, 1 removed, 1 modified", result.Summary())

	items := result.ModifiedItems()
	require.Len(t, items, 1)
	assert.Equal(t, "Pod", items[0].Name)
}

func TestSpecifications_MatchesNodesBelowRenamedRoot(t *testing.T) {
	from := core.New("Pod")
	from.NewSubspec("Core")
	to := core.New("Renamed")
	to.NewSubspec("Core")

	result, err := compare.Specifications(from, to, compare.Options{})
	require.NoError(t, err)

	assert.Empty(t, result.Added)
	assert.Empty(t, result.Removed)
	names := make([]string, 0, len(result.Modified))
	for _, m := range result.Modified {
		names = append(names, m.Name)
	}
	assert.Equal(t, []string{"Renamed"}, names)
}

func TestSpecifications_StartsFromRoot(t *testing.T) {
	from := core.New("Pod")
	sub := from.NewSubspec("Core")

	result, err := compare.Specifications(sub, from, compare.Options{})
	require.NoError(t, err)
	assert.True(t, result.IsEmpty())
}
