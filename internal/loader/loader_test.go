package loader_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alycrisco/Core/internal/core"
	oerrors "github.com/alycrisco/Core/internal/errors"
	"github.com/alycrisco/Core/internal/loader"
	"github.com/alycrisco/Core/internal/testutil"
)

var fixtures = []string{
	"Pusher.podspec.yaml",
	"Pusher.podspec.json",
	"Pusher.podspec.cue",
	"Pusher.podspec.hcl",
}

func subspecNames(s *core.Specification) []string {
	var out []string
	for _, sub := range s.RecursiveSubspecs() {
		out = append(out, sub.Name())
	}
	return out
}

func TestLoadFile_Formats(t *testing.T) {
	for _, name := range fixtures {
		t.Run(name, func(t *testing.T) {
			path := testutil.FixturePath(t, name)

			spec, err := loader.LoadFile(path)
			require.NoError(t, err)

			assert.Equal(t, "Pusher (1.0)", spec.String())
			assert.Equal(t, path, spec.DefinedInFile())
			assert.Equal(t, []string{"Pusher/Core", "Pusher/Extras", "Pusher/Extras/Deep"}, subspecNames(spec))
			assert.Equal(t, []string{"name", "version", "summary", "platforms", "dependencies", "ios"}, spec.Attributes().Keys())

			target, ok := spec.DeploymentTarget(core.PlatformIOS)
			require.True(t, ok)
			assert.Equal(t, "9.0", target)

			extras, err := spec.SubspecByName("Pusher/Extras")
			require.NoError(t, err)
			deps, err := extras.DependenciesOn(core.NewPlatform(core.PlatformIOS))
			require.NoError(t, err)
			require.Len(t, deps, 2)
			assert.Equal(t, "SocketRocket (~> 0.5)", deps[0].String())
			assert.Equal(t, "Reachability", deps[1].String())

			assert.Equal(t, []string{"UIKit"}, spec.Consumer(core.NewPlatform(core.PlatformIOS)).Frameworks())
		})
	}
}

func TestLoadFile_FormatsAgree(t *testing.T) {
	want, err := loader.LoadFile(testutil.FixturePath(t, fixtures[0]))
	require.NoError(t, err)

	for _, name := range fixtures[1:] {
		got, err := loader.LoadFile(testutil.FixturePath(t, name))
		require.NoError(t, err)
		assert.True(t, want.Equal(got), "%s differs from %s:\n%s", name, fixtures[0], got.ToValue())
	}
}

func TestLoadFile_RelativePathIsRecordedAbsolute(t *testing.T) {
	path := testutil.CopyFixture(t, "Pusher.podspec.yaml")
	t.Chdir(filepath.Dir(path))

	spec, err := loader.LoadFile("Pusher.podspec.yaml")
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(spec.DefinedInFile()))
}

func TestLoadFile_NotFound(t *testing.T) {
	_, err := loader.LoadFile(filepath.Join(t.TempDir(), "Missing.podspec.yaml"))

	var nf *loader.ManifestNotFoundError
	require.True(t, errors.As(err, &nf))
	assert.True(t, errors.Is(err, oerrors.ErrNotFound))
	assert.Contains(t, err.Error(), "Missing.podspec.yaml")
}

func TestLoadFile_UnsupportedFormat(t *testing.T) {
	path := testutil.WriteFile(t, t.TempDir(), "Pod.podspec.toml", `name = "Pod"`)

	_, err := loader.LoadFile(path)

	var invalid *loader.InvalidManifestError
	require.True(t, errors.As(err, &invalid))
	assert.Contains(t, invalid.Reason, ".toml")
}

func TestLoadFile_Directory(t *testing.T) {
	_, err := loader.LoadFile(t.TempDir())
	assert.True(t, errors.Is(err, oerrors.ErrValidation))
}

func TestLoadFile_InvalidManifest(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		reason  string
	}{
		{"top level list", "Pod.podspec.yaml", "- a\n- b\n", "expected a specification map"},
		{"empty document", "Pod.podspec.yaml", "", "expected a specification map"},
		{"missing name", "Pod.podspec.yaml", "version: 1.0\n", "has no name"},
		{"blank name", "Pod.podspec.json", `{"name": " "}`, "non-empty string"},
		{"subspecs not a list", "Pod.podspec.yaml", "name: Pod\nsubspecs: Core\n", "must be a list"},
		{"subspec not a map", "Pod.podspec.yaml", "name: Pod\nsubspecs: [Core]\n", "must be a map"},
		{"subspec without name", "Pod.podspec.yaml", "name: Pod\nsubspecs:\n  - summary: x\n", "has no name"},
		{"subspec name with separator", "Pod.podspec.yaml", "name: Pod\nsubspecs:\n  - name: A/B\n", "must not contain"},
		{"duplicate subspec", "Pod.podspec.yaml", "name: Pod\nsubspecs:\n  - name: A\n  - name: A\n", "duplicate subspec"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := testutil.WriteFile(t, t.TempDir(), tt.file, tt.content)

			_, err := loader.LoadFile(path)

			var invalid *loader.InvalidManifestError
			require.True(t, errors.As(err, &invalid), "got %v", err)
			assert.Contains(t, invalid.Reason, tt.reason)
			assert.Equal(t, path, invalid.Path)
			assert.True(t, errors.Is(err, oerrors.ErrValidation))
		})
	}
}

func TestLoadFile_EvaluationError(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"yaml syntax", "Pod.podspec.yaml", "name: [unclosed\n"},
		{"json syntax", "Pod.podspec.json", `{"name": `},
		{"cue syntax", "Pod.podspec.cue", "name: {\n"},
		{"cue incomplete", "Pod.podspec.cue", "name: string\n"},
		{"cue conflict", "Pod.podspec.cue", "name: \"a\" & \"b\"\n"},
		{"hcl syntax", "Pod.podspec.hcl", "name = \n"},
		{"hcl unknown block", "Pod.podspec.hcl", "name = \"Pod\"\nresource \"x\" {}\n"},
		{"hcl unlabeled subspec", "Pod.podspec.hcl", "name = \"Pod\"\nsubspec {}\n"},
		{"hcl variable reference", "Pod.podspec.hcl", "name = var.name\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := testutil.WriteFile(t, t.TempDir(), tt.file, tt.content)

			_, err := loader.LoadFile(path)

			var evalErr *loader.ManifestEvaluationError
			require.True(t, errors.As(err, &evalErr), "got %v", err)
			assert.True(t, errors.Is(err, oerrors.ErrEvaluation))
			assert.NotNil(t, evalErr.Cause)
			assert.Equal(t, path, evalErr.Path)
		})
	}
}

func TestLoadFile_HCLErrorLocation(t *testing.T) {
	path := testutil.WriteFile(t, t.TempDir(), "Pod.podspec.hcl", "name = \"Pod\"\n\nwidget {}\n")

	_, err := loader.LoadFile(path)

	var evalErr *loader.ManifestEvaluationError
	require.True(t, errors.As(err, &evalErr))
	assert.Equal(t, path+":3:1", evalErr.Location)
	assert.Contains(t, err.Error(), path+":3:1")
}

func TestLoadFile_CUESyntaxErrorLocation(t *testing.T) {
	path := testutil.WriteFile(t, t.TempDir(), "Pod.podspec.cue", "name: {\n")

	_, err := loader.LoadFile(path)

	var evalErr *loader.ManifestEvaluationError
	require.True(t, errors.As(err, &evalErr))
	assert.NotEmpty(t, evalErr.Location)
}

func TestParse_KeepsFloatLiteralText(t *testing.T) {
	tests := []struct {
		file string
		src  string
	}{
		{"Pod.podspec.yaml", "name: Pod\nversion: 1.10\nplatforms:\n  ios: 9.10\n"},
		{"Pod.podspec.hcl", "name = \"Pod\"\nversion = 1.10\nplatforms = {\n  ios = 9.10\n}\n"},
	}
	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			spec, err := loader.Parse(tt.file, []byte(tt.src))
			require.NoError(t, err)

			v, err := spec.Version()
			require.NoError(t, err)
			assert.Equal(t, "1.10", v.String())
			target, ok := spec.DeploymentTarget(core.PlatformIOS)
			require.True(t, ok)
			assert.Equal(t, "9.10", target)
			assert.Empty(t, spec.DefinedInFile())
		})
	}
}

func TestParse_YAMLKeepsKeyOrder(t *testing.T) {
	spec, err := loader.Parse("Pod.podspec.yaml", []byte("name: Pod\nzeta: 1\nalpha: 2\nmid: 3\n"))
	require.NoError(t, err)

	assert.Equal(t, []string{"name", "zeta", "alpha", "mid"}, spec.Attributes().Keys())
}

func TestParse_YAMLAnchors(t *testing.T) {
	src := "name: Pod\nshared: &fw [UIKit]\nios:\n  frameworks: *fw\n"

	spec, err := loader.Parse("Pod.podspec.yaml", []byte(src))
	require.NoError(t, err)

	assert.Equal(t, []string{"UIKit"}, spec.Consumer(core.NewPlatform(core.PlatformIOS)).Frameworks())
}

func TestParse_HCLPlatformBlockInSubspec(t *testing.T) {
	src := `
name = "Pod"

subspec "Maps" {
  osx {
    frameworks = ["MapKit"]
  }
}
`
	spec, err := loader.Parse("Pod.podspec.hcl", []byte(src))
	require.NoError(t, err)

	maps, ok := spec.FindSubspec("Pod/Maps")
	require.True(t, ok)
	assert.Equal(t, []string{"MapKit"}, maps.Consumer(core.NewPlatform(core.PlatformOSX)).Frameworks())
	assert.Empty(t, maps.Consumer(core.NewPlatform(core.PlatformIOS)).Frameworks())
}

func TestParse_HCLDuplicatePlatform(t *testing.T) {
	src := "name = \"Pod\"\nios = {}\nios {\n}\n"

	_, err := loader.Parse("Pod.podspec.hcl", []byte(src))
	assert.True(t, errors.Is(err, oerrors.ErrEvaluation))
}

func TestParse_UnsupportedFormat(t *testing.T) {
	_, err := loader.Parse("Pod.podspec", []byte("name: Pod"))
	assert.True(t, errors.Is(err, oerrors.ErrValidation))
}

func TestFromValue(t *testing.T) {
	doc := core.MapOf(
		"name", "Pod",
		"version", "2.0",
		"subspecs", []any{
			core.MapOf("name", "Core"),
		},
	)

	spec, err := loader.FromValue(doc)
	require.NoError(t, err)
	assert.Equal(t, "Pod (2.0)", spec.String())
	assert.Equal(t, []string{"Pod/Core"}, subspecNames(spec))
	assert.True(t, doc.Equal(spec.ToValue()))
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFile(t, dir, "A.podspec.yaml", "name: A\n")
	testutil.WriteFile(t, dir, "nested/deeper/B.podspec.cue", "name: \"B\"\n")
	testutil.WriteFile(t, dir, "nested/C.podspec.hcl", "name = \"C\"\n")
	testutil.WriteFile(t, dir, "notes.yaml", "x: 1\n")
	testutil.WriteFile(t, dir, "D.podspec.toml", "")

	got, err := loader.Discover(dir)
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(dir, "A.podspec.yaml"),
		filepath.Join(dir, "nested", "C.podspec.hcl"),
		filepath.Join(dir, "nested", "deeper", "B.podspec.cue"),
	}, got)
}

func TestDiscover_Missing(t *testing.T) {
	_, err := loader.Discover(filepath.Join(t.TempDir(), "nope"))
	assert.True(t, errors.Is(err, oerrors.ErrNotFound))
}

func TestEvaluatorFor(t *testing.T) {
	tests := map[string]string{
		"a.podspec.yaml": "yaml",
		"a.podspec.YML":  "yaml",
		"a.podspec.json": "json",
		"a.podspec.cue":  "cue",
		"a.podspec.hcl":  "hcl",
	}
	for file, format := range tests {
		ev, ok := loader.EvaluatorFor(file)
		require.True(t, ok, file)
		assert.Equal(t, format, ev.Format(), file)
	}

	_, ok := loader.EvaluatorFor("a.podspec.rb")
	assert.False(t, ok)
}

func TestManifestPattern(t *testing.T) {
	assert.Equal(t, "**/*.podspec.{cue,hcl,json,yaml,yml}", loader.ManifestPattern)
}
