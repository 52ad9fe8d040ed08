// Package loader reads manifest files into specification trees.
package loader

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/alycrisco/Core/internal/core"
	"github.com/alycrisco/Core/internal/output"
)

// ManifestPattern matches manifest files below a directory.
var ManifestPattern = "**/*.podspec.{" + strings.Join(Extensions(), ",") + "}"

// LoadFile evaluates the manifest at path and returns its root specification
// with DefinedInFile set to the absolute path.
//
// Loading steps:
//  1. Resolve path and check that it exists.
//  2. Pick an evaluator by extension.
//  3. Evaluate the source into a document.
//  4. Build the tree from the document.
func LoadFile(path string) (*core.Specification, error) {
	// Step 1: Resolve the path.
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving manifest path: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &ManifestNotFoundError{Path: path}
		}
		return nil, fmt.Errorf("checking manifest %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, &InvalidManifestError{Path: path, Reason: "is a directory"}
	}

	// Step 2: Pick the evaluator.
	ev, ok := EvaluatorFor(abs)
	if !ok {
		return nil, &InvalidManifestError{Path: path, Reason: fmt.Sprintf("unsupported manifest format %q", filepath.Ext(abs))}
	}

	src, err := os.ReadFile(abs)
	if err != nil {
		return nil, fmt.Errorf("reading manifest %s: %w", path, err)
	}

	// Steps 3-4: Evaluate and build.
	spec, err := parse(abs, src, ev)
	if err != nil {
		return nil, err
	}
	if err := spec.SetDefinedInFile(abs); err != nil {
		return nil, err
	}

	output.Debug("loaded specification",
		"path", abs,
		"format", ev.Format(),
		"name", spec.Name(),
		"subspecs", len(spec.RecursiveSubspecs()),
	)
	return spec, nil
}

// Parse evaluates src as the manifest named filename without touching the
// file system. The result has no DefinedInFile.
func Parse(filename string, src []byte) (*core.Specification, error) {
	ev, ok := EvaluatorFor(filename)
	if !ok {
		return nil, &InvalidManifestError{Path: filename, Reason: fmt.Sprintf("unsupported manifest format %q", filepath.Ext(filename))}
	}
	return parse(filename, src, ev)
}

func parse(filename string, src []byte, ev Evaluator) (*core.Specification, error) {
	doc, err := ev.Evaluate(filename, src)
	if err != nil {
		var evalErr *ManifestEvaluationError
		if errors.As(err, &evalErr) {
			return nil, evalErr
		}
		return nil, &ManifestEvaluationError{Path: filename, Cause: err}
	}
	return build(filename, doc)
}

// Discover returns the manifests below dir matching ManifestPattern, sorted.
func Discover(dir string) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &ManifestNotFoundError{Path: dir}
		}
		return nil, fmt.Errorf("checking directory %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", dir)
	}

	matches, err := doublestar.Glob(os.DirFS(dir), ManifestPattern)
	if err != nil {
		return nil, fmt.Errorf("searching %s: %w", dir, err)
	}
	paths := make([]string, len(matches))
	for i, m := range matches {
		paths[i] = filepath.Join(dir, filepath.FromSlash(m))
	}
	sort.Strings(paths)

	output.Debug("discovered manifests", "dir", dir, "count", len(paths))
	return paths, nil
}
