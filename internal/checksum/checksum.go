// Package checksum computes content digests of manifest files.
package checksum

import (
	"crypto/sha1" //nolint:gosec // digest identifies content, it does not protect it
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/alycrisco/Core/internal/core"
	oerrors "github.com/alycrisco/Core/internal/errors"
)

// Of returns the digest of the manifest the tree containing spec was loaded
// from. Subspecs resolve the file through their root.
func Of(spec *core.Specification) (string, error) {
	path := spec.DefinedInFile()
	if path == "" {
		return "", &oerrors.DetailError{
			Type:    "checksum unavailable",
			Message: fmt.Sprintf("%s was not loaded from a file", spec.Root().Name()),
			Hint:    "Load the specification from a manifest before computing its checksum.",
			Cause:   oerrors.ErrInvalidOperation,
		}
	}
	return File(path)
}

// File returns the lowercase hex SHA-1 digest of the file at path.
func File(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", oerrors.NewNotFoundError(fmt.Sprintf("manifest %s does not exist", path), path, "")
		}
		return "", fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	h := sha1.New() //nolint:gosec // see import
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("hashing %s: %w", path, err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
