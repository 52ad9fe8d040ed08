package config

import (
	"os"
	"path/filepath"

	oerrors "github.com/alycrisco/Core/internal/errors"
)

// WriteDefault writes DefaultConfigTemplate to path, creating its directory
// with 0700 and the file with 0600. An existing file is only replaced when
// force is set.
func WriteDefault(path string, force bool) error {
	exists, err := FileExists(path)
	if err != nil {
		return oerrors.Wrap(oerrors.ErrInvalidOperation, "could not inspect "+path)
	}
	if exists && !force {
		return &oerrors.DetailError{
			Type:     "validation failed",
			Message:  "configuration already exists",
			Location: path,
			Hint:     "Use --force to overwrite existing configuration.",
			Cause:    oerrors.ErrValidation,
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return oerrors.Wrap(oerrors.ErrInvalidOperation, "could not create "+filepath.Dir(path))
	}

	if err := os.WriteFile(path, []byte(DefaultConfigTemplate), 0o600); err != nil {
		return oerrors.Wrap(oerrors.ErrInvalidOperation, "could not write "+path)
	}
	return nil
}
