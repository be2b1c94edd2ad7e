package fileio

import (
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"

	"github.com/empirelib/efs/internal/errors"
)

// ReadTOML unmarshals the TOML file at path into out.
func ReadTOML(fs afero.Fs, path string, out any) error {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return errors.Wrapf(err, "reading %s", path)
	}
	if err := toml.Unmarshal(data, out); err != nil {
		return errors.Wrapf(err, "parsing %s", path)
	}
	return nil
}

// WriteTOML marshals in and writes it to path, replacing any existing
// content.
func WriteTOML(fs afero.Fs, path string, in any) error {
	data, err := toml.Marshal(in)
	if err != nil {
		return errors.Wrapf(err, "encoding %s", path)
	}
	if err := afero.WriteFile(fs, path, data, 0o644); err != nil {
		return errors.Wrapf(err, "writing %s", path)
	}
	return nil
}
