package fileio

import (
	"bytes"
	"os"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/empirelib/efs/internal/errors"
)

// ReadYAML unmarshals the YAML file at path into out.
func ReadYAML(fs afero.Fs, path string, out any) error {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return errors.Wrapf(err, "reading %s", path)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return errors.Wrapf(err, "parsing %s", path)
	}
	return nil
}

// WriteYAML marshals in and writes it to path, replacing any existing
// content.
func WriteYAML(fs afero.Fs, path string, in any) error {
	data, err := yaml.Marshal(in)
	if err != nil {
		return errors.Wrapf(err, "encoding %s", path)
	}
	if err := afero.WriteFile(fs, path, data, 0o644); err != nil {
		return errors.Wrapf(err, "writing %s", path)
	}
	return nil
}

// AppendYAML marshals in and appends it to path as an additional
// document. The file is created if it does not exist.
func AppendYAML(fs afero.Fs, path string, in any) error {
	data, err := yaml.Marshal(in)
	if err != nil {
		return errors.Wrapf(err, "encoding %s", path)
	}

	f, err := fs.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return errors.Wrapf(err, "opening %s for append", path)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return errors.Wrapf(err, "stat %s", path)
	}

	var buf bytes.Buffer
	if info.Size() > 0 {
		buf.WriteString("---\n")
	}
	buf.Write(data)

	if _, err := f.Write(buf.Bytes()); err != nil {
		return errors.Wrapf(err, "appending to %s", path)
	}
	return nil
}
