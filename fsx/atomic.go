package fsx

import (
	"io"
	"os"

	"github.com/spf13/afero"

	"github.com/empirelib/efs/internal/errors"
)

// MaxFileSize is the maximum file size [FS.ReadFileWithLimit] will read
// (1MB). This prevents memory exhaustion from unexpectedly large files.
const MaxFileSize = 1024 * 1024

// ErrFileTooLarge indicates that a file exceeded MaxFileSize.
var ErrFileTooLarge = errors.Newf("file exceeds maximum size of %d bytes", MaxFileSize)

// AtomicWriteFile writes data to a file atomically using a temp file +
// rename pattern. Interrupted writes leave the original file intact.
//
// The caller is responsible for ensuring the parent directory exists.
// Permissions are applied to the final file via the perm parameter.
func (f *FS) AtomicWriteFile(path string, data []byte, perm os.FileMode) error {
	dir, name := splitForTemp(path)

	// Temp file in the same directory so the rename stays on one filesystem.
	tmp, err := afero.TempFile(f.fs, dir, ".efs-atomic-"+name+"-*.tmp")
	if err != nil {
		return errors.Wrap(err, "creating temp file")
	}

	tmpName := tmp.Name()
	defer func() {
		// Only remove if the rename did not happen.
		if exists, _ := afero.Exists(f.fs, tmpName); exists {
			f.fs.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return errors.Wrap(err, "writing temp file")
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "closing temp file")
	}
	if err := f.fs.Chmod(tmpName, perm); err != nil {
		return errors.Wrap(err, "setting file permissions")
	}
	if err := f.fs.Rename(tmpName, path); err != nil {
		return errors.Wrap(err, "renaming temp file")
	}
	return nil
}

func splitForTemp(path string) (dir, name string) {
	for i := len(path) - 1; i >= 0; i-- {
		if os.IsPathSeparator(path[i]) {
			return path[:i], path[i+1:]
		}
	}
	return ".", path
}

// ReadFileWithLimit reads a file up to [MaxFileSize]. It returns
// [ErrFileTooLarge] when the file is larger than the limit.
func (f *FS) ReadFileWithLimit(path string) ([]byte, error) {
	file, err := f.fs.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", path)
	}
	defer file.Close()

	// Fail fast when the size is already known to be too large.
	if info, err := file.Stat(); err == nil && info.Size() > MaxFileSize {
		return nil, ErrFileTooLarge
	}

	data, err := io.ReadAll(io.LimitReader(file, MaxFileSize+1))
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	if len(data) > MaxFileSize {
		return nil, ErrFileTooLarge
	}
	return data, nil
}
