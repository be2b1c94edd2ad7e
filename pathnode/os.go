package pathnode

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/cockroachdb/errors"
)

// Cwd returns the process's current working directory.
func Cwd() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", errors.Wrap(err, "getting working directory")
	}
	return wd, nil
}

// SetCwd changes the process's current working directory to path.
func SetCwd(path string) error {
	if err := os.Chdir(path); err != nil {
		return errors.Wrapf(err, "changing working directory to %s", path)
	}
	return nil
}

// UserDir returns the user's home directory, or "" when it cannot be
// determined.
func UserDir() string {
	return xdg.Home
}

// TempDir returns the system's temporary directory.
func TempDir() string {
	return os.TempDir()
}

// ExpandRelative resolves path against the current working directory into
// an absolute form. Symlinks are not resolved. An empty path yields ""
// with no error.
func ExpandRelative(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", errors.Wrapf(err, "expanding %s", path)
	}
	return abs, nil
}

// DirAbs resolves path to an absolute, symlink-resolved form and returns
// its containing-directory portion per [Dir]. When symlink resolution
// fails (for example the path does not exist), the unresolved absolute
// form is used. An empty path yields "" with no error.
//
// The directory portion is rejoined with [Join], which drops the empty
// node a leading separator produces.
func DirAbs(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", errors.Wrapf(err, "resolving %s", path)
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		abs = resolved
	}
	dir, ok := Dir(abs)
	if !ok {
		return "", nil
	}
	return dir, nil
}

// StripBaseIfFile removes the last node of path only when the filesystem
// currently reports the full path as an existing regular file; otherwise
// the path is returned unchanged. This is the engine's only mutating-check
// hybrid: it performs a live stat.
//
// An empty path, or a path whose stripping leaves nothing joinable, yields
// "" with no error. A stat failure other than non-existence is returned as
// an error.
func StripBaseIfFile(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return path, nil
		}
		return "", errors.Wrapf(err, "checking %s", path)
	}
	if !info.Mode().IsRegular() {
		return path, nil
	}
	nodes := Split(path)
	stripped, ok := Join(nodes[:len(nodes)-1]...)
	if !ok {
		return "", nil
	}
	return stripped, nil
}
