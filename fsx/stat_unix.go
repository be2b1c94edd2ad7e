//go:build unix

package fsx

import (
	"os"
	"path/filepath"
	"syscall"

	"github.com/spf13/afero"

	"github.com/empirelib/efs/internal/errors"
)

// IsMount reports whether path is a mount point: a point where a different
// filesystem is mounted. It compares the device of path with that of its
// parent; matching devices with matching inodes mean path is the root.
//
// Only the operating system filesystem can answer this; other backings
// yield [errors.ErrUnsupported].
func (f *FS) IsMount(path string) (bool, error) {
	if _, ok := f.fs.(*afero.OsFs); !ok {
		return false, errors.Wrapf(errors.ErrUnsupported, "mount check on %s", f.fs.Name())
	}

	info, err := os.Stat(path)
	if err != nil {
		return false, errors.Wrapf(err, "stating %s", path)
	}
	if !info.IsDir() {
		return false, nil
	}
	parentInfo, err := os.Stat(filepath.Join(path, ".."))
	if err != nil {
		return false, errors.Wrapf(err, "stating parent of %s", path)
	}

	sys, ok := info.Sys().(*syscall.Stat_t)
	parentSys, pok := parentInfo.Sys().(*syscall.Stat_t)
	if !ok || !pok {
		return false, errors.Wrapf(errors.ErrUnsupported, "no stat details for %s", path)
	}
	if sys.Dev != parentSys.Dev {
		return true, nil
	}
	// Same device: only the root has path/.. pointing at path itself.
	return sys.Ino == parentSys.Ino, nil
}
