//go:build linux

package fsx

import (
	"syscall"
	"time"

	"github.com/empirelib/efs/internal/errors"
)

// AccessTime returns the last-access time of the file at path.
func (f *FS) AccessTime(path string) (time.Time, error) {
	sys, err := f.statSys(path)
	if err != nil {
		return time.Time{}, err
	}
	return time.Unix(sys.Atim.Sec, sys.Atim.Nsec), nil
}

// ChangeTime returns the inode-change time of the file at path.
func (f *FS) ChangeTime(path string) (time.Time, error) {
	sys, err := f.statSys(path)
	if err != nil {
		return time.Time{}, err
	}
	return time.Unix(sys.Ctim.Sec, sys.Ctim.Nsec), nil
}

func (f *FS) statSys(path string) (*syscall.Stat_t, error) {
	info, err := f.fs.Stat(path)
	if err != nil {
		return nil, errors.Wrapf(err, "stating %s", path)
	}
	sys, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return nil, errors.Wrapf(errors.ErrUnsupported, "no stat details for %s", path)
	}
	return sys, nil
}
