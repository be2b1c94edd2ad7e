//go:build !linux && !darwin

package fsx

import (
	"time"

	"github.com/empirelib/efs/internal/errors"
)

// AccessTime is not supported on this platform.
func (f *FS) AccessTime(path string) (time.Time, error) {
	return time.Time{}, errors.Wrap(errors.ErrUnsupported, "access time")
}

// ChangeTime is not supported on this platform.
func (f *FS) ChangeTime(path string) (time.Time, error) {
	return time.Time{}, errors.Wrap(errors.ErrUnsupported, "change time")
}
