//go:build !unix

package fsx

import "github.com/empirelib/efs/internal/errors"

// IsMount is not supported on this platform.
func (f *FS) IsMount(path string) (bool, error) {
	return false, errors.Wrap(errors.ErrUnsupported, "mount check")
}
