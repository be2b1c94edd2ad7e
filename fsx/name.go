package fsx

import (
	"fmt"

	"github.com/empirelib/efs/internal/errors"
	"github.com/empirelib/efs/pathnode"
)

// nameOptions controls the integer probing of [FS.NextAvailableName].
type nameOptions struct {
	separator string
	start     int
	step      int
	limit     int
}

// NameOption configures NextAvailableName.
type NameOption func(*nameOptions)

// WithSeparator inserts sep between the file name and the integer.
func WithSeparator(sep string) NameOption {
	return func(o *nameOptions) { o.separator = sep }
}

// WithStart begins probing at n instead of 0.
func WithStart(n int) NameOption {
	return func(o *nameOptions) { o.start = n }
}

// WithStep increments the probe integer by n instead of 1.
func WithStep(n int) NameOption {
	return func(o *nameOptions) { o.step = n }
}

// WithLimit caps the probe integer at n (exclusive). The default is
// 1_000_000.
func WithLimit(n int) NameOption {
	return func(o *nameOptions) { o.limit = n }
}

// NextAvailableName returns a variant of path that does not refer to an
// existing file, by appending an increasing integer to the file name:
// report.txt, report0.txt, report1.txt, ... The original path is returned
// as-is when it is already free.
//
// Reaching the limit without finding a free name yields
// [errors.ErrNameOverflow].
func (f *FS) NextAvailableName(path string, opts ...NameOption) (string, error) {
	o := nameOptions{step: 1, limit: 1_000_000}
	for _, opt := range opts {
		opt(&o)
	}
	if o.step <= 0 {
		return "", errors.Newf("step must be positive, got %d", o.step)
	}

	if !f.IsFile(path) {
		return path, nil
	}

	parts := pathnode.SplitParts(path)
	for i := o.start; i < o.limit; i += o.step {
		name := fmt.Sprintf("%s%s%d", parts.Stem, o.separator, i)
		if parts.HasExt {
			name += "." + parts.Ext
		}
		candidate, ok := pathnode.Join(parts.Dir, name)
		if !ok {
			return "", errors.Newf("cannot build candidate for %s", path)
		}
		if !f.IsFile(candidate) {
			return candidate, nil
		}
	}
	return "", errors.Wrapf(errors.ErrNameOverflow, "limit %d for %s", o.limit, path)
}
