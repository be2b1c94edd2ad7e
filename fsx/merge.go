package fsx

import (
	"bufio"
	"compress/gzip"
	"io"
	"io/fs"

	"github.com/therootcompany/xz"

	"github.com/empirelib/efs/internal/errors"
)

// mergeOptions controls [FS.MergeFiles].
type mergeOptions struct {
	ignoreMissing bool
	joinToken     string
}

// MergeOption configures MergeFiles.
type MergeOption func(*mergeOptions)

// IgnoreMissing skips source files that do not exist instead of failing.
func IgnoreMissing() MergeOption {
	return func(o *mergeOptions) { o.ignoreMissing = true }
}

// WithJoinToken writes token between consecutive source files.
func WithJoinToken(token string) MergeOption {
	return func(o *mergeOptions) { o.joinToken = token }
}

// MergeFiles concatenates the contents of srcs into dst, in order.
func (f *FS) MergeFiles(dst string, srcs []string, opts ...MergeOption) error {
	var o mergeOptions
	for _, opt := range opts {
		opt(&o)
	}

	out, err := f.fs.Create(dst)
	if err != nil {
		return errors.Wrapf(err, "creating %s", dst)
	}
	defer out.Close()

	wroteAny := false
	for _, src := range srcs {
		in, err := f.fs.Open(src)
		if err != nil {
			if o.ignoreMissing && errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return errors.Wrapf(err, "opening %s", src)
		}
		if wroteAny && o.joinToken != "" {
			if _, err := io.WriteString(out, o.joinToken); err != nil {
				in.Close()
				return errors.Wrapf(err, "writing join token to %s", dst)
			}
		}
		if _, err := io.Copy(out, in); err != nil {
			in.Close()
			return errors.Wrapf(err, "appending %s", src)
		}
		in.Close()
		wroteAny = true
	}
	return errors.Wrapf(out.Close(), "closing %s", dst)
}

// CountLines returns the number of newline-terminated lines in the file at
// path. A trailing fragment without a newline counts as a line.
func (f *FS) CountLines(path string) (int, error) {
	in, err := f.fs.Open(path)
	if err != nil {
		return 0, errors.Wrapf(err, "opening %s", path)
	}
	defer in.Close()

	count := 0
	r := bufio.NewReader(in)
	for {
		chunk, err := r.ReadString('\n')
		if chunk != "" {
			count++
		}
		if err == io.EOF {
			return count, nil
		}
		if err != nil {
			return 0, errors.Wrapf(err, "reading %s", path)
		}
	}
}

// UngzipTo decompresses the gzip archive at src into dst.
func (f *FS) UngzipTo(src, dst string) error {
	in, err := f.fs.Open(src)
	if err != nil {
		return errors.Wrapf(err, "opening %s", src)
	}
	defer in.Close()

	gz, err := gzip.NewReader(in)
	if err != nil {
		return errors.Wrapf(err, "reading gzip header of %s", src)
	}
	defer gz.Close()

	return f.writeFrom(gz, dst)
}

// UnxzTo decompresses the xz archive at src into dst.
func (f *FS) UnxzTo(src, dst string) error {
	in, err := f.fs.Open(src)
	if err != nil {
		return errors.Wrapf(err, "opening %s", src)
	}
	defer in.Close()

	r, err := xz.NewReader(in, xz.DefaultDictMax)
	if err != nil {
		return errors.Wrapf(err, "reading xz header of %s", src)
	}

	return f.writeFrom(r, dst)
}

func (f *FS) writeFrom(r io.Reader, dst string) error {
	out, err := f.fs.Create(dst)
	if err != nil {
		return errors.Wrapf(err, "creating %s", dst)
	}
	if _, err := io.Copy(out, r); err != nil {
		out.Close()
		return errors.Wrapf(err, "writing %s", dst)
	}
	return errors.Wrapf(out.Close(), "closing %s", dst)
}
