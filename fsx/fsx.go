package fsx

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/afero"

	"github.com/empirelib/efs/internal/errors"
)

// DefaultDirPerm is the permission applied to directories created through
// this package.
const DefaultDirPerm = 0o755

// DefaultFilePerm is the permission applied to files created through this
// package.
const DefaultFilePerm = 0o644

// FS wraps an afero filesystem with the facade's operations.
type FS struct {
	fs afero.Fs
}

// New returns an FS operating on the given afero filesystem.
func New(fsys afero.Fs) *FS {
	return &FS{fs: fsys}
}

// Default returns an FS operating on the host operating system's
// filesystem.
func Default() *FS {
	return &FS{fs: afero.NewOsFs()}
}

// Fs exposes the backing afero filesystem.
func (f *FS) Fs() afero.Fs {
	return f.fs
}

// Exists reports whether path refers to an existing file or directory.
// Errors answer false.
func (f *FS) Exists(path string) bool {
	return f.IsFile(path) || f.IsDir(path)
}

// IsFile reports whether path refers to an existing regular file.
// Errors answer false.
func (f *FS) IsFile(path string) bool {
	info, err := f.fs.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// IsDir reports whether path refers to an existing directory.
// Errors answer false.
func (f *FS) IsDir(path string) bool {
	info, err := f.fs.Stat(path)
	return err == nil && info.IsDir()
}

// IsSymlink reports whether path refers to a symbolic link. It answers
// false when the backing filesystem cannot lstat.
func (f *FS) IsSymlink(path string) bool {
	lstater, ok := f.fs.(afero.Lstater)
	if !ok {
		return false
	}
	info, lstatCalled, err := lstater.LstatIfPossible(path)
	if err != nil || !lstatCalled {
		return false
	}
	return info.Mode()&fs.ModeSymlink != 0
}

// CreateFile creates an empty file at path. With exclusive, an existing
// file is an error; otherwise it is truncated.
func (f *FS) CreateFile(path string, exclusive bool) error {
	flag := os.O_CREATE | os.O_WRONLY | os.O_TRUNC
	if exclusive {
		flag = os.O_CREATE | os.O_WRONLY | os.O_EXCL
	}
	file, err := f.fs.OpenFile(path, flag, DefaultFilePerm)
	if err != nil {
		return errors.Wrapf(err, "creating %s", path)
	}
	return errors.Wrapf(file.Close(), "closing %s", path)
}

// DeleteFile removes the file at path. Deleting a directory is an error;
// use [FS.Rmdir].
func (f *FS) DeleteFile(path string) error {
	if f.IsDir(path) {
		return errors.Newf("%s is a directory", path)
	}
	return errors.Wrapf(f.fs.Remove(path), "deleting %s", path)
}

// Rename renames (moves) oldpath to newpath within the same filesystem.
func (f *FS) Rename(oldpath, newpath string) error {
	return errors.Wrapf(f.fs.Rename(oldpath, newpath), "renaming %s", oldpath)
}

// CopyFile copies the regular file at src to dst, truncating dst if it
// exists. Permissions of src are preserved.
func (f *FS) CopyFile(src, dst string) error {
	info, err := f.fs.Stat(src)
	if err != nil {
		return errors.Wrapf(err, "stating %s", src)
	}
	if !info.Mode().IsRegular() {
		return errors.Newf("%s is not a regular file", src)
	}

	in, err := f.fs.Open(src)
	if err != nil {
		return errors.Wrapf(err, "opening %s", src)
	}
	defer in.Close()

	out, err := f.fs.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return errors.Wrapf(err, "creating %s", dst)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return errors.Wrapf(err, "copying to %s", dst)
	}
	return errors.Wrapf(out.Close(), "closing %s", dst)
}

// MoveFile moves the file at src to dst, falling back to copy-and-delete
// when a rename is not possible (for example across devices).
func (f *FS) MoveFile(src, dst string) error {
	if err := f.fs.Rename(src, dst); err == nil {
		return nil
	}
	if err := f.CopyFile(src, dst); err != nil {
		return err
	}
	return errors.Wrapf(f.fs.Remove(src), "removing %s after copy", src)
}

// CopyDir recursively copies the directory tree at src to dst. dst must
// not already exist.
func (f *FS) CopyDir(src, dst string) error {
	info, err := f.fs.Stat(src)
	if err != nil {
		return errors.Wrapf(err, "stating %s", src)
	}
	if !info.IsDir() {
		return errors.Newf("%s is not a directory", src)
	}
	if f.Exists(dst) {
		return errors.Newf("%s already exists", dst)
	}
	return f.copyTree(src, dst, info.Mode().Perm())
}

func (f *FS) copyTree(src, dst string, perm fs.FileMode) error {
	if err := f.fs.MkdirAll(dst, perm); err != nil {
		return errors.Wrapf(err, "creating %s", dst)
	}
	entries, err := afero.ReadDir(f.fs, src)
	if err != nil {
		return errors.Wrapf(err, "reading %s", src)
	}
	for _, entry := range entries {
		s := filepath.Join(src, entry.Name())
		d := filepath.Join(dst, entry.Name())
		if entry.IsDir() {
			if err := f.copyTree(s, d, entry.Mode().Perm()); err != nil {
				return err
			}
			continue
		}
		if err := f.CopyFile(s, d); err != nil {
			return err
		}
	}
	return nil
}

// MoveDir moves the directory tree at src to dst, falling back to
// copy-and-delete when a rename is not possible.
func (f *FS) MoveDir(src, dst string) error {
	if err := f.fs.Rename(src, dst); err == nil {
		return nil
	}
	if err := f.CopyDir(src, dst); err != nil {
		return err
	}
	return errors.Wrapf(f.fs.RemoveAll(src), "removing %s after copy", src)
}

// Mkdir creates the directory at path along with any missing parents.
// It is idempotent unless ignoreExisting is false.
func (f *FS) Mkdir(path string, ignoreExisting bool) error {
	if !ignoreExisting && f.IsDir(path) {
		return errors.Newf("%s already exists", path)
	}
	return errors.Wrapf(f.fs.MkdirAll(path, DefaultDirPerm), "creating %s", path)
}

// Rmdir removes the directory at path. With mustBeEmpty, a non-empty
// directory is an error; otherwise the whole tree is removed.
func (f *FS) Rmdir(path string, mustBeEmpty bool) error {
	if mustBeEmpty {
		return errors.Wrapf(f.fs.Remove(path), "removing %s", path)
	}
	return errors.Wrapf(f.fs.RemoveAll(path), "removing %s", path)
}

// RemakeDir removes the directory tree at path and recreates it empty.
func (f *FS) RemakeDir(path string) error {
	if err := f.fs.RemoveAll(path); err != nil {
		return errors.Wrapf(err, "removing %s", path)
	}
	return errors.Wrapf(f.fs.MkdirAll(path, DefaultDirPerm), "recreating %s", path)
}

// Symlink creates a symbolic link at linkname pointing to target.
// Filesystems without symlink support yield [errors.ErrUnsupported].
func (f *FS) Symlink(target, linkname string) error {
	linker, ok := f.fs.(afero.Symlinker)
	if !ok {
		return errors.Wrapf(errors.ErrUnsupported, "symlink on %s", f.fs.Name())
	}
	if err := linker.SymlinkIfPossible(target, linkname); err != nil {
		return errors.Wrapf(err, "linking %s", linkname)
	}
	return nil
}

// HardLink creates a hard link at linkname for the file at target. Only
// the operating system filesystem supports this; other backings yield
// [errors.ErrUnsupported].
func (f *FS) HardLink(target, linkname string) error {
	if _, ok := f.fs.(*afero.OsFs); !ok {
		return errors.Wrapf(errors.ErrUnsupported, "hard link on %s", f.fs.Name())
	}
	if err := os.Link(target, linkname); err != nil {
		return errors.Wrapf(err, "linking %s", linkname)
	}
	return nil
}

// Size returns the size in bytes of the file at path.
func (f *FS) Size(path string) (int64, error) {
	info, err := f.fs.Stat(path)
	if err != nil {
		return 0, errors.Wrapf(err, "stating %s", path)
	}
	return info.Size(), nil
}

// ModTime returns the last-modification time of the file at path.
func (f *FS) ModTime(path string) (time.Time, error) {
	info, err := f.fs.Stat(path)
	if err != nil {
		return time.Time{}, errors.Wrapf(err, "stating %s", path)
	}
	return info.ModTime(), nil
}
