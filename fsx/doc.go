// Package fsx is a facade over filesystem operations: existence probes,
// file and directory creation, copying, moving, deletion, metadata
// queries, and a handful of content helpers (merging, line counting,
// archive extraction, atomic writes).
//
// All operations go through an [FS], which wraps an afero.Fs so tests can
// run against an in-memory filesystem:
//
//	f := fsx.New(afero.NewMemMapFs())
//	if f.IsFile("config.yaml") { ... }
//
// [Default] wraps the host operating system's filesystem.
//
// Boolean probes (Exists, IsFile, IsDir, ...) swallow errors and answer
// false, matching their use in conditionals. Every mutating operation
// returns an explicit error. Operations that need capabilities the backing
// filesystem lacks (links, mount detection, access times on non-unix
// platforms) fail with [errors.ErrUnsupported] rather than guessing.
package fsx
