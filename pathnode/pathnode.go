package pathnode

import (
	"os"
	"path/filepath"
	"strings"
)

// Separator is the single character that joins nodes into a path.
// It is fixed per platform: backslash on Windows, forward slash otherwise.
const Separator = string(os.PathSeparator)

// Split partitions path on every occurrence of [Separator], preserving
// empty nodes produced by consecutive, leading, or trailing separators.
//
// It returns nil for an empty path, never an empty slice, so callers can
// tell "no input" apart from "a single empty node".
//
// Results are memoized through the configured split cache (see
// [SetSplitCache]) keyed on the literal input string; no normalization is
// applied before lookup. Callers must not modify the returned slice.
func Split(path string) []string {
	if path == "" {
		return nil
	}
	if c := splitCache(); c != nil {
		if nodes, ok := c.Get(path); ok {
			return nodes
		}
		nodes := strings.Split(path, Separator)
		c.Add(path, nodes)
		return nodes
	}
	return strings.Split(path, Separator)
}

// Join concatenates the given nodes with exactly one [Separator] between
// consecutive nodes. Empty nodes are dropped before joining. If nothing
// remains after filtering, ok is false.
//
// Join is therefore not a strict inverse of [Split] for paths containing
// empty nodes; round-trip equality holds only for non-empty-node paths.
func Join(nodes ...string) (string, bool) {
	kept := nodes[:0:0]
	for _, n := range nodes {
		if n != "" {
			kept = append(kept, n)
		}
	}
	if len(kept) == 0 {
		return "", false
	}
	return strings.Join(kept, Separator), true
}

// IsAbsolute reports whether path is absolute under the host operating
// system's rule. An empty path is not absolute.
func IsAbsolute(path string) bool {
	return filepath.IsAbs(path)
}

// IsUnixLike reports whether path contains at least one forward slash.
// A path may be both unix-like and windows-like.
func IsUnixLike(path string) bool {
	return strings.Contains(path, "/")
}

// IsWindowsLike reports whether path contains at least one backslash.
// A path may be both unix-like and windows-like.
func IsWindowsLike(path string) bool {
	return strings.Contains(path, `\`)
}

// ToWindows replaces every forward slash in path with a backslash.
// ok is false when the input is empty.
func ToWindows(path string) (string, bool) {
	if path == "" {
		return "", false
	}
	return strings.ReplaceAll(path, "/", `\`), true
}

// ToUnix replaces every backslash in path with a forward slash.
// ok is false when the input is empty.
func ToUnix(path string) (string, bool) {
	if path == "" {
		return "", false
	}
	return strings.ReplaceAll(path, `\`, "/"), true
}
