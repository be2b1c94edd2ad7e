package pathnode

import "strings"

// Base returns the last node of the path, unmodified. ok is false when the
// input is empty or the last node is empty (trailing separator).
func Base(path string) (string, bool) {
	nodes := Split(path)
	if len(nodes) == 0 {
		return "", false
	}
	last := nodes[len(nodes)-1]
	if last == "" {
		return "", false
	}
	return last, true
}

// Ext returns the extension of the path's file name: leading dots of the
// last node are stripped, then everything after the first remaining dot is
// the extension. Multi-dot names keep their inner dots:
//
//	Ext("archive.tar.gz") // "tar.gz"
//	Ext(".gitignore")     // absent: no dot remains after stripping
//	Ext("..backup.tar")   // "tar"
//
// ok is false when no dot remains after stripping or the extension would
// be empty.
func Ext(path string) (string, bool) {
	base, ok := Base(path)
	if !ok {
		return "", false
	}
	trimmed := strings.TrimLeft(base, ".")
	i := strings.Index(trimmed, ".")
	if i < 0 {
		return "", false
	}
	ext := trimmed[i+1:]
	if ext == "" {
		return "", false
	}
	return ext, true
}

// Stem returns the path's file name without its extension. Leading dots are
// preserved as part of the name; truncation happens at the first dot that
// follows them:
//
//	Stem(".gitignore")   // ".gitignore"
//	Stem("..backup.tar") // "..backup"
//	Stem("a/b/c.txt")    // "c"
//
// ok is false when the input is empty or the last node is empty.
func Stem(path string) (string, bool) {
	base, ok := Base(path)
	if !ok {
		return "", false
	}
	i := 0
	for i < len(base) && base[i] == '.' {
		i++
	}
	lead, rest := base[:i], base[i:]
	if j := strings.Index(rest, "."); j >= 0 {
		rest = rest[:j]
	}
	return lead + rest, true
}

// Dir returns the containing directory portion of path: everything
// preceding the last node, re-joined.
//
// If the path contains no separator, or is empty, ok is false. If removing
// the last node leaves nothing joinable (a single-node absolute-looking
// path such as "/name"), the original full path is returned instead of
// absent; such a path has no meaningful shorter directory form.
func Dir(path string) (string, bool) {
	nodes := Split(path)
	if len(nodes) < 2 {
		return "", false
	}
	dir, ok := Join(nodes[:len(nodes)-1]...)
	if !ok {
		return path, true
	}
	return dir, true
}

// RemoveExt returns path with its extension and the trailing dot removed.
// A path without an extension (per [Ext]) is returned unchanged. ok is
// false only when the input is empty.
func RemoveExt(path string) (string, bool) {
	if path == "" {
		return "", false
	}
	ext, ok := Ext(path)
	if !ok {
		return path, true
	}
	return path[:len(path)-len(ext)-1], true
}

// ReplaceExt returns path with its extension and the separating dot
// replaced by ext, appended verbatim. No dot is inserted automatically;
// the result contains one only if ext begins with one. An empty ext is
// legal and removes the extension.
//
// A path without an extension is returned unchanged. ok is false only when
// the input path is empty.
func ReplaceExt(path, ext string) (string, bool) {
	if path == "" {
		return "", false
	}
	old, ok := Ext(path)
	if !ok {
		return path, true
	}
	return path[:len(path)-len(old)-1] + ext, true
}

// Parts holds the independently optional components of a path as returned
// by [SplitParts] and [SplitPartsNoExt].
type Parts struct {
	Dir  string
	Stem string
	Ext  string

	HasDir  bool
	HasStem bool
	HasExt  bool
}

// SplitParts decomposes path into its directory portion, file name without
// extension, and extension. Each component may be independently absent.
func SplitParts(path string) Parts {
	var p Parts
	p.Dir, p.HasDir = Dir(path)
	p.Stem, p.HasStem = Stem(path)
	p.Ext, p.HasExt = Ext(path)
	return p
}

// SplitPartsNoExt decomposes path into its directory portion and file name
// without extension, leaving the extension fields zero.
func SplitPartsNoExt(path string) Parts {
	var p Parts
	p.Dir, p.HasDir = Dir(path)
	p.Stem, p.HasStem = Stem(path)
	return p
}
