package pathnode

import "fmt"

// Path is an immutable value wrapping a path string with chainable
// transformations. Every modifier returns a new Path; once a step yields
// an absent result, the Path stays absent and further modifiers are no-ops.
//
//	p := pathnode.NewPath("build/out/app.tar.gz").RemoveExt().ToParent()
//	dir, ok := p.Value()
type Path struct {
	p      string
	absent bool
}

// NewPath wraps path. An empty path is a valid (non-absent) starting point.
func NewPath(path string) Path {
	return Path{p: path}
}

// FromUserDir returns a Path at the user's home directory.
func FromUserDir() Path {
	return Path{p: UserDir()}
}

// FromTempDir returns a Path at the system temp directory.
func FromTempDir() Path {
	return Path{p: TempDir()}
}

// FromCwd returns a Path at the current working directory.
func FromCwd() (Path, error) {
	wd, err := Cwd()
	if err != nil {
		return Path{absent: true}, err
	}
	return Path{p: wd}, nil
}

// FromParentSibling returns a Path at the first parent sibling of path
// named name, per [FindParentSibling]. The Path is absent when no sibling
// was found.
func FromParentSibling(path, name string) Path {
	found, ok := FindParentSibling(path, name)
	if !ok {
		return Path{absent: true}
	}
	return Path{p: found}
}

// Value returns the wrapped path string. ok is false when a previous step
// yielded an absent result.
func (p Path) Value() (string, bool) {
	return p.p, !p.absent
}

// String implements fmt.Stringer. An absent Path renders as "<absent>".
func (p Path) String() string {
	if p.absent {
		return "<absent>"
	}
	return p.p
}

// Equal reports whether both paths hold the same value and absence state.
func (p Path) Equal(other Path) bool {
	return p == other
}

// IsAbsent reports whether a previous step yielded an absent result.
func (p Path) IsAbsent() bool {
	return p.absent
}

// Split returns the wrapped path's nodes, nil when absent or empty.
func (p Path) Split() []string {
	if p.absent {
		return nil
	}
	return Split(p.p)
}

// IsAbsolute reports whether the wrapped path is absolute.
func (p Path) IsAbsolute() bool {
	return !p.absent && IsAbsolute(p.p)
}

// IsUnixLike reports whether the wrapped path contains a forward slash.
func (p Path) IsUnixLike() bool {
	return !p.absent && IsUnixLike(p.p)
}

// IsWindowsLike reports whether the wrapped path contains a backslash.
func (p Path) IsWindowsLike() bool {
	return !p.absent && IsWindowsLike(p.p)
}

// NodeAt returns the node at index, or [ErrIndexOutOfRange].
func (p Path) NodeAt(index int) (string, error) {
	if p.absent {
		return "", fmt.Errorf("node %d of absent path: %w", index, ErrIndexOutOfRange)
	}
	return NodeAt(p.p, index)
}

// Parts returns the directory, stem, and extension of the wrapped path.
func (p Path) Parts() Parts {
	if p.absent {
		return Parts{}
	}
	return SplitParts(p.p)
}

func (p Path) apply(v string, ok bool) Path {
	if p.absent {
		return p
	}
	if !ok {
		return Path{absent: true}
	}
	return Path{p: v}
}

// Join appends elems to the wrapped path with [Join] semantics.
func (p Path) Join(elems ...string) Path {
	if p.absent {
		return p
	}
	return p.apply(Join(append([]string{p.p}, elems...)...))
}

// ToWindows converts the wrapped path's separators to backslashes.
func (p Path) ToWindows() Path {
	return p.apply(ToWindows(p.p))
}

// ToUnix converts the wrapped path's separators to forward slashes.
func (p Path) ToUnix() Path {
	return p.apply(ToUnix(p.p))
}

// RemoveExt removes the wrapped path's extension, if any.
func (p Path) RemoveExt() Path {
	return p.apply(RemoveExt(p.p))
}

// ReplaceExt replaces the wrapped path's extension with ext.
func (p Path) ReplaceExt(ext string) Path {
	return p.apply(ReplaceExt(p.p, ext))
}

// ToParent moves to the parent per [Parent]; a path with nothing to strip
// is left unchanged.
func (p Path) ToParent() Path {
	if p.absent {
		return p
	}
	return Path{p: Parent(p.p)}
}

// StripUpTo keeps the head of the path up to the first node equal to name.
func (p Path) StripUpTo(name string, inclusive bool) Path {
	if p.absent {
		return p
	}
	return p.apply(StripUpTo(p.p, name, inclusive))
}

// StripUpToReversed keeps the tail of the path from the first node equal
// to name, scanning from the end.
func (p Path) StripUpToReversed(name string, inclusive bool) Path {
	if p.absent {
		return p
	}
	return p.apply(StripUpToReversed(p.p, name, inclusive))
}

// SetNodeAt replaces the node at index with node.
func (p Path) SetNodeAt(index int, node string) (Path, error) {
	if p.absent {
		return p, fmt.Errorf("node %d of absent path: %w", index, ErrIndexOutOfRange)
	}
	v, err := SetNodeAt(p.p, index, node)
	if err != nil {
		return p, err
	}
	return Path{p: v, absent: v == ""}, nil
}

// ExpandRelative resolves the wrapped path against the current working
// directory.
func (p Path) ExpandRelative() (Path, error) {
	if p.absent {
		return p, nil
	}
	v, err := ExpandRelative(p.p)
	if err != nil {
		return p, err
	}
	return Path{p: v, absent: v == ""}, nil
}

// StripBaseIfFile removes the last node when the wrapped path is an
// existing regular file.
func (p Path) StripBaseIfFile() (Path, error) {
	if p.absent {
		return p, nil
	}
	v, err := StripBaseIfFile(p.p)
	if err != nil {
		return p, err
	}
	return Path{p: v, absent: v == ""}, nil
}

// SetAsCwd makes the wrapped path the process's working directory.
func (p Path) SetAsCwd() error {
	if p.absent {
		return fmt.Errorf("cannot chdir to absent path")
	}
	return SetCwd(p.p)
}

// SwapCwd changes the working directory to the wrapped path and returns a
// Path at the previous working directory.
func (p Path) SwapCwd() (Path, error) {
	prev, err := FromCwd()
	if err != nil {
		return Path{absent: true}, err
	}
	if err := p.SetAsCwd(); err != nil {
		return Path{absent: true}, err
	}
	return prev, nil
}
