package pathnode

import (
	"os"
	"slices"

	"github.com/cockroachdb/errors"
)

// ErrIndexOutOfRange indicates a node index at or past the node count.
var ErrIndexOutOfRange = errors.New("node index out of range")

// Parent returns path with its last node removed and rejoined.
//
// Unlike [Dir], a path with no separator (or an empty path) is returned
// unchanged rather than absent. When removing the last node leaves nothing
// joinable ("/name"), Parent returns the empty string; repeated application
// therefore reaches a fixpoint, which [FindParentSibling] relies on for
// termination.
func Parent(path string) string {
	nodes := Split(path)
	if len(nodes) < 2 {
		return path
	}
	parent, ok := Join(nodes[:len(nodes)-1]...)
	if !ok {
		return ""
	}
	return parent
}

// FindParentSibling walks upward from path, probing Join(level, name) at
// each level and returning the first candidate the filesystem reports as an
// existing file or directory. The walk terminates when [Parent] stops
// changing the current level. Probe failures count as non-existence.
//
// Levels are rejoined with [Join], so a leading separator does not survive
// the first [Parent] step; candidates from higher levels of an absolute
// unix path are probed relative to the working directory.
//
// ok is false when nothing was found, or when path or name is empty.
func FindParentSibling(path, name string) (string, bool) {
	if path == "" || name == "" {
		return "", false
	}
	current := path
	for {
		if candidate, ok := Join(current, name); ok {
			if _, err := os.Stat(candidate); err == nil {
				return candidate, true
			}
		}
		next := Parent(current)
		if next == current {
			return "", false
		}
		current = next
	}
}

// StripUpTo scans nodes left to right, keeping everything before the first
// node equal to name. With inclusive, the matched node is kept as well.
// If name never occurs, every node is kept. ok is false when path or name
// is empty, or when nothing remains to join.
//
//	StripUpTo("a/b/c/d", "b", true)  // "a/b"
//	StripUpTo("a/b/c/d", "b", false) // "a"
func StripUpTo(path, name string, inclusive bool) (string, bool) {
	if path == "" || name == "" {
		return "", false
	}
	nodes := Split(path)
	kept := make([]string, 0, len(nodes))
	for _, n := range nodes {
		if n == name {
			if inclusive {
				kept = append(kept, n)
			}
			break
		}
		kept = append(kept, n)
	}
	return Join(kept...)
}

// StripUpToReversed mirrors [StripUpTo], scanning right to left and keeping
// the tail of the path starting after (or at, with inclusive) the first
// match found from the end. If name never occurs, every node is kept.
//
//	StripUpToReversed("a/b/c/d", "b", true)  // "b/c/d"
//	StripUpToReversed("a/b/c/d", "b", false) // "c/d"
func StripUpToReversed(path, name string, inclusive bool) (string, bool) {
	if path == "" || name == "" {
		return "", false
	}
	nodes := Split(path)
	start := 0
	for i := len(nodes) - 1; i >= 0; i-- {
		if nodes[i] == name {
			start = i
			if !inclusive {
				start++
			}
			break
		}
	}
	return Join(nodes[start:]...)
}

// NodeAt returns the node at index in the split path. An index at or past
// the node count (including any index into an empty path) is a hard error
// carrying [ErrIndexOutOfRange], not a default value.
func NodeAt(path string, index int) (string, error) {
	nodes := Split(path)
	if index < 0 || index >= len(nodes) {
		return "", errors.Wrapf(ErrIndexOutOfRange, "index %d, %d nodes", index, len(nodes))
	}
	return nodes[index], nil
}

// SetNodeAt returns path with the node at index replaced by node and the
// result rejoined. The input is never modified. Bounds are checked the
// same way as [NodeAt]. An empty replacement node is dropped by the join,
// like any other empty node; the result is then "" if nothing remains.
func SetNodeAt(path string, index int, node string) (string, error) {
	nodes := Split(path)
	if index < 0 || index >= len(nodes) {
		return "", errors.Wrapf(ErrIndexOutOfRange, "index %d, %d nodes", index, len(nodes))
	}
	replaced := slices.Clone(nodes)
	replaced[index] = node
	joined, _ := Join(replaced...)
	return joined, nil
}
