// Package pathnode treats a path string as an ordered sequence of nodes
// (directory and file names) joined by the platform separator, and provides
// decomposition, reconstruction, derived-value extraction, node-indexed
// access, prefix stripping, and ancestor search over that representation.
//
// # Absence as a value
//
// Most functions report "no meaningful result" through a boolean, following
// the map-lookup idiom:
//
//	dir, ok := pathnode.Dir("src/main.go")
//	if !ok {
//	    // the path has no directory portion
//	}
//
// An empty input never produces a joined-empty result; it produces ok=false.
// [Split] returns nil (not an empty slice) for empty input so callers can
// distinguish "no input" from "a single empty node".
//
// Two functions deviate from the absent-on-empty rule on purpose:
//
//   - [Dir] returns the original path when removing the last node would
//     leave nothing joinable.
//   - [Parent] returns its input unchanged when there is nothing to strip.
//
// These asymmetries are part of the contract; see each function's
// documentation.
//
// # Hard failures
//
// [NodeAt] and [SetNodeAt] return [ErrIndexOutOfRange] instead of a default
// value when the index is past the node count, since silently returning a
// default would hide a caller bug. Functions that touch the operating system
// ([Cwd], [DirAbs], [StripBaseIfFile], ...) surface OS failures as errors
// with no retry or masking.
//
// # Memoization
//
// [Split] memoizes its result keyed on the literal input string. The cache
// is injectable via [SetSplitCache]: the default [MapCache] is unbounded
// with no eviction, [TinyLFUCache] trades the no-eviction contract for a
// bound, and nil disables memoization entirely. Correctness never depends
// on the cache; only performance does.
package pathnode
