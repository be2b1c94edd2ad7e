// Package scan walks directories and collects entries through
// pluggable filters.
//
// A Filter maps each entry to the string that should appear in the
// result, or reports false to drop the entry. Predefined filters cover
// the common cases; MatchPattern and Extensions build parameterized
// ones.
package scan
