// Package fileio reads and writes structured files on top of an afero
// filesystem.
//
// YAML and TOML helpers marshal into and out of caller-supplied values.
// EachLine iterates a text file line by line, and Swarm reads several
// files in lockstep, one line from each per call.
package fileio
