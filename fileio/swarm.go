package fileio

import (
	"bufio"
	"io"
	"strings"

	"github.com/spf13/afero"

	"github.com/empirelib/efs/internal/errors"
)

// Swarm reads several files in lockstep. Each ReadLine call takes one
// line from every file and returns them in the order the files were
// opened. Files that could not be opened, or that run out of lines
// before the others, contribute an empty string.
type Swarm struct {
	files   []afero.File
	readers []*bufio.Reader
}

// OpenSwarm opens every path for reading. Paths that do not exist are
// tolerated; their slot yields empty strings on every read.
func OpenSwarm(fs afero.Fs, paths ...string) (*Swarm, error) {
	if len(paths) == 0 {
		return nil, errors.New("no files to read")
	}

	s := &Swarm{
		files:   make([]afero.File, len(paths)),
		readers: make([]*bufio.Reader, len(paths)),
	}
	for i, p := range paths {
		f, err := fs.Open(p)
		if err != nil {
			continue
		}
		s.files[i] = f
		s.readers[i] = bufio.NewReader(f)
	}
	return s, nil
}

// ReadLine returns the next line of every file, without trailing
// newlines. It reports false once all files are exhausted.
func (s *Swarm) ReadLine() ([]string, bool) {
	lines := make([]string, len(s.readers))
	got := false
	for i, r := range s.readers {
		if r == nil {
			continue
		}
		line, err := r.ReadString('\n')
		if line != "" {
			lines[i] = strings.TrimSuffix(line, "\n")
			got = true
		}
		if err == io.EOF {
			s.readers[i] = nil
		}
	}
	if !got {
		return nil, false
	}
	return lines, true
}

// Close releases every open file. It always closes all of them and
// returns the first error seen.
func (s *Swarm) Close() error {
	var first error
	for i, f := range s.files {
		if f == nil {
			continue
		}
		if err := f.Close(); err != nil && first == nil {
			first = errors.Wrap(err, "closing swarm file")
		}
		s.files[i] = nil
		s.readers[i] = nil
	}
	return first
}
