package scan

import (
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/afero"

	"github.com/empirelib/efs/internal/errors"
	"github.com/empirelib/efs/pathnode"
)

// Entry describes one directory entry seen during a scan.
type Entry struct {
	// Path is the entry's path relative to the filesystem root, built
	// from the scan root and the entry name.
	Path string
	// Name is the bare entry name.
	Name string
	// IsDir reports whether the entry is a directory.
	IsDir bool
}

// Filter decides what a scan reports for an entry. It returns the
// string to collect and whether to collect it at all.
type Filter func(Entry) (string, bool)

// DirsOnly keeps directory paths.
func DirsOnly(e Entry) (string, bool) {
	return e.Path, e.IsDir
}

// FilesOnly keeps file paths.
func FilesOnly(e Entry) (string, bool) {
	return e.Path, !e.IsDir
}

// NamesOnly keeps bare file names.
func NamesOnly(e Entry) (string, bool) {
	return e.Name, !e.IsDir
}

// MatchPattern keeps entries whose name matches the doublestar glob
// pattern.
func MatchPattern(pattern string) Filter {
	return func(e Entry) (string, bool) {
		ok, err := doublestar.Match(pattern, e.Name)
		if err != nil || !ok {
			return "", false
		}
		return e.Path, true
	}
}

// Extensions keeps files whose name ends in one of the given suffixes.
// A leading dot on a suffix is optional.
func Extensions(exts ...string) Filter {
	suffixes := make([]string, len(exts))
	for i, ext := range exts {
		if strings.HasPrefix(ext, ".") {
			suffixes[i] = ext
		} else {
			suffixes[i] = "." + ext
		}
	}
	return func(e Entry) (string, bool) {
		if e.IsDir {
			return "", false
		}
		for _, s := range suffixes {
			if strings.HasSuffix(e.Name, s) {
				return e.Path, true
			}
		}
		return "", false
	}
}

// Option configures a Scan call.
type Option func(*scanner)

// Recursive descends into subdirectories.
func Recursive() Option {
	return func(s *scanner) { s.recursive = true }
}

// WithFilter sets the filter applied to every entry. Without one, every
// entry path is collected.
func WithFilter(f Filter) Option {
	return func(s *scanner) { s.filter = f }
}

type scanner struct {
	fs        afero.Fs
	recursive bool
	filter    Filter
}

// Scan lists the entries under root, applying the configured filter,
// and returns the collected strings. Entries within each directory are
// visited in name order, subdirectory contents before the directory's
// own result.
func Scan(fs afero.Fs, root string, opts ...Option) ([]string, error) {
	s := &scanner{fs: fs, filter: everything}
	for _, opt := range opts {
		opt(s)
	}

	results, err := s.walk(root)
	if err != nil {
		return nil, err
	}
	return results, nil
}

func everything(e Entry) (string, bool) {
	return e.Path, true
}

func (s *scanner) walk(dir string) ([]string, error) {
	infos, err := afero.ReadDir(s.fs, dir)
	if err != nil {
		return nil, errors.Wrapf(err, "scanning %s", dir)
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Name() < infos[j].Name() })

	var results []string
	for _, info := range infos {
		path, ok := pathnode.Join(dir, info.Name())
		if !ok {
			path = info.Name()
		}

		if s.recursive && info.IsDir() {
			sub, err := s.walk(path)
			if err != nil {
				return nil, err
			}
			results = append(results, sub...)
		}

		if out, keep := s.filter(Entry{Path: path, Name: info.Name(), IsDir: info.IsDir()}); keep {
			results = append(results, out)
		}
	}
	return results, nil
}
