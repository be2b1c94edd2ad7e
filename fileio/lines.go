package fileio

import (
	"bufio"
	"io"
	"strings"

	"github.com/spf13/afero"

	"github.com/empirelib/efs/internal/errors"
)

// EachLine calls fn for every line of the file at path, passing the
// zero-based line number and the line text without its trailing newline.
// Iteration stops at the first error fn returns.
func EachLine(fs afero.Fs, path string, fn func(int, string) error) error {
	f, err := fs.Open(path)
	if err != nil {
		return errors.Wrapf(err, "opening %s", path)
	}
	defer f.Close()

	r := bufio.NewReader(f)
	for i := 0; ; i++ {
		line, err := r.ReadString('\n')
		if line != "" {
			if cbErr := fn(i, strings.TrimSuffix(line, "\n")); cbErr != nil {
				return cbErr
			}
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return errors.Wrapf(err, "reading %s", path)
		}
	}
}
