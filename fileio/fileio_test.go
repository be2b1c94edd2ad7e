package fileio

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	Name  string `yaml:"name" toml:"name"`
	Count int    `yaml:"count" toml:"count"`
}

func write(t *testing.T, fs afero.Fs, path, content string) {
	t.Helper()
	require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0o644))
}

func read(t *testing.T, fs afero.Fs, path string) string {
	t.Helper()
	data, err := afero.ReadFile(fs, path)
	require.NoError(t, err)
	return string(data)
}

func TestYAMLRoundTrip(t *testing.T) {
	fs := afero.NewMemMapFs()
	in := record{Name: "widget", Count: 3}

	require.NoError(t, WriteYAML(fs, "r.yaml", in))

	var out record
	require.NoError(t, ReadYAML(fs, "r.yaml", &out))
	assert.Equal(t, in, out)
}

func TestReadYAMLErrors(t *testing.T) {
	fs := afero.NewMemMapFs()

	var out record
	assert.Error(t, ReadYAML(fs, "missing.yaml", &out))

	write(t, fs, "bad.yaml", "name: [unclosed")
	assert.Error(t, ReadYAML(fs, "bad.yaml", &out))
}

func TestAppendYAML(t *testing.T) {
	fs := afero.NewMemMapFs()

	require.NoError(t, AppendYAML(fs, "log.yaml", record{Name: "first", Count: 1}))
	require.NoError(t, AppendYAML(fs, "log.yaml", record{Name: "second", Count: 2}))

	content := read(t, fs, "log.yaml")
	assert.Contains(t, content, "first")
	assert.Contains(t, content, "---\n")
	assert.Contains(t, content, "second")
}

func TestTOMLRoundTrip(t *testing.T) {
	fs := afero.NewMemMapFs()
	in := record{Name: "widget", Count: 3}

	require.NoError(t, WriteTOML(fs, "r.toml", in))

	var out record
	require.NoError(t, ReadTOML(fs, "r.toml", &out))
	assert.Equal(t, in, out)
}

func TestReadTOMLErrors(t *testing.T) {
	fs := afero.NewMemMapFs()

	var out record
	assert.Error(t, ReadTOML(fs, "missing.toml", &out))

	write(t, fs, "bad.toml", "name = ")
	assert.Error(t, ReadTOML(fs, "bad.toml", &out))
}

func TestEachLine(t *testing.T) {
	fs := afero.NewMemMapFs()
	write(t, fs, "f.txt", "one\ntwo\nthree")

	var nums []int
	var lines []string
	require.NoError(t, EachLine(fs, "f.txt", func(n int, line string) error {
		nums = append(nums, n)
		lines = append(lines, line)
		return nil
	}))

	assert.Equal(t, []int{0, 1, 2}, nums)
	assert.Equal(t, []string{"one", "two", "three"}, lines)
}

func TestEachLineStopsOnError(t *testing.T) {
	fs := afero.NewMemMapFs()
	write(t, fs, "f.txt", "one\ntwo\nthree\n")

	boom := assert.AnError
	calls := 0
	err := EachLine(fs, "f.txt", func(n int, line string) error {
		calls++
		if n == 1 {
			return boom
		}
		return nil
	})

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 2, calls)
}

func TestEachLineMissing(t *testing.T) {
	fs := afero.NewMemMapFs()
	assert.Error(t, EachLine(fs, "missing.txt", func(int, string) error { return nil }))
}
