package fsx

import (
	"bytes"
	"compress/gzip"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeFiles(t *testing.T) {
	f := memFS(t)
	write(t, f, "a.txt", "aaa")
	write(t, f, "b.txt", "bbb")

	require.NoError(t, f.MergeFiles("merged.txt", []string{"a.txt", "b.txt"}))
	assert.Equal(t, "aaabbb", read(t, f, "merged.txt"))
}

func TestMergeFilesJoinToken(t *testing.T) {
	f := memFS(t)
	write(t, f, "a.txt", "aaa")
	write(t, f, "b.txt", "bbb")
	write(t, f, "c.txt", "ccc")

	require.NoError(t, f.MergeFiles("merged.txt",
		[]string{"a.txt", "b.txt", "c.txt"}, WithJoinToken("\n")))
	assert.Equal(t, "aaa\nbbb\nccc", read(t, f, "merged.txt"))
}

func TestMergeFilesMissingSource(t *testing.T) {
	f := memFS(t)
	write(t, f, "a.txt", "aaa")

	err := f.MergeFiles("merged.txt", []string{"a.txt", "missing.txt"})
	assert.Error(t, err)

	require.NoError(t, f.MergeFiles("merged.txt",
		[]string{"a.txt", "missing.txt"}, IgnoreMissing()))
	assert.Equal(t, "aaa", read(t, f, "merged.txt"))
}

func TestCountLines(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    int
	}{
		{"empty file", "", 0},
		{"single line with newline", "one\n", 1},
		{"trailing fragment counts", "one\ntwo", 2},
		{"three lines", "a\nb\nc\n", 3},
		{"blank lines count", "\n\n\n", 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := memFS(t)
			write(t, f, "f.txt", tt.content)
			got, err := f.CountLines("f.txt")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCountLinesMissing(t *testing.T) {
	f := memFS(t)
	_, err := f.CountLines("missing.txt")
	assert.Error(t, err)
}

func TestUngzipTo(t *testing.T) {
	f := memFS(t)

	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	_, err := gz.Write([]byte("hello gzip\n"))
	require.NoError(t, err)
	require.NoError(t, gz.Close())
	require.NoError(t, afero.WriteFile(f.Fs(), "archive.gz", buf.Bytes(), 0o644))

	require.NoError(t, f.UngzipTo("archive.gz", "plain.txt"))
	assert.Equal(t, "hello gzip\n", read(t, f, "plain.txt"))
}

func TestUngzipToNotAnArchive(t *testing.T) {
	f := memFS(t)
	write(t, f, "plain.txt", "not gzip")
	assert.Error(t, f.UngzipTo("plain.txt", "out.txt"))
}

// xzHello is "hello xz\n" compressed with xz (CRC32 check).
var xzHello = []byte{
	0xfd, 0x37, 0x7a, 0x58, 0x5a, 0x00, 0x00, 0x01, 0x69, 0x22, 0xde, 0x36,
	0x02, 0x00, 0x21, 0x01, 0x16, 0x00, 0x00, 0x00, 0x74, 0x2f, 0xe5, 0xa3,
	0x01, 0x00, 0x08, 0x68, 0x65, 0x6c, 0x6c, 0x6f, 0x20, 0x78, 0x7a, 0x0a,
	0x00, 0x00, 0x00, 0x00, 0x55, 0x7e, 0x2e, 0x7e, 0x00, 0x01, 0x1d, 0x09,
	0x93, 0x61, 0x36, 0xa6, 0x90, 0x42, 0x99, 0x0d, 0x01, 0x00, 0x00, 0x00,
	0x00, 0x01, 0x59, 0x5a,
}

func TestUnxzTo(t *testing.T) {
	f := memFS(t)
	require.NoError(t, afero.WriteFile(f.Fs(), "archive.xz", xzHello, 0o644))

	require.NoError(t, f.UnxzTo("archive.xz", "plain.txt"))
	assert.Equal(t, "hello xz\n", read(t, f, "plain.txt"))
}
