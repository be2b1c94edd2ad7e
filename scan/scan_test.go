package scan

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func treeFS(t *testing.T) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	for _, p := range []string{
		"root/a.txt",
		"root/b.log",
		"root/sub/c.txt",
		"root/sub/deep/d.md",
	} {
		require.NoError(t, afero.WriteFile(fs, p, []byte("x"), 0o644))
	}
	return fs
}

func TestScanFlat(t *testing.T) {
	fs := treeFS(t)

	got, err := Scan(fs, "root")
	require.NoError(t, err)
	assert.Equal(t, []string{"root/a.txt", "root/b.log", "root/sub"}, got)
}

func TestScanRecursive(t *testing.T) {
	fs := treeFS(t)

	got, err := Scan(fs, "root", Recursive())
	require.NoError(t, err)
	assert.Equal(t, []string{
		"root/a.txt",
		"root/b.log",
		"root/sub/c.txt",
		"root/sub/deep/d.md",
		"root/sub/deep",
		"root/sub",
	}, got)
}

func TestScanFilters(t *testing.T) {
	fs := treeFS(t)

	tests := []struct {
		name   string
		filter Filter
		want   []string
	}{
		{"dirs only", DirsOnly, []string{"root/sub/deep", "root/sub"}},
		{"files only", FilesOnly, []string{
			"root/a.txt", "root/b.log", "root/sub/c.txt", "root/sub/deep/d.md",
		}},
		{"names only", NamesOnly, []string{"a.txt", "b.log", "c.txt", "d.md"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Scan(fs, "root", Recursive(), WithFilter(tt.filter))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMatchPattern(t *testing.T) {
	fs := treeFS(t)

	got, err := Scan(fs, "root", Recursive(), WithFilter(MatchPattern("*.txt")))
	require.NoError(t, err)
	assert.Equal(t, []string{"root/a.txt", "root/sub/c.txt"}, got)
}

func TestExtensions(t *testing.T) {
	fs := treeFS(t)

	// With and without the leading dot.
	got, err := Scan(fs, "root", Recursive(), WithFilter(Extensions("txt", ".md")))
	require.NoError(t, err)
	assert.Equal(t, []string{"root/a.txt", "root/sub/c.txt", "root/sub/deep/d.md"}, got)
}

func TestScanMissingRoot(t *testing.T) {
	fs := afero.NewMemMapFs()
	_, err := Scan(fs, "nowhere")
	assert.Error(t, err)
}

func TestScanEmptyDir(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("empty", 0o755))

	got, err := Scan(fs, "empty")
	require.NoError(t, err)
	assert.Empty(t, got)
}
