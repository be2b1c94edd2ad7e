package fileio

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSwarmLockstep(t *testing.T) {
	fs := afero.NewMemMapFs()
	write(t, fs, "a.txt", "a1\na2\n")
	write(t, fs, "b.txt", "b1\nb2\n")

	s, err := OpenSwarm(fs, "a.txt", "b.txt")
	require.NoError(t, err)
	defer s.Close()

	lines, ok := s.ReadLine()
	require.True(t, ok)
	assert.Equal(t, []string{"a1", "b1"}, lines)

	lines, ok = s.ReadLine()
	require.True(t, ok)
	assert.Equal(t, []string{"a2", "b2"}, lines)

	_, ok = s.ReadLine()
	assert.False(t, ok)
}

func TestSwarmUnevenLengths(t *testing.T) {
	fs := afero.NewMemMapFs()
	write(t, fs, "long.txt", "l1\nl2\nl3\n")
	write(t, fs, "short.txt", "s1\n")

	s, err := OpenSwarm(fs, "long.txt", "short.txt")
	require.NoError(t, err)
	defer s.Close()

	lines, ok := s.ReadLine()
	require.True(t, ok)
	assert.Equal(t, []string{"l1", "s1"}, lines)

	// The exhausted file keeps yielding empty strings.
	lines, ok = s.ReadLine()
	require.True(t, ok)
	assert.Equal(t, []string{"l2", ""}, lines)

	lines, ok = s.ReadLine()
	require.True(t, ok)
	assert.Equal(t, []string{"l3", ""}, lines)

	_, ok = s.ReadLine()
	assert.False(t, ok)
}

func TestSwarmMissingFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	write(t, fs, "a.txt", "a1\n")

	s, err := OpenSwarm(fs, "a.txt", "missing.txt")
	require.NoError(t, err)
	defer s.Close()

	lines, ok := s.ReadLine()
	require.True(t, ok)
	assert.Equal(t, []string{"a1", ""}, lines)
}

func TestSwarmNoFiles(t *testing.T) {
	fs := afero.NewMemMapFs()
	_, err := OpenSwarm(fs)
	assert.Error(t, err)
}

func TestSwarmCloseIdempotent(t *testing.T) {
	fs := afero.NewMemMapFs()
	write(t, fs, "a.txt", "a1\n")

	s, err := OpenSwarm(fs, "a.txt")
	require.NoError(t, err)
	require.NoError(t, s.Close())
	require.NoError(t, s.Close())
}
