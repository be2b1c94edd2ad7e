package fsx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/empirelib/efs/internal/errors"
)

func TestNextAvailableName(t *testing.T) {
	f := memFS(t)

	// A free path comes back unchanged.
	got, err := f.NextAvailableName("out/report.txt")
	require.NoError(t, err)
	assert.Equal(t, "out/report.txt", got)

	// With the path taken, probing starts at 0.
	write(t, f, "out/report.txt", "x")
	got, err = f.NextAvailableName("out/report.txt")
	require.NoError(t, err)
	assert.Equal(t, "out/report0.txt", got)

	// Occupied candidates are skipped.
	write(t, f, "out/report0.txt", "x")
	write(t, f, "out/report1.txt", "x")
	got, err = f.NextAvailableName("out/report.txt")
	require.NoError(t, err)
	assert.Equal(t, "out/report2.txt", got)
}

func TestNextAvailableNameOptions(t *testing.T) {
	f := memFS(t)
	write(t, f, "out/report.txt", "x")

	got, err := f.NextAvailableName("out/report.txt",
		WithSeparator("-"), WithStart(5), WithStep(5))
	require.NoError(t, err)
	assert.Equal(t, "out/report-5.txt", got)
}

func TestNextAvailableNameNoExtension(t *testing.T) {
	f := memFS(t)
	write(t, f, "out/LICENSE", "x")

	got, err := f.NextAvailableName("out/LICENSE")
	require.NoError(t, err)
	assert.Equal(t, "out/LICENSE0", got)
}

func TestNextAvailableNameOverflow(t *testing.T) {
	f := memFS(t)
	write(t, f, "out/a.txt", "x")
	write(t, f, "out/a0.txt", "x")
	write(t, f, "out/a1.txt", "x")

	_, err := f.NextAvailableName("out/a.txt", WithLimit(2))
	assert.ErrorIs(t, err, errors.ErrNameOverflow)
}

func TestNextAvailableNameBadStep(t *testing.T) {
	f := memFS(t)
	_, err := f.NextAvailableName("x.txt", WithStep(0))
	assert.Error(t, err)
}
