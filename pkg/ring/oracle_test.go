package ring

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ringfs/ringfs/pkg/fs"
)

func Test_Oracle_IsEmpty_True_When_File_Absent(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	oc := newOracle(fs.NewReal(), dir)

	empty, err := oc.isEmpty(Name("00"))
	require.NoError(t, err)
	assert.True(t, empty)
}

func Test_Oracle_IsEmpty_True_When_File_Zero_Length(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "00"), nil, 0o644))

	oc := newOracle(fs.NewReal(), dir)

	empty, err := oc.isEmpty(Name("00"))
	require.NoError(t, err)
	assert.True(t, empty)
}

func Test_Oracle_IsOccupied_True_When_File_Has_Content(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "00"), []byte("x"), 0o644))

	oc := newOracle(fs.NewReal(), dir)

	occupied, err := oc.isOccupied(Name("00"))
	require.NoError(t, err)
	assert.True(t, occupied)
}

func Test_Oracle_IsEmpty_Wraps_Stat_Error_With_Name(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "00"), []byte("x"), 0o644))

	chaos := fs.NewChaos(fs.NewReal(), 42, fs.ChaosConfig{StatFailRate: 1})
	oc := newOracle(chaos, dir)

	_, err := oc.isEmpty(Name("00"))
	require.Error(t, err)

	var ringErr *Error
	require.True(t, errors.As(err, &ringErr))
	assert.Equal(t, Name("00"), ringErr.Name)
}
