package ring

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ringfs/ringfs/pkg/fs"
)

func Test_UnlinkDeleter_Removes_File(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "00"), []byte("x"), 0o644))

	d := newUnlinkDeleter(fs.NewReal(), dir)

	ev := d.del(Name("00"))
	assert.Equal(t, EventSuccess, ev.Kind)

	_, err := os.Stat(filepath.Join(dir, "00"))
	assert.True(t, os.IsNotExist(err))
}

func Test_UnlinkDeleter_Absent_File_Is_Success(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	d := newUnlinkDeleter(fs.NewReal(), dir)

	ev := d.del(Name("00"))
	assert.Equal(t, EventSuccess, ev.Kind)
}

func Test_TruncateDeleter_Empties_File_But_Keeps_Entry(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "00"), []byte("x"), 0o644))

	d := newTruncateDeleter(fs.NewReal(), dir)

	ev := d.del(Name("00"))
	assert.Equal(t, EventSuccess, ev.Kind)

	info, err := os.Stat(filepath.Join(dir, "00"))
	require.NoError(t, err)
	assert.Equal(t, int64(0), info.Size())
}

func Test_TruncateDeleter_Absent_File_Is_Success_And_Creates_Empty_Slot(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	d := newTruncateDeleter(fs.NewReal(), dir)

	ev := d.del(Name("00"))
	assert.Equal(t, EventSuccess, ev.Kind)

	info, err := os.Stat(filepath.Join(dir, "00"))
	require.NoError(t, err)
	assert.Equal(t, int64(0), info.Size())
}
