package ring

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ringfs/ringfs/pkg/fs"
)

func Test_Vacuum_Reclaims_Only_Broken_Slots(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	sum := []byte{1, 2, 3, 4}

	require.NoError(t, os.WriteFile(filepath.Join(dir, "00"), append([]byte("ok"), sum...), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "01"), bytes.Repeat([]byte{0}, 4), 0o644))

	oc := newOracle(fs.NewReal(), dir)
	l := newLister(HexByteAlphabet{}, oc)
	rd := newReader(fs.NewReal(), dir, len(sum), constantChecksum(sum))
	del := newUnlinkDeleter(fs.NewReal(), dir)

	v := newVacuum(l, rd, del)

	ev := v.run()
	require.Equal(t, EventBrokenItemsRemoved, ev.Kind)
	assert.Equal(t, uint64(1), ev.Count)

	_, err := os.Stat(filepath.Join(dir, "00"))
	assert.NoError(t, err, "healthy slot must survive vacuum")

	_, err = os.Stat(filepath.Join(dir, "01"))
	assert.True(t, os.IsNotExist(err), "broken slot must be reclaimed")
}

func Test_Vacuum_On_Fully_Healthy_Ring_Removes_Nothing(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	sum := []byte{1, 2, 3, 4}

	require.NoError(t, os.WriteFile(filepath.Join(dir, "00"), append([]byte("ok"), sum...), 0o644))

	oc := newOracle(fs.NewReal(), dir)
	l := newLister(HexByteAlphabet{}, oc)
	rd := newReader(fs.NewReal(), dir, len(sum), constantChecksum(sum))
	del := newUnlinkDeleter(fs.NewReal(), dir)

	v := newVacuum(l, rd, del)

	ev := v.run()
	require.Equal(t, EventBrokenItemsRemoved, ev.Kind)
	assert.Equal(t, uint64(0), ev.Count)
}
