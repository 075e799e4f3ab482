package ring

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ringfs/ringfs/pkg/fs"
)

// These tests model a process crash mid-write: a writer commits payload bytes and a
// trailing checksum in two separate Write calls before Sync, so a crash
// between them leaves a slot shorter than the configured checksum width.
// Rather than simulate the crash boundary itself, these start from the torn
// file it would leave behind and assert on the recovery path: GET reports
// Broken, never a partial or corrupted payload, and VACUUM reclaims it.

func writeTornSlot(t *testing.T, dir string, name Name, partial []byte) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, string(name)), partial, 0o644))
}

func Test_Crash_TornWrite_ShorterThanChecksumWidth_IsBroken(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	sum := []byte{0xde, 0xad, 0xbe, 0xef}

	// A crash right after the payload write but before the checksum write
	// leaves a file with payload bytes only - shorter than checksumWidth.
	writeTornSlot(t, dir, "2a", []byte("par"))

	r := newTestRing(t, Options{
		Directory:       dir,
		ChecksumWidth:   len(sum),
		ReadChecksumFn:  constantChecksum(sum),
		WriteChecksumFn: constantChecksum(sum),
	})

	ev := r.Get("2a")
	require.Equal(t, EventBroken, ev.Kind)
	assert.Equal(t, Name("2a"), ev.Name)
}

func Test_Crash_TornWrite_ChecksumMismatch_IsBroken(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	sum := []byte{0xde, 0xad, 0xbe, 0xef}

	// Long enough to satisfy the width check, but the trailing bytes are
	// whatever garbage was on disk rather than a real checksum - the other
	// shape a torn write can take once the file already had old contents.
	writeTornSlot(t, dir, "2a", append([]byte("payload"), []byte{0, 0, 0, 0}...))

	r := newTestRing(t, Options{
		Directory:       dir,
		ChecksumWidth:   len(sum),
		ReadChecksumFn:  constantChecksum(sum),
		WriteChecksumFn: constantChecksum(sum),
	})

	ev := r.Get("2a")
	require.Equal(t, EventBroken, ev.Kind)
}

func Test_Crash_TornWrite_ReclaimedByVacuum_ThenSlotReusable(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	sum := []byte{0xde, 0xad, 0xbe, 0xef}

	writeTornSlot(t, dir, "2a", []byte("torn"))

	r := newTestRing(t, Options{
		Directory:       dir,
		ChecksumWidth:   len(sum),
		ReadChecksumFn:  constantChecksum(sum),
		WriteChecksumFn: constantChecksum(sum),
		EntropySource:   NewFixedEntropySource([]byte{0x2a}),
	})

	vac := r.Vacuum()
	require.Equal(t, EventBrokenItemsRemoved, vac.Kind)
	assert.Equal(t, uint64(1), vac.Count)

	// The reclaimed slot is empty again, so the next PUSH can claim it even
	// though the entropy source only ever offers that one candidate.
	push := r.Push(Item("fresh"))
	require.Equal(t, EventSuccess, push.Kind)

	get := r.Get("2a")
	require.Equal(t, EventItemGot, get.Kind)
	assert.Equal(t, Item("fresh"), get.Item.Item)
}

// Test_Crash_WriteFailureMidPush confirms that a write failure injected
// partway through PUSH (the fs-level analogue of a crash interrupting the
// writer) never reports Success and never leaves a slot the oracle
// considers occupied-and-healthy: the slot is either still empty (safe to
// retry) or Broken (reclaimed by VACUUM), but never silently corrupted.
func Test_Crash_WriteFailureMidPush(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	chaos := fs.NewChaos(fs.NewReal(), 1, fs.ChaosConfig{WriteFailRate: 1})
	sum := []byte{0xde, 0xad, 0xbe, 0xef}

	r := newTestRing(t, Options{
		Directory:       dir,
		FS:              chaos,
		ChecksumWidth:   len(sum),
		ReadChecksumFn:  constantChecksum(sum),
		WriteChecksumFn: constantChecksum(sum),
		EntropySource:   NewFixedEntropySource([]byte{0x2a}),
	})

	ev := r.Push(Item("doomed"))
	assert.Equal(t, EventUnexpectedError, ev.Kind)

	// OpenFile(O_CREATE|O_TRUNC) already created an empty slot file before
	// the injected write failure fired, so the file exists but is shorter
	// than the checksum width: Broken, not a silently accepted empty item.
	get := r.Get("2a")
	assert.Equal(t, EventBroken, get.Kind)
}
