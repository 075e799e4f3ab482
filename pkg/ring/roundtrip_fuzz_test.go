package ring

import (
	"crypto/sha256"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ringfs/ringfs/pkg/fs"
)

// FuzzRoundTrip_NoIntegrity is P1: any pushed payload round-trips through a
// List+Get unchanged, with no integrity checking configured.
func FuzzRoundTrip_NoIntegrity(f *testing.F) {
	f.Add([]byte{})
	f.Add([]byte{0x00})
	f.Add([]byte("299792458"))
	f.Add(make([]byte, 256))

	f.Fuzz(func(t *testing.T, payload []byte) {
		dir := t.TempDir()

		r, err := New(Options{Directory: dir, FS: fs.NewReal()})
		require.NoError(t, err)

		push := r.Push(Item(payload))
		require.Equal(t, EventSuccess, push.Kind)

		list := r.List()
		require.Equal(t, EventNamesGot, list.Kind)
		require.Len(t, list.Names, 1)

		n := list.Names[0]

		get := r.Get(string(n))
		require.Equal(t, EventItemGot, get.Kind)
		require.Equal(t, Item(payload), get.Item.Item)
	})
}

// sha256Checksum is a non-trivial checksum_fn for P2.
func sha256Checksum(payload []byte) []byte {
	sum := sha256.Sum256(payload)
	return sum[:]
}

// FuzzRoundTrip_WithIntegrity is P2: same guarantee as P1, with a real
// checksum function and checksum_width > 0.
func FuzzRoundTrip_WithIntegrity(f *testing.F) {
	f.Add([]byte{})
	f.Add([]byte("cafef00ddeadbeaf"))
	f.Add(make([]byte, 64))

	f.Fuzz(func(t *testing.T, payload []byte) {
		dir := t.TempDir()

		r, err := New(Options{
			Directory:       dir,
			FS:              fs.NewReal(),
			ChecksumWidth:   sha256.Size,
			ReadChecksumFn:  sha256Checksum,
			WriteChecksumFn: sha256Checksum,
		})
		require.NoError(t, err)

		push := r.Push(Item(payload))
		require.Equal(t, EventSuccess, push.Kind)

		list := r.List()
		require.Equal(t, EventNamesGot, list.Kind)
		require.Len(t, list.Names, 1)

		n := list.Names[0]

		get := r.Get(string(n))
		require.Equal(t, EventItemGot, get.Kind)
		require.Equal(t, Item(payload), get.Item.Item)
	})
}
