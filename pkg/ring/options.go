package ring

import (
	"fmt"

	"github.com/ringfs/ringfs/pkg/fs"
)

// Options configures a [Ring] at construction time.
type Options struct {
	// Directory is the ring's root directory. It must already exist and be
	// writable; New does not create it.
	Directory string

	// ChecksumWidth is the trailing checksum length in bytes. Zero disables
	// integrity checking entirely.
	ChecksumWidth int

	// ReadChecksumFn verifies a payload's checksum on GET. Required when
	// ChecksumWidth > 0.
	ReadChecksumFn func(payload []byte) []byte

	// WriteChecksumFn computes a payload's checksum on PUSH. Required when
	// ChecksumWidth > 0; its output length must equal ChecksumWidth.
	// Typically the same function as ReadChecksumFn.
	WriteChecksumFn func(payload []byte) []byte

	// EntropySource supplies bytes for the next-name generator.
	// Defaults to [NewCryptoRandSource] when nil.
	EntropySource EntropySource

	// DeleteStrategy selects the deleter. Defaults to [DeleteUnlink].
	DeleteStrategy DeleteStrategy

	// Alphabet selects the name alphabet. Defaults to [HexByteAlphabet], the
	// canonical 256-slot alphabet. Exposed for testing; production rings
	// should leave this unset.
	Alphabet Alphabet

	// FS is the filesystem implementation backing the ring. Defaults to
	// [fs.NewReal]; tests substitute [fs.Chaos] or an in-memory fake.
	FS fs.FS
}

func (o Options) validate() error {
	if o.Directory == "" {
		return ErrDirectoryEmpty
	}

	if o.ChecksumWidth < 0 {
		return fmt.Errorf("ring: checksum width %d is negative", o.ChecksumWidth)
	}

	if o.ChecksumWidth > 0 {
		if o.ReadChecksumFn == nil || o.WriteChecksumFn == nil {
			return ErrChecksumFnMissing
		}
	}

	return nil
}

func (o Options) withDefaults() Options {
	if o.EntropySource == nil {
		o.EntropySource = NewCryptoRandSource()
	}

	if o.Alphabet == nil {
		o.Alphabet = HexByteAlphabet{}
	}

	if o.FS == nil {
		o.FS = fs.NewReal()
	}

	return o
}
