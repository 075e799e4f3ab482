package ring

import (
	"errors"
	"io"
	"os"
	"syscall"

	"github.com/ringfs/ringfs/pkg/fs"
)

// reader opens a slot, reads it to end, splits and verifies the trailing
// checksum, and produces ItemGot or Broken.
type reader struct {
	fsys fs.FS
	dir  string

	checksumWidth int
	checksumFn    func(payload []byte) []byte
}

func newReader(fsys fs.FS, dir string, checksumWidth int, checksumFn func([]byte) []byte) *reader {
	return &reader{fsys: fsys, dir: dir, checksumWidth: checksumWidth, checksumFn: checksumFn}
}

// get services a GET request against name's slot.
func (r *reader) get(name Name) Event {
	f, err := r.fsys.Open(pathFor(r.dir, name))
	if err != nil {
		return mapOpenOrReadError(name, err)
	}

	defer f.Close()

	buf, err := io.ReadAll(f)
	if err != nil {
		return mapOpenOrReadError(name, err)
	}

	if r.checksumWidth == 0 {
		return itemGotEvent(NamedItem{Name: name, Item: Item(buf)})
	}

	if len(buf) < r.checksumWidth {
		return brokenEvent(name)
	}

	split := len(buf) - r.checksumWidth
	payload, stored := buf[:split], buf[split:]

	expected := r.checksumFn(payload)
	if !bytesEqual(expected, stored) {
		return brokenEvent(name)
	}

	return itemGotEvent(NamedItem{Name: name, Item: Item(payload)})
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// mapOpenOrReadError maps a host I/O error encountered opening or reading a
// slot to its Event. Every error kind is mapped once, here, at the component
// boundary; higher layers never re-examine raw OS errors.
func mapOpenOrReadError(name Name, err error) Event {
	switch {
	case os.IsNotExist(err):
		return noEntryEvent(name)

	case os.IsPermission(err):
		// Present but unreadable is treated as recoverable by deletion, not
		// as a hard failure: vacuum will attempt reclamation.
		return brokenEvent(name)

	case errors.Is(err, syscall.EINVAL),
		errors.Is(err, syscall.ENOTSUP),
		errors.Is(err, syscall.EILSEQ),
		errors.Is(err, io.ErrUnexpectedEOF),
		errors.Is(err, io.ErrClosedPipe):
		return brokenEvent(name)

	case os.IsTimeout(err), errors.Is(err, syscall.ETIMEDOUT):
		return againEvent()

	case errors.Is(err, syscall.ENOMEM):
		return againEvent()

	case errors.Is(err, syscall.EIO):
		// The host's generic I/O error number (errno 5 on the reference
		// platform) signals unreadable-but-present, same disposition as a
		// failed integrity check.
		return brokenEvent(name)

	default:
		return unexpectedEvent(err)
	}
}
