package ring

import (
	"os"

	"github.com/ringfs/ringfs/pkg/fs"
)

// writer creates or truncates the slot file, writes the payload (with an
// optional trailing checksum appended), flushes, and fsyncs. There is no
// rename-based atomic replace here: it writes directly to the slot's own
// path rather than a write-to-temp-then-rename sequence, so a crash
// mid-write can leave a torn file. That torn file is exactly what the
// checksum (when configured) and the Broken/VACUUM path exist to catch.
//
// Unlike the reader, every failure here collapses to UnexpectedError — write
// failures don't get the finer-grained errno mapping reads do, since a
// failed write never leaves behind a result a caller could otherwise act on.
type writer struct {
	fsys fs.FS
	dir  string

	checksumWidth int
	checksumFn    func(payload []byte) []byte

	oracle *oracle
}

func newWriter(fsys fs.FS, dir string, checksumWidth int, checksumFn func([]byte) []byte, oracle *oracle) *writer {
	return &writer{fsys: fsys, dir: dir, checksumWidth: checksumWidth, checksumFn: checksumFn, oracle: oracle}
}

// write unconditionally creates/truncates name's slot and stores item,
// appending the checksum when configured.
func (w *writer) write(name Name, item Item) Event {
	f, err := w.fsys.OpenFile(pathFor(w.dir, name), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return unexpectedEvent(err)
	}

	defer f.Close()

	payload := []byte(item)

	if _, err := f.Write(payload); err != nil {
		return unexpectedEvent(err)
	}

	if w.checksumWidth > 0 {
		sum := w.checksumFn(payload)
		if _, err := f.Write(sum); err != nil {
			return unexpectedEvent(err)
		}
	}

	if err := f.Sync(); err != nil {
		return unexpectedEvent(err)
	}

	return successEvent()
}

// writeChecked consults the oracle before writing and refuses to clobber an
// occupied slot, returning Again so the caller can probe a different
// candidate. The dispatcher's PUSH path uses this instead of the bare
// write, since it is the only guard between the name generator finding a
// slot empty and the write actually claiming it.
func (w *writer) writeChecked(name Name, item Item) Event {
	occupied, err := w.oracle.isOccupied(name)
	if err != nil {
		return unexpectedEvent(err)
	}

	if occupied {
		return againEvent()
	}

	return w.write(name, item)
}
