package ring

import (
	"os"

	"github.com/ringfs/ringfs/pkg/fs"
)

// deleter empties a slot. Two strategies, both observably equivalent: the
// slot becomes empty, and deleting an already-absent slot is Success.
type deleter interface {
	del(name Name) Event
}

// DeleteStrategy selects which [deleter] a [Ring] constructs. The zero value
// is [DeleteUnlink].
type DeleteStrategy int

const (
	// DeleteUnlink removes the slot file outright.
	DeleteUnlink DeleteStrategy = iota

	// DeleteTruncate creates or truncates the slot file to zero length,
	// preserving the directory entry. Useful when the underlying filesystem
	// benefits from stable inodes across reuse (hardlinks, pinned inode
	// caches).
	DeleteTruncate
)

type unlinkDeleter struct {
	fsys fs.FS
	dir  string
}

func newUnlinkDeleter(fsys fs.FS, dir string) *unlinkDeleter {
	return &unlinkDeleter{fsys: fsys, dir: dir}
}

func (d *unlinkDeleter) del(name Name) Event {
	err := d.fsys.Remove(pathFor(d.dir, name))
	if err == nil || os.IsNotExist(err) {
		return successEvent()
	}

	return unexpectedEvent(err)
}

type truncateDeleter struct {
	fsys fs.FS
	dir  string
}

func newTruncateDeleter(fsys fs.FS, dir string) *truncateDeleter {
	return &truncateDeleter{fsys: fsys, dir: dir}
}

func (d *truncateDeleter) del(name Name) Event {
	// O_CREATE means an absent slot is created empty rather than reported
	// not-found, which already satisfies "deleting an absent slot succeeds".
	f, err := d.fsys.OpenFile(pathFor(d.dir, name), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return unexpectedEvent(err)
	}

	defer f.Close()

	if err := f.Sync(); err != nil {
		return unexpectedEvent(err)
	}

	return successEvent()
}

var (
	_ deleter = (*unlinkDeleter)(nil)
	_ deleter = (*truncateDeleter)(nil)
)
