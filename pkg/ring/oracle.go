package ring

import (
	"os"

	"github.com/ringfs/ringfs/pkg/fs"
)

// oracle classifies a slot as empty/occupied from filesystem metadata.
// "Empty" is file-absent OR file-of-length-zero; there is no in-memory
// catalog — every call re-stats the filesystem.
type oracle struct {
	fsys fs.FS
	dir  string
}

func newOracle(fsys fs.FS, dir string) *oracle {
	return &oracle{fsys: fsys, dir: dir}
}

// isEmpty reports whether name's slot is empty. err is non-nil when the stat
// itself failed for a reason other than not-found; callers must surface err
// as an error Event rather than treat the slot as empty or occupied.
func (o *oracle) isEmpty(name Name) (empty bool, err error) {
	info, statErr := o.fsys.Stat(pathFor(o.dir, name))
	if statErr == nil {
		return info.Size() == 0, nil
	}

	if os.IsNotExist(statErr) {
		return true, nil
	}

	return false, wrap(statErr, name)
}

// isOccupied is the negation of isEmpty, with identical error propagation.
func (o *oracle) isOccupied(name Name) (occupied bool, err error) {
	empty, err := o.isEmpty(name)
	if err != nil {
		return false, err
	}

	return !empty, nil
}
