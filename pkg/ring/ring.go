package ring

import (
	"os"

	"github.com/ringfs/ringfs/pkg/fs"
)

// Ring is a filesystem-backed ring buffer for small opaque items. All state
// lives in Options.Directory; a Ring value holds no in-memory catalog and is
// safe to drop and rebuild from the same directory at any time.
//
// A Ring is single-threaded: callers wanting concurrent access must
// serialize Handle calls (or run one Ring per worker) themselves.
type Ring struct {
	opts Options
	d    *dispatcher
}

// New builds a Ring from opts, validating the configuration and checking
// that Directory exists and is a directory. It does not create Directory.
func New(opts Options) (*Ring, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	opts = opts.withDefaults()

	info, err := opts.FS.Stat(opts.Directory)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrDirectoryMissing
		}

		return nil, err
	}

	if !info.IsDir() {
		return nil, ErrNotADirectory
	}

	if opts.ChecksumWidth > 0 {
		probe := opts.WriteChecksumFn(nil)
		if len(probe) != opts.ChecksumWidth {
			return nil, ErrChecksumWidthMismatch
		}
	}

	oc := newOracle(opts.FS, opts.Directory)

	rd := newReader(opts.FS, opts.Directory, opts.ChecksumWidth, opts.ReadChecksumFn)
	wr := newWriter(opts.FS, opts.Directory, opts.ChecksumWidth, opts.WriteChecksumFn, oc)
	ls := newLister(opts.Alphabet, oc)
	ng := newNextNameGenerator(opts.EntropySource, oc)

	del := newDeleterFor(opts.DeleteStrategy, opts.FS, opts.Directory)
	vc := newVacuum(ls, rd, del)

	d := &dispatcher{
		alphabet: opts.Alphabet,
		reader:   rd,
		writer:   wr,
		deleter:  del,
		lister:   ls,
		next:     ng,
		vacuum:   vc,
	}

	return &Ring{opts: opts, d: d}, nil
}

func newDeleterFor(strategy DeleteStrategy, fsys fs.FS, dir string) deleter {
	switch strategy {
	case DeleteTruncate:
		return newTruncateDeleter(fsys, dir)
	default:
		return newUnlinkDeleter(fsys, dir)
	}
}

// Handle dispatches req through the ring's components and returns the
// resulting Event. It never returns a Go error: construction-time failures
// are reported by [New], per-request failures are reported as Events.
func (r *Ring) Handle(req Request) Event {
	return r.d.handle(req)
}

// Get is a convenience wrapper around Handle(GetRequest(name)).
func (r *Ring) Get(name string) Event {
	return r.Handle(GetRequest(name))
}

// Del is a convenience wrapper around Handle(DelRequest(name)).
func (r *Ring) Del(name string) Event {
	return r.Handle(DelRequest(name))
}

// Push is a convenience wrapper around Handle(PushRequest(item)).
func (r *Ring) Push(item Item) Event {
	return r.Handle(PushRequest(item))
}

// List is a convenience wrapper around Handle(ListRequest()).
func (r *Ring) List() Event {
	return r.Handle(ListRequest())
}

// Vacuum is a convenience wrapper around Handle(VacuumRequest()).
func (r *Ring) Vacuum() Event {
	return r.Handle(VacuumRequest())
}
