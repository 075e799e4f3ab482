package fs

import (
	"io/fs"
	"math/rand/v2"
	"os"
	"sync"
	"sync/atomic"
	"syscall"
)

// ChaosConfig controls fault injection probabilities for [Chaos].
//
// Each rate is a float64 from 0.0 (never) to 1.0 (always). The zero value
// disables all fault injection.
type ChaosConfig struct {
	// OpenFailRate controls how often Open/Create/OpenFile fail.
	// The errno is chosen from OpenErrnos (default: EACCES, EIO).
	OpenFailRate float64

	// OpenErrnos lists the errno values Open-phase failures are drawn from.
	// If empty, defaults to [syscall.EACCES, syscall.EIO].
	OpenErrnos []syscall.Errno

	// ReadFailRate controls how often File.Read fails with an errno drawn
	// from ReadErrnos (default: EIO).
	ReadFailRate float64
	ReadErrnos   []syscall.Errno

	// WriteFailRate controls how often File.Write fails with an errno drawn
	// from WriteErrnos (default: EIO, ENOSPC).
	WriteFailRate float64
	WriteErrnos   []syscall.Errno

	// SyncFailRate controls how often File.Sync fails (default errno: EIO).
	SyncFailRate float64

	// StatFailRate controls how often FS.Stat/FS.Exists fail for reasons
	// other than not-found (default errno: EIO).
	StatFailRate float64
}

// Chaos wraps an [FS] and injects random failures for testing the error-kind
// mapping a consumer implements on top of [FS] (see the reader/writer
// mapping tables of the ring package). It never injects ENOENT or EINTR:
// not-found is a real filesystem outcome the wrapped FS already produces,
// and EINTR is retried by the stdlib before it ever reaches callers.
type Chaos struct {
	fs     FS
	rng    *rand.Rand
	rngMu  sync.Mutex
	config ChaosConfig

	openFails  atomic.Int64
	readFails  atomic.Int64
	writeFails atomic.Int64
	statFails  atomic.Int64
}

// NewChaos creates a [Chaos] filesystem wrapping underlying. seed makes fault
// selection reproducible across test runs. Panics if underlying is nil.
func NewChaos(underlying FS, seed int64, config ChaosConfig) *Chaos {
	if underlying == nil {
		panic("underlying fs is nil")
	}

	return &Chaos{
		fs:     underlying,
		rng:    rand.New(rand.NewPCG(uint64(seed), uint64(seed))),
		config: config,
	}
}

// Stats reports how many faults of each kind have been injected so far.
type ChaosStats struct {
	OpenFails  int64
	ReadFails  int64
	WriteFails int64
	StatFails  int64
}

func (c *Chaos) Stats() ChaosStats {
	return ChaosStats{
		OpenFails:  c.openFails.Load(),
		ReadFails:  c.readFails.Load(),
		WriteFails: c.writeFails.Load(),
		StatFails:  c.statFails.Load(),
	}
}

func (c *Chaos) roll(rate float64) bool {
	if rate <= 0 {
		return false
	}

	c.rngMu.Lock()
	defer c.rngMu.Unlock()

	return c.rng.Float64() < rate
}

func (c *Chaos) pick(errnos []syscall.Errno, fallback ...syscall.Errno) syscall.Errno {
	if len(errnos) == 0 {
		errnos = fallback
	}

	c.rngMu.Lock()
	defer c.rngMu.Unlock()

	return errnos[c.rng.IntN(len(errnos))]
}

func pathErr(op, path string, errno syscall.Errno) error {
	return &fs.PathError{Op: op, Path: path, Err: errno}
}

func (c *Chaos) openWithChaos(op, path string, real func() (File, error)) (File, error) {
	if c.roll(c.config.OpenFailRate) {
		c.openFails.Add(1)
		return nil, pathErr(op, path, c.pick(c.config.OpenErrnos, syscall.EACCES, syscall.EIO))
	}

	file, err := real()
	if err != nil {
		return nil, err
	}

	return &chaosFile{c: c, path: path, File: file}, nil
}

func (c *Chaos) Open(path string) (File, error) {
	return c.openWithChaos("open", path, func() (File, error) { return c.fs.Open(path) })
}

func (c *Chaos) Create(path string) (File, error) {
	return c.openWithChaos("open", path, func() (File, error) { return c.fs.Create(path) })
}

func (c *Chaos) OpenFile(path string, flag int, perm os.FileMode) (File, error) {
	return c.openWithChaos("open", path, func() (File, error) { return c.fs.OpenFile(path, flag, perm) })
}

func (c *Chaos) ReadFile(path string) ([]byte, error) {
	if c.roll(c.config.OpenFailRate) {
		c.openFails.Add(1)
		return nil, pathErr("open", path, c.pick(c.config.OpenErrnos, syscall.EACCES, syscall.EIO))
	}

	if c.roll(c.config.ReadFailRate) {
		c.readFails.Add(1)
		return nil, pathErr("read", path, c.pick(c.config.ReadErrnos, syscall.EIO))
	}

	return c.fs.ReadFile(path)
}

func (c *Chaos) WriteFile(path string, data []byte, perm os.FileMode) error {
	if c.roll(c.config.WriteFailRate) {
		c.writeFails.Add(1)
		return pathErr("write", path, c.pick(c.config.WriteErrnos, syscall.EIO, syscall.ENOSPC))
	}

	return c.fs.WriteFile(path, data, perm)
}

func (c *Chaos) ReadDir(path string) ([]os.DirEntry, error) { return c.fs.ReadDir(path) }
func (c *Chaos) MkdirAll(path string, perm os.FileMode) error {
	return c.fs.MkdirAll(path, perm)
}

func (c *Chaos) Stat(path string) (os.FileInfo, error) {
	// Consult the real filesystem first: a not-found (or other real) result
	// passes through unmolested. Injection only overrides a stat that would
	// otherwise have succeeded, so Chaos never fabricates ENOENT.
	info, err := c.fs.Stat(path)
	if err != nil {
		return info, err
	}

	if c.roll(c.config.StatFailRate) {
		c.statFails.Add(1)
		return nil, pathErr("stat", path, syscall.EIO)
	}

	return info, nil
}

func (c *Chaos) Exists(path string) (bool, error) {
	_, err := c.Stat(path)
	if err == nil {
		return true, nil
	}

	if os.IsNotExist(err) {
		return false, nil
	}

	return false, err
}

func (c *Chaos) Remove(path string) error    { return c.fs.Remove(path) }
func (c *Chaos) RemoveAll(path string) error { return c.fs.RemoveAll(path) }

func (c *Chaos) Rename(oldpath, newpath string) error { return c.fs.Rename(oldpath, newpath) }

// chaosFile wraps an open [File] to inject read/write/sync faults.
type chaosFile struct {
	c    *Chaos
	path string
	File
}

func (f *chaosFile) Read(p []byte) (int, error) {
	if f.c.roll(f.c.config.ReadFailRate) {
		f.c.readFails.Add(1)
		return 0, pathErr("read", f.path, f.c.pick(f.c.config.ReadErrnos, syscall.EIO))
	}

	return f.File.Read(p)
}

func (f *chaosFile) Write(p []byte) (int, error) {
	if f.c.roll(f.c.config.WriteFailRate) {
		f.c.writeFails.Add(1)
		return 0, pathErr("write", f.path, f.c.pick(f.c.config.WriteErrnos, syscall.EIO, syscall.ENOSPC))
	}

	return f.File.Write(p)
}

func (f *chaosFile) Sync() error {
	if f.c.roll(f.c.config.SyncFailRate) {
		return pathErr("sync", f.path, syscall.EIO)
	}

	return f.File.Sync()
}

// Compile-time interface checks.
var (
	_ FS   = (*Chaos)(nil)
	_ File = (*chaosFile)(nil)
)
