package ringconfig

import (
	"fmt"

	"github.com/ringfs/ringfs/pkg/fs"
	"github.com/ringfs/ringfs/pkg/ring"
)

// Build opens a [ring.Ring] rooted at cfg.Directory, wiring up the checksum
// function and delete strategy named in cfg.
func Build(cfg Config) (*ring.Ring, error) {
	width, checksumFn, err := checksumFor(cfg.ChecksumAlgo)
	if err != nil {
		return nil, err
	}

	opts := ring.Options{
		Directory:       cfg.Directory,
		ChecksumWidth:   width,
		ReadChecksumFn:  checksumFn,
		WriteChecksumFn: checksumFn,
		FS:              fs.NewReal(),
	}

	switch cfg.DeleteStrategy {
	case "truncate":
		opts.DeleteStrategy = ring.DeleteTruncate
	default:
		opts.DeleteStrategy = ring.DeleteUnlink
	}

	r, err := ring.New(opts)
	if err != nil {
		return nil, fmt.Errorf("opening ring at %s: %w", cfg.Directory, err)
	}

	return r, nil
}
