package ring

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by [New] when an [Options] value cannot build a
// working ring. Check with errors.Is.
var (
	// ErrDirectoryEmpty reports that Options.Directory was the empty string.
	ErrDirectoryEmpty = errors.New("ring: directory is empty")

	// ErrDirectoryMissing reports that Options.Directory does not exist.
	ErrDirectoryMissing = errors.New("ring: directory does not exist")

	// ErrNotADirectory reports that Options.Directory exists but is a file.
	ErrNotADirectory = errors.New("ring: path is not a directory")

	// ErrChecksumFnMissing reports that ChecksumWidth > 0 but one of
	// ReadChecksumFn/WriteChecksumFn was nil.
	ErrChecksumFnMissing = errors.New("ring: checksum width set without a checksum function")

	// ErrChecksumWidthMismatch reports that WriteChecksumFn's output length
	// does not match the configured ChecksumWidth. The read and write
	// checksum functions must agree; this check catches a checksum function
	// that disagrees with its own declared width at construction time,
	// before it manifests as universal Broken at read time.
	ErrChecksumWidthMismatch = errors.New("ring: checksum function output length does not match checksum width")

	// ErrEntropySourceMissing reports that no EntropySource was configured
	// and no default could be constructed.
	ErrEntropySourceMissing = errors.New("ring: entropy source is required")

	// ErrEntropyExhausted is returned by [FixedEntropySource] once its fixed
	// byte sequence has been fully consumed.
	ErrEntropyExhausted = errors.New("ring: entropy source exhausted")
)

// Error attaches a slot Name to an underlying cause. The emptiness check
// wraps stat failures in it; [New] returns the sentinels above unwrapped.
// Per-Request outcomes are reported via [Event], never as a Go error: an
// Error raised while servicing a Request reaches the caller only as the
// Message text of an Event, not as a panic or a returned error from
// [Ring.Handle].
//
// Use errors.Is to check for one of the sentinels above; use errors.As to
// recover the slot Name, if any, associated with the failure.
type Error struct {
	// Name is the slot the error pertains to, if any.
	Name Name

	// Err is the underlying cause.
	Err error
}

// Error formats as "<cause> (slot=<name>)", omitting the suffix when Name is
// empty.
func (e *Error) Error() string {
	if e == nil {
		return ""
	}

	if e.Name == "" {
		return e.cause()
	}

	return fmt.Sprintf("%s (slot=%s)", e.cause(), e.Name)
}

func (e *Error) cause() string {
	if e.Err == nil {
		return ""
	}

	return e.Err.Error()
}

// Unwrap supports errors.Is/errors.As against the wrapped cause.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}

	return e.Err
}

// wrap attaches slot context to err, returning nil for a nil err. If err is
// already a *Error with no name set, name is filled in rather than
// double-wrapping.
func wrap(err error, name Name) error {
	if err == nil {
		return nil
	}

	var existing *Error
	if errors.As(err, &existing) && existing.Name == "" {
		existing.Name = name
		return existing
	}

	return &Error{Name: name, Err: err}
}
