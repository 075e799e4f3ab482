package ring

import "crypto/rand"

// EntropySource produces a fresh byte on each call, used by the next-name
// generator to pick a candidate slot for PUSH. Do not hard-code
// /dev/urandom in callers — go through this interface so tests can supply a
// deterministic or fixed sequence.
//
// Implementations must be safe for concurrent use only if the embedding Ring
// is used concurrently; the default [Ring] usage is single-threaded.
type EntropySource interface {
	// NextByte returns the next byte from the source, or an error if the
	// source is exhausted or otherwise fails. Errors propagate immediately
	// as EventUnexpectedError.
	NextByte() (byte, error)
}

// CryptoRandSource reads single bytes from crypto/rand, the default entropy
// source (the platform's unblocked randomness device).
type CryptoRandSource struct{}

// NewCryptoRandSource returns the default entropy source.
func NewCryptoRandSource() CryptoRandSource { return CryptoRandSource{} }

// NextByte reads exactly one byte from crypto/rand.Reader.
func (CryptoRandSource) NextByte() (byte, error) {
	var b [1]byte

	_, err := rand.Read(b[:])
	if err != nil {
		return 0, err
	}

	return b[0], nil
}

// SequentialEntropySource cycles through 0x00..0xff in order, deterministic
// and reproducible — useful for fuzzing and for tests that need predictable
// slot selection.
type SequentialEntropySource struct {
	next byte
}

// NewSequentialEntropySource returns a source starting at the given byte.
func NewSequentialEntropySource(start byte) *SequentialEntropySource {
	return &SequentialEntropySource{next: start}
}

// NextByte returns the next byte in the cycle and advances it.
func (s *SequentialEntropySource) NextByte() (byte, error) {
	b := s.next
	s.next++

	return b, nil
}

// FixedEntropySource replays a fixed sequence of bytes, then returns
// ErrEntropyExhausted. Used in tests to pin PUSH to chosen slots. A sequence
// that runs out before PUSH finds an empty slot makes PUSH report
// EventUnexpectedError, not EventTooManyItemsAlready.
type FixedEntropySource struct {
	seq []byte
	pos int
}

// NewFixedEntropySource returns a source that replays seq in order.
func NewFixedEntropySource(seq []byte) *FixedEntropySource {
	return &FixedEntropySource{seq: seq}
}

// NextByte returns the next byte in seq, or ErrEntropyExhausted once seq is
// consumed.
func (s *FixedEntropySource) NextByte() (byte, error) {
	if s.pos >= len(s.seq) {
		return 0, ErrEntropyExhausted
	}

	b := s.seq[s.pos]
	s.pos++

	return b, nil
}
