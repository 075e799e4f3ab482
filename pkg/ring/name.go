package ring

import (
	"fmt"
	"path/filepath"
)

// Alphabet validates and enumerates the set of Names a ring accepts. The
// canonical alphabet is two lowercase hex digits, giving the 256-slot ring.
//
// Implementations must be safe for concurrent use; the reference alphabet
// below is stateless and trivially is.
type Alphabet interface {
	// Validate accepts only strings in the alphabet, returning BadRequest
	// (via ok=false) for anything else.
	Validate(s string) (name Name, ok bool)

	// Successor returns the cyclic next Name after n. Used only by
	// sequential-probing callers; random probing (the default [Ring] PUSH
	// path) does not call it.
	Successor(n Name) Name

	// All returns every Name in the alphabet, in enumeration order. Used by
	// the lister as its candidate generator.
	All() []Name
}

// HexByteAlphabet is the canonical 256-slot alphabet: names are exactly two
// lowercase hex digits, i.e. a byte value 0x00..0xff rendered as "00".."ff".
type HexByteAlphabet struct{}

// Validate accepts exactly `[0-9a-f]{2}`, parsed as base-16 into a byte.
func (HexByteAlphabet) Validate(s string) (Name, bool) {
	if len(s) != 2 {
		return "", false
	}

	hi, ok := hexDigit(s[0])
	if !ok {
		return "", false
	}

	lo, ok := hexDigit(s[1])
	if !ok {
		return "", false
	}

	return byteToName(hi<<4 | lo), true
}

func hexDigit(b byte) (byte, bool) {
	switch {
	case b >= '0' && b <= '9':
		return b - '0', true
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10, true
	default:
		// Uppercase hex is rejected: the alphabet is fixed to two lowercase
		// hex digits, so "4A" and "4a" are not interchangeable names.
		return 0, false
	}
}

func byteToName(b byte) Name {
	const digits = "0123456789abcdef"
	return Name([]byte{digits[b>>4], digits[b&0x0f]})
}

// Successor returns byte(n)+1 mod 256, re-rendered as two hex digits.
func (HexByteAlphabet) Successor(n Name) Name {
	b, ok := hexByteValue(n)
	if !ok {
		panic(fmt.Sprintf("ring: Successor called with invalid name %q", n))
	}

	return byteToName(b + 1)
}

func hexByteValue(n Name) (byte, bool) {
	a := HexByteAlphabet{}

	validated, ok := a.Validate(string(n))
	if !ok {
		return 0, false
	}

	hi, _ := hexDigit(validated[0])
	lo, _ := hexDigit(validated[1])

	return hi<<4 | lo, true
}

// All returns all 256 names "00".."ff" in ascending byte order.
func (HexByteAlphabet) All() []Name {
	names := make([]Name, 256)
	for i := range 256 {
		names[i] = byteToName(byte(i))
	}

	return names
}

// pathFor joins dir and name into a filesystem path. No normalization
// beyond filepath.Join and no validation of name; callers validate names via
// [Alphabet] before reaching here.
func pathFor(dir string, name Name) string {
	return filepath.Join(dir, string(name))
}
