package ringconfig

import (
	"crypto/sha256"
	"fmt"
	"hash/crc32"
)

// checksumFor resolves a config's checksum_algorithm into the width and
// function pair [ring.Options] expects. The same function serves as both
// ReadChecksumFn and WriteChecksumFn.
func checksumFor(algo string) (width int, fn func([]byte) []byte, err error) {
	switch algo {
	case "", "none":
		return 0, nil, nil

	case "crc32":
		return 4, func(payload []byte) []byte {
			sum := crc32.ChecksumIEEE(payload)
			return []byte{byte(sum >> 24), byte(sum >> 16), byte(sum >> 8), byte(sum)}
		}, nil

	case "sha256":
		return sha256.Size, func(payload []byte) []byte {
			sum := sha256.Sum256(payload)
			return sum[:]
		}, nil

	default:
		return 0, nil, fmt.Errorf("unknown checksum algorithm %q", algo)
	}
}
