package upload

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// ChecksumBytes returns the xxhash64 digest of data.
func ChecksumBytes(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// FormatChecksum renders a digest as 16 lowercase hex digits.
func FormatChecksum(sum uint64) string {
	return fmt.Sprintf("%016x", sum)
}
