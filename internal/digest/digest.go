package digest

import (
	"crypto/sha256"
	"fmt"

	"github.com/zeebo/xxh3"
)

// Algorithm names accepted in user configuration.
const (
	AlgoXXH3   = "xxh3"
	AlgoSHA256 = "sha256"
)

// Hasher digests content to a lowercase hex string.
type Hasher func(data []byte) string

// XXH3 returns the 128-bit xxh3 digest as hex.
func XXH3(data []byte) string {
	return fmt.Sprintf("%x", xxh3.Hash128(data).Bytes())
}

// SHA256 returns the sha256 digest as hex.
func SHA256(data []byte) string {
	return fmt.Sprintf("%x", sha256.Sum256(data))
}

// New maps a configured algorithm name to a Hasher. Unknown or empty
// names fall back to xxh3.
func New(algo string) Hasher {
	if algo == AlgoSHA256 {
		return SHA256
	}
	return XXH3
}
