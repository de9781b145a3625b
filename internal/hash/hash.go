// Package hash generates deterministic git-style identifiers used as
// decorative commit hashes in list UI. No security properties.
package hash

import "fmt"

const (
	offsetBasis uint32 = 0x811c9dc5
	prime       uint32 = 0x01000193
)

// Hash returns a 40-character lowercase hex string resembling a git SHA-1.
// It is an FNV-1a accumulator with 32-bit unsigned wraparound; when the
// natural hex form is shorter than 40 characters, further prime
// multiplications are prepended until it is long enough. The wraparound
// semantics are part of the contract: the output is bit-for-bit identical
// across runs and platforms.
func Hash(input string) string {
	h := offsetBasis
	for _, r := range input {
		h ^= uint32(r)
		h *= prime
	}

	hex := fmt.Sprintf("%x", h)
	for len(hex) < 40 {
		h *= prime
		hex = fmt.Sprintf("%x", h) + hex
	}
	return hex[:40]
}

// ShortHash returns the 7-character short form shown in commit-log lists.
func ShortHash(input string) string {
	return Hash(input)[:7]
}
