package core

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strings"
)

// Hash represents a cryptographic hash
type Hash string

// NewHash creates a new hash from data
func NewHash(data []byte) Hash {
	sum := sha256.Sum256(data)
	return Hash(hex.EncodeToString(sum[:]))
}

// String returns the string representation
func (h Hash) String() string {
	return string(h)
}

// IsEmpty checks if the hash is empty
func (h Hash) IsEmpty() bool {
	return h == ""
}

// Equals checks if two hashes are equal
func (h Hash) Equals(other Hash) bool {
	return h == other
}

// TaxonomyHash fingerprints one registry's vocabulary
type TaxonomyHash Hash

func (h TaxonomyHash) String() string { return Hash(h).String() }

// ComputeTaxonomyHash fingerprints the registry contents so that run reports
// record exactly which vocabulary produced them. Keys are sorted to keep the
// hash independent of map iteration order.
func ComputeTaxonomyHash(aliasesByName map[string][]string) TaxonomyHash {
	names := make([]string, 0, len(aliasesByName))
	for name := range aliasesByName {
		names = append(names, name)
	}
	sort.Strings(names)

	var data strings.Builder
	for _, name := range names {
		data.WriteString(name)
		aliases := append([]string(nil), aliasesByName[name]...)
		sort.Strings(aliases)
		for _, a := range aliases {
			data.WriteString("|")
			data.WriteString(a)
		}
		data.WriteString("\n")
	}

	return TaxonomyHash(NewHash([]byte(data.String())))
}
