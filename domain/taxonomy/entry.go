package taxonomy

// Category classifies an algorithm along one axis of the closed vocabulary.
// An algorithm belongs to zero or more categories.
type Category string

const (
	CategoryShorVulnerable      Category = "shor_vulnerable"
	CategoryGroverVulnerable    Category = "grover_vulnerable"
	CategoryClassicalVulnerable Category = "classical_vulnerable"
	CategoryPublicKey           Category = "public_key"
	CategorySymmetricKey        Category = "symmetric_key"
	CategoryHashFunction        Category = "hash_function"
	CategoryMAC                 Category = "mac"
	CategoryKorean              Category = "korean_algorithms"
	CategoryPostQuantum         Category = "post_quantum"
)

// String returns the string representation
func (c Category) String() string { return string(c) }

// AllCategories lists every category class the registry understands
func AllCategories() []Category {
	return []Category{
		CategoryShorVulnerable,
		CategoryGroverVulnerable,
		CategoryClassicalVulnerable,
		CategoryPublicKey,
		CategorySymmetricKey,
		CategoryHashFunction,
		CategoryMAC,
		CategoryKorean,
		CategoryPostQuantum,
	}
}

// AlgorithmEntry describes one algorithm in the closed vocabulary.
// INVARIANTS:
// - CanonicalName is unique across the table
// - Aliases are surface forms; case and hyphen/underscore differences are
//   erased at registry construction, so entries list natural spellings
// - Domestic entries are always members of public_key, symmetric_key or
//   hash_function (Korean national standards are all one of the three)
type AlgorithmEntry struct {
	CanonicalName string     `json:"canonical_name"`
	Aliases       []string   `json:"aliases"`
	Categories    []Category `json:"categories"`
	Domestic      bool       `json:"domestic"`
}
