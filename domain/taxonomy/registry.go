package taxonomy

import (
	"fmt"
	"sort"

	"cryptobench/domain/core"
)

// Registry owns the closed algorithm vocabulary. It is built once at startup,
// validated, and never mutated afterwards, so it is safe for concurrent reads
// without synchronization.
//
// Accessors taking a canonical name panic on unknown input: the taxonomy is
// authored, not discovered at runtime, so an unknown name is a programming
// error in the caller, not a recoverable condition.
type Registry struct {
	entries    map[string]AlgorithmEntry
	aliasIndex map[string]string // normalized alias -> canonical name
	canonical  []string          // sorted canonical names
	hash       core.TaxonomyHash
}

// AliasBinding pairs one normalized alias with the canonical name that owns it
type AliasBinding struct {
	Alias     string
	Canonical string
}

// NewRegistry validates an algorithm table and builds the alias index.
// Construction fails on a duplicate canonical name or on an alias claimed by
// two entries: the engine refuses to run with an inconsistent vocabulary.
func NewRegistry(table []AlgorithmEntry) (*Registry, error) {
	if len(table) == 0 {
		return nil, core.ErrEmptyTaxonomy
	}

	entries := make(map[string]AlgorithmEntry, len(table))
	aliasIndex := make(map[string]string)
	canonical := make([]string, 0, len(table))
	known := make(map[Category]bool, len(AllCategories()))
	for _, c := range AllCategories() {
		known[c] = true
	}

	for _, e := range table {
		if e.CanonicalName == "" {
			return nil, core.NewValidationError("canonical_name", "must not be empty")
		}
		if _, dup := entries[e.CanonicalName]; dup {
			return nil, fmt.Errorf("%w: %q", core.ErrDuplicateCanonicalName, e.CanonicalName)
		}
		if len(e.Aliases) == 0 {
			return nil, core.NewValidationError("aliases", fmt.Sprintf("%q has no aliases", e.CanonicalName))
		}
		for _, c := range e.Categories {
			if !known[c] {
				return nil, fmt.Errorf("%w: %q in entry %q", core.ErrUnknownCategory, c, e.CanonicalName)
			}
		}

		for _, alias := range e.Aliases {
			key := NormalizeAlias(alias)
			if key == "" {
				return nil, core.NewValidationError("alias", fmt.Sprintf("%q normalizes to nothing", alias))
			}
			if owner, taken := aliasIndex[key]; taken && owner != e.CanonicalName {
				return nil, fmt.Errorf("%w: %q claimed by %q and %q",
					core.ErrConflictingAlias, alias, owner, e.CanonicalName)
			}
			aliasIndex[key] = e.CanonicalName
		}

		entries[e.CanonicalName] = e
		canonical = append(canonical, e.CanonicalName)
	}
	sort.Strings(canonical)

	aliasesByName := make(map[string][]string, len(entries))
	for name, e := range entries {
		aliasesByName[name] = e.Aliases
	}

	return &Registry{
		entries:    entries,
		aliasIndex: aliasIndex,
		canonical:  canonical,
		hash:       core.ComputeTaxonomyHash(aliasesByName),
	}, nil
}

// MustNewRegistry builds a registry and panics on a malformed table.
// Intended for the authored builtin table and for tests.
func MustNewRegistry(table []AlgorithmEntry) *Registry {
	reg, err := NewRegistry(table)
	if err != nil {
		panic(err)
	}
	return reg
}

// DefaultRegistry builds the registry over the builtin vocabulary
func DefaultRegistry() *Registry {
	return MustNewRegistry(BuiltinTable())
}

// LookupAliases returns the authored alias set of a canonical name
func (r *Registry) LookupAliases(canonicalName string) []string {
	e := r.mustEntry(canonicalName)
	return append([]string(nil), e.Aliases...)
}

// CategoriesOf returns the category tags of a canonical name
func (r *Registry) CategoriesOf(canonicalName string) []Category {
	e := r.mustEntry(canonicalName)
	return append([]Category(nil), e.Categories...)
}

// IsDomestic reports whether an algorithm carries the locale-specific flag
func (r *Registry) IsDomestic(canonicalName string) bool {
	return r.mustEntry(canonicalName).Domestic
}

// AllCanonicalNames returns every canonical name, sorted
func (r *Registry) AllCanonicalNames() []string {
	return append([]string(nil), r.canonical...)
}

// Size returns the number of algorithms in the vocabulary
func (r *Registry) Size() int {
	return len(r.canonical)
}

// HasCanonical reports whether a canonical name exists in the vocabulary
func (r *Registry) HasCanonical(name string) bool {
	_, ok := r.entries[name]
	return ok
}

// HasCategory reports whether a category tag is a known category class
func (r *Registry) HasCategory(c Category) bool {
	for _, known := range AllCategories() {
		if c == known {
			return true
		}
	}
	return false
}

// Entry returns a copy of the full entry for a canonical name
func (r *Registry) Entry(canonicalName string) AlgorithmEntry {
	e := r.mustEntry(canonicalName)
	e.Aliases = append([]string(nil), e.Aliases...)
	e.Categories = append([]Category(nil), e.Categories...)
	return e
}

// AliasBindings returns every (normalized alias, canonical name) pair,
// sorted by alias. The matcher builds its lookup structures from this.
func (r *Registry) AliasBindings() []AliasBinding {
	out := make([]AliasBinding, 0, len(r.aliasIndex))
	for alias, name := range r.aliasIndex {
		out = append(out, AliasBinding{Alias: alias, Canonical: name})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Alias < out[j].Alias })
	return out
}

// Hash fingerprints the vocabulary for run manifests
func (r *Registry) Hash() core.TaxonomyHash {
	return r.hash
}

func (r *Registry) mustEntry(canonicalName string) AlgorithmEntry {
	e, ok := r.entries[canonicalName]
	if !ok {
		panic(fmt.Sprintf("taxonomy: unknown canonical name %q", canonicalName))
	}
	return e
}

// NormalizeAlias lower-cases a surface form and strips every character that
// is not an ASCII letter or digit. "RSA-2048", "rsa_2048" and "RSA2048" all
// collapse to "rsa2048". This is the single normalization rule shared by the
// registry index and the matcher.
func NormalizeAlias(s string) string {
	buf := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z', c >= '0' && c <= '9':
			buf = append(buf, c)
		case c >= 'A' && c <= 'Z':
			buf = append(buf, c+('a'-'A'))
		}
	}
	return string(buf)
}
