// Package match resolves free-text algorithm mentions against the taxonomy.
//
// Model output is uncurated, so resolution never fails: a mention that hits
// nothing resolves to the empty set and contributes nothing downstream.
package match

import (
	"sort"

	"cryptobench/domain/taxonomy"
)

// minPrefixAliasLen is the shortest normalized alias eligible for the prefix
// tier. Two-letter aliases like "dh" stay exact/token-only; otherwise any
// mention starting with "dh" (e.g. "dhcp") would resolve to Diffie-Hellman.
const minPrefixAliasLen = 3

// maxTokenWindow covers the longest multi-word alias in the vocabulary
// ("elliptic curve digital signature algorithm" is five tokens).
const maxTokenWindow = 5

// Matcher resolves raw mentions to canonical algorithm names. It is built
// once from a registry and is safe for concurrent use.
type Matcher struct {
	exact         map[string]string // normalized alias -> canonical name
	prefixAliases []taxonomy.AliasBinding
}

// NewMatcher builds the tier lookup structures from a registry
func NewMatcher(reg *taxonomy.Registry) *Matcher {
	bindings := reg.AliasBindings()

	exact := make(map[string]string, len(bindings))
	prefixAliases := make([]taxonomy.AliasBinding, 0, len(bindings))
	for _, b := range bindings {
		exact[b.Alias] = b.Canonical
		if len(b.Alias) >= minPrefixAliasLen {
			prefixAliases = append(prefixAliases, b)
		}
	}

	return &Matcher{
		exact:         exact,
		prefixAliases: prefixAliases,
	}
}

// Match resolves one mention to zero or more canonical names. The exact tier
// runs first; what happens on a miss depends on the mention's shape:
//
//   - a single-token mention ("RSA2048") goes to the prefix tier, which
//     strips length/mode suffixes by matching aliases of length >= 3
//   - a multi-word mention falls through to token containment: an alias
//     appearing as a whole word, or as a run of adjacent words, is credited
//     ("found HMAC and SHA 1" contains both "hmac" and "sha1")
//
// The prefix tier never sees multi-word text. A sentence that merely starts
// with an alias-shaped word must not resolve on that word alone; containment
// scans the whole sentence so every algorithm named in it is credited.
//
// A mention hitting aliases of several algorithms credits them all. That
// bias toward recall is deliberate; the alias table is curated so the
// multi-credit path stays rare.
func (m *Matcher) Match(mention string) []string {
	norm := taxonomy.NormalizeAlias(mention)
	if norm == "" {
		return nil
	}

	if name, ok := m.exact[norm]; ok {
		return []string{name}
	}

	tokens := tokenize(mention)
	if len(tokens) < 2 {
		return m.matchPrefix(norm)
	}
	return m.matchTokens(tokens)
}

// MatchAll resolves a batch of mentions and unions the results
func (m *Matcher) MatchAll(mentions []string) []string {
	seen := make(map[string]bool)
	for _, mention := range mentions {
		for _, name := range m.Match(mention) {
			seen[name] = true
		}
	}
	return sortedKeys(seen)
}

func (m *Matcher) matchPrefix(norm string) []string {
	seen := make(map[string]bool)
	for _, b := range m.prefixAliases {
		if len(norm) > len(b.Alias) && norm[:len(b.Alias)] == b.Alias {
			seen[b.Canonical] = true
		}
	}
	if len(seen) == 0 {
		return nil
	}
	return sortedKeys(seen)
}

func (m *Matcher) matchTokens(tokens []string) []string {
	seen := make(map[string]bool)
	for i := range tokens {
		window := ""
		for j := i; j < len(tokens) && j < i+maxTokenWindow; j++ {
			window += tokens[j]
			if name, ok := m.exact[window]; ok {
				seen[name] = true
			}
		}
	}
	if len(seen) == 0 {
		return nil
	}
	return sortedKeys(seen)
}

// tokenize splits a raw mention on non-alphanumeric boundaries and normalizes
// each word. Splitting happens before normalization so that separators inside
// the original text ("SEED-128-CBC") produce word boundaries.
func tokenize(s string) []string {
	var tokens []string
	start := -1
	for i := 0; i <= len(s); i++ {
		alnum := i < len(s) && isAlnum(s[i])
		if alnum && start < 0 {
			start = i
		}
		if !alnum && start >= 0 {
			tokens = append(tokens, taxonomy.NormalizeAlias(s[start:i]))
			start = -1
		}
	}
	return tokens
}

func isAlnum(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

func sortedKeys(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
