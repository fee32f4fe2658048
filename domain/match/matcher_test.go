package match

import (
	"reflect"
	"strings"
	"testing"

	"cryptobench/domain/taxonomy"
)

func newTestMatcher(t *testing.T) *Matcher {
	t.Helper()
	return NewMatcher(taxonomy.DefaultRegistry())
}

// Every authored alias, in any casing and with separators stripped, must
// resolve to exactly its own canonical name through the exact tier.
func TestAliasSymmetry(t *testing.T) {
	reg := taxonomy.DefaultRegistry()
	m := NewMatcher(reg)

	for _, name := range reg.AllCanonicalNames() {
		for _, alias := range reg.LookupAliases(name) {
			variants := []string{
				alias,
				strings.ToUpper(alias),
				strings.ToLower(alias),
				strings.ReplaceAll(alias, "-", "_"),
			}
			for _, v := range variants {
				got := m.Match(v)
				if len(got) != 1 || got[0] != name {
					t.Errorf("Match(%q) = %v, want [%s]", v, got, name)
				}
			}
		}
	}
}

// Length and mode suffixes must not prevent the bare alias from matching,
// whether the surface form is one token ("rsa4096") or separator-split
// ("SEED-128-CBC").
func TestSuffixedSurfaceForms(t *testing.T) {
	m := newTestMatcher(t)
	cases := []struct {
		mention string
		want    []string
	}{
		{"RSA-2048", []string{"RSA"}},
		{"rsa4096", []string{"RSA"}},
		{"SEED-128-CBC", []string{"SEED"}},
		{"AES-256-GCM", []string{"AES"}},
		{"ARIA-192", []string{"ARIA"}},
		{"SHA-512/256", []string{"SHA-512"}},
	}
	for _, tc := range cases {
		if got := m.Match(tc.mention); !reflect.DeepEqual(got, tc.want) {
			t.Errorf("Match(%q) = %v, want %v", tc.mention, got, tc.want)
		}
	}
}

// Two-letter aliases are excluded from the prefix tier; "dhcp" must not
// resolve to Diffie-Hellman.
func TestShortAliasesDoNotPrefixMatch(t *testing.T) {
	m := newTestMatcher(t)
	if got := m.Match("dhcp"); got != nil {
		t.Errorf("Match(\"dhcp\") = %v, want no match", got)
	}
	if got := m.Match("DH"); len(got) != 1 || got[0] != "DH" {
		t.Errorf("Match(\"DH\") = %v, want [DH]", got)
	}
}

func TestTokenContainmentTier(t *testing.T) {
	m := newTestMatcher(t)
	cases := []struct {
		mention string
		want    []string
	}{
		{"uses Diffie-Hellman key exchange", []string{"DH"}},
		{"found HMAC and SHA 1 in config", []string{"HMAC", "SHA-1"}},
		// Containment credits every alias the phrase contains: the full
		// ECDH spelling and the embedded "diffiehellman" run.
		{"Elliptic Curve Diffie-Hellman (ECDH)", []string{"DH", "ECDH"}},
		// "Triple DES" contains both the 3DES alias and the whole word
		// "des"; the recall-biased policy credits both.
		{"legacy Triple DES in CBC mode", []string{"3DES", "DES"}},
	}
	for _, tc := range cases {
		if got := m.Match(tc.mention); !reflect.DeepEqual(got, tc.want) {
			t.Errorf("Match(%q) = %v, want %v", tc.mention, got, tc.want)
		}
	}
}

// Known edge case of the recall-biased ambiguity policy: a single-token
// mention whose normalized form extends aliases of two different entries
// credits both. "DESEDE3" starts with both "des" (DES) and "desede" (3DES).
func TestPrefixTierMultiCredit(t *testing.T) {
	m := newTestMatcher(t)
	got := m.Match("DESEDE3")
	want := []string{"3DES", "DES"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Match(\"DESEDE3\") = %v, want %v", got, want)
	}
}

// Sentences are scanned in full: a leading alias-shaped word must neither
// hide the rest of the sentence nor produce a hit on its own prefix.
func TestFreeTextSentencesScanAllAlgorithms(t *testing.T) {
	m := newTestMatcher(t)
	cases := []struct {
		mention string
		want    []string
	}{
		{"KCDSA certificates enabled; MD5 hash usage detected in audit log.", []string{"KCDSA", "MD5"}},
		{"RSA and SEED are both present", []string{"RSA", "SEED"}},
		// "Description" starts with "des" but the sentence names AES only.
		{"Description: uses AES-256 only", []string{"AES"}},
	}
	for _, tc := range cases {
		if got := m.Match(tc.mention); !reflect.DeepEqual(got, tc.want) {
			t.Errorf("Match(%q) = %v, want %v", tc.mention, got, tc.want)
		}
	}
}

func TestGarbledInputResolvesToNothing(t *testing.T) {
	m := newTestMatcher(t)
	for _, mention := range []string{"", "!!!", "@@@@", "zebra", "완전히 다른 텍스트", "no crypto here at all"} {
		if got := m.Match(mention); got != nil {
			t.Errorf("Match(%q) = %v, want no match", mention, got)
		}
	}
}

func TestMatchAllUnionsAndSorts(t *testing.T) {
	m := newTestMatcher(t)
	got := m.MatchAll([]string{"RSA-2048", "rsa", "SEED", "garbage", "MD5"})
	want := []string{"MD5", "RSA", "SEED"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("MatchAll = %v, want %v", got, want)
	}
}

func TestMatchAllEmptyInput(t *testing.T) {
	m := newTestMatcher(t)
	if got := m.MatchAll(nil); len(got) != 0 {
		t.Errorf("MatchAll(nil) = %v, want empty", got)
	}
}

func TestTokenize(t *testing.T) {
	got := tokenize("SEED-128-CBC used; MD5_Update called")
	want := []string{"seed", "128", "cbc", "used", "md5", "update", "called"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("tokenize = %v, want %v", got, want)
	}
}
