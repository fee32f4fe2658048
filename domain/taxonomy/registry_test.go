package taxonomy

import (
	"errors"
	"testing"

	"cryptobench/domain/core"
)

func TestNormalizeAlias(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"RSA-2048", "rsa2048"},
		{"rsa_2048", "rsa2048"},
		{"RSA2048", "rsa2048"},
		{"SHA-1", "sha1"},
		{"  Diffie-Hellman  ", "diffiehellman"},
		{"ChaCha20/Poly1305", "chacha20poly1305"},
		{"!!!", ""},
		{"", ""},
	}
	for _, tc := range cases {
		if got := NormalizeAlias(tc.in); got != tc.want {
			t.Errorf("NormalizeAlias(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestDefaultRegistryBuilds(t *testing.T) {
	reg := DefaultRegistry()
	if reg.Size() < 80 {
		t.Errorf("expected at least 80 algorithms, got %d", reg.Size())
	}
	if reg.Hash().String() == "" {
		t.Error("registry hash is empty")
	}
	for _, name := range []string{"RSA", "SEED", "ARIA", "SHA-1", "ML-KEM"} {
		if !reg.HasCanonical(name) {
			t.Errorf("builtin table missing %q", name)
		}
	}
}

func TestKoreanAlgorithmsAreSubsetOfBaseCategories(t *testing.T) {
	reg := DefaultRegistry()
	base := map[Category]bool{
		CategoryPublicKey:    true,
		CategorySymmetricKey: true,
		CategoryHashFunction: true,
	}
	for _, name := range reg.AllCanonicalNames() {
		korean := false
		inBase := false
		for _, c := range reg.CategoriesOf(name) {
			if c == CategoryKorean {
				korean = true
			}
			if base[c] {
				inBase = true
			}
		}
		if korean && !inBase {
			t.Errorf("%q is korean_algorithms but not public_key/symmetric_key/hash_function", name)
		}
		if korean != reg.IsDomestic(name) {
			t.Errorf("%q: korean_algorithms membership %v does not match domestic flag %v",
				name, korean, reg.IsDomestic(name))
		}
	}
}

func TestNewRegistryRejectsEmptyTable(t *testing.T) {
	_, err := NewRegistry(nil)
	if !errors.Is(err, core.ErrEmptyTaxonomy) {
		t.Errorf("expected ErrEmptyTaxonomy, got %v", err)
	}
}

func TestNewRegistryRejectsDuplicateCanonicalName(t *testing.T) {
	table := []AlgorithmEntry{
		entry("RSA", false, cats(CategoryPublicKey), "RSA"),
		entry("RSA", false, cats(CategoryPublicKey), "Rivest-Shamir-Adleman"),
	}
	_, err := NewRegistry(table)
	if !errors.Is(err, core.ErrDuplicateCanonicalName) {
		t.Errorf("expected ErrDuplicateCanonicalName, got %v", err)
	}
}

func TestNewRegistryRejectsConflictingAlias(t *testing.T) {
	table := []AlgorithmEntry{
		entry("DES", false, cats(CategorySymmetricKey), "DES"),
		entry("3DES", false, cats(CategorySymmetricKey), "3DES", "des"),
	}
	_, err := NewRegistry(table)
	if !errors.Is(err, core.ErrConflictingAlias) {
		t.Errorf("expected ErrConflictingAlias, got %v", err)
	}
}

func TestNewRegistryRejectsUnknownCategory(t *testing.T) {
	table := []AlgorithmEntry{
		entry("RSA", false, cats(Category("quantum_proof")), "RSA"),
	}
	_, err := NewRegistry(table)
	if !errors.Is(err, core.ErrUnknownCategory) {
		t.Errorf("expected ErrUnknownCategory, got %v", err)
	}
}

func TestNewRegistryRejectsEntryWithoutAliases(t *testing.T) {
	table := []AlgorithmEntry{
		{CanonicalName: "RSA", Categories: cats(CategoryPublicKey)},
	}
	if _, err := NewRegistry(table); err == nil {
		t.Error("expected error for entry without aliases")
	}
}

func TestNewRegistryRejectsAliasNormalizingToNothing(t *testing.T) {
	table := []AlgorithmEntry{
		entry("RSA", false, cats(CategoryPublicKey), "RSA", "---"),
	}
	if _, err := NewRegistry(table); err == nil {
		t.Error("expected error for alias that normalizes to the empty string")
	}
}

func TestRegistryHashIsTableOrderIndependent(t *testing.T) {
	a := MustNewRegistry([]AlgorithmEntry{
		entry("RSA", false, cats(CategoryPublicKey), "RSA"),
		entry("DES", false, cats(CategorySymmetricKey), "DES"),
	})
	b := MustNewRegistry([]AlgorithmEntry{
		entry("DES", false, cats(CategorySymmetricKey), "DES"),
		entry("RSA", false, cats(CategoryPublicKey), "RSA"),
	})
	if a.Hash() != b.Hash() {
		t.Error("hash depends on table order")
	}

	c := MustNewRegistry([]AlgorithmEntry{
		entry("RSA", false, cats(CategoryPublicKey), "RSA", "RSAES"),
		entry("DES", false, cats(CategorySymmetricKey), "DES"),
	})
	if a.Hash() == c.Hash() {
		t.Error("hash did not change when an alias was added")
	}
}

func TestEntryReturnsCopy(t *testing.T) {
	reg := DefaultRegistry()
	e := reg.Entry("RSA")
	e.Aliases[0] = "mutated"
	e.Categories[0] = Category("mutated")

	fresh := reg.Entry("RSA")
	if fresh.Aliases[0] == "mutated" || fresh.Categories[0] == Category("mutated") {
		t.Error("Entry exposed internal state")
	}
}

func TestAliasBindingsSortedAndComplete(t *testing.T) {
	reg := DefaultRegistry()
	bindings := reg.AliasBindings()
	if len(bindings) < reg.Size() {
		t.Fatalf("expected at least one binding per algorithm, got %d for %d algorithms",
			len(bindings), reg.Size())
	}
	for i := 1; i < len(bindings); i++ {
		if bindings[i-1].Alias >= bindings[i].Alias {
			t.Fatalf("bindings not strictly sorted at %d: %q >= %q",
				i, bindings[i-1].Alias, bindings[i].Alias)
		}
	}
	for _, b := range bindings {
		if !reg.HasCanonical(b.Canonical) {
			t.Errorf("binding %q points at unknown canonical %q", b.Alias, b.Canonical)
		}
	}
}

func TestMustEntryPanicsOnUnknownName(t *testing.T) {
	reg := DefaultRegistry()
	defer func() {
		if recover() == nil {
			t.Error("expected panic for unknown canonical name")
		}
	}()
	reg.CategoriesOf("NOT-AN-ALGORITHM")
}
