package core

import (
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func TestNewIDUniqueness(t *testing.T) {
	seen := make(map[ID]bool)
	for i := 0; i < 1000; i++ {
		id := NewID()
		if id.IsEmpty() {
			t.Fatal("NewID returned empty ID")
		}
		if seen[id] {
			t.Fatalf("duplicate ID generated: %s", id)
		}
		seen[id] = true
	}
}

func TestParseCaseID(t *testing.T) {
	id, err := ParseCaseID("  case-1  ")
	if err != nil {
		t.Fatalf("ParseCaseID failed: %v", err)
	}
	if id.String() != "case-1" {
		t.Errorf("ParseCaseID = %q, want %q", id, "case-1")
	}
	if _, err := ParseCaseID("   "); err == nil {
		t.Error("expected error for blank case ID")
	}
}

func TestComputeTaxonomyHashOrderIndependent(t *testing.T) {
	a := ComputeTaxonomyHash(map[string][]string{
		"RSA": {"RSA", "RSAES"},
		"DES": {"DES"},
	})
	b := ComputeTaxonomyHash(map[string][]string{
		"DES": {"DES"},
		"RSA": {"RSAES", "RSA"},
	})
	if a != b {
		t.Error("taxonomy hash depends on map or alias order")
	}

	c := ComputeTaxonomyHash(map[string][]string{
		"RSA": {"RSA"},
		"DES": {"DES"},
	})
	if a == c {
		t.Error("taxonomy hash did not change when aliases changed")
	}
}

func TestTimestampJSONRoundTrip(t *testing.T) {
	orig := NewTimestamp(time.Date(2026, 8, 27, 12, 30, 0, 0, time.UTC))
	data, err := json.Marshal(orig)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	var back Timestamp
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if !orig.Time().Equal(back.Time()) {
		t.Errorf("round trip changed timestamp: %v != %v", orig.Time(), back.Time())
	}
}

func TestErrorClassification(t *testing.T) {
	if !IsConfigurationError(ErrConflictingAlias) {
		t.Error("ErrConflictingAlias should be a configuration error")
	}
	if !IsContractViolation(ErrUnknownAlgorithm) {
		t.Error("ErrUnknownAlgorithm should be a contract violation")
	}
	wrapped := NewNotFoundError("run", "abc")
	if !IsNotFoundError(wrapped) {
		t.Error("NewNotFoundError should satisfy IsNotFoundError")
	}
	if !errors.Is(ErrRunNotFound, ErrNotFound) {
		t.Error("ErrRunNotFound should wrap ErrNotFound")
	}
	if IsContractViolation(ErrNotFound) {
		t.Error("ErrNotFound misclassified as contract violation")
	}
}
