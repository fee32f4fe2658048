package core

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ID represents a domain identifier
type ID string

// NewID creates a new unique identifier using UUID v7 for time-ordered generation
func NewID() ID {
	// Use UUID v7 for time-ordered, sortable IDs
	// Falls back to v4 if v7 is not available (for compatibility)
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return ID(id.String())
}

// String returns the string representation
func (id ID) String() string {
	return string(id)
}

// IsEmpty checks if the ID is empty
func (id ID) IsEmpty() bool {
	return id == ""
}

// Domain-specific ID types
type (
	RunID  ID
	CaseID ID
)

// String conversions for domain IDs
func (id RunID) String() string  { return ID(id).String() }
func (id CaseID) String() string { return ID(id).String() }

// NewRunID creates a new run identifier
func NewRunID() RunID { return RunID(NewID()) }

// NewCaseID creates a new case identifier
func NewCaseID() CaseID { return CaseID(NewID()) }

// ParseCaseID parses and validates a case ID from a string
func ParseCaseID(s string) (CaseID, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return "", fmt.Errorf("case ID cannot be empty")
	}
	return CaseID(trimmed), nil
}

// ParseRunID parses and validates a run ID from a string
func ParseRunID(s string) (RunID, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return "", fmt.Errorf("run ID cannot be empty")
	}
	return RunID(trimmed), nil
}
