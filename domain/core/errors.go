package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Not found errors
	ErrNotFound    = errors.New("resource not found")
	ErrRunNotFound = fmt.Errorf("%w: run", ErrNotFound)

	// Configuration errors (fatal at registry construction)
	ErrDuplicateCanonicalName = errors.New("duplicate canonical algorithm name")
	ErrConflictingAlias       = errors.New("alias claimed by multiple taxonomy entries")
	ErrEmptyTaxonomy          = errors.New("taxonomy table is empty")

	// Caller-contract violations (fatal per scoring call)
	ErrUnknownAlgorithm   = errors.New("canonical algorithm name not in registry")
	ErrUnknownCategory    = errors.New("category tag not in registry")
	ErrInvalidGroundTruth = errors.New("invalid ground truth record")
)

// Error constructors with context
func NewNotFoundError(resource string, id string) error {
	return fmt.Errorf("%w: %s with id %s", ErrNotFound, resource, id)
}

func NewValidationError(field string, reason string) error {
	return fmt.Errorf("validation failed for %s: %s", field, reason)
}

// Error checking helpers
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsConfigurationError(err error) bool {
	return errors.Is(err, ErrDuplicateCanonicalName) ||
		errors.Is(err, ErrConflictingAlias) ||
		errors.Is(err, ErrEmptyTaxonomy)
}

func IsContractViolation(err error) bool {
	return errors.Is(err, ErrUnknownAlgorithm) ||
		errors.Is(err, ErrUnknownCategory) ||
		errors.Is(err, ErrInvalidGroundTruth)
}
