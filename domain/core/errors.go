package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Input validation errors - all fatal, raised before any computation
	ErrTooFewCategories  = errors.New("at least 2 categories required")
	ErrTooFewGroups      = errors.New("at least 2 groups required")
	ErrTooFewRows        = errors.New("at least 2 rows required")
	ErrTooFewColumns     = errors.New("at least 2 columns required")
	ErrMissingValue      = errors.New("missing or undefined numeric value")
	ErrNegativeCount     = errors.New("negative count")
	ErrZeroExpected      = errors.New("expected probability must be > 0")
	ErrExpectedNotUnit   = errors.New("expected probabilities must sum to 1")
	ErrZeroMarginal      = errors.New("zero marginal total in contingency table")
	ErrRaggedTable       = errors.New("contingency table rows must have equal length")
	ErrZeroBinomialCount = errors.New("both counts must be > 0 for a two-category table")
	ErrContrastLength    = errors.New("contrast length must equal number of groups")
	ErrInsufficientData  = errors.New("insufficient data for analysis")

	// Numerical errors - non-fatal, surfaced alongside results
	ErrNonConvergence = errors.New("minimizer did not converge within tolerance budget")
)

// Error constructors with context
func NewValidationError(field string, reason error) error {
	return fmt.Errorf("validation failed for %s: %w", field, reason)
}

func NewCategoryError(index int, reason error) error {
	return fmt.Errorf("category %d: %w", index, reason)
}

func NewCellError(row, col int, reason error) error {
	return fmt.Errorf("cell (%d,%d): %w", row, col, reason)
}

// IsValidationError reports whether err is one of the fatal input errors.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrTooFewCategories) ||
		errors.Is(err, ErrTooFewGroups) ||
		errors.Is(err, ErrTooFewRows) ||
		errors.Is(err, ErrTooFewColumns) ||
		errors.Is(err, ErrMissingValue) ||
		errors.Is(err, ErrNegativeCount) ||
		errors.Is(err, ErrZeroExpected) ||
		errors.Is(err, ErrExpectedNotUnit) ||
		errors.Is(err, ErrZeroMarginal) ||
		errors.Is(err, ErrRaggedTable) ||
		errors.Is(err, ErrZeroBinomialCount) ||
		errors.Is(err, ErrContrastLength) ||
		errors.Is(err, ErrInsufficientData)
}
