/*
errors.go - Centralized error types for the generic engine

PURPOSE:
  All error types in one place for consistency and discoverability.
  Domain packages should wrap these errors with additional context.

ERROR CATEGORIES:
  1. Input errors - Values outside the calculator's domain
  2. Evaluation errors - A cascade with no matching rule

USAGE:
  Domain packages wrap generic errors:

    if errors.Is(err, generic.ErrInvalidDays) {
        ...
    }

SEE ALSO:
  - cascade.go: Returns ErrNoRuleMatched
  - reimbursement/types.go: Returns input errors from NewTrip
*/
package generic

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrInvalidDays is returned when a trip duration is not a positive day count.
	ErrInvalidDays = errors.New("trip duration must be at least one day")

	// ErrNegativeMiles is returned when miles traveled is negative or not finite.
	ErrNegativeMiles = errors.New("miles traveled must be a non-negative number")

	// ErrNegativeReceipts is returned when the receipts total is negative.
	ErrNegativeReceipts = errors.New("receipts total must be non-negative")

	// ErrNoRuleMatched is returned when a cascade has no rule for the input.
	// Cascades that end in a catch-all rule never return it.
	ErrNoRuleMatched = errors.New("no rule matched input")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// InputError names the offending field and value.
type InputError struct {
	Field string
	Value any
	Err   error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid %s %v: %v", e.Field, e.Value, e.Err)
}

func (e *InputError) Unwrap() error {
	return e.Err
}

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsClientError returns true if the error is due to invalid caller input.
func IsClientError(err error) bool {
	return errors.Is(err, ErrInvalidDays) ||
		errors.Is(err, ErrNegativeMiles) ||
		errors.Is(err, ErrNegativeReceipts)
}
