/*
errors.go - Error types for instruction ingestion

PURPOSE:
  All error types in one place. Collaborating packages (ingest, api)
  wrap and inspect these with errors.Is/errors.As.

ERROR CATEGORIES:
  1. Malformed input - A record fails type conversion or domain validation.
     Fatal to the whole batch; there is no partial-success mode.

NON-ERRORS:
  - Unknown currency: falls back to the default calendar (calendar.go)
  - Empty batch: yields three empty tables (engine.go)
*/
package settlement

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrMalformedInstruction is returned when a record has a non-parseable
	// date, a non-numeric numeric field, a negative unit count, or a
	// direction outside {B, S}. The batch is aborted; nothing is reported.
	ErrMalformedInstruction = errors.New("malformed instruction")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// MalformedInstructionError identifies the offending record and field.
type MalformedInstructionError struct {
	Line  int    // 1-based record number in the input, header included
	Field string // wire field name, e.g. "SettlementDate"
	Value string // offending raw value
	Err   error  // underlying conversion error, may be nil
}

func (e *MalformedInstructionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("line %d: field %q: invalid value %q: %v", e.Line, e.Field, e.Value, e.Err)
	}
	return fmt.Sprintf("line %d: field %q: invalid value %q", e.Line, e.Field, e.Value)
}

func (e *MalformedInstructionError) Unwrap() error {
	return ErrMalformedInstruction
}

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsClientError returns true if the error is due to invalid input rather
// than an internal failure. The API layer maps these to 400 responses.
func IsClientError(err error) bool {
	return errors.Is(err, ErrMalformedInstruction)
}
