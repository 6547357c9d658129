package domain

import (
	"errors"
	"fmt"
)

// Decode errors: the snapshot tree does not match the reserve schema.
// Callers treat these as "discard this snapshot and refetch", never retry.
var ErrMalformed = errors.New("malformed reserve entry")

// Calculation errors. InvalidInput means a numeric invariant was violated by
// the caller (negative utilization, negative supply/borrow). OutOfBounds
// means an input exceeded a documented range (backstop take-rate outside
// [0, scalar]). Overflow means a computation produced a non-finite result
// that cannot be clamped. All three render the asset's rate undisplayable;
// none of them is a crash.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrOutOfBounds  = errors.New("value out of bounds")
	ErrOverflow     = errors.New("arithmetic overflow")
)

// ErrReserveNotFound is returned when no decoded reserve is available for an
// asset, typically because the cached snapshot expired before a refresh.
var ErrReserveNotFound = errors.New("reserve not found")

// MissingFieldError reports a required field absent from a reserve entry
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("reserve entry missing required field %q", e.Field)
}

// Unwrap makes MissingFieldError match ErrMalformed under errors.Is, since a
// missing required field is one shape of schema mismatch.
func (e *MissingFieldError) Unwrap() error {
	return ErrMalformed
}
