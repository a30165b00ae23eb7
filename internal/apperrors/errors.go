// Package apperrors defines the failure classes the pipeline distinguishes.
// Handlers map them to status codes with errors.Is / errors.As; everything
// else is an internal error.
package apperrors

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound means a curated item id has no matching record.
	ErrNotFound = errors.New("not found")

	// ErrMalformedOutput means the generative model's text could not be
	// parsed into quiz items. It is always recovered locally via the
	// fallback bank and never reaches a client.
	ErrMalformedOutput = errors.New("malformed generative output")
)

// StoreUnavailableError indicates the document store could not be reached.
type StoreUnavailableError struct {
	Op  string
	Err error
}

func (e *StoreUnavailableError) Error() string {
	return fmt.Sprintf("document store unavailable during %s: %v", e.Op, e.Err)
}

func (e *StoreUnavailableError) Unwrap() error { return e.Err }

// GenerativeUnavailableError indicates the model endpoint returned a
// non-success status or could not be reached.
type GenerativeUnavailableError struct {
	StatusCode int
	Err        error
}

func (e *GenerativeUnavailableError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("generative endpoint unavailable: %v", e.Err)
	}
	return fmt.Sprintf("generative endpoint returned status %d", e.StatusCode)
}

func (e *GenerativeUnavailableError) Unwrap() error { return e.Err }

// ValidationError reports a missing or malformed request field, detected
// before any external call is made.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}
