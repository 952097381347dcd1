// File: api/errors.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Common error types and error handling utilities for hioload-buf.

package api

import "fmt"

// Common errors used across the library.
var (
	// ErrNotFullyInitialized is returned by TryIntoFull-style extraction
	// when part of the region still holds stale data. The tracker is left
	// untouched so the caller can keep filling and retry.
	ErrNotFullyInitialized = fmt.Errorf("region is not fully initialized")

	// ErrRegionUnstable reports a TrustedRegion contract violation: Raw
	// returned a different base address or length than it did before.
	ErrRegionUnstable = fmt.Errorf("region view changed between calls")

	ErrPoolClosed      = fmt.Errorf("region pool is closed")
	ErrInvalidArgument = fmt.Errorf("invalid argument")
	ErrNotSupported    = fmt.Errorf("operation not supported")
)

// ErrorCode represents specific error conditions in the library.
type ErrorCode int

const (
	ErrCodeOK ErrorCode = iota
	ErrCodeNotFullyInitialized
	ErrCodeRegionUnstable
	ErrCodePoolClosed
	ErrCodeInvalidArgument
	ErrCodeNotSupported
	ErrCodeInternal
)

// Error represents a structured error with code and context, typically the
// cursor values involved in a failed operation.
type Error struct {
	Code    ErrorCode
	Message string
	Context map[string]any
}

// Error implements the error interface.
func (e *Error) Error() string {
	if len(e.Context) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (context: %+v)", e.Message, e.Context)
}

// Unwrap maps the code back to its sentinel so errors.Is works against the
// package-level errors above.
func (e *Error) Unwrap() error {
	switch e.Code {
	case ErrCodeNotFullyInitialized:
		return ErrNotFullyInitialized
	case ErrCodeRegionUnstable:
		return ErrRegionUnstable
	case ErrCodePoolClosed:
		return ErrPoolClosed
	case ErrCodeInvalidArgument:
		return ErrInvalidArgument
	case ErrCodeNotSupported:
		return ErrNotSupported
	default:
		return nil
	}
}

// NewError creates a new structured error.
func NewError(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Context: make(map[string]any),
	}
}

// WithContext adds context information to the error.
func (e *Error) WithContext(key string, value any) *Error {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}
