// Package api
// Author: momentics <momentics@gmail.com>
//
// Common error types and error handling utilities for the circbuf library.

package api

import "fmt"

// Common errors used across the library.
var (
	ErrOutOfRange        = fmt.Errorf("index out of range")
	ErrCapacityExceeded  = fmt.Errorf("requested capacity exceeds maximum size")
	ErrAllocFailure      = fmt.Errorf("allocation failure")
	ErrInvalidIterator   = fmt.Errorf("invalid iterator")
	ErrCodecShortBuffer  = fmt.Errorf("codec: short buffer")
	ErrCodecBadHeader    = fmt.Errorf("codec: malformed header")
	ErrInvalidArgument   = fmt.Errorf("invalid argument")
	ErrResourceExhausted = fmt.Errorf("resource exhausted")
)

// ErrorCode represents specific error conditions in the library.
type ErrorCode int

const (
	ErrCodeOK ErrorCode = iota
	ErrCodeOutOfRange
	ErrCodeCapacityExceeded
	ErrCodeAllocFailure
	ErrCodeInvalidIterator
	ErrCodeCodec
	ErrCodeInvalidArgument
	ErrCodeInternal
)

// Error represents a structured error with code and context.
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
