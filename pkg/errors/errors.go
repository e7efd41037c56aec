package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Formula errors
	ErrFormatMismatch ErrorCode = "FORMAT_MISMATCH"

	// FileSystem errors
	ErrFileRead  ErrorCode = "FILE_READ"
	ErrFileWrite ErrorCode = "FILE_WRITE"
)

// BumpError represents a structured error with code and details
type BumpError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *BumpError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *BumpError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *BumpError) Is(target error) bool {
	var targetErr *BumpError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new BumpError with the given code and message
func New(code ErrorCode, message string) *BumpError {
	return &BumpError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new BumpError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *BumpError {
	return &BumpError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a BumpError
func Wrap(err error, code ErrorCode, message string) *BumpError {
	if err == nil {
		return nil
	}
	return &BumpError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *BumpError {
	if err == nil {
		return nil
	}
	return &BumpError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *BumpError) WithDetail(key string, value interface{}) *BumpError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var bumpErr *BumpError
	if errors.As(err, &bumpErr) {
		return bumpErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a BumpError
func GetErrorCode(err error) ErrorCode {
	var bumpErr *BumpError
	if errors.As(err, &bumpErr) {
		return bumpErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a BumpError
func GetErrorDetails(err error) map[string]interface{} {
	var bumpErr *BumpError
	if errors.As(err, &bumpErr) {
		return bumpErr.Details
	}
	return nil
}
