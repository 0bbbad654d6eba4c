package errors

import (
	"encoding/json"
	"fmt"
)

// ErrorCode represents a specific error condition
type ErrorCode string

const (
	// Configuration errors
	ErrCodeConfigNotFound   ErrorCode = "CONFIG_NOT_FOUND"
	ErrCodeConfigInvalid    ErrorCode = "CONFIG_INVALID"
	ErrCodeConfigValidation ErrorCode = "CONFIG_VALIDATION"

	// Primitive wiring errors
	ErrCodeInvalidOptions ErrorCode = "INVALID_OPTIONS"
	ErrCodeUnknownPart    ErrorCode = "UNKNOWN_PART"
	ErrCodeUnknownEvent   ErrorCode = "UNKNOWN_EVENT"
	ErrCodeNotConnected   ErrorCode = "NOT_CONNECTED"

	// Schema errors
	ErrCodeSchemaValidation ErrorCode = "SCHEMA_VALIDATION"

	// Bridge errors
	ErrCodeBridgeClosed  ErrorCode = "BRIDGE_CLOSED"
	ErrCodeBridgeDecode  ErrorCode = "BRIDGE_DECODE"
	ErrCodeBridgeUnknown ErrorCode = "BRIDGE_UNKNOWN_TARGET"

	// General errors
	ErrCodeInternal     ErrorCode = "INTERNAL_ERROR"
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
)

// HeadlessError represents a structured error with context
type HeadlessError struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
	Cause   error                  `json:"-"`
}

// Error implements the error interface
func (e *HeadlessError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *HeadlessError) Unwrap() error {
	return e.Cause
}

// WithDetail adds a detail to the error
func (e *HeadlessError) WithDetail(key string, value interface{}) *HeadlessError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// ToJSON converts the error to JSON
func (e *HeadlessError) ToJSON() string {
	data, _ := json.MarshalIndent(e, "", "  ")
	return string(data)
}

// New creates a new HeadlessError
func New(code ErrorCode, message string) *HeadlessError {
	return &HeadlessError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with a HeadlessError
func Wrap(err error, code ErrorCode, message string) *HeadlessError {
	return &HeadlessError{
		Code:    code,
		Message: message,
		Cause:   err,
	}
}

// Is checks if an error is a specific HeadlessError code
func Is(err error, code ErrorCode) bool {
	if err == nil {
		return false
	}

	headlessErr, ok := err.(*HeadlessError)
	if !ok {
		// Try to unwrap
		if unwrapper, ok := err.(interface{ Unwrap() error }); ok {
			return Is(unwrapper.Unwrap(), code)
		}
		return false
	}

	return headlessErr.Code == code
}

// GetCode extracts the error code from an error
func GetCode(err error) ErrorCode {
	if err == nil {
		return ""
	}

	headlessErr, ok := err.(*HeadlessError)
	if !ok {
		// Try to unwrap
		if unwrapper, ok := err.(interface{ Unwrap() error }); ok {
			return GetCode(unwrapper.Unwrap())
		}
		return ""
	}

	return headlessErr.Code
}
