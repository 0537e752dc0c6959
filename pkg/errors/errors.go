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
	ErrCanceled     ErrorCode = "CANCELED"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Template errors
	ErrPlaceholderRange ErrorCode = "PLACEHOLDER_RANGE"
	ErrCaptureCount     ErrorCode = "CAPTURE_COUNT"

	// Specification errors
	ErrInvalidSpec ErrorCode = "INVALID_SPEC"

	// Listing errors
	ErrDirRead   ErrorCode = "DIR_READ"
	ErrNoMatches ErrorCode = "NO_MATCHES"

	// Planning errors
	ErrInvalidDestination   ErrorCode = "INVALID_DESTINATION"
	ErrDestinationCollision ErrorCode = "DESTINATION_COLLISION"
	ErrDestinationExists    ErrorCode = "DESTINATION_EXISTS"
	ErrFileAccess           ErrorCode = "FILE_ACCESS"

	// Execution errors
	ErrRenameFailed ErrorCode = "RENAME_FAILED"
)

// MmvError represents a structured error with code and details
type MmvError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *MmvError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *MmvError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *MmvError) Is(target error) bool {
	var targetErr *MmvError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new MmvError with the given code and message
func New(code ErrorCode, message string) *MmvError {
	return &MmvError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new MmvError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *MmvError {
	return &MmvError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a MmvError
func Wrap(err error, code ErrorCode, message string) *MmvError {
	if err == nil {
		return nil
	}
	return &MmvError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *MmvError {
	if err == nil {
		return nil
	}
	return &MmvError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *MmvError) WithDetail(key string, value interface{}) *MmvError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *MmvError) WithDetails(details map[string]interface{}) *MmvError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var mmvErr *MmvError
	if errors.As(err, &mmvErr) {
		return mmvErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a MmvError
func GetErrorCode(err error) ErrorCode {
	var mmvErr *MmvError
	if errors.As(err, &mmvErr) {
		return mmvErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from the outermost MmvError, or nil
func GetErrorDetails(err error) map[string]interface{} {
	var mmvErr *MmvError
	if errors.As(err, &mmvErr) {
		return mmvErr.Details
	}
	return nil
}

// GetDetail returns a single detail value from the outermost MmvError.
func GetDetail(err error, key string) (interface{}, bool) {
	details := GetErrorDetails(err)
	if details == nil {
		return nil, false
	}
	v, ok := details[key]
	return v, ok
}

// Report is the serializable form of an error used by machine-readable
// output.
type Report struct {
	Error   string                 `json:"error" yaml:"error"`
	Code    ErrorCode              `json:"code" yaml:"code"`
	Details map[string]interface{} `json:"details,omitempty" yaml:"details,omitempty"`
}

// Describe flattens err into a Report. Errors that are not MmvErrors get
// the UNKNOWN code.
func Describe(err error) Report {
	return Report{
		Error:   err.Error(),
		Code:    GetErrorCode(err),
		Details: GetErrorDetails(err),
	}
}
