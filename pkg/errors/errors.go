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
	ErrUnknown        ErrorCode = "UNKNOWN"
	ErrInternal       ErrorCode = "INTERNAL"
	ErrInvalidInput   ErrorCode = "INVALID_INPUT"
	ErrNotFound       ErrorCode = "NOT_FOUND"
	ErrPermission     ErrorCode = "PERMISSION"
	ErrNotImplemented ErrorCode = "NOT_IMPLEMENTED"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Path errors
	ErrPathResolution ErrorCode = "PATH_RESOLUTION"
	ErrHomeNotFound   ErrorCode = "HOME_NOT_FOUND"

	// Profile errors
	ErrProfileNotFound ErrorCode = "PROFILE_NOT_FOUND"
	ErrProfileInvalid  ErrorCode = "PROFILE_INVALID"
	ErrProfileAccess   ErrorCode = "PROFILE_ACCESS"

	// Template errors
	ErrMissingVariable ErrorCode = "MISSING_VARIABLE"
	ErrTemplateRender  ErrorCode = "TEMPLATE_RENDER"

	// Link errors
	ErrDestinationConflict ErrorCode = "DESTINATION_CONFLICT"
	ErrLinkNotOwned        ErrorCode = "LINK_NOT_OWNED"

	// FileSystem errors
	ErrFileNotFound  ErrorCode = "FILE_NOT_FOUND"
	ErrFileAccess    ErrorCode = "FILE_ACCESS"
	ErrFileCreate    ErrorCode = "FILE_CREATE"
	ErrFileWrite     ErrorCode = "FILE_WRITE"
	ErrSymlinkCreate ErrorCode = "SYMLINK_CREATE"
	ErrSymlinkRemove ErrorCode = "SYMLINK_REMOVE"
	ErrDirCreate     ErrorCode = "DIR_CREATE"
)

// DotdashError represents a structured error with code and details
type DotdashError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *DotdashError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *DotdashError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *DotdashError) Is(target error) bool {
	var targetErr *DotdashError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new DotdashError with the given code and message
func New(code ErrorCode, message string) *DotdashError {
	return &DotdashError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new DotdashError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *DotdashError {
	return &DotdashError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a DotdashError
func Wrap(err error, code ErrorCode, message string) *DotdashError {
	if err == nil {
		return nil
	}
	return &DotdashError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *DotdashError {
	if err == nil {
		return nil
	}
	return &DotdashError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *DotdashError) WithDetail(key string, value interface{}) *DotdashError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *DotdashError) WithDetails(details map[string]interface{}) *DotdashError {
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
	var dotdashErr *DotdashError
	if errors.As(err, &dotdashErr) {
		return dotdashErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a DotdashError
func GetErrorCode(err error) ErrorCode {
	var dotdashErr *DotdashError
	if errors.As(err, &dotdashErr) {
		return dotdashErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a DotdashError
func GetErrorDetails(err error) map[string]interface{} {
	var dotdashErr *DotdashError
	if errors.As(err, &dotdashErr) {
		return dotdashErr.Details
	}
	return nil
}
