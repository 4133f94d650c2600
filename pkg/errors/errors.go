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
	ErrNotFound     ErrorCode = "NOT_FOUND"

	// Repository errors
	ErrRepoOpen     ErrorCode = "REPO_OPEN"
	ErrDiffRetrieve ErrorCode = "DIFF_RETRIEVE"
	ErrDiffParse    ErrorCode = "DIFF_PARSE"
	ErrStage        ErrorCode = "STAGE"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigWrite ErrorCode = "CONFIG_WRITE"

	// Backup errors
	ErrBackupCreate  ErrorCode = "BACKUP_CREATE"
	ErrBackupRestore ErrorCode = "BACKUP_RESTORE"

	// FileSystem errors
	ErrFileNotFound ErrorCode = "FILE_NOT_FOUND"
	ErrFileAccess   ErrorCode = "FILE_ACCESS"
	ErrFileWrite    ErrorCode = "FILE_WRITE"
)

// AutobotError represents a structured error with code and details
type AutobotError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *AutobotError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *AutobotError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *AutobotError) Is(target error) bool {
	var targetErr *AutobotError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new AutobotError with the given code and message
func New(code ErrorCode, message string) *AutobotError {
	return &AutobotError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new AutobotError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *AutobotError {
	return &AutobotError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with an AutobotError
func Wrap(err error, code ErrorCode, message string) *AutobotError {
	if err == nil {
		return nil
	}
	return &AutobotError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *AutobotError {
	if err == nil {
		return nil
	}
	return &AutobotError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *AutobotError) WithDetail(key string, value interface{}) *AutobotError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var autobotErr *AutobotError
	if errors.As(err, &autobotErr) {
		return autobotErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not an AutobotError
func GetErrorCode(err error) ErrorCode {
	var autobotErr *AutobotError
	if errors.As(err, &autobotErr) {
		return autobotErr.Code
	}
	return ErrUnknown
}
