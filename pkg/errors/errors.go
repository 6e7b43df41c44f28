package errors

import (
	"errors"
	"fmt"
)

// ErrorCode identifies a failure independently of its message
type ErrorCode string

const (
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Configuration errors are fatal
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Category errors are fatal: they abort the whole run
	ErrCategoryNotFound ErrorCode = "CATEGORY_NOT_FOUND"
	ErrCategoryAccess   ErrorCode = "CATEGORY_ACCESS"
	ErrCategoryInvalid  ErrorCode = "CATEGORY_INVALID"

	// Pack errors end up as issues, never as a failed run
	ErrPackAccess ErrorCode = "PACK_ACCESS"
	ErrMetaParse  ErrorCode = "META_PARSE"
)

// LintError is an error carrying a stable code and optional key/value
// details for logs. Codes, not messages, are what callers and tests match on.
type LintError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

func (e *LintError) Error() string {
	if e.Wrapped == nil {
		return fmt.Sprintf("[%s] %s", e.Code, e.Message)
	}
	return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
}

func (e *LintError) Unwrap() error {
	return e.Wrapped
}

// Is matches any LintError with the same code, so errors.Is works with a
// bare New(code, "") as target
func (e *LintError) Is(target error) bool {
	t, ok := target.(*LintError)
	return ok && t.Code == e.Code
}

func newLintError(code ErrorCode, message string, wrapped error) *LintError {
	return &LintError{
		Code:    code,
		Message: message,
		Details: map[string]interface{}{},
		Wrapped: wrapped,
	}
}

// New returns a LintError with no cause
func New(code ErrorCode, message string) *LintError {
	return newLintError(code, message, nil)
}

// Newf is New with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *LintError {
	return newLintError(code, fmt.Sprintf(format, args...), nil)
}

// Wrap attaches a code and message to err. It returns nil for a nil err.
func Wrap(err error, code ErrorCode, message string) *LintError {
	if err == nil {
		return nil
	}
	return newLintError(code, message, err)
}

// Wrapf is Wrap with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *LintError {
	if err == nil {
		return nil
	}
	return newLintError(code, fmt.Sprintf(format, args...), err)
}

// WithDetail sets one detail and returns e for chaining
func (e *LintError) WithDetail(key string, value interface{}) *LintError {
	if e.Details == nil {
		e.Details = map[string]interface{}{}
	}
	e.Details[key] = value
	return e
}

// asLintError finds the outermost LintError in err's chain
func asLintError(err error) (*LintError, bool) {
	var lintErr *LintError
	if errors.As(err, &lintErr) {
		return lintErr, true
	}
	return nil, false
}

// IsErrorCode reports whether err's chain holds a LintError with code
func IsErrorCode(err error, code ErrorCode) bool {
	lintErr, ok := asLintError(err)
	return ok && lintErr.Code == code
}

// GetErrorCode returns the code of err's outermost LintError, or ErrUnknown
func GetErrorCode(err error) ErrorCode {
	if lintErr, ok := asLintError(err); ok {
		return lintErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details of err's outermost LintError, or nil
func GetErrorDetails(err error) map[string]interface{} {
	if lintErr, ok := asLintError(err); ok {
		return lintErr.Details
	}
	return nil
}
