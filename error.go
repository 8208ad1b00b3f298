package farmanote

import (
	"errors"
	"fmt"
)

// Application error codes. These map to the failure modes a caller can
// react to: EUNAVAILABLE covers transport failures (both the primary and
// the proxy fetch failed), ENOTFOUND an empty search after all variants,
// ENOINGREDIENTS a record that lists no active ingredients.
const (
	EINVALID       = "invalid"
	EINTERNAL      = "internal"
	ENOTFOUND      = "not_found"
	ENOINGREDIENTS = "no_ingredients"
	EUNAVAILABLE   = "unavailable"
)

// Error represents an application-specific error.
type Error struct {
	// Code is a machine-readable error code.
	Code string

	// Message is a human-readable message.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("farmanote error: code=%s message=%s", e.Code, e.Message)
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors always return EINTERNAL.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors always return "Internal error".
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error"
}

// Errorf is a helper function to return an Error with a given code and
// formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}
