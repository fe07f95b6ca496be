// Package apperr carries business errors with a stable machine-readable code
// so clients can branch on failures programmatically.
package apperr

import (
	"errors"
	"net/http"
)

type Error struct {
	Status  int    // HTTP status the error maps to
	Code    string // stable code, e.g. MIN_TOTAL_NOT_REACHED
	Message string
}

func (e *Error) Error() string { return e.Code + ": " + e.Message }

func New(status int, code, message string) *Error {
	return &Error{Status: status, Code: code, Message: message}
}

// BadRequest covers malformed input, referenced entities that do not exist
// and preconditions not met on creation.
func BadRequest(code, message string) *Error {
	return New(http.StatusBadRequest, code, message)
}

// Conflict covers valid requests that the current state forbids.
func Conflict(code, message string) *Error {
	return New(http.StatusConflict, code, message)
}

// As unwraps err into *Error if it is one.
func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}
