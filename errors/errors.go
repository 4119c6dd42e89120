package errors

import (
	"fmt"
	"net/http"
	"strings"
)

// Error is the API error type mapped directly to an HTTP status code.
type Error struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
}

var _ error = &Error{}

func (e *Error) Error() string {
	return fmt.Sprintf("error: message: %s", e.Message)
}

// New creates and returns an error on the fly
func New(message string, status int) *Error {
	return &Error{
		Message: message,
		Status:  status,
	}
}

var (
	ErrNotFound            = New("record not found", http.StatusNotFound)
	ErrBadRequest          = New("bad request", http.StatusBadRequest)
	ErrConflict            = New("duplicate field value", http.StatusBadRequest)
	ErrInternalServerError = New("internal server error", http.StatusInternalServerError)
)

// GetUniqueConstraintError maps a unique-constraint violation from the store
// to a client-facing conflict error; anything else becomes a 500.
func GetUniqueConstraintError(err error) *Error {
	if err == nil {
		return nil
	}
	msg := err.Error()
	if strings.Contains(msg, "duplicate key value") || strings.Contains(msg, "already in use") {
		return New(msg, http.StatusBadRequest)
	}
	return ErrInternalServerError
}
