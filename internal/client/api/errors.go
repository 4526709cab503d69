package api

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrUnavailable marks transport failures: no HTTP response was received.
var ErrUnavailable = errors.New("server unavailable")

// Error is a non-2xx response expressed as an error value.
type Error struct {
	StatusCode       int
	Message          string
	ValidationErrors map[string]string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%d: %s", e.StatusCode, http.StatusText(e.StatusCode))
}

func (e *Error) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

func (e *Error) IsUnauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized
}

func (e *Error) IsValidationError() bool {
	return len(e.ValidationErrors) > 0
}
