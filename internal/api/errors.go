package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MohitAryal/Database-for-social-media/internal/db"
)

// Error represents an API error
type Error struct {
	Code    int
	Message string
}

// NewError creates a new API error
func NewError(code int, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Error implements the error interface
func (e *Error) Error() string {
	return fmt.Sprintf("API error %d: %s", e.Code, e.Message)
}

func badRequest(err error) *Error {
	return NewError(http.StatusBadRequest, err.Error())
}

// statusOf maps an error to the response status and detail message. Errors
// outside the known taxonomy are reported as 500 with a generic message.
func statusOf(err error) (int, string) {
	var apiErr *Error
	switch {
	case errors.As(err, &apiErr):
		return apiErr.Code, apiErr.Message
	case errors.Is(err, db.ErrNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, db.ErrConflict), errors.Is(err, db.ErrInvalidReference):
		return http.StatusBadRequest, err.Error()
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}
