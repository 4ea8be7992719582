package db

import (
	"errors"

	"gorm.io/gorm"
)

// Error kinds returned by the store. Every store error wraps one of them, so
// callers check with errors.Is.
var (
	ErrNotFound         = errors.New("not found")
	ErrConflict         = errors.New("conflict")
	ErrInvalidReference = errors.New("invalid reference")
)

// kindError carries a caller-facing message while matching its kind
type kindError struct {
	kind error
	msg  string
}

func (e *kindError) Error() string { return e.msg }

func (e *kindError) Unwrap() error { return e.kind }

func notFound(msg string) error {
	return &kindError{kind: ErrNotFound, msg: msg}
}

func conflict(msg string) error {
	return &kindError{kind: ErrConflict, msg: msg}
}

func invalidReference(msg string) error {
	return &kindError{kind: ErrInvalidReference, msg: msg}
}

// translate maps constraint violations reported by the driver onto the store
// error kinds. Other errors pass through unchanged.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return conflict("Duplicate entry")
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return invalidReference("Referenced entity does not exist")
	default:
		return err
	}
}
