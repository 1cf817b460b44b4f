package services

import (
	"prepcourse/store"

	"github.com/pkg/errors"
)

var (
	ErrAlreadyPurchased = errors.New("course already purchased")
	ErrEmailTaken       = errors.New("email already registered")
	ErrInvalidDate      = errors.New("invalid date")
)

// NotFoundError reports a missing root entity. It is distinct from an empty
// result, which is never an error.
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return e.Entity + " not found"
}

func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// notFound converts store.ErrNotFound into a NotFoundError for entity and
// passes other errors through.
func notFound(entity string, err error) error {
	if store.IsNotFound(err) {
		return &NotFoundError{Entity: entity}
	}
	return err
}
