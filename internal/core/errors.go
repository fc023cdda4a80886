package core

import (
	"errors"
	"fmt"
)

// Authentication failures. The web boundary merges both into a single
// generic rejection so callers cannot probe which usernames exist.
var (
	ErrUnknownUser = errors.New("unknown user")
	ErrBadPassword = errors.New("bad password")
)

// NotFoundError is returned when no employee exists for the given id.
type NotFoundError struct {
	ID int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("employee not found with id: %d", e.ID)
}

// DuplicateEmailError is returned when a create would reuse an email already
// present on any record, active or not.
type DuplicateEmailError struct {
	Email string
}

func (e *DuplicateEmailError) Error() string {
	return fmt.Sprintf("email already exists: %s", e.Email)
}

// IsNotFound reports whether err is (or wraps) a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsDuplicateEmail reports whether err is (or wraps) a DuplicateEmailError.
func IsDuplicateEmail(err error) bool {
	var dup *DuplicateEmailError
	return errors.As(err, &dup)
}
