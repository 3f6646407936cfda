package profile

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates no document exists for a profile name.
	ErrNotFound = errors.New("profile: not found")

	// ErrInvalidName indicates a name that cannot be used as a file stem.
	ErrInvalidName = errors.New("profile: invalid name")
)

// NotFoundError names the missing profile. It matches ErrNotFound.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("Profile '%s' not found", e.Name)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}
