package repositories

import (
	"errors"
	"fmt"
)

// Common repository errors
var (
	// ErrDuplicateID is returned when creating an item whose id already exists
	ErrDuplicateID = errors.New("duplicate id")

	// ErrInvalidID is returned when an empty or invalid id is provided
	ErrInvalidID = errors.New("invalid id")
)

// RepositoryError wraps a store failure with the operation and id it occurred on
type RepositoryError struct {
	Op  string
	ID  string
	Err error
}

// Error implements the error interface
func (e *RepositoryError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("items %s failed for id %s: %v", e.Op, e.ID, e.Err)
	}
	return fmt.Sprintf("items %s failed: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error
func (e *RepositoryError) Unwrap() error {
	return e.Err
}
