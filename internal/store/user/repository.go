// Package user is the identity record store. Each backend parses identifiers
// into its own native type and reports failures with the sentinel errors below.
package user

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned when no record matches the lookup key.
	ErrNotFound = errors.New("user: not found")
	// ErrInvalidID is returned when an id cannot be parsed into the
	// backend's identifier type.
	ErrInvalidID = errors.New("user: invalid id")
	// ErrUnavailable wraps driver errors caused by the backend being
	// unreachable (network, timeouts, closed client).
	ErrUnavailable = errors.New("user: store unavailable")
	// ErrStore wraps any other driver failure.
	ErrStore = errors.New("user: store error")
)

// Repository is the persistence boundary for user records.
type Repository interface {
	List(ctx context.Context) ([]User, error)
	// Create inserts a record and returns the id assigned by the store.
	Create(ctx context.Context, u New) (string, error)
	FindByID(ctx context.Context, id string) (User, error)
	// FindByName returns the first record whose name equals name exactly.
	FindByName(ctx context.Context, name string) (User, error)
	// Replace overwrites the mutable fields of the record with the given id.
	Replace(ctx context.Context, id string, u Update) error
	// Delete removes the record with the given id. Deleting a missing
	// record is not an error.
	Delete(ctx context.Context, id string) error
}
