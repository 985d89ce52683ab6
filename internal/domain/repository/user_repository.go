// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers
// and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"gameswap/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// ErrDuplicateUser is returned when a username or email uniqueness
// constraint is violated on create.
var ErrDuplicateUser = errors.New("username or email already taken")

// UserRepository defines the standard operations for user persistence.
//
// The store must apply AddRental and RemoveRental as single atomic
// find-and-update operations keyed by user id, so concurrent rental
// mutations for the same user never interleave into a corrupted document.
type UserRepository interface {
	// FindByIDOrUsername retrieves a user matching either key.
	FindByIDOrUsername(ctx context.Context, id, username string) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user. Returns ErrDuplicateUser when the
	// username or email is already registered.
	Create(ctx context.Context, user *entity.User) error

	// AddRental adds the record to the user's rental set with set
	// semantics keyed by game id: adding an already-present game is a
	// no-op. Returns the updated user, or ErrUserNotFound.
	AddRental(ctx context.Context, userID string, record entity.RentalRecord) (*entity.User, error)

	// RemoveRental removes any record matching the game id from the
	// user's rental set; absent records are a no-op. Returns the updated
	// user, or ErrUserNotFound.
	RemoveRental(ctx context.Context, userID, gameID string) (*entity.User, error)
}
