// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"gameswap/internal/domain/entity"
	"gameswap/internal/domain/service"
)

// --- Input DTOs ---

// RegisterInput defines the data required to create a new account.
type RegisterInput struct {
	Username string `validate:"required,min=2,max=64"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=5"`
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

// --- Output DTOs ---

// AuthOutput returns the signed token and the user after a successful
// login or registration.
type AuthOutput struct {
	Token string
	User  *entity.User
}

// AccountUsecase defines the account-facing business operations the
// GraphQL delivery depends on.
type AccountUsecase interface {
	// Register creates an account, hashing the password before
	// persistence, and issues a token.
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)

	// Login verifies credentials and issues a token. Unknown email and
	// wrong password fail identically.
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)

	// Me returns the caller's user with rental games resolved. A missing
	// user record yields (nil, nil), not an error.
	Me(ctx context.Context, principal *service.Principal) (*entity.User, error)

	// SaveGame adds a rental for the game and returns the caller's full
	// resolved rental set. Saving an already-rented game is a no-op.
	SaveGame(ctx context.Context, principal *service.Principal, gameID string) ([]entity.RentalRecord, error)

	// RemoveGame removes any rental for the game and returns the
	// caller's resolved rental set. Absent rentals are a no-op.
	RemoveGame(ctx context.Context, principal *service.Principal, gameID string) ([]entity.RentalRecord, error)
}
