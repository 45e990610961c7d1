package identity

import (
	"context"

	"github.com/google/uuid"
)

// UserRepository defines the interface for user account persistence
type UserRepository interface {
	// FindByID finds a user by ID
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)

	// FindByUsername finds a user by username (case-insensitive)
	FindByUsername(ctx context.Context, username string) (*User, error)

	// FindByEmail finds a user by email (case-insensitive)
	FindByEmail(ctx context.Context, email string) (*User, error)

	// FindPortalByEmail finds a non-archived portal account by email;
	// returns nil without error when no such account exists
	FindPortalByEmail(ctx context.Context, email string) (*User, error)

	// ExistsByUsername checks whether a username is already taken
	ExistsByUsername(ctx context.Context, username string) (bool, error)

	// ExistsByEmail checks whether an email is already registered
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// Save creates or updates a user
	Save(ctx context.Context, user *User) error
}
