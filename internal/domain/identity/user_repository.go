package identity

import (
	"context"

	"github.com/google/uuid"
)

// UserRepository defines the interface for user persistence
type UserRepository interface {
	// Create inserts a new user
	Create(ctx context.Context, user *User) error

	// FindByID finds a user by its primary identifier
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)

	// FindBySessionID resolves a session token to its user
	FindBySessionID(ctx context.Context, sessionID uuid.UUID) (*User, error)

	// FindAll returns every user, oldest first
	FindAll(ctx context.Context) ([]User, error)

	// UpdateSessionID backfills the session token on an existing user
	UpdateSessionID(ctx context.Context, id, sessionID uuid.UUID) error
}
