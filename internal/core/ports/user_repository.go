package ports

import (
	"context"

	"gofer/internal/core/domain/model/kernel"
	"gofer/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for user accounts.
type UserRepository interface {
	// Add persists a new user aggregate to storage.
	Add(ctx context.Context, aggregate *user.User) error

	// Update persists changes to an existing user aggregate.
	Update(ctx context.Context, aggregate *user.User) error

	// Get retrieves a user aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)

	// GetByEmail retrieves a user aggregate by its normalized e-mail.
	GetByEmail(ctx context.Context, email string) (*user.User, error)

	// ExistsByEmail reports whether an account with the given e-mail
	// already exists.
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
