package users

import (
	"context"
)

type Repository interface {
	// Create persists a new user. A username or email collision returns
	// common.ErrorAlreadyExists (the database constraint is the race-safe
	// backstop behind the service's pre-check).
	Create(ctx context.Context, user *User) (*User, error)

	// GetByEmail returns common.ErrorNotFound when no user has this email.
	GetByEmail(ctx context.Context, email string) (*User, error)

	// ExistsByUsernameOrEmail reports whether any user already holds the
	// given username or email.
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)
}
