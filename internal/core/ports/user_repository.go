package ports

import (
	"context"

	"logistics/internal/core/domain/model/user"
)

// UserRepository is the identity store. Emails are compared in their normalized form.
type UserRepository interface {
	// Add persists a new user. A taken email yields errs.AlreadyExistsError.
	Add(ctx context.Context, aggregate *user.User) error

	// GetByEmail returns errs.ObjectNotFoundError when no user has that email.
	GetByEmail(ctx context.Context, email string) (*user.User, error)

	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
