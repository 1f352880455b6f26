package ports

import (
	"time"

	"logistics/internal/core/domain/model/user"
)

type PasswordHasher interface {
	Hash(password string) (string, error)

	// Verify reports whether password matches hash. A malformed hash is a mismatch.
	Verify(hash, password string) bool
}

// IssuedToken is a signed session token.
type IssuedToken struct {
	Token     string
	ExpiresAt time.Time
}

type TokenIssuer interface {
	Issue(u *user.User) (IssuedToken, error)
}
