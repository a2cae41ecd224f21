package ports

import (
	"context"

	"github.com/codecrafters-goa/CalmNest-CodeCrafters/internal/core/domain"
)

// RegisterInput carries the fields accepted at registration.
type RegisterInput struct {
	Username  string
	Email     string
	Password  string
	FirstName string
	LastName  string
	Age       int
}

// AuthResult is the outcome of a successful register or login: a bearer token
// and the sanitized user (no password hash crosses this boundary).
type AuthResult struct {
	Token string
	User  *domain.User
}

// AuthService implements registration and login.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
}

// PasswordHasher is a one-way salted hash over plaintext passwords.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	// Verify returns false on any mismatch or malformed digest; it never errors.
	Verify(plaintext, digest string) bool
}

// TokenService issues and verifies self-contained bearer tokens. Tokens stay
// valid until their embedded expiry; there is no revocation list.
type TokenService interface {
	Issue(user *domain.User) (string, error)
	// Verify returns the embedded claims, or one of domain.ErrTokenMalformed,
	// domain.ErrTokenExpired, domain.ErrTokenBadSignature.
	Verify(token string) (*domain.TokenClaims, error)
}
