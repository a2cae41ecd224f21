package ports

import (
	"context"
	"time"

	"github.com/codecrafters-goa/CalmNest-CodeCrafters/internal/core/domain"
)

// ProfileUpdate carries the mutable profile fields for UpdateProfile.
type ProfileUpdate struct {
	FirstName   string
	LastName    string
	Age         int
	Preferences domain.Preferences
}

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	// Create inserts a new user and returns it with its generated ID.
	// Returns domain.ErrUserExists when the username or email is taken.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// FindByEmail matches case-insensitively (emails are stored lowercased).
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// ExistsByUsernameOrEmail reports whether any user already holds either
	// identity field.
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)
	UpdateProfile(ctx context.Context, id string, update ProfileUpdate) (*domain.User, error)
	// TouchLastActive sets progress.last_active without touching the counters.
	TouchLastActive(ctx context.Context, id string, at time.Time) error
	// IncrementProgress atomically adds to the progress counters and advances
	// last_active in a single store operation. Implementations must not
	// read-modify-write; concurrent calls for the same user must all land.
	IncrementProgress(ctx context.Context, id string, sessions, minutes int64, at time.Time) error
	// Count returns the total number of users.
	Count(ctx context.Context) (int64, error)
	// CountActiveSince returns users whose last_active is at or after since.
	CountActiveSince(ctx context.Context, since time.Time) (int64, error)
}
