package domain

import "time"

const (
	RoleUser      = "user"
	RoleTherapist = "therapist"
	RoleAdmin     = "admin"
)

// ValidRole reports whether role is one of the known account roles.
func ValidRole(role string) bool {
	return role == RoleUser || role == RoleTherapist || role == RoleAdmin
}

// Preferences holds the user's self-declared content tastes.
type Preferences struct {
	FavoriteTherapies []string `json:"favoriteTherapies" bson:"favorite_therapies"`
	MusicGenres       []string `json:"musicGenres" bson:"music_genres"`
	BookCategories    []string `json:"bookCategories" bson:"book_categories"`
}

// Progress is the cumulative per-user session accounting aggregate.
// SessionsCompleted and TotalTimeSpent only ever grow; LastActive advances
// on login and on every recorded session.
type Progress struct {
	SessionsCompleted int64     `json:"sessionsCompleted" bson:"sessions_completed"`
	TotalTimeSpent    int64     `json:"totalTimeSpent" bson:"total_time_spent"` // minutes
	LastActive        time.Time `json:"lastActive" bson:"last_active"`
}

// User models a registered account. Username and email are globally unique;
// email is stored lowercased so uniqueness is case-insensitive.
type User struct {
	ID           string      `json:"id"`
	Username     string      `json:"username"`
	Email        string      `json:"email"`
	PasswordHash string      `json:"-"`
	FirstName    string      `json:"firstName"`
	LastName     string      `json:"lastName"`
	Age          int         `json:"age,omitempty"`
	Preferences  Preferences `json:"preferences"`
	Progress     Progress    `json:"progress"`
	IsVerified   bool        `json:"isVerified"`
	Role         string      `json:"role"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

// TokenClaims are the identity facts embedded in a bearer token. They reflect
// the user at issuance time; a later role change does not rewrite live tokens.
type TokenClaims struct {
	UserID   string
	Username string
	Role     string
}
