package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/codecrafters-goa/CalmNest-CodeCrafters/internal/core/domain"
	"github.com/codecrafters-goa/CalmNest-CodeCrafters/internal/core/ports"
)

const minPasswordLength = 6

// AuthService implements registration and login on top of the user store,
// the password hasher, and the token service. The service itself is stateless.
type AuthService struct {
	users  ports.UserRepository
	hasher ports.PasswordHasher
	tokens ports.TokenService
	log    zerolog.Logger
}

func NewAuthService(users ports.UserRepository, hasher ports.PasswordHasher, tokens ports.TokenService, log zerolog.Logger) *AuthService {
	return &AuthService{users: users, hasher: hasher, tokens: tokens, log: log}
}

// Register creates a new account with role "user" and zeroed progress, then
// issues a token bound to it. A repeated registration with the same username
// or email fails with domain.ErrUserExists.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*ports.AuthResult, error) {
	if input.Username == "" || input.Email == "" || input.Password == "" ||
		input.FirstName == "" || input.LastName == "" {
		return nil, fmt.Errorf("%w: all required fields must be provided", domain.ErrValidation)
	}
	if len(input.Password) < minPasswordLength {
		return nil, fmt.Errorf("%w: password must be at least %d characters long", domain.ErrValidation, minPasswordLength)
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))

	taken, err := s.users.ExistsByUsernameOrEmail(ctx, input.Username, email)
	if err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}
	if taken {
		return nil, domain.ErrUserExists
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("register: hash password: %w", err)
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:     input.Username,
		Email:        email,
		PasswordHash: hash,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Age:          input.Age,
		Role:         domain.RoleUser,
		IsVerified:   false,
		Progress:     domain.Progress{LastActive: now},
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	token, err := s.tokens.Issue(created)
	if err != nil {
		return nil, fmt.Errorf("register: issue token: %w", err)
	}

	s.log.Info().Str("username", created.Username).Str("user_id", created.ID).Msg("user registered")

	return &ports.AuthResult{Token: token, User: sanitize(created)}, nil
}

// Login authenticates by email and password. Unknown email and wrong
// password are deliberately indistinguishable to the caller: both return
// domain.ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	if email == "" || password == "" {
		return nil, fmt.Errorf("%w: email and password are required", domain.ErrValidation)
	}

	user, err := s.users.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if err == domain.ErrUserNotFound {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("login: %w", err)
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}

	now := time.Now().UTC()
	if err := s.users.TouchLastActive(ctx, user.ID, now); err != nil {
		// login still succeeds; last_active is advisory
		s.log.Warn().Err(err).Str("user_id", user.ID).Msg("failed to update last_active")
	} else {
		user.Progress.LastActive = now
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, fmt.Errorf("login: issue token: %w", err)
	}

	s.log.Info().Str("username", user.Username).Str("user_id", user.ID).Msg("user logged in")

	return &ports.AuthResult{Token: token, User: sanitize(user)}, nil
}

// sanitize strips the credential before the user leaves the service layer.
func sanitize(u *domain.User) *domain.User {
	clone := *u
	clone.PasswordHash = ""
	return &clone
}
