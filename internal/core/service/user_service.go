package service

import (
	"context"
	"fmt"

	"github.com/codecrafters-goa/CalmNest-CodeCrafters/internal/core/domain"
	"github.com/codecrafters-goa/CalmNest-CodeCrafters/internal/core/ports"
)

// UserService serves the authenticated user's own profile.
type UserService struct {
	users ports.UserRepository
}

func NewUserService(users ports.UserRepository) *UserService {
	return &UserService{users: users}
}

func (s *UserService) Profile(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return sanitize(user), nil
}

// UpdateProfile replaces first/last name, age, and preferences. Identity
// fields, role, and progress counters are not reachable from here.
func (s *UserService) UpdateProfile(ctx context.Context, userID string, update ports.ProfileUpdate) (*domain.User, error) {
	if update.FirstName == "" || update.LastName == "" {
		return nil, fmt.Errorf("%w: firstName and lastName are required", domain.ErrValidation)
	}

	user, err := s.users.UpdateProfile(ctx, userID, update)
	if err != nil {
		return nil, err
	}
	return sanitize(user), nil
}
