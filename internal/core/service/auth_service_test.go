package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/codecrafters-goa/CalmNest-CodeCrafters/internal/core/domain"
	"github.com/codecrafters-goa/CalmNest-CodeCrafters/internal/core/ports"
)

// stubUserRepo is an in-memory ports.UserRepository shared by the service
// tests. The mutex matters: the session accounting test hits it from many
// goroutines at once.
type stubUserRepo struct {
	mu     sync.Mutex
	users  map[string]*domain.User // by id
	nextID int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Username == user.Username || existing.Email == strings.ToLower(user.Email) {
			return nil, domain.ErrUserExists
		}
	}
	r.nextID++
	stored := cloneUser(user)
	stored.ID = fmt.Sprintf("user-%d", r.nextID)
	stored.Email = strings.ToLower(stored.Email)
	r.users[stored.ID] = stored
	return cloneUser(stored), nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == strings.ToLower(email) {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) ExistsByUsernameOrEmail(_ context.Context, username, email string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username == username || u.Email == strings.ToLower(email) {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubUserRepo) UpdateProfile(_ context.Context, id string, update ports.ProfileUpdate) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	u.FirstName = update.FirstName
	u.LastName = update.LastName
	u.Age = update.Age
	u.Preferences = update.Preferences
	u.UpdatedAt = time.Now().UTC()
	return cloneUser(u), nil
}

func (r *stubUserRepo) TouchLastActive(_ context.Context, id string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.Progress.LastActive = at
	return nil
}

// IncrementProgress honours the atomic-increment contract: the whole update
// happens under one lock, mirroring a single-document $inc.
func (r *stubUserRepo) IncrementProgress(_ context.Context, id string, sessions, minutes int64, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.Progress.SessionsCompleted += sessions
	u.Progress.TotalTimeSpent += minutes
	u.Progress.LastActive = at
	return nil
}

func (r *stubUserRepo) Count(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.users)), nil
}

func (r *stubUserRepo) CountActiveSince(_ context.Context, since time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, u := range r.users {
		if !u.Progress.LastActive.Before(since) {
			n++
		}
	}
	return n, nil
}

func newTestAuthService(repo *stubUserRepo) *AuthService {
	return NewAuthService(repo, NewBcryptHasher(), NewTokenService("secret", time.Hour), zerolog.Nop())
}

func registerInput() ports.RegisterInput {
	return ports.RegisterInput{
		Username:  "alice",
		Email:     "alice@x.com",
		Password:  "secret1",
		FirstName: "Alice",
		LastName:  "Smith",
		Age:       30,
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	result, err := svc.Register(context.Background(), registerInput())
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if result.Token == "" {
		t.Fatalf("expected token")
	}
	if result.User.PasswordHash != "" {
		t.Fatalf("password hash leaked in response")
	}
	if result.User.Role != domain.RoleUser {
		t.Fatalf("expected default role user, got %s", result.User.Role)
	}
	if result.User.IsVerified {
		t.Fatalf("new user must not be verified")
	}
	if result.User.Progress.SessionsCompleted != 0 || result.User.Progress.TotalTimeSpent != 0 {
		t.Fatalf("expected zeroed progress, got %+v", result.User.Progress)
	}

	stored, err := repo.FindByEmail(context.Background(), "alice@x.com")
	if err != nil {
		t.Fatalf("stored user not found: %v", err)
	}
	if stored.PasswordHash == "" || stored.PasswordHash == "secret1" {
		t.Fatalf("password not hashed in store: %q", stored.PasswordHash)
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	svc := newTestAuthService(newStubUserRepo())

	missing := registerInput()
	missing.Email = ""
	if _, err := svc.Register(context.Background(), missing); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation for missing email, got %v", err)
	}

	short := registerInput()
	short.Password = "12345"
	if _, err := svc.Register(context.Background(), short); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation for short password, got %v", err)
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	svc := newTestAuthService(newStubUserRepo())

	if _, err := svc.Register(context.Background(), registerInput()); err != nil {
		t.Fatalf("first register failed: %v", err)
	}

	dup := registerInput()
	dup.Username = "different"
	if _, err := svc.Register(context.Background(), dup); err != domain.ErrUserExists {
		t.Fatalf("expected ErrUserExists for reused email, got %v", err)
	}

	// email uniqueness is case-insensitive
	dup.Email = "ALICE@X.COM"
	if _, err := svc.Register(context.Background(), dup); err != domain.ErrUserExists {
		t.Fatalf("expected ErrUserExists for case-varied email, got %v", err)
	}
}

func TestAuthService_Register_DuplicateUsername(t *testing.T) {
	svc := newTestAuthService(newStubUserRepo())

	if _, err := svc.Register(context.Background(), registerInput()); err != nil {
		t.Fatalf("first register failed: %v", err)
	}

	dup := registerInput()
	dup.Email = "other@x.com"
	if _, err := svc.Register(context.Background(), dup); err != domain.ErrUserExists {
		t.Fatalf("expected ErrUserExists for reused username, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	if _, err := svc.Register(context.Background(), registerInput()); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	before := time.Now().UTC()
	result, err := svc.Login(context.Background(), "alice@x.com", "secret1")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if result.Token == "" {
		t.Fatalf("expected token")
	}
	if result.User.Username != "alice" {
		t.Fatalf("unexpected user: %+v", result.User)
	}
	if result.User.PasswordHash != "" {
		t.Fatalf("password hash leaked in response")
	}
	if result.User.Progress.LastActive.Before(before) {
		t.Fatalf("lastActive not advanced on login")
	}

	tokens := NewTokenService("secret", time.Hour)
	claims, err := tokens.Verify(result.Token)
	if err != nil {
		t.Fatalf("token does not verify: %v", err)
	}
	if claims.Username != "alice" {
		t.Fatalf("token claims wrong username: %s", claims.Username)
	}
}

func TestAuthService_Login_CaseInsensitiveEmail(t *testing.T) {
	svc := newTestAuthService(newStubUserRepo())

	if _, err := svc.Register(context.Background(), registerInput()); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if _, err := svc.Login(context.Background(), "Alice@X.com", "secret1"); err != nil {
		t.Fatalf("case-varied email login failed: %v", err)
	}
}

// Unknown email and wrong password must be indistinguishable to the caller.
func TestAuthService_Login_NoUserEnumeration(t *testing.T) {
	svc := newTestAuthService(newStubUserRepo())

	if _, err := svc.Register(context.Background(), registerInput()); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	_, wrongPass := svc.Login(context.Background(), "alice@x.com", "wrongpass")
	_, noUser := svc.Login(context.Background(), "ghost@x.com", "secret1")

	if wrongPass != domain.ErrInvalidCredentials {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", wrongPass)
	}
	if noUser != domain.ErrInvalidCredentials {
		t.Fatalf("unknown email: expected ErrInvalidCredentials, got %v", noUser)
	}
	if wrongPass != noUser {
		t.Fatalf("error kinds differ: %v vs %v", wrongPass, noUser)
	}
}
