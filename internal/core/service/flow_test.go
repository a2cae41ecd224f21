package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/codecrafters-goa/CalmNest-CodeCrafters/internal/core/domain"
	"github.com/codecrafters-goa/CalmNest-CodeCrafters/internal/core/ports"
)

// TestUserJourney walks the whole happy path through real services backed by
// in-memory stores: register, login, record two sessions, read history and
// profile, and confirm the progress counters line up.
func TestUserJourney(t *testing.T) {
	ctx := context.Background()
	users := newStubUserRepo()
	sessions := &stubSessionRepo{}
	tokens := NewTokenService("secret", time.Hour)

	auth := NewAuthService(users, NewBcryptHasher(), tokens, zerolog.Nop())
	sessionSvc := NewSessionService(sessions, users, zerolog.Nop())
	userSvc := NewUserService(users)

	registered, err := auth.Register(ctx, ports.RegisterInput{
		Username:  "alice",
		Email:     "Alice@Example.com",
		Password:  "secret1",
		FirstName: "Alice",
		LastName:  "Smith",
		Age:       30,
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	loggedIn, err := auth.Login(ctx, "alice@example.com", "secret1")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	claims, err := tokens.Verify(loggedIn.Token)
	if err != nil {
		t.Fatalf("verify login token: %v", err)
	}
	if claims.UserID != registered.User.ID {
		t.Fatalf("token identity %q != registered id %q", claims.UserID, registered.User.ID)
	}

	for _, in := range []ports.RecordSessionInput{
		{TherapyType: "audio", ContentID: "audio-1", Duration: 10, MoodBefore: 3, MoodAfter: 7},
		{TherapyType: "yoga", ContentID: "yoga-1", Duration: 25},
	} {
		if _, err := sessionSvc.Record(ctx, claims.UserID, in); err != nil {
			t.Fatalf("record %s: %v", in.TherapyType, err)
		}
	}

	history, err := sessionSvc.History(ctx, claims.UserID, 1, 10)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if history.Total != 2 {
		t.Fatalf("history total = %d, want 2", history.Total)
	}
	for _, s := range history.Sessions {
		if s.UserID != claims.UserID {
			t.Fatalf("history carries foreign session: %+v", s)
		}
		if s.CompletionStatus != domain.StatusCompleted {
			t.Fatalf("session stored as %q, want completed", s.CompletionStatus)
		}
	}

	profile, err := userSvc.Profile(ctx, claims.UserID)
	if err != nil {
		t.Fatalf("profile: %v", err)
	}
	if profile.Progress.SessionsCompleted != 2 {
		t.Fatalf("sessionsCompleted = %d, want 2", profile.Progress.SessionsCompleted)
	}
	if profile.Progress.TotalTimeSpent != 35 {
		t.Fatalf("totalTimeSpent = %d, want 35", profile.Progress.TotalTimeSpent)
	}
	if profile.PasswordHash != "" {
		t.Fatalf("password hash leaked from profile")
	}

	updated, err := userSvc.UpdateProfile(ctx, claims.UserID, ports.ProfileUpdate{
		FirstName:   "Alice",
		LastName:    "Jones",
		Age:         31,
		Preferences: domain.Preferences{FavoriteTherapies: []string{"yoga"}},
	})
	if err != nil {
		t.Fatalf("update profile: %v", err)
	}
	if updated.LastName != "Jones" || updated.Age != 31 {
		t.Fatalf("profile not updated: %+v", updated)
	}
	// counters survive a profile update
	refetched, _ := userSvc.Profile(ctx, claims.UserID)
	if refetched.Progress.SessionsCompleted != 2 {
		t.Fatalf("progress lost on profile update: %+v", refetched.Progress)
	}
}
