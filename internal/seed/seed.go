// Package seed resets the database to a known development fixture: an admin
// account, a handful of sample users, and the starter content catalogue.
// It is destructive and only meant for local environments.
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/codecrafters-goa/CalmNest-CodeCrafters/internal/core/domain"
	"github.com/codecrafters-goa/CalmNest-CodeCrafters/internal/core/service"
	mongodb "github.com/codecrafters-goa/CalmNest-CodeCrafters/internal/infrastructure/db/mongo"
)

const sampleUserCount = 5

// Run drops existing users and content, then seeds the fixture data.
func Run(ctx context.Context, db *mongo.Database, log zerolog.Logger) error {
	for _, name := range []string{"users", "user_sessions", "audio_contents", "reading_contents", "yoga_contents"} {
		if err := db.Collection(name).Drop(ctx); err != nil {
			return fmt.Errorf("drop %s: %w", name, err)
		}
	}
	log.Info().Msg("cleared existing data")

	users := mongodb.NewUserRepository(db)
	sessions := mongodb.NewSessionRepository(db)
	content := mongodb.NewContentRepository(db)

	if err := users.EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("user indexes: %w", err)
	}
	if err := sessions.EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("session indexes: %w", err)
	}
	if err := content.EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("content indexes: %w", err)
	}

	hasher := service.NewBcryptHasher()
	now := time.Now().UTC()

	admin, err := seedUsers(ctx, users, hasher, now, log)
	if err != nil {
		return err
	}

	if err := seedContent(ctx, content, admin.ID, now); err != nil {
		return err
	}

	log.Info().
		Str("admin_email", "admin@calmnest.com").
		Int("sample_users", sampleUserCount).
		Msg("database seeding completed")
	return nil
}

func seedUsers(ctx context.Context, users *mongodb.UserRepository, hasher *service.BcryptHasher, now time.Time, log zerolog.Logger) (*domain.User, error) {
	adminHash, err := hasher.Hash("admin123")
	if err != nil {
		return nil, fmt.Errorf("hash admin password: %w", err)
	}

	admin, err := users.Create(ctx, &domain.User{
		Username:     "admin",
		Email:        "admin@calmnest.com",
		PasswordHash: adminHash,
		FirstName:    "Admin",
		LastName:     "User",
		Age:          30,
		Role:         domain.RoleAdmin,
		IsVerified:   true,
		Progress:     domain.Progress{LastActive: now},
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return nil, fmt.Errorf("create admin: %w", err)
	}

	for i := 1; i <= sampleUserCount; i++ {
		hash, err := hasher.Hash(fmt.Sprintf("user%d123", i))
		if err != nil {
			return nil, fmt.Errorf("hash user password: %w", err)
		}
		_, err = users.Create(ctx, &domain.User{
			Username:     fmt.Sprintf("user%d", i),
			Email:        fmt.Sprintf("user%d@example.com", i),
			PasswordHash: hash,
			FirstName:    fmt.Sprintf("User%d", i),
			LastName:     "Test",
			Age:          20 + i,
			Role:         domain.RoleUser,
			Preferences: domain.Preferences{
				FavoriteTherapies: []string{"audio", "reading"},
				MusicGenres:       []string{"classical", "nature"},
				BookCategories:    []string{"motivational", "self-help"},
			},
			Progress:  domain.Progress{LastActive: now},
			CreatedAt: now,
			UpdatedAt: now,
		})
		if err != nil {
			return nil, fmt.Errorf("create user%d: %w", i, err)
		}
	}

	log.Info().Msg("created admin and sample users")
	return admin, nil
}

func seedContent(ctx context.Context, content *mongodb.ContentRepository, adminID string, now time.Time) error {
	for _, a := range audioFixtures {
		a.UploadedBy = adminID
		a.IsActive = true
		a.CreatedAt = now
		if _, err := content.InsertAudio(ctx, &a); err != nil {
			return fmt.Errorf("seed audio %q: %w", a.Title, err)
		}
	}
	for _, r := range readingFixtures {
		r.UploadedBy = adminID
		r.IsActive = true
		r.CreatedAt = now
		if _, err := content.InsertReading(ctx, &r); err != nil {
			return fmt.Errorf("seed reading %q: %w", r.Title, err)
		}
	}
	for _, y := range yogaFixtures {
		y.UploadedBy = adminID
		y.IsActive = true
		y.CreatedAt = now
		if _, err := content.InsertYoga(ctx, &y); err != nil {
			return fmt.Errorf("seed yoga %q: %w", y.Title, err)
		}
	}
	return nil
}
