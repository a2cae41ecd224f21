package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"github.com/codecrafters-goa/CalmNest-CodeCrafters/internal/core/domain"
	"github.com/codecrafters-goa/CalmNest-CodeCrafters/internal/core/ports"
)

type stubContentRepo struct {
	audio   []*domain.AudioContent
	reading []*domain.ReadingContent
	yoga    []*domain.YogaContent
}

func (r *stubContentRepo) InsertAudio(_ context.Context, c *domain.AudioContent) (*domain.AudioContent, error) {
	stored := *c
	stored.ID = fmt.Sprintf("audio-%d", len(r.audio)+1)
	r.audio = append(r.audio, &stored)
	return &stored, nil
}

func (r *stubContentRepo) ListAudio(_ context.Context, filter ports.ContentFilter) ([]*domain.AudioContent, int64, error) {
	var out []*domain.AudioContent
	for _, c := range r.audio {
		if filter.Category != "" && c.Category != filter.Category {
			continue
		}
		out = append(out, c)
	}
	return out, int64(len(out)), nil
}

func (r *stubContentRepo) CountAudio(_ context.Context) (int64, error) {
	return int64(len(r.audio)), nil
}

func (r *stubContentRepo) InsertReading(_ context.Context, c *domain.ReadingContent) (*domain.ReadingContent, error) {
	stored := *c
	stored.ID = fmt.Sprintf("reading-%d", len(r.reading)+1)
	r.reading = append(r.reading, &stored)
	return &stored, nil
}

func (r *stubContentRepo) ListReading(_ context.Context, filter ports.ContentFilter) ([]*domain.ReadingContent, int64, error) {
	return r.reading, int64(len(r.reading)), nil
}

func (r *stubContentRepo) CountReading(_ context.Context) (int64, error) {
	return int64(len(r.reading)), nil
}

func (r *stubContentRepo) InsertYoga(_ context.Context, c *domain.YogaContent) (*domain.YogaContent, error) {
	stored := *c
	stored.ID = fmt.Sprintf("yoga-%d", len(r.yoga)+1)
	r.yoga = append(r.yoga, &stored)
	return &stored, nil
}

func (r *stubContentRepo) ListYoga(_ context.Context, filter ports.ContentFilter) ([]*domain.YogaContent, int64, error) {
	return r.yoga, int64(len(r.yoga)), nil
}

func TestContentService_CreateAudio(t *testing.T) {
	repo := &stubContentRepo{}
	svc := NewContentService(repo, zerolog.Nop())

	created, err := svc.CreateAudio(context.Background(), "admin-1", &domain.AudioContent{
		Title:       "Ocean Waves",
		Description: "Calming ocean sounds",
		Category:    "nature",
		AudioURL:    "https://cdn.example.com/ocean.mp3",
		Duration:    600,
	})
	if err != nil {
		t.Fatalf("CreateAudio returned error: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("expected id")
	}
	if !created.IsActive {
		t.Fatalf("new content must be active")
	}
	if created.UploadedBy != "admin-1" {
		t.Fatalf("uploadedBy = %q, want admin-1", created.UploadedBy)
	}
	if created.Tags == nil {
		t.Fatalf("tags must default to an empty slice")
	}
	if created.CreatedAt.IsZero() {
		t.Fatalf("createdAt not set")
	}
}

func TestContentService_CreateAudio_Validation(t *testing.T) {
	svc := NewContentService(&stubContentRepo{}, zerolog.Nop())

	_, err := svc.CreateAudio(context.Background(), "admin-1", &domain.AudioContent{Title: "only a title"})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestContentService_CreateYoga_Defaults(t *testing.T) {
	svc := NewContentService(&stubContentRepo{}, zerolog.Nop())

	created, err := svc.CreateYoga(context.Background(), "admin-1", &domain.YogaContent{
		Title:       "Sun Salutation",
		Description: "Morning flow",
		Category:    "morning",
	})
	if err != nil {
		t.Fatalf("CreateYoga returned error: %v", err)
	}
	if created.Difficulty != domain.DifficultyBeginner {
		t.Fatalf("difficulty = %q, want beginner default", created.Difficulty)
	}
	if created.Instructions == nil || created.Benefits == nil {
		t.Fatalf("instructions and benefits must default to empty slices")
	}
}

func TestContentService_ListAudio_Filtered(t *testing.T) {
	repo := &stubContentRepo{}
	svc := NewContentService(repo, zerolog.Nop())

	for _, cat := range []string{"nature", "nature", "music"} {
		if _, err := svc.CreateAudio(context.Background(), "admin-1", &domain.AudioContent{
			Title:       "t",
			Description: "d",
			Category:    cat,
			AudioURL:    "https://cdn.example.com/a.mp3",
		}); err != nil {
			t.Fatalf("seed audio: %v", err)
		}
	}

	result, err := svc.ListAudio(context.Background(), ports.ContentFilter{Category: "nature"})
	if err != nil {
		t.Fatalf("ListAudio returned error: %v", err)
	}
	if result.Total != 2 {
		t.Fatalf("total = %d, want 2", result.Total)
	}
	if result.CurrentPage != 1 {
		t.Fatalf("currentPage = %d, want clamped 1", result.CurrentPage)
	}
	if result.TotalPages != 1 {
		t.Fatalf("totalPages = %d, want 1", result.TotalPages)
	}
}

func TestAnalyticsService_Overview(t *testing.T) {
	users := newStubUserRepo()
	for i := 0; i < 3; i++ {
		if _, err := users.Create(context.Background(), &domain.User{
			Username: fmt.Sprintf("u%d", i),
			Email:    fmt.Sprintf("u%d@x.com", i),
			Role:     domain.RoleUser,
		}); err != nil {
			t.Fatalf("seed user: %v", err)
		}
	}
	sessions := &stubSessionRepo{}
	for i := 0; i < 4; i++ {
		therapy := domain.TherapyAudio
		if i == 0 {
			therapy = domain.TherapyYoga
		}
		sessions.Insert(context.Background(), &domain.TherapySession{UserID: "user-1", TherapyType: therapy, ContentID: "c"})
	}
	content := &stubContentRepo{}
	svc := NewContentService(content, zerolog.Nop())
	if _, err := svc.CreateAudio(context.Background(), "a", &domain.AudioContent{Title: "t", Description: "d", Category: "nature", AudioURL: "u"}); err != nil {
		t.Fatalf("seed audio: %v", err)
	}

	overview, err := NewAnalyticsService(users, sessions, content).Overview(context.Background())
	if err != nil {
		t.Fatalf("Overview returned error: %v", err)
	}
	if overview.TotalUsers != 3 {
		t.Fatalf("totalUsers = %d, want 3", overview.TotalUsers)
	}
	if overview.TotalSessions != 4 {
		t.Fatalf("totalSessions = %d, want 4", overview.TotalSessions)
	}
	if overview.TotalAudioContent != 1 {
		t.Fatalf("totalAudioContent = %d, want 1", overview.TotalAudioContent)
	}
	if len(overview.PopularTherapies) != 2 {
		t.Fatalf("popularTherapies = %+v, want 2 groups", overview.PopularTherapies)
	}
	if overview.PopularTherapies[0].TherapyType != string(domain.TherapyAudio) || overview.PopularTherapies[0].Count != 3 {
		t.Fatalf("most popular = %+v, want audio with 3", overview.PopularTherapies[0])
	}
}
