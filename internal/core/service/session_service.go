package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/codecrafters-goa/CalmNest-CodeCrafters/internal/core/domain"
	"github.com/codecrafters-goa/CalmNest-CodeCrafters/internal/core/ports"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

// SessionService records completed therapy sessions and serves history pages.
type SessionService struct {
	sessions ports.SessionRepository
	users    ports.UserRepository
	log      zerolog.Logger
}

func NewSessionService(sessions ports.SessionRepository, users ports.UserRepository, log zerolog.Logger) *SessionService {
	return &SessionService{sessions: sessions, users: users, log: log}
}

// Record persists an immutable session with completion status "completed",
// then bumps the owner's progress counters through the repository's atomic
// increment. The increment is a single store operation, so concurrent
// recordings for the same user never lose updates.
func (s *SessionService) Record(ctx context.Context, userID string, input ports.RecordSessionInput) (*domain.TherapySession, error) {
	therapy := domain.TherapyType(input.TherapyType)
	if !therapy.Valid() {
		return nil, fmt.Errorf("%w: unknown therapy type %q", domain.ErrValidation, input.TherapyType)
	}
	if input.ContentID == "" {
		return nil, fmt.Errorf("%w: contentId is required", domain.ErrValidation)
	}
	if input.Duration < 0 {
		return nil, fmt.Errorf("%w: duration must not be negative", domain.ErrValidation)
	}
	if err := validMood("moodBefore", input.MoodBefore); err != nil {
		return nil, err
	}
	if err := validMood("moodAfter", input.MoodAfter); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	session := &domain.TherapySession{
		UserID:           userID,
		TherapyType:      therapy,
		ContentID:        input.ContentID,
		Duration:         input.Duration,
		CompletionStatus: domain.StatusCompleted,
		MoodBefore:       input.MoodBefore,
		MoodAfter:        input.MoodAfter,
		Notes:            input.Notes,
		CreatedAt:        now,
	}

	created, err := s.sessions.Insert(ctx, session)
	if err != nil {
		return nil, fmt.Errorf("record session: %w", err)
	}

	if err := s.users.IncrementProgress(ctx, userID, 1, input.Duration, now); err != nil {
		return nil, fmt.Errorf("record session: update progress: %w", err)
	}

	s.log.Info().
		Str("user_id", userID).
		Str("therapy_type", string(therapy)).
		Int64("duration", input.Duration).
		Msg("session recorded")

	return created, nil
}

// History returns one page of the user's own sessions, newest first. The
// repository query is scoped by userID, so no other user's records can leak
// regardless of pagination parameters.
func (s *SessionService) History(ctx context.Context, userID string, page, limit int) (*ports.SessionHistory, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}

	sessions, total, err := s.sessions.ListByUser(ctx, userID, page, limit)
	if err != nil {
		return nil, fmt.Errorf("session history: %w", err)
	}

	return &ports.SessionHistory{
		Sessions:    sessions,
		Total:       total,
		TotalPages:  totalPages(total, limit),
		CurrentPage: page,
	}, nil
}

func validMood(field string, v int) error {
	if v == 0 {
		return nil // not provided
	}
	if v < 1 || v > 10 {
		return fmt.Errorf("%w: %s must be between 1 and 10", domain.ErrValidation, field)
	}
	return nil
}

func totalPages(total int64, limit int) int {
	if total == 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}
