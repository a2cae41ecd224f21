package ports

import (
	"context"

	"github.com/codecrafters-goa/CalmNest-CodeCrafters/internal/core/domain"
)

// RecordSessionInput carries the fields for recording a completed session.
type RecordSessionInput struct {
	TherapyType string
	ContentID   string
	Duration    int64 // minutes
	MoodBefore  int   // 0 = not provided
	MoodAfter   int   // 0 = not provided
	Notes       string
}

// SessionHistory is one page of a user's session records.
type SessionHistory struct {
	Sessions    []*domain.TherapySession
	Total       int64
	TotalPages  int
	CurrentPage int
}

// SessionService records completed therapy sessions and serves per-user history.
type SessionService interface {
	// Record persists the session and atomically bumps the owner's progress
	// counters; concurrent calls for the same user must all be counted.
	Record(ctx context.Context, userID string, input RecordSessionInput) (*domain.TherapySession, error)
	// History never returns another user's records.
	History(ctx context.Context, userID string, page, limit int) (*SessionHistory, error)
}
