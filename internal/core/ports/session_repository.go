package ports

import (
	"context"

	"github.com/codecrafters-goa/CalmNest-CodeCrafters/internal/core/domain"
)

// TherapyCount is one row of the popular-therapies aggregation.
type TherapyCount struct {
	TherapyType string `json:"therapyType" bson:"_id"`
	Count       int64  `json:"count" bson:"count"`
}

// SessionRepository defines persistence operations for therapy sessions.
// Sessions are append-only; there is no update or delete.
type SessionRepository interface {
	Insert(ctx context.Context, session *domain.TherapySession) (*domain.TherapySession, error)
	// ListByUser returns one page of the user's sessions ordered by creation
	// time descending, plus the total count for that user.
	ListByUser(ctx context.Context, userID string, page, limit int) ([]*domain.TherapySession, int64, error)
	Count(ctx context.Context) (int64, error)
	// CountByTherapyType groups all sessions by therapy type, most frequent first.
	CountByTherapyType(ctx context.Context) ([]TherapyCount, error)
}
