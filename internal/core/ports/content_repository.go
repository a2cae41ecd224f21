package ports

import (
	"context"

	"github.com/codecrafters-goa/CalmNest-CodeCrafters/internal/core/domain"
)

// ContentFilter carries the query parameters for content listings.
// Search is matched case-insensitively against the type's text fields.
type ContentFilter struct {
	Category   string
	Difficulty string // yoga only
	Search     string
	Page       int // 1-based
	Limit      int
}

// ContentRepository defines persistence for the three content catalogues.
// Listings only return active items, newest first.
type ContentRepository interface {
	InsertAudio(ctx context.Context, c *domain.AudioContent) (*domain.AudioContent, error)
	ListAudio(ctx context.Context, filter ContentFilter) ([]*domain.AudioContent, int64, error)
	CountAudio(ctx context.Context) (int64, error)

	InsertReading(ctx context.Context, c *domain.ReadingContent) (*domain.ReadingContent, error)
	ListReading(ctx context.Context, filter ContentFilter) ([]*domain.ReadingContent, int64, error)
	CountReading(ctx context.Context) (int64, error)

	InsertYoga(ctx context.Context, c *domain.YogaContent) (*domain.YogaContent, error)
	ListYoga(ctx context.Context, filter ContentFilter) ([]*domain.YogaContent, int64, error)
}
