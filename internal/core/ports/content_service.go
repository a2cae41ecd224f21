package ports

import (
	"context"

	"github.com/codecrafters-goa/CalmNest-CodeCrafters/internal/core/domain"
)

// ContentPage is one page of a catalogue listing.
type ContentPage[T any] struct {
	Content     []T
	Total       int64
	TotalPages  int
	CurrentPage int
}

// ContentService serves the audio, reading, and yoga catalogues.
type ContentService interface {
	ListAudio(ctx context.Context, filter ContentFilter) (*ContentPage[*domain.AudioContent], error)
	CreateAudio(ctx context.Context, uploadedBy string, c *domain.AudioContent) (*domain.AudioContent, error)

	ListReading(ctx context.Context, filter ContentFilter) (*ContentPage[*domain.ReadingContent], error)
	CreateReading(ctx context.Context, uploadedBy string, c *domain.ReadingContent) (*domain.ReadingContent, error)

	ListYoga(ctx context.Context, filter ContentFilter) (*ContentPage[*domain.YogaContent], error)
	CreateYoga(ctx context.Context, uploadedBy string, c *domain.YogaContent) (*domain.YogaContent, error)
}
