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
	defaultContentLimit = 20
	maxContentLimit     = 100
)

// ContentService serves the audio, reading, and yoga catalogues.
type ContentService struct {
	content ports.ContentRepository
	log     zerolog.Logger
}

func NewContentService(content ports.ContentRepository, log zerolog.Logger) *ContentService {
	return &ContentService{content: content, log: log}
}

func (s *ContentService) ListAudio(ctx context.Context, filter ports.ContentFilter) (*ports.ContentPage[*domain.AudioContent], error) {
	filter = clampFilter(filter)
	items, total, err := s.content.ListAudio(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list audio: %w", err)
	}
	return page(items, total, filter), nil
}

func (s *ContentService) CreateAudio(ctx context.Context, uploadedBy string, c *domain.AudioContent) (*domain.AudioContent, error) {
	if c.Title == "" || c.Description == "" || c.Category == "" || c.AudioURL == "" {
		return nil, fmt.Errorf("%w: title, description, category and audioUrl are required", domain.ErrValidation)
	}
	c.UploadedBy = uploadedBy
	c.IsActive = true
	c.CreatedAt = time.Now().UTC()
	if c.Tags == nil {
		c.Tags = []string{}
	}

	created, err := s.content.InsertAudio(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("create audio: %w", err)
	}
	s.log.Info().Str("title", created.Title).Str("category", created.Category).Msg("audio content created")
	return created, nil
}

func (s *ContentService) ListReading(ctx context.Context, filter ports.ContentFilter) (*ports.ContentPage[*domain.ReadingContent], error) {
	filter = clampFilter(filter)
	items, total, err := s.content.ListReading(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list reading: %w", err)
	}
	return page(items, total, filter), nil
}

func (s *ContentService) CreateReading(ctx context.Context, uploadedBy string, c *domain.ReadingContent) (*domain.ReadingContent, error) {
	if c.Title == "" || c.Content == "" || c.Category == "" {
		return nil, fmt.Errorf("%w: title, content and category are required", domain.ErrValidation)
	}
	c.UploadedBy = uploadedBy
	c.IsActive = true
	c.CreatedAt = time.Now().UTC()
	if c.Tags == nil {
		c.Tags = []string{}
	}

	created, err := s.content.InsertReading(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("create reading: %w", err)
	}
	s.log.Info().Str("title", created.Title).Str("category", created.Category).Msg("reading content created")
	return created, nil
}

func (s *ContentService) ListYoga(ctx context.Context, filter ports.ContentFilter) (*ports.ContentPage[*domain.YogaContent], error) {
	filter = clampFilter(filter)
	items, total, err := s.content.ListYoga(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list yoga: %w", err)
	}
	return page(items, total, filter), nil
}

func (s *ContentService) CreateYoga(ctx context.Context, uploadedBy string, c *domain.YogaContent) (*domain.YogaContent, error) {
	if c.Title == "" || c.Description == "" || c.Category == "" {
		return nil, fmt.Errorf("%w: title, description and category are required", domain.ErrValidation)
	}
	if c.Difficulty == "" {
		c.Difficulty = domain.DifficultyBeginner
	}
	c.UploadedBy = uploadedBy
	c.IsActive = true
	c.CreatedAt = time.Now().UTC()
	if c.Instructions == nil {
		c.Instructions = []string{}
	}
	if c.Benefits == nil {
		c.Benefits = []string{}
	}

	created, err := s.content.InsertYoga(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("create yoga: %w", err)
	}
	s.log.Info().Str("title", created.Title).Str("category", created.Category).Msg("yoga content created")
	return created, nil
}

func clampFilter(f ports.ContentFilter) ports.ContentFilter {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 {
		f.Limit = defaultContentLimit
	}
	if f.Limit > maxContentLimit {
		f.Limit = maxContentLimit
	}
	return f
}

func page[T any](items []T, total int64, filter ports.ContentFilter) *ports.ContentPage[T] {
	return &ports.ContentPage[T]{
		Content:     items,
		Total:       total,
		TotalPages:  totalPages(total, filter.Limit),
		CurrentPage: filter.Page,
	}
}
