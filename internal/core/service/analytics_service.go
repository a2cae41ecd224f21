package service

import (
	"context"
	"fmt"
	"time"

	"github.com/codecrafters-goa/CalmNest-CodeCrafters/internal/core/ports"
)

// activeWindow is the lookback used for the "active users" count.
const activeWindow = 30 * 24 * time.Hour

// AnalyticsService aggregates platform-wide engagement counts for the admin
// dashboard. Reads only; it never mutates any store.
type AnalyticsService struct {
	users    ports.UserRepository
	sessions ports.SessionRepository
	content  ports.ContentRepository
}

func NewAnalyticsService(users ports.UserRepository, sessions ports.SessionRepository, content ports.ContentRepository) *AnalyticsService {
	return &AnalyticsService{users: users, sessions: sessions, content: content}
}

func (s *AnalyticsService) Overview(ctx context.Context) (*ports.AnalyticsOverview, error) {
	totalUsers, err := s.users.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("analytics: count users: %w", err)
	}
	totalSessions, err := s.sessions.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("analytics: count sessions: %w", err)
	}
	totalAudio, err := s.content.CountAudio(ctx)
	if err != nil {
		return nil, fmt.Errorf("analytics: count audio: %w", err)
	}
	totalReading, err := s.content.CountReading(ctx)
	if err != nil {
		return nil, fmt.Errorf("analytics: count reading: %w", err)
	}
	activeUsers, err := s.users.CountActiveSince(ctx, time.Now().UTC().Add(-activeWindow))
	if err != nil {
		return nil, fmt.Errorf("analytics: count active users: %w", err)
	}
	popular, err := s.sessions.CountByTherapyType(ctx)
	if err != nil {
		return nil, fmt.Errorf("analytics: popular therapies: %w", err)
	}

	return &ports.AnalyticsOverview{
		TotalUsers:          totalUsers,
		TotalSessions:       totalSessions,
		TotalAudioContent:   totalAudio,
		TotalReadingContent: totalReading,
		ActiveUsers:         activeUsers,
		PopularTherapies:    popular,
	}, nil
}
