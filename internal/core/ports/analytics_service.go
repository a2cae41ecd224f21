package ports

import "context"

// AnalyticsOverview is the admin dashboard aggregate.
type AnalyticsOverview struct {
	TotalUsers          int64          `json:"totalUsers"`
	TotalSessions       int64          `json:"totalSessions"`
	TotalAudioContent   int64          `json:"totalAudioContent"`
	TotalReadingContent int64          `json:"totalReadingContent"`
	ActiveUsers         int64          `json:"activeUsers"`
	PopularTherapies    []TherapyCount `json:"popularTherapies"`
}

// AnalyticsService produces platform-wide engagement counts for admins.
type AnalyticsService interface {
	Overview(ctx context.Context) (*AnalyticsOverview, error)
}
