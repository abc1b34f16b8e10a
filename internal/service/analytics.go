package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"moments_pipeline/internal/domain"
)

// AnalyticsService rolls broadcast history up into time-windowed statistics.
// It is read-only and tolerates broadcasts whose moment has been deleted.
type AnalyticsService struct {
	broadcasts  BroadcastStore
	moments     MomentStore
	subscribers SubscriberStore
	logger      *slog.Logger
}

func NewAnalyticsService(
	broadcasts BroadcastStore,
	moments MomentStore,
	subscribers SubscriberStore,
	logger *slog.Logger,
) *AnalyticsService {
	return &AnalyticsService{
		broadcasts:  broadcasts,
		moments:     moments,
		subscribers: subscribers,
		logger:      logger.With("component", "analytics"),
	}
}

func (s *AnalyticsService) Summarize(ctx context.Context, windowDays int) (*domain.Analytics, error) {
	since := time.Now().UTC().AddDate(0, 0, -windowDays)

	records, err := s.broadcasts.ListCompletedSince(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("list broadcasts: %w", err)
	}

	momentIDs := make([]uuid.UUID, 0, len(records))
	seen := make(map[uuid.UUID]bool, len(records))
	for _, rec := range records {
		if !seen[rec.MomentID] {
			seen[rec.MomentID] = true
			momentIDs = append(momentIDs, rec.MomentID)
		}
	}

	moments, err := s.moments.GetByIDs(ctx, momentIDs)
	if err != nil {
		return nil, fmt.Errorf("load moments: %w", err)
	}

	analytics := &domain.Analytics{
		ByRegion:   make(map[string]*domain.GroupStats),
		ByCategory: make(map[string]*domain.GroupStats),
	}

	for _, rec := range records {
		analytics.TotalBroadcasts++
		analytics.TotalRecipients += rec.RecipientCount
		analytics.TotalSuccess += rec.SuccessCount
		analytics.TotalFailures += rec.FailureCount

		moment, ok := moments[rec.MomentID]
		if !ok {
			// Moment deleted on the admin side; keep the totals, skip the
			// grouped breakdowns.
			s.logger.Debug("broadcast without moment, skipping grouping",
				"broadcast_id", rec.ID,
				"moment_id", rec.MomentID,
			)
			continue
		}

		group(analytics.ByRegion, moment.Region, rec)
		group(analytics.ByCategory, moment.Category, rec)

		if moment.IsSponsored {
			analytics.Sponsored++
		} else {
			analytics.Organic++
		}
	}

	if analytics.TotalRecipients > 0 {
		analytics.SuccessRate = float64(analytics.TotalSuccess) / float64(analytics.TotalRecipients) * 100
	}

	return analytics, nil
}

func group(buckets map[string]*domain.GroupStats, key string, rec domain.BroadcastRecord) {
	bucket, ok := buckets[key]
	if !ok {
		bucket = &domain.GroupStats{}
		buckets[key] = bucket
	}
	bucket.Count++
	bucket.Recipients += rec.RecipientCount
	bucket.Success += rec.SuccessCount
}

// PublicStats is the small public counters payload.
type PublicStats struct {
	TotalMoments      int `json:"totalMoments"`
	ActiveSubscribers int `json:"activeSubscribers"`
	TotalBroadcasts   int `json:"totalBroadcasts"`
}

func (s *AnalyticsService) Stats(ctx context.Context) (*PublicStats, error) {
	moments, err := s.moments.CountByStatus(ctx, domain.MomentBroadcasted)
	if err != nil {
		return nil, fmt.Errorf("count moments: %w", err)
	}
	subscribers, err := s.subscribers.CountOptedIn(ctx)
	if err != nil {
		return nil, fmt.Errorf("count subscribers: %w", err)
	}
	broadcasts, err := s.broadcasts.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count broadcasts: %w", err)
	}

	return &PublicStats{
		TotalMoments:      moments,
		ActiveSubscribers: subscribers,
		TotalBroadcasts:   broadcasts,
	}, nil
}
