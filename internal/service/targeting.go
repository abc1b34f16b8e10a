package service

import (
	"context"
	"fmt"
	"slices"

	"moments_pipeline/internal/domain"
)

// TargetingService computes the subscriber subset eligible for a moment.
// Resolution reads subscriber state at call time so an opt-out takes effect
// on the very next broadcast.
type TargetingService struct {
	subscribers SubscriberStore
}

func NewTargetingService(subscribers SubscriberStore) *TargetingService {
	return &TargetingService{subscribers: subscribers}
}

func (s *TargetingService) Resolve(ctx context.Context, moment *domain.Moment) ([]domain.Subscriber, error) {
	optedIn, err := s.subscribers.ListOptedIn(ctx)
	if err != nil {
		return nil, fmt.Errorf("list subscribers: %w", err)
	}

	targets := make([]domain.Subscriber, 0, len(optedIn))
	for _, sub := range optedIn {
		if !matchesRegion(moment.Region, sub) {
			continue
		}
		if !matchesCategory(moment.Category, sub) {
			continue
		}
		targets = append(targets, sub)
	}
	return targets, nil
}

// National moments go to all regions.
func matchesRegion(region string, sub domain.Subscriber) bool {
	if region == "" || region == domain.RegionNational {
		return true
	}
	return slices.Contains(sub.Regions, region)
}

func matchesCategory(category string, sub domain.Subscriber) bool {
	if category == "" {
		return true
	}
	return slices.Contains(sub.Categories, category)
}
