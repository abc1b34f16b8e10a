package scheduler

import (
	"context"
	"log/slog"
	"time"

	"moments_pipeline/internal/domain"
)

// Dispatcher defines the interface for scheduled broadcast sweeps.
type Dispatcher interface {
	DispatchScheduled(ctx context.Context) (*domain.ScheduleStats, error)
}

type Scheduler struct {
	dispatcher Dispatcher
	interval   time.Duration
	logger     *slog.Logger
}

func NewScheduler(dispatcher Dispatcher, interval time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		dispatcher: dispatcher,
		interval:   interval,
		logger:     logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info("scheduler started", "interval", s.interval)

	s.runSweep(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return ctx.Err()
		case <-ticker.C:
			s.runSweep(ctx)
		}
	}
}

func (s *Scheduler) runSweep(ctx context.Context) {
	sweepCtx, cancel := context.WithTimeout(ctx, 5*time.Minute)
	defer cancel()

	stats, err := s.dispatcher.DispatchScheduled(sweepCtx)
	if err != nil {
		s.logger.Error("scheduled dispatch failed", "error", err)
		return
	}
	if stats.Selected > 0 {
		s.logger.Info("scheduled dispatch completed",
			"selected", stats.Selected,
			"dispatched", stats.Dispatched,
			"failed", stats.Failed,
			"duration", stats.Duration,
		)
	}
}
