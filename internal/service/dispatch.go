package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"moments_pipeline/internal/config"
	"moments_pipeline/internal/domain"
	"moments_pipeline/internal/metrics"
)

// DispatchService sends one moment to its resolved recipient set under the
// channel API rate limit and records the outcome.
type DispatchService struct {
	moments    MomentStore
	sponsors   SponsorStore
	broadcasts BroadcastStore
	targeting  *TargetingService
	channel    ChannelSender
	events     EventPublisher
	txManager  TransactionManager
	limiter    *rate.Limiter
	cfg        config.BroadcastConfig
	logger     *slog.Logger
}

func NewDispatchService(
	moments MomentStore,
	sponsors SponsorStore,
	broadcasts BroadcastStore,
	targeting *TargetingService,
	channel ChannelSender,
	events EventPublisher,
	txManager TransactionManager,
	cfg config.BroadcastConfig,
	logger *slog.Logger,
) *DispatchService {
	return &DispatchService{
		moments:    moments,
		sponsors:   sponsors,
		broadcasts: broadcasts,
		targeting:  targeting,
		channel:    channel,
		events:     events,
		txManager:  txManager,
		limiter:    rate.NewLimiter(rate.Every(cfg.SendInterval), 1),
		cfg:        cfg,
		logger:     logger.With("component", "dispatch"),
	}
}

// Dispatch runs one broadcast. A fatal error (moment unknown, recipients
// unresolvable, record not creatable, run interrupted) marks the moment
// failed; any record already created stays in_progress for inspection.
func (s *DispatchService) Dispatch(ctx context.Context, momentID uuid.UUID) (*domain.BroadcastRecord, error) {
	record, err := s.run(ctx, momentID)
	if err != nil {
		s.logger.Error("dispatch failed",
			"moment_id", momentID,
			"error", err,
		)
		s.markFailed(ctx, momentID, err)
		return record, err
	}
	return record, nil
}

func (s *DispatchService) run(ctx context.Context, momentID uuid.UUID) (*domain.BroadcastRecord, error) {
	moment, err := s.moments.GetByID(ctx, momentID)
	if err != nil {
		return nil, fmt.Errorf("load moment: %w", err)
	}
	if moment.Status != domain.MomentDraft && moment.Status != domain.MomentScheduled {
		return nil, fmt.Errorf("status %s: %w", moment.Status, domain.ErrNotDispatchable)
	}

	sponsorName := s.sponsorName(ctx, moment)

	recipients, err := s.targeting.Resolve(ctx, moment)
	if err != nil {
		return nil, fmt.Errorf("resolve recipients: %w", err)
	}

	text := FormatBroadcastMessage(moment, sponsorName)

	// The record exists before the first send so an interrupted run still
	// leaves an auditable in_progress row.
	record := &domain.BroadcastRecord{
		ID:             uuid.New(),
		MomentID:       moment.ID,
		RecipientCount: len(recipients),
		Status:         domain.BroadcastInProgress,
		StartedAt:      time.Now().UTC(),
	}
	if err := s.broadcasts.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("create broadcast record: %w", err)
	}

	s.logger.Info("broadcast started",
		"moment_id", moment.ID,
		"broadcast_id", record.ID,
		"recipients", len(recipients),
	)

	var success, failure int
	for _, recipient := range recipients {
		if err := s.limiter.Wait(ctx); err != nil {
			return record, fmt.Errorf("rate limiter: %w", err)
		}

		if err := s.sendOne(ctx, recipient.PhoneNumber, text, moment.MediaURLs); err != nil {
			failure++
			metrics.BroadcastSends.WithLabelValues("failure").Inc()
			s.logger.Warn("send failed",
				"broadcast_id", record.ID,
				"to", recipient.PhoneNumber,
				"error", err,
			)
			continue
		}
		success++
		metrics.BroadcastSends.WithLabelValues("success").Inc()
	}

	completedAt := time.Now().UTC()
	err = s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.broadcasts.Complete(txCtx, record.ID, success, failure, completedAt); err != nil {
			return fmt.Errorf("complete broadcast: %w", err)
		}
		if err := s.moments.UpdateStatus(txCtx, moment.ID, domain.MomentBroadcasted, completedAt); err != nil {
			return fmt.Errorf("update moment status: %w", err)
		}
		return nil
	})
	if err != nil {
		return record, err
	}

	record.SuccessCount = success
	record.FailureCount = failure
	record.Status = domain.BroadcastCompleted
	record.CompletedAt = &completedAt
	moment.Status = domain.MomentBroadcasted
	moment.BroadcastedAt = &completedAt
	metrics.BroadcastsCompleted.Inc()

	if err := s.events.BroadcastCompleted(ctx, record, moment); err != nil {
		s.logger.Warn("failed to publish broadcast event",
			"broadcast_id", record.ID,
			"error", err,
		)
	}

	s.logger.Info("broadcast completed",
		"moment_id", moment.ID,
		"broadcast_id", record.ID,
		"success", success,
		"failure", failure,
		"duration", completedAt.Sub(record.StartedAt),
	)

	return record, nil
}

// sendOne delivers the text plus any media attachments to a single
// recipient. A media failure never fails the text send that preceded it.
func (s *DispatchService) sendOne(ctx context.Context, to, text string, mediaURLs []string) error {
	sendCtx, cancel := context.WithTimeout(ctx, s.cfg.SendTimeout)
	defer cancel()

	if err := s.channel.SendText(sendCtx, to, text); err != nil {
		return err
	}

	for _, mediaURL := range mediaURLs {
		if err := s.channel.SendMedia(sendCtx, to, mediaURL); err != nil {
			s.logger.Warn("media send failed",
				"to", to,
				"media_url", mediaURL,
				"error", err,
			)
		}
	}

	return nil
}

func (s *DispatchService) sponsorName(ctx context.Context, moment *domain.Moment) string {
	if !moment.IsSponsored || moment.SponsorID == nil {
		return ""
	}
	sponsor, err := s.sponsors.GetByID(ctx, *moment.SponsorID)
	if err != nil {
		s.logger.Warn("failed to load sponsor, sending without attribution",
			"moment_id", moment.ID,
			"sponsor_id", *moment.SponsorID,
			"error", err,
		)
		return ""
	}
	return sponsor.DisplayName
}

func (s *DispatchService) markFailed(ctx context.Context, momentID uuid.UUID, cause error) {
	// Unknown or non-dispatchable moments keep their current status.
	if errors.Is(cause, domain.ErrNotFound) || errors.Is(cause, domain.ErrNotDispatchable) {
		return
	}
	if err := s.moments.UpdateStatus(ctx, momentID, domain.MomentFailed, time.Now().UTC()); err != nil {
		s.logger.Error("failed to mark moment failed",
			"moment_id", momentID,
			"error", err,
		)
	}
}

// DispatchScheduled processes one scheduler cycle: due scheduled moments, a
// bounded batch at a time. One failed dispatch never blocks the rest.
func (s *DispatchService) DispatchScheduled(ctx context.Context) (*domain.ScheduleStats, error) {
	start := time.Now()

	due, err := s.moments.ListScheduled(ctx, time.Now().UTC(), s.cfg.SchedulerBatch)
	if err != nil {
		return nil, fmt.Errorf("list scheduled moments: %w", err)
	}

	stats := &domain.ScheduleStats{Selected: len(due)}
	for i := range due {
		if _, err := s.Dispatch(ctx, due[i].ID); err != nil {
			stats.Failed++
			continue
		}
		stats.Dispatched++
	}
	stats.Duration = time.Since(start)

	if stats.Selected > 0 {
		s.logger.Info("scheduled cycle completed",
			"selected", stats.Selected,
			"dispatched", stats.Dispatched,
			"failed", stats.Failed,
			"duration", stats.Duration,
		)
	}

	return stats, nil
}
