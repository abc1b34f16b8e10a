package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"moments_pipeline/internal/config"
	"moments_pipeline/internal/domain"
	"moments_pipeline/internal/metrics"
)

// Decision is the auto-moderation gate outcome for one message.
type Decision string

const (
	DecisionAutoPublish  Decision = "auto_publish"
	DecisionManualReview Decision = "manual_review"
	DecisionDiscard      Decision = "discard"
)

// ModerationService decides whether an assessed message becomes a draft
// moment automatically, goes to the manual-review queue, or is dropped.
type ModerationService struct {
	moments MomentStore
	events  EventPublisher
	cfg     config.ModerationConfig
	logger  *slog.Logger
}

func NewModerationService(
	moments MomentStore,
	events EventPublisher,
	cfg config.ModerationConfig,
	logger *slog.Logger,
) *ModerationService {
	return &ModerationService{
		moments: moments,
		events:  events,
		cfg:     cfg,
		logger:  logger.With("component", "moderation"),
	}
}

// Decide is the pure gate. Escalation always wins: an escalated message is
// never auto-published, whatever its confidence scores say.
func (s *ModerationService) Decide(advisory domain.Advisory) Decision {
	if advisory.EscalationSuggested {
		return DecisionManualReview
	}
	if advisory.Spam.Detected && advisory.Spam.Confidence >= s.cfg.SpamThreshold {
		return DecisionDiscard
	}
	if safeConfidence(advisory) < s.cfg.ApproveThreshold {
		return DecisionManualReview
	}
	return DecisionAutoPublish
}

// safeConfidence is the confidence that the content is safe to publish
// without human review.
func safeConfidence(advisory domain.Advisory) float64 {
	return 1 - advisory.Harm.Confidence
}

// Process runs the gate and, on the auto-publish path, persists a draft
// moment. Manual-review messages are left for the external review surface;
// discarded ones only get a log line.
func (s *ModerationService) Process(ctx context.Context, msg *domain.InboundMessage, advisory domain.Advisory) (Decision, *domain.Moment, error) {
	decision := s.Decide(advisory)
	metrics.ModerationDecisions.WithLabelValues(string(decision)).Inc()

	switch decision {
	case DecisionAutoPublish:
		moment := s.buildMoment(msg)
		if err := s.moments.Insert(ctx, moment); err != nil {
			return decision, nil, fmt.Errorf("insert moment: %w", err)
		}

		if err := s.events.MomentCreated(ctx, moment); err != nil {
			s.logger.Warn("failed to publish moment event",
				"moment_id", moment.ID,
				"error", err,
			)
		}

		s.logger.Info("auto-published draft moment",
			"message_id", msg.ID,
			"moment_id", moment.ID,
			"title", moment.Title,
		)
		return decision, moment, nil

	case DecisionDiscard:
		s.logger.Info("discarded message",
			"message_id", msg.ID,
			"spam_confidence", advisory.Spam.Confidence,
		)
		return decision, nil, nil

	default:
		s.logger.Info("queued message for manual review",
			"message_id", msg.ID,
			"escalation", advisory.EscalationSuggested,
			"safe_confidence", safeConfidence(advisory),
		)
		return decision, nil, nil
	}
}

func (s *ModerationService) buildMoment(msg *domain.InboundMessage) *domain.Moment {
	moment := &domain.Moment{
		ID:       uuid.New(),
		Title:    DeriveTitle(msg.Content),
		Content:  msg.Content,
		Region:   s.cfg.DefaultRegion,
		Category: s.cfg.DefaultCategory,
		Language: msg.Language,
		Source:   domain.SourceCommunity,
		Status:   domain.MomentDraft,
	}
	if msg.MediaURL != nil && *msg.MediaURL != "" {
		moment.MediaURLs = []string{*msg.MediaURL}
	}
	return moment
}

const (
	titleVerbatimLimit   = 50
	titleTerminatorLimit = 80
)

// DeriveTitle keeps short content verbatim, otherwise cuts at the first
// sentence terminator when one lands early enough, and falls back to a
// 50-rune prefix with an ellipsis marker.
func DeriveTitle(content string) string {
	runes := []rune(content)
	if len(runes) <= titleVerbatimLimit {
		return content
	}
	if idx := firstTerminator(runes); idx >= 0 && idx < titleTerminatorLimit {
		return string(runes[:idx])
	}
	return string(runes[:titleVerbatimLimit]) + "..."
}

func firstTerminator(runes []rune) int {
	for i, r := range runes {
		if strings.ContainsRune(".!?", r) {
			return i
		}
	}
	return -1
}
