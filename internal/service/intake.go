package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"moments_pipeline/internal/domain"
	"moments_pipeline/internal/metrics"
)

const (
	optOutReply = "You have been unsubscribed. Reply START to rejoin."
	optInReply  = "You're in! You'll receive community moments for all regions. Reply STOP to unsubscribe."
)

// IntakeService normalizes inbound channel events: command interception,
// deduplication, content extraction, media attachment, advisory scoring and
// the moderation hand-off. Downstream failures are best-effort; a message is
// never left unprocessed because a collaborator was down.
type IntakeService struct {
	messages    MessageStore
	advisories  AdvisoryStore
	subscribers SubscriberStore
	advisor     Advisor
	channel     ChannelSender
	moderation  *ModerationService
	logger      *slog.Logger
}

func NewIntakeService(
	messages MessageStore,
	advisories AdvisoryStore,
	subscribers SubscriberStore,
	advisor Advisor,
	channel ChannelSender,
	moderation *ModerationService,
	logger *slog.Logger,
) *IntakeService {
	return &IntakeService{
		messages:    messages,
		advisories:  advisories,
		subscribers: subscribers,
		advisor:     advisor,
		channel:     channel,
		moderation:  moderation,
		logger:      logger.With("component", "intake"),
	}
}

// HandleInbound runs one channel event through the intake state machine.
// Command events short-circuit and return a nil message.
func (s *IntakeService) HandleInbound(ctx context.Context, ev domain.ChannelEvent) (*domain.InboundMessage, error) {
	content := extractContent(ev)

	if handled, err := s.interceptCommand(ctx, ev.From, content); handled {
		return nil, err
	}

	msg := &domain.InboundMessage{
		ID:         uuid.New(),
		ChannelID:  ev.MessageID,
		From:       ev.From,
		Type:       ev.Type,
		Content:    content,
		Language:   detectLanguage(content),
		Raw:        ev.Raw,
		ReceivedAt: ev.Timestamp,
	}
	if ev.MediaID != "" {
		mediaID := ev.MediaID
		msg.MediaID = &mediaID
	}

	created, err := s.messages.Insert(ctx, msg)
	if err != nil {
		return nil, fmt.Errorf("insert message: %w", err)
	}
	if !created {
		// Duplicate delivery of the same channel id: the stored record is
		// authoritative, nothing is re-run.
		s.logger.Debug("duplicate delivery ignored", "channel_id", ev.MessageID)
		return msg, nil
	}
	metrics.MessagesReceived.WithLabelValues(string(ev.Type)).Inc()

	if msg.MediaID != nil {
		go s.attachMedia(context.WithoutCancel(ctx), msg.ID, *msg.MediaID)
	}

	advisory := s.advisor.Assess(ctx, domain.AssessRequest{
		Content:   content,
		Language:  msg.Language,
		Type:      ev.Type,
		From:      ev.From,
		Timestamp: ev.Timestamp,
	})
	if advisory.Degraded {
		metrics.AdvisorDegraded.Inc()
	}

	if err := s.advisories.InsertBatch(ctx, advisoryRecords(msg.ID, msg.Language, advisory)); err != nil {
		// The advisory stays usable in-process even when its persistence
		// fails; storage may also be backfilled by an insert trigger.
		s.logger.Warn("failed to store advisory rows",
			"message_id", msg.ID,
			"error", err,
		)
	}

	if _, _, err := s.moderation.Process(ctx, msg, advisory); err != nil {
		s.logger.Error("moderation hand-off failed",
			"message_id", msg.ID,
			"error", err,
		)
	}

	if err := s.messages.SetProcessed(ctx, msg.ID); err != nil {
		return msg, fmt.Errorf("mark processed: %w", err)
	}
	msg.Processed = true

	return msg, nil
}

// extractContent applies one rule per content type, with a bracketed
// placeholder for anything non-textual.
func extractContent(ev domain.ChannelEvent) string {
	switch ev.Type {
	case domain.MessageText:
		return ev.Text
	case domain.MessageImage:
		if ev.Caption != "" {
			return ev.Caption
		}
		return "[Image]"
	case domain.MessageVideo:
		if ev.Caption != "" {
			return ev.Caption
		}
		return "[Video]"
	case domain.MessageAudio:
		return "[Audio message]"
	case domain.MessageDocument:
		if ev.Filename != "" {
			return ev.Filename
		}
		return "[Document]"
	default:
		return fmt.Sprintf("[%s message]", ev.Type)
	}
}

func (s *IntakeService) interceptCommand(ctx context.Context, from, content string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(content)) {
	case "stop", "unsubscribe":
		metrics.CommandsIntercepted.WithLabelValues("opt_out").Inc()
		return true, s.optOut(ctx, from)
	case "start", "join":
		metrics.CommandsIntercepted.WithLabelValues("opt_in").Inc()
		return true, s.optIn(ctx, from)
	}
	return false, nil
}

func (s *IntakeService) optOut(ctx context.Context, from string) error {
	now := time.Now().UTC()
	sub := &domain.Subscriber{
		PhoneNumber:  from,
		OptedIn:      false,
		OptedOutAt:   &now,
		LastActivity: now,
	}
	if err := s.subscribers.Upsert(ctx, sub); err != nil {
		return fmt.Errorf("opt-out upsert: %w", err)
	}

	s.logger.Info("subscriber opted out", "from", from)
	s.reply(ctx, from, optOutReply)
	return nil
}

func (s *IntakeService) optIn(ctx context.Context, from string) error {
	now := time.Now().UTC()
	sub := &domain.Subscriber{
		PhoneNumber:  from,
		OptedIn:      true,
		Regions:      []string{domain.RegionNational},
		Categories:   domain.DefaultCategories(),
		OptedInAt:    &now,
		LastActivity: now,
	}
	if err := s.subscribers.Upsert(ctx, sub); err != nil {
		return fmt.Errorf("opt-in upsert: %w", err)
	}

	s.logger.Info("subscriber opted in", "from", from)
	s.reply(ctx, from, optInReply)
	return nil
}

// reply is best-effort; a failed confirmation never fails the command.
func (s *IntakeService) reply(ctx context.Context, to, body string) {
	if err := s.channel.SendText(ctx, to, body); err != nil {
		s.logger.Warn("failed to send command reply", "to", to, "error", err)
	}
}

func (s *IntakeService) attachMedia(ctx context.Context, messageID uuid.UUID, mediaID string) {
	url, err := s.channel.ResolveMediaURL(ctx, mediaID)
	if err != nil {
		s.logger.Warn("failed to resolve media",
			"message_id", messageID,
			"media_id", mediaID,
			"error", err,
		)
		return
	}
	if err := s.messages.AttachMedia(ctx, messageID, url); err != nil {
		s.logger.Warn("failed to attach media",
			"message_id", messageID,
			"error", err,
		)
	}
}

// advisoryRecords expands a composite advisory into its per-dimension rows.
func advisoryRecords(messageID uuid.UUID, language string, advisory domain.Advisory) []domain.AdvisoryRecord {
	langDetails, _ := json.Marshal(map[string]string{"language": language})
	urgencyDetails, _ := json.Marshal(map[string]string{"level": string(advisory.UrgencyLevel)})
	harmDetails, _ := json.Marshal(advisory.Harm)
	spamDetails, _ := json.Marshal(advisory.Spam)

	return []domain.AdvisoryRecord{
		{
			ID:         uuid.New(),
			MessageID:  messageID,
			Kind:       domain.AdvisoryLanguage,
			Confidence: advisory.LanguageConfidence,
			Details:    langDetails,
		},
		{
			ID:         uuid.New(),
			MessageID:  messageID,
			Kind:       domain.AdvisoryUrgency,
			Confidence: advisory.UrgencyConfidence(),
			Details:    urgencyDetails,
		},
		{
			ID:                  uuid.New(),
			MessageID:           messageID,
			Kind:                domain.AdvisoryHarm,
			Confidence:          advisory.Harm.Confidence,
			Details:             harmDetails,
			EscalationSuggested: advisory.EscalationSuggested,
		},
		{
			ID:         uuid.New(),
			MessageID:  messageID,
			Kind:       domain.AdvisorySpam,
			Confidence: advisory.Spam.Confidence,
			Details:    spamDetails,
		},
	}
}
