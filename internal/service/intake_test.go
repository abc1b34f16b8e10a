package service

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"moments_pipeline/internal/config"
	"moments_pipeline/internal/domain"
	"moments_pipeline/internal/service/mocks"
)

type IntakeServiceTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	messages    *mocks.MockMessageStore
	advisories  *mocks.MockAdvisoryStore
	subscribers *mocks.MockSubscriberStore
	advisor     *mocks.MockAdvisor
	channel     *mocks.MockChannelSender
	moments     *mocks.MockMomentStore
	events      *mocks.MockEventPublisher

	service *IntakeService
	logger  *slog.Logger
}

func (s *IntakeServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.messages = mocks.NewMockMessageStore(s.ctrl)
	s.advisories = mocks.NewMockAdvisoryStore(s.ctrl)
	s.subscribers = mocks.NewMockSubscriberStore(s.ctrl)
	s.advisor = mocks.NewMockAdvisor(s.ctrl)
	s.channel = mocks.NewMockChannelSender(s.ctrl)
	s.moments = mocks.NewMockMomentStore(s.ctrl)
	s.events = mocks.NewMockEventPublisher(s.ctrl)

	s.logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	moderation := NewModerationService(s.moments, s.events, config.ModerationConfig{
		ApproveThreshold: 0.5,
		SpamThreshold:    0.8,
		DefaultRegion:    domain.RegionNational,
		DefaultCategory:  "Community",
	}, s.logger)

	s.service = NewIntakeService(
		s.messages,
		s.advisories,
		s.subscribers,
		s.advisor,
		s.channel,
		moderation,
		s.logger,
	)
}

func (s *IntakeServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestIntakeServiceTestSuite(t *testing.T) {
	suite.Run(t, new(IntakeServiceTestSuite))
}

func textEvent(id, from, text string) domain.ChannelEvent {
	return domain.ChannelEvent{
		MessageID: id,
		From:      from,
		Type:      domain.MessageText,
		Text:      text,
		Timestamp: time.Now().UTC(),
	}
}

func lowRiskAdvisory() domain.Advisory {
	return domain.Advisory{
		LanguageConfidence: 0.9,
		UrgencyLevel:       domain.UrgencyLow,
		Harm:               domain.HarmSignals{Detected: false, Confidence: 0.05, Type: "none"},
	}
}

func (s *IntakeServiceTestSuite) TestHandleInbound_TextMessage() {
	ctx := context.Background()
	ev := textEvent("wamid.1", "+27820000001", "Community garden opening this Saturday")

	var stored *domain.InboundMessage
	s.messages.EXPECT().Insert(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, msg *domain.InboundMessage) (bool, error) {
			stored = msg
			return true, nil
		},
	)
	s.advisor.EXPECT().Assess(ctx, gomock.Any()).Return(lowRiskAdvisory())
	s.advisories.EXPECT().InsertBatch(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, records []domain.AdvisoryRecord) error {
			s.Len(records, 4)
			return nil
		},
	)
	s.moments.EXPECT().Insert(ctx, gomock.Any()).Return(nil)
	s.events.EXPECT().MomentCreated(ctx, gomock.Any()).Return(nil)
	s.messages.EXPECT().SetProcessed(ctx, gomock.Any()).Return(nil)

	msg, err := s.service.HandleInbound(ctx, ev)

	s.NoError(err)
	s.Require().NotNil(msg)
	s.Equal(stored, msg)
	s.Equal("wamid.1", msg.ChannelID)
	s.Equal(ev.Text, msg.Content)
	s.Equal("eng", msg.Language)
	s.True(msg.Processed)
}

func (s *IntakeServiceTestSuite) TestHandleInbound_DuplicateDelivery() {
	ctx := context.Background()
	ev := textEvent("wamid.dup", "+27820000001", "same message again")

	// Insert reports the row already existed; nothing downstream runs.
	s.messages.EXPECT().Insert(ctx, gomock.Any()).Return(false, nil)

	msg, err := s.service.HandleInbound(ctx, ev)

	s.NoError(err)
	s.NotNil(msg)
	s.False(msg.Processed)
}

func (s *IntakeServiceTestSuite) TestHandleInbound_OptOutCommand() {
	ctx := context.Background()
	ev := textEvent("wamid.2", "+27820000002", "  STOP  ")

	s.subscribers.EXPECT().Upsert(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, sub *domain.Subscriber) error {
			s.Equal("+27820000002", sub.PhoneNumber)
			s.False(sub.OptedIn)
			s.NotNil(sub.OptedOutAt)
			return nil
		},
	)
	s.channel.EXPECT().SendText(ctx, "+27820000002", optOutReply).Return(nil)

	msg, err := s.service.HandleInbound(ctx, ev)

	s.NoError(err)
	s.Nil(msg)
}

func (s *IntakeServiceTestSuite) TestHandleInbound_OptInCommand() {
	ctx := context.Background()
	ev := textEvent("wamid.3", "+27820000003", "join")

	s.subscribers.EXPECT().Upsert(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, sub *domain.Subscriber) error {
			s.True(sub.OptedIn)
			s.Equal([]string{domain.RegionNational}, sub.Regions)
			s.Equal(domain.DefaultCategories(), sub.Categories)
			s.NotNil(sub.OptedInAt)
			return nil
		},
	)
	s.channel.EXPECT().SendText(ctx, "+27820000003", optInReply).Return(nil)

	msg, err := s.service.HandleInbound(ctx, ev)

	s.NoError(err)
	s.Nil(msg)
}

func (s *IntakeServiceTestSuite) TestHandleInbound_CommandReplyFailureIgnored() {
	ctx := context.Background()
	ev := textEvent("wamid.4", "+27820000004", "unsubscribe")

	s.subscribers.EXPECT().Upsert(ctx, gomock.Any()).Return(nil)
	s.channel.EXPECT().SendText(ctx, gomock.Any(), gomock.Any()).Return(errors.New("channel down"))

	_, err := s.service.HandleInbound(ctx, ev)

	s.NoError(err)
}

func (s *IntakeServiceTestSuite) TestHandleInbound_AdvisoryStoreFailureStillProcesses() {
	ctx := context.Background()
	ev := textEvent("wamid.5", "+27820000005", "hello there")

	s.messages.EXPECT().Insert(ctx, gomock.Any()).Return(true, nil)
	s.advisor.EXPECT().Assess(ctx, gomock.Any()).Return(lowRiskAdvisory())
	s.advisories.EXPECT().InsertBatch(ctx, gomock.Any()).Return(errors.New("db down"))
	s.moments.EXPECT().Insert(ctx, gomock.Any()).Return(nil)
	s.events.EXPECT().MomentCreated(ctx, gomock.Any()).Return(nil)
	s.messages.EXPECT().SetProcessed(ctx, gomock.Any()).Return(nil)

	msg, err := s.service.HandleInbound(ctx, ev)

	s.NoError(err)
	s.True(msg.Processed)
}

func (s *IntakeServiceTestSuite) TestHandleInbound_SpamDiscardedWithoutMoment() {
	ctx := context.Background()
	ev := textEvent("wamid.6", "+27820000006", "WIN FREE AIRTIME NOW")

	s.messages.EXPECT().Insert(ctx, gomock.Any()).Return(true, nil)
	s.advisor.EXPECT().Assess(ctx, gomock.Any()).Return(domain.Advisory{
		Spam: domain.SpamIndicators{Detected: true, Confidence: 0.97, Patterns: []string{"prize"}},
	})
	s.advisories.EXPECT().InsertBatch(ctx, gomock.Any()).Return(nil)
	s.messages.EXPECT().SetProcessed(ctx, gomock.Any()).Return(nil)

	msg, err := s.service.HandleInbound(ctx, ev)

	s.NoError(err)
	s.True(msg.Processed)
}

func (s *IntakeServiceTestSuite) TestHandleInbound_MediaAttachment() {
	ctx := context.Background()
	ev := domain.ChannelEvent{
		MessageID: "wamid.7",
		From:      "+27820000007",
		Type:      domain.MessageImage,
		Caption:   "our new mural",
		MediaID:   "media-123",
		Timestamp: time.Now().UTC(),
	}

	s.messages.EXPECT().Insert(ctx, gomock.Any()).Return(true, nil)
	// Attachment runs on its own goroutine; block until it lands so the
	// controller is not finished under it.
	attached := make(chan struct{})
	s.channel.EXPECT().ResolveMediaURL(gomock.Any(), "media-123").Return("https://cdn.example.com/mural.jpg", nil)
	s.messages.EXPECT().AttachMedia(gomock.Any(), gomock.Any(), "https://cdn.example.com/mural.jpg").DoAndReturn(
		func(context.Context, uuid.UUID, string) error {
			close(attached)
			return nil
		},
	)
	s.advisor.EXPECT().Assess(ctx, gomock.Any()).Return(lowRiskAdvisory())
	s.advisories.EXPECT().InsertBatch(ctx, gomock.Any()).Return(nil)
	s.moments.EXPECT().Insert(ctx, gomock.Any()).Return(nil)
	s.events.EXPECT().MomentCreated(ctx, gomock.Any()).Return(nil)
	s.messages.EXPECT().SetProcessed(ctx, gomock.Any()).Return(nil)

	msg, err := s.service.HandleInbound(ctx, ev)

	s.NoError(err)
	s.Equal("our new mural", msg.Content)
	s.Require().NotNil(msg.MediaID)
	s.Equal("media-123", *msg.MediaID)

	select {
	case <-attached:
	case <-time.After(time.Second):
		s.Fail("media attachment never ran")
	}
}

func (s *IntakeServiceTestSuite) TestHandleInbound_InsertFailure() {
	ctx := context.Background()
	ev := textEvent("wamid.8", "+27820000008", "hello")

	s.messages.EXPECT().Insert(ctx, gomock.Any()).Return(false, errors.New("db down"))

	msg, err := s.service.HandleInbound(ctx, ev)

	s.Error(err)
	s.Nil(msg)
	s.Contains(err.Error(), "insert message")
}

func TestExtractContent(t *testing.T) {
	tests := []struct {
		name string
		ev   domain.ChannelEvent
		want string
	}{
		{"text", domain.ChannelEvent{Type: domain.MessageText, Text: "hello"}, "hello"},
		{"image with caption", domain.ChannelEvent{Type: domain.MessageImage, Caption: "sunset"}, "sunset"},
		{"image without caption", domain.ChannelEvent{Type: domain.MessageImage}, "[Image]"},
		{"video with caption", domain.ChannelEvent{Type: domain.MessageVideo, Caption: "match highlights"}, "match highlights"},
		{"video without caption", domain.ChannelEvent{Type: domain.MessageVideo}, "[Video]"},
		{"audio", domain.ChannelEvent{Type: domain.MessageAudio}, "[Audio message]"},
		{"document with filename", domain.ChannelEvent{Type: domain.MessageDocument, Filename: "flyer.pdf"}, "flyer.pdf"},
		{"document without filename", domain.ChannelEvent{Type: domain.MessageDocument}, "[Document]"},
		{"unknown type", domain.ChannelEvent{Type: domain.MessageType("sticker")}, "[sticker message]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractContent(tt.ev)
			if got != tt.want {
				t.Errorf("extractContent() = %q, want %q", got, tt.want)
			}
		})
	}
}
