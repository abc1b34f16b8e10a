package service

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"moments_pipeline/internal/config"
	"moments_pipeline/internal/domain"
	"moments_pipeline/internal/service/mocks"
)

type ModerationServiceTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	moments *mocks.MockMomentStore
	events  *mocks.MockEventPublisher

	service *ModerationService
	cfg     config.ModerationConfig
	logger  *slog.Logger
}

func (s *ModerationServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.moments = mocks.NewMockMomentStore(s.ctrl)
	s.events = mocks.NewMockEventPublisher(s.ctrl)

	s.cfg = config.ModerationConfig{
		ApproveThreshold: 0.5,
		SpamThreshold:    0.8,
		DefaultRegion:    domain.RegionNational,
		DefaultCategory:  "Community",
	}

	s.logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	s.service = NewModerationService(s.moments, s.events, s.cfg, s.logger)
}

func (s *ModerationServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestModerationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ModerationServiceTestSuite))
}

func (s *ModerationServiceTestSuite) TestDecide_LowRiskAutoPublishes() {
	advisory := domain.Advisory{
		Harm: domain.HarmSignals{Detected: false, Confidence: 0.1, Type: "none"},
	}

	s.Equal(DecisionAutoPublish, s.service.Decide(advisory))
}

func (s *ModerationServiceTestSuite) TestDecide_EscalationNeverPublishes() {
	advisory := domain.Advisory{
		Harm:                domain.HarmSignals{Confidence: 0},
		EscalationSuggested: true,
	}

	s.Equal(DecisionManualReview, s.service.Decide(advisory))
}

func (s *ModerationServiceTestSuite) TestDecide_ConfidentSpamDiscards() {
	advisory := domain.Advisory{
		Spam: domain.SpamIndicators{Detected: true, Confidence: 0.95},
	}

	s.Equal(DecisionDiscard, s.service.Decide(advisory))
}

func (s *ModerationServiceTestSuite) TestDecide_WeakSpamGoesToReview() {
	// Detected but below the spam threshold, and harmful enough to fall
	// under the approve threshold.
	advisory := domain.Advisory{
		Harm: domain.HarmSignals{Detected: true, Confidence: 0.7, Type: "harassment"},
		Spam: domain.SpamIndicators{Detected: true, Confidence: 0.5},
	}

	s.Equal(DecisionManualReview, s.service.Decide(advisory))
}

func (s *ModerationServiceTestSuite) TestDecide_DegradedDefaultPublishes() {
	// The safe default from an unreachable scorer behaves like a genuine
	// low-risk result; availability is preserved over caution here because
	// escalation and spam both read as absent.
	advisory := domain.Advisory{
		LanguageConfidence: 0.5,
		UrgencyLevel:       domain.UrgencyLow,
		Harm:               domain.HarmSignals{Detected: false, Confidence: 0, Type: "none"},
		Degraded:           true,
	}

	s.Equal(DecisionAutoPublish, s.service.Decide(advisory))
}

func (s *ModerationServiceTestSuite) TestProcess_AutoPublishInsertsDraft() {
	ctx := context.Background()
	msg := &domain.InboundMessage{
		ID:       uuid.New(),
		Content:  "Community garden opening this Saturday",
		Language: "eng",
	}
	advisory := domain.Advisory{Harm: domain.HarmSignals{Confidence: 0.1}}

	var inserted *domain.Moment
	s.moments.EXPECT().Insert(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, moment *domain.Moment) error {
			inserted = moment
			return nil
		},
	)
	s.events.EXPECT().MomentCreated(ctx, gomock.Any()).Return(nil)

	decision, moment, err := s.service.Process(ctx, msg, advisory)

	s.NoError(err)
	s.Equal(DecisionAutoPublish, decision)
	s.Require().NotNil(moment)
	s.Equal(inserted, moment)
	s.Equal(domain.MomentDraft, moment.Status)
	s.Equal(domain.SourceCommunity, moment.Source)
	s.Equal(domain.RegionNational, moment.Region)
	s.Equal("Community", moment.Category)
	s.Equal("eng", moment.Language)
	s.Equal(msg.Content, moment.Title)
	s.Equal(msg.Content, moment.Content)
}

func (s *ModerationServiceTestSuite) TestProcess_AutoPublishCarriesMedia() {
	ctx := context.Background()
	mediaURL := "https://cdn.example.com/photo.jpg"
	msg := &domain.InboundMessage{
		ID:       uuid.New(),
		Content:  "Look at this",
		MediaURL: &mediaURL,
	}
	advisory := domain.Advisory{}

	s.moments.EXPECT().Insert(ctx, gomock.Any()).Return(nil)
	s.events.EXPECT().MomentCreated(ctx, gomock.Any()).Return(nil)

	_, moment, err := s.service.Process(ctx, msg, advisory)

	s.NoError(err)
	s.Equal([]string{mediaURL}, moment.MediaURLs)
}

func (s *ModerationServiceTestSuite) TestProcess_EventFailureDoesNotFail() {
	ctx := context.Background()
	msg := &domain.InboundMessage{ID: uuid.New(), Content: "hello"}

	s.moments.EXPECT().Insert(ctx, gomock.Any()).Return(nil)
	s.events.EXPECT().MomentCreated(ctx, gomock.Any()).Return(errors.New("broker down"))

	decision, moment, err := s.service.Process(ctx, msg, domain.Advisory{})

	s.NoError(err)
	s.Equal(DecisionAutoPublish, decision)
	s.NotNil(moment)
}

func (s *ModerationServiceTestSuite) TestProcess_InsertFailure() {
	ctx := context.Background()
	msg := &domain.InboundMessage{ID: uuid.New(), Content: "hello"}

	s.moments.EXPECT().Insert(ctx, gomock.Any()).Return(errors.New("db down"))

	_, moment, err := s.service.Process(ctx, msg, domain.Advisory{})

	s.Error(err)
	s.Nil(moment)
	s.Contains(err.Error(), "insert moment")
}

func (s *ModerationServiceTestSuite) TestProcess_DiscardTouchesNothing() {
	ctx := context.Background()
	msg := &domain.InboundMessage{ID: uuid.New(), Content: "WIN FREE AIRTIME NOW"}
	advisory := domain.Advisory{
		Spam: domain.SpamIndicators{Detected: true, Confidence: 0.98},
	}

	decision, moment, err := s.service.Process(ctx, msg, advisory)

	s.NoError(err)
	s.Equal(DecisionDiscard, decision)
	s.Nil(moment)
}

func (s *ModerationServiceTestSuite) TestProcess_ManualReviewTouchesNothing() {
	ctx := context.Background()
	msg := &domain.InboundMessage{ID: uuid.New(), Content: "needs a second look"}
	advisory := domain.Advisory{EscalationSuggested: true}

	decision, moment, err := s.service.Process(ctx, msg, advisory)

	s.NoError(err)
	s.Equal(DecisionManualReview, decision)
	s.Nil(moment)
}

func TestDeriveTitle(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "short content kept verbatim",
			content: "Community garden opening this Saturday",
			want:    "Community garden opening this Saturday",
		},
		{
			name:    "exactly fifty runes kept verbatim",
			content: strings.Repeat("a", 50),
			want:    strings.Repeat("a", 50),
		},
		{
			name:    "early terminator cuts the title",
			content: "Water outage in Soweto today. Trucks will be dispatched to the affected areas by noon.",
			want:    "Water outage in Soweto today",
		},
		{
			name:    "late terminator falls back to prefix",
			content: strings.Repeat("b", 85) + ". And then some more text after the sentence ends here",
			want:    strings.Repeat("b", 50) + "...",
		},
		{
			name:    "no terminator falls back to prefix",
			content: strings.Repeat("c", 120),
			want:    strings.Repeat("c", 50) + "...",
		},
		{
			name:    "question mark is a terminator",
			content: "Does anyone know when the clinic reopens after the holidays? Asking for my grandmother who needs her refill",
			want:    "Does anyone know when the clinic reopens after the holidays",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DeriveTitle(tt.content)
			if got != tt.want {
				t.Errorf("DeriveTitle() = %q, want %q", got, tt.want)
			}
		})
	}
}
