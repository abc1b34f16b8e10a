package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"github.com/google/uuid"

	"moments_pipeline/internal/domain"
)

type MessageStore interface {
	// Insert stores the message, using the channel-assigned id as idempotency
	// key. On re-delivery it loads the existing record into msg and returns
	// created=false instead of inserting a duplicate.
	Insert(ctx context.Context, msg *domain.InboundMessage) (bool, error)
	AttachMedia(ctx context.Context, id uuid.UUID, mediaURL string) error
	SetProcessed(ctx context.Context, id uuid.UUID) error
}

type AdvisoryStore interface {
	InsertBatch(ctx context.Context, records []domain.AdvisoryRecord) error
}

type SubscriberStore interface {
	Upsert(ctx context.Context, sub *domain.Subscriber) error
	ListOptedIn(ctx context.Context) ([]domain.Subscriber, error)
	CountOptedIn(ctx context.Context) (int, error)
}

type MomentStore interface {
	Insert(ctx context.Context, moment *domain.Moment) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Moment, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*domain.Moment, error)
	ListScheduled(ctx context.Context, before time.Time, limit int) ([]domain.Moment, error)
	ListBroadcasted(ctx context.Context, region, category string, limit int) ([]domain.Moment, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.MomentStatus, at time.Time) error
	CountByStatus(ctx context.Context, status domain.MomentStatus) (int, error)
}

type SponsorStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Sponsor, error)
}

type BroadcastStore interface {
	Create(ctx context.Context, record *domain.BroadcastRecord) error
	Complete(ctx context.Context, id uuid.UUID, success, failure int, at time.Time) error
	ListCompletedSince(ctx context.Context, since time.Time) ([]domain.BroadcastRecord, error)
	Count(ctx context.Context) (int, error)
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// Advisor scores message content for language, urgency, harm and spam.
// Implementations must degrade to a safe default instead of returning an
// error, so the pipeline never stalls on an unavailable scorer.
type Advisor interface {
	Assess(ctx context.Context, req domain.AssessRequest) domain.Advisory
}

// ChannelSender is the outbound chat-channel API. Text and media sends are
// independently failable.
type ChannelSender interface {
	SendText(ctx context.Context, to, body string) error
	SendMedia(ctx context.Context, to, mediaURL string) error
	ResolveMediaURL(ctx context.Context, mediaID string) (string, error)
}

type EventPublisher interface {
	MomentCreated(ctx context.Context, moment *domain.Moment) error
	BroadcastCompleted(ctx context.Context, record *domain.BroadcastRecord, moment *domain.Moment) error
	Close() error
}
