//go:build integration

package publisher

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/rabbitmq"
	"github.com/testcontainers/testcontainers-go/wait"

	"moments_pipeline/internal/domain"
	"moments_pipeline/testdata/utils"
)

type RabbitMQIntegrationSuite struct {
	suite.Suite
	ctx       context.Context
	container *rabbitmq.RabbitMQContainer
	amqpURL   string
	logger    *slog.Logger
}

func (s *RabbitMQIntegrationSuite) SetupSuite() {
	s.ctx = context.Background()
	s.logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	container, err := rabbitmq.Run(s.ctx,
		"rabbitmq:3.13-management-alpine",
		testcontainers.WithWaitStrategy(
			wait.ForLog("Server startup complete").
				WithStartupTimeout(60*time.Second),
		),
	)
	s.Require().NoError(err)
	s.container = container

	amqpURL, err := container.AmqpURL(s.ctx)
	s.Require().NoError(err)
	s.amqpURL = amqpURL
}

func (s *RabbitMQIntegrationSuite) TearDownSuite() {
	if s.container != nil {
		_ = s.container.Terminate(s.ctx)
	}
}

func TestRabbitMQIntegrationSuite(t *testing.T) {
	suite.Run(t, new(RabbitMQIntegrationSuite))
}

func (s *RabbitMQIntegrationSuite) TestPublisher_Connection() {
	cfg := Config{
		URL:       s.amqpURL,
		Exchange:  "test-exchange",
		QueueName: "test-queue",
	}

	pub, err := NewRabbitMQ(cfg, s.logger)
	s.NoError(err)
	s.NotNil(pub)

	err = pub.Close()
	s.NoError(err)
}

func (s *RabbitMQIntegrationSuite) TestPublisher_MomentCreated() {
	cfg := Config{
		URL:       s.amqpURL,
		Exchange:  "test-exchange-moment",
		QueueName: "test-queue-moment",
	}

	pub, err := NewRabbitMQ(cfg, s.logger)
	s.Require().NoError(err)
	defer pub.Close()

	moment := &domain.Moment{
		ID:           uuid.New(),
		Title:        "Free health clinic",
		Content:      "Free health clinic this weekend in Soweto",
		Region:       domain.RegionNational,
		Category:     "Health",
		Language:     "eng",
		Source:       domain.SourceCommunity,
		Status:       domain.MomentDraft,
		ExternalLink: utils.Ptr("https://clinic.example.com"),
	}

	err = pub.MomentCreated(s.ctx, moment)
	s.NoError(err)

	msg := s.consumeMessage(cfg)
	s.Require().NotNil(msg)
	s.Equal("application/json", msg.ContentType)
	s.Equal(RoutingMomentCreated, msg.RoutingKey)

	var received PipelineEvent
	err = json.Unmarshal(msg.Body, &received)
	s.NoError(err)
	s.Equal(RoutingMomentCreated, received.Kind)
	s.Require().NotNil(received.Moment)
	s.Equal(moment.ID, received.Moment.ID)
	s.Equal("Free health clinic", received.Moment.Title)
	s.Nil(received.Broadcast)
	s.False(received.Timestamp.IsZero())
}

func (s *RabbitMQIntegrationSuite) TestPublisher_BroadcastCompleted() {
	cfg := Config{
		URL:       s.amqpURL,
		Exchange:  "test-exchange-broadcast",
		QueueName: "test-queue-broadcast",
	}

	pub, err := NewRabbitMQ(cfg, s.logger)
	s.Require().NoError(err)
	defer pub.Close()

	now := time.Now().UTC().Truncate(time.Millisecond)
	moment := &domain.Moment{
		ID:     uuid.New(),
		Title:  "Broadcasted moment",
		Status: domain.MomentBroadcasted,
	}
	record := &domain.BroadcastRecord{
		ID:             uuid.New(),
		MomentID:       moment.ID,
		RecipientCount: 10,
		SuccessCount:   9,
		FailureCount:   1,
		Status:         domain.BroadcastCompleted,
		StartedAt:      now,
		CompletedAt:    &now,
	}

	err = pub.BroadcastCompleted(s.ctx, record, moment)
	s.NoError(err)

	msg := s.consumeMessage(cfg)
	s.Require().NotNil(msg)
	s.Equal(RoutingBroadcastCompleted, msg.RoutingKey)

	var received PipelineEvent
	err = json.Unmarshal(msg.Body, &received)
	s.NoError(err)
	s.Equal(RoutingBroadcastCompleted, received.Kind)
	s.Require().NotNil(received.Broadcast)
	s.Equal(record.ID, received.Broadcast.ID)
	s.Equal(9, received.Broadcast.SuccessCount)
	s.Require().NotNil(received.Moment)
	s.Equal(moment.ID, received.Moment.ID)
}

func (s *RabbitMQIntegrationSuite) TestPublisher_MessagePersistence() {
	cfg := Config{
		URL:       s.amqpURL,
		Exchange:  "test-exchange-persist",
		QueueName: "test-queue-persist",
	}

	pub, err := NewRabbitMQ(cfg, s.logger)
	s.Require().NoError(err)
	defer pub.Close()

	err = pub.MomentCreated(s.ctx, &domain.Moment{ID: uuid.New(), Title: "persistent"})
	s.NoError(err)

	msg := s.consumeMessage(cfg)
	s.Require().NotNil(msg)
	s.Equal(uint8(amqp.Persistent), msg.DeliveryMode)
}

func (s *RabbitMQIntegrationSuite) consumeMessage(cfg Config) *amqp.Delivery {
	conn, err := amqp.Dial(s.amqpURL)
	s.Require().NoError(err)
	defer conn.Close()

	ch, err := conn.Channel()
	s.Require().NoError(err)
	defer ch.Close()

	msgs, err := ch.Consume(cfg.QueueName, "", true, false, false, false, nil)
	s.Require().NoError(err)

	select {
	case msg := <-msgs:
		return &msg
	case <-time.After(5 * time.Second):
		s.Fail("Timeout waiting for message")
		return nil
	}
}
