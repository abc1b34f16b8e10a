package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"moments_pipeline/internal/domain"
)

const (
	RoutingMomentCreated      = "moment.created"
	RoutingBroadcastCompleted = "broadcast.completed"
)

type RabbitMQ struct {
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
	logger   *slog.Logger
}

type Config struct {
	URL       string
	Exchange  string
	QueueName string
}

func NewRabbitMQ(cfg Config, logger *slog.Logger) (*RabbitMQ, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("connect to rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	err = ch.ExchangeDeclare(
		cfg.Exchange,
		"topic",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	q, err := ch.QueueDeclare(
		cfg.QueueName,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare queue: %w", err)
	}

	err = ch.QueueBind(
		q.Name,
		"#",
		cfg.Exchange,
		false,
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("bind queue: %w", err)
	}

	logger.Info("connected to rabbitmq",
		"exchange", cfg.Exchange,
		"queue", cfg.QueueName,
	)

	return &RabbitMQ{
		conn:     conn,
		channel:  ch,
		exchange: cfg.Exchange,
		logger:   logger,
	}, nil
}

// PipelineEvent is the envelope for downstream consumers (review dashboards,
// notification hooks).
type PipelineEvent struct {
	Kind      string                  `json:"kind"`
	Moment    *domain.Moment          `json:"moment,omitempty"`
	Broadcast *domain.BroadcastRecord `json:"broadcast,omitempty"`
	Timestamp time.Time               `json:"timestamp"`
}

func (r *RabbitMQ) MomentCreated(ctx context.Context, moment *domain.Moment) error {
	return r.publish(ctx, RoutingMomentCreated, PipelineEvent{
		Kind:      RoutingMomentCreated,
		Moment:    moment,
		Timestamp: time.Now().UTC(),
	})
}

func (r *RabbitMQ) BroadcastCompleted(ctx context.Context, record *domain.BroadcastRecord, moment *domain.Moment) error {
	return r.publish(ctx, RoutingBroadcastCompleted, PipelineEvent{
		Kind:      RoutingBroadcastCompleted,
		Moment:    moment,
		Broadcast: record,
		Timestamp: time.Now().UTC(),
	})
}

func (r *RabbitMQ) publish(ctx context.Context, routingKey string, event PipelineEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	err = r.channel.PublishWithContext(
		ctx,
		r.exchange,
		routingKey,
		false,
		false,
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			Body:         body,
			Timestamp:    time.Now(),
		},
	)
	if err != nil {
		return fmt.Errorf("publish event: %w", err)
	}

	r.logger.Debug("published event", "routing_key", routingKey)

	return nil
}

func (r *RabbitMQ) Close() error {
	if r.channel != nil {
		r.channel.Close()
	}
	if r.conn != nil {
		return r.conn.Close()
	}
	return nil
}
