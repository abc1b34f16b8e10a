package postgres

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"moments_pipeline/internal/domain"
)

type MessageStore struct {
	db *sqlx.DB
}

func NewMessageStore(db *sqlx.DB) *MessageStore {
	return &MessageStore{db: db}
}

// Insert stores the message keyed by the channel-assigned id. Re-delivery of
// an already-seen id loads the stored record into msg and returns false.
func (s *MessageStore) Insert(ctx context.Context, msg *domain.InboundMessage) (bool, error) {
	query := `
		INSERT INTO messages (
			id, channel_id, from_number, message_type, content,
			language_detected, media_id, raw_data, processed, received_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10
		)
		ON CONFLICT (channel_id) DO NOTHING
		RETURNING created_at`

	err := s.db.QueryRowContext(ctx, query,
		msg.ID,
		msg.ChannelID,
		msg.From,
		msg.Type,
		msg.Content,
		msg.Language,
		msg.MediaID,
		msg.Raw,
		msg.Processed,
		msg.ReceivedAt,
	).Scan(&msg.CreatedAt)

	if err == sql.ErrNoRows {
		existing, getErr := s.getByChannelID(ctx, msg.ChannelID)
		if getErr != nil {
			return false, getErr
		}
		*msg = *existing
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return true, nil
}

func (s *MessageStore) getByChannelID(ctx context.Context, channelID string) (*domain.InboundMessage, error) {
	var msg domain.InboundMessage
	query := `
		SELECT id, channel_id, from_number, message_type, content,
		       language_detected, media_id, media_url, raw_data, processed,
		       received_at, created_at
		FROM messages
		WHERE channel_id = $1`

	err := s.db.GetContext(ctx, &msg, query, channelID)
	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &msg, nil
}

func (s *MessageStore) AttachMedia(ctx context.Context, id uuid.UUID, mediaURL string) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE messages SET media_url = $2 WHERE id = $1",
		id, mediaURL,
	)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (s *MessageStore) SetProcessed(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE messages SET processed = true WHERE id = $1",
		id,
	)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
