package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// MessageType is the closed set of inbound content types the channel delivers.
// Anything else is treated as MessageUnknown.
type MessageType string

const (
	MessageText     MessageType = "text"
	MessageImage    MessageType = "image"
	MessageAudio    MessageType = "audio"
	MessageVideo    MessageType = "video"
	MessageDocument MessageType = "document"
	MessageUnknown  MessageType = "unknown"
)

// ChannelEvent is one inbound message as delivered by the channel webhook,
// already lifted out of the provider payload envelope.
type ChannelEvent struct {
	MessageID string // channel-assigned id, idempotency key
	From      string
	Type      MessageType
	Text      string
	Caption   string
	Filename  string
	MediaID   string
	Timestamp time.Time
	Raw       json.RawMessage
}

// InboundMessage is the canonical stored form of a channel event.
type InboundMessage struct {
	ID         uuid.UUID   `db:"id"`
	ChannelID  string      `db:"channel_id"`
	From       string      `db:"from_number"`
	Type       MessageType `db:"message_type"`
	Content    string      `db:"content"`
	Language   string      `db:"language_detected"`
	MediaID    *string     `db:"media_id"`
	MediaURL   *string     `db:"media_url"`
	Raw        []byte      `db:"raw_data"`
	Processed  bool        `db:"processed"`
	ReceivedAt time.Time   `db:"received_at"`
	CreatedAt  time.Time   `db:"created_at"`
}
