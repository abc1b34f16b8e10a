package webhook

import (
	"encoding/json"
	"strconv"
	"time"

	"moments_pipeline/internal/domain"
)

// Payload is the channel webhook delivery envelope.
type Payload struct {
	Object string  `json:"object"`
	Entry  []Entry `json:"entry"`
}

type Entry struct {
	ID      string   `json:"id"`
	Changes []Change `json:"changes"`
}

type Change struct {
	Field string `json:"field"`
	Value Value  `json:"value"`
}

type Value struct {
	MessagingProduct string    `json:"messaging_product"`
	Messages         []Message `json:"messages"`
}

type Message struct {
	ID        string        `json:"id"`
	From      string        `json:"from"`
	Timestamp string        `json:"timestamp"`
	Type      string        `json:"type"`
	Text      *TextContent  `json:"text,omitempty"`
	Image     *MediaContent `json:"image,omitempty"`
	Audio     *MediaContent `json:"audio,omitempty"`
	Video     *MediaContent `json:"video,omitempty"`
	Document  *DocContent   `json:"document,omitempty"`
}

type TextContent struct {
	Body string `json:"body"`
}

type MediaContent struct {
	ID      string `json:"id"`
	Caption string `json:"caption,omitempty"`
}

type DocContent struct {
	ID       string `json:"id"`
	Filename string `json:"filename,omitempty"`
	Caption  string `json:"caption,omitempty"`
}

// ToChannelEvent lifts one provider message object into the canonical event
// shape the intake service consumes.
func (m Message) ToChannelEvent() domain.ChannelEvent {
	ev := domain.ChannelEvent{
		MessageID: m.ID,
		From:      m.From,
		Type:      messageType(m.Type),
		Timestamp: parseTimestamp(m.Timestamp),
	}

	switch ev.Type {
	case domain.MessageText:
		if m.Text != nil {
			ev.Text = m.Text.Body
		}
	case domain.MessageImage:
		if m.Image != nil {
			ev.Caption = m.Image.Caption
			ev.MediaID = m.Image.ID
		}
	case domain.MessageAudio:
		if m.Audio != nil {
			ev.MediaID = m.Audio.ID
		}
	case domain.MessageVideo:
		if m.Video != nil {
			ev.Caption = m.Video.Caption
			ev.MediaID = m.Video.ID
		}
	case domain.MessageDocument:
		if m.Document != nil {
			ev.Caption = m.Document.Caption
			ev.Filename = m.Document.Filename
			ev.MediaID = m.Document.ID
		}
	}

	if raw, err := json.Marshal(m); err == nil {
		ev.Raw = raw
	}

	return ev
}

func messageType(t string) domain.MessageType {
	switch domain.MessageType(t) {
	case domain.MessageText, domain.MessageImage, domain.MessageAudio,
		domain.MessageVideo, domain.MessageDocument:
		return domain.MessageType(t)
	default:
		if t == "" {
			return domain.MessageUnknown
		}
		return domain.MessageType(t)
	}
}

func parseTimestamp(ts string) time.Time {
	secs, err := strconv.ParseInt(ts, 10, 64)
	if err != nil {
		return time.Now().UTC()
	}
	return time.Unix(secs, 0).UTC()
}
