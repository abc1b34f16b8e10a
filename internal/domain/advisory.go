package domain

import (
	"time"

	"github.com/google/uuid"
)

type UrgencyLevel string

const (
	UrgencyLow    UrgencyLevel = "low"
	UrgencyMedium UrgencyLevel = "medium"
	UrgencyHigh   UrgencyLevel = "high"
)

type AdvisoryKind string

const (
	AdvisoryLanguage AdvisoryKind = "language"
	AdvisoryUrgency  AdvisoryKind = "urgency"
	AdvisoryHarm     AdvisoryKind = "harm"
	AdvisorySpam     AdvisoryKind = "spam"
)

// AssessRequest is the input handed to the risk scorer for one message.
type AssessRequest struct {
	Content   string      `json:"message_content"`
	Language  string      `json:"message_language"`
	Type      MessageType `json:"message_type"`
	From      string      `json:"from_number"`
	Timestamp time.Time   `json:"message_timestamp"`
}

// Advisory is the composite risk assessment for one inbound message.
// Degraded marks the safe default returned when the scorer was unreachable,
// so downstream auditing can tell it apart from a genuine low-risk result.
type Advisory struct {
	LanguageConfidence  float64        `json:"language_confidence"`
	UrgencyLevel        UrgencyLevel   `json:"urgency_level"`
	Harm                HarmSignals    `json:"harm_signals"`
	Spam                SpamIndicators `json:"spam_indicators"`
	EscalationSuggested bool           `json:"escalation_suggested"`
	Degraded            bool           `json:"-"`
	Notes               string         `json:"notes,omitempty"`
}

type HarmSignals struct {
	Detected   bool    `json:"detected"`
	Confidence float64 `json:"confidence"`
	Type       string  `json:"type"`
	Context    string  `json:"context,omitempty"`
}

type SpamIndicators struct {
	Detected   bool     `json:"detected"`
	Confidence float64  `json:"confidence"`
	Patterns   []string `json:"patterns,omitempty"`
}

// UrgencyConfidence maps the urgency level onto the [0,1] confidence scale
// used by the per-dimension advisory rows.
func (a Advisory) UrgencyConfidence() float64 {
	switch a.UrgencyLevel {
	case UrgencyHigh:
		return 0.9
	case UrgencyMedium:
		return 0.6
	default:
		return 0.3
	}
}

// AdvisoryRecord is one persisted per-dimension row of an Advisory.
// Rows are immutable once written.
type AdvisoryRecord struct {
	ID                  uuid.UUID    `db:"id"`
	MessageID           uuid.UUID    `db:"message_id"`
	Kind                AdvisoryKind `db:"advisory_type"`
	Confidence          float64      `db:"confidence"`
	Details             []byte       `db:"details"`
	EscalationSuggested bool         `db:"escalation_suggested"`
	CreatedAt           time.Time    `db:"created_at"`
}
