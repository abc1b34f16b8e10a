package domain

import (
	"time"

	"github.com/google/uuid"
)

type BroadcastStatus string

const (
	BroadcastInProgress BroadcastStatus = "in_progress"
	BroadcastCompleted  BroadcastStatus = "completed"
)

// BroadcastRecord is the audit record of one dispatch run. It is created with
// status in_progress before the first send, so an interrupted run still leaves
// a partial record, and never mutated after reaching completed.
type BroadcastRecord struct {
	ID             uuid.UUID       `db:"id"`
	MomentID       uuid.UUID       `db:"moment_id"`
	RecipientCount int             `db:"recipient_count"`
	SuccessCount   int             `db:"success_count"`
	FailureCount   int             `db:"failure_count"`
	Status         BroadcastStatus `db:"status"`
	StartedAt      time.Time       `db:"broadcast_started_at"`
	CompletedAt    *time.Time      `db:"broadcast_completed_at"`
}

// GroupStats is one region or category bucket of the analytics rollup.
type GroupStats struct {
	Count      int `json:"count"`
	Recipients int `json:"recipients"`
	Success    int `json:"success"`
}

// Analytics is the time-windowed rollup over completed broadcasts.
type Analytics struct {
	TotalBroadcasts int                    `json:"total_broadcasts"`
	TotalRecipients int                    `json:"total_recipients"`
	TotalSuccess    int                    `json:"total_success"`
	TotalFailures   int                    `json:"total_failures"`
	SuccessRate     float64                `json:"success_rate"`
	ByRegion        map[string]*GroupStats `json:"by_region"`
	ByCategory      map[string]*GroupStats `json:"by_category"`
	Sponsored       int                    `json:"sponsored"`
	Organic         int                    `json:"organic"`
}

// ScheduleStats holds statistics about one scheduled-broadcast cycle.
type ScheduleStats struct {
	Selected   int
	Dispatched int
	Failed     int
	Duration   time.Duration
}
