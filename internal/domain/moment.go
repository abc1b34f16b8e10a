package domain

import (
	"time"

	"github.com/google/uuid"
)

type MomentStatus string

const (
	MomentDraft       MomentStatus = "draft"
	MomentScheduled   MomentStatus = "scheduled"
	MomentBroadcasted MomentStatus = "broadcasted"
	MomentFailed      MomentStatus = "failed"
)

type MomentSource string

const (
	SourceCommunity MomentSource = "community"
	SourceManual    MomentSource = "manual"
	SourceCampaign  MomentSource = "campaign"
)

// RegionNational targets every region; region filtering is skipped for it.
const RegionNational = "National"

// Moment is a unit of content eligible for broadcast once approved.
// Only the dispatcher moves it out of draft/scheduled.
type Moment struct {
	ID            uuid.UUID    `db:"id"`
	Title         string       `db:"title"`
	Content       string       `db:"content"`
	Region        string       `db:"region"`
	Category      string       `db:"category"`
	Language      string       `db:"language"`
	MediaURLs     []string     `db:"-"`
	Source        MomentSource `db:"content_source"`
	Status        MomentStatus `db:"status"`
	IsSponsored   bool         `db:"is_sponsored"`
	SponsorID     *uuid.UUID   `db:"sponsor_id"`
	ExternalLink  *string      `db:"external_link"`
	ScheduledAt   *time.Time   `db:"scheduled_at"`
	BroadcastedAt *time.Time   `db:"broadcasted_at"`
	CreatedAt     time.Time    `db:"created_at"`
}

type Sponsor struct {
	ID          uuid.UUID `db:"id"`
	DisplayName string    `db:"display_name"`
}
