package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"moments_pipeline/internal/domain"
)

type BroadcastStore struct {
	db *sqlx.DB
}

func NewBroadcastStore(db *sqlx.DB) *BroadcastStore {
	return &BroadcastStore{db: db}
}

func (s *BroadcastStore) Create(ctx context.Context, record *domain.BroadcastRecord) error {
	query := `
		INSERT INTO broadcasts (
			id, moment_id, recipient_count, success_count, failure_count,
			status, broadcast_started_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := s.db.ExecContext(ctx, query,
		record.ID,
		record.MomentID,
		record.RecipientCount,
		record.SuccessCount,
		record.FailureCount,
		record.Status,
		record.StartedAt,
	)
	return err
}

// Complete is the single terminal update of a dispatch run. The status guard
// keeps completed records immutable.
func (s *BroadcastStore) Complete(ctx context.Context, id uuid.UUID, success, failure int, at time.Time) error {
	query := `
		UPDATE broadcasts
		SET success_count = $2,
		    failure_count = $3,
		    status = $4,
		    broadcast_completed_at = $5
		WHERE id = $1 AND status = $6`

	res, err := GetExecutor(ctx, s.db).ExecContext(ctx, query,
		id, success, failure, domain.BroadcastCompleted, at, domain.BroadcastInProgress)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (s *BroadcastStore) ListCompletedSince(ctx context.Context, since time.Time) ([]domain.BroadcastRecord, error) {
	query := `
		SELECT id, moment_id, recipient_count, success_count, failure_count,
		       status, broadcast_started_at, broadcast_completed_at
		FROM broadcasts
		WHERE status = $1 AND broadcast_started_at >= $2
		ORDER BY broadcast_started_at DESC`

	var records []domain.BroadcastRecord
	err := s.db.SelectContext(ctx, &records, query, domain.BroadcastCompleted, since)
	return records, err
}

func (s *BroadcastStore) Count(ctx context.Context) (int, error) {
	var count int
	err := s.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM broadcasts")
	return count, err
}

type SponsorStore struct {
	db *sqlx.DB
}

func NewSponsorStore(db *sqlx.DB) *SponsorStore {
	return &SponsorStore{db: db}
}

func (s *SponsorStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Sponsor, error) {
	var sponsor domain.Sponsor
	err := s.db.GetContext(ctx, &sponsor,
		"SELECT id, display_name FROM sponsors WHERE id = $1", id)
	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &sponsor, nil
}
