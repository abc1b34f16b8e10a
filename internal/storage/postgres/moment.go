package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"moments_pipeline/internal/domain"
)

type MomentStore struct {
	db *sqlx.DB
}

func NewMomentStore(db *sqlx.DB) *MomentStore {
	return &MomentStore{db: db}
}

type momentRow struct {
	ID            uuid.UUID           `db:"id"`
	Title         string              `db:"title"`
	Content       string              `db:"content"`
	Region        string              `db:"region"`
	Category      string              `db:"category"`
	Language      string              `db:"language"`
	MediaURLs     pq.StringArray      `db:"media_urls"`
	Source        domain.MomentSource `db:"content_source"`
	Status        domain.MomentStatus `db:"status"`
	IsSponsored   bool                `db:"is_sponsored"`
	SponsorID     *uuid.UUID          `db:"sponsor_id"`
	ExternalLink  *string             `db:"external_link"`
	ScheduledAt   *time.Time          `db:"scheduled_at"`
	BroadcastedAt *time.Time          `db:"broadcasted_at"`
	CreatedAt     time.Time           `db:"created_at"`
}

func (r momentRow) toDomain() domain.Moment {
	return domain.Moment{
		ID:            r.ID,
		Title:         r.Title,
		Content:       r.Content,
		Region:        r.Region,
		Category:      r.Category,
		Language:      r.Language,
		MediaURLs:     []string(r.MediaURLs),
		Source:        r.Source,
		Status:        r.Status,
		IsSponsored:   r.IsSponsored,
		SponsorID:     r.SponsorID,
		ExternalLink:  r.ExternalLink,
		ScheduledAt:   r.ScheduledAt,
		BroadcastedAt: r.BroadcastedAt,
		CreatedAt:     r.CreatedAt,
	}
}

const momentColumns = `
	id, title, content, region, category, language, media_urls,
	content_source, status, is_sponsored, sponsor_id, external_link,
	scheduled_at, broadcasted_at, created_at`

func (s *MomentStore) Insert(ctx context.Context, moment *domain.Moment) error {
	query := `
		INSERT INTO moments (
			id, title, content, region, category, language, media_urls,
			content_source, status, is_sponsored, sponsor_id, external_link, scheduled_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13
		)
		RETURNING created_at`

	return s.db.QueryRowContext(ctx, query,
		moment.ID,
		moment.Title,
		moment.Content,
		moment.Region,
		moment.Category,
		moment.Language,
		pq.Array(moment.MediaURLs),
		moment.Source,
		moment.Status,
		moment.IsSponsored,
		moment.SponsorID,
		moment.ExternalLink,
		moment.ScheduledAt,
	).Scan(&moment.CreatedAt)
}

func (s *MomentStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Moment, error) {
	var row momentRow
	err := s.db.GetContext(ctx, &row,
		"SELECT "+momentColumns+" FROM moments WHERE id = $1", id)
	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	m := row.toDomain()
	return &m, nil
}

func (s *MomentStore) GetByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*domain.Moment, error) {
	result := make(map[uuid.UUID]*domain.Moment, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	var rows []momentRow
	err := s.db.SelectContext(ctx, &rows,
		"SELECT "+momentColumns+" FROM moments WHERE id = ANY($1)", pq.Array(ids))
	if err != nil {
		return nil, err
	}

	for _, r := range rows {
		m := r.toDomain()
		result[m.ID] = &m
	}
	return result, nil
}

func (s *MomentStore) ListScheduled(ctx context.Context, before time.Time, limit int) ([]domain.Moment, error) {
	query := "SELECT " + momentColumns + `
		FROM moments
		WHERE status = $1 AND scheduled_at <= $2
		ORDER BY scheduled_at
		LIMIT $3`

	var rows []momentRow
	if err := s.db.SelectContext(ctx, &rows, query, domain.MomentScheduled, before, limit); err != nil {
		return nil, err
	}
	return toDomainSlice(rows), nil
}

func (s *MomentStore) ListBroadcasted(ctx context.Context, region, category string, limit int) ([]domain.Moment, error) {
	query := "SELECT " + momentColumns + `
		FROM moments
		WHERE status = $1
		  AND ($2 = '' OR region = $2)
		  AND ($3 = '' OR category = $3)
		ORDER BY broadcasted_at DESC
		LIMIT $4`

	var rows []momentRow
	if err := s.db.SelectContext(ctx, &rows, query, domain.MomentBroadcasted, region, category, limit); err != nil {
		return nil, err
	}
	return toDomainSlice(rows), nil
}

// UpdateStatus transitions a moment and stamps broadcasted_at when the new
// status is broadcasted.
func (s *MomentStore) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.MomentStatus, at time.Time) error {
	query := `
		UPDATE moments
		SET status = $2,
		    broadcasted_at = CASE WHEN $2 = 'broadcasted' THEN $3 ELSE broadcasted_at END
		WHERE id = $1`

	res, err := GetExecutor(ctx, s.db).ExecContext(ctx, query, id, status, at)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (s *MomentStore) CountByStatus(ctx context.Context, status domain.MomentStatus) (int, error) {
	var count int
	err := s.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM moments WHERE status = $1", status)
	return count, err
}

func toDomainSlice(rows []momentRow) []domain.Moment {
	moments := make([]domain.Moment, 0, len(rows))
	for _, r := range rows {
		moments = append(moments, r.toDomain())
	}
	return moments
}
