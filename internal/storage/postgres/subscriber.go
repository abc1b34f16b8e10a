package postgres

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"moments_pipeline/internal/domain"
)

type SubscriberStore struct {
	db *sqlx.DB
}

func NewSubscriberStore(db *sqlx.DB) *SubscriberStore {
	return &SubscriberStore{db: db}
}

type subscriberRow struct {
	PhoneNumber  string         `db:"phone_number"`
	OptedIn      bool           `db:"opted_in"`
	Regions      pq.StringArray `db:"regions"`
	Categories   pq.StringArray `db:"categories"`
	OptedInAt    *time.Time     `db:"opted_in_at"`
	OptedOutAt   *time.Time     `db:"opted_out_at"`
	LastActivity time.Time      `db:"last_activity"`
}

func (r subscriberRow) toDomain() domain.Subscriber {
	return domain.Subscriber{
		PhoneNumber:  r.PhoneNumber,
		OptedIn:      r.OptedIn,
		Regions:      []string(r.Regions),
		Categories:   []string(r.Categories),
		OptedInAt:    r.OptedInAt,
		OptedOutAt:   r.OptedOutAt,
		LastActivity: r.LastActivity,
	}
}

// Upsert keys subscribers by recipient address so opt-out followed by opt-in
// leaves exactly one row. Empty region/category sets and nil timestamps keep
// the stored values, which lets opt-out avoid wiping targeting preferences.
func (s *SubscriberStore) Upsert(ctx context.Context, sub *domain.Subscriber) error {
	query := `
		INSERT INTO subscriptions (
			phone_number, opted_in, regions, categories,
			opted_in_at, opted_out_at, last_activity
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (phone_number) DO UPDATE SET
			opted_in = EXCLUDED.opted_in,
			regions = CASE WHEN cardinality(EXCLUDED.regions) > 0 THEN EXCLUDED.regions ELSE subscriptions.regions END,
			categories = CASE WHEN cardinality(EXCLUDED.categories) > 0 THEN EXCLUDED.categories ELSE subscriptions.categories END,
			opted_in_at = COALESCE(EXCLUDED.opted_in_at, subscriptions.opted_in_at),
			opted_out_at = COALESCE(EXCLUDED.opted_out_at, subscriptions.opted_out_at),
			last_activity = EXCLUDED.last_activity`

	_, err := s.db.ExecContext(ctx, query,
		sub.PhoneNumber,
		sub.OptedIn,
		pq.Array(sub.Regions),
		pq.Array(sub.Categories),
		sub.OptedInAt,
		sub.OptedOutAt,
		sub.LastActivity,
	)
	return err
}

func (s *SubscriberStore) ListOptedIn(ctx context.Context) ([]domain.Subscriber, error) {
	query := `
		SELECT phone_number, opted_in, regions, categories,
		       opted_in_at, opted_out_at, last_activity
		FROM subscriptions
		WHERE opted_in = true`

	var rows []subscriberRow
	if err := s.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, err
	}

	subs := make([]domain.Subscriber, 0, len(rows))
	for _, r := range rows {
		subs = append(subs, r.toDomain())
	}
	return subs, nil
}

func (s *SubscriberStore) CountOptedIn(ctx context.Context) (int, error) {
	var count int
	err := s.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM subscriptions WHERE opted_in = true")
	return count, err
}
