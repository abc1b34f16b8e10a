package postgres

import (
	"context"
	"strconv"
	"strings"

	"github.com/jmoiron/sqlx"

	"moments_pipeline/internal/domain"
)

type AdvisoryStore struct {
	db *sqlx.DB
}

func NewAdvisoryStore(db *sqlx.DB) *AdvisoryStore {
	return &AdvisoryStore{db: db}
}

// InsertBatch writes per-dimension advisory rows. Rows are idempotent on
// (message_id, advisory_type) so the persistence step can be retried.
func (s *AdvisoryStore) InsertBatch(ctx context.Context, records []domain.AdvisoryRecord) error {
	if len(records) == 0 {
		return nil
	}

	var sb strings.Builder
	sb.WriteString("INSERT INTO advisories (id, message_id, advisory_type, confidence, details, escalation_suggested) VALUES ")
	valueArgs := make([]interface{}, 0, len(records)*6)

	for i, rec := range records {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("(")
		for j := 0; j < 6; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString("$")
			sb.WriteString(strconv.Itoa(i*6 + j + 1))
		}
		sb.WriteString(")")
		valueArgs = append(valueArgs,
			rec.ID, rec.MessageID, rec.Kind, rec.Confidence, rec.Details, rec.EscalationSuggested,
		)
	}
	sb.WriteString(" ON CONFLICT (message_id, advisory_type) DO NOTHING")

	_, err := s.db.ExecContext(ctx, sb.String(), valueArgs...)
	return err
}

func (s *AdvisoryStore) GetByMessageID(ctx context.Context, messageID string) ([]domain.AdvisoryRecord, error) {
	query := `
		SELECT id, message_id, advisory_type, confidence, details, escalation_suggested, created_at
		FROM advisories
		WHERE message_id = $1
		ORDER BY created_at`

	var records []domain.AdvisoryRecord
	err := s.db.SelectContext(ctx, &records, query, messageID)
	return records, err
}
