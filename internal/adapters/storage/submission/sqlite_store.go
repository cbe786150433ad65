package submission

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	domain "peakdispatch/internal/domain/submission"
)

const timeLayout = "2006-01-02T15:04:05Z07:00"

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new SQLiteStore.
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

const submissionColumns = `id, created_at, first_name, last_name, email, phone,
		company, country, fleet_size, equipment_type, hear_about, notes`

// List returns all submissions in insertion order.
// POST: Returns records ordered by created_at ascending
func (s *SQLiteStore) List(ctx context.Context) ([]domain.Submission, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+submissionColumns+` FROM submission ORDER BY created_at ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subs []domain.Submission
	for rows.Next() {
		var sub domain.Submission
		var createdAt string
		err := rows.Scan(&sub.ID, &createdAt, &sub.FirstName, &sub.LastName,
			&sub.Email, &sub.Phone, &sub.Company, &sub.Country,
			&sub.FleetSize, &sub.EquipmentType, &sub.HearAbout, &sub.Notes)
		if err != nil {
			return nil, err
		}
		sub.CreatedAt = parseTime(createdAt, sub.ID)
		subs = append(subs, sub)
	}
	return subs, rows.Err()
}

// Add inserts a submission.
// PRE: value has been validated
// POST: Record is persisted
func (s *SQLiteStore) Add(ctx context.Context, value domain.Submission) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO submission (`+submissionColumns+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		value.ID, value.CreatedAt.Format(timeLayout), value.FirstName, value.LastName,
		value.Email, value.Phone, value.Company, value.Country,
		value.FleetSize, value.EquipmentType, value.HearAbout, value.Notes)
	return err
}

// Delete removes a submission by id. An absent id is a no-op.
// POST: No record with the given id remains
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM submission WHERE id = ?`, id)
	return err
}

// parseTime parses a stored timestamp, logging a warning on failure.
func parseTime(raw, submissionID string) time.Time {
	t, err := time.Parse(timeLayout, raw)
	if err != nil {
		slog.Warn("submission: failed to parse created_at", "submission_id", submissionID, "raw", raw, "error", err)
	}
	return t
}
