package booking

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	domain "peakdispatch/internal/domain/booking"
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

const bookingColumns = `id, submission_id, created_at, meeting_date, time_slot, status`

// List returns all bookings in insertion order.
// POST: Returns records ordered by created_at ascending
func (s *SQLiteStore) List(ctx context.Context) ([]domain.Booking, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+bookingColumns+` FROM booking ORDER BY created_at ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []domain.Booking
	for rows.Next() {
		var b domain.Booking
		var createdAt string
		err := rows.Scan(&b.ID, &b.SubmissionID, &createdAt, &b.MeetingDate, &b.TimeSlot, &b.Status)
		if err != nil {
			return nil, err
		}
		b.CreatedAt = parseTime(createdAt, b.ID)
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

// Add inserts a booking.
// PRE: value has been validated
// POST: Record is persisted
func (s *SQLiteStore) Add(ctx context.Context, value domain.Booking) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO booking (`+bookingColumns+`) VALUES (?, ?, ?, ?, ?, ?)`,
		value.ID, value.SubmissionID, value.CreatedAt.Format(timeLayout),
		value.MeetingDate, value.TimeSlot, value.Status)
	return err
}

// UpdateStatus replaces the status on the matching booking. Empty status and
// unknown ids are no-ops.
// POST: Matching booking has the new status
func (s *SQLiteStore) UpdateStatus(ctx context.Context, id, status string) error {
	if status == "" {
		return nil
	}
	_, err := s.db.ExecContext(ctx, `UPDATE booking SET status = ? WHERE id = ?`, status, id)
	return err
}

// DeleteBySubmissionID removes all bookings referencing the submission.
// POST: No booking with the given submission_id remains
func (s *SQLiteStore) DeleteBySubmissionID(ctx context.Context, submissionID string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM booking WHERE submission_id = ?`, submissionID)
	return err
}

// parseTime parses a stored timestamp, logging a warning on failure.
func parseTime(raw, bookingID string) time.Time {
	t, err := time.Parse(timeLayout, raw)
	if err != nil {
		slog.Warn("booking: failed to parse created_at", "booking_id", bookingID, "raw", raw, "error", err)
	}
	return t
}
