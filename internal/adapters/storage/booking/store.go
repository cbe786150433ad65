package booking

import (
	"context"

	domain "peakdispatch/internal/domain/booking"
)

// Store persists Booking records.
type Store interface {
	// List returns all bookings in insertion order.
	List(ctx context.Context) ([]domain.Booking, error)
	// Add appends a new booking.
	Add(ctx context.Context, value domain.Booking) error
	// UpdateStatus replaces the status of the matching booking. An empty
	// status keeps the stored value; an unknown id is a no-op.
	UpdateStatus(ctx context.Context, id, status string) error
	// DeleteBySubmissionID removes every booking referencing the submission.
	DeleteBySubmissionID(ctx context.Context, submissionID string) error
}
