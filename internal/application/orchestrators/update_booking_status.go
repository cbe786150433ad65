package orchestrators

import (
	"context"
	"errors"
	"log/slog"
)

// BookingStoreForStatus defines the store interface needed by UpdateBookingStatus.
type BookingStoreForStatus interface {
	UpdateStatus(ctx context.Context, id, status string) error
}

// UpdateBookingStatusInput carries input for the status update.
type UpdateBookingStatusInput struct {
	BookingID string
	Status    string
}

// UpdateBookingStatusDeps holds dependencies for UpdateBookingStatus.
type UpdateBookingStatusDeps struct {
	BookingStore BookingStoreForStatus
}

// ErrMissingBookingID is returned when no booking id was supplied.
var ErrMissingBookingID = errors.New("booking id is required")

// ExecuteUpdateBookingStatus replaces a booking's status. An empty status
// keeps the stored value and an unknown id is a no-op, so the operation is
// always safe to repeat.
// PRE: BookingID is non-empty
// POST: Matching booking carries the new status when one was supplied
func ExecuteUpdateBookingStatus(ctx context.Context, input UpdateBookingStatusInput, deps UpdateBookingStatusDeps) error {
	if input.BookingID == "" {
		return ErrMissingBookingID
	}

	if err := deps.BookingStore.UpdateStatus(ctx, input.BookingID, input.Status); err != nil {
		return err
	}

	slog.Info("booking_event", "event", "booking_status_updated", "booking_id", input.BookingID, "status", input.Status)
	return nil
}
