package orchestrators

import (
	"context"
	"errors"
	"log/slog"
)

// SubmissionStoreForDelete defines the store interface needed by DeleteSubmission.
type SubmissionStoreForDelete interface {
	Delete(ctx context.Context, id string) error
}

// BookingStoreForDelete defines the store interface needed by DeleteSubmission.
type BookingStoreForDelete interface {
	DeleteBySubmissionID(ctx context.Context, submissionID string) error
}

// DeleteSubmissionDeps holds dependencies for DeleteSubmission.
type DeleteSubmissionDeps struct {
	SubmissionStore SubmissionStoreForDelete
	BookingStore    BookingStoreForDelete
}

// ErrMissingSubmissionID is returned when no submission id was supplied.
var ErrMissingSubmissionID = errors.New("submission id is required")

// ExecuteDeleteSubmission removes a submission and cascades the delete to
// every booking referencing it. An unknown id is treated as success.
// PRE: id is non-empty
// POST: No submission or booking with the given submission id remains
func ExecuteDeleteSubmission(ctx context.Context, id string, deps DeleteSubmissionDeps) error {
	if id == "" {
		return ErrMissingSubmissionID
	}

	if err := deps.SubmissionStore.Delete(ctx, id); err != nil {
		return err
	}
	if err := deps.BookingStore.DeleteBySubmissionID(ctx, id); err != nil {
		return err
	}

	slog.Info("submission_event", "event", "submission_deleted", "submission_id", id)
	return nil
}
