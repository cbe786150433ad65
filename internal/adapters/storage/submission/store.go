package submission

import (
	"context"

	domain "peakdispatch/internal/domain/submission"
)

// Store persists Submission records.
type Store interface {
	// List returns all submissions in insertion order.
	List(ctx context.Context) ([]domain.Submission, error)
	// Add appends a new submission.
	Add(ctx context.Context, value domain.Submission) error
	// Delete removes the submission with the given id. An absent id is a
	// no-op, not an error.
	Delete(ctx context.Context, id string) error
}
