package content

import (
	"context"

	domain "peakdispatch/internal/domain/content"
)

// Store persists the site copy document.
type Store interface {
	// Get returns the stored document, or an empty document if none exists yet.
	Get(ctx context.Context) (domain.Content, error)
	// Save overwrites the stored document.
	Save(ctx context.Context, value domain.Content) error
	// Update applies a mutation to the stored document and persists the
	// result as one atomic cycle. Concurrent updates cannot drop each
	// other's changes.
	Update(ctx context.Context, apply func(*domain.Content)) (domain.Content, error)
}
