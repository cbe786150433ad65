package orchestrators

import (
	"context"
	"log/slog"

	domainContent "peakdispatch/internal/domain/content"
)

// ContentStoreForUpdate defines the store interface needed by UpdateContent.
type ContentStoreForUpdate interface {
	Update(ctx context.Context, apply func(*domainContent.Content)) (domainContent.Content, error)
}

// UpdateContentDeps holds dependencies for UpdateContent.
type UpdateContentDeps struct {
	ContentStore ContentStoreForUpdate
}

// ExecuteUpdateContent merges a patch into the stored content document. The
// merge runs inside the store's update cycle, so concurrent requests cannot
// drop each other's patches.
// PRE: Nil patch fields mean "keep the stored value"
// POST: Merged document is persisted and returned
func ExecuteUpdateContent(ctx context.Context, patch domainContent.Patch, deps UpdateContentDeps) (domainContent.Content, error) {
	c, err := deps.ContentStore.Update(ctx, func(c *domainContent.Content) {
		c.ApplyPatch(patch)
	})
	if err != nil {
		return domainContent.Content{}, err
	}

	slog.Info("content_event", "event", "content_updated")
	return c, nil
}
