package projections

import (
	"context"
	"time"

	domainContent "peakdispatch/internal/domain/content"
)

// ContentReader defines the store interface needed by read-side queries.
type ContentReader interface {
	Get(ctx context.Context) (domainContent.Content, error)
}

// GetHomeDeps holds dependencies for GetHome.
type GetHomeDeps struct {
	ContentStore ContentReader
	Now          func() time.Time
}

// GetHomeResult carries the data for the public home page.
type GetHomeResult struct {
	Content    domainContent.Content
	FooterText string // FooterText with {year} already substituted
}

// QueryGetHome returns the site copy for the home page with the footer year
// filled in.
// POST: FooterText carries the current year in place of {year}
func QueryGetHome(ctx context.Context, deps GetHomeDeps) (GetHomeResult, error) {
	c, err := deps.ContentStore.Get(ctx)
	if err != nil {
		return GetHomeResult{}, err
	}
	return GetHomeResult{
		Content:    c,
		FooterText: c.FooterForYear(deps.Now().Year()),
	}, nil
}
