package projections

import (
	"context"
	"sort"

	domainBooking "peakdispatch/internal/domain/booking"
	domainContent "peakdispatch/internal/domain/content"
	domainSubmission "peakdispatch/internal/domain/submission"
)

// SubmissionLister defines the store interface needed by the dashboard query.
type SubmissionLister interface {
	List(ctx context.Context) ([]domainSubmission.Submission, error)
}

// BookingLister defines the store interface needed by the dashboard query.
type BookingLister interface {
	List(ctx context.Context) ([]domainBooking.Booking, error)
}

// GetDashboardDeps holds dependencies for GetDashboard.
type GetDashboardDeps struct {
	ContentStore    ContentReader
	SubmissionStore SubmissionLister
	BookingStore    BookingLister
}

// GetDashboardResult carries the admin dashboard view data.
type GetDashboardResult struct {
	Content     domainContent.Content
	Submissions []domainSubmission.Submission // Newest first
	Bookings    []domainBooking.Booking       // Soonest meeting first
}

// QueryGetDashboard loads the content document, submissions sorted newest
// first, and bookings sorted ascending by meeting date with createdAt as the
// fallback key.
// POST: Input collections are not mutated in their stores
func QueryGetDashboard(ctx context.Context, deps GetDashboardDeps) (GetDashboardResult, error) {
	c, err := deps.ContentStore.Get(ctx)
	if err != nil {
		return GetDashboardResult{}, err
	}

	subs, err := deps.SubmissionStore.List(ctx)
	if err != nil {
		return GetDashboardResult{}, err
	}
	sort.SliceStable(subs, func(i, j int) bool {
		return subs[i].CreatedAt.After(subs[j].CreatedAt)
	})

	bookings, err := deps.BookingStore.List(ctx)
	if err != nil {
		return GetDashboardResult{}, err
	}
	sort.SliceStable(bookings, func(i, j int) bool {
		return bookings[i].SortKey().Before(bookings[j].SortKey())
	})

	return GetDashboardResult{
		Content:     c,
		Submissions: subs,
		Bookings:    bookings,
	}, nil
}
