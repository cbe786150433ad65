package projections

import (
	"context"
	"testing"
	"time"

	domainBooking "peakdispatch/internal/domain/booking"
	domainContent "peakdispatch/internal/domain/content"
	domainSubmission "peakdispatch/internal/domain/submission"
)

type mockContentReader struct {
	doc domainContent.Content
}

func (m *mockContentReader) Get(_ context.Context) (domainContent.Content, error) {
	return m.doc, nil
}

type mockSubmissionLister struct {
	subs []domainSubmission.Submission
}

func (m *mockSubmissionLister) List(_ context.Context) ([]domainSubmission.Submission, error) {
	return m.subs, nil
}

type mockBookingLister struct {
	bookings []domainBooking.Booking
}

func (m *mockBookingLister) List(_ context.Context) ([]domainBooking.Booking, error) {
	return m.bookings, nil
}

func day(d int) time.Time {
	return time.Date(2026, 5, d, 0, 0, 0, 0, time.UTC)
}

// TestQueryGetDashboard_SubmissionsNewestFirst tests descending createdAt order.
func TestQueryGetDashboard_SubmissionsNewestFirst(t *testing.T) {
	deps := GetDashboardDeps{
		ContentStore: &mockContentReader{},
		SubmissionStore: &mockSubmissionLister{subs: []domainSubmission.Submission{
			{ID: "old", CreatedAt: day(1)},
			{ID: "new", CreatedAt: day(3)},
			{ID: "mid", CreatedAt: day(2)},
		}},
		BookingStore: &mockBookingLister{},
	}

	result, err := QueryGetDashboard(context.Background(), deps)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := []string{result.Submissions[0].ID, result.Submissions[1].ID, result.Submissions[2].ID}
	want := []string{"new", "mid", "old"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d: expected %s, got %s", i, want[i], got[i])
		}
	}
}

// TestQueryGetDashboard_BookingsByMeetingDateWithFallback tests ascending
// meeting order with createdAt fallback.
func TestQueryGetDashboard_BookingsByMeetingDateWithFallback(t *testing.T) {
	deps := GetDashboardDeps{
		ContentStore:    &mockContentReader{},
		SubmissionStore: &mockSubmissionLister{},
		BookingStore: &mockBookingLister{bookings: []domainBooking.Booking{
			{ID: "late", SubmissionID: "s1", MeetingDate: "2026-05-20", CreatedAt: day(1)},
			{ID: "nodate", SubmissionID: "s2", CreatedAt: day(5)},
			{ID: "soon", SubmissionID: "s3", MeetingDate: "2026-05-02", CreatedAt: day(1)},
		}},
	}

	result, err := QueryGetDashboard(context.Background(), deps)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := []string{result.Bookings[0].ID, result.Bookings[1].ID, result.Bookings[2].ID}
	want := []string{"soon", "nodate", "late"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d: expected %s, got %s", i, want[i], got[i])
		}
	}
}

// TestQueryGetDashboard_IncludesContent tests that the content document rides along.
func TestQueryGetDashboard_IncludesContent(t *testing.T) {
	deps := GetDashboardDeps{
		ContentStore:    &mockContentReader{doc: domainContent.Content{HeroTitle: "Hi"}},
		SubmissionStore: &mockSubmissionLister{},
		BookingStore:    &mockBookingLister{},
	}
	result, err := QueryGetDashboard(context.Background(), deps)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Content.HeroTitle != "Hi" {
		t.Errorf("expected content included, got %+v", result.Content)
	}
}
