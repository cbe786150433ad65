package orchestrators

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	emailAdapter "peakdispatch/internal/adapters/email"
	domainBooking "peakdispatch/internal/domain/booking"
	domainSubmission "peakdispatch/internal/domain/submission"
)

var fixedTime = time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

func fixedNow() time.Time { return fixedTime }

// seqID returns a generator producing id-1, id-2, ...
func seqID() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

type mockSubmissionStoreForJoin struct {
	added []domainSubmission.Submission
	err   error
}

func (m *mockSubmissionStoreForJoin) Add(_ context.Context, s domainSubmission.Submission) error {
	if m.err != nil {
		return m.err
	}
	m.added = append(m.added, s)
	return nil
}

type mockBookingStoreForJoin struct {
	added []domainBooking.Booking
}

func (m *mockBookingStoreForJoin) Add(_ context.Context, b domainBooking.Booking) error {
	m.added = append(m.added, b)
	return nil
}

// mockSender captures send requests and optionally fails.
type mockSender struct {
	sent []emailAdapter.SendRequest
	err  error
}

func (m *mockSender) Send(_ context.Context, req emailAdapter.SendRequest) (emailAdapter.SendResult, error) {
	m.sent = append(m.sent, req)
	if m.err != nil {
		return emailAdapter.SendResult{}, m.err
	}
	return emailAdapter.SendResult{MessageID: "msg-1", SentAt: fixedTime}, nil
}

func joinDeps(subs *mockSubmissionStoreForJoin, bks *mockBookingStoreForJoin, sender *mockSender) SubmitJoinDeps {
	return SubmitJoinDeps{
		SubmissionStore: subs,
		BookingStore:    bks,
		Notify: NotifySubmissionDeps{
			EmailSender: sender,
			NotifyTo:    "ops@peakdispatch.com",
			FromAddress: "PeakDispatch <noreply@peakdispatch.com>",
		},
		GenerateID: seqID(),
		Now:        fixedNow,
	}
}

// TestExecuteSubmitJoin_WithMeeting tests that meeting fields create a linked
// pending booking and trigger exactly one notification attempt.
func TestExecuteSubmitJoin_WithMeeting(t *testing.T) {
	subs := &mockSubmissionStoreForJoin{}
	bks := &mockBookingStoreForJoin{}
	sender := &mockSender{}

	result, err := ExecuteSubmitJoin(context.Background(), SubmitJoinInput{
		FirstName:   "A",
		LastName:    "B",
		Email:       "a@b.com",
		MeetingDate: "2026-05-01",
		TimeSlot:    "10:00",
	}, joinDeps(subs, bks, sender))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(subs.added) != 1 {
		t.Fatalf("expected 1 submission, got %d", len(subs.added))
	}
	if len(bks.added) != 1 {
		t.Fatalf("expected 1 booking, got %d", len(bks.added))
	}
	if bks.added[0].SubmissionID != subs.added[0].ID {
		t.Errorf("expected booking linked to submission, got %q vs %q", bks.added[0].SubmissionID, subs.added[0].ID)
	}
	if bks.added[0].Status != domainBooking.StatusPending {
		t.Errorf("expected status=pending, got %q", bks.added[0].Status)
	}
	if result.Booking == nil {
		t.Error("expected booking in result")
	}
	if len(sender.sent) != 1 {
		t.Errorf("expected 1 notification attempt, got %d", len(sender.sent))
	}
	if !result.Submission.CreatedAt.Equal(fixedTime) {
		t.Errorf("expected CreatedAt=%v, got %v", fixedTime, result.Submission.CreatedAt)
	}
}

// TestExecuteSubmitJoin_NoMeetingFields tests that no booking is created
// when both meeting fields are empty.
func TestExecuteSubmitJoin_NoMeetingFields(t *testing.T) {
	subs := &mockSubmissionStoreForJoin{}
	bks := &mockBookingStoreForJoin{}
	sender := &mockSender{}

	result, err := ExecuteSubmitJoin(context.Background(), SubmitJoinInput{
		FirstName: "A",
		Email:     "a@b.com",
	}, joinDeps(subs, bks, sender))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(bks.added) != 0 {
		t.Errorf("expected no bookings, got %d", len(bks.added))
	}
	if result.Booking != nil {
		t.Error("expected nil booking in result")
	}
	if len(sender.sent) != 1 {
		t.Errorf("expected notification even without booking, got %d attempts", len(sender.sent))
	}
}

// TestExecuteSubmitJoin_TimeSlotOnlyCreatesBooking tests the iff condition
// with a single meeting field.
func TestExecuteSubmitJoin_TimeSlotOnlyCreatesBooking(t *testing.T) {
	subs := &mockSubmissionStoreForJoin{}
	bks := &mockBookingStoreForJoin{}

	_, err := ExecuteSubmitJoin(context.Background(), SubmitJoinInput{
		TimeSlot: "14:00",
	}, joinDeps(subs, bks, &mockSender{}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(bks.added) != 1 {
		t.Fatalf("expected 1 booking, got %d", len(bks.added))
	}
	if bks.added[0].MeetingDate != "" || bks.added[0].TimeSlot != "14:00" {
		t.Errorf("unexpected booking fields: %+v", bks.added[0])
	}
}

// TestExecuteSubmitJoin_NotifyFailureDoesNotFailFlow tests that a transport
// error never reaches the applicant.
func TestExecuteSubmitJoin_NotifyFailureDoesNotFailFlow(t *testing.T) {
	subs := &mockSubmissionStoreForJoin{}
	bks := &mockBookingStoreForJoin{}
	sender := &mockSender{err: errors.New("smtp down")}

	result, err := ExecuteSubmitJoin(context.Background(), SubmitJoinInput{
		FirstName: "A",
	}, joinDeps(subs, bks, sender))
	if err != nil {
		t.Fatalf("expected success despite notify failure, got %v", err)
	}
	if result.Submission.ID == "" {
		t.Error("expected submission to be created")
	}
}

// TestExecuteSubmitJoin_StoreFailurePropagates tests that a storage write
// failure is fatal to the request.
func TestExecuteSubmitJoin_StoreFailurePropagates(t *testing.T) {
	subs := &mockSubmissionStoreForJoin{err: errors.New("disk full")}
	sender := &mockSender{}

	_, err := ExecuteSubmitJoin(context.Background(), SubmitJoinInput{
		FirstName: "A",
	}, joinDeps(subs, &mockBookingStoreForJoin{}, sender))
	if err == nil {
		t.Fatal("expected error from store failure")
	}
	if len(sender.sent) != 0 {
		t.Errorf("expected no notification after store failure, got %d", len(sender.sent))
	}
}

// TestExecuteSubmitJoin_UniqueIDs tests that submission and booking get
// distinct generated ids.
func TestExecuteSubmitJoin_UniqueIDs(t *testing.T) {
	subs := &mockSubmissionStoreForJoin{}
	bks := &mockBookingStoreForJoin{}

	result, err := ExecuteSubmitJoin(context.Background(), SubmitJoinInput{
		MeetingDate: "2026-06-01",
	}, joinDeps(subs, bks, &mockSender{}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Submission.ID == result.Booking.ID {
		t.Errorf("expected distinct ids, both were %q", result.Submission.ID)
	}
}
