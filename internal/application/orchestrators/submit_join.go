package orchestrators

import (
	"context"
	"log/slog"
	"time"

	domainBooking "peakdispatch/internal/domain/booking"
	domainSubmission "peakdispatch/internal/domain/submission"
)

// SubmissionStoreForJoin defines the store interface needed by SubmitJoin.
type SubmissionStoreForJoin interface {
	Add(ctx context.Context, value domainSubmission.Submission) error
}

// BookingStoreForJoin defines the store interface needed by SubmitJoin.
type BookingStoreForJoin interface {
	Add(ctx context.Context, value domainBooking.Booking) error
}

// SubmitJoinInput carries the public intake form fields.
type SubmitJoinInput struct {
	FirstName     string
	LastName      string
	Email         string
	Phone         string
	Company       string
	Country       string
	FleetSize     string
	EquipmentType string
	HearAbout     string
	Notes         string
	MeetingDate   string
	TimeSlot      string
}

// SubmitJoinDeps holds dependencies for SubmitJoin.
type SubmitJoinDeps struct {
	SubmissionStore SubmissionStoreForJoin
	BookingStore    BookingStoreForJoin
	Notify          NotifySubmissionDeps
	GenerateID      func() string
	Now             func() time.Time
}

// SubmitJoinResult carries the created records. Booking is nil when the form
// had no meeting fields.
type SubmitJoinResult struct {
	Submission domainSubmission.Submission
	Booking    *domainBooking.Booking
}

// ExecuteSubmitJoin creates a submission, an optional linked booking, and
// fires the operator notification. Notification failures are logged and never
// surfaced — the applicant's flow succeeds regardless of email outcome.
// PRE: Input fields are raw form values; empty strings are stored as-is
// POST: Submission persisted; booking persisted iff MeetingDate or TimeSlot non-empty
func ExecuteSubmitJoin(ctx context.Context, input SubmitJoinInput, deps SubmitJoinDeps) (SubmitJoinResult, error) {
	sub := domainSubmission.Submission{
		ID:            deps.GenerateID(),
		CreatedAt:     deps.Now(),
		FirstName:     input.FirstName,
		LastName:      input.LastName,
		Email:         input.Email,
		Phone:         input.Phone,
		Company:       input.Company,
		Country:       input.Country,
		FleetSize:     input.FleetSize,
		EquipmentType: input.EquipmentType,
		HearAbout:     input.HearAbout,
		Notes:         input.Notes,
	}
	if err := deps.SubmissionStore.Add(ctx, sub); err != nil {
		return SubmitJoinResult{}, err
	}

	var bk *domainBooking.Booking
	if input.MeetingDate != "" || input.TimeSlot != "" {
		b := domainBooking.Booking{
			ID:           deps.GenerateID(),
			SubmissionID: sub.ID,
			CreatedAt:    deps.Now(),
			MeetingDate:  input.MeetingDate,
			TimeSlot:     input.TimeSlot,
			Status:       domainBooking.StatusPending,
		}
		if err := deps.BookingStore.Add(ctx, b); err != nil {
			return SubmitJoinResult{}, err
		}
		bk = &b
	}

	if err := ExecuteNotifySubmission(ctx, sub, bk, deps.Notify); err != nil {
		slog.Error("notify_failed", "submission_id", sub.ID, "error", err)
	} else {
		slog.Info("submission_event", "event", "submission_created", "submission_id", sub.ID, "booking", bk != nil)
	}

	return SubmitJoinResult{Submission: sub, Booking: bk}, nil
}
