package orchestrators

import (
	"context"
	"strings"

	emailAdapter "peakdispatch/internal/adapters/email"
	"peakdispatch/internal/domain/booking"
	"peakdispatch/internal/domain/submission"
)

// notifySubject is the fixed subject line for operator notifications.
const notifySubject = "New PeakDispatch onboarding submission"

// NotifySubmissionDeps holds dependencies for NotifySubmission.
type NotifySubmissionDeps struct {
	EmailSender emailAdapter.Sender
	NotifyTo    string // Operator address receiving intake notifications
	FromAddress string
}

// ExecuteNotifySubmission sends the fixed-format operator notification for a
// new submission, including meeting details when a booking was created.
// Transport failures are the caller's to log; the intake flow never fails on
// them.
// PRE: sub has been persisted; bk is nil when no meeting was requested
// POST: One send was attempted against the configured sender
func ExecuteNotifySubmission(ctx context.Context, sub submission.Submission, bk *booking.Booking, deps NotifySubmissionDeps) error {
	req := emailAdapter.SendRequest{
		To:      []string{deps.NotifyTo},
		From:    deps.FromAddress,
		Subject: notifySubject,
		Text:    BuildSubmissionMessage(sub, bk),
	}
	_, err := deps.EmailSender.Send(ctx, req)
	return err
}

// BuildSubmissionMessage renders the plain-text notification body. Empty
// lines are dropped, so the meeting block only appears when scheduled.
// INVARIANT: Inputs are not mutated
func BuildSubmissionMessage(sub submission.Submission, bk *booking.Booking) string {
	notes := sub.Notes
	if notes == "" {
		notes = "(none)"
	}

	lines := []string{
		"New onboarding submission received:",
		"Name: " + sub.FullName(),
		"Company: " + sub.Company,
		"Email: " + sub.Email,
		"Phone: " + sub.Phone,
		"Country/State: " + sub.Country,
		"Fleet size: " + sub.FleetSize,
		"Equipment type: " + sub.EquipmentType,
		"Source: " + sub.HearAbout,
	}
	if bk != nil && bk.HasSchedule() {
		lines = append(lines, "Requested meeting:")
		if bk.MeetingDate != "" {
			lines = append(lines, "  Date: "+bk.MeetingDate)
		}
		if bk.TimeSlot != "" {
			lines = append(lines, "  Time slot: "+bk.TimeSlot)
		}
	}
	lines = append(lines, "Notes:", notes)

	return strings.Join(lines, "\n")
}
