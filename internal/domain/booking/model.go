package booking

import (
	"errors"
	"time"
)

// Booking statuses offered by the admin dashboard. The status field stores
// whatever the admin submits, so these are UI presets rather than a closed set.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// StatusOptions lists the statuses shown in the dashboard select.
var StatusOptions = []string{StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled}

// Domain errors
var (
	ErrMissingID           = errors.New("booking id cannot be empty")
	ErrMissingSubmissionID = errors.New("booking submissionId cannot be empty")
)

// meetingDateLayout is the wire format of the intake form's date input.
const meetingDateLayout = "2006-01-02"

// Booking is a meeting request attached to a submission. At most one booking
// is created per submission, and only when the form carried meeting fields.
type Booking struct {
	ID           string    `json:"id"`
	SubmissionID string    `json:"submissionId"`
	CreatedAt    time.Time `json:"createdAt"`
	MeetingDate  string    `json:"meetingDate"`
	TimeSlot     string    `json:"timeSlot"`
	Status       string    `json:"status"`
}

// Validate checks if the Booking has valid data.
// PRE: Booking struct is populated
// POST: Returns nil if valid, error otherwise
func (b *Booking) Validate() error {
	if b.ID == "" {
		return ErrMissingID
	}
	if b.SubmissionID == "" {
		return ErrMissingSubmissionID
	}
	return nil
}

// HasSchedule returns true if the booking carries a meeting date or time slot.
// INVARIANT: Booking fields are not mutated
func (b *Booking) HasSchedule() bool {
	return b.MeetingDate != "" || b.TimeSlot != ""
}

// SortKey returns the time the dashboard orders bookings by: the parsed
// meeting date when present and well-formed, otherwise CreatedAt.
// INVARIANT: Booking fields are not mutated
func (b *Booking) SortKey() time.Time {
	if b.MeetingDate != "" {
		if t, err := time.Parse(meetingDateLayout, b.MeetingDate); err == nil {
			return t
		}
	}
	return b.CreatedAt
}
