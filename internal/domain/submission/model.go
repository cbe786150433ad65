package submission

import (
	"errors"
	"strings"
	"time"
)

// Domain errors
var (
	ErrMissingID        = errors.New("submission id cannot be empty")
	ErrMissingCreatedAt = errors.New("submission createdAt must be set")
)

// Submission is a lead-intake record from the public onboarding form.
// Records are immutable once created; the admin can only delete them.
type Submission struct {
	ID            string    `json:"id"`
	CreatedAt     time.Time `json:"createdAt"`
	FirstName     string    `json:"firstName"`
	LastName      string    `json:"lastName"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	Company       string    `json:"company"`
	Country       string    `json:"country"`
	FleetSize     string    `json:"fleetSize"`
	EquipmentType string    `json:"equipmentType"`
	HearAbout     string    `json:"hearAbout"`
	Notes         string    `json:"notes"`
}

// Validate checks if the Submission has valid data.
// PRE: Submission struct is populated
// POST: Returns nil if valid, error otherwise
func (s *Submission) Validate() error {
	if s.ID == "" {
		return ErrMissingID
	}
	if s.CreatedAt.IsZero() {
		return ErrMissingCreatedAt
	}
	return nil
}

// FullName returns the applicant's first and last name joined with a space.
// INVARIANT: Submission fields are not mutated
func (s *Submission) FullName() string {
	return strings.TrimSpace(s.FirstName + " " + s.LastName)
}
