package submission

import (
	"testing"
	"time"
)

// TestFullName tests the joined applicant name.
func TestFullName(t *testing.T) {
	s := Submission{FirstName: "Ana", LastName: "Rivera"}
	if got := s.FullName(); got != "Ana Rivera" {
		t.Errorf("expected 'Ana Rivera', got %q", got)
	}
	s = Submission{FirstName: "Ana"}
	if got := s.FullName(); got != "Ana" {
		t.Errorf("expected 'Ana', got %q", got)
	}
	s = Submission{}
	if got := s.FullName(); got != "" {
		t.Errorf("expected empty name, got %q", got)
	}
}

// TestValidate tests required submission fields.
func TestValidate(t *testing.T) {
	s := Submission{ID: "s1", CreatedAt: time.Now()}
	if err := s.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	s = Submission{CreatedAt: time.Now()}
	if err := s.Validate(); err != ErrMissingID {
		t.Errorf("expected ErrMissingID, got %v", err)
	}
	s = Submission{ID: "s1"}
	if err := s.Validate(); err != ErrMissingCreatedAt {
		t.Errorf("expected ErrMissingCreatedAt, got %v", err)
	}
}
