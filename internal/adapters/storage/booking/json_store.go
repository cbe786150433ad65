package booking

import (
	"context"

	"peakdispatch/internal/adapters/storage"
	domain "peakdispatch/internal/domain/booking"
)

// JSONStore implements Store over a pretty-printed JSON array file.
type JSONStore struct {
	path string
}

// NewJSONStore creates a JSONStore backed by the given file path.
func NewJSONStore(path string) *JSONStore {
	return &JSONStore{path: path}
}

// List returns all bookings, falling back to an empty collection when the
// file is missing or corrupt.
// POST: Returns records in insertion order
func (s *JSONStore) List(_ context.Context) ([]domain.Booking, error) {
	mu := storage.LockFor(s.path)
	mu.Lock()
	defer mu.Unlock()

	return s.load(), nil
}

// Add appends a booking and persists the collection.
// PRE: value has been validated
// POST: Record is appended and the file rewritten
func (s *JSONStore) Add(_ context.Context, value domain.Booking) error {
	mu := storage.LockFor(s.path)
	mu.Lock()
	defer mu.Unlock()

	bookings := s.load()
	bookings = append(bookings, value)
	return storage.WriteJSONFile(s.path, bookings)
}

// UpdateStatus replaces the status on the matching booking. Empty status
// keeps the stored value; an unknown id leaves the collection unchanged.
// POST: Matching booking has the new status, other fields untouched
func (s *JSONStore) UpdateStatus(_ context.Context, id, status string) error {
	mu := storage.LockFor(s.path)
	mu.Lock()
	defer mu.Unlock()

	bookings := s.load()
	for i := range bookings {
		if bookings[i].ID == id && status != "" {
			bookings[i].Status = status
		}
	}
	return storage.WriteJSONFile(s.path, bookings)
}

// DeleteBySubmissionID removes all bookings referencing the submission.
// POST: No booking with the given submissionId remains
func (s *JSONStore) DeleteBySubmissionID(_ context.Context, submissionID string) error {
	mu := storage.LockFor(s.path)
	mu.Lock()
	defer mu.Unlock()

	bookings := s.load()
	kept := bookings[:0]
	for _, b := range bookings {
		if b.SubmissionID != submissionID {
			kept = append(kept, b)
		}
	}
	return storage.WriteJSONFile(s.path, kept)
}

func (s *JSONStore) load() []domain.Booking {
	bookings := []domain.Booking{}
	storage.ReadJSONFile(s.path, &bookings)
	return bookings
}
