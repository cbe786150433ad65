package submission

import (
	"context"

	"peakdispatch/internal/adapters/storage"
	domain "peakdispatch/internal/domain/submission"
)

// JSONStore implements Store over a pretty-printed JSON array file.
type JSONStore struct {
	path string
}

// NewJSONStore creates a JSONStore backed by the given file path.
func NewJSONStore(path string) *JSONStore {
	return &JSONStore{path: path}
}

// List returns all submissions, falling back to an empty collection when the
// file is missing or corrupt.
// POST: Returns records in insertion order
func (s *JSONStore) List(_ context.Context) ([]domain.Submission, error) {
	mu := storage.LockFor(s.path)
	mu.Lock()
	defer mu.Unlock()

	return s.load(), nil
}

// Add appends a submission and persists the collection.
// PRE: value has been validated
// POST: Record is appended and the file rewritten
func (s *JSONStore) Add(_ context.Context, value domain.Submission) error {
	mu := storage.LockFor(s.path)
	mu.Lock()
	defer mu.Unlock()

	subs := s.load()
	subs = append(subs, value)
	return storage.WriteJSONFile(s.path, subs)
}

// Delete removes the submission with the given id and persists the result.
// An absent id still rewrites the file, matching append-only collections that
// treat delete as a filter.
// POST: No record with the given id remains
func (s *JSONStore) Delete(_ context.Context, id string) error {
	mu := storage.LockFor(s.path)
	mu.Lock()
	defer mu.Unlock()

	subs := s.load()
	kept := subs[:0]
	for _, sub := range subs {
		if sub.ID != id {
			kept = append(kept, sub)
		}
	}
	return storage.WriteJSONFile(s.path, kept)
}

func (s *JSONStore) load() []domain.Submission {
	subs := []domain.Submission{}
	storage.ReadJSONFile(s.path, &subs)
	return subs
}
