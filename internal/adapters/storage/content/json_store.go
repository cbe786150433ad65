package content

import (
	"context"

	"peakdispatch/internal/adapters/storage"
	domain "peakdispatch/internal/domain/content"
)

// JSONStore implements Store over a single pretty-printed JSON file.
type JSONStore struct {
	path string
}

// NewJSONStore creates a JSONStore backed by the given file path.
func NewJSONStore(path string) *JSONStore {
	return &JSONStore{path: path}
}

// Get loads the document, falling back to an empty document when the file is
// missing or corrupt.
// POST: Returns the stored document or the zero value
func (s *JSONStore) Get(_ context.Context) (domain.Content, error) {
	mu := storage.LockFor(s.path)
	mu.Lock()
	defer mu.Unlock()

	var c domain.Content
	storage.ReadJSONFile(s.path, &c)
	return c, nil
}

// Save overwrites the document file.
// PRE: value has been merged by the caller
// POST: File holds the new document
func (s *JSONStore) Save(_ context.Context, value domain.Content) error {
	mu := storage.LockFor(s.path)
	mu.Lock()
	defer mu.Unlock()

	return storage.WriteJSONFile(s.path, value)
}

// Update loads the document, applies the mutation, and writes the result back
// while holding the file's lock for the whole cycle.
// POST: The persisted document reflects this mutation applied to the latest
// stored state; concurrent updates are serialized
func (s *JSONStore) Update(_ context.Context, apply func(*domain.Content)) (domain.Content, error) {
	mu := storage.LockFor(s.path)
	mu.Lock()
	defer mu.Unlock()

	var c domain.Content
	storage.ReadJSONFile(s.path, &c)
	apply(&c)
	if err := storage.WriteJSONFile(s.path, c); err != nil {
		return domain.Content{}, err
	}
	return c, nil
}
