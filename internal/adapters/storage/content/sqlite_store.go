package content

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"sync"

	domain "peakdispatch/internal/domain/content"
)

// SQLiteStore implements Store using SQLite. The document is kept as a single
// JSON row so both backends share one wire shape. The mutex serializes
// read-modify-write cycles; a deferred transaction alone would let two
// updates read the same snapshot before either commits.
type SQLiteStore struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteStore creates a new SQLiteStore.
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// Get retrieves the content document.
// POST: Returns the stored document, or the zero value when no row exists
func (s *SQLiteStore) Get(ctx context.Context) (domain.Content, error) {
	var raw string
	err := s.db.QueryRowContext(ctx, `SELECT doc FROM content WHERE id = 1`).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Content{}, nil
	}
	if err != nil {
		return domain.Content{}, err
	}

	var c domain.Content
	if err := json.Unmarshal([]byte(raw), &c); err != nil {
		return domain.Content{}, err
	}
	return c, nil
}

// Save upserts the content document.
// PRE: value has been merged by the caller
// POST: The single content row holds the new document
func (s *SQLiteStore) Save(ctx context.Context, value domain.Content) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO content (id, doc) VALUES (1, ?)
		 ON CONFLICT(id) DO UPDATE SET doc=excluded.doc`, string(raw))
	return err
}

// Update applies a mutation to the stored document and persists the result as
// one serialized cycle.
// POST: The persisted document reflects this mutation applied to the latest
// stored state; concurrent updates are serialized
func (s *SQLiteStore) Update(ctx context.Context, apply func(*domain.Content)) (domain.Content, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := s.Get(ctx)
	if err != nil {
		return domain.Content{}, err
	}
	apply(&c)
	if err := s.Save(ctx, c); err != nil {
		return domain.Content{}, err
	}
	return c, nil
}
