package storage

import (
	"encoding/json"
	"log/slog"
	"os"
	"sync"
)

// pathLocks serializes read-modify-write cycles per data file. Every JSON
// store must hold the file's lock for the whole cycle so concurrent requests
// cannot drop each other's writes.
var pathLocks sync.Map

// LockFor returns the mutex guarding the given data file path.
func LockFor(path string) *sync.Mutex {
	mu, _ := pathLocks.LoadOrStore(path, &sync.Mutex{})
	return mu.(*sync.Mutex)
}

// ReadJSONFile reads and decodes a JSON document into v.
// A missing or corrupt file is recovered locally: v is left untouched (the
// caller's zero value acts as the fallback) and the failure is logged.
// PRE: v is a non-nil pointer
// POST: v holds the decoded document, or its prior value on failure
func ReadJSONFile(path string, v any) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Warn("json_read_failed", "path", path, "error", err)
		}
		return
	}
	if err := json.Unmarshal(raw, v); err != nil {
		slog.Warn("json_parse_failed", "path", path, "error", err)
	}
}

// WriteJSONFile serializes v pretty-printed and overwrites the file.
// Failure propagates to the caller; there is no retry or rollback.
// PRE: v is JSON-serializable
// POST: File holds the 2-space indented document
func WriteJSONFile(path string, v any) error {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, raw, 0o644)
}
