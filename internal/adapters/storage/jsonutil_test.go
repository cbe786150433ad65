package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type testDoc struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// TestReadJSONFile_MissingFileKeepsFallback tests that a missing file leaves
// the caller's value untouched.
func TestReadJSONFile_MissingFileKeepsFallback(t *testing.T) {
	doc := testDoc{Name: "fallback"}
	ReadJSONFile(filepath.Join(t.TempDir(), "absent.json"), &doc)
	if doc.Name != "fallback" {
		t.Errorf("expected fallback value, got %q", doc.Name)
	}
}

// TestReadJSONFile_CorruptFileKeepsFallback tests recovery from a corrupt file.
func TestReadJSONFile_CorruptFileKeepsFallback(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corrupt.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}
	doc := testDoc{Name: "fallback"}
	ReadJSONFile(path, &doc)
	if doc.Name != "fallback" {
		t.Errorf("expected fallback value, got %q", doc.Name)
	}
}

// TestWriteThenRead tests the round trip and pretty formatting.
func TestWriteThenRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.json")
	if err := WriteJSONFile(path, testDoc{Name: "peak", Count: 2}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if !strings.Contains(string(raw), "\n  \"name\"") {
		t.Errorf("expected pretty-printed output, got %q", string(raw))
	}

	var doc testDoc
	ReadJSONFile(path, &doc)
	if doc.Name != "peak" || doc.Count != 2 {
		t.Errorf("expected round-tripped doc, got %+v", doc)
	}
}

// TestLockFor_SamePathSameMutex tests that a path maps to one mutex.
func TestLockFor_SamePathSameMutex(t *testing.T) {
	a := LockFor("/data/submissions.json")
	b := LockFor("/data/submissions.json")
	if a != b {
		t.Error("expected the same mutex for the same path")
	}
	if a == LockFor("/data/bookings.json") {
		t.Error("expected distinct mutexes for distinct paths")
	}
}
