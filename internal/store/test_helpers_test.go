package store

import (
	"path/filepath"
	"testing"

	"github.com/roach88/dinofacts/internal/dino"
)

// createTestStore creates a new store in a temporary directory.
func createTestStore(t *testing.T, opts ...Option) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path, opts...)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// createTestRecord creates a record with minimal required fields.
func createTestRecord(id, name string, mya ...int64) dino.Record {
	return dino.Record{
		DinosaurID:     id,
		Name:           name,
		Pronunciation:  name,
		LengthInMeters: 1,
		Info:           name + " existed.",
		Period:         "Late Cretaceous",
		Mya:            mya,
	}
}
