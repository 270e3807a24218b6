package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/roach88/stockdb/internal/stock"
)

// newTestStore opens a store on a scratch file with the schema created.
func newTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	if err := s.CreateSchema(context.Background()); err != nil {
		t.Fatalf("CreateSchema() failed: %v", err)
	}
	return s
}

// mustInsert commits a single stock through a transaction.
func mustInsert(t *testing.T, s *Store, st stock.Stock) {
	t.Helper()
	err := s.WithTransaction(context.Background(), func(tx *Tx) error {
		return tx.Insert(context.Background(), st)
	})
	if err != nil {
		t.Fatalf("insert %q failed: %v", st.Symbol, err)
	}
}
