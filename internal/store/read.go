package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/roach88/stockdb/internal/stock"
)

// Columns are selected explicitly in stock.Columns order rather than with
// SELECT *, because stock.FromRow scans positionally.
var lookupSQL = fmt.Sprintf(
	"SELECT %s FROM stocks WHERE symbol = ?",
	strings.Join(stock.Columns, ", "),
)

// Lookup returns the stock for a symbol, or ok=false if no row matches.
// Absence is a normal result, not an error.
//
// Lookup takes no lock: it may run concurrently with an in-flight
// transaction and will observe either the pre- or post-commit state,
// never a partial row (WAL gives readers a consistent snapshot).
//
// If duplicate symbols were inserted in violation of the Insert contract,
// Lookup returns whichever matching row the engine yields first; which one
// that is is unspecified and must not be relied upon.
func (s *Store) Lookup(ctx context.Context, symbol string) (stock.Stock, bool, error) {
	return lookupRow(s.db.QueryRowContext(ctx, lookupSQL, symbol))
}

func lookupRow(row *sql.Row) (stock.Stock, bool, error) {
	st, err := stock.FromRow(row)
	if errors.Is(err, sql.ErrNoRows) {
		return stock.Stock{}, false, nil
	}
	if err != nil {
		return stock.Stock{}, false, &StoreError{Kind: KindStorage, Op: "lookup", Err: err}
	}
	return st, true, nil
}
