package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/roach88/stockdb/internal/stock"
)

// Statements are generated once from the stock column list, so the schema
// contract lives in exactly one place. Values are always bound through
// placeholders - never interpolated into statement text - so symbols from
// untrusted input cannot inject SQL.
var (
	insertSQL = fmt.Sprintf(
		"INSERT INTO stocks (%s) VALUES (%s)",
		strings.Join(stock.Columns, ", "),
		placeholders(len(stock.Columns)),
	)
	updateSQL = fmt.Sprintf(
		"UPDATE stocks SET %s WHERE symbol = ?",
		setClause(stock.Columns),
	)
)

func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}

func setClause(columns []string) string {
	assignments := make([]string, len(columns))
	for i, col := range columns {
		assignments[i] = col + " = ?"
	}
	return strings.Join(assignments, ", ")
}

// Tx is the write handle passed to a WithTransaction action. It is only
// valid for the duration of that action; the store rolls back or commits
// the underlying transaction when the action returns.
type Tx struct {
	tx *sql.Tx
}

// WithTransaction runs action inside a single serialized transaction.
//
// The store's write mutex is acquired first and held through the final
// commit or rollback, so no other transaction's statements can interleave
// with this one and commit order matches lock-acquisition order. The mutex
// is released on every exit path.
//
// If action returns nil the transaction is committed; a commit failure is
// surfaced as a STORAGE error. If action returns an error the transaction
// is rolled back and the action's error is returned unchanged - the store
// never swallows or rewraps a failure raised inside the scope. No retry is
// attempted at this layer; retry policy belongs to the caller.
//
// ctx is observed when the transaction begins; the mutex acquisition
// itself does not time out.
func (s *Store) WithTransaction(ctx context.Context, action func(tx *Tx) error) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	sqlTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return &StoreError{Kind: KindStorage, Op: "begin", Err: err}
	}
	defer sqlTx.Rollback() // No-op if committed

	if err := action(&Tx{tx: sqlTx}); err != nil {
		return err
	}

	if err := sqlTx.Commit(); err != nil {
		return &StoreError{Kind: KindStorage, Op: "commit", Err: err}
	}
	return nil
}

// Insert adds a stock row. The symbol must not already exist in the table;
// the schema declares no uniqueness constraint, so a duplicate insert is a
// caller error the engine will not catch.
func (tx *Tx) Insert(ctx context.Context, st stock.Stock) error {
	if _, err := tx.tx.ExecContext(ctx, insertSQL, st.Values()...); err != nil {
		return &StoreError{Kind: KindStorage, Op: "insert", Err: err}
	}
	return nil
}

// Update overwrites every column of the row matching the stock's symbol.
// If no row matches, the update is a silent no-op: the engine reports zero
// rows affected and that is not surfaced as an error. Callers must not
// read success as proof the row exists - and mutating Symbol before
// calling Update makes the row unfindable, not renamed.
func (tx *Tx) Update(ctx context.Context, st stock.Stock) error {
	args := append(st.Values(), st.Symbol)
	if _, err := tx.tx.ExecContext(ctx, updateSQL, args...); err != nil {
		return &StoreError{Kind: KindStorage, Op: "update", Err: err}
	}
	return nil
}

// Lookup reads a row through the open transaction, so the action sees its
// own uncommitted writes. Same contract as Store.Lookup otherwise.
func (tx *Tx) Lookup(ctx context.Context, symbol string) (stock.Stock, bool, error) {
	return lookupRow(tx.tx.QueryRowContext(ctx, lookupSQL, symbol))
}
