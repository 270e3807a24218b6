// Package stock defines the single record type managed by the store.
//
// A Stock is a plain value: a symbol plus its quantity and price. The
// package also owns the schema-order column mapping that the store's
// statements and row scanning depend on.
package stock

// Stock is one holding row. The zero value is a valid empty record.
//
// Symbol identifies the row; it is the lookup and update key. The store
// declares no uniqueness constraint, so inserting the same symbol twice is
// a caller error, not a guarded condition. Quantity and Price map to REAL
// columns and are therefore float64 end to end.
type Stock struct {
	Symbol   string
	Quantity float64
	Price    float64
}

// Columns lists the stocks table columns in schema order. Statement
// generation, Values, and FromRow all depend on this order; it must match
// the CREATE TABLE column order exactly.
var Columns = []string{"symbol", "quantity", "price"}

// Values returns the record's fields in Columns order, ready for
// placeholder binding.
func (s Stock) Values() []any {
	return []any{s.Symbol, s.Quantity, s.Price}
}

// RowScanner is the subset of *sql.Row / *sql.Rows needed to reconstruct a
// Stock.
type RowScanner interface {
	Scan(dest ...any) error
}

// FromRow reconstructs a Stock from a row selected in Columns order.
// The scan error (including sql.ErrNoRows) is returned unwrapped so
// callers can distinguish absence from failure.
func FromRow(row RowScanner) (Stock, error) {
	var s Stock
	if err := row.Scan(&s.Symbol, &s.Quantity, &s.Price); err != nil {
		return Stock{}, err
	}
	return s, nil
}
