package store

import (
	"errors"
	"fmt"
)

// Kind categorizes store errors.
type Kind string

const (
	// KindUnavailable indicates the backing file could not be opened or
	// configured. Fatal to the Store instance.
	KindUnavailable Kind = "STORAGE_UNAVAILABLE"

	// KindSchema indicates the DDL statement was rejected, typically
	// because the stocks table already exists.
	KindSchema Kind = "SCHEMA"

	// KindStorage indicates the engine rejected a statement (type
	// mismatch, I/O fault, constraint violation). Inside a transaction
	// scope this triggers a rollback before it reaches the caller.
	KindStorage Kind = "STORAGE"
)

// StoreError is an error surfaced by the storage engine, tagged with the
// operation that produced it.
//
// Note that lookup absence is NOT a StoreError: Lookup reports a missing
// row as a normal (zero, false, nil) result.
type StoreError struct {
	Kind Kind
	Op   string // "open", "create schema", "insert", ...
	Err  error  // underlying engine error
}

// Error implements the error interface.
func (e *StoreError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Op, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Op)
}

// Unwrap exposes the engine error for errors.Is/As chains.
func (e *StoreError) Unwrap() error {
	return e.Err
}

// IsUnavailable returns true if the error means the backing file could not
// be opened or configured. Uses errors.As to handle wrapped errors.
func IsUnavailable(err error) bool {
	var se *StoreError
	return errors.As(err, &se) && se.Kind == KindUnavailable
}

// IsSchemaError returns true if the error came from schema creation.
// Uses errors.As to handle wrapped errors.
func IsSchemaError(err error) bool {
	var se *StoreError
	return errors.As(err, &se) && se.Kind == KindSchema
}

// IsStorageError returns true if the engine rejected a statement.
// Uses errors.As to handle wrapped errors.
func IsStorageError(err error) bool {
	var se *StoreError
	return errors.As(err, &se) && se.Kind == KindStorage
}
