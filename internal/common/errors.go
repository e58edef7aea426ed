// Package common defines shared constants and sentinel errors used across
// the BoardKeeper server, client and CLI. Callers should use errors.Is to
// match these values.
package common

import (
	"errors"
)

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")
	ErrorConflict = errors.New("already exists")
	ErrorStore    = errors.New("db error")

	// Service-level errors.
	ErrorUnauthorized = errors.New("unauthorized")
	ErrorInvalidData  = errors.New("invalid data")
	ErrorInternal     = errors.New("internal error")
)

// StoreError wraps an unexpected persistence failure. It matches ErrorStore
// with errors.Is and keeps the driver error reachable through Unwrap.
type StoreError struct {
	Op  string
	Err error
}

// NewStoreError wraps err as a StoreError for the named operation.
func NewStoreError(op string, err error) error {
	return &StoreError{Op: op, Err: err}
}

func (e *StoreError) Error() string {
	if e.Op == "" {
		return "db error: " + e.Err.Error()
	}
	return "db error: " + e.Op + ": " + e.Err.Error()
}

func (e *StoreError) Unwrap() error { return e.Err }

func (e *StoreError) Is(target error) bool { return target == ErrorStore }

// Kind is the coarse error category exposed to callers of the command surface.
type Kind string

const (
	KindNone         Kind = ""
	KindNotFound     Kind = "not_found"
	KindUnauthorized Kind = "unauthorized"
	KindInvalidData  Kind = "invalid_data"
	KindConflict     Kind = "conflict"
	KindStore        Kind = "store"
	KindInternal     Kind = "internal"
)

// KindOf classifies err. Conflict is checked before Store because a
// unique-constraint violation is reported as both.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, ErrorNotFound):
		return KindNotFound
	case errors.Is(err, ErrorUnauthorized):
		return KindUnauthorized
	case errors.Is(err, ErrorInvalidData):
		return KindInvalidData
	case errors.Is(err, ErrorConflict):
		return KindConflict
	case errors.Is(err, ErrorStore):
		return KindStore
	default:
		return KindInternal
	}
}
