package pocketbook

import (
	"errors"
	"fmt"
)

// ErrCancelled reports that the user declined a confirmation. It is not a
// failure: the operation is simply a no-op.
var ErrCancelled = errors.New("operation cancelled")

// ValidationError rejects a mutation before any state change.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NotFoundError reports a lookup miss for a transaction or a goal.
type NotFoundError struct {
	Kind string // "transaction" or "goal"
	Key  string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.Key)
}

// PersistenceError wraps a store failure. Callers log it and keep operating
// on the in-memory snapshot; it is never fatal.
type PersistenceError struct {
	Op  string // "load" or "save"
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence %s failed: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
