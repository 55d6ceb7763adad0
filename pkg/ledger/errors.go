package ledger

import (
	"errors"
	"fmt"
)

// ErrNotFound signals that no record with the requested id exists.
var ErrNotFound = errors.New("record not found")

// ValidationError reports user input that fails a precondition. No mutation
// takes place when one is returned.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// Validationf builds a ValidationError from a format string.
func Validationf(format string, args ...any) *ValidationError {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// GuardedDeletionError rejects direct deletion or edit of a record the
// piggy-bank engine mirrored into the ledger, pointing at the legal path.
type GuardedDeletionError struct {
	Guidance string
}

func (e *GuardedDeletionError) Error() string {
	return e.Guidance
}

// MalformedBackupError reports a backup document that failed structural
// validation. The live store is never touched when one is returned.
type MalformedBackupError struct {
	Cause error
}

func (e *MalformedBackupError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("invalid backup: %v", e.Cause)
	}
	return "invalid backup"
}

func (e *MalformedBackupError) Unwrap() error {
	return e.Cause
}

// PersistenceWriteError reports a failed durable-storage flush. It is
// non-fatal: the in-memory store remains the source of truth for the rest of
// the session.
type PersistenceWriteError struct {
	Cause error
}

func (e *PersistenceWriteError) Error() string {
	return fmt.Sprintf("persistence write failed: %v", e.Cause)
}

func (e *PersistenceWriteError) Unwrap() error {
	return e.Cause
}
