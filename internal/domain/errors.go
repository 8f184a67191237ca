package domain

import (
	"fmt"
	"time"
)

// ConflictError reports a punch whose precondition is violated by existing
// data, such as starting work while another session is still open.
type ConflictError struct {
	Account AccountID
	Project string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("account %s is already clocked in on project %q; end that session first", e.Account, e.Project)
}

// StateError reports a transition that is invalid for the current punch
// state, such as resuming while not on break.
type StateError struct {
	Op    string
	State PunchState
}

func (e *StateError) Error() string {
	return fmt.Sprintf("cannot %s while %s", e.Op, e.State)
}

// BusyError reports that the document lock could not be acquired within the
// wait budget. The operation is safe to retry.
type BusyError struct {
	LockPath string
	Waited   time.Duration
}

func (e *BusyError) Error() string {
	return fmt.Sprintf("timeclock document is locked by another process (waited %s for %s)", e.Waited, e.LockPath)
}

// StorageError reports an I/O failure while persisting the document. The
// previous on-disk document is intact; the atomic replace either happened
// fully or not at all.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// FatalError reports an unreadable or corrupt document. It is not recovered
// automatically; the caller should restore from the most recent backup.
type FatalError struct {
	Path string
	Err  error
}

func (e *FatalError) Error() string {
	return fmt.Sprintf("timeclock document %s is unreadable: %v", e.Path, e.Err)
}

func (e *FatalError) Unwrap() error { return e.Err }

// ValidationError reports malformed input: a bad account id, an
// out-of-range closing day, non-monotonic timestamps.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
