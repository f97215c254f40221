package ledger

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation matches any *ValidationError
	ErrValidation = errors.New("invalid task")
	// ErrLocked matches any *LockedError
	ErrLocked = errors.New("task creation is locked for today")
	// ErrNotFound matches any *NotFoundError
	ErrNotFound = errors.New("task not found")
)

// ValidationError is returned when a candidate task is rejected.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// LockedError is returned by AddTask once a task has been completed on the ledger's day.
type LockedError struct {
	Date string
}

func (e *LockedError) Error() string {
	return fmt.Sprintf("cannot add tasks for %s: a task has already been completed", e.Date)
}

func (e *LockedError) Is(target error) bool {
	return target == ErrLocked
}

// NotFoundError is returned for operations on an unknown task id.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("task with id %s not found", e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}
