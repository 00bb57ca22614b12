package queueing

import (
	"errors"
	"fmt"
)

var (
	// ErrAlreadyQueued means the restaurant already has a PENDING entry.
	ErrAlreadyQueued = errors.New("restaurant is already queued")
	// ErrAlreadyFeatured means the restaurant is currently featured and
	// cannot wait in the queue at the same time.
	ErrAlreadyFeatured = errors.New("restaurant is currently featured")
	ErrEntryNotFound   = errors.New("queue entry not found")
	// ErrCannotRemoveActive rejects removal of entries that already left
	// the PENDING state.
	ErrCannotRemoveActive = errors.New("only pending entries can be removed")
	ErrEntryNotPending    = errors.New("entry is not pending")
	// ErrInvalidOrder rejects a position outside [1..N] or a bulk order
	// whose position set is not exactly {1..N}.
	ErrInvalidOrder = errors.New("invalid queue order")
)

// QueueError carries the entry involved alongside the base error.
type QueueError struct {
	Err     error
	EntryID string
	Details string
}

func (e *QueueError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *QueueError) Unwrap() error {
	return e.Err
}

func NewQueueError(err error, entryID string, details string) *QueueError {
	return &QueueError{
		Err:     err,
		EntryID: entryID,
		Details: details,
	}
}
