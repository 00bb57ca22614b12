package rotating

import (
	"errors"
	"fmt"
)

var (
	// ErrRotationInProgress is routine under load (scheduler and admin
	// racing); callers should treat it as "try again later".
	ErrRotationInProgress = errors.New("a rotation is already running")
	// ErrQueueEmpty means a queue-driven rotation found no head entry.
	ErrQueueEmpty = errors.New("rotation queue is empty")
	// ErrTargetNotFound rejects an emergency rotation against an unknown
	// restaurant.
	ErrTargetNotFound = errors.New("rotation target not found")
	// ErrTargetAlreadyFeatured rejects rotating to the restaurant that is
	// already featured.
	ErrTargetAlreadyFeatured = errors.New("rotation target is already featured")
	ErrConfigMissing         = errors.New("rotation config not found")
)

// RotationError adds the trigger context to a base error.
type RotationError struct {
	Err          error
	RotationType string
	Details      string
}

func (e *RotationError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *RotationError) Unwrap() error {
	return e.Err
}
