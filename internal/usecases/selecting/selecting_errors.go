package selecting

import (
	"errors"
	"fmt"
)

var (
	// ErrNoCandidateFound means every retry attempt came back empty after
	// filtering. Callers treat it as a recoverable, per-draw failure.
	ErrNoCandidateFound = errors.New("no qualifying candidate found")
)

// SelectionError records how many attempts were burned before giving up.
type SelectionError struct {
	Err      error
	Attempts int
}

func (e *SelectionError) Error() string {
	return fmt.Sprintf("%s after %d attempts", e.Err.Error(), e.Attempts)
}

func (e *SelectionError) Unwrap() error {
	return e.Err
}
