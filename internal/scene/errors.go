package scene

import (
	"errors"
	"fmt"
)

// Domain errors for loop and scene operations.
var (
	// ErrInvalidConfig indicates a run configuration with out-of-range values.
	ErrInvalidConfig = errors.New("scene: invalid run configuration")

	// ErrUnknownScene indicates a scene name missing from the registry.
	ErrUnknownScene = errors.New("scene: unknown scene")

	// ErrStopped indicates Run was called on a loop that was already stopped.
	ErrStopped = errors.New("scene: loop stopped")
)

// FrameError wraps a backend error with the frame it happened on.
type FrameError struct {
	Frame   int
	Wrapped error
}

func (e *FrameError) Error() string {
	return fmt.Sprintf("frame %d: %v", e.Frame, e.Wrapped)
}

func (e *FrameError) Unwrap() error {
	return e.Wrapped
}
