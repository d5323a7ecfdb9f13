package sim

import (
	"errors"
	"fmt"
)

// Domain errors for simulation operations.
var (
	// ErrInvalidState indicates a body position or velocity became NaN or Inf.
	ErrInvalidState = errors.New("sim: invalid state (NaN or Inf detected)")

	// ErrNoBodies indicates a world without any atom.
	ErrNoBodies = errors.New("sim: world has no bodies")

	// ErrInvalidConfig indicates run parameters outside their valid range.
	ErrInvalidConfig = errors.New("sim: invalid configuration")
)

// SimError wraps an error with the frame it occurred on.
type SimError struct {
	Frame   int
	Message string
	Wrapped error
}

func (e *SimError) Error() string {
	return fmt.Sprintf("frame %d: %s", e.Frame, e.Message)
}

func (e *SimError) Unwrap() error {
	return e.Wrapped
}
