package chain

import (
	"errors"
	"fmt"

	"github.com/philipparndt/gorig/internal/axis"
	"github.com/philipparndt/gorig/internal/geometry"
	"github.com/philipparndt/gorig/internal/preconditions"
)

// Error classes. Every error returned by a build unwraps to exactly one.
var (
	// ErrInput marks missing or empty required arguments.
	ErrInput = errors.New("input error")
	// ErrValidation marks geometric preconditions that are not met.
	ErrValidation = errors.New("validation error")
	// ErrDegenerateInput marks inputs that are ambiguous rather than wrong.
	ErrDegenerateInput = errors.New("degenerate input")
	// ErrHost marks failures reported by the host scene.
	ErrHost = errors.New("host error")
)

var (
	ErrMissingInput     = errors.New("missing input")
	ErrLengthMismatch   = errors.New("length mismatch")
	ErrChainBuilt       = errors.New("chain already built")
	ErrNotCollinear     = errors.New("positions are not collinear")
	ErrNotCoplanar      = errors.New("positions are not coplanar")
	ErrNotPerpendicular = errors.New("aim and twist vectors are not perpendicular")

	ErrInvalidAxisPair    = axis.ErrInvalidAxisPair
	ErrInsufficientPoints = preconditions.ErrInsufficientPoints
	ErrAllPointsCoincide  = preconditions.ErrAllPointsCoincide
	ErrCollinearPoints    = preconditions.ErrCollinearPoints
	ErrDegenerateVector   = geometry.ErrDegenerateVector
)

// Error is returned by every failed build. It unwraps to both its class and
// the underlying error.
type Error struct {
	Class error
	Mode  Mode
	State State
	Err   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s chain: %s while %s: %v", e.Mode, e.Class, e.State, e.Err)
}

func (e *Error) Unwrap() []error {
	return []error{e.Class, e.Err}
}

// classify maps an error to its class.
func classify(err error) error {
	switch {
	case errors.Is(err, ErrMissingInput),
		errors.Is(err, ErrLengthMismatch),
		errors.Is(err, ErrChainBuilt):
		return ErrInput
	case errors.Is(err, ErrAllPointsCoincide),
		errors.Is(err, ErrCollinearPoints),
		errors.Is(err, ErrDegenerateVector):
		return ErrDegenerateInput
	case errors.Is(err, ErrNotCollinear),
		errors.Is(err, ErrNotCoplanar),
		errors.Is(err, ErrNotPerpendicular),
		errors.Is(err, ErrInvalidAxisPair),
		errors.Is(err, ErrInsufficientPoints):
		return ErrValidation
	}
	return ErrHost
}
