package chain

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/philipparndt/gorig/internal/geometry"
	"github.com/philipparndt/gorig/internal/preconditions"
)

// ArbitraryInput builds a chain with caller supplied joint orientations.
type ArbitraryInput struct {
	Positions    []r3.Vec
	Orientations []geometry.Euler
	// SkipLast leaves out the last position.
	SkipLast bool
	// ZeroOrientLast zeroes the orientation of the last created joint.
	ZeroOrientLast bool
}

type validateArbitraryStep struct {
	in ArbitraryInput
}

func (s *validateArbitraryStep) Name() string { return "validate arbitrary chain" }

func (s *validateArbitraryStep) State() State { return Validating }

func (s *validateArbitraryStep) Execute(ctx *Context) error {
	in := s.in
	if len(in.Positions) == 0 {
		return fmt.Errorf("%w: position list is empty", ErrMissingInput)
	}
	if len(in.Orientations) == 0 {
		return fmt.Errorf("%w: orientation list is empty", ErrMissingInput)
	}
	if len(in.Positions) != len(in.Orientations) {
		return fmt.Errorf("%w: %d positions, %d orientations", ErrLengthMismatch, len(in.Positions), len(in.Orientations))
	}

	end := len(in.Positions)
	if in.SkipLast {
		end--
	}
	if end < 1 {
		return fmt.Errorf("%w: nothing left to create after skipping the last position", ErrInsufficientPoints)
	}

	if preconditions.HasDuplicates(in.Positions) {
		ctx.Warn("some positions are overlapping")
	}

	ctx.Positions = in.Positions[:end]
	ctx.Orientations = in.Orientations[:end]
	ctx.ZeroLast = in.ZeroOrientLast
	return nil
}

// Arbitrary creates one joint per position and sets its orientation to the
// matching entry of in.Orientations. No orientation is computed.
func (b *Builder) Arbitrary(c *Chain, in ArbitraryInput) (*Result, error) {
	return b.run(c, Arbitrary, standardSteps(&validateArbitraryStep{in: in}, &SetOrientStep{}))
}
