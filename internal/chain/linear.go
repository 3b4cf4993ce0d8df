package chain

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/philipparndt/gorig/internal/axis"
	"github.com/philipparndt/gorig/internal/geometry"
)

// LinearInput builds a chain along one line. Every joint but the last
// shares the same orientation.
type LinearInput struct {
	Positions []r3.Vec
	// Aim is the local axis pointing down the chain.
	Aim string
	// Twist is the local axis pointing towards TwistVector.
	Twist string
	// TwistVector is the world up reference. It must be perpendicular to
	// the line.
	TwistVector *r3.Vec
	// SkipLast leaves out the last position.
	SkipLast bool
}

type validateLinearStep struct {
	in LinearInput
}

func (s *validateLinearStep) Name() string { return "validate linear chain" }

func (s *validateLinearStep) State() State { return Validating }

func (s *validateLinearStep) Execute(ctx *Context) error {
	in := s.in
	prec := ctx.Builder.opts.Precision

	aim, twist, err := axis.ParsePair(in.Aim, in.Twist)
	if err != nil {
		return err
	}
	if len(in.Positions) == 0 {
		return fmt.Errorf("%w: position list is empty", ErrMissingInput)
	}
	if in.TwistVector == nil {
		return fmt.Errorf("%w: twist vector not defined", ErrMissingInput)
	}

	check := ctx.checker()
	collinear, err := check.IsCollinear(in.Positions)
	if err != nil {
		return err
	}
	if !collinear {
		return ErrNotCollinear
	}

	end := len(in.Positions)
	if in.SkipLast {
		end--
	}
	if end < 2 {
		return fmt.Errorf("%w: need at least 2 positions, or 3 when skipping the last one, got %d", ErrInsufficientPoints, len(in.Positions))
	}

	twistVec, err := geometry.Normalize(twist.Apply(*in.TwistVector), prec)
	if err != nil {
		return fmt.Errorf("twist vector: %w", err)
	}
	dir, err := check.FirstDirection(in.Positions)
	if err != nil {
		return err
	}
	aimVec, err := geometry.Normalize(aim.Apply(dir), prec)
	if err != nil {
		return fmt.Errorf("aim vector: %w", err)
	}

	if geometry.Round(r3.Norm(r3.Cross(aimVec, twistVec)), prec) < 1 {
		return fmt.Errorf("%w: aim %s and twist %s, change the aim axis or the twist vector",
			ErrNotPerpendicular, geometry.FormatVec(aimVec), geometry.FormatVec(twistVec))
	}

	basis, err := axis.BuildBasis(axis.Input{Aim: aim, Twist: twist, AimVec: aimVec, TwistVec: twistVec}, prec)
	if err != nil {
		return err
	}
	rot := geometry.EulerFromBasis(basis)

	// One rotation for every joint but the last created one. The first
	// joint is always oriented.
	ctx.Positions = in.Positions[:end]
	ctx.Rotations = make([]*geometry.Euler, end)
	for i := 0; i < end-1 || i == 0; i++ {
		ctx.Rotations[i] = &rot
	}
	ctx.ZeroLast = end > 1
	return nil
}

// Linear creates a chain on collinear positions. The orientation is derived
// once from the first segment and the twist vector and used for every
// joint except the last, whose orientation is zeroed.
func (b *Builder) Linear(c *Chain, in LinearInput) (*Result, error) {
	return b.run(c, Linear, standardSteps(&validateLinearStep{in: in}, &OrientStep{}))
}
