package chain

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/philipparndt/gorig/internal/axis"
	"github.com/philipparndt/gorig/internal/geometry"
)

// PlanarInput builds a chain on one plane. Every joint aims at the next
// position and twists towards the plane normal.
type PlanarInput struct {
	Positions []r3.Vec
	Aim       string
	Twist     string
	// SkipLast leaves out the last position. The last created joint then
	// still aims at it.
	SkipLast bool
}

type validatePlanarStep struct {
	in PlanarInput
}

func (s *validatePlanarStep) Name() string { return "validate planar chain" }

func (s *validatePlanarStep) State() State { return Validating }

func (s *validatePlanarStep) Execute(ctx *Context) error {
	in := s.in
	prec := ctx.Builder.opts.Precision

	aim, twist, err := axis.ParsePair(in.Aim, in.Twist)
	if err != nil {
		return err
	}
	if len(in.Positions) == 0 {
		return fmt.Errorf("%w: position list is empty", ErrMissingInput)
	}

	coplanar, normal, err := ctx.checker().IsCoplanar(in.Positions)
	if err != nil {
		return err
	}
	if !coplanar {
		return ErrNotCoplanar
	}
	twistVec := twist.Apply(normal)

	n := len(in.Positions)
	end := n
	if in.SkipLast {
		end--
	}

	rotations := make([]*geometry.Euler, end)
	var prev *geometry.Euler
	for i := 0; i < end && i < n-1; i++ {
		target, ok := nextDistinct(in.Positions, i, prec)
		if !ok {
			// trailing duplicates keep the orientation of the joint before
			rotations[i] = prev
			continue
		}
		aimVec, err := geometry.Normalize(aim.Apply(r3.Sub(in.Positions[target], in.Positions[i])), prec)
		if err != nil {
			return fmt.Errorf("aim vector of joint %d: %w", i, err)
		}
		basis, err := axis.BuildBasis(axis.Input{Aim: aim, Twist: twist, AimVec: aimVec, TwistVec: twistVec}, prec)
		if err != nil {
			return fmt.Errorf("joint %d: %w", i, err)
		}
		rot := geometry.EulerFromBasis(basis)
		rotations[i] = &rot
		prev = &rot
	}

	ctx.Positions = in.Positions[:end]
	ctx.Rotations = rotations
	ctx.ZeroLast = !in.SkipLast
	ctx.Chain.perpendicular = &twistVec
	return nil
}

// nextDistinct returns the index of the first position after i that does
// not coincide with position i.
func nextDistinct(positions []r3.Vec, i, prec int) (int, bool) {
	for j := i + 1; j < len(positions); j++ {
		if !geometry.IsZero(r3.Sub(positions[j], positions[i]), prec) {
			return j, true
		}
	}
	return 0, false
}

// Planar creates a chain on coplanar positions. Each joint aims at the next
// position with its twist axis along the plane normal.
func (b *Builder) Planar(c *Chain, in PlanarInput) (*Result, error) {
	return b.run(c, Planar, standardSteps(&validatePlanarStep{in: in}, &OrientStep{}))
}
