package chain

import (
	"errors"
	"fmt"

	"github.com/philipparndt/gorig/internal/geometry"
	"github.com/philipparndt/gorig/internal/host"
)

// createBatch records the joints created by one build so they can be
// removed again if the build fails before it is committed.
type createBatch struct {
	scene     host.Scene
	created   []host.Joint
	committed bool
}

func newCreateBatch(scene host.Scene) *createBatch {
	return &createBatch{scene: scene}
}

func (b *createBatch) add(j host.Joint) {
	b.created = append(b.created, j)
}

// Commit keeps the created joints.
func (b *createBatch) Commit() {
	b.committed = true
}

// Rollback deletes the created joints, newest first. Hosts without a
// Deleter keep the joints and an error says so.
func (b *createBatch) Rollback() error {
	if b.committed || len(b.created) == 0 {
		return nil
	}
	d, ok := b.scene.(host.Deleter)
	if !ok {
		return fmt.Errorf("host cannot delete nodes, %d joint(s) left in the scene", len(b.created))
	}
	var errs []error
	for i := len(b.created) - 1; i >= 0; i-- {
		if err := d.Delete(b.created[i].ID); err != nil {
			errs = append(errs, fmt.Errorf("delete %s: %w", b.created[i].Name, err))
		}
	}
	b.created = nil
	return errors.Join(errs...)
}

// CreateStep creates one joint per position.
type CreateStep struct{}

func (s *CreateStep) Name() string { return "create joints" }

func (s *CreateStep) State() State { return Creating }

func (s *CreateStep) Execute(ctx *Context) error {
	b := ctx.Builder
	for i, pos := range ctx.Positions {
		name, err := b.namer.UniqueName(ctx.Chain.Base, ctx.Chain.Side, "jnt", ctx.Chain.Start+i)
		if err != nil {
			return fmt.Errorf("name joint %d: %w", i, err)
		}
		b.scene.ClearSelection()
		j, err := b.scene.CreateJoint(pos, name)
		if err != nil {
			return fmt.Errorf("create %s: %w", name, err)
		}
		ctx.batch.add(j)
		ctx.Chain.joints = append(ctx.Chain.joints, j)
	}
	return nil
}

// OrientStep rotates each joint to its computed world rotation and freezes
// the rotation into the joint orient.
type OrientStep struct{}

func (s *OrientStep) Name() string { return "orient joints" }

func (s *OrientStep) State() State { return Orienting }

func (s *OrientStep) Execute(ctx *Context) error {
	sc := ctx.Builder.scene
	for i, j := range ctx.Chain.joints {
		if i >= len(ctx.Rotations) || ctx.Rotations[i] == nil {
			continue
		}
		if err := sc.SetWorldRotation(j.ID, *ctx.Rotations[i]); err != nil {
			return fmt.Errorf("rotate %s: %w", j.Name, err)
		}
		if err := sc.FreezeRotationToOrient(j.ID); err != nil {
			return fmt.Errorf("freeze %s: %w", j.Name, err)
		}
	}
	return nil
}

// SetOrientStep writes the supplied orientations into the joint orient
// channels.
type SetOrientStep struct{}

func (s *SetOrientStep) Name() string { return "set joint orientations" }

func (s *SetOrientStep) State() State { return Orienting }

func (s *SetOrientStep) Execute(ctx *Context) error {
	sc := ctx.Builder.scene
	for i, j := range ctx.Chain.joints {
		if err := sc.SetLocalOrientation(j.ID, ctx.Orientations[i]); err != nil {
			return fmt.Errorf("orient %s: %w", j.Name, err)
		}
	}
	return nil
}

// LinkStep parents every joint under the one created before it, walking
// from the end of the chain to the start.
type LinkStep struct{}

func (s *LinkStep) Name() string { return "link joints" }

func (s *LinkStep) State() State { return Linking }

func (s *LinkStep) Execute(ctx *Context) error {
	sc := ctx.Builder.scene
	joints := ctx.Chain.joints
	for i := len(joints) - 1; i > 0; i-- {
		if err := sc.SetParent(joints[i].ID, joints[i-1].ID); err != nil {
			return fmt.Errorf("parent %s under %s: %w", joints[i].Name, joints[i-1].Name, err)
		}
	}
	sc.ClearSelection()
	return nil
}

// FinalizeStep zeroes the orientation of the last joint when requested.
type FinalizeStep struct{}

func (s *FinalizeStep) Name() string { return "finalize" }

func (s *FinalizeStep) State() State { return Finalizing }

func (s *FinalizeStep) Execute(ctx *Context) error {
	if !ctx.ZeroLast || len(ctx.Chain.joints) == 0 {
		return nil
	}
	last := ctx.Chain.joints[len(ctx.Chain.joints)-1]
	if err := ctx.Builder.scene.SetLocalOrientation(last.ID, geometry.Euler{}); err != nil {
		return fmt.Errorf("zero orient %s: %w", last.Name, err)
	}
	return nil
}
