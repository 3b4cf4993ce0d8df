package chain

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/philipparndt/gorig/internal/geometry"
	"github.com/philipparndt/gorig/internal/host"
	"github.com/philipparndt/gorig/internal/preconditions"
)

// Options configure a Builder.
type Options struct {
	// Precision is the number of decimal digits kept when comparing
	// lengths and dot products.
	Precision int
	// Reporter receives warnings as they happen.
	Reporter host.Reporter
}

// Option changes Options.
type Option func(*Options)

// WithPrecision sets the rounding precision.
func WithPrecision(p int) Option {
	return func(o *Options) { o.Precision = p }
}

// WithReporter sets the warning reporter.
func WithReporter(r host.Reporter) Option {
	return func(o *Options) { o.Reporter = r }
}

// Builder creates and orients joint chains in a host scene.
type Builder struct {
	scene host.Scene
	namer host.Namer
	opts  Options
}

// NewBuilder creates a builder for scene. Joint names come from namer.
func NewBuilder(scene host.Scene, namer host.Namer, opts ...Option) *Builder {
	o := Options{Precision: geometry.DefaultPrecision}
	for _, opt := range opts {
		opt(&o)
	}
	if o.Reporter == nil {
		o.Reporter = host.Discard
	}
	return &Builder{scene: scene, namer: namer, opts: o}
}

// Precision returns the configured precision.
func (b *Builder) Precision() int { return b.opts.Precision }

// Result describes a finished build.
type Result struct {
	Mode  Mode
	State State
	// Joints are the created joints in creation order.
	Joints []host.Joint
	// Rotations are the world rotations applied during Orienting, one per
	// oriented joint. Arbitrary builds report the supplied orientations.
	Rotations []geometry.Euler
	Warnings  []string
}

// Step is one stage of a build.
type Step interface {
	Name() string
	State() State
	Execute(ctx *Context) error
}

// Context holds the data shared by the steps of one build.
type Context struct {
	Builder *Builder
	Chain   *Chain
	Mode    Mode
	State   State

	// Positions are the joint positions that will be created.
	Positions []r3.Vec
	// Rotations are computed while validating, indexed like Positions.
	// A nil entry leaves the joint unoriented.
	Rotations []*geometry.Euler
	// Orientations are applied directly to the joint orient channel.
	Orientations []geometry.Euler
	// ZeroLast zeroes the orientation of the last joint when finalizing.
	ZeroLast bool

	batch    *createBatch
	warnings []string
}

// Warn records a warning and forwards it to the reporter.
func (c *Context) Warn(msg string) {
	c.warnings = append(c.warnings, msg)
	c.Builder.opts.Reporter.Warn(msg)
}

func (c *Context) checker() *preconditions.Checker {
	return preconditions.NewChecker(c.Builder.opts.Precision, host.ReporterFunc(c.Warn))
}

// run drives the steps. A failure before Creating leaves the scene
// untouched. A failure after it deletes every joint created so far.
func (b *Builder) run(c *Chain, mode Mode, steps []Step) (*Result, error) {
	ctx := &Context{
		Builder: b,
		Chain:   c,
		Mode:    mode,
		State:   Validating,
	}
	ctx.batch = newCreateBatch(b.scene)

	fail := func(err error) (*Result, error) {
		failedIn := ctx.State
		if failedIn.Mutating() {
			if rbErr := ctx.batch.Rollback(); rbErr != nil {
				err = errors.Join(err, fmt.Errorf("rollback: %w", rbErr))
			}
			c.joints = nil
			c.perpendicular = nil
		}
		ctx.State = Failed
		res := ctx.result()
		return res, &Error{Class: classify(err), Mode: mode, State: failedIn, Err: err}
	}

	if c.Len() > 0 {
		return fail(fmt.Errorf("%w: %s", ErrChainBuilt, c))
	}

	for _, step := range steps {
		ctx.State = step.State()
		if err := step.Execute(ctx); err != nil {
			return fail(fmt.Errorf("%s: %w", step.Name(), err))
		}
	}
	ctx.batch.Commit()
	ctx.State = Done
	return ctx.result(), nil
}

func (c *Context) result() *Result {
	res := &Result{
		Mode:     c.Mode,
		State:    c.State,
		Warnings: c.warnings,
	}
	if c.State == Failed {
		return res
	}
	res.Joints = c.Chain.Joints()
	if c.Mode == Arbitrary {
		res.Rotations = append(res.Rotations, c.Orientations...)
		return res
	}
	for _, r := range c.Rotations {
		if r != nil {
			res.Rotations = append(res.Rotations, *r)
		}
	}
	return res
}

// standardSteps returns the steps shared by every mode around the mode's
// own validate and orient steps.
func standardSteps(validate, orient Step) []Step {
	return []Step{
		validate,
		&CreateStep{},
		orient,
		&LinkStep{},
		&FinalizeStep{},
	}
}
