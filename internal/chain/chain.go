// Package chain builds joint chains in a host scene and orients them.
package chain

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/philipparndt/gorig/internal/host"
)

// Chain is an ordered list of joints created by one build. Joint 0 is the
// root of the chain, every later joint is a child of the one before.
type Chain struct {
	Base  string
	Side  string
	Start int

	joints        []host.Joint
	perpendicular *r3.Vec
}

// New creates an empty chain. Joint names are built from base, side and a
// number counting up from start.
func New(base, side string, start int) *Chain {
	return &Chain{Base: base, Side: side, Start: start}
}

// Len returns the number of joints.
func (c *Chain) Len() int { return len(c.joints) }

// Joints returns a copy of the joint handles in creation order.
func (c *Chain) Joints() []host.Joint {
	return append([]host.Joint(nil), c.joints...)
}

// Root returns the first joint.
func (c *Chain) Root() (host.Joint, bool) {
	if len(c.joints) == 0 {
		return host.Joint{}, false
	}
	return c.joints[0], true
}

// PerpendicularVector returns the plane normal cached by a planar build,
// with the twist sign applied.
func (c *Chain) PerpendicularVector() (r3.Vec, bool) {
	if c.perpendicular == nil {
		return r3.Vec{}, false
	}
	return *c.perpendicular, true
}

func (c *Chain) String() string {
	names := make([]string, len(c.joints))
	for i, j := range c.joints {
		names[i] = j.Name
	}
	return fmt.Sprintf("JointChain: joints number: %d, joints: [%s]", len(c.joints), strings.Join(names, ", "))
}
