package scene

import (
	"sort"

	"github.com/go-gl/mathgl/mgl64"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/philipparndt/gorig/internal/geometry"
	"github.com/philipparndt/gorig/internal/host"
)

// Kind is the node type.
type Kind int

const (
	KindJoint Kind = iota
	KindTransform
)

func (k Kind) String() string {
	if k == KindJoint {
		return "joint"
	}
	return "transform"
}

// Node is a scene graph element. Translate is relative to the parent,
// Rotate and Orient are XYZ degrees. Transforms keep Orient at zero.
type Node struct {
	ID        host.NodeID
	Name      string
	Kind      Kind
	Parent    *Node
	Translate r3.Vec
	Rotate    geometry.Euler
	Orient    geometry.Euler

	children []*Node
	locked   map[string]bool
	hidden   map[string]bool
}

func newNode(id host.NodeID, name string, kind Kind) *Node {
	return &Node{
		ID:     id,
		Name:   name,
		Kind:   kind,
		locked: make(map[string]bool),
		hidden: make(map[string]bool),
	}
}

// Children returns the direct children in insertion order.
func (n *Node) Children() []*Node {
	return n.children
}

// Handle returns the host handle of the node.
func (n *Node) Handle() host.Joint {
	return host.Joint{ID: n.ID, Name: n.Name}
}

// LocalRotation is R(Rotate)·R(Orient) in row vector form.
func (n *Node) LocalRotation() mgl64.Mat3 {
	return n.Rotate.Matrix().Mat3().Mul3(n.Orient.Matrix().Mat3())
}

// WorldRotation composes the local rotations from the node up to the root.
func (n *Node) WorldRotation() mgl64.Mat3 {
	m := n.LocalRotation()
	for p := n.Parent; p != nil; p = p.Parent {
		m = m.Mul3(p.LocalRotation())
	}
	return m
}

// WorldPosition returns the node position in world space.
func (n *Node) WorldPosition() r3.Vec {
	if n.Parent == nil {
		return n.Translate
	}
	return r3.Add(n.Parent.WorldPosition(), rowMul(n.Translate, n.Parent.WorldRotation()))
}

// Locked returns the locked channels sorted by name.
func (n *Node) Locked() []string { return sortedKeys(n.locked) }

// Hidden returns the hidden channels sorted by name.
func (n *Node) Hidden() []string { return sortedKeys(n.hidden) }

// IsLocked reports whether channel is locked.
func (n *Node) IsLocked(channel string) bool { return n.locked[channel] }

// IsHidden reports whether channel is hidden from the channel box.
func (n *Node) IsHidden(channel string) bool { return n.hidden[channel] }

func (n *Node) removeChild(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return
		}
	}
}

// isAncestor reports whether candidate is node or one of its ancestors.
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// rowMul returns v·m.
func rowMul(v r3.Vec, m mgl64.Mat3) r3.Vec {
	out := m.Transpose().Mul3x1(mgl64.Vec3{v.X, v.Y, v.Z})
	return r3.Vec{X: out[0], Y: out[1], Z: out[2]}
}

func eulerOf(m mgl64.Mat3) geometry.Euler {
	return geometry.EulerFromMatrix(m.Mat4())
}

func sortedKeys(m map[string]bool) []string {
	keys := make([]string, 0, len(m))
	for k, v := range m {
		if v {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}
