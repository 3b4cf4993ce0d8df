// Package scene is an in-memory host scene. It implements every host
// collaborator the chain builder needs and exports the result as YAML.
package scene

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/philipparndt/gorig/internal/geometry"
	"github.com/philipparndt/gorig/internal/host"
)

var (
	ErrNodeNotFound = errors.New("node not found")
	ErrNameTaken    = errors.New("name already exists")
	ErrCycle        = errors.New("parenting would create a cycle")
)

// Scene holds nodes by id and by name. It is not safe for concurrent use.
type Scene struct {
	nodes     map[host.NodeID]*Node
	byName    map[string]*Node
	order     []*Node
	selection []host.NodeID
	nextID    host.NodeID
}

// New creates an empty scene.
func New() *Scene {
	return &Scene{
		nodes:  make(map[host.NodeID]*Node),
		byName: make(map[string]*Node),
	}
}

var (
	_ host.Scene   = (*Scene)(nil)
	_ host.Deleter = (*Scene)(nil)
)

func (s *Scene) add(name string, kind Kind, pos r3.Vec) (*Node, error) {
	if name == "" {
		return nil, fmt.Errorf("node name must not be empty")
	}
	if _, ok := s.byName[name]; ok {
		return nil, fmt.Errorf("%w: %s", ErrNameTaken, name)
	}
	s.nextID++
	n := newNode(s.nextID, name, kind)
	n.Translate = pos
	s.nodes[n.ID] = n
	s.byName[name] = n
	s.order = append(s.order, n)
	s.selection = []host.NodeID{n.ID}
	return n, nil
}

// CreateJoint creates a root joint at pos and selects it.
func (s *Scene) CreateJoint(pos r3.Vec, name string) (host.Joint, error) {
	n, err := s.add(name, KindJoint, pos)
	if err != nil {
		return host.Joint{}, err
	}
	return n.Handle(), nil
}

// CreateTransform creates a root transform node at pos.
func (s *Scene) CreateTransform(pos r3.Vec, name string) (*Node, error) {
	return s.add(name, KindTransform, pos)
}

// Lookup returns the node with the given id.
func (s *Scene) Lookup(id host.NodeID) (*Node, error) {
	n, ok := s.nodes[id]
	if !ok {
		return nil, fmt.Errorf("%w: id %d", ErrNodeNotFound, id)
	}
	return n, nil
}

// ByName returns the node with the given name.
func (s *Scene) ByName(name string) (*Node, error) {
	n, ok := s.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNodeNotFound, name)
	}
	return n, nil
}

// Exists reports whether a node with that name exists.
func (s *Scene) Exists(name string) bool {
	_, ok := s.byName[name]
	return ok
}

// Len returns the number of nodes.
func (s *Scene) Len() int { return len(s.order) }

// Nodes returns all nodes in creation order.
func (s *Scene) Nodes() []*Node { return s.order }

// Roots returns the nodes without a parent in creation order.
func (s *Scene) Roots() []*Node {
	var roots []*Node
	for _, n := range s.order {
		if n.Parent == nil {
			roots = append(roots, n)
		}
	}
	return roots
}

// SetWorldRotation sets the rotate channel so the world rotation of the
// node equals rot. The orient channel is left alone.
func (s *Scene) SetWorldRotation(id host.NodeID, rot geometry.Euler) error {
	n, err := s.Lookup(id)
	if err != nil {
		return err
	}
	target := rot.Matrix().Mat3()
	if n.Parent != nil {
		target = target.Mul3(n.Parent.WorldRotation().Transpose())
	}
	n.Rotate = eulerOf(target.Mul3(n.Orient.Matrix().Mat3().Transpose()))
	return nil
}

// FreezeRotationToOrient bakes rotate into the joint orient and zeroes
// rotate. Transforms have no orient channel and are left unchanged.
func (s *Scene) FreezeRotationToOrient(id host.NodeID) error {
	n, err := s.Lookup(id)
	if err != nil {
		return err
	}
	if n.Kind != KindJoint {
		return fmt.Errorf("%s is a %s, only joints have an orient channel", n.Name, n.Kind)
	}
	n.Orient = eulerOf(n.LocalRotation())
	n.Rotate = geometry.Euler{}
	return nil
}

// SetLocalOrientation overwrites the joint orient channel.
func (s *Scene) SetLocalOrientation(id host.NodeID, orient geometry.Euler) error {
	n, err := s.Lookup(id)
	if err != nil {
		return err
	}
	if n.Kind != KindJoint {
		return fmt.Errorf("%s is a %s, only joints have an orient channel", n.Name, n.Kind)
	}
	n.Orient = orient
	return nil
}

// SetParent moves child under parent. The world transform of child is
// kept: joints absorb the change in their orient channel, transforms in
// their rotate channel.
func (s *Scene) SetParent(child, parent host.NodeID) error {
	c, err := s.Lookup(child)
	if err != nil {
		return err
	}
	p, err := s.Lookup(parent)
	if err != nil {
		return err
	}
	if isAncestor(c, p) {
		return fmt.Errorf("%w: %s under %s", ErrCycle, c.Name, p.Name)
	}
	s.reparent(c, p)
	return nil
}

func (s *Scene) reparent(c, p *Node) {
	worldPos := c.WorldPosition()
	worldRot := c.WorldRotation()

	if c.Parent != nil {
		c.Parent.removeChild(c)
	}
	c.Parent = p

	local := worldRot
	c.Translate = worldPos
	if p != nil {
		parentRot := p.WorldRotation()
		local = worldRot.Mul3(parentRot.Transpose())
		c.Translate = rowMul(r3.Sub(worldPos, p.WorldPosition()), parentRot.Transpose())
		p.children = append(p.children, c)
	}

	if c.Kind == KindJoint {
		c.Orient = eulerOf(c.Rotate.Matrix().Mat3().Transpose().Mul3(local))
	} else {
		c.Rotate = eulerOf(local)
	}
}

// Delete removes a node and everything below it.
func (s *Scene) Delete(id host.NodeID) error {
	n, err := s.Lookup(id)
	if err != nil {
		return err
	}
	if n.Parent != nil {
		n.Parent.removeChild(n)
		n.Parent = nil
	}
	s.remove(n)

	kept := s.order[:0]
	for _, o := range s.order {
		if _, ok := s.nodes[o.ID]; ok {
			kept = append(kept, o)
		}
	}
	for i := len(kept); i < len(s.order); i++ {
		s.order[i] = nil
	}
	s.order = kept

	sel := s.selection[:0]
	for _, sid := range s.selection {
		if _, ok := s.nodes[sid]; ok {
			sel = append(sel, sid)
		}
	}
	s.selection = sel
	return nil
}

func (s *Scene) remove(n *Node) {
	for _, c := range n.children {
		s.remove(c)
	}
	n.children = nil
	delete(s.nodes, n.ID)
	delete(s.byName, n.Name)
}

// ClearSelection empties the selection.
func (s *Scene) ClearSelection() {
	s.selection = nil
}

// Selection returns the selected node ids.
func (s *Scene) Selection() []host.NodeID {
	return s.selection
}

// Axes returns the world space X, Y and Z axes of the node as basis rows,
// the unit axes rotated by the world orientation of the node.
func (s *Scene) Axes(id host.NodeID) (geometry.Basis, error) {
	n, err := s.Lookup(id)
	if err != nil {
		return geometry.Basis{}, err
	}
	world := geometry.EulerFromMatrix(n.WorldRotation().Mat4())
	return geometry.AxesOf(world.Rotation()), nil
}

// ZeroGroup inserts a transform named name between the node and its
// parent. The group takes the world transform of the node so the node ends
// up with zero translation and rotation relative to it.
func (s *Scene) ZeroGroup(id host.NodeID, name string) (*Node, error) {
	n, err := s.Lookup(id)
	if err != nil {
		return nil, err
	}
	parent := n.Parent

	grp, err := s.CreateTransform(n.WorldPosition(), name)
	if err != nil {
		return nil, err
	}
	grp.Rotate = eulerOf(n.WorldRotation())
	if parent != nil {
		s.reparent(grp, parent)
	}
	s.reparent(n, grp)
	s.selection = []host.NodeID{n.ID}
	return grp, nil
}

// SetLocked locks or unlocks a channel.
func (s *Scene) SetLocked(id host.NodeID, channel string, locked bool) error {
	n, err := s.Lookup(id)
	if err != nil {
		return err
	}
	n.locked[channel] = locked
	return nil
}

// SetHidden hides a channel from the channel box or shows it again.
func (s *Scene) SetHidden(id host.NodeID, channel string, hidden bool) error {
	n, err := s.Lookup(id)
	if err != nil {
		return err
	}
	n.hidden[channel] = hidden
	return nil
}
