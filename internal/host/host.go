// Package host declares the scene collaborators the chain builder drives.
// The in-memory scene package implements all of them.
package host

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/philipparndt/gorig/internal/geometry"
)

// NodeID identifies a node inside a host scene. Zero is never a valid id.
type NodeID uint32

// Joint is the handle returned for a created joint.
type Joint struct {
	ID   NodeID
	Name string
}

func (j Joint) String() string { return j.Name }

// JointCreator creates joint nodes.
type JointCreator interface {
	// CreateJoint creates a joint at a world position with zero rotation
	// and zero orientation.
	CreateJoint(pos r3.Vec, name string) (Joint, error)
}

// Transformer edits joint rotations.
type Transformer interface {
	// SetWorldRotation rotates the node so that its world orientation
	// equals rot (XYZ degrees).
	SetWorldRotation(id NodeID, rot geometry.Euler) error
	// FreezeRotationToOrient bakes the rotation channel into the joint
	// orientation and resets rotation to zero. World transform is kept.
	FreezeRotationToOrient(id NodeID) error
	// SetLocalOrientation overwrites the joint orientation channel.
	SetLocalOrientation(id NodeID, orient geometry.Euler) error
}

// Hierarchy links nodes.
type Hierarchy interface {
	// SetParent moves child under parent keeping its world transform.
	SetParent(child, parent NodeID) error
	ClearSelection()
}

// Scene is everything a chain build needs from the host.
type Scene interface {
	JointCreator
	Transformer
	Hierarchy
}

// Deleter is implemented by hosts that can remove nodes. Builders use it to
// roll back partially created chains.
type Deleter interface {
	Delete(id NodeID) error
}

// Namer generates names that do not collide with anything in the scene.
type Namer interface {
	UniqueName(base, side, suffix string, num int) (string, error)
}

// Reporter receives non-fatal diagnostics.
type Reporter interface {
	Warn(msg string)
}

// ReporterFunc adapts a function to Reporter.
type ReporterFunc func(msg string)

func (f ReporterFunc) Warn(msg string) { f(msg) }

// Discard drops every warning.
var Discard Reporter = ReporterFunc(func(string) {})
