package scene

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/philipparndt/gorig/internal/geometry"
	"github.com/philipparndt/gorig/internal/models"
)

// Export converts the scene into its document form. Nodes are listed
// parents first, in creation order within each level.
func (s *Scene) Export(metadata ...models.Metadata) models.Scene {
	doc := models.Scene{
		Unit:     "centimeter",
		Metadata: metadata,
	}
	var walk func(n *Node)
	walk = func(n *Node) {
		doc.Nodes = append(doc.Nodes, exportNode(n))
		for _, c := range n.children {
			walk(c)
		}
	}
	for _, r := range s.Roots() {
		walk(r)
	}
	return doc
}

func exportNode(n *Node) models.Node {
	world := n.WorldPosition()
	out := models.Node{
		Name:          n.Name,
		Type:          n.Kind.String(),
		Translate:     vec3(n.Translate),
		Rotate:        euler3(n.Rotate),
		JointOrient:   euler3(n.Orient),
		WorldPosition: vec3(world),
		Transform:     geometry.FormatTransform(n.WorldRotation().Mat4(), world),
		Locked:        n.Locked(),
		Hidden:        n.Hidden(),
	}
	if n.Parent != nil {
		out.Parent = n.Parent.Name
	}
	return out
}

const exportPrecision = 6

func round(x float64) float64 {
	r := geometry.Round(x, exportPrecision)
	if r == 0 {
		return 0
	}
	return r
}

func vec3(v r3.Vec) [3]float64 {
	return [3]float64{round(v.X), round(v.Y), round(v.Z)}
}

func euler3(e geometry.Euler) [3]float64 {
	return [3]float64{round(e.X), round(e.Y), round(e.Z)}
}
