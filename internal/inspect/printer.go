package inspect

import (
	"fmt"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/philipparndt/gorig/internal/geometry"
	"github.com/philipparndt/gorig/internal/models"
	"github.com/philipparndt/gorig/internal/ui"
)

// ScenePrinter handles printing the node hierarchy and joint details
type ScenePrinter struct{}

// NewScenePrinter creates a new ScenePrinter
func NewScenePrinter() *ScenePrinter {
	return &ScenePrinter{}
}

// ParseTransform extracts the world axes and position from a transform string
// Transform format: "m11 m12 m13 m21 m22 m23 m31 m32 m33 x y z"
func ParseTransform(transform string) (axes geometry.Basis, pos r3.Vec, ok bool) {
	parts := strings.Fields(transform)
	if len(parts) != 12 {
		return axes, pos, false
	}

	var values [12]float64
	for i, p := range parts {
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return axes, pos, false
		}
		values[i] = v
	}

	for row := 0; row < 3; row++ {
		axes[row] = r3.Vec{X: values[row*3], Y: values[row*3+1], Z: values[row*3+2]}
	}
	pos = r3.Vec{X: values[9], Y: values[10], Z: values[11]}
	return axes, pos, true
}

// Children groups node indices by parent name. Roots are listed under "".
func Children(doc *models.Scene) map[string][]int {
	children := make(map[string][]int)
	for idx, n := range doc.Nodes {
		children[n.Parent] = append(children[n.Parent], idx)
	}
	return children
}

// PrintHierarchy prints the node tree, roots first
func (p *ScenePrinter) PrintHierarchy(doc *models.Scene) {
	children := Children(doc)
	roots := children[""]
	if len(roots) == 0 {
		ui.PrintStep("No nodes found")
		return
	}
	for _, idx := range roots {
		p.printNode(doc, children, idx, 0)
	}
}

func (p *ScenePrinter) printNode(doc *models.Scene, children map[string][]int, idx, depth int) {
	n := doc.Nodes[idx]
	indent := strings.Repeat("  ", depth)

	marker := "•"
	if depth > 0 {
		marker = "-"
	}

	flags := ""
	if len(n.Locked) > 0 {
		flags += fmt.Sprintf(" [locked: %s]", strings.Join(n.Locked, ","))
	}
	if len(n.Hidden) > 0 {
		flags += fmt.Sprintf(" [hidden: %d]", len(n.Hidden))
	}

	ui.PrintStep(fmt.Sprintf("%s%s %s (%s)%s", indent, marker, n.Name, n.Type, flags))
	for _, c := range children[n.Name] {
		p.printNode(doc, children, c, depth+1)
	}
}

// PrintJointTable prints the world position and orient of every joint
func (p *ScenePrinter) PrintJointTable(doc *models.Scene) {
	ui.PrintTableHeader("Name", "Parent", "World position", "Joint orient")
	joints := 0
	for _, n := range doc.Nodes {
		if n.Type != "joint" {
			continue
		}
		joints++
		parent := n.Parent
		if parent == "" {
			parent = "-"
		}
		ui.PrintTableRow(n.Name, parent, formatTriple(n.WorldPosition), formatTriple(n.JointOrient))
	}
	if joints == 0 {
		ui.PrintInfo("No joints found")
	}
}

// PrintExtent prints the bounding box of all world positions
func (p *ScenePrinter) PrintExtent(doc *models.Scene) {
	positions := make([]r3.Vec, 0, len(doc.Nodes))
	for _, n := range doc.Nodes {
		positions = append(positions, r3.Vec{X: n.WorldPosition[0], Y: n.WorldPosition[1], Z: n.WorldPosition[2]})
	}
	bbox, err := geometry.CalculateBoundingBox(positions)
	if err != nil {
		return
	}
	ui.PrintKeyValue("Extent", fmt.Sprintf("%.3f x %.3f x %.3f", bbox.Width(), bbox.Height(), bbox.Depth()))
	ui.PrintKeyValue("Center", formatTriple([3]float64{bbox.Center().X, bbox.Center().Y, bbox.Center().Z}))
}

func formatTriple(v [3]float64) string {
	return fmt.Sprintf("%.3f, %.3f, %.3f", v[0], v[1], v[2])
}
