package inspect

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/philipparndt/gorig/internal/models"
	"github.com/philipparndt/gorig/internal/ui"
)

var (
	ErrNoNodes       = errors.New("scene has no nodes")
	ErrUnknownParent = errors.New("unknown parent")
	ErrDuplicateNode = errors.New("duplicate node name")
)

// Inspector provides functionality to inspect exported rig scenes
type Inspector struct {
	printer *ScenePrinter
}

// NewInspector creates a new Inspector
func NewInspector() *Inspector {
	return &Inspector{printer: NewScenePrinter()}
}

// Inspect reads and displays the contents of an exported scene file
func (i *Inspector) Inspect(filename string) error {
	if _, err := os.Stat(filename); err != nil {
		return fmt.Errorf("file not found: %s", filename)
	}

	ui.PrintHeader(fmt.Sprintf("Inspecting: %s", filename))

	doc, err := ReadScene(filename)
	if err != nil {
		return fmt.Errorf("error reading scene file: %w", err)
	}

	i.Print(doc)
	return nil
}

// Print displays an exported scene
func (i *Inspector) Print(doc *models.Scene) {
	ui.PrintStep(fmt.Sprintf("Unit: %s", doc.Unit))
	ui.PrintStep(fmt.Sprintf("Nodes: %d", len(doc.Nodes)))
	i.printer.PrintExtent(doc)

	if len(doc.Metadata) > 0 {
		ui.PrintStep("Metadata:")
		for _, meta := range doc.Metadata {
			ui.PrintStep(fmt.Sprintf("  - %s: %s", meta.Name, meta.Value))
		}
	}

	ui.PrintHeader("Hierarchy:")
	i.printer.PrintHierarchy(doc)

	ui.PrintHeader("Joints:")
	i.printer.PrintJointTable(doc)
}

// ReadScene reads an exported scene and checks that every parent it
// names is present
func ReadScene(filename string) (*models.Scene, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("error opening file: %w", err)
	}
	return ParseScene(data)
}

// ParseScene decodes an exported scene document
func ParseScene(data []byte) (*models.Scene, error) {
	var doc models.Scene
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("error parsing scene YAML: %w", err)
	}
	if len(doc.Nodes) == 0 {
		return nil, ErrNoNodes
	}

	seen := make(map[string]bool, len(doc.Nodes))
	for _, n := range doc.Nodes {
		if seen[n.Name] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateNode, n.Name)
		}
		seen[n.Name] = true
	}
	for _, n := range doc.Nodes {
		if n.Parent != "" && !seen[n.Parent] {
			return nil, fmt.Errorf("%w %q of %s", ErrUnknownParent, n.Parent, n.Name)
		}
	}
	return &doc, nil
}
