package buildplan

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/philipparndt/gorig/internal/chain"
	"github.com/philipparndt/gorig/internal/config"
	"github.com/philipparndt/gorig/internal/models"
	"github.com/philipparndt/gorig/internal/scene"
	"github.com/philipparndt/gorig/internal/ui"
)

// FileType represents the type of input file
type FileType int

const (
	FileTypeUnknown FileType = iota
	FileTypeYAML
)

var ErrUnsupportedInput = errors.New("unsupported input file")

// BuildStep represents a single step in the build plan
type BuildStep interface {
	Name() string
	Execute(ctx *Context) error
}

// Options controls where the built scene goes
type Options struct {
	// Export overrides the export path of the rig description
	Export string
	// Print writes the highlighted scene document to the terminal
	Print bool
	// Style is the chroma style used by Print
	Style string
}

// Context holds shared data between build steps
type Context struct {
	ConfigPath string
	Rig        *models.Rig
	Jobs       []config.ChainJob
	Scene      *scene.Scene
	Chains     []*chain.Chain
	Results    []*chain.Result
	Document   *models.Scene
	Data       []byte
	OutputFile string
	Warnings   int
}

// BuildPlan contains all steps needed to turn a rig description into a scene
type BuildPlan struct {
	Steps      []BuildStep
	OutputFile string
	ctx        *Context
}

// Planner creates build plans based on input files
type Planner struct{}

// NewPlanner creates a new build planner
func NewPlanner() *Planner {
	return &Planner{}
}

// CreatePlan analyzes the input file and creates an execution plan
func (p *Planner) CreatePlan(input string, opts Options) (*BuildPlan, error) {
	if detectFileType(input) != FileTypeYAML {
		return nil, fmt.Errorf("%w: %s (expected .yaml or .yml)", ErrUnsupportedInput, input)
	}

	plan := &BuildPlan{
		OutputFile: opts.Export,
		ctx: &Context{
			ConfigPath: input,
			Scene:      scene.New(),
		},
	}

	plan.Steps = append(plan.Steps,
		&LoadRigStep{ConfigPath: input, Export: opts.Export},
		&CheckOutputStep{},
		&BuildChainsStep{},
		&ParentChainsStep{},
		&ZeroGroupsStep{},
		&LockAttributesStep{},
		&ReportStep{},
		&RenderSceneStep{},
		&ExportStep{},
	)
	if opts.Print {
		plan.Steps = append(plan.Steps, &PrintSceneStep{Style: opts.Style})
	}
	return plan, nil
}

// Context returns the data shared by the steps of the plan
func (p *BuildPlan) Context() *Context {
	return p.ctx
}

// Execute runs all steps in the plan
func (p *BuildPlan) Execute() error {
	if ui.IsVerbose() {
		ui.PrintTitle("Build Plan Execution")
		ui.PrintInfo(fmt.Sprintf("Total steps: %d", len(p.Steps)))
		ui.PrintSeparator()
	}

	for i, step := range p.Steps {
		if ui.IsVerbose() {
			ui.PrintHeader(fmt.Sprintf("Step %d/%d: %s", i+1, len(p.Steps), step.Name()))
		}
		if err := step.Execute(p.ctx); err != nil {
			return err
		}
	}

	if p.OutputFile == "" {
		p.OutputFile = p.ctx.OutputFile
	}

	ui.PrintSeparator()
	ui.PrintSuccess("Build completed successfully!")
	ui.PrintBox(p.summary())
	if p.ctx.Warnings > 0 {
		ui.PrintKeyValue("Warnings", fmt.Sprintf("%d", p.ctx.Warnings))
	}
	if p.OutputFile != "" {
		relPath, err := filepath.Rel(".", p.OutputFile)
		if err != nil {
			relPath = p.OutputFile
		}
		ui.PrintKeyValue("Output file", relPath)
	}
	return nil
}

// summary describes what the plan built, e.g. "2 chains, 6 joints"
func (p *BuildPlan) summary() string {
	joints := 0
	for _, ch := range p.ctx.Chains {
		joints += ch.Len()
	}
	return fmt.Sprintf("%d chain%s, %d joint%s",
		len(p.ctx.Chains), pluralize(len(p.ctx.Chains)), joints, pluralize(joints))
}

// detectFileType determines the file type based on extension
func detectFileType(path string) FileType {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FileTypeYAML
	default:
		return FileTypeUnknown
	}
}

// pluralize returns "s" if count != 1, empty string otherwise
func pluralize(count int) string {
	if count == 1 {
		return ""
	}
	return "s"
}
