package buildplan

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/chroma/v2/quick"
	"gopkg.in/yaml.v3"

	"github.com/philipparndt/gorig/internal/attrs"
	"github.com/philipparndt/gorig/internal/chain"
	"github.com/philipparndt/gorig/internal/config"
	"github.com/philipparndt/gorig/internal/inspect"
	"github.com/philipparndt/gorig/internal/models"
	"github.com/philipparndt/gorig/internal/naming"
	"github.com/philipparndt/gorig/internal/preconditions"
	"github.com/philipparndt/gorig/internal/ui"
	"github.com/philipparndt/gorig/version"
)

// DefaultStyle is the chroma style used when printing the scene
const DefaultStyle = "monokai"

// LoadRigStep loads and validates the rig description
type LoadRigStep struct {
	ConfigPath string
	Export     string
}

func (s *LoadRigStep) Name() string {
	return "Load rig description"
}

func (s *LoadRigStep) Execute(ctx *Context) error {
	loader := config.NewLoader()
	rig, err := loader.Load(s.ConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	jobs, err := loader.ConvertToChainJobs(rig)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	ctx.Rig = rig
	ctx.Jobs = jobs
	ctx.OutputFile = rig.Export
	if s.Export != "" {
		ctx.OutputFile = s.Export
	}
	ui.PrintSuccess(fmt.Sprintf("Loaded rig with %d chain%s", len(jobs), pluralize(len(jobs))))

	if ui.IsVerbose() {
		for _, job := range jobs {
			ui.PrintItem(fmt.Sprintf("Chain: %s_%s (%s, %d position%s)",
				job.Spec.Name, job.Spec.Side, job.Mode, len(job.Spec.Positions), pluralize(len(job.Spec.Positions))))
		}
	}
	return nil
}

// CheckOutputStep checks that the export directory is usable before
// anything is built
type CheckOutputStep struct{}

func (s *CheckOutputStep) Name() string {
	return "Check output path"
}

func (s *CheckOutputStep) Execute(ctx *Context) error {
	if ctx.OutputFile == "" {
		if ui.IsVerbose() {
			ui.PrintInfo("No export path, skipping")
		}
		return nil
	}
	if err := preconditions.ValidateOutputPath(ctx.OutputFile); err != nil {
		return fmt.Errorf("invalid export path: %w", err)
	}
	return nil
}

// BuildChainsStep builds every chain of the rig into the scene
type BuildChainsStep struct{}

func (s *BuildChainsStep) Name() string {
	return "Build joint chains"
}

func (s *BuildChainsStep) Execute(ctx *Context) error {
	namer := naming.NewGenerator(ctx.Scene.Exists)
	precision := config.PrecisionOf(ctx.Rig)

	for i, job := range ctx.Jobs {
		ui.PrintProgress(i, len(ctx.Jobs), job.Spec.Name)

		reporter := ui.NewReporter(job.Spec.Name + "_" + job.Spec.Side)
		builder := chain.NewBuilder(ctx.Scene, namer,
			chain.WithPrecision(precision),
			chain.WithReporter(reporter))

		c := chain.New(job.Spec.Name, job.Spec.Side, job.Spec.StartIndex())
		res, err := buildChain(builder, c, job)
		if err != nil {
			return fmt.Errorf("chain %s: %w", job.Spec.Name, err)
		}

		ctx.Chains = append(ctx.Chains, c)
		ctx.Results = append(ctx.Results, res)
		ctx.Warnings += reporter.Count()
	}
	ui.PrintProgress(len(ctx.Jobs), len(ctx.Jobs), "done")

	for _, c := range ctx.Chains {
		ui.PrintSuccess(fmt.Sprintf("Built %s", c))
	}
	return nil
}

func buildChain(b *chain.Builder, c *chain.Chain, job config.ChainJob) (*chain.Result, error) {
	switch job.Mode {
	case chain.Arbitrary:
		return b.Arbitrary(c, job.Arbitrary)
	case chain.Linear:
		return b.Linear(c, job.Linear)
	case chain.Planar:
		return b.Planar(c, job.Planar)
	default:
		return nil, fmt.Errorf("unsupported mode %s", job.Mode)
	}
}

// ParentChainsStep parents chain roots under the nodes named by the rig
type ParentChainsStep struct{}

func (s *ParentChainsStep) Name() string {
	return "Parent chains"
}

func (s *ParentChainsStep) Execute(ctx *Context) error {
	for i, job := range ctx.Jobs {
		if job.Spec.Parent == "" {
			continue
		}
		root, ok := ctx.Chains[i].Root()
		if !ok {
			continue
		}
		parent, err := ctx.Scene.ByName(job.Spec.Parent)
		if err != nil {
			return fmt.Errorf("chain %s: parent %s: %w", job.Spec.Name, job.Spec.Parent, err)
		}
		if err := ctx.Scene.SetParent(root.ID, parent.ID); err != nil {
			return fmt.Errorf("chain %s: %w", job.Spec.Name, err)
		}
		if ui.IsVerbose() {
			ui.PrintItem(fmt.Sprintf("%s → %s", root.Name, parent.Name))
		}
	}
	return nil
}

// ZeroGroupsStep inserts offset groups above chain roots
type ZeroGroupsStep struct{}

func (s *ZeroGroupsStep) Name() string {
	return "Create zero groups"
}

func (s *ZeroGroupsStep) Execute(ctx *Context) error {
	for i, job := range ctx.Jobs {
		if !job.Spec.ZeroGroup {
			continue
		}
		root, ok := ctx.Chains[i].Root()
		if !ok {
			continue
		}
		name, err := naming.ZeroGroupName(job.Spec.Name, job.Spec.Side)
		if err != nil {
			return fmt.Errorf("chain %s: %w", job.Spec.Name, err)
		}
		name, err = naming.Unique(name, ctx.Scene.Exists)
		if err != nil {
			return fmt.Errorf("chain %s: %w", job.Spec.Name, err)
		}
		grp, err := ctx.Scene.ZeroGroup(root.ID, name)
		if err != nil {
			return fmt.Errorf("chain %s: %w", job.Spec.Name, err)
		}
		if ui.IsVerbose() {
			ui.PrintItem(fmt.Sprintf("%s above %s", grp.Name, root.Name))
		}
	}
	return nil
}

// LockAttributesStep locks and hides the configured channels on every
// joint of a chain
type LockAttributesStep struct{}

func (s *LockAttributesStep) Name() string {
	return "Lock attributes"
}

func (s *LockAttributesStep) Execute(ctx *Context) error {
	for i, job := range ctx.Jobs {
		if len(job.Channels) == 0 {
			continue
		}
		for _, j := range ctx.Chains[i].Joints() {
			if err := attrs.LockAndHide(ctx.Scene, j.ID, job.Channels); err != nil {
				return fmt.Errorf("chain %s, joint %s: %w", job.Spec.Name, j.Name, err)
			}
		}
		if ui.IsVerbose() {
			short := make([]string, 0, len(job.Channels))
			for _, ch := range job.Channels {
				if sn, ok := attrs.ShortName(ch); ok {
					short = append(short, sn)
				}
			}
			ui.PrintItem(fmt.Sprintf("%s_%s: %s", job.Spec.Name, job.Spec.Side, strings.Join(short, ",")))
		}
	}
	return nil
}

// RenderSceneStep converts the scene into its exported document
type RenderSceneStep struct{}

func (s *RenderSceneStep) Name() string {
	return "Render scene document"
}

func (s *RenderSceneStep) Execute(ctx *Context) error {
	meta := []models.Metadata{
		{Name: "generator", Value: version.Get().String()},
		{Name: "source", Value: filepath.Base(ctx.ConfigPath)},
		{Name: "chains", Value: fmt.Sprintf("%d", len(ctx.Chains))},
	}
	doc := ctx.Scene.Export(meta...)
	ctx.Document = &doc

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return fmt.Errorf("failed to encode scene: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to encode scene: %w", err)
	}
	ctx.Data = buf.Bytes()
	return nil
}

// ReportStep prints the joint hierarchy of the built scene
type ReportStep struct{}

func (s *ReportStep) Name() string {
	return "Report scene"
}

func (s *ReportStep) Execute(ctx *Context) error {
	doc := ctx.Scene.Export()
	printer := inspect.NewScenePrinter()
	ui.PrintHeader("Hierarchy:")
	printer.PrintHierarchy(&doc)
	printer.PrintExtent(&doc)
	if ui.IsVerbose() {
		ui.PrintHeader("Joints:")
		printer.PrintJointTable(&doc)
	}
	return nil
}

// ExportStep writes the scene document to the output file
type ExportStep struct{}

func (s *ExportStep) Name() string {
	return "Export scene"
}

func (s *ExportStep) Execute(ctx *Context) error {
	if ctx.OutputFile == "" {
		return nil
	}
	if err := os.WriteFile(ctx.OutputFile, ctx.Data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", ctx.OutputFile, err)
	}
	ui.PrintSuccess(fmt.Sprintf("Exported %d node%s", len(ctx.Document.Nodes), pluralize(len(ctx.Document.Nodes))))
	return nil
}

// PrintSceneStep writes the highlighted scene document to the terminal
type PrintSceneStep struct {
	Style string
}

func (s *PrintSceneStep) Name() string {
	return "Print scene"
}

func (s *PrintSceneStep) Execute(ctx *Context) error {
	style := s.Style
	if style == "" {
		style = DefaultStyle
	}
	ui.PrintSeparator()
	if err := quick.Highlight(ui.Output, string(ctx.Data), "yaml", "terminal256", style); err != nil {
		return fmt.Errorf("failed to print scene: %w", err)
	}
	return nil
}
