package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/philipparndt/gorig/internal/attrs"
	"github.com/philipparndt/gorig/internal/buildplan"
	"github.com/philipparndt/gorig/internal/chain"
	"github.com/philipparndt/gorig/internal/geometry"
	"github.com/philipparndt/gorig/internal/inspect"
	"github.com/philipparndt/gorig/internal/naming"
	"github.com/philipparndt/gorig/internal/preconditions"
	"github.com/philipparndt/gorig/internal/scene"
	"github.com/philipparndt/gorig/internal/ui"
	"github.com/philipparndt/gorig/version"
)

type CLI struct {
	Build      *BuildCmd      `cmd:"" help:"Build the joint chains of a rig description"`
	Check      *CheckCmd      `cmd:"" help:"Check whether positions are collinear or coplanar"`
	Inspect    *InspectCmd    `cmd:"" help:"Inspect an exported scene and show its hierarchy"`
	Attrs      *AttrsCmd      `cmd:"" help:"Resolve attribute aliases into channel names"`
	Version    *VersionCmd    `cmd:"" help:"Show version information"`
	Completion *CompletionCmd `cmd:"" help:"Generate shell completion script"`
}

type BuildCmd struct {
	Rig    string `arg:"" help:"Rig description (.yaml)" type:"existingfile"`
	Export string `help:"Write the built scene to this file (overrides the rig's export)" short:"o"`
	Print  bool   `help:"Print the highlighted scene document"`
	Style  string `help:"Highlighting style used by --print" default:"monokai"`
}

// Help adds additional help text with examples
func (c *BuildCmd) Help() string {
	return renderBuildHelp()
}

func (c *BuildCmd) Run() error {
	planner := buildplan.NewPlanner()
	plan, err := planner.CreatePlan(c.Rig, buildplan.Options{
		Export: c.Export,
		Print:  c.Print,
		Style:  c.Style,
	})
	if err != nil {
		return fmt.Errorf("failed to create build plan: %w", err)
	}
	return plan.Execute()
}

type CheckCmd struct {
	Points    []string `name:"point" short:"p" help:"Position as x,y,z. Repeat for every position." sep:"none" required:""`
	Precision int      `help:"Decimal digits used for comparisons" default:"10"`
	Axes      bool     `help:"Orient a planar chain through the points and show its joint axes"`
	Aim       string   `help:"Aim axis used by --axes" default:"+x"`
	Twist     string   `help:"Twist axis used by --axes" default:"+y"`
}

func (c *CheckCmd) Run() error {
	positions, err := parsePoints(c.Points)
	if err != nil {
		return err
	}

	reporter := ui.NewReporter("")
	check := preconditions.NewChecker(c.Precision, reporter)

	ui.PrintHeader(fmt.Sprintf("Checking %d position%s", len(positions), plural(len(positions))))
	ui.PrintKeyValue("Distinct", fmt.Sprintf("%d", preconditions.CountDistinct(positions)))
	ui.PrintList("Points", distinctPoints(positions))

	collinear, err := check.IsCollinear(positions)
	if err != nil {
		return err
	}
	ui.PrintKeyValue("Collinear", yesNo(collinear))
	if collinear {
		if dir, err := check.FirstDirection(positions); err == nil {
			ui.PrintKeyValue("Direction", geometry.FormatVec(geometry.RoundVec(r3.Unit(dir), c.Precision)))
		}
		return nil
	}

	coplanar, normal, err := check.IsCoplanar(positions)
	if err != nil {
		return err
	}
	ui.PrintKeyValue("Coplanar", yesNo(coplanar))
	if !coplanar {
		return nil
	}
	ui.PrintKeyValue("Normal", geometry.FormatVec(geometry.RoundVec(normal, c.Precision)))

	if c.Axes {
		return c.printAxes(positions)
	}
	return nil
}

// distinctPoints formats each position once, in input order
func distinctPoints(positions []r3.Vec) []string {
	seen := make(map[r3.Vec]bool, len(positions))
	var out []string
	for _, p := range positions {
		if seen[p] {
			continue
		}
		seen[p] = true
		out = append(out, geometry.FormatVec(p))
	}
	return out
}

// printAxes builds the points as a planar chain in a scratch scene and
// prints the world axes of every joint
func (c *CheckCmd) printAxes(positions []r3.Vec) error {
	s := scene.New()
	b := chain.NewBuilder(s, naming.NewGenerator(s.Exists),
		chain.WithPrecision(c.Precision),
		chain.WithReporter(ui.NewReporter("")))

	ch := chain.New("check", "M", 1)
	if _, err := b.Planar(ch, chain.PlanarInput{Positions: positions, Aim: c.Aim, Twist: c.Twist}); err != nil {
		return err
	}

	ui.PrintHeader("Joint axes:")
	for _, j := range ch.Joints() {
		axes, err := s.Axes(j.ID)
		if err != nil {
			return err
		}
		ui.PrintStep(j.Name)
		for i, label := range []string{"x", "y", "z"} {
			ui.PrintItem(fmt.Sprintf("%s: %s", label, geometry.FormatVec(geometry.RoundVec(axes[i], 6))))
		}
	}
	return nil
}

func parsePoints(points []string) ([]r3.Vec, error) {
	positions := make([]r3.Vec, 0, len(points))
	for _, p := range points {
		v, err := geometry.ParseVec(p)
		if err != nil {
			return nil, err
		}
		positions = append(positions, v)
	}
	return positions, nil
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}

type InspectCmd struct {
	File string `arg:"" help:"Exported scene file to inspect"`
}

func (c *InspectCmd) Run() error {
	inspector := inspect.NewInspector()
	return inspector.Inspect(c.File)
}

type AttrsCmd struct {
	Aliases []string `arg:"" help:"Attribute aliases, e.g. t r sx v all"`
	Unlock  []string `help:"Aliases to leave out of the result" short:"u"`
	Short   bool     `help:"Print short channel names"`
}

func (c *AttrsCmd) Run() error {
	channels, err := attrs.Resolve(c.Aliases, c.Unlock)
	if err != nil {
		return err
	}
	if c.Short {
		short := make([]string, 0, len(channels))
		for _, ch := range channels {
			if s, ok := attrs.ShortName(ch); ok {
				short = append(short, s)
			}
		}
		channels = short
	}
	fmt.Fprintln(ui.Output, strings.Join(channels, " "))
	return nil
}

type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	info := version.Get()
	fmt.Fprintln(ui.Output, info.String())
	return nil
}

func newParser(cli *CLI, options ...kong.Option) (*kong.Kong, error) {
	options = append([]kong.Option{
		kong.Name("gorig"),
		kong.Description("Joint chain construction and orientation for character rigs"),
		kong.UsageOnError(),
	}, options...)
	return kong.New(cli, options...)
}

// Parse parses command line arguments and executes the appropriate command
func Parse() {
	cli := &CLI{}
	parser, err := newParser(cli)
	if err != nil {
		panic(err)
	}
	ctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	if err := ctx.Run(); err != nil {
		ui.PrintError(err.Error())
		os.Exit(1)
	}
}
