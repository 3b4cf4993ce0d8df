package chain

import (
	"errors"
	"math"
	"strings"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/philipparndt/gorig/internal/geometry"
	"github.com/philipparndt/gorig/internal/host"
	"github.com/philipparndt/gorig/internal/naming"
	"github.com/philipparndt/gorig/internal/scene"
)

func newBuilder(s host.Scene, exists func(string) bool, opts ...Option) *Builder {
	return NewBuilder(s, naming.NewGenerator(exists), opts...)
}

func vecNear(a, b r3.Vec) bool {
	return r3.Norm(r3.Sub(a, b)) < 1e-9
}

func eulerNear(a, b geometry.Euler) bool {
	return math.Abs(a.X-b.X) < 1e-9 && math.Abs(a.Y-b.Y) < 1e-9 && math.Abs(a.Z-b.Z) < 1e-9
}

func axes(t *testing.T, s *scene.Scene, j host.Joint) geometry.Basis {
	t.Helper()
	b, err := s.Axes(j.ID)
	if err != nil {
		t.Fatalf("Axes(%s) unexpected error: %v", j.Name, err)
	}
	return b
}

func node(t *testing.T, s *scene.Scene, j host.Joint) *scene.Node {
	t.Helper()
	n, err := s.Lookup(j.ID)
	if err != nil {
		t.Fatalf("Lookup(%s) unexpected error: %v", j.Name, err)
	}
	return n
}

func twist(v r3.Vec) *r3.Vec { return &v }

func TestLinearCollinearScenario(t *testing.T) {
	s := scene.New()
	b := newBuilder(s, s.Exists)
	c := New("arm", "L", 1)

	res, err := b.Linear(c, LinearInput{
		Positions:   []r3.Vec{{}, {X: 1}, {X: 2}},
		Aim:         "+x",
		Twist:       "+y",
		TwistVector: twist(r3.Vec{Y: 1}),
	})
	if err != nil {
		t.Fatalf("Linear() unexpected error: %v", err)
	}
	if res.State != Done {
		t.Errorf("State = %v, want done", res.State)
	}
	if c.Len() != 3 || len(res.Joints) != 3 {
		t.Fatalf("joints = %d, want 3", c.Len())
	}

	wantNames := []string{"arm_L_jnt_01", "arm_L_jnt_02", "arm_L_jnt_03"}
	for i, j := range c.Joints() {
		if j.Name != wantNames[i] {
			t.Errorf("joint %d name = %q, want %q", i, j.Name, wantNames[i])
		}
	}

	if len(res.Rotations) != 2 {
		t.Fatalf("rotations = %d, want 2", len(res.Rotations))
	}
	for i, r := range res.Rotations {
		if !eulerNear(r, geometry.Euler{}) {
			t.Errorf("rotation %d = %v, want identity", i, r)
		}
	}

	joints := c.Joints()
	if node(t, s, joints[0]).Parent != nil {
		t.Error("joint 0 should be the root")
	}
	for i := 1; i < 3; i++ {
		p := node(t, s, joints[i]).Parent
		if p == nil || p.ID != joints[i-1].ID {
			t.Errorf("joint %d parent = %v, want %s", i, p, joints[i-1].Name)
		}
	}
	if o := node(t, s, joints[2]).Orient; !eulerNear(o, geometry.Euler{}) {
		t.Errorf("last joint orient = %v, want zero", o)
	}
	identity := geometry.Basis{{X: 1}, {Y: 1}, {Z: 1}}
	for i, j := range joints {
		got := axes(t, s, j)
		for r := range got {
			if !vecNear(got[r], identity[r]) {
				t.Errorf("joint %d axis %d = %v, want %v", i, r, got[r], identity[r])
			}
		}
		if want := (r3.Vec{X: float64(i)}); !vecNear(node(t, s, j).WorldPosition(), want) {
			t.Errorf("joint %d position = %v, want %v", i, node(t, s, j).WorldPosition(), want)
		}
	}
	if len(s.Selection()) != 0 {
		t.Errorf("selection = %v, want empty", s.Selection())
	}
}

func TestLinearDiagonal(t *testing.T) {
	s := scene.New()
	b := newBuilder(s, s.Exists)
	c := New("spine", "M", 1)

	_, err := b.Linear(c, LinearInput{
		Positions:   []r3.Vec{{}, {X: 1, Y: 1}, {X: 2, Y: 2}, {X: 3, Y: 3}},
		Aim:         "+x",
		Twist:       "+z",
		TwistVector: twist(r3.Vec{Z: 5}),
	})
	if err != nil {
		t.Fatalf("Linear() unexpected error: %v", err)
	}

	aim := r3.Unit(r3.Vec{X: 1, Y: 1})
	for i, j := range c.Joints()[:3] {
		a := axes(t, s, j)
		if !vecNear(a[0], aim) {
			t.Errorf("joint %d x axis = %v, want %v", i, a[0], aim)
		}
		if !vecNear(a[2], r3.Vec{Z: 1}) {
			t.Errorf("joint %d z axis = %v, want (0, 0, 1)", i, a[2])
		}
		if !vecNear(r3.Cross(a[0], a[1]), a[2]) {
			t.Errorf("joint %d axes are not right handed: %v", i, a)
		}
	}
}

func TestLinearNegativeAim(t *testing.T) {
	s := scene.New()
	b := newBuilder(s, s.Exists)
	c := New("tail", "M", 1)

	_, err := b.Linear(c, LinearInput{
		Positions:   []r3.Vec{{}, {X: 1}, {X: 2}},
		Aim:         "-x",
		Twist:       "+y",
		TwistVector: twist(r3.Vec{Y: 1}),
	})
	if err != nil {
		t.Fatalf("Linear() unexpected error: %v", err)
	}
	a := axes(t, s, c.Joints()[0])
	if !vecNear(a[0], r3.Vec{X: -1}) {
		t.Errorf("x axis = %v, want (-1, 0, 0)", a[0])
	}
	if !vecNear(a[1], r3.Vec{Y: 1}) {
		t.Errorf("y axis = %v, want (0, 1, 0)", a[1])
	}
	if !vecNear(a[2], r3.Vec{Z: -1}) {
		t.Errorf("z axis = %v, want (0, 0, -1)", a[2])
	}
}

func TestLinearSkipLast(t *testing.T) {
	s := scene.New()
	b := newBuilder(s, s.Exists)
	c := New("neck", "M", 1)

	res, err := b.Linear(c, LinearInput{
		Positions:   []r3.Vec{{}, {Z: 1}, {Z: 2}, {Z: 3}},
		Aim:         "+y",
		Twist:       "-x",
		TwistVector: twist(r3.Vec{X: 1}),
		SkipLast:    true,
	})
	if err != nil {
		t.Fatalf("Linear() unexpected error: %v", err)
	}
	if c.Len() != 3 {
		t.Fatalf("joints = %d, want 3", c.Len())
	}
	if len(res.Rotations) != 2 {
		t.Errorf("rotations = %d, want 2", len(res.Rotations))
	}
	a := axes(t, s, c.Joints()[0])
	if !vecNear(a[1], r3.Vec{Z: 1}) {
		t.Errorf("y axis = %v, want (0, 0, 1)", a[1])
	}
	if !vecNear(a[0], r3.Vec{X: -1}) {
		t.Errorf("x axis = %v, want (-1, 0, 0)", a[0])
	}
	if o := node(t, s, c.Joints()[2]).Orient; !eulerNear(o, geometry.Euler{}) {
		t.Errorf("last joint orient = %v, want zero", o)
	}
}

func TestLinearDuplicateWarning(t *testing.T) {
	s := scene.New()
	var reported []string
	b := newBuilder(s, s.Exists, WithReporter(host.ReporterFunc(func(msg string) {
		reported = append(reported, msg)
	})))
	c := New("arm", "R", 1)

	res, err := b.Linear(c, LinearInput{
		Positions:   []r3.Vec{{}, {X: 1}, {X: 1}, {X: 2}},
		Aim:         "+x",
		Twist:       "+y",
		TwistVector: twist(r3.Vec{Y: 1}),
	})
	if err != nil {
		t.Fatalf("Linear() unexpected error: %v", err)
	}
	if len(res.Warnings) != 1 || len(reported) != 1 {
		t.Errorf("warnings = %v, reported = %v, want one each", res.Warnings, reported)
	}
}

func TestLinearValidationErrors(t *testing.T) {
	line := []r3.Vec{{}, {X: 1}, {X: 2}}
	tests := []struct {
		name      string
		in        LinearInput
		wantErr   error
		wantClass error
	}{
		{
			name:      "same axis",
			in:        LinearInput{Positions: line, Aim: "+x", Twist: "-x", TwistVector: twist(r3.Vec{Y: 1})},
			wantErr:   ErrInvalidAxisPair,
			wantClass: ErrValidation,
		},
		{
			name:      "unknown label",
			in:        LinearInput{Positions: line, Aim: "x", Twist: "+y", TwistVector: twist(r3.Vec{Y: 1})},
			wantErr:   ErrInvalidAxisPair,
			wantClass: ErrValidation,
		},
		{
			name:      "missing twist vector",
			in:        LinearInput{Positions: line, Aim: "+x", Twist: "+y"},
			wantErr:   ErrMissingInput,
			wantClass: ErrInput,
		},
		{
			name:      "empty positions",
			in:        LinearInput{Aim: "+x", Twist: "+y", TwistVector: twist(r3.Vec{Y: 1})},
			wantErr:   ErrMissingInput,
			wantClass: ErrInput,
		},
		{
			name:      "not collinear",
			in:        LinearInput{Positions: []r3.Vec{{}, {X: 1}, {X: 2, Y: 1}}, Aim: "+x", Twist: "+y", TwistVector: twist(r3.Vec{Y: 1})},
			wantErr:   ErrNotCollinear,
			wantClass: ErrValidation,
		},
		{
			name:      "not perpendicular",
			in:        LinearInput{Positions: line, Aim: "+x", Twist: "+y", TwistVector: twist(r3.Vec{X: 1, Y: 1})},
			wantErr:   ErrNotPerpendicular,
			wantClass: ErrValidation,
		},
		{
			name:      "too few with skip last",
			in:        LinearInput{Positions: line[:2], Aim: "+x", Twist: "+y", TwistVector: twist(r3.Vec{Y: 1}), SkipLast: true},
			wantErr:   ErrInsufficientPoints,
			wantClass: ErrValidation,
		},
		{
			name:      "all points coincide",
			in:        LinearInput{Positions: []r3.Vec{{X: 1}, {X: 1}}, Aim: "+x", Twist: "+y", TwistVector: twist(r3.Vec{Y: 1})},
			wantErr:   ErrAllPointsCoincide,
			wantClass: ErrDegenerateInput,
		},
		{
			name:      "zero twist vector",
			in:        LinearInput{Positions: line, Aim: "+x", Twist: "+y", TwistVector: twist(r3.Vec{})},
			wantErr:   ErrDegenerateVector,
			wantClass: ErrDegenerateInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := scene.New()
			b := newBuilder(s, s.Exists)
			c := New("arm", "L", 1)

			res, err := b.Linear(c, tt.in)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Linear() error = %v, want %v", err, tt.wantErr)
			}
			if !errors.Is(err, tt.wantClass) {
				t.Errorf("Linear() error class = %v, want %v", err, tt.wantClass)
			}
			var chainErr *Error
			if !errors.As(err, &chainErr) || chainErr.State != Validating {
				t.Errorf("error state = %v, want validating", chainErr)
			}
			if res.State != Failed {
				t.Errorf("State = %v, want failed", res.State)
			}
			if s.Len() != 0 || c.Len() != 0 {
				t.Errorf("scene nodes = %d, chain joints = %d, want none", s.Len(), c.Len())
			}
		})
	}
}

func TestPlanar(t *testing.T) {
	s := scene.New()
	b := newBuilder(s, s.Exists)
	c := New("leg", "L", 1)
	positions := []r3.Vec{{}, {X: 1, Y: 1}, {X: 2}}

	res, err := b.Planar(c, PlanarInput{Positions: positions, Aim: "+x", Twist: "+z"})
	if err != nil {
		t.Fatalf("Planar() unexpected error: %v", err)
	}
	if c.Len() != 3 {
		t.Fatalf("joints = %d, want 3", c.Len())
	}
	if len(res.Rotations) != 2 {
		t.Errorf("rotations = %d, want 2", len(res.Rotations))
	}

	normal, ok := c.PerpendicularVector()
	if !ok || !vecNear(normal, r3.Vec{Z: 1}) {
		t.Errorf("PerpendicularVector() = %v, %v, want (0, 0, 1)", normal, ok)
	}

	joints := c.Joints()
	for i := 0; i < 2; i++ {
		a := axes(t, s, joints[i])
		wantAim := r3.Unit(r3.Sub(positions[i+1], positions[i]))
		if !vecNear(a[0], wantAim) {
			t.Errorf("joint %d x axis = %v, want %v", i, a[0], wantAim)
		}
		if !vecNear(a[2], normal) {
			t.Errorf("joint %d z axis = %v, want %v", i, a[2], normal)
		}
		if !vecNear(r3.Cross(a[0], a[1]), a[2]) {
			t.Errorf("joint %d axes are not right handed: %v", i, a)
		}
	}
	if o := node(t, s, joints[2]).Orient; !eulerNear(o, geometry.Euler{}) {
		t.Errorf("last joint orient = %v, want zero", o)
	}
	for i, p := range positions {
		if got := node(t, s, joints[i]).WorldPosition(); !vecNear(got, p) {
			t.Errorf("joint %d position = %v, want %v", i, got, p)
		}
	}
}

func TestPlanarNegativeTwistSkipLast(t *testing.T) {
	s := scene.New()
	b := newBuilder(s, s.Exists)
	c := New("finger", "R", 1)
	positions := []r3.Vec{{}, {Z: -1, X: 1}, {X: 2}, {X: 3, Z: -1}}

	_, err := b.Planar(c, PlanarInput{Positions: positions, Aim: "+x", Twist: "-y", SkipLast: true})
	if err != nil {
		t.Fatalf("Planar() unexpected error: %v", err)
	}
	if c.Len() != 3 {
		t.Fatalf("joints = %d, want 3", c.Len())
	}
	normal, _ := c.PerpendicularVector()
	if !vecNear(normal, r3.Vec{Y: -1}) {
		t.Errorf("PerpendicularVector() = %v, want (0, -1, 0)", normal)
	}
	for i, j := range c.Joints() {
		a := axes(t, s, j)
		wantAim := r3.Unit(r3.Sub(positions[i+1], positions[i]))
		if !vecNear(a[0], wantAim) {
			t.Errorf("joint %d x axis = %v, want %v", i, a[0], wantAim)
		}
		if !vecNear(a[1], normal) {
			t.Errorf("joint %d y axis = %v, want %v", i, a[1], normal)
		}
	}
}

func TestPlanarValidationErrors(t *testing.T) {
	tests := []struct {
		name      string
		in        PlanarInput
		wantErr   error
		wantClass error
	}{
		{"same axis", PlanarInput{Positions: []r3.Vec{{}, {X: 1}, {Y: 1}}, Aim: "+z", Twist: "-z"}, ErrInvalidAxisPair, ErrValidation},
		{"two distinct", PlanarInput{Positions: []r3.Vec{{}, {X: 1}, {X: 1}}, Aim: "+x", Twist: "+y"}, ErrInsufficientPoints, ErrValidation},
		{"not coplanar", PlanarInput{Positions: []r3.Vec{{}, {X: 1}, {Y: 1}, {X: 1, Y: 1, Z: 1}}, Aim: "+x", Twist: "+y"}, ErrNotCoplanar, ErrValidation},
		{"collinear", PlanarInput{Positions: []r3.Vec{{}, {X: 1}, {X: 2}}, Aim: "+x", Twist: "+y"}, ErrCollinearPoints, ErrDegenerateInput},
		{"empty", PlanarInput{Aim: "+x", Twist: "+y"}, ErrMissingInput, ErrInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := scene.New()
			b := newBuilder(s, s.Exists)
			c := New("leg", "L", 1)

			_, err := b.Planar(c, tt.in)
			if !errors.Is(err, tt.wantErr) || !errors.Is(err, tt.wantClass) {
				t.Fatalf("Planar() error = %v, want %v (%v)", err, tt.wantErr, tt.wantClass)
			}
			if s.Len() != 0 {
				t.Errorf("scene nodes = %d, want 0", s.Len())
			}
			if _, ok := c.PerpendicularVector(); ok {
				t.Error("failed build cached a perpendicular vector")
			}
		})
	}
}

func TestArbitrary(t *testing.T) {
	s := scene.New()
	b := newBuilder(s, s.Exists)
	c := New("jaw", "M", 1)
	orients := []geometry.Euler{{X: 10}, {Y: 20}, {Z: 30}}

	res, err := b.Arbitrary(c, ArbitraryInput{
		Positions:      []r3.Vec{{}, {Y: 1}, {Y: 2}},
		Orientations:   orients,
		ZeroOrientLast: true,
	})
	if err != nil {
		t.Fatalf("Arbitrary() unexpected error: %v", err)
	}
	if len(res.Rotations) != 3 {
		t.Errorf("rotations = %d, want 3", len(res.Rotations))
	}
	joints := c.Joints()
	if o := node(t, s, joints[0]).Orient; !eulerNear(o, orients[0]) {
		t.Errorf("root orient = %v, want %v", o, orients[0])
	}
	got := axes(t, s, joints[1])
	want := orients[1].Basis()
	for r := range got {
		if !vecNear(got[r], want[r]) {
			t.Errorf("joint 1 axis %d = %v, want %v", r, got[r], want[r])
		}
	}
	if o := node(t, s, joints[2]).Orient; !eulerNear(o, geometry.Euler{}) {
		t.Errorf("last orient = %v, want zero", o)
	}
}

func TestArbitraryKeepsLastWithoutZeroOrient(t *testing.T) {
	s := scene.New()
	b := newBuilder(s, s.Exists)
	c := New("jaw", "M", 1)

	_, err := b.Arbitrary(c, ArbitraryInput{
		Positions:    []r3.Vec{{}, {Y: 1}, {Y: 2}},
		Orientations: []geometry.Euler{{}, {}, {Z: 45}},
		SkipLast:     true,
	})
	if err != nil {
		t.Fatalf("Arbitrary() unexpected error: %v", err)
	}
	if c.Len() != 2 {
		t.Errorf("joints = %d, want 2", c.Len())
	}
}

func TestArbitraryLastOrient(t *testing.T) {
	orients := []geometry.Euler{{X: 10}, {Y: 20}, {Z: 30}}
	tests := []struct {
		name       string
		zeroOrient bool
		skipLast   bool
		wantZero   bool
		wantAxes   geometry.Euler
	}{
		{"kept", false, false, false, orients[2]},
		{"kept when skipping", false, true, false, orients[1]},
		{"zeroed", true, false, true, orients[1]},
		{"zeroed when skipping", true, true, true, orients[0]},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := scene.New()
			b := newBuilder(s, s.Exists)
			c := New("jaw", "M", 1)
			_, err := b.Arbitrary(c, ArbitraryInput{
				Positions:      []r3.Vec{{}, {Y: 1}, {Y: 2}},
				Orientations:   orients,
				SkipLast:       tt.skipLast,
				ZeroOrientLast: tt.zeroOrient,
			})
			if err != nil {
				t.Fatalf("Arbitrary() unexpected error: %v", err)
			}
			joints := c.Joints()
			last := joints[len(joints)-1]
			if o := node(t, s, last).Orient; o.IsZero() != tt.wantZero {
				t.Errorf("last orient = %v, want zero %v", o, tt.wantZero)
			}
			got := axes(t, s, last)
			want := tt.wantAxes.Basis()
			for r := range got {
				if !vecNear(got[r], want[r]) {
					t.Errorf("last axis %d = %v, want %v", r, got[r], want[r])
				}
			}
		})
	}
}

func TestArbitraryValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		in      ArbitraryInput
		wantErr error
	}{
		{"no positions", ArbitraryInput{Orientations: []geometry.Euler{{}}}, ErrMissingInput},
		{"no orientations", ArbitraryInput{Positions: []r3.Vec{{}}}, ErrMissingInput},
		{"length mismatch", ArbitraryInput{Positions: []r3.Vec{{}, {X: 1}}, Orientations: []geometry.Euler{{}}}, ErrLengthMismatch},
		{"skip only position", ArbitraryInput{Positions: []r3.Vec{{}}, Orientations: []geometry.Euler{{}}, SkipLast: true}, ErrInsufficientPoints},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := scene.New()
			b := newBuilder(s, s.Exists)
			_, err := b.Arbitrary(New("jaw", "M", 1), tt.in)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Arbitrary() error = %v, want %v", err, tt.wantErr)
			}
			if s.Len() != 0 {
				t.Errorf("scene nodes = %d, want 0", s.Len())
			}
		})
	}
}

func TestSecondBuildFails(t *testing.T) {
	s := scene.New()
	b := newBuilder(s, s.Exists)
	c := New("arm", "L", 1)
	in := LinearInput{Positions: []r3.Vec{{}, {X: 1}}, Aim: "+x", Twist: "+y", TwistVector: twist(r3.Vec{Y: 1})}

	if _, err := b.Linear(c, in); err != nil {
		t.Fatalf("first Linear() unexpected error: %v", err)
	}
	_, err := b.Linear(c, in)
	if !errors.Is(err, ErrChainBuilt) || !errors.Is(err, ErrInput) {
		t.Fatalf("second Linear() error = %v, want ErrChainBuilt", err)
	}
	if c.Len() != 2 || s.Len() != 2 {
		t.Errorf("chain joints = %d, scene nodes = %d, want 2 each", c.Len(), s.Len())
	}
}

func TestNamesContinueAcrossChains(t *testing.T) {
	s := scene.New()
	b := newBuilder(s, s.Exists)
	in := LinearInput{Positions: []r3.Vec{{}, {X: 1}}, Aim: "+x", Twist: "+y", TwistVector: twist(r3.Vec{Y: 1})}

	first := New("arm", "L", 1)
	second := New("arm", "L", 1)
	if _, err := b.Linear(first, in); err != nil {
		t.Fatal(err)
	}
	if _, err := b.Linear(second, in); err != nil {
		t.Fatal(err)
	}
	if got := second.Joints()[0].Name; got != "arm_L_jnt_03" {
		t.Errorf("first joint of second chain = %q, want arm_L_jnt_03", got)
	}
}

// failingScene rejects parenting so builds fail after joints exist.
type failingScene struct {
	*scene.Scene
}

func (f *failingScene) SetParent(child, parent host.NodeID) error {
	return errors.New("parenting disabled")
}

func TestRollbackOnHostFailure(t *testing.T) {
	s := scene.New()
	f := &failingScene{Scene: s}
	b := newBuilder(f, s.Exists)
	c := New("arm", "L", 1)

	res, err := b.Linear(c, LinearInput{Positions: []r3.Vec{{}, {X: 1}, {X: 2}}, Aim: "+x", Twist: "+y", TwistVector: twist(r3.Vec{Y: 1})})
	if !errors.Is(err, ErrHost) {
		t.Fatalf("Linear() error = %v, want ErrHost", err)
	}
	var chainErr *Error
	if !errors.As(err, &chainErr) || chainErr.State != Linking {
		t.Errorf("failed state = %v, want linking", chainErr)
	}
	if res.State != Failed {
		t.Errorf("State = %v, want failed", res.State)
	}
	if s.Len() != 0 {
		t.Errorf("scene nodes after rollback = %d, want 0", s.Len())
	}
	if c.Len() != 0 {
		t.Errorf("chain joints after rollback = %d, want 0", c.Len())
	}
}

// creatorOnly has no Delete method so rollback cannot clean up.
type creatorOnly struct {
	s *scene.Scene
}

func (c creatorOnly) CreateJoint(pos r3.Vec, name string) (host.Joint, error) {
	return c.s.CreateJoint(pos, name)
}
func (c creatorOnly) SetWorldRotation(id host.NodeID, rot geometry.Euler) error {
	return errors.New("rotation disabled")
}
func (c creatorOnly) FreezeRotationToOrient(id host.NodeID) error { return nil }
func (c creatorOnly) SetLocalOrientation(id host.NodeID, o geometry.Euler) error {
	return nil
}
func (c creatorOnly) SetParent(child, parent host.NodeID) error { return nil }
func (c creatorOnly) ClearSelection()                           {}

func TestRollbackWithoutDeleter(t *testing.T) {
	s := scene.New()
	b := newBuilder(creatorOnly{s: s}, s.Exists)

	_, err := b.Linear(New("arm", "L", 1), LinearInput{Positions: []r3.Vec{{}, {X: 1}}, Aim: "+x", Twist: "+y", TwistVector: twist(r3.Vec{Y: 1})})
	if err == nil || !strings.Contains(err.Error(), "cannot delete") {
		t.Fatalf("Linear() error = %v, want rollback failure", err)
	}
	if s.Len() != 2 {
		t.Errorf("scene nodes = %d, want 2 left behind", s.Len())
	}
}

func TestChainString(t *testing.T) {
	s := scene.New()
	b := newBuilder(s, s.Exists)
	c := New("arm", "L", 1)
	if _, err := b.Linear(c, LinearInput{Positions: []r3.Vec{{}, {X: 1}}, Aim: "+x", Twist: "+y", TwistVector: twist(r3.Vec{Y: 1})}); err != nil {
		t.Fatal(err)
	}
	want := "JointChain: joints number: 2, joints: [arm_L_jnt_01, arm_L_jnt_02]"
	if got := c.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestErrorMessage(t *testing.T) {
	s := scene.New()
	b := newBuilder(s, s.Exists)
	_, err := b.Planar(New("leg", "L", 1), PlanarInput{Positions: []r3.Vec{{}, {X: 1}, {Y: 1}}, Aim: "+x", Twist: "+x"})
	if err == nil {
		t.Fatal("Planar() expected error")
	}
	msg := err.Error()
	if !strings.HasPrefix(msg, "planar chain: validation error while validating") {
		t.Errorf("Error() = %q", msg)
	}
}

func TestParseMode(t *testing.T) {
	for _, m := range []Mode{Arbitrary, Linear, Planar} {
		got, err := ParseMode(m.String())
		if err != nil || got != m {
			t.Errorf("ParseMode(%q) = %v, %v", m.String(), got, err)
		}
	}
	if _, err := ParseMode("curved"); err == nil {
		t.Error("ParseMode(curved) expected error")
	}
}
