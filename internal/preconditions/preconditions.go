// Package preconditions checks the geometric requirements of the chain
// build modes: collinear positions for linear chains and coplanar positions
// for planar chains.
package preconditions

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/philipparndt/gorig/internal/geometry"
	"github.com/philipparndt/gorig/internal/host"
)

var (
	// ErrInsufficientPoints is returned when too few distinct positions
	// remain for the requested check.
	ErrInsufficientPoints = errors.New("insufficient distinct points")
	// ErrAllPointsCoincide is returned when every position is the same
	// point and no direction can be derived.
	ErrAllPointsCoincide = errors.New("all points coincide")
	// ErrCollinearPoints is returned when a plane is requested for points
	// that all lie on one line.
	ErrCollinearPoints = errors.New("points are collinear, plane is undefined")
)

// Checker runs the geometric checks at a fixed rounding precision.
type Checker struct {
	Precision int
	Reporter  host.Reporter
}

// NewChecker creates a checker. A nil reporter discards warnings.
func NewChecker(precision int, reporter host.Reporter) *Checker {
	if reporter == nil {
		reporter = host.Discard
	}
	return &Checker{Precision: precision, Reporter: reporter}
}

// CountDistinct returns the number of distinct positions. Positions are
// compared exactly.
func CountDistinct(positions []r3.Vec) int {
	seen := make(map[r3.Vec]struct{}, len(positions))
	for _, p := range positions {
		seen[p] = struct{}{}
	}
	return len(seen)
}

// HasDuplicates reports whether any position appears more than once.
func HasDuplicates(positions []r3.Vec) bool {
	return CountDistinct(positions) < len(positions)
}

func (c *Checker) warnDuplicates(positions []r3.Vec) int {
	distinct := CountDistinct(positions)
	if distinct < len(positions) {
		c.Reporter.Warn(fmt.Sprintf("%d of %d positions overlap each other", len(positions)-distinct, len(positions)))
	}
	return distinct
}

// IsCollinear reports whether all positions lie on one line. Fewer than two
// positions are trivially collinear. If two or more positions all coincide
// the direction is undefined and ErrAllPointsCoincide is returned.
func (c *Checker) IsCollinear(positions []r3.Vec) (bool, error) {
	if len(positions) < 2 {
		return true, nil
	}
	distinct := c.warnDuplicates(positions)

	anchor, ref, index, ok := c.firstSegment(positions)
	if !ok {
		c.Reporter.Warn("all positions overlap each other")
		return false, fmt.Errorf("%w: %d positions at %s", ErrAllPointsCoincide, len(positions), geometry.FormatVec(positions[0]))
	}
	if distinct == 2 {
		return true, nil
	}

	refLen := r3.Norm(ref)
	for i := index + 1; i < len(positions); i++ {
		d := r3.Sub(positions[i], anchor)
		l := r3.Norm(d)
		if geometry.Round(l, c.Precision) == 0 {
			continue
		}
		cos := math.Abs(r3.Dot(ref, d) / (refLen * l))
		if geometry.Round(cos, c.Precision) != 1 {
			return false, nil
		}
	}
	return true, nil
}

// firstSegment finds the first consecutive pair with a non-zero
// displacement at the checker precision.
func (c *Checker) firstSegment(positions []r3.Vec) (anchor, dir r3.Vec, index int, ok bool) {
	for i := 0; i < len(positions)-1; i++ {
		d := r3.Sub(positions[i+1], positions[i])
		if !geometry.IsZero(d, c.Precision) {
			return positions[i], d, i, true
		}
	}
	return r3.Vec{}, r3.Vec{}, -1, false
}

// FirstDirection returns the first non-zero displacement between
// consecutive positions.
func (c *Checker) FirstDirection(positions []r3.Vec) (r3.Vec, error) {
	_, d, _, ok := c.firstSegment(positions)
	if !ok {
		return r3.Vec{}, ErrAllPointsCoincide
	}
	return d, nil
}

// IsCoplanar reports whether all positions lie on one plane and returns the
// unit plane normal. At least three distinct positions are required.
func (c *Checker) IsCoplanar(positions []r3.Vec) (bool, r3.Vec, error) {
	distinct := c.warnDuplicates(positions)
	if distinct < 3 {
		return false, r3.Vec{}, fmt.Errorf("%w: there has to be at least 3 non-overlapping positions, found %d", ErrInsufficientPoints, distinct)
	}

	normal, err := c.planeNormal(positions)
	if err != nil {
		return false, r3.Vec{}, err
	}

	anchor := positions[0]
	for i := 1; i < len(positions); i++ {
		d := r3.Dot(r3.Sub(positions[i], anchor), normal)
		if geometry.Round(d, c.Precision) != 0 {
			return false, r3.Vec{}, nil
		}
	}
	return true, normal, nil
}

// planeNormal returns (p2-p0)x(p1-p0) normalized. When the first three
// points are collinear it looks for the first later point that spans a
// plane with the first edge.
func (c *Checker) planeNormal(positions []r3.Vec) (r3.Vec, error) {
	anchor := positions[0]
	var edge r3.Vec
	found := false
	for i := 1; i < len(positions); i++ {
		e := r3.Sub(positions[i], anchor)
		if geometry.IsZero(e, c.Precision) {
			continue
		}
		if !found {
			edge = e
			found = true
			continue
		}
		n := r3.Cross(e, edge)
		if !geometry.IsZero(n, c.Precision) {
			return r3.Unit(n), nil
		}
	}
	return r3.Vec{}, ErrCollinearPoints
}

// ValidateOutputPath checks that the directory of an export path exists
// and is writable.
func ValidateOutputPath(path string) error {
	dir := filepath.Dir(path)
	if dir == "" {
		dir = "."
	}
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("output directory %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", dir)
	}
	if info.Mode()&0200 == 0 {
		return fmt.Errorf("output directory %s is not writable", dir)
	}
	return nil
}
