package geometry

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/spatial/r3"
)

// DefaultPrecision is the number of decimal digits kept when lengths and
// dot products are compared.
const DefaultPrecision = 10

// ErrDegenerateVector is returned when a vector is too short to be normalized.
var ErrDegenerateVector = errors.New("degenerate vector")

// Round rounds x to prec decimal digits.
func Round(x float64, prec int) float64 {
	return scalar.Round(x, prec)
}

// RoundVec rounds every component of v. Negative zero becomes zero.
func RoundVec(v r3.Vec, prec int) r3.Vec {
	r := r3.Vec{X: Round(v.X, prec), Y: Round(v.Y, prec), Z: Round(v.Z, prec)}
	if r.X == 0 {
		r.X = 0
	}
	if r.Y == 0 {
		r.Y = 0
	}
	if r.Z == 0 {
		r.Z = 0
	}
	return r
}

// Cross returns the cross product a × b.
func Cross(a, b r3.Vec) r3.Vec { return r3.Cross(a, b) }

// Dot returns the dot product of a and b.
func Dot(a, b r3.Vec) float64 { return r3.Dot(a, b) }

// Length returns the euclidean length of v.
func Length(v r3.Vec) float64 { return r3.Norm(v) }

// IsZero reports whether the length of v rounds to zero at prec digits.
func IsZero(v r3.Vec, prec int) bool {
	return Round(r3.Norm(v), prec) == 0
}

// Normalize returns v scaled to unit length. It fails with
// ErrDegenerateVector when the length of v rounds to zero at prec digits.
func Normalize(v r3.Vec, prec int) (r3.Vec, error) {
	l := r3.Norm(v)
	if Round(l, prec) == 0 {
		return r3.Vec{}, fmt.Errorf("%w: %s", ErrDegenerateVector, FormatVec(v))
	}
	return r3.Scale(1/l, v), nil
}

// VecFromSlice converts a three element slice (as found in YAML documents)
// into a vector.
func VecFromSlice(s []float64) (r3.Vec, error) {
	if len(s) != 3 {
		return r3.Vec{}, fmt.Errorf("expected 3 components, got %d", len(s))
	}
	return r3.Vec{X: s[0], Y: s[1], Z: s[2]}, nil
}

// ParseVec parses a vector written as "x,y,z".
func ParseVec(s string) (r3.Vec, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return r3.Vec{}, fmt.Errorf("invalid vector %q: expected x,y,z", s)
	}
	var c [3]float64
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return r3.Vec{}, fmt.Errorf("invalid vector %q: %w", s, err)
		}
		c[i] = f
	}
	return r3.Vec{X: c[0], Y: c[1], Z: c[2]}, nil
}

// FormatVec formats v for messages.
func FormatVec(v r3.Vec) string {
	return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z)
}
