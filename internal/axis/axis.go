// Package axis turns a pair of signed axis labels and two direction vectors
// into an orthonormal joint basis.
//
// A label names one of the six signed unit axes: +x, -x, +y, -y, +z, -z.
// The aim label picks the local axis that points down the chain, the twist
// label the local axis that points towards the up reference. The letter of
// each label decides the matrix row its vector lands in (x→0, y→1, z→2);
// the sign is applied to the vectors by the caller before the basis is built.
package axis

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// ErrInvalidAxisPair is returned for unknown labels and for aim/twist pairs
// that share an axis letter.
var ErrInvalidAxisPair = errors.New("invalid axis pair")

// Letter is an unsigned axis. Its value is the matrix row it occupies.
type Letter int

const (
	X Letter = iota
	Y
	Z
)

// Row returns the basis row the letter maps to.
func (l Letter) Row() int { return int(l) }

func (l Letter) String() string {
	switch l {
	case X:
		return "x"
	case Y:
		return "y"
	case Z:
		return "z"
	}
	return fmt.Sprintf("Letter(%d)", int(l))
}

// Label is a signed axis selector. The zero value is invalid.
type Label struct {
	Letter   Letter
	Negative bool
	valid    bool
}

// Labels lists the six valid labels in declaration order.
var Labels = []Label{
	{Letter: X, valid: true},
	{Letter: X, Negative: true, valid: true},
	{Letter: Y, valid: true},
	{Letter: Y, Negative: true, valid: true},
	{Letter: Z, valid: true},
	{Letter: Z, Negative: true, valid: true},
}

// Parse reads one of "+x", "-x", "+y", "-y", "+z", "-z".
func Parse(s string) (Label, error) {
	for _, l := range Labels {
		if l.String() == s {
			return l, nil
		}
	}
	return Label{}, fmt.Errorf("%w: %q is not one of +x, -x, +y, -y, +z, -z", ErrInvalidAxisPair, s)
}

// MustParse is Parse for labels known at compile time.
func MustParse(s string) Label {
	l, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return l
}

// Valid reports whether l is one of the six labels.
func (l Label) Valid() bool { return l.valid }

func (l Label) String() string {
	if !l.valid {
		return "invalid"
	}
	if l.Negative {
		return "-" + l.Letter.String()
	}
	return "+" + l.Letter.String()
}

// Apply returns v, negated when the label is negative.
func (l Label) Apply(v r3.Vec) r3.Vec {
	if l.Negative {
		return r3.Scale(-1, v)
	}
	return v
}

// SameAxis reports whether a and b share a letter regardless of sign.
func SameAxis(a, b Label) bool {
	return a.Letter == b.Letter
}

// ParsePair parses and checks an aim/twist pair. It runs before any vector
// math so invalid pairs never reach the basis builder.
func ParsePair(aim, twist string) (Label, Label, error) {
	a, err := Parse(aim)
	if err != nil {
		return Label{}, Label{}, fmt.Errorf("aim axis: %w", err)
	}
	t, err := Parse(twist)
	if err != nil {
		return Label{}, Label{}, fmt.Errorf("twist axis: %w", err)
	}
	if err := CheckPair(a, t); err != nil {
		return Label{}, Label{}, err
	}
	return a, t, nil
}

// CheckPair validates an already parsed pair.
func CheckPair(aim, twist Label) error {
	if !aim.Valid() || !twist.Valid() {
		return fmt.Errorf("%w: labels must be one of +x, -x, +y, -y, +z, -z", ErrInvalidAxisPair)
	}
	if SameAxis(aim, twist) {
		return fmt.Errorf("%w: aim %s and twist %s share the same axis", ErrInvalidAxisPair, aim, twist)
	}
	return nil
}
