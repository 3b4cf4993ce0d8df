// Package naming builds node names following the rig naming convention:
// base_side[_frontOrHind][_ikOrFk][_suffix1]_suffix[_num] with numbers
// zero padded to Padding digits.
package naming

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/philipparndt/gorig/internal/host"
)

// Padding is the number of digits used for name numbers.
const Padding = 2

// maxAttempts bounds the search for a free name.
const maxAttempts = 2000

var (
	ErrInvalidSide   = errors.New("invalid side")
	ErrInvalidSuffix = errors.New("invalid suffix")
	ErrNameExhausted = errors.New("no unique name available")
	ErrInvalidName   = errors.New("name does not follow the naming convention")
)

// Sides are the valid side tags.
var Sides = []string{"M", "L", "R"}

// Suffixes are the valid suffix tags.
var Suffixes = []string{
	"ctrl", "jnt", "skinJnt", "grp",
	"zero", // group which zeroes out transforms
	"off",  // additional group underneath the zero group
	"loc", "geo", "crv", "drvCrv",
	"ik", "fk", "config",
	"bshp",  // blendshape target
	"guide", // guide curve
	"plug",  // module plug
	"meta",
	"front", "hind", "up", "low",
	"lyr", // display layer
}

var (
	sideSet   = toSet(Sides)
	suffixSet = toSet(Suffixes)
)

func toSet(values []string) map[string]struct{} {
	m := make(map[string]struct{}, len(values))
	for _, v := range values {
		m[v] = struct{}{}
	}
	return m
}

// IsSide reports whether s is a valid side tag.
func IsSide(s string) bool {
	_, ok := sideSet[s]
	return ok
}

// IsSuffix reports whether s is a valid suffix tag.
func IsSuffix(s string) bool {
	_, ok := suffixSet[s]
	return ok
}

// Parts are the components of a name. Empty parts and a zero Num are
// left out.
type Parts struct {
	Base        string
	Side        string
	FrontOrHind string
	IkOrFk      string
	Suffix1     string
	Suffix      string
	Num         int
}

// Pad formats n with Padding digits.
func Pad(n int) string {
	return fmt.Sprintf("%0*d", Padding, n)
}

// Build joins the parts with underscores after validating the tags.
func Build(p Parts) (string, error) {
	if !IsSide(p.Side) {
		return "", fmt.Errorf("%w: %q (must be one of %s)", ErrInvalidSide, p.Side, strings.Join(Sides, ", "))
	}
	if !IsSuffix(p.Suffix) {
		return "", fmt.Errorf("%w: %q", ErrInvalidSuffix, p.Suffix)
	}
	for _, s := range []string{p.FrontOrHind, p.IkOrFk, p.Suffix1} {
		if s != "" && !IsSuffix(s) {
			return "", fmt.Errorf("%w: %q", ErrInvalidSuffix, s)
		}
	}

	parts := make([]string, 0, 7)
	for _, s := range []string{p.Base, p.Side, p.FrontOrHind, p.IkOrFk, p.Suffix1, p.Suffix} {
		if s != "" {
			parts = append(parts, s)
		}
	}
	if p.Num != 0 {
		parts = append(parts, Pad(p.Num))
	}
	return strings.Join(parts, "_"), nil
}

// Unique returns name if exists reports it free. Otherwise a numeric tail
// is incremented, or "_01" appended when there is none, until a free name
// is found.
func Unique(name string, exists func(string) bool) (string, error) {
	for i := 1; exists(name); i++ {
		if i >= maxAttempts {
			return "", fmt.Errorf("%w: %s after %d attempts", ErrNameExhausted, name, maxAttempts)
		}
		parts := strings.Split(name, "_")
		last := parts[len(parts)-1]
		if n, err := strconv.Atoi(last); err == nil && isDigits(last) {
			parts[len(parts)-1] = Pad(n + 1)
			name = strings.Join(parts, "_")
		} else {
			name = name + "_" + Pad(i)
		}
	}
	return name, nil
}

// Check validates the tail of a name: a number must carry the right
// padding, anything else must be a known suffix.
func Check(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidName)
	}
	parts := strings.Split(name, "_")
	last := parts[len(parts)-1]
	if isDigits(last) {
		if len(last) != Padding {
			return fmt.Errorf("%w: %s has wrong zero padding", ErrInvalidName, name)
		}
		return nil
	}
	if !IsSuffix(last) {
		return fmt.Errorf("%w: %s has unknown suffix %q", ErrInvalidName, name, last)
	}
	return nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Generator builds unique names against a scene lookup.
type Generator struct {
	Exists func(name string) bool
}

var _ host.Namer = (*Generator)(nil)

// NewGenerator creates a generator that checks names with exists.
func NewGenerator(exists func(name string) bool) *Generator {
	return &Generator{Exists: exists}
}

// UniqueName builds base_side_suffix_num and makes it unique.
func (g *Generator) UniqueName(base, side, suffix string, num int) (string, error) {
	name, err := Build(Parts{Base: base, Side: side, Suffix: suffix, Num: num})
	if err != nil {
		return "", err
	}
	return Unique(name, g.Exists)
}

// ZeroGroupName is the name of the offset group for a node with the given
// base and side, e.g. armZero_L_grp.
func ZeroGroupName(base, side string) (string, error) {
	return Build(Parts{Base: base + "Zero", Side: side, Suffix: "grp"})
}
