package axis

import (
	"fmt"

	"github.com/philipparndt/gorig/internal/geometry"
	"gonum.org/v1/gonum/spatial/r3"
)

type letterPair struct {
	aim, twist Letter
}

// aimFirst holds the pairs whose third vector is aim × twist. For every
// other pair it is twist × aim. The cyclic pairs keep the rows right handed:
// x × y = z, y × z = x, z × x = y.
var aimFirst = map[letterPair]bool{
	{X, Y}: true,
	{Y, Z}: true,
	{Z, X}: true,
}

// ThirdLetter returns the letter used by neither a nor b.
func ThirdLetter(a, b Letter) Letter {
	return Letter(3 - int(a) - int(b))
}

// Input describes one basis to build. AimVec and TwistVec are unit vectors
// with the label signs already applied. ThirdVec is optional.
type Input struct {
	Aim      Label
	Twist    Label
	AimVec   r3.Vec
	TwistVec r3.Vec
	ThirdVec *r3.Vec
}

// ThirdVector computes the vector that completes a right handed basis for
// the given labels.
func ThirdVector(aim, twist Label, aimVec, twistVec r3.Vec, prec int) (r3.Vec, error) {
	if err := CheckPair(aim, twist); err != nil {
		return r3.Vec{}, err
	}
	var third r3.Vec
	if aimFirst[letterPair{aim.Letter, twist.Letter}] {
		third = r3.Cross(aimVec, twistVec)
	} else {
		third = r3.Cross(twistVec, aimVec)
	}
	return geometry.Normalize(third, prec)
}

// BuildBasis places the aim, twist and third vectors into the rows named by
// their letters.
func BuildBasis(in Input, prec int) (geometry.Basis, error) {
	if err := CheckPair(in.Aim, in.Twist); err != nil {
		return geometry.Basis{}, err
	}

	var third r3.Vec
	if in.ThirdVec != nil {
		v, err := geometry.Normalize(*in.ThirdVec, prec)
		if err != nil {
			return geometry.Basis{}, fmt.Errorf("third vector: %w", err)
		}
		third = v
	} else {
		v, err := ThirdVector(in.Aim, in.Twist, in.AimVec, in.TwistVec, prec)
		if err != nil {
			return geometry.Basis{}, fmt.Errorf("aim %s and twist %s vectors: %w", in.Aim, in.Twist, err)
		}
		third = v
	}

	var b geometry.Basis
	b[in.Aim.Letter.Row()] = in.AimVec
	b[in.Twist.Letter.Row()] = in.TwistVec
	b[ThirdLetter(in.Aim.Letter, in.Twist.Letter).Row()] = third
	return b, nil
}
