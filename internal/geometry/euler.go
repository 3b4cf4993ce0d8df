package geometry

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

// gimbalEpsilon is the cos(Y) below which the X and Z rotations are no
// longer separable.
const gimbalEpsilon = 1e-12

// Euler holds rotation angles in degrees. They are applied in XYZ order:
// first about X, then Y, then Z, all about the fixed world axes.
type Euler struct {
	X, Y, Z float64
}

// EulerFromSlice converts a three element slice into an Euler triple.
func EulerFromSlice(s []float64) (Euler, error) {
	if len(s) != 3 {
		return Euler{}, fmt.Errorf("expected 3 angles, got %d", len(s))
	}
	return Euler{X: s[0], Y: s[1], Z: s[2]}, nil
}

// IsZero reports whether all three angles are exactly zero.
func (e Euler) IsZero() bool {
	return e == Euler{}
}

// Slice returns the angles as a slice (for YAML documents).
func (e Euler) Slice() []float64 {
	return []float64{e.X, e.Y, e.Z}
}

// String formats the angles in degrees.
func (e Euler) String() string {
	return fmt.Sprintf("(%.4f°, %.4f°, %.4f°)", e.X, e.Y, e.Z)
}

// Matrix builds the homogeneous rotation matrix for e.
// Matrices act on row vectors (v' = v·M), so M = Rx·Ry·Rz and the rows of M
// are the rotated local axes.
func (e Euler) Matrix() mgl64.Mat4 {
	rx := mgl64.DegToRad(e.X)
	ry := mgl64.DegToRad(e.Y)
	rz := mgl64.DegToRad(e.Z)

	cosX, sinX := math.Cos(rx), math.Sin(rx)
	cosY, sinY := math.Cos(ry), math.Sin(ry)
	cosZ, sinZ := math.Cos(rz), math.Sin(rz)

	m11 := cosY * cosZ
	m12 := cosY * sinZ
	m13 := -sinY

	m21 := sinX*sinY*cosZ - cosX*sinZ
	m22 := sinX*sinY*sinZ + cosX*cosZ
	m23 := sinX * cosY

	m31 := cosX*sinY*cosZ + sinX*sinZ
	m32 := cosX*sinY*sinZ - sinX*cosZ
	m33 := cosX * cosY

	return mgl64.Mat4FromRows(
		mgl64.Vec4{m11, m12, m13, 0},
		mgl64.Vec4{m21, m22, m23, 0},
		mgl64.Vec4{m31, m32, m33, 0},
		mgl64.Vec4{0, 0, 0, 1},
	)
}

// Basis returns the rows of e's rotation matrix.
func (e Euler) Basis() Basis {
	return BasisFromMatrix(e.Matrix())
}

// EulerFromMatrix decomposes the rotation part of m into XYZ Euler angles
// in degrees, so that EulerFromMatrix(m).Matrix() reproduces m's rotation.
// In gimbal lock (Y = ±90°) the Z angle is reported as zero.
func EulerFromMatrix(m mgl64.Mat4) Euler {
	cosY := math.Hypot(m.At(0, 0), m.At(0, 1))
	y := math.Atan2(-m.At(0, 2), cosY)

	var x, z float64
	if cosY > gimbalEpsilon {
		x = math.Atan2(m.At(1, 2), m.At(2, 2))
		z = math.Atan2(m.At(0, 1), m.At(0, 0))
	} else {
		x = math.Atan2(-m.At(2, 1), m.At(1, 1))
		z = 0
	}

	return Euler{
		X: mgl64.RadToDeg(x),
		Y: mgl64.RadToDeg(y),
		Z: mgl64.RadToDeg(z),
	}
}

// EulerFromBasis is EulerFromMatrix applied to a basis.
func EulerFromBasis(b Basis) Euler {
	return EulerFromMatrix(b.Matrix())
}

// Rotation returns e as a quaternion rotation acting on column vectors.
// Rotating the unit X, Y and Z vectors by it yields the rows of e.Matrix().
func (e Euler) Rotation() r3.Rotation {
	qx := quat.Number(r3.NewRotation(mgl64.DegToRad(e.X), r3.Vec{X: 1}))
	qy := quat.Number(r3.NewRotation(mgl64.DegToRad(e.Y), r3.Vec{Y: 1}))
	qz := quat.Number(r3.NewRotation(mgl64.DegToRad(e.Z), r3.Vec{Z: 1}))
	return r3.Rotation(quat.Mul(qz, quat.Mul(qy, qx)))
}

// AxesOf returns the world space directions of the local X, Y and Z axes of
// an object rotated by r.
func AxesOf(r r3.Rotation) Basis {
	return Basis{
		r.Rotate(r3.Vec{X: 1}),
		r.Rotate(r3.Vec{Y: 1}),
		r.Rotate(r3.Vec{Z: 1}),
	}
}
