package geometry

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"gonum.org/v1/gonum/spatial/r3"
)

// Basis holds the rows of a rotation: index 0 is the local x axis expressed
// in world space, 1 the local y axis and 2 the local z axis.
type Basis [3]r3.Vec

// Row returns row i of the basis.
func (b Basis) Row(i int) r3.Vec { return b[i] }

// Det returns the determinant of the 3x3 matrix formed by the rows. A right
// handed orthonormal basis has determinant +1.
func (b Basis) Det() float64 {
	return r3.NewMat([]float64{
		b[0].X, b[0].Y, b[0].Z,
		b[1].X, b[1].Y, b[1].Z,
		b[2].X, b[2].Y, b[2].Z,
	}).Det()
}

// Orthonormal reports whether every row has unit length and every pair of
// rows is perpendicular, within tol.
func (b Basis) Orthonormal(tol float64) bool {
	for i := 0; i < 3; i++ {
		if math.Abs(r3.Norm(b[i])-1) > tol {
			return false
		}
		for j := i + 1; j < 3; j++ {
			if math.Abs(r3.Dot(b[i], b[j])) > tol {
				return false
			}
		}
	}
	return true
}

// Matrix returns the basis as a homogeneous matrix with zero translation.
func (b Basis) Matrix() mgl64.Mat4 {
	return MatrixFromBasis(b[0], b[1], b[2])
}

// MatrixFromBasis builds a 4x4 homogeneous matrix whose upper-left 3x3 rows
// are row0, row1 and row2. The translation row is zero.
func MatrixFromBasis(row0, row1, row2 r3.Vec) mgl64.Mat4 {
	return mgl64.Mat4FromRows(
		mgl64.Vec4{row0.X, row0.Y, row0.Z, 0},
		mgl64.Vec4{row1.X, row1.Y, row1.Z, 0},
		mgl64.Vec4{row2.X, row2.Y, row2.Z, 0},
		mgl64.Vec4{0, 0, 0, 1},
	)
}

// BasisFromMatrix returns the rows of the rotation part of m.
func BasisFromMatrix(m mgl64.Mat4) Basis {
	var b Basis
	for i := 0; i < 3; i++ {
		b[i] = r3.Vec{X: m.At(i, 0), Y: m.At(i, 1), Z: m.At(i, 2)}
	}
	return b
}
