package geometry

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"gonum.org/v1/gonum/spatial/r3"
)

// FormatTransform renders a rotation and translation as a single line.
// The format is: m11 m12 m13 m21 m22 m23 m31 m32 m33 tx ty tz
func FormatTransform(rot mgl64.Mat4, t r3.Vec) string {
	// Use %.8f for precision to avoid rounding errors
	return fmt.Sprintf("%.8f %.8f %.8f %.8f %.8f %.8f %.8f %.8f %.8f %.4f %.4f %.4f",
		rot.At(0, 0), rot.At(0, 1), rot.At(0, 2),
		rot.At(1, 0), rot.At(1, 1), rot.At(1, 2),
		rot.At(2, 0), rot.At(2, 1), rot.At(2, 2),
		t.X, t.Y, t.Z)
}

// FormatTranslation renders a translation with an identity rotation
func FormatTranslation(t r3.Vec) string {
	return fmt.Sprintf("1 0 0 0 1 0 0 0 1 %.4f %.4f %.4f", t.X, t.Y, t.Z)
}
