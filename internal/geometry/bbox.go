package geometry

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

var ErrNoPositions = errors.New("no positions provided")

// BoundingBox represents an axis aligned 3D bounding box
type BoundingBox struct {
	Min, Max r3.Vec
}

// Width returns the width (X dimension) of the bounding box
func (b *BoundingBox) Width() float64 {
	return b.Max.X - b.Min.X
}

// Height returns the height (Y dimension) of the bounding box
func (b *BoundingBox) Height() float64 {
	return b.Max.Y - b.Min.Y
}

// Depth returns the depth (Z dimension) of the bounding box
func (b *BoundingBox) Depth() float64 {
	return b.Max.Z - b.Min.Z
}

// Center returns the middle of the bounding box
func (b *BoundingBox) Center() r3.Vec {
	return r3.Scale(0.5, r3.Add(b.Min, b.Max))
}

// Extend grows the box so it contains p
func (b *BoundingBox) Extend(p r3.Vec) {
	b.Min = r3.Vec{X: math.Min(b.Min.X, p.X), Y: math.Min(b.Min.Y, p.Y), Z: math.Min(b.Min.Z, p.Z)}
	b.Max = r3.Vec{X: math.Max(b.Max.X, p.X), Y: math.Max(b.Max.Y, p.Y), Z: math.Max(b.Max.Z, p.Z)}
}

// CalculateBoundingBox calculates the bounding box of a set of positions
func CalculateBoundingBox(positions []r3.Vec) (*BoundingBox, error) {
	if len(positions) == 0 {
		return nil, ErrNoPositions
	}
	bbox := &BoundingBox{Min: positions[0], Max: positions[0]}
	for _, p := range positions[1:] {
		bbox.Extend(p)
	}
	return bbox, nil
}
