package lot

import (
	"math"

	"parking-sim/internal/common"
)

// Wall is an immutable line segment in canvas coordinates.
type Wall struct {
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
	X2 float64 `json:"x2"`
	Y2 float64 `json:"y2"`
}

// NewWall builds a wall between two points.
func NewWall(a, b common.Vec2) Wall {
	return Wall{X1: a.X, Y1: a.Y, X2: b.X, Y2: b.Y}
}

// Start returns the first endpoint.
func (w Wall) Start() common.Vec2 { return common.Vec2{X: w.X1, Y: w.Y1} }

// End returns the second endpoint.
func (w Wall) End() common.Vec2 { return common.Vec2{X: w.X2, Y: w.Y2} }

// Len returns the segment length.
func (w Wall) Len() float64 {
	return w.End().Sub(w.Start()).Len()
}

// Finite reports whether every coordinate is a finite number.
func (w Wall) Finite() bool {
	for _, v := range [4]float64{w.X1, w.Y1, w.X2, w.Y2} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// RectWalls returns the four sides of the axis-aligned rectangle spanned by
// two opposite corners, ordered top, right, bottom, left.
func RectWalls(a, b common.Vec2) []Wall {
	x1, x2 := math.Min(a.X, b.X), math.Max(a.X, b.X)
	y1, y2 := math.Min(a.Y, b.Y), math.Max(a.Y, b.Y)
	return []Wall{
		{X1: x1, Y1: y1, X2: x2, Y2: y1}, // Top
		{X1: x2, Y1: y1, X2: x2, Y2: y2}, // Right
		{X1: x2, Y1: y2, X2: x1, Y2: y2}, // Bottom
		{X1: x1, Y1: y2, X2: x1, Y2: y1}, // Left
	}
}
