package physics

import (
	"math"

	"parking-sim/internal/common"
	"parking-sim/internal/lot"
)

// Bounds is the drivable canvas, spanning [0, Width] x [0, Height].
type Bounds struct {
	Width  float64
	Height float64
}

// Contains reports whether p lies on or inside the bounds.
func (b Bounds) Contains(p common.Vec2) bool {
	return p.X >= 0 && p.X <= b.Width && p.Y >= 0 && p.Y <= b.Height
}

// Corners returns the world-space corners of the car body in the order
// front-left, front-right, rear-right, rear-left (clockwise from top-left in
// car space). Consecutive corners, wrapping around, form the four edges.
func Corners(pose Pose, p Params) [4]common.Vec2 {
	halfW := p.Width / 2
	halfL := p.Length / 2
	local := [4]common.Vec2{
		{X: -halfW, Y: -halfL}, // Front left
		{X: halfW, Y: -halfL},  // Front right
		{X: halfW, Y: halfL},   // Rear right
		{X: -halfW, Y: halfL},  // Rear left
	}

	var out [4]common.Vec2
	center := pose.Center()
	for i, c := range local {
		out[i] = c.Rotate(pose.Heading).Add(center)
	}
	return out
}

// SegmentsIntersect reports whether segment p1-p2 crosses segment p3-p4.
// Parallel and collinear segments never intersect, and touching at an
// endpoint does not count: both parameters must lie strictly inside (0, 1).
func SegmentsIntersect(p1, p2, p3, p4 common.Vec2) bool {
	den := (p1.X-p2.X)*(p3.Y-p4.Y) - (p1.Y-p2.Y)*(p3.X-p4.X)
	if den == 0 {
		return false
	}

	t := ((p1.X-p3.X)*(p3.Y-p4.Y) - (p1.Y-p3.Y)*(p3.X-p4.X)) / den
	u := -((p1.X-p2.X)*(p1.Y-p3.Y) - (p1.Y-p2.Y)*(p1.X-p3.X)) / den

	return t > 0 && t < 1 && u > 0 && u < 1
}

// OutOfBounds reports whether any corner of the car leaves the canvas.
func OutOfBounds(corners [4]common.Vec2, b Bounds) bool {
	for _, c := range corners {
		if !b.Contains(c) {
			return true
		}
	}
	return false
}

// HitsWall reports whether any car edge crosses any wall.
func HitsWall(corners [4]common.Vec2, walls []lot.Wall) bool {
	for _, w := range walls {
		a, b := w.Start(), w.End()
		for i := range corners {
			if SegmentsIntersect(corners[i], corners[(i+1)%len(corners)], a, b) {
				return true
			}
		}
	}
	return false
}

// Collides runs the boundary test and then the wall test for pose.
func Collides(pose Pose, p Params, walls []lot.Wall, b Bounds) bool {
	corners := Corners(pose, p)
	return OutOfBounds(corners, b) || HitsWall(corners, walls)
}

// ContainsPoint reports whether pt lies strictly inside the car body.
func ContainsPoint(pose Pose, p Params, pt common.Vec2) bool {
	local := pt.Sub(pose.Center()).Rotate(-pose.Heading)
	return math.Abs(local.X) < p.Width/2 && math.Abs(local.Y) < p.Length/2
}
