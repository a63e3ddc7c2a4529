package physics

import (
	"math"

	"parking-sim/internal/common"
)

// Default car geometry and per-tick control rates (pixels, radians).
const (
	CarWidth      = 50.0
	CarLength     = 100.0
	Acceleration  = 2.0  // Speed gained per tick of throttle
	Friction      = 1.0  // Speed lost per tick while coasting
	SteerRate     = 0.05 // Radians per tick
	MaxSteerAngle = 0.6  // About a 3.5 car-length turning diameter
	MaxSpeed      = 30.0 // Pixels per second at speed factor 1
	ReferenceDt   = 1.0 / 60
)

// Params describes the car body and how it answers the controls.
type Params struct {
	Width         float64
	Length        float64
	Wheelbase     float64
	Acceleration  float64
	Friction      float64
	SteerRate     float64
	MaxSteerAngle float64
	MaxSpeed      float64

	// FrameIndependent scales the per-tick control deltas by dt/ReferenceDt.
	// Off by default: acceleration and steering then advance once per tick
	// whatever the frame time, while position integration always uses dt.
	FrameIndependent bool
}

// DefaultParams returns the standard practice car.
func DefaultParams() Params {
	return Params{
		Width:         CarWidth,
		Length:        CarLength,
		Wheelbase:     CarLength * 0.8,
		Acceleration:  Acceleration,
		Friction:      Friction,
		SteerRate:     SteerRate,
		MaxSteerAngle: MaxSteerAngle,
		MaxSpeed:      MaxSpeed,
	}
}

// Pose is the car's kinematic state. X, Y is the geometric center of the
// body. Heading 0 faces up the canvas (-Y); positive headings turn clockwise.
type Pose struct {
	X          float64
	Y          float64
	Heading    float64
	SteerAngle float64
	Speed      float64 // Negative when reversing
}

// Center returns the geometric center as a vector.
func (p Pose) Center() common.Vec2 { return common.Vec2{X: p.X, Y: p.Y} }

// Input is one tick of driver controls. Throttle and Steer are -1, 0 or 1.
type Input struct {
	Throttle int
	Steer    int
}

// Forward returns the unit vector the car faces at heading.
func Forward(heading float64) common.Vec2 {
	sin, cos := math.Sincos(heading)
	return common.Vec2{X: sin, Y: -cos}
}

// Model advances a pose with a rear-drive, front-steer bicycle model.
type Model struct {
	Params Params
}

// NewModel returns a model for the given car.
func NewModel(p Params) *Model {
	return &Model{Params: p}
}

// RearAxle returns the rear axle midpoint of pose.
func (m *Model) RearAxle(pose Pose) common.Vec2 {
	return pose.Center().Sub(Forward(pose.Heading).Scale(m.Params.Wheelbase / 2))
}

// Step advances pose by one tick of dt seconds and returns the result.
// Speed and steering are clamped to the car's limits; input is never rejected.
func (m *Model) Step(pose Pose, in Input, dt float64) Pose {
	p := m.Params
	k := 1.0
	if p.FrameIndependent && dt > 0 {
		k = dt / ReferenceDt
	}

	// 1. Speed (rear-wheel drive)
	if in.Throttle != 0 {
		pose.Speed += p.Acceleration * float64(sign(in.Throttle)) * k
	} else {
		pose.Speed = common.Approach(pose.Speed, p.Friction*k)
	}
	pose.Speed = common.Clamp(pose.Speed, -p.MaxSpeed, p.MaxSpeed)

	// 2. Steering (front wheels), self-centering when released
	if in.Steer != 0 {
		pose.SteerAngle += float64(sign(in.Steer)) * p.SteerRate * k
	} else {
		pose.SteerAngle = common.Approach(pose.SteerAngle, p.SteerRate*k)
	}
	pose.SteerAngle = common.Clamp(pose.SteerAngle, -p.MaxSteerAngle, p.MaxSteerAngle)

	// 3. Integrate at the rear axle, then re-derive the center on the new heading
	if pose.Speed != 0 {
		half := p.Wheelbase / 2
		rear := m.RearAxle(pose)
		rear = rear.Add(Forward(pose.Heading).Scale(pose.Speed * dt))

		heading := pose.Heading + (pose.Speed/p.Wheelbase)*math.Tan(pose.SteerAngle)*dt
		center := rear.Add(Forward(heading).Scale(half))

		pose.X, pose.Y = center.X, center.Y
		pose.Heading = heading
	}

	return pose
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
