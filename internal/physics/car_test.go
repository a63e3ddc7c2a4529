package physics

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const dt = 1.0 / 60

func TestStep_SpeedUpdate(t *testing.T) {
	m := NewModel(DefaultParams())

	tests := []struct {
		name     string
		speed    float64
		throttle int
		expected float64
	}{
		{name: "accelerate_from_rest", speed: 0, throttle: 1, expected: 2},
		{name: "reverse_from_rest", speed: 0, throttle: -1, expected: -2},
		{name: "brake_while_moving_forward", speed: 10, throttle: -1, expected: 8},
		{name: "clamped_at_max", speed: 29, throttle: 1, expected: 30},
		{name: "clamped_at_reverse_max", speed: -29.5, throttle: -1, expected: -30},
		{name: "coast_forward", speed: 5, throttle: 0, expected: 4},
		{name: "coast_reverse", speed: -5, throttle: 0, expected: -4},
		{name: "coast_does_not_overshoot", speed: 0.5, throttle: 0, expected: 0},
		{name: "coast_exact_friction", speed: -1, throttle: 0, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := m.Step(Pose{Speed: tt.speed}, Input{Throttle: tt.throttle}, dt)
			assert.InDelta(t, tt.expected, got.Speed, 1e-12)
		})
	}
}

func TestStep_SteeringSelfCenters(t *testing.T) {
	m := NewModel(DefaultParams())

	for _, start := range []Input{{Steer: 1}, {Steer: -1}} {
		pose := Pose{}
		for i := 0; i < 7; i++ {
			pose = m.Step(pose, start, dt)
		}
		require.NotZero(t, pose.SteerAngle)

		prev := math.Abs(pose.SteerAngle)
		for i := 0; i < 100 && pose.SteerAngle != 0; i++ {
			before := pose.SteerAngle
			pose = m.Step(pose, Input{}, dt)
			// Never crosses zero and never grows.
			assert.GreaterOrEqual(t, before*pose.SteerAngle, 0.0)
			assert.LessOrEqual(t, math.Abs(pose.SteerAngle), prev)
			prev = math.Abs(pose.SteerAngle)
		}
		assert.Equal(t, 0.0, pose.SteerAngle)
	}
}

func TestStep_LimitsHoldForAnyInputHistory(t *testing.T) {
	p := DefaultParams()
	m := NewModel(p)
	rng := rand.New(rand.NewPCG(7, 11))

	pose := Pose{X: 400, Y: 400, Heading: math.Pi}
	for i := 0; i < 5000; i++ {
		in := Input{Throttle: rng.IntN(3) - 1, Steer: rng.IntN(3) - 1}
		step := dt * (0.25 + rng.Float64()*4)
		pose = m.Step(pose, in, step)

		require.LessOrEqual(t, math.Abs(pose.Speed), p.MaxSpeed)
		require.LessOrEqual(t, math.Abs(pose.SteerAngle), p.MaxSteerAngle)
	}
}

func TestStep_OutOfRangeInputIsClampedNotRejected(t *testing.T) {
	m := NewModel(DefaultParams())
	got := m.Step(Pose{}, Input{Throttle: 5, Steer: -9}, dt)

	assert.Equal(t, 2.0, got.Speed)
	assert.InDelta(t, -0.05, got.SteerAngle, 1e-12)
}

func TestStep_StationaryPoseDoesNotMove(t *testing.T) {
	m := NewModel(DefaultParams())
	start := Pose{X: 123, Y: 456, Heading: 1.2, SteerAngle: 0.3}

	got := m.Step(start, Input{Steer: 1}, dt)

	assert.Equal(t, start.X, got.X)
	assert.Equal(t, start.Y, got.Y)
	assert.Equal(t, start.Heading, got.Heading)
}

func TestStep_StraightLineMotion(t *testing.T) {
	m := NewModel(DefaultParams())

	t.Run("facing_up", func(t *testing.T) {
		got := m.Step(Pose{X: 400, Y: 400, Speed: 30}, Input{Throttle: 1}, 0.5)
		assert.InDelta(t, 400, got.X, 1e-9)
		assert.InDelta(t, 385, got.Y, 1e-9)
		assert.Equal(t, 0.0, got.Heading)
	})

	t.Run("facing_down", func(t *testing.T) {
		got := m.Step(Pose{X: 400, Y: 400, Heading: math.Pi}, Input{Throttle: 1}, 1)
		assert.InDelta(t, 400, got.X, 1e-9)
		assert.InDelta(t, 402, got.Y, 1e-9)
	})

	t.Run("reversing", func(t *testing.T) {
		got := m.Step(Pose{X: 400, Y: 400, Speed: -10}, Input{}, 1)
		assert.InDelta(t, 409, got.Y, 1e-9)
	})
}

func TestStep_TurnsAboutRearAxle(t *testing.T) {
	p := DefaultParams()
	m := NewModel(p)

	pose := Pose{X: 400, Y: 400, Speed: 20, SteerAngle: 0.6}
	in := Input{Throttle: 1, Steer: 1}
	rearBefore := m.RearAxle(pose)

	got := m.Step(pose, in, dt)

	// Right steer turns clockwise on screen.
	assert.Greater(t, got.Heading, 0.0)
	expected := (22 / p.Wheelbase) * math.Tan(0.6) * dt
	assert.InDelta(t, expected, got.Heading, 1e-12)

	// The rear axle advances along the old heading only.
	rearAfter := m.RearAxle(got)
	assert.InDelta(t, rearBefore.X, rearAfter.X, 1e-9)
	assert.InDelta(t, rearBefore.Y-22*dt, rearAfter.Y, 1e-9)

	// The center stays wheelbase/2 ahead of the rear axle.
	assert.InDelta(t, p.Wheelbase/2, got.Center().Sub(rearAfter).Len(), 1e-9)
}

func TestStep_FrameIndependentScaling(t *testing.T) {
	p := DefaultParams()
	p.FrameIndependent = true
	m := NewModel(p)

	t.Run("reference_frame_matches_per_tick", func(t *testing.T) {
		got := m.Step(Pose{}, Input{Throttle: 1, Steer: 1}, ReferenceDt)
		assert.InDelta(t, 2, got.Speed, 1e-12)
		assert.InDelta(t, 0.05, got.SteerAngle, 1e-12)
	})

	t.Run("double_frame_doubles_deltas", func(t *testing.T) {
		got := m.Step(Pose{}, Input{Throttle: 1, Steer: -1}, 2*ReferenceDt)
		assert.InDelta(t, 4, got.Speed, 1e-12)
		assert.InDelta(t, -0.1, got.SteerAngle, 1e-12)
	})

	t.Run("per_tick_when_disabled", func(t *testing.T) {
		got := NewModel(DefaultParams()).Step(Pose{}, Input{Throttle: 1}, 2*ReferenceDt)
		assert.InDelta(t, 2, got.Speed, 1e-12)
	})
}
