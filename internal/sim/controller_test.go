package sim

import (
	"math"
	"math/rand/v2"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parking-sim/internal/common"
	"parking-sim/internal/lot"
	"parking-sim/internal/physics"
	"parking-sim/internal/save"
)

const tick = 1.0 / 60

func newTestController(t *testing.T) *Controller {
	t.Helper()
	return NewController(Options{
		Params:      physics.DefaultParams(),
		SpeedFactor: 1,
		Bounds:      physics.Bounds{Width: 800, Height: 800},
		RandomWalls: 5,
		WallPadding: 50,
		Store:       save.NewStore(filepath.Join(t.TempDir(), "saves"), 3, nil),
		Rand:        rand.New(rand.NewPCG(42, 7)),
	})
}

func TestController_RestartState(t *testing.T) {
	c := newTestController(t)

	assert.Equal(t, physics.Pose{X: 400, Y: 400, Heading: math.Pi}, c.Car())
	assert.Zero(t, c.Layout().Len())
	assert.False(t, c.Colliding())
	assert.Equal(t, Message{}, c.Message())
}

func TestController_DriveIntoWallStops(t *testing.T) {
	c := newTestController(t)
	c.Layout().Append(lot.Wall{X1: 0, Y1: 450, X2: 800, Y2: 450})

	hitTick := -1
	for i := 0; i < 600; i++ {
		if c.Tick(physics.Input{Throttle: 1}, tick) {
			hitTick = i
			break
		}
	}

	require.Equal(t, 0, hitTick, "front edge starts on the wall and crosses it on the first tick")
	assert.True(t, c.Colliding())
	assert.Equal(t, 0.0, c.Car().Speed)
	assert.Equal(t, Message{Text: msgCollision, Tone: ToneError}, c.Message())

	// The car is left where it stopped, overlapping the wall.
	stopped := c.Car()
	assert.Greater(t, stopped.Y, 400.0)
}

func TestController_ReversingClearsCollision(t *testing.T) {
	c := newTestController(t)
	c.Layout().Append(lot.Wall{X1: 0, Y1: 450, X2: 800, Y2: 450})
	require.True(t, c.Tick(physics.Input{Throttle: 1}, tick))

	cleared := false
	for i := 0; i < 60 && !cleared; i++ {
		cleared = !c.Tick(physics.Input{Throttle: -1}, tick)
	}

	require.True(t, cleared)
	assert.False(t, c.Colliding())
	assert.Equal(t, Message{}, c.Message())
	assert.Less(t, c.Car().Speed, 0.0)
}

func TestController_BoundaryCollision(t *testing.T) {
	c := newTestController(t)
	c.PlaceCar(common.Vec2{X: 400, Y: 51})

	hit := false
	for i := 0; i < 600 && !hit; i++ {
		hit = c.Tick(physics.Input{Throttle: 1}, tick)
	}

	assert.True(t, hit)
	assert.Equal(t, 0.0, c.Car().Speed)
	assert.Less(t, c.Car().Y-50, 0.0)
}

func TestController_SpeedFactor(t *testing.T) {
	c := newTestController(t)

	c.SetSpeedFactor(3)
	assert.Equal(t, 90.0, c.Params().MaxSpeed)

	c.SetSpeedFactor(3)
	assert.Equal(t, 90.0, c.Params().MaxSpeed, "factor applies to the base speed, not the previous max")

	c.SetSpeedFactor(10)
	assert.Equal(t, 5.0, c.SpeedFactor())
	c.SetSpeedFactor(0)
	assert.Equal(t, 1.0, c.SpeedFactor())
	assert.Equal(t, 30.0, c.Params().MaxSpeed)
}

func TestController_SpeedFactorClampsCurrentSpeed(t *testing.T) {
	c := newTestController(t)
	c.SetSpeedFactor(5)
	for i := 0; i < 100; i++ {
		c.Tick(physics.Input{Throttle: -1}, 0)
	}
	require.Equal(t, -150.0, c.Car().Speed)

	c.SetSpeedFactor(1)
	assert.Equal(t, -30.0, c.Car().Speed)
}

func TestController_RandomizeWalls(t *testing.T) {
	c := newTestController(t)
	c.Layout().Append(lot.Wall{X2: 1})
	c.Undo()

	c.RandomizeWalls()

	assert.Equal(t, 5, c.Layout().Len())
	assert.Equal(t, c.Layout().Walls(), c.Layout().History())
	assert.Empty(t, c.Layout().RedoStack())
}

func TestController_RandomizeCar(t *testing.T) {
	c := newTestController(t)
	p := c.Params()

	for i := 0; i < 100; i++ {
		c.RandomizeCar()
		car := c.Car()
		assert.GreaterOrEqual(t, car.X, p.Width/2)
		assert.LessOrEqual(t, car.X, 800-p.Width/2)
		assert.GreaterOrEqual(t, car.Y, p.Length/2)
		assert.LessOrEqual(t, car.Y, 800-p.Length/2)
		assert.GreaterOrEqual(t, car.Heading, 0.0)
		assert.Less(t, car.Heading, 2*math.Pi)
	}
}

func TestController_Trails(t *testing.T) {
	c := newTestController(t)

	c.Tick(physics.Input{Throttle: 1}, tick)
	assert.Empty(t, c.Trails().Paths()[0])

	c.SetTrailRecording(true)
	for i := 0; i < 3; i++ {
		c.Tick(physics.Input{Throttle: 1}, tick)
	}
	for _, path := range c.Trails().Paths() {
		assert.Len(t, path, 3)
	}
	last := c.Trails().Paths()[0][2]
	assert.Equal(t, physics.WheelPoints(c.Car(), c.Params())[0], last)

	c.Restart()
	assert.Empty(t, c.Trails().Paths()[0])
	assert.True(t, c.Trails().Recording())

	c.Tick(physics.Input{}, tick)
	c.SetTrailRecording(false)
	assert.Empty(t, c.Trails().Paths()[1])
}

func TestController_SaveAndLoad(t *testing.T) {
	c := newTestController(t)
	c.Layout().Append(lot.Wall{X1: 10, Y1: 10, X2: 100, Y2: 10}, lot.Wall{X1: 10, Y1: 20, X2: 100, Y2: 20})
	c.Undo()
	c.PlaceCar(common.Vec2{X: 200, Y: 300})
	want := c.Snapshot()

	require.NoError(t, c.RequestSave(1))
	assert.Equal(t, ToneSuccess, c.Message().Tone)

	c.Restart()
	require.NoError(t, c.LoadSlot(1))

	assert.Equal(t, want, c.Snapshot())
	assert.Equal(t, ToneInfo, c.Message().Tone)
	assert.True(t, c.Layout().CanRedo())
}

func TestController_SaveOverwriteNeedsConfirmation(t *testing.T) {
	c := newTestController(t)
	require.NoError(t, c.RequestSave(2))

	c.PlaceCar(common.Vec2{X: 100, Y: 100})
	err := c.RequestSave(2)
	assert.ErrorIs(t, err, save.ErrSlotOccupied)
	assert.Equal(t, 2, c.PendingOverwrite())
	assert.Equal(t, ToneWarn, c.Message().Tone)

	t.Run("cancel", func(t *testing.T) {
		c.CancelSave()
		assert.Zero(t, c.PendingOverwrite())
		assert.Contains(t, c.Message().Text, "cancelled")
		assert.ErrorIs(t, c.RequestSave(2), save.ErrSlotOccupied)
	})

	t.Run("confirm", func(t *testing.T) {
		require.NoError(t, c.RequestSave(2))
		assert.Zero(t, c.PendingOverwrite())

		c.Restart()
		require.NoError(t, c.LoadSlot(2))
		assert.Equal(t, 100.0, c.Car().X)
	})
}

func TestController_LoadFailureKeepsState(t *testing.T) {
	c := newTestController(t)
	c.Layout().Append(lot.Wall{X1: 1, Y1: 1, X2: 2, Y2: 2})
	before := c.Snapshot()

	err := c.LoadSlot(3)
	assert.ErrorIs(t, err, save.ErrSlotEmpty)
	assert.Equal(t, "Slot 3 is empty.", c.Message().Text)
	assert.Equal(t, before, c.Snapshot())

	err = c.LoadSlot(7)
	assert.ErrorIs(t, err, save.ErrInvalidSlot)
	assert.Equal(t, ToneError, c.Message().Tone)
	assert.Equal(t, before, c.Snapshot())
}

func TestController_ApplyClampsLimits(t *testing.T) {
	c := newTestController(t)
	c.Apply(save.Snapshot{Car: save.CarState{X: 10, Y: 20, Angle: 1, SteerAngle: 2, Speed: -500}})

	car := c.Car()
	assert.Equal(t, 0.6, car.SteerAngle)
	assert.Equal(t, -30.0, car.Speed)
	assert.Equal(t, 1.0, car.Heading)
}

func TestController_NoStore(t *testing.T) {
	c := NewController(Options{Params: physics.DefaultParams(), Bounds: physics.Bounds{Width: 800, Height: 800}})
	assert.Error(t, c.RequestSave(1))
	assert.Error(t, c.LoadSlot(1))
	assert.Equal(t, 1.0, c.SpeedFactor())
}
