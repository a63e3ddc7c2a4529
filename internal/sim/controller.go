// Package sim owns the simulation state of the parking practice lot and
// applies every change to it: ticks, wall edits, car placement and
// save/load. All methods run on the game loop goroutine.
package sim

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"

	"parking-sim/internal/common"
	"parking-sim/internal/logging"
	"parking-sim/internal/lot"
	"parking-sim/internal/physics"
	"parking-sim/internal/save"
)

// Options configures a Controller.
type Options struct {
	Params      physics.Params // MaxSpeed is the speed at factor 1
	SpeedFactor float64
	Bounds      physics.Bounds
	RandomWalls int
	WallPadding float64
	Store       *save.Store // Optional; save and load report an error without it
	Rand        *rand.Rand  // Optional; seeded from the runtime when nil
	Logger      *logging.Logger
}

// Controller is the single owner of the car pose, the wall layout and the
// editor state.
type Controller struct {
	model     *physics.Model
	baseSpeed float64
	factor    float64
	bounds    physics.Bounds
	nWalls    int
	padding   float64
	store     *save.Store
	rng       *rand.Rand
	log       *logging.Logger

	car       physics.Pose
	layout    *lot.Layout
	trails    Trails
	colliding bool
	msg       Message

	mode    Mode
	pending *common.Vec2

	// Slot awaiting a confirming second save request.
	confirmSlot int
}

// NewController builds a controller and puts it in the restart state.
func NewController(opts Options) *Controller {
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}
	if opts.SpeedFactor <= 0 {
		opts.SpeedFactor = 1
	}

	c := &Controller{
		model:     physics.NewModel(opts.Params),
		baseSpeed: opts.Params.MaxSpeed,
		bounds:    opts.Bounds,
		nWalls:    opts.RandomWalls,
		padding:   opts.WallPadding,
		store:     opts.Store,
		rng:       opts.Rand,
		log:       opts.Logger.With("component", "sim"),
		layout:    lot.NewLayout(),
	}
	c.SetSpeedFactor(opts.SpeedFactor)
	c.Restart()
	return c
}

// Car returns the current pose.
func (c *Controller) Car() physics.Pose { return c.car }

// Params returns the active vehicle parameters.
func (c *Controller) Params() physics.Params { return c.model.Params }

// Bounds returns the canvas bounds.
func (c *Controller) Bounds() physics.Bounds { return c.bounds }

// Layout exposes the wall list and its undo/redo stacks.
func (c *Controller) Layout() *lot.Layout { return c.layout }

// Trails exposes the wheel trails.
func (c *Controller) Trails() *Trails { return &c.trails }

// Colliding reports whether the last tick ended in a collision.
func (c *Controller) Colliding() bool { return c.colliding }

// Message returns the current status message.
func (c *Controller) Message() Message { return c.msg }

// SpeedFactor returns the current max speed multiplier.
func (c *Controller) SpeedFactor() float64 { return c.factor }

// SpawnPose is the canonical start: canvas center, facing down.
func (c *Controller) SpawnPose() physics.Pose {
	return physics.Pose{X: c.bounds.Width / 2, Y: c.bounds.Height / 2, Heading: math.Pi}
}

// Tick advances the car by dt seconds and runs collision detection. On a
// collision the car stops where it is; nothing pushes it back out.
func (c *Controller) Tick(in physics.Input, dt float64) bool {
	c.car = c.model.Step(c.car, in, dt)
	c.trails.Record(physics.WheelPoints(c.car, c.model.Params))

	hit := physics.Collides(c.car, c.model.Params, c.layout.View(), c.bounds)
	switch {
	case hit:
		c.car.Speed = 0
		if !c.colliding {
			c.log.Debug("collision", "x", c.car.X, "y", c.car.Y, "heading", c.car.Heading)
		}
		c.setMessage(msgCollision, ToneError)
	case c.colliding && c.msg.Text == msgCollision:
		c.msg = Message{}
	}
	c.colliding = hit
	return hit
}

// Restart puts the car back at the spawn pose and clears every wall and trail.
func (c *Controller) Restart() {
	c.car = c.SpawnPose()
	c.layout.Clear()
	c.trails.Clear()
	c.colliding = false
	c.pending = nil
	c.confirmSlot = 0
	c.msg = Message{}
	c.log.Info("restart")
}

// SetSpeedFactor scales the max speed, clamped to [1, 5].
func (c *Controller) SetSpeedFactor(f float64) {
	c.factor = common.Clamp(f, 1, 5)
	c.model.Params.MaxSpeed = c.baseSpeed * c.factor
	c.car.Speed = common.Clamp(c.car.Speed, -c.model.Params.MaxSpeed, c.model.Params.MaxSpeed)
}

// SetTrailRecording toggles wheel trail recording.
func (c *Controller) SetTrailRecording(on bool) {
	c.trails.SetRecording(on)
}

// RandomizeWalls replaces the layout with freshly scattered walls.
func (c *Controller) RandomizeWalls() {
	walls := lot.RandomWalls(c.rng, c.bounds.Width, c.bounds.Height, c.padding, c.nWalls)
	c.layout.Replace(walls)
	c.log.Info("random walls", "count", len(walls))
}

// RandomizeCar drops the car at a random spot and heading, keeping its
// center at least half a body away from the edges.
func (c *Controller) RandomizeCar() {
	p := c.model.Params
	c.car.X = c.rng.Float64()*(c.bounds.Width-p.Width) + p.Width/2
	c.car.Y = c.rng.Float64()*(c.bounds.Height-p.Length) + p.Length/2
	c.car.Heading = c.rng.Float64() * 2 * math.Pi
	c.car.Speed = 0
	c.car.SteerAngle = 0
}

// PlaceCar moves the car to pt facing up and at rest.
func (c *Controller) PlaceCar(pt common.Vec2) {
	c.car = physics.Pose{X: pt.X, Y: pt.Y}
}

// FlipCar turns the car around in place.
func (c *Controller) FlipCar() {
	c.car.Heading += math.Pi
}

// Undo removes the most recent wall.
func (c *Controller) Undo() bool {
	_, ok := c.layout.Undo()
	return ok
}

// Redo restores the most recently undone wall.
func (c *Controller) Redo() bool {
	_, ok := c.layout.Redo()
	return ok
}

// Snapshot captures the scenario for saving.
func (c *Controller) Snapshot() save.Snapshot {
	return save.Snapshot{
		Version: save.CurrentVersion,
		Car: save.CarState{
			X:          c.car.X,
			Y:          c.car.Y,
			Angle:      c.car.Heading,
			SteerAngle: c.car.SteerAngle,
			Speed:      c.car.Speed,
		},
		Walls:       c.layout.Walls(),
		WallHistory: c.layout.History(),
		RedoHistory: c.layout.RedoStack(),
	}
}

// Apply replaces the scenario with a validated snapshot. Speed and steering
// are clamped to the current car limits.
func (c *Controller) Apply(s save.Snapshot) {
	p := c.model.Params
	c.car = physics.Pose{
		X:          s.Car.X,
		Y:          s.Car.Y,
		Heading:    s.Car.Angle,
		SteerAngle: common.Clamp(s.Car.SteerAngle, -p.MaxSteerAngle, p.MaxSteerAngle),
		Speed:      common.Clamp(s.Car.Speed, -p.MaxSpeed, p.MaxSpeed),
	}
	c.layout.Restore(s.Walls, s.WallHistory, s.RedoHistory)
	c.trails.Clear()
	c.colliding = false
	c.pending = nil
}

// RequestSave saves into slot. If the slot is occupied the first request
// only asks for confirmation; a second request for the same slot overwrites.
func (c *Controller) RequestSave(slot int) error {
	if c.store == nil {
		return errors.New("no save store configured")
	}
	force := c.confirmSlot == slot
	c.confirmSlot = 0

	err := c.store.Save(slot, c.Snapshot(), force)
	switch {
	case errors.Is(err, save.ErrSlotOccupied):
		c.confirmSlot = slot
		c.setMessage(fmt.Sprintf("Slot %d already has a save. Save to slot %d again to overwrite.", slot, slot), ToneWarn)
		return err
	case err != nil:
		c.log.Error("save failed", err, "slot", slot)
		c.setMessage(fmt.Sprintf("Could not save slot %d.", slot), ToneError)
		return err
	}
	c.setMessage(fmt.Sprintf("Scenario saved to slot %d.", slot), ToneSuccess)
	return nil
}

// PendingOverwrite returns the slot waiting for confirmation, or 0.
func (c *Controller) PendingOverwrite() int { return c.confirmSlot }

// CancelSave abandons a pending overwrite.
func (c *Controller) CancelSave() {
	if c.confirmSlot == 0 {
		return
	}
	c.setMessage(fmt.Sprintf("Overwrite of slot %d cancelled.", c.confirmSlot), ToneWarn)
	c.confirmSlot = 0
}

// LoadSlot replaces the scenario with slot's contents. Live state is left
// untouched when the slot is empty or its file fails validation.
func (c *Controller) LoadSlot(slot int) error {
	if c.store == nil {
		return errors.New("no save store configured")
	}
	c.confirmSlot = 0

	snap, err := c.store.Load(slot)
	switch {
	case errors.Is(err, save.ErrSlotEmpty):
		c.setMessage(fmt.Sprintf("Slot %d is empty.", slot), ToneWarn)
		return err
	case err != nil:
		c.log.Error("load failed", err, "slot", slot)
		c.setMessage(fmt.Sprintf("Slot %d could not be loaded: %v", slot, err), ToneError)
		return err
	}

	c.Apply(snap)
	c.log.Info("scenario loaded", "slot", slot, "walls", len(snap.Walls))
	c.setMessage(fmt.Sprintf("Loaded slot %d.", slot), ToneInfo)
	return nil
}

func (c *Controller) setMessage(text string, tone Tone) {
	c.msg = Message{Text: text, Tone: tone}
}
