package sim

import (
	"parking-sim/internal/common"
	"parking-sim/internal/lot"
	"parking-sim/internal/physics"
)

// Mode is what a click on the canvas does.
type Mode int

const (
	ModeNone     Mode = iota // Clicking the car turns it around
	ModeWall                 // Two clicks draw one wall
	ModeRect                 // Two clicks draw a four-wall rectangle
	ModePlaceCar             // One click sets the car position
)

func (m Mode) String() string {
	switch m {
	case ModeWall:
		return "wall"
	case ModeRect:
		return "rect"
	case ModePlaceCar:
		return "place-car"
	}
	return "none"
}

// Mode returns the current editor mode.
func (c *Controller) Mode() Mode { return c.mode }

// SetMode switches the editor mode, dropping any half-finished shape.
func (c *Controller) SetMode(m Mode) {
	c.mode = m
	c.pending = nil
	switch m {
	case ModeWall:
		c.setMessage(msgWallHint, ToneHint)
	case ModeRect:
		c.setMessage(msgRectHint, ToneHint)
	case ModePlaceCar:
		c.setMessage(msgCarHint, ToneHint)
	default:
		c.msg = Message{}
	}
}

// Pending returns the first corner of a shape being drawn.
func (c *Controller) Pending() (common.Vec2, bool) {
	if c.pending == nil {
		return common.Vec2{}, false
	}
	return *c.pending, true
}

// Click handles a canvas click at pt according to the current mode.
func (c *Controller) Click(pt common.Vec2) {
	switch c.mode {
	case ModeWall, ModeRect:
		if c.pending == nil {
			c.pending = &pt
			return
		}
		start := *c.pending
		c.pending = nil
		if c.mode == ModeWall {
			c.layout.Append(lot.NewWall(start, pt))
		} else {
			c.layout.Append(lot.RectWalls(start, pt)...)
		}
	case ModePlaceCar:
		c.PlaceCar(pt)
		c.SetMode(ModeNone)
	default:
		if physics.ContainsPoint(c.car, c.model.Params, pt) {
			c.FlipCar()
		}
	}
}
