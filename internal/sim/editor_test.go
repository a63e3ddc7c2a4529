package sim

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parking-sim/internal/common"
	"parking-sim/internal/lot"
	"parking-sim/internal/physics"
)

func pt(x, y float64) common.Vec2 { return common.Vec2{X: x, Y: y} }

func TestEditor_DrawWall(t *testing.T) {
	c := newTestController(t)
	c.SetMode(ModeWall)
	assert.Equal(t, ToneHint, c.Message().Tone)

	c.Click(pt(10, 20))
	start, ok := c.Pending()
	require.True(t, ok)
	assert.Equal(t, pt(10, 20), start)
	assert.Zero(t, c.Layout().Len())

	c.Click(pt(300, 40))
	_, ok = c.Pending()
	assert.False(t, ok)
	assert.Equal(t, []lot.Wall{{X1: 10, Y1: 20, X2: 300, Y2: 40}}, c.Layout().Walls())

	// Still in wall mode: the next two clicks draw another wall.
	c.Click(pt(1, 1))
	c.Click(pt(2, 2))
	assert.Equal(t, 2, c.Layout().Len())
}

func TestEditor_DrawRectIsUndoneWallByWall(t *testing.T) {
	c := newTestController(t)
	c.SetMode(ModeRect)

	c.Click(pt(500, 600))
	c.Click(pt(100, 200))

	require.Equal(t, 4, c.Layout().Len())
	assert.Equal(t, lot.RectWalls(pt(100, 200), pt(500, 600)), c.Layout().Walls())

	c.Undo()
	assert.Equal(t, 3, c.Layout().Len())
	assert.Len(t, c.Layout().RedoStack(), 1)
}

func TestEditor_ModeChangeDropsPending(t *testing.T) {
	c := newTestController(t)
	c.SetMode(ModeWall)
	c.Click(pt(10, 10))

	c.SetMode(ModeRect)
	_, ok := c.Pending()
	assert.False(t, ok)

	c.SetMode(ModeNone)
	assert.Equal(t, Message{}, c.Message())
}

func TestEditor_PlaceCar(t *testing.T) {
	c := newTestController(t)
	c.SetMode(ModePlaceCar)

	c.Click(pt(120, 640))

	assert.Equal(t, physics.Pose{X: 120, Y: 640}, c.Car())
	assert.Equal(t, ModeNone, c.Mode())
}

func TestEditor_ClickCarFlipsHeading(t *testing.T) {
	c := newTestController(t)

	c.Click(pt(400, 420))
	assert.InDelta(t, 2*math.Pi, c.Car().Heading, 1e-12)

	c.Click(pt(600, 600))
	assert.InDelta(t, 2*math.Pi, c.Car().Heading, 1e-12)
}

func TestMode_String(t *testing.T) {
	assert.Equal(t, "none", ModeNone.String())
	assert.Equal(t, "wall", ModeWall.String())
	assert.Equal(t, "rect", ModeRect.String())
	assert.Equal(t, "place-car", ModePlaceCar.String())
}
