package main

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/bitmapfont/v4"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"parking-sim/internal/common"
	"parking-sim/internal/logging"
	"parking-sim/internal/save"
	"parking-sim/internal/sim"
)

// Driving keys, sampled as levels every tick.
var driveKeys = map[sim.Key]ebiten.Key{
	sim.KeyUp:    ebiten.KeyArrowUp,
	sim.KeyDown:  ebiten.KeyArrowDown,
	sim.KeyLeft:  ebiten.KeyArrowLeft,
	sim.KeyRight: ebiten.KeyArrowRight,
}

type Game struct {
	Ctl   *sim.Controller
	Store *save.Store
	Keys  sim.KeyLatch
	Chime *Chime
	Log   *logging.Logger

	Panel   []*Button
	Face    text.Face
	Preview *ebiten.Image

	// Cursor position in screen pixels, and the button under it (or nil)
	Cursor  common.Vec2
	Hovered *Button

	canvasW, canvasH int
}

func NewGame(ctl *sim.Controller, store *save.Store, chime *Chime, log *logging.Logger) *Game {
	b := ctl.Bounds()
	g := &Game{
		Ctl:     ctl,
		Store:   store,
		Chime:   chime,
		Log:     log,
		Face:    text.NewGoXFace(bitmapfont.Face),
		Preview: ebiten.NewImage(PreviewSize, PreviewSize),
		canvasW: int(b.Width),
		canvasH: int(b.Height),
	}
	g.Panel = g.buildPanel()
	return g
}

func (g *Game) Update() error {
	for k, key := range driveKeys {
		g.Keys.Set(k, ebiten.IsKeyPressed(key))
	}

	cx, cy := ebiten.CursorPosition()
	g.Cursor = common.Vec2{X: float64(cx), Y: float64(cy)}
	g.Hovered = g.buttonAt(cx, cy)

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		if g.Ctl.PendingOverwrite() != 0 {
			g.Ctl.CancelSave()
		} else {
			g.Ctl.SetMode(sim.ModeNone)
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		switch {
		case g.Hovered != nil:
			g.Hovered.Action()
		case g.onCanvas(cx, cy):
			g.Ctl.Click(g.Cursor)
		}
	}
	g.updateCursorShape(cx, cy)

	wasColliding := g.Ctl.Colliding()
	if g.Ctl.Tick(g.Keys.Input(), tickSeconds()) && !wasColliding {
		g.Chime.Play()
	}
	return nil
}

func (g *Game) onCanvas(x, y int) bool {
	return x >= 0 && x < g.canvasW && y >= 0 && y < g.canvasH
}

func (g *Game) updateCursorShape(x, y int) {
	shape := ebiten.CursorShapeDefault
	switch {
	case g.Hovered != nil:
		shape = ebiten.CursorShapePointer
	case !g.onCanvas(x, y):
	case g.Ctl.Mode() == sim.ModeWall, g.Ctl.Mode() == sim.ModeRect:
		shape = ebiten.CursorShapeCrosshair
	case g.Ctl.Mode() == sim.ModePlaceCar:
		shape = ebiten.CursorShapePointer
	}
	ebiten.SetCursorShape(shape)
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(ColorPanel)
	canvas := screen.SubImage(image.Rect(0, 0, g.canvasW, g.canvasH)).(*ebiten.Image)
	canvas.Fill(color.White)

	g.drawTrails(canvas)
	g.drawEditorPreview(canvas)
	drawWalls(canvas, g.Ctl.Layout().View(), 1, WallWidth, ColorWall)
	g.drawCar(canvas, g.Ctl.Car())
	g.drawPlacementPreview(canvas)
	g.drawMessage(canvas)

	g.drawPanel(screen)
	g.drawSlotPreview(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return g.canvasW + PanelWidth, g.canvasH
}

// speedLabel describes the current max speed multiplier.
func (g *Game) speedLabel() string {
	return fmt.Sprintf("Speed x%.0f", g.Ctl.SpeedFactor())
}
