package main

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"parking-sim/internal/common"
	"parking-sim/internal/lot"
	"parking-sim/internal/physics"
	"parking-sim/internal/save"
	"parking-sim/internal/sim"
)

// Lot colors
var (
	ColorWall        = color.RGBA{0, 0, 0, 255}
	ColorWallPreview = color.RGBA{200, 200, 200, 255}
	ColorTrail       = color.RGBA{120, 120, 120, 255}
)

// Car colors
var (
	ColorCarBody    = color.RGBA{0, 0, 255, 255}
	ColorCarPreview = color.RGBA{0, 0, 255, 90}
	ColorHeadlight  = color.RGBA{0, 255, 0, 255}
	ColorTaillight  = color.RGBA{255, 0, 0, 255}
	ColorMirror     = color.RGBA{128, 128, 128, 255}
	ColorWheel      = color.RGBA{64, 64, 64, 255}
	ColorCarLabel   = color.RGBA{255, 255, 255, 255}
)

// Panel colors
var (
	ColorPanel        = color.RGBA{235, 235, 235, 255}
	ColorButton       = color.RGBA{250, 250, 250, 255}
	ColorButtonHover  = color.RGBA{220, 230, 245, 255}
	ColorButtonActive = color.RGBA{190, 215, 250, 255}
	ColorButtonBorder = color.RGBA{150, 150, 150, 255}
	ColorButtonText   = color.RGBA{20, 20, 20, 255}
)

// Message box border per tone
var toneColors = map[sim.Tone]color.RGBA{
	sim.ToneNone:    {150, 150, 150, 255},
	sim.ToneHint:    {0, 120, 215, 255},
	sim.ToneInfo:    {100, 100, 100, 255},
	sim.ToneSuccess: {0, 160, 60, 255},
	sim.ToneWarn:    {230, 140, 0, 255},
	sim.ToneError:   {220, 0, 0, 255},
}

const (
	WallWidth     = 5
	lineSpacing   = 16
	messageHeight = 36
)

// Car details in car space, front toward -Y.
const (
	lightWidth  = 10.0
	lightHeight = 5.0
	lightInset  = 4.0
	mirrorSize  = 6.0
	wheelWidth  = 8.0
	wheelLength = 16.0
)

func drawWalls(dst *ebiten.Image, walls []lot.Wall, scale float64, width float32, clr color.Color) {
	for _, w := range walls {
		vector.StrokeLine(dst,
			float32(w.X1*scale), float32(w.Y1*scale),
			float32(w.X2*scale), float32(w.Y2*scale),
			width, clr, true)
	}
}

func fillPolygon(dst *ebiten.Image, pts []common.Vec2, clr color.Color) {
	var path vector.Path
	for i, p := range pts {
		if i == 0 {
			path.MoveTo(float32(p.X), float32(p.Y))
		} else {
			path.LineTo(float32(p.X), float32(p.Y))
		}
	}
	path.Close()

	var cs ebiten.ColorScale
	cs.ScaleWithColor(clr)
	vector.FillPath(dst, &path, nil, &vector.DrawPathOptions{
		AntiAlias:  true,
		ColorScale: cs,
	})
}

// carPainter maps car-space rectangles onto the screen.
type carPainter struct {
	dst   *ebiten.Image
	pose  physics.Pose
	scale float64
}

// rect fills a w x h rectangle centered at (cx, cy) in car space, turned by
// rot around its own center.
func (c carPainter) rect(cx, cy, w, h, rot float64, clr color.Color) {
	hw, hh := w/2, h/2
	local := [4]common.Vec2{{X: -hw, Y: -hh}, {X: hw, Y: -hh}, {X: hw, Y: hh}, {X: -hw, Y: hh}}
	center := c.pose.Center()
	pts := make([]common.Vec2, 0, 4)
	for _, p := range local {
		p = p.Rotate(rot).Add(common.Vec2{X: cx, Y: cy})
		pts = append(pts, p.Rotate(c.pose.Heading).Add(center).Scale(c.scale))
	}
	fillPolygon(c.dst, pts, clr)
}

func (c carPainter) label(face text.Face, s string, cy float64) {
	w, h := text.Measure(s, face, lineSpacing)
	op := &text.DrawOptions{}
	op.GeoM.Translate(-w/2, -h/2)
	op.GeoM.Rotate(c.pose.Heading)
	at := common.Vec2{Y: cy}.Rotate(c.pose.Heading).Add(c.pose.Center())
	op.GeoM.Translate(at.X, at.Y)
	op.ColorScale.ScaleWithColor(ColorCarLabel)
	text.Draw(c.dst, s, face, op)
}

func drawCarBody(dst *ebiten.Image, pose physics.Pose, p physics.Params, scale float64, clr color.Color) {
	corners := physics.Corners(pose, p)
	pts := make([]common.Vec2, len(corners))
	for i, c := range corners {
		pts[i] = c.Scale(scale)
	}
	fillPolygon(dst, pts, clr)
}

func (g *Game) drawCar(dst *ebiten.Image, pose physics.Pose) {
	p := g.Ctl.Params()
	c := carPainter{dst: dst, pose: pose, scale: 1}
	halfW, halfL := p.Width/2, p.Length/2
	axle := p.Wheelbase / 2
	wheelX := halfW - physics.WheelInset

	// Wheels sit under the body; only the steered front pair shows its angle.
	c.rect(-wheelX, -axle, wheelWidth, wheelLength, pose.SteerAngle, ColorWheel)
	c.rect(wheelX, -axle, wheelWidth, wheelLength, pose.SteerAngle, ColorWheel)
	c.rect(-wheelX, axle, wheelWidth, wheelLength, 0, ColorWheel)
	c.rect(wheelX, axle, wheelWidth, wheelLength, 0, ColorWheel)

	drawCarBody(dst, pose, p, 1, ColorCarBody)

	lightX := halfW - lightInset - lightWidth/2
	c.rect(-lightX, -halfL+lightHeight/2, lightWidth, lightHeight, 0, ColorHeadlight)
	c.rect(lightX, -halfL+lightHeight/2, lightWidth, lightHeight, 0, ColorHeadlight)
	c.rect(-lightX, halfL-lightHeight/2, lightWidth, lightHeight, 0, ColorTaillight)
	c.rect(lightX, halfL-lightHeight/2, lightWidth, lightHeight, 0, ColorTaillight)

	mirrorY := -halfL + p.Length/4
	c.rect(-halfW-mirrorSize/2, mirrorY, mirrorSize, mirrorSize, 0, ColorMirror)
	c.rect(halfW+mirrorSize/2, mirrorY, mirrorSize, mirrorSize, 0, ColorMirror)

	c.label(g.Face, "FRONT", -halfL/2)
	c.label(g.Face, "REAR", halfL/2)
}

func (g *Game) drawTrails(dst *ebiten.Image) {
	for _, path := range g.Ctl.Trails().Paths() {
		for i := 1; i < len(path); i++ {
			a, b := path[i-1], path[i]
			vector.StrokeLine(dst, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), 1, ColorTrail, true)
		}
	}
}

// drawEditorPreview draws the shape between the pending click and the cursor.
func (g *Game) drawEditorPreview(dst *ebiten.Image) {
	start, ok := g.Ctl.Pending()
	if !ok {
		return
	}
	end := g.Cursor
	switch g.Ctl.Mode() {
	case sim.ModeWall:
		vector.StrokeLine(dst, float32(start.X), float32(start.Y), float32(end.X), float32(end.Y),
			WallWidth, ColorWallPreview, true)
	case sim.ModeRect:
		x, y := math.Min(start.X, end.X), math.Min(start.Y, end.Y)
		w, h := math.Abs(end.X-start.X), math.Abs(end.Y-start.Y)
		vector.StrokeRect(dst, float32(x), float32(y), float32(w), float32(h), 2, ColorWallPreview, true)
	}
}

func (g *Game) drawPlacementPreview(dst *ebiten.Image) {
	if g.Ctl.Mode() != sim.ModePlaceCar || !g.onCanvas(int(g.Cursor.X), int(g.Cursor.Y)) {
		return
	}
	pose := physics.Pose{X: g.Cursor.X, Y: g.Cursor.Y}
	drawCarBody(dst, pose, g.Ctl.Params(), 1, ColorCarPreview)
}

func (g *Game) drawMessage(dst *ebiten.Image) {
	msg := g.Ctl.Message()
	if msg.Text == "" {
		return
	}
	x := float32(MessageInset)
	y := float32(g.canvasH - MessageInset - messageHeight)
	w := float32(g.canvasW - 2*MessageInset)
	vector.FillRect(dst, x, y, w, messageHeight, color.RGBA{255, 255, 255, 230}, true)
	vector.StrokeRect(dst, x, y, w, messageHeight, 2, toneColors[msg.Tone], true)
	g.drawText(dst, msg.Text, float64(x)+10, float64(y)+12, ColorButtonText)
}

func (g *Game) drawText(dst *ebiten.Image, s string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.LineSpacing = lineSpacing
	text.Draw(dst, s, g.Face, op)
}

// renderPreview redraws the slot thumbnail for snap.
func (g *Game) renderPreview(snap save.Snapshot) {
	scale := float64(PreviewSize) / float64(g.canvasW)
	g.Preview.Fill(color.White)
	drawWalls(g.Preview, snap.Walls, scale, 2, ColorWall)
	pose := physics.Pose{X: snap.Car.X, Y: snap.Car.Y, Heading: snap.Car.Angle}
	drawCarBody(g.Preview, pose, g.Ctl.Params(), scale, ColorCarBody)
	vector.StrokeRect(g.Preview, 0, 0, PreviewSize, PreviewSize, 2, ColorButtonBorder, false)
}
