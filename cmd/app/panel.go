package main

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"parking-sim/internal/sim"
)

const (
	buttonHeight = 22
	buttonGap    = 6
	panelPadding = 10
)

// Button is a clickable control in the side panel.
type Button struct {
	Rect   image.Rectangle
	Label  func() string
	Action func()
	Active func() bool // Highlighted while true; may be nil

	// LoadSlot is the slot previewed while hovering, 0 for other buttons.
	LoadSlot int
}

func (g *Game) buildPanel() []*Button {
	ctl := g.Ctl
	x0 := g.canvasW + panelPadding
	width := PanelWidth - 2*panelPadding
	y := panelPadding

	var buttons []*Button
	row := func(label func() string, action func(), active func() bool) *Button {
		b := &Button{
			Rect:   image.Rect(x0, y, x0+width, y+buttonHeight),
			Label:  label,
			Action: action,
			Active: active,
		}
		buttons = append(buttons, b)
		y += buttonHeight + buttonGap
		return b
	}
	static := func(s string) func() string { return func() string { return s } }
	inMode := func(m sim.Mode) func() bool { return func() bool { return ctl.Mode() == m } }

	row(static("Draw walls"), func() { ctl.SetMode(sim.ModeWall) }, inMode(sim.ModeWall))
	row(static("Draw rectangle"), func() { ctl.SetMode(sim.ModeRect) }, inMode(sim.ModeRect))
	row(static("Finish drawing"), func() { ctl.SetMode(sim.ModeNone) }, nil)
	row(static("Undo wall"), func() { ctl.Undo() }, nil)
	row(static("Redo wall"), func() { ctl.Redo() }, nil)
	row(static("Random walls"), ctl.RandomizeWalls, nil)
	row(static("Random car"), ctl.RandomizeCar, nil)
	row(static("Set car"), func() { ctl.SetMode(sim.ModePlaceCar) }, inMode(sim.ModePlaceCar))
	row(static("Restart"), ctl.Restart, nil)
	row(func() string {
		if ctl.Trails().Recording() {
			return "Wheel trails: on"
		}
		return "Wheel trails: off"
	}, func() { ctl.SetTrailRecording(!ctl.Trails().Recording()) }, ctl.Trails().Recording)

	half := (width - buttonGap) / 2
	speed := row(g.speedLabel, func() {}, nil)
	speed.Rect.Max.X = speed.Rect.Min.X + half
	minus := &Button{
		Rect:   image.Rect(x0+half+buttonGap, speed.Rect.Min.Y, x0+half+buttonGap+half/2-buttonGap/2, speed.Rect.Max.Y),
		Label:  static("-"),
		Action: func() { ctl.SetSpeedFactor(ctl.SpeedFactor() - 1) },
	}
	plus := &Button{
		Rect:   image.Rect(minus.Rect.Max.X+buttonGap, speed.Rect.Min.Y, x0+width, speed.Rect.Max.Y),
		Label:  static("+"),
		Action: func() { ctl.SetSpeedFactor(ctl.SpeedFactor() + 1) },
	}
	buttons = append(buttons, minus, plus)

	y += buttonGap
	for slot := 1; slot <= g.Store.Slots(); slot++ {
		saveBtn := row(static(fmt.Sprintf("Save %d", slot)), func() { ctl.RequestSave(slot) },
			func() bool { return ctl.PendingOverwrite() == slot })
		saveBtn.Rect.Max.X = saveBtn.Rect.Min.X + half
		load := &Button{
			Rect:     image.Rect(x0+half+buttonGap, saveBtn.Rect.Min.Y, x0+width, saveBtn.Rect.Max.Y),
			Label:    static(fmt.Sprintf("Load %d", slot)),
			Action:   func() { ctl.LoadSlot(slot) },
			LoadSlot: slot,
		}
		buttons = append(buttons, load)
	}
	return buttons
}

func (g *Game) buttonAt(x, y int) *Button {
	pt := image.Pt(x, y)
	for _, b := range g.Panel {
		if pt.In(b.Rect) {
			return b
		}
	}
	return nil
}

func (g *Game) drawPanel(screen *ebiten.Image) {
	for _, b := range g.Panel {
		fill := ColorButton
		switch {
		case b.Active != nil && b.Active():
			fill = ColorButtonActive
		case b == g.Hovered:
			fill = ColorButtonHover
		}
		r := b.Rect
		vector.FillRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), fill, false)
		vector.StrokeRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), 1, ColorButtonBorder, false)
		g.drawText(screen, b.Label(), float64(r.Min.X+6), float64(r.Min.Y+4), ColorButtonText)
	}

	help := "Arrows: drive\nEsc: cancel"
	g.drawText(screen, help, float64(g.canvasW+panelPadding), float64(g.canvasH-40), ColorButtonText)
}

// drawSlotPreview shows a thumbnail of the hovered load slot beside its button.
func (g *Game) drawSlotPreview(screen *ebiten.Image) {
	if g.Hovered == nil || g.Hovered.LoadSlot == 0 {
		return
	}
	snap, err := g.Store.Peek(g.Hovered.LoadSlot)
	if err != nil {
		return
	}

	g.renderPreview(snap)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(g.canvasW-PreviewSize-panelPadding), float64(g.Hovered.Rect.Min.Y))
	screen.DrawImage(g.Preview, op)
}
