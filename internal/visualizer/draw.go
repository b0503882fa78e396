package visualizer

import (
	"fmt"
	"image/color"

	"chosenoffset.com/eventgate/internal/core/gate"
	"chosenoffset.com/eventgate/internal/core/grid"
	"chosenoffset.com/eventgate/internal/render"
)

var (
	backgroundColor = color.RGBA{32, 32, 38, 255}
	inkColor        = color.RGBA{240, 240, 240, 255}
	gridColor       = color.RGBA{90, 150, 250, 255}
	trailColor      = color.RGBA{170, 170, 170, 255}
	alertColor      = color.RGBA{250, 80, 80, 255}
	labelColor      = color.White // the debug font only draws white
)

const (
	pointRadius = 5
	gridRadius  = 3
	gateStroke  = 5
	trailStroke = 1
)

// Draw renders the frame: labels, overlays, then the gate on top.
func (v *Visualizer) Draw(screen render.Image) {
	screen.Fill(backgroundColor)

	v.drawLabels(screen)
	if v.DrawGrid {
		v.drawGrid(screen)
	}
	if v.DrawShadow {
		v.drawTrail(screen)
	}
	v.drawGate(screen)
	v.drawMessages(screen)

	v.Controls.Draw(screen)
}

func (v *Visualizer) drawLabels(screen render.Image) {
	x := int(float64(v.CanvasWidth) * 0.02)
	y := int(float64(v.CanvasHeight) * 0.02)
	_, lineHeight := v.Renderer.MeasureText("M", 1)

	v.Renderer.DrawText(screen, fmt.Sprintf("(%dx%d)", v.CanvasWidth, v.CanvasHeight), x, y, labelColor, 1)
	v.Renderer.DrawText(screen, v.Gate.String(), x, y+lineHeight, labelColor, 1)
}

func (v *Visualizer) drawGrid(screen render.Image) {
	for _, p := range grid.Above(v.Gate, v.lattice) {
		v.Renderer.FillCircle(screen, float32(p.X), float32(p.Y), gridRadius, gridColor)
	}
}

// drawTrail draws the trail points joined by a polyline. A trail whose ends
// lie on different sides of the gate is drawn in the alert color.
func (v *Visualizer) drawTrail(screen render.Image) {
	points := v.Trail.Points()
	if len(points) == 0 {
		return
	}

	clr := trailColor
	if v.Trail.CrossedBy(v.Gate) {
		clr = alertColor
	}

	for i, p := range points {
		v.Renderer.FillCircle(screen, float32(p.X), float32(p.Y), pointRadius, clr)
		if i > 0 {
			prev := points[i-1]
			v.Renderer.StrokeLine(screen, float32(prev.X), float32(prev.Y), float32(p.X), float32(p.Y), trailStroke, clr)
		}
	}
}

func (v *Visualizer) drawGate(screen render.Image) {
	a, b := v.Gate.EdgePoints()
	for _, p := range []gate.Point{a, b, v.Gate.Center()} {
		v.Renderer.FillCircle(screen, float32(p.X), float32(p.Y), pointRadius, inkColor)
	}
	v.Renderer.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), gateStroke, inkColor)
}

func (v *Visualizer) drawMessages(screen render.Image) {
	_, lineHeight := v.Renderer.MeasureText("M", 1)
	y := v.CanvasHeight - lineHeight*(len(v.Messages)+1)
	for _, msg := range v.Messages {
		v.Renderer.DrawText(screen, msg.Text, int(float64(v.CanvasWidth)*0.02), y, labelColor, 1)
		y += lineHeight
	}
}
