// Package controls provides trackbars: labelled sliders over an integer
// range that report every change to a callback.
package controls

import (
	"fmt"
	"image/color"

	"chosenoffset.com/eventgate/internal/render"
)

// Layout of a trackbar row, in pixels.
const (
	RowHeight   = 22
	labelWidth  = 64
	valueWidth  = 48
	trackHeight = 4
	knobRadius  = 6
	padding     = 8
)

var (
	panelColor = color.RGBA{24, 24, 28, 255}
	trackColor = color.RGBA{90, 90, 100, 255}
	fillColor  = color.RGBA{120, 170, 255, 255}
	knobColor  = color.RGBA{230, 230, 240, 255}
	textColor  = color.RGBA{220, 220, 220, 255}
	errorColor = color.RGBA{255, 110, 110, 255}
)

// Trackbar is a slider over [Min, Max]. OnChange is called with every new
// value; when it returns an error the trackbar keeps its previous value.
type Trackbar struct {
	Label    string
	Min, Max int
	OnChange func(value int) error

	value int
}

// NewTrackbar creates a trackbar positioned at value, clamped to the range.
func NewTrackbar(label string, min, max, value int, onChange func(int) error) *Trackbar {
	t := &Trackbar{Label: label, Min: min, Max: max, OnChange: onChange}
	t.value = t.clamp(value)
	return t
}

// Value returns the current position.
func (t *Trackbar) Value() int { return t.value }

// Set moves the trackbar to value and reports it to OnChange.
func (t *Trackbar) Set(value int) error {
	value = t.clamp(value)
	if value == t.value {
		return nil
	}
	if t.OnChange != nil {
		if err := t.OnChange(value); err != nil {
			return fmt.Errorf("%s: %w", t.Label, err)
		}
	}
	t.value = value
	return nil
}

func (t *Trackbar) clamp(v int) int {
	if v < t.Min {
		return t.Min
	}
	if v > t.Max {
		return t.Max
	}
	return v
}

// fraction returns the knob position in [0, 1].
func (t *Trackbar) fraction() float64 {
	if t.Max == t.Min {
		return 0
	}
	return float64(t.value-t.Min) / float64(t.Max-t.Min)
}

// Panel stacks trackbars vertically and routes mouse drags to them.
type Panel struct {
	renderer render.Renderer
	input    render.InputManager

	x, y, width int
	bars        []*Trackbar

	dragging int // index of the dragged trackbar, -1 when idle
	lastErr  error
}

// NewPanel creates an empty panel with its top-left corner at (x, y).
func NewPanel(r render.Renderer, input render.InputManager, x, y, width int) *Panel {
	return &Panel{
		renderer: r,
		input:    input,
		x:        x,
		y:        y,
		width:    width,
		dragging: -1,
	}
}

// Add appends a trackbar row.
func (p *Panel) Add(t *Trackbar) {
	p.bars = append(p.bars, t)
}

// Trackbar returns the trackbar with the given label, or nil.
func (p *Panel) Trackbar(label string) *Trackbar {
	for _, t := range p.bars {
		if t.Label == label {
			return t
		}
	}
	return nil
}

// Height returns the panel height in pixels, including the status line.
func (p *Panel) Height() int {
	return (len(p.bars)+1)*RowHeight + padding
}

// Contains reports whether (x, y) lies on the panel.
func (p *Panel) Contains(x, y int) bool {
	return x >= p.x && x < p.x+p.width && y >= p.y && y < p.y+p.Height()
}

// LastError returns the most recent rejected change, if any.
func (p *Panel) LastError() error { return p.lastErr }

// Update handles mouse input. It reports whether the panel consumed the
// input and returns the error of a rejected change.
func (p *Panel) Update() (bool, error) {
	mx, my := p.input.GetCursorPosition()

	if !p.input.IsMouseButtonPressed(render.MouseButtonLeft) {
		p.dragging = -1
	}
	if p.input.IsMouseButtonJustPressed(render.MouseButtonLeft) && p.Contains(mx, my) {
		p.dragging = p.rowAt(my)
	}
	if p.dragging < 0 {
		return p.input.IsMouseButtonJustPressed(render.MouseButtonLeft) && p.Contains(mx, my), nil
	}

	bar := p.bars[p.dragging]
	if err := bar.Set(p.valueAt(bar, mx)); err != nil {
		p.lastErr = err
		return true, err
	}
	p.lastErr = nil
	return true, nil
}

func (p *Panel) rowAt(y int) int {
	row := (y - p.y - padding/2) / RowHeight
	if row < 0 || row >= len(p.bars) {
		return -1
	}
	return row
}

func (p *Panel) trackSpan() (x0, x1 int) {
	return p.x + padding + labelWidth, p.x + p.width - padding - valueWidth
}

// valueAt maps a cursor x coordinate onto the trackbar range.
func (p *Panel) valueAt(t *Trackbar, x int) int {
	x0, x1 := p.trackSpan()
	if x1 <= x0 {
		return t.value
	}
	f := float64(x-x0) / float64(x1-x0)
	if f < 0 {
		f = 0
	}
	if f > 1 {
		f = 1
	}
	return t.Min + int(f*float64(t.Max-t.Min)+0.5)
}

// Draw renders the panel.
func (p *Panel) Draw(dst render.Image) {
	p.renderer.FillRect(dst, float32(p.x), float32(p.y), float32(p.width), float32(p.Height()), panelColor)

	x0, x1 := p.trackSpan()
	for i, t := range p.bars {
		rowY := p.y + padding/2 + i*RowHeight
		midY := float32(rowY + RowHeight/2)

		p.renderer.DrawText(dst, t.Label, p.x+padding, rowY+3, textColor, 1)

		p.renderer.FillRect(dst, float32(x0), midY-trackHeight/2, float32(x1-x0), trackHeight, trackColor)
		knobX := float32(x0) + float32(t.fraction())*float32(x1-x0)
		p.renderer.FillRect(dst, float32(x0), midY-trackHeight/2, knobX-float32(x0), trackHeight, fillColor)
		p.renderer.FillCircle(dst, knobX, midY, knobRadius, knobColor)

		p.renderer.DrawText(dst, fmt.Sprintf("%d/%d", t.value, t.Max), x1+padding, rowY+3, textColor, 1)
	}

	if p.lastErr != nil {
		statusY := p.y + padding/2 + len(p.bars)*RowHeight
		p.renderer.DrawText(dst, p.lastErr.Error(), p.x+padding, statusY+3, errorColor, 1)
	}
}
