// Package rendertest provides recording fakes of the render interfaces.
package rendertest

import (
	"fmt"
	"image/color"

	"chosenoffset.com/eventgate/internal/render"
)

// Op is one recorded drawing call.
type Op struct {
	Kind  string // "circle", "line", "rect", "text"
	X, Y  float32
	X1    float32
	Y1    float32
	Size  float32
	Text  string
	Color color.Color
}

func (o Op) String() string {
	return fmt.Sprintf("%s(%g,%g %g,%g %g %q)", o.Kind, o.X, o.Y, o.X1, o.Y1, o.Size, o.Text)
}

// Renderer records every call.
type Renderer struct {
	Ops []Op
}

// FillCircle implements render.Renderer.
func (r *Renderer) FillCircle(dst render.Image, x, y, radius float32, clr color.Color) {
	r.Ops = append(r.Ops, Op{Kind: "circle", X: x, Y: y, Size: radius, Color: clr})
}

// StrokeLine implements render.Renderer.
func (r *Renderer) StrokeLine(dst render.Image, x0, y0, x1, y1 float32, strokeWidth float32, clr color.Color) {
	r.Ops = append(r.Ops, Op{Kind: "line", X: x0, Y: y0, X1: x1, Y1: y1, Size: strokeWidth, Color: clr})
}

// FillRect implements render.Renderer.
func (r *Renderer) FillRect(dst render.Image, x, y, width, height float32, clr color.Color) {
	r.Ops = append(r.Ops, Op{Kind: "rect", X: x, Y: y, X1: x + width, Y1: y + height, Color: clr})
}

// DrawText implements render.Renderer.
func (r *Renderer) DrawText(dst render.Image, text string, x, y int, clr color.Color, scale float64) {
	r.Ops = append(r.Ops, Op{Kind: "text", X: float32(x), Y: float32(y), Text: text, Color: clr})
}

// MeasureText implements render.Renderer with a fixed 6x16 cell.
func (r *Renderer) MeasureText(text string, scale float64) (int, int) {
	return int(float64(len(text)*6) * scale), int(16 * scale)
}

// Filter returns the recorded ops of one kind.
func (r *Renderer) Filter(kind string) []Op {
	var out []Op
	for _, op := range r.Ops {
		if op.Kind == kind {
			out = append(out, op)
		}
	}
	return out
}

// Texts returns the recorded text strings in order.
func (r *Renderer) Texts() []string {
	var out []string
	for _, op := range r.Filter("text") {
		out = append(out, op.Text)
	}
	return out
}

// Reset drops the recorded ops.
func (r *Renderer) Reset() { r.Ops = nil }

// Image is a surface that remembers its fill color.
type Image struct {
	Filled color.Color
}

// Fill implements render.Image.
func (i *Image) Fill(clr color.Color) { i.Filled = clr }

// Input is a scripted input manager. Call Frame between ticks to clear the
// just-pressed state.
type Input struct {
	CursorX, CursorY int
	Pressed          map[render.MouseButton]bool
	JustPressed      map[render.MouseButton]bool
	KeysJustPressed  map[render.Key]bool
}

// NewInput creates an idle input.
func NewInput() *Input {
	return &Input{
		Pressed:         map[render.MouseButton]bool{},
		JustPressed:     map[render.MouseButton]bool{},
		KeysJustPressed: map[render.Key]bool{},
	}
}

// Click presses button at (x, y) for this frame.
func (in *Input) Click(button render.MouseButton, x, y int) {
	in.CursorX, in.CursorY = x, y
	in.Pressed[button] = true
	in.JustPressed[button] = true
}

// Drag moves the cursor with button held.
func (in *Input) Drag(button render.MouseButton, x, y int) {
	in.CursorX, in.CursorY = x, y
	in.Pressed[button] = true
	in.JustPressed[button] = false
}

// Release lets go of every button.
func (in *Input) Release() {
	in.Pressed = map[render.MouseButton]bool{}
	in.JustPressed = map[render.MouseButton]bool{}
}

// Press marks key as just pressed for this frame.
func (in *Input) Press(key render.Key) {
	in.KeysJustPressed[key] = true
}

// Frame clears the just-pressed state.
func (in *Input) Frame() {
	in.JustPressed = map[render.MouseButton]bool{}
	in.KeysJustPressed = map[render.Key]bool{}
}

// IsKeyJustPressed implements render.InputManager.
func (in *Input) IsKeyJustPressed(key render.Key) bool { return in.KeysJustPressed[key] }

// GetCursorPosition implements render.InputManager.
func (in *Input) GetCursorPosition() (int, int) { return in.CursorX, in.CursorY }

// IsMouseButtonPressed implements render.InputManager.
func (in *Input) IsMouseButtonPressed(button render.MouseButton) bool { return in.Pressed[button] }

// IsMouseButtonJustPressed implements render.InputManager.
func (in *Input) IsMouseButtonJustPressed(button render.MouseButton) bool {
	return in.JustPressed[button]
}
