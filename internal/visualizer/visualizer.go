// Package visualizer is the interactive event gate window: trackbars drive
// the gate, mouse clicks manage the point trail and the frame shows how the
// gate classifies the canvas.
package visualizer

import (
	"log"

	"chosenoffset.com/eventgate/internal/config"
	"chosenoffset.com/eventgate/internal/core/gate"
	"chosenoffset.com/eventgate/internal/core/grid"
	"chosenoffset.com/eventgate/internal/core/trail"
	"chosenoffset.com/eventgate/internal/render"
	"chosenoffset.com/eventgate/internal/snapshot"
	"chosenoffset.com/eventgate/internal/ui/controls"
)

// Trackbar labels.
const (
	LabelX      = "X"
	LabelY      = "Y"
	LabelWidth  = "Width"
	LabelAlpha  = "Alpha"
	LabelGrid   = "Grid"
	LabelShadow = "Shadow"
)

// Message represents an on-screen message that fades over time.
type Message struct {
	Text     string
	TimeLeft float64 // Seconds remaining
}

// Visualizer holds the session state and implements render.Game.
type Visualizer struct {
	CanvasWidth  int
	CanvasHeight int
	Gate         *gate.Gate
	Trail        *trail.Trail
	Renderer     render.Renderer
	InputMgr     render.InputManager
	Controls     *controls.Panel

	// Overlays
	DrawGrid   bool
	DrawShadow bool
	GridPoints int
	PickMargin int

	SnapshotPath    string
	UniqueSnapshots bool
	SaveSnapshot    func(path string, s snapshot.Scene) error

	Messages []Message

	lattice []gate.Point
	lastErr string
}

// New builds a visualizer from cfg.
func New(cfg *config.Config, r render.Renderer, input render.InputManager) (*Visualizer, error) {
	g, err := cfg.NewGate()
	if err != nil {
		return nil, err
	}

	v := &Visualizer{
		CanvasWidth:     cfg.Window.Width,
		CanvasHeight:    cfg.Window.Height,
		Gate:            g,
		Trail:           cfg.NewTrail(),
		Renderer:        r,
		InputMgr:        input,
		DrawGrid:        cfg.Overlay.DrawGrid,
		DrawShadow:      cfg.Overlay.DrawShadow,
		GridPoints:      cfg.Overlay.GridPoints,
		PickMargin:      cfg.Trail.PickMargin,
		SnapshotPath:    cfg.Snapshot.Path,
		UniqueSnapshots: cfg.Snapshot.Unique,
		SaveSnapshot:    snapshot.Save,
		lattice:         grid.Sample(cfg.Window.Width, cfg.Window.Height, cfg.Overlay.GridPoints),
	}
	v.Controls = v.newControls()
	return v, nil
}

func (v *Visualizer) newControls() *controls.Panel {
	p := controls.NewPanel(v.Renderer, v.InputMgr, 0, v.CanvasHeight, v.CanvasWidth)

	maxWidth := max(v.CanvasWidth, v.CanvasHeight)
	p.Add(controls.NewTrackbar(LabelX, 0, v.CanvasWidth, v.Gate.X(), v.Gate.SetX))
	p.Add(controls.NewTrackbar(LabelY, 0, v.CanvasHeight, v.Gate.Y(), v.Gate.SetY))
	p.Add(controls.NewTrackbar(LabelWidth, gate.MinWidth, maxWidth, v.Gate.Width(), v.Gate.SetWidth))
	p.Add(controls.NewTrackbar(LabelAlpha, gate.AlphaMin, gate.AlphaMax, v.Gate.Alpha(), v.Gate.SetAlpha))
	p.Add(controls.NewTrackbar(LabelGrid, 0, 1, boolToInt(v.DrawGrid), func(val int) error {
		v.DrawGrid = val != 0
		return nil
	}))
	p.Add(controls.NewTrackbar(LabelShadow, 0, 1, boolToInt(v.DrawShadow), func(val int) error {
		v.DrawShadow = val != 0
		return nil
	}))
	return p
}

// Update handles input. It returns render.ErrQuit when Escape is pressed.
func (v *Visualizer) Update() error {
	// Delta time for timers (assuming 60 FPS)
	dt := 1.0 / 60.0
	v.updateMessages(dt)

	if v.InputMgr.IsKeyJustPressed(render.KeyEscape) {
		return render.ErrQuit
	}

	before := v.Gate.String()
	consumed, err := v.Controls.Update()
	v.reportControlError(err)
	if after := v.Gate.String(); after != before {
		log.Printf("Gate changed: %s", after)
	}

	if !consumed {
		v.handleMouse()
	}
	v.handleKeys()

	return nil
}

// Layout returns the canvas plus the control panel below it.
func (v *Visualizer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return v.CanvasWidth, v.CanvasHeight + v.Controls.Height()
}

func (v *Visualizer) handleMouse() {
	x, y := v.InputMgr.GetCursorPosition()
	if x < 0 || y < 0 || x >= v.CanvasWidth || y >= v.CanvasHeight {
		return
	}
	p := gate.Point{X: x, Y: y}

	if v.InputMgr.IsMouseButtonJustPressed(render.MouseButtonLeft) {
		v.Trail.Add(p)
	} else if v.InputMgr.IsMouseButtonJustPressed(render.MouseButtonRight) {
		v.Trail.RemoveNear(p, v.PickMargin)
	}
}

func (v *Visualizer) handleKeys() {
	if v.InputMgr.IsKeyJustPressed(render.KeyG) {
		v.toggle(LabelGrid, v.DrawGrid)
	}
	if v.InputMgr.IsKeyJustPressed(render.KeyS) {
		v.toggle(LabelShadow, v.DrawShadow)
	}
	if v.InputMgr.IsKeyJustPressed(render.KeyC) {
		v.Trail.Clear()
		v.ShowMessage("Trail cleared")
	}
	if v.InputMgr.IsKeyJustPressed(render.KeyP) {
		v.TakeSnapshot()
	}
}

// toggle flips a 0/1 trackbar so the panel stays in sync with the flag.
func (v *Visualizer) toggle(label string, on bool) {
	if bar := v.Controls.Trackbar(label); bar != nil {
		_ = bar.Set(1 - boolToInt(on))
	}
}

// reportControlError logs a rejected trackbar value once per distinct error.
func (v *Visualizer) reportControlError(err error) {
	if err == nil {
		v.lastErr = ""
		return
	}
	if msg := err.Error(); msg != v.lastErr {
		v.lastErr = msg
		log.Printf("Rejected change: %v", err)
	}
}

// Scene captures what is currently drawn.
func (v *Visualizer) Scene() snapshot.Scene {
	return snapshot.Scene{
		Width:      v.CanvasWidth,
		Height:     v.CanvasHeight,
		Gate:       v.Gate,
		Trail:      trail.New(v.Trail.Cap(), v.Trail.Points()...),
		GridPoints: v.GridPoints,
		DrawGrid:   v.DrawGrid,
		DrawShadow: v.DrawShadow,
	}
}

// TakeSnapshot saves the current scene to SnapshotPath.
func (v *Visualizer) TakeSnapshot() {
	path := v.SnapshotPath
	if v.UniqueSnapshots {
		path = snapshot.UniquePath(path)
	}
	if err := v.SaveSnapshot(path, v.Scene()); err != nil {
		log.Printf("Snapshot failed: %v", err)
		v.ShowMessage("Snapshot failed")
		return
	}
	v.ShowMessage("Snapshot saved to " + path)
}

// ShowMessage adds a new message to be displayed on screen.
func (v *Visualizer) ShowMessage(text string) {
	v.Messages = append(v.Messages, Message{Text: text, TimeLeft: 3.0})
	log.Printf("Message: %s", text)
}

func (v *Visualizer) updateMessages(dt float64) {
	var active []Message
	for _, msg := range v.Messages {
		msg.TimeLeft -= dt
		if msg.TimeLeft > 0 {
			active = append(active, msg)
		}
	}
	v.Messages = active
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
