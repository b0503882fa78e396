// Package tui is a terminal frontend for the event gate. The terminal is
// mapped onto the gate's canvas; a cursor moved with the arrow keys leaves a
// trail and a chime sounds whenever a move crosses the gate.
package tui

import (
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"chosenoffset.com/eventgate/internal/config"
	"chosenoffset.com/eventgate/internal/core/gate"
	"chosenoffset.com/eventgate/internal/core/grid"
	"chosenoffset.com/eventgate/internal/core/trail"
)

// Step sizes of the gate shortcuts, in canvas units and degrees.
const (
	moveStep  = 10
	widthStep = 10
	alphaStep = 1
)

// Notifier is told about every crossing.
type Notifier interface {
	Play()
}

var (
	gridStyle   = tcell.StyleDefault.Foreground(tcell.ColorSteelBlue)
	gateStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	anchorStyle = tcell.StyleDefault.Foreground(tcell.ColorOrange).Bold(true)
	trailStyle  = tcell.StyleDefault.Foreground(tcell.ColorGray)
	alertStyle  = tcell.StyleDefault.Foreground(tcell.ColorRed)
	cursorStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite).Reverse(true)
	statusStyle = tcell.StyleDefault.Foreground(tcell.ColorYellow)
)

// App owns the terminal session. All state is touched from the Run loop only.
type App struct {
	screen tcell.Screen
	chime  Notifier

	Gate  *gate.Gate
	Trail *trail.Trail

	planeW, planeH int
	cols, rows     int

	gridPoints int
	drawGrid   bool

	cursorX, cursorY int
	crossings        int
	passes           int
	status           string
	tick             time.Duration
}

// New creates an app drawing on an initialized screen.
func New(screen tcell.Screen, cfg *config.Config, chime Notifier) (*App, error) {
	g, err := cfg.NewGate()
	if err != nil {
		return nil, err
	}

	a := &App{
		screen:     screen,
		chime:      chime,
		Gate:       g,
		Trail:      cfg.NewTrail(),
		planeW:     cfg.Window.Width,
		planeH:     cfg.Window.Height,
		gridPoints: cfg.Overlay.GridPoints,
		drawGrid:   cfg.Overlay.DrawGrid,
		tick:       time.Duration(cfg.Terminal.TickMillis) * time.Millisecond,
	}
	a.cols, a.rows = screen.Size()
	a.cursorX = a.cols / 2
	a.cursorY = a.canvasRows() / 2
	return a, nil
}

// Crossings returns how many cursor moves crossed the gate.
func (a *App) Crossings() int { return a.crossings }

// Passes returns how many cursor moves went through the gate segment.
func (a *App) Passes() int { return a.passes }

// Cursor returns the cursor position in canvas units.
func (a *App) Cursor() gate.Point { return a.toPlane(a.cursorX, a.cursorY) }

// StatusLine returns the text shown on the last row.
func (a *App) StatusLine() string {
	line := fmt.Sprintf("%s crossings=%d passes=%d", a.Gate, a.crossings, a.passes)
	if a.status != "" {
		line += " | " + a.status
	}
	return line
}

// canvasRows is the number of rows above the status line.
func (a *App) canvasRows() int {
	return max(a.rows-1, 1)
}

// toPlane returns the canvas point at the center of a cell.
func (a *App) toPlane(cx, cy int) gate.Point {
	cols := max(a.cols, 1)
	rows := a.canvasRows()
	return gate.Point{
		X: (2*cx + 1) * a.planeW / (2 * cols),
		Y: (2*cy + 1) * a.planeH / (2 * rows),
	}
}

// toCell returns the cell holding a canvas point.
func (a *App) toCell(p gate.Point) (int, int) {
	return p.X * a.cols / a.planeW, p.Y * a.canvasRows() / a.planeH
}

// HandleEvent applies one terminal event. It returns false when the user
// asked to quit.
func (a *App) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.handleKey(ev)
	case *tcell.EventResize:
		a.handleResize()
	}
	return true
}

func (a *App) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyUp:
		a.moveCursor(0, -1)
	case tcell.KeyDown:
		a.moveCursor(0, 1)
	case tcell.KeyLeft:
		a.moveCursor(-1, 0)
	case tcell.KeyRight:
		a.moveCursor(1, 0)
	case tcell.KeyRune:
		return a.handleRune(ev.Rune())
	}
	return true
}

func (a *App) handleRune(r rune) bool {
	g := a.Gate
	switch r {
	case 'q':
		return false
	case 'w':
		a.apply(g.SetCenter(g.X(), g.Y()-moveStep))
	case 's':
		a.apply(g.SetCenter(g.X(), g.Y()+moveStep))
	case 'a':
		a.apply(g.SetCenter(g.X()-moveStep, g.Y()))
	case 'd':
		a.apply(g.SetCenter(g.X()+moveStep, g.Y()))
	case '+', '=':
		a.apply(g.SetWidth(g.Width() + widthStep))
	case '-':
		a.apply(g.SetWidth(g.Width() - widthStep))
	case '[':
		a.apply(g.SetAlpha(g.Alpha() - alphaStep))
	case ']':
		a.apply(g.SetAlpha(g.Alpha() + alphaStep))
	case 'g':
		a.drawGrid = !a.drawGrid
	case 'c':
		a.Trail.Clear()
		a.status = "trail cleared"
	}
	return true
}

// apply records the outcome of a gate change in the status line.
func (a *App) apply(err error) {
	if err != nil {
		a.status = err.Error()
		return
	}
	a.status = ""
}

// moveCursor moves by one cell, records the new position in the trail and
// checks whether the step crossed the gate line or passed through the gate.
func (a *App) moveCursor(dx, dy int) {
	nx := min(max(a.cursorX+dx, 0), a.cols-1)
	ny := min(max(a.cursorY+dy, 0), a.canvasRows()-1)
	if nx == a.cursorX && ny == a.cursorY {
		return
	}

	from := a.Cursor()
	a.cursorX, a.cursorY = nx, ny
	to := a.Cursor()
	a.Trail.Add(to)

	if a.Gate.Passes(from, to) {
		a.passes++
	}
	if a.Gate.Crossed(from, to) {
		a.crossings++
		a.status = fmt.Sprintf("crossed at %v", to)
		if a.chime != nil {
			a.chime.Play()
		}
	}
}

func (a *App) handleResize() {
	a.cols, a.rows = a.screen.Size()
	a.cursorX = min(a.cursorX, a.cols-1)
	a.cursorY = min(a.cursorY, a.canvasRows()-1)
	a.screen.Sync()
}

// Draw renders one frame.
func (a *App) Draw() {
	a.screen.Clear()

	if a.drawGrid {
		for _, p := range grid.Above(a.Gate, grid.Sample(a.planeW, a.planeH, a.gridPoints)) {
			a.put(p, '·', gridStyle)
		}
	}
	a.drawTrail()
	a.drawGate()

	a.screen.SetContent(a.cursorX, a.cursorY, '@', nil, cursorStyle)

	for i, r := range a.StatusLine() {
		if i >= a.cols {
			break
		}
		a.screen.SetContent(i, a.rows-1, r, nil, statusStyle)
	}

	a.screen.Show()
}

// drawGate steps along the segment one cell at a time.
func (a *App) drawGate() {
	pa, pb := a.Gate.EdgePoints()
	ax, ay := a.toCell(pa)
	bx, by := a.toCell(pb)

	steps := max(abs(bx-ax), abs(by-ay), 1)
	for i := 0; i <= steps; i++ {
		x := ax + (bx-ax)*i/steps
		y := ay + (by-ay)*i/steps
		a.setCell(x, y, '#', gateStyle)
	}

	a.put(pa, 'A', anchorStyle)
	a.put(pb, 'B', anchorStyle)
	a.put(a.Gate.Center(), '+', anchorStyle)
}

func (a *App) drawTrail() {
	points := a.Trail.Points()
	if len(points) == 0 {
		return
	}
	style := trailStyle
	if a.Trail.CrossedBy(a.Gate) {
		style = alertStyle
	}
	for _, p := range points {
		a.put(p, 'o', style)
	}
}

func (a *App) put(p gate.Point, r rune, style tcell.Style) {
	x, y := a.toCell(p)
	a.setCell(x, y, r, style)
}

func (a *App) setCell(x, y int, r rune, style tcell.Style) {
	if x < 0 || y < 0 || x >= a.cols || y >= a.canvasRows() {
		return
	}
	a.screen.SetContent(x, y, r, nil, style)
}

// Run polls terminal events and redraws on every tick until the user quits.
func (a *App) Run() {
	ticker := time.NewTicker(a.tick)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	a.Draw()
	for {
		select {
		case ev, ok := <-eventChan:
			if !ok || !a.HandleEvent(ev) {
				log.Printf("Session ended after %d crossings, %d passes", a.crossings, a.passes)
				return
			}
		case <-ticker.C:
			a.Draw()
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
