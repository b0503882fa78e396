// Package gate models an event gate: a line segment described by a center
// point, a width and a tilt angle, used as a trigger boundary for deciding
// on which side of it a point lies.
//
// Coordinates follow the image convention where y grows downward, so a point
// "above" the gate has a smaller y than the line at the same x.
//
// A Gate performs no locking; callers must serialize access.
package gate

import (
	"fmt"
	"math"
	"strconv"
)

// params is the user-settable state of a gate.
type params struct {
	x, y, width, alpha int
}

// Gate is a line segment determined by two edge points on the image plane.
// The edge points are derived from the center, the width and alpha, the tilt
// angle to the x axis in degrees.
type Gate struct {
	p params

	// Line equation y = slope*x + bias, always derived from p.
	slope float64
	bias  float64
}

// New creates a gate centered at (x, y). It fails with *OutOfRangeError when
// alpha or width are out of bounds and with *EquationError when the derived
// line would be vertical.
func New(x, y, width, alpha int) (*Gate, error) {
	g := &Gate{}
	if err := g.apply(params{x: x, y: y, width: width, alpha: alpha}); err != nil {
		return nil, err
	}
	return g, nil
}

// String returns the gate parameters as "<x=.., y=.., width=.., alpha=..>".
func (g *Gate) String() string {
	return fmt.Sprintf("<x=%d, y=%d, width=%d, alpha=%d>", g.p.x, g.p.y, g.p.width, g.p.alpha)
}

// X returns the center x coordinate.
func (g *Gate) X() int { return g.p.x }

// Y returns the center y coordinate.
func (g *Gate) Y() int { return g.p.y }

// Width returns the segment length.
func (g *Gate) Width() int { return g.p.width }

// Alpha returns the tilt angle in degrees.
func (g *Gate) Alpha() int { return g.p.alpha }

// Center returns the center point.
func (g *Gate) Center() Point {
	return Point{X: g.p.x, Y: g.p.y}
}

// SetX moves the center horizontally.
func (g *Gate) SetX(x int) error {
	next := g.p
	next.x = x
	return g.apply(next)
}

// SetY moves the center vertically.
func (g *Gate) SetY(y int) error {
	next := g.p
	next.y = y
	return g.apply(next)
}

// SetWidth changes the segment length.
func (g *Gate) SetWidth(width int) error {
	next := g.p
	next.width = width
	return g.apply(next)
}

// SetAlpha changes the tilt angle. Values outside [AlphaMin, AlphaMax] are
// rejected with *OutOfRangeError.
func (g *Gate) SetAlpha(alpha int) error {
	next := g.p
	next.alpha = alpha
	return g.apply(next)
}

// SetCenter moves the center to (x, y).
func (g *Gate) SetCenter(x, y int) error {
	next := g.p
	next.x, next.y = x, y
	return g.apply(next)
}

// EdgePoints returns the segment endpoints A and B.
func (g *Gate) EdgePoints() (a, b Point) {
	return edgePoints(g.p)
}

// Coefficients returns the slope and bias of the line through the edge
// points, rounded to two decimal places.
func (g *Gate) Coefficients() (slope, bias float64) {
	return g.slope, g.bias
}

// IsAbove reports whether p lies strictly above the line. Points on the line
// are not above.
func (g *Gate) IsAbove(p Point) bool {
	return float64(p.Y) < g.slope*float64(p.X)+g.bias
}

// Crossed reports whether moving from one point to the other changes the
// side of the line the point is on.
func (g *Gate) Crossed(from, to Point) bool {
	return g.IsAbove(from) != g.IsAbove(to)
}

// apply validates next, derives its line equation and commits both. On any
// error the gate keeps its previous state.
func (g *Gate) apply(next params) error {
	if next.alpha < AlphaMin || next.alpha > AlphaMax {
		return &OutOfRangeError{Field: "alpha", Value: next.alpha, Min: AlphaMin, Max: AlphaMax}
	}
	if next.width < MinWidth {
		return &OutOfRangeError{Field: "width", Value: next.width, Min: MinWidth}
	}

	slope, bias, err := LineCoefficients(edgePoints(next))
	if err != nil {
		return err
	}

	g.p = next
	g.slope, g.bias = slope, bias
	return nil
}

// edgePoints uses right triangle trigonometry with half the width as the
// hypotenuse. Coordinates are truncated toward zero.
func edgePoints(p params) (a, b Point) {
	rad := float64(p.alpha) * math.Pi / 180
	hypotenuse := 0.5 * float64(p.width)
	adjacent := math.Cos(rad) * hypotenuse
	opposite := math.Sin(rad) * hypotenuse

	a = Point{X: int(float64(p.x) - adjacent), Y: int(float64(p.y) - opposite)}
	b = Point{X: int(float64(p.x) + adjacent), Y: int(float64(p.y) + opposite)}
	return a, b
}

// LineCoefficients returns the slope and bias of the line through a and b,
// rounded to two decimal places. It fails with *EquationError when the line
// is vertical.
func LineCoefficients(a, b Point) (slope, bias float64, err error) {
	if a.X == b.X {
		return 0, 0, &EquationError{X: a.X}
	}

	slope = float64(a.Y-b.Y) / float64(a.X-b.X)
	bias = float64(a.Y) - slope*float64(a.X)

	return round2(slope), round2(bias), nil
}

// round2 rounds the exact binary value of v to two decimals, ties to even.
// Scaling by 100 first would round 2.27499999... (the float nearest 2.275)
// up to 2.28.
func round2(v float64) float64 {
	r, _ := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 2, 64), 64)
	return r
}
