// Package trail keeps a bounded, time ordered history of observed points.
// When the trail is full the oldest point is evicted to make room.
package trail

import (
	"errors"
	"strings"

	"chosenoffset.com/eventgate/internal/core/gate"
)

// DefaultCapacity is used when a trail is created with a non-positive capacity.
const DefaultCapacity = 10

// ErrEmpty is returned when the ends of an empty trail are requested.
var ErrEmpty = errors.New("points collection is empty")

// Trail is a fixed capacity ring buffer of points, oldest first.
type Trail struct {
	buf   []gate.Point
	start int // index of the oldest point
	size  int
}

// New creates a trail holding at most capacity points, seeded with points in
// order. Only the newest capacity seed points are kept.
func New(capacity int, points ...gate.Point) *Trail {
	if capacity < 1 {
		capacity = DefaultCapacity
	}
	t := &Trail{buf: make([]gate.Point, capacity)}
	for _, p := range points {
		t.Add(p)
	}
	return t
}

// String returns the trail as "<Trail (x, y)->(x, y)>".
func (t *Trail) String() string {
	parts := make([]string, 0, t.size)
	for _, p := range t.Points() {
		parts = append(parts, p.String())
	}
	return "<Trail " + strings.Join(parts, "->") + ">"
}

// Len returns the number of points held.
func (t *Trail) Len() int { return t.size }

// Cap returns the maximum number of points held.
func (t *Trail) Cap() int { return len(t.buf) }

// Add appends p, evicting the oldest point when the trail is full.
func (t *Trail) Add(p gate.Point) {
	if t.size == len(t.buf) {
		t.buf[t.start] = p
		t.start = (t.start + 1) % len(t.buf)
		return
	}
	t.buf[(t.start+t.size)%len(t.buf)] = p
	t.size++
}

// Ends returns the oldest and the newest point. Points are assumed to be
// added in time order, so these are where the trail started and ended.
func (t *Trail) Ends() (first, last gate.Point, err error) {
	if t.size == 0 {
		return gate.Point{}, gate.Point{}, ErrEmpty
	}
	return t.at(0), t.at(t.size - 1), nil
}

// First returns the oldest point.
func (t *Trail) First() (gate.Point, error) {
	first, _, err := t.Ends()
	return first, err
}

// Last returns the newest point.
func (t *Trail) Last() (gate.Point, error) {
	_, last, err := t.Ends()
	return last, err
}

// CrossedBy reports whether the trail started and ended on different sides
// of g. An empty trail has not crossed.
func (t *Trail) CrossedBy(g *gate.Gate) bool {
	first, last, err := t.Ends()
	if err != nil {
		return false
	}
	return g.Crossed(first, last)
}

// Points returns a copy of the held points, oldest first.
func (t *Trail) Points() []gate.Point {
	out := make([]gate.Point, t.size)
	for i := range out {
		out[i] = t.at(i)
	}
	return out
}

// RemoveNear removes the oldest point lying strictly inside the square of
// half side margin centered on p. It reports whether a point was removed.
func (t *Trail) RemoveNear(p gate.Point, margin int) bool {
	for i := 0; i < t.size; i++ {
		q := t.at(i)
		if p.X-margin < q.X && q.X < p.X+margin && p.Y-margin < q.Y && q.Y < p.Y+margin {
			t.removeAt(i)
			return true
		}
	}
	return false
}

// Clear drops every point.
func (t *Trail) Clear() {
	t.start, t.size = 0, 0
}

func (t *Trail) at(i int) gate.Point {
	return t.buf[(t.start+i)%len(t.buf)]
}

// removeAt shifts the newer points down by one slot.
func (t *Trail) removeAt(i int) {
	for j := i; j < t.size-1; j++ {
		t.buf[(t.start+j)%len(t.buf)] = t.at(j + 1)
	}
	t.size--
}
