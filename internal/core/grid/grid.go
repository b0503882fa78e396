// Package grid samples a regular lattice of points over a canvas and
// classifies them against a gate.
package grid

import (
	"gonum.org/v1/gonum/floats"

	"chosenoffset.com/eventgate/internal/core/gate"
)

// Sample returns an n by n lattice spanning [0, width-1] x [0, height-1].
// Points are ordered row by row, top to bottom.
func Sample(width, height, n int) []gate.Point {
	xs := ticks(width, n)
	ys := ticks(height, n)

	points := make([]gate.Point, 0, len(xs)*len(ys))
	for _, y := range ys {
		for _, x := range xs {
			points = append(points, gate.Point{X: x, Y: y})
		}
	}
	return points
}

// ticks returns n evenly spaced integer positions over [0, size-1].
func ticks(size, n int) []int {
	switch {
	case n <= 0:
		return nil
	case n == 1:
		return []int{0}
	}

	span := floats.Span(make([]float64, n), 0, float64(size-1))
	out := make([]int, n)
	for i, v := range span {
		out[i] = int(v)
	}
	return out
}

// Above returns the points g classifies as above its line.
func Above(g *gate.Gate, points []gate.Point) []gate.Point {
	var out []gate.Point
	for _, p := range points {
		if g.IsAbove(p) {
			out = append(out, p)
		}
	}
	return out
}

// Classify returns, for each point, whether g classifies it as above.
func Classify(g *gate.Gate, points []gate.Point) []bool {
	out := make([]bool, len(points))
	for i, p := range points {
		out[i] = g.IsAbove(p)
	}
	return out
}
