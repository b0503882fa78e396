package gate

import "testing"

func TestPasses(t *testing.T) {
	g := mustNew(t, 500, 250, 200, 0)

	tests := []struct {
		name     string
		from, to Point
		want     bool
	}{
		{"through the middle", Point{500, 100}, Point{500, 400}, true},
		{"upwards", Point{450, 400}, Point{550, 100}, true},
		{"beyond the right edge", Point{900, 100}, Point{900, 400}, false},
		{"beyond the left edge", Point{399, 100}, Point{399, 400}, false},
		{"touching an edge point", Point{600, 100}, Point{600, 400}, true},
		{"ending on the gate", Point{500, 249}, Point{500, 250}, true},
		{"starting on the gate", Point{500, 250}, Point{500, 300}, false},
		{"same side", Point{10, 10}, Point{900, 20}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.Passes(tt.from, tt.to); got != tt.want {
				t.Errorf("Passes(%v, %v) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestPassesAtSteepAngle(t *testing.T) {
	// slope 66.33, bias -32884: the rounded line misses the exact segment
	// by a pixel near its lower end.
	g := mustNew(t, 500, 250, 200, 89)

	from, to := Point{501, 348}, Point{500, 348}
	if g.Crossed(from, to) {
		t.Fatalf("Crossed(%v, %v) = true, want false", from, to)
	}
	if g.Passes(from, to) {
		t.Errorf("Passes(%v, %v) = true without crossing the line", from, to)
	}

	from, to = Point{499, 250}, Point{502, 250}
	if !g.Passes(from, to) {
		t.Errorf("Passes(%v, %v) = false, want true", from, to)
	}
}

func TestPassesImpliesCrossed(t *testing.T) {
	for _, alpha := range []int{0, 1, 30, 45, 60, 66, 85, 88, 89} {
		g := mustNew(t, 500, 250, 200, alpha)
		a, b := g.EdgePoints()

		// Unit steps around every cell near the segment plus long steps
		// through the center.
		for y := min(a.Y, b.Y) - 3; y <= max(a.Y, b.Y)+3; y++ {
			for x := min(a.X, b.X) - 3; x <= max(a.X, b.X)+3; x++ {
				from := Point{x, y}
				for _, to := range []Point{{x + 1, y}, {x, y + 1}, {x + 1, y + 1}, {1000 - x, 500 - y}} {
					if g.Passes(from, to) && !g.Crossed(from, to) {
						t.Errorf("alpha=%d: step %v->%v passes the gate without crossing its line", alpha, from, to)
					}
				}
			}
		}
	}
}
