package gate

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func mustNew(t *testing.T, x, y, width, alpha int) *Gate {
	t.Helper()
	g, err := New(x, y, width, alpha)
	if err != nil {
		t.Fatalf("New(%d, %d, %d, %d) failed: %v", x, y, width, alpha, err)
	}
	return g
}

func TestHorizontalEdgePoints(t *testing.T) {
	g := mustNew(t, 5, 5, 10, 0)

	a, b := g.EdgePoints()
	if diff := cmp.Diff(Point{0, 5}, a); diff != "" {
		t.Errorf("edge point A mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(Point{10, 5}, b); diff != "" {
		t.Errorf("edge point B mismatch (-want +got):\n%s", diff)
	}
}

func TestHorizontalCoefficients(t *testing.T) {
	g := mustNew(t, 5, 5, 10, 0)

	slope, bias := g.Coefficients()
	if slope != 0 {
		t.Errorf("Expected slope 0, got %v", slope)
	}
	if bias != 5 {
		t.Errorf("Expected bias 5, got %v", bias)
	}
}

func TestAlphaBounds(t *testing.T) {
	for _, alpha := range []int{90, -1, 180, math.MinInt32} {
		_, err := New(5, 5, 10, alpha)
		var rangeErr *OutOfRangeError
		if !errors.As(err, &rangeErr) {
			t.Errorf("alpha=%d: expected OutOfRangeError, got %v", alpha, err)
			continue
		}
		if rangeErr.Field != "alpha" || rangeErr.Value != alpha {
			t.Errorf("alpha=%d: unexpected error fields %+v", alpha, rangeErr)
		}
	}

	for alpha := AlphaMin; alpha <= AlphaMax; alpha++ {
		if _, err := New(500, 250, 200, alpha); err != nil {
			t.Errorf("alpha=%d: unexpected error %v", alpha, err)
		}
	}
}

func TestHalfwaySlopeRoundsExactValue(t *testing.T) {
	// Edge points (-40, -91) and (40, 91): slope 182/80 is stored as
	// 2.27499999..., which rounds down.
	g := mustNew(t, 0, 0, 200, 66)

	a, b := g.EdgePoints()
	if diff := cmp.Diff([2]Point{{-40, -91}, {40, 91}}, [2]Point{a, b}); diff != "" {
		t.Fatalf("edge points mismatch (-want +got):\n%s", diff)
	}
	if slope, _ := g.Coefficients(); slope != 2.27 {
		t.Errorf("slope = %v, want 2.27", slope)
	}

	g = mustNew(t, 13, 7, 200, 66)
	if slope, _ := g.Coefficients(); slope != 2.27 {
		t.Errorf("slope = %v, want 2.27", slope)
	}
}

func TestExactTiesRoundToEven(t *testing.T) {
	tests := []struct {
		a, b Point
		want float64
	}{
		{Point{0, 0}, Point{8, 1}, 0.12},   // 0.125
		{Point{0, 0}, Point{8, 3}, 0.38},   // 0.375
		{Point{0, 0}, Point{8, -1}, -0.12}, // -0.125
	}

	for _, tt := range tests {
		slope, _, err := LineCoefficients(tt.a, tt.b)
		if err != nil {
			t.Fatalf("LineCoefficients(%v, %v) failed: %v", tt.a, tt.b, err)
		}
		if slope != tt.want {
			t.Errorf("LineCoefficients(%v, %v) slope = %v, want %v", tt.a, tt.b, slope, tt.want)
		}
	}
}

func TestSteepestAngle(t *testing.T) {
	g := mustNew(t, 500, 250, 200, 89)

	a, b := g.EdgePoints()
	if diff := cmp.Diff([2]Point{{498, 150}, {501, 349}}, [2]Point{a, b}); diff != "" {
		t.Errorf("edge points mismatch (-want +got):\n%s", diff)
	}

	slope, bias := g.Coefficients()
	if slope != 66.33 {
		t.Errorf("Expected slope 66.33, got %v", slope)
	}
	if math.Abs(bias-(-32884)) > 1e-9 {
		t.Errorf("Expected bias -32884, got %v", bias)
	}
}

func TestDiagonalClassification(t *testing.T) {
	g := mustNew(t, 500, 250, 200, 45)

	slope, bias := g.Coefficients()
	if slope != 1 || bias != -250 {
		t.Fatalf("Expected y = x - 250, got slope=%v bias=%v", slope, bias)
	}

	if !g.IsAbove(Point{500, 249}) {
		t.Error("Expected (500, 249) above the diagonal")
	}
	if g.IsAbove(Point{500, 250}) {
		t.Error("Expected (500, 250) on the diagonal, not above")
	}
	if g.IsAbove(Point{100, 0}) {
		t.Error("Expected (100, 0) below the diagonal")
	}
}

func TestPointAboveTheLine(t *testing.T) {
	g := mustNew(t, 500, 250, 200, 0)

	for _, p := range []Point{{499, 124}, {249, 249}, {888, 221}, {0, 0}} {
		if !g.IsAbove(p) {
			t.Errorf("Expected %v above %v", p, g)
		}
	}
}

func TestPointNotAboveTheLine(t *testing.T) {
	g := mustNew(t, 500, 250, 200, 0)

	for _, p := range []Point{{12, 250}, {249, 550}, {888, 900}, {0, 250}, {0, 251}} {
		if g.IsAbove(p) {
			t.Errorf("Expected %v not above %v", p, g)
		}
	}
}

func TestPointOnTheLineIsNotAbove(t *testing.T) {
	g := mustNew(t, 5, 5, 10, 0)
	if g.IsAbove(Point{10, 5}) {
		t.Error("Expected point on the line to classify as not above")
	}
}

func TestIdempotentReads(t *testing.T) {
	g := mustNew(t, 321, 123, 77, 33)

	a1, b1 := g.EdgePoints()
	s1, c1 := g.Coefficients()
	for i := 0; i < 5; i++ {
		a2, b2 := g.EdgePoints()
		s2, c2 := g.Coefficients()
		if a1 != a2 || b1 != b2 || s1 != s2 || c1 != c2 {
			t.Fatalf("read %d differs: %v %v %v %v vs %v %v %v %v", i, a1, b1, s1, c1, a2, b2, s2, c2)
		}
	}
}

func TestCoefficientsNeverStale(t *testing.T) {
	g := mustNew(t, 500, 250, 200, 0)

	steps := []struct {
		name string
		set  func() error
	}{
		{"x", func() error { return g.SetX(320) }},
		{"y", func() error { return g.SetY(40) }},
		{"width", func() error { return g.SetWidth(633) }},
		{"alpha", func() error { return g.SetAlpha(17) }},
		{"center", func() error { return g.SetCenter(12, 480) }},
		{"alpha max", func() error { return g.SetAlpha(AlphaMax) }},
		{"width small", func() error { return g.SetWidth(3) }},
		{"alpha zero", func() error { return g.SetAlpha(AlphaMin) }},
	}

	for _, step := range steps {
		if err := step.set(); err != nil {
			t.Fatalf("%s: unexpected error %v", step.name, err)
		}

		wantSlope, wantBias, err := LineCoefficients(g.EdgePoints())
		if err != nil {
			t.Fatalf("%s: LineCoefficients failed: %v", step.name, err)
		}
		slope, bias := g.Coefficients()
		if slope != wantSlope || bias != wantBias {
			t.Errorf("%s: stale coefficients: got (%v, %v), want (%v, %v)", step.name, slope, bias, wantSlope, wantBias)
		}
	}

	if got := g.String(); got != "<x=12, y=480, width=3, alpha=0>" {
		t.Errorf("unexpected state after steps: %s", got)
	}
}

func TestRejectedSetterKeepsState(t *testing.T) {
	g := mustNew(t, 500, 250, 200, 30)
	before := g.String()
	slope, bias := g.Coefficients()

	var rangeErr *OutOfRangeError
	if err := g.SetAlpha(90); !errors.As(err, &rangeErr) {
		t.Fatalf("Expected OutOfRangeError, got %v", err)
	}
	if err := g.SetWidth(0); !errors.As(err, &rangeErr) || rangeErr.Field != "width" {
		t.Fatalf("Expected width OutOfRangeError, got %v", err)
	}

	if g.String() != before {
		t.Errorf("state changed after rejected setters: %s -> %s", before, g.String())
	}
	if s, b := g.Coefficients(); s != slope || b != bias {
		t.Errorf("coefficients changed after rejected setters")
	}
}

func TestVerticalLineIsRejected(t *testing.T) {
	// Half a pixel either side of x=0 truncates to the same column.
	_, err := New(0, 0, 1, 0)
	var eqErr *EquationError
	if !errors.As(err, &eqErr) {
		t.Fatalf("Expected EquationError, got %v", err)
	}
	if eqErr.X != 0 {
		t.Errorf("Expected x=0 in error, got %d", eqErr.X)
	}

	g := mustNew(t, 0, 0, 10, 0)
	if err := g.SetWidth(1); !errors.As(err, &eqErr) {
		t.Fatalf("Expected EquationError from SetWidth, got %v", err)
	}
	if g.Width() != 10 {
		t.Errorf("Expected width to stay 10, got %d", g.Width())
	}

	if _, _, err := LineCoefficients(Point{3, 1}, Point{3, 9}); !errors.As(err, &eqErr) {
		t.Errorf("Expected EquationError for vertical points, got %v", err)
	}
}

func TestEdgePointsTruncateTowardZero(t *testing.T) {
	g := mustNew(t, -10, -10, 5, 0)

	a, b := g.EdgePoints()
	if diff := cmp.Diff([2]Point{{-12, -10}, {-7, -10}}, [2]Point{a, b}); diff != "" {
		t.Errorf("edge points mismatch (-want +got):\n%s", diff)
	}
}

func TestCenterAccessors(t *testing.T) {
	g := mustNew(t, 1, 2, 30, 0)
	if err := g.SetCenter(40, 50); err != nil {
		t.Fatalf("SetCenter failed: %v", err)
	}
	if got := g.Center(); got != (Point{40, 50}) {
		t.Errorf("Expected center (40, 50), got %v", got)
	}
	if g.X() != 40 || g.Y() != 50 {
		t.Errorf("Expected X/Y 40/50, got %d/%d", g.X(), g.Y())
	}
}

func TestCrossed(t *testing.T) {
	g := mustNew(t, 500, 250, 200, 0)

	tests := []struct {
		from, to Point
		want     bool
	}{
		{Point{500, 100}, Point{500, 400}, true},
		{Point{500, 400}, Point{500, 100}, true},
		{Point{10, 10}, Point{900, 20}, false},
		{Point{10, 300}, Point{900, 260}, false},
		{Point{500, 249}, Point{500, 250}, true},
	}

	for _, tt := range tests {
		if got := g.Crossed(tt.from, tt.to); got != tt.want {
			t.Errorf("Crossed(%v, %v) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestString(t *testing.T) {
	g := mustNew(t, 500, 250, 200, 12)
	if got := g.String(); got != "<x=500, y=250, width=200, alpha=12>" {
		t.Errorf("unexpected String(): %s", got)
	}
}

func TestErrorMessages(t *testing.T) {
	err := &OutOfRangeError{Field: "alpha", Value: 90, Min: AlphaMin, Max: AlphaMax}
	if got := err.Error(); got != "alpha value `90` must be in range [0, 89]" {
		t.Errorf("unexpected message: %s", got)
	}
	err = &OutOfRangeError{Field: "width", Value: 0, Min: MinWidth}
	if got := err.Error(); got != "width value `0` must be at least 1" {
		t.Errorf("unexpected message: %s", got)
	}
}
