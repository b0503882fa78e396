package gate

import "fmt"

// Point represents a 2D point on the image plane (y grows downward).
type Point struct {
	X, Y int
}

// String returns the point as "(x, y)".
func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Angle and width bounds enforced by the gate setters.
const (
	AlphaMin = 0
	AlphaMax = 89 // 90 would make the line vertical
	MinWidth = 1
)

// OutOfRangeError reports a parameter set outside its allowed range.
// The gate is left unchanged when it is returned. Max below Min means the
// range has no upper bound.
type OutOfRangeError struct {
	Field    string
	Value    int
	Min, Max int
}

func (e *OutOfRangeError) Error() string {
	if e.Max < e.Min {
		return fmt.Sprintf("%s value `%d` must be at least %d", e.Field, e.Value, e.Min)
	}
	return fmt.Sprintf("%s value `%d` must be in range [%d, %d]", e.Field, e.Value, e.Min, e.Max)
}

// EquationError reports that the line through the edge points is vertical
// and has no slope-intercept form.
type EquationError struct {
	X int
}

func (e *EquationError) Error() string {
	return fmt.Sprintf("equation of vertical line is not a function (x=`%d`)", e.X)
}
