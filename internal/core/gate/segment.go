package gate

// Passes reports whether the step from one point to another goes through the
// gate segment between its edge points. The step must cross the line as
// Crossed decides, and the line through the step must meet the segment;
// touching an edge point counts. A step that changes sides beyond either
// edge point crosses but does not pass.
func (g *Gate) Passes(from, to Point) bool {
	if !g.Crossed(from, to) {
		return false
	}

	a, b := g.EdgePoints()
	d1 := orientation(from, to, a)
	d2 := orientation(from, to, b)
	return d1 == 0 || d2 == 0 || (d1 > 0) != (d2 > 0)
}

// orientation is the cross product of (b - a) and (p - a). Its sign tells
// which side of the directed line a->b the point p lies on.
func orientation(a, b, p Point) int64 {
	dx1 := int64(b.X - a.X)
	dy1 := int64(b.Y - a.Y)
	dx2 := int64(p.X - a.X)
	dy2 := int64(p.Y - a.Y)
	return dx1*dy2 - dy1*dx2
}
