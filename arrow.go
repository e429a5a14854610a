package sketch

import "math"

// DefaultArrowHead is the control-point list used when DrawArrow is given
// none: a three-point head with a thin shaft. Control points are offsets in
// shaft-local space, where the shaft runs along the positive x-axis from
// (0,0) to (L,0). A negative x is anchored at the tip (L + x).
var DefaultArrowHead = []Point{
	{X: 0, Y: 1},
	{X: -10, Y: 1},
	{X: -10, Y: 5},
}

// DrawArrow draws an arrow from one point to another as a single closed
// polygon: the control points form the lower half of the outline, the tip
// closes it, and the mirrored control points in reverse form the upper half.
// An empty or nil control-point list falls back to DefaultArrowHead, so the
// result is never a degenerate shaft-only line.
//
// The surface style is restored before returning.
func DrawArrow(s Surface, from, to Point, head []Point, filled bool, c RGBA) {
	defer saveStyle(s).restore(s)

	if len(head) == 0 {
		head = DefaultArrowHead
	}

	d := to.Sub(from)
	length := d.Length()
	angle := math.Atan2(d.Y, d.X)
	sin, cos := math.Sincos(angle)

	// toSurface rotates a shaft-local vertex by the shaft angle and
	// translates it to the start point.
	toSurface := func(p Point) Point {
		return Point{
			X: from.X + p.X*cos - p.Y*sin,
			Y: from.Y + p.X*sin + p.Y*cos,
		}
	}
	// anchorX resolves a control-point x offset: negative values are
	// relative to the tip.
	anchorX := func(x float64) float64 {
		if x < 0 {
			return length + x
		}
		return x
	}

	s.BeginPath()
	origin := toSurface(Pt(0, 0))
	s.MoveTo(origin.X, origin.Y)
	for _, cp := range head {
		v := toSurface(Pt(anchorX(cp.X), cp.Y))
		s.LineTo(v.X, v.Y)
	}
	tip := toSurface(Pt(length, 0))
	s.LineTo(tip.X, tip.Y)
	for i := len(head) - 1; i >= 0; i-- {
		cp := head[i]
		v := toSurface(Pt(anchorX(cp.X), -cp.Y))
		s.LineTo(v.X, v.Y)
	}
	s.ClosePath()

	paint(s, filled, c)
}
