package sketch

import "math"

// defaultArcParts is the segment count used when DrawDashedArc is given a
// non-positive count.
const defaultArcParts = 30

// DrawDashedArc draws the arc of a circle between two angles (radians) as a
// dash pattern: the angular range is divided into parts equal segments and
// only the even-indexed ones are arced; the odd ones are skipped with a
// move. The dashes are committed with a single stroke at the end.
//
// The pattern is built from sub-paths rather than the surface's line-dash
// state, so it composes with callers that use SetLineDash for their own
// strokes. The surface style is restored before returning.
func DrawDashedArc(s Surface, center Point, radius, startAngle, endAngle float64, parts int, c RGBA) {
	defer saveStyle(s).restore(s)

	if parts <= 0 {
		parts = defaultArcParts
	}
	step := (endAngle - startAngle) / float64(parts)

	s.BeginPath()
	for i := 0; i < parts; i++ {
		a := startAngle + float64(i)*step
		if i%2 == 0 {
			s.Arc(center.X, center.Y, radius, a, a+step)
		} else {
			sin, cos := math.Sincos(a + step)
			s.MoveTo(center.X+radius*cos, center.Y+radius*sin)
		}
	}

	s.SetStrokeColor(c)
	s.Stroke()
}

// DrawCircle draws a circular arc around a center point, filled or stroked.
// Passing 0 for both angles draws the full circle. A shadow blur of 1 in
// the draw color softens the edge. The surface style is restored before
// returning.
func DrawCircle(s Surface, center Point, radius, startAngle, endAngle float64, filled bool, c RGBA) {
	defer saveStyle(s).restore(s)

	if startAngle == 0 && endAngle == 0 {
		endAngle = 2 * math.Pi
	}

	edgeSmoothing(s, 1, c)
	s.BeginPath()
	s.Arc(center.X, center.Y, radius, startAngle, endAngle)
	paint(s, filled, c)
}
