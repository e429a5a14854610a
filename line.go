package sketch

// loopSize scales the self-loop control-point offset per unit of curvature.
const loopSize = 70

// DrawCurvedLine draws a line from one point to another, bowed to the side
// by the signed curvature:
//
//   - curvature 0 draws a straight stroked segment;
//   - equal endpoints draw a self-loop: a cubic curve whose control points
//     sit loopSize*curvature away from the shared point, so the loop grows
//     with the curvature magnitude and flips side with its sign;
//   - otherwise a quadratic curve whose control point is the segment
//     midpoint displaced perpendicular to the segment by length*curvature.
//
// A shadow blur of 2 in the line color is applied before stroking to soften
// the edge. The surface style is restored before returning.
func DrawCurvedLine(s Surface, from, to Point, curvature, width float64, c RGBA) {
	defer saveStyle(s).restore(s)

	s.SetLineWidth(width)
	edgeSmoothing(s, 2, c)
	s.SetStrokeColor(c)

	s.BeginPath()
	s.MoveTo(from.X, from.Y)

	switch {
	case curvature == 0:
		s.LineTo(to.X, to.Y)

	case from == to:
		off := curvature * loopSize
		s.BezierCurveTo(
			from.X-off, from.Y-off,
			from.X+off, from.Y-off,
			to.X, to.Y,
		)

	default:
		d := to.Sub(from)
		mid := from.Lerp(to, 0.5)
		cp := mid.Add(d.Normalize().Perp().Mul(d.Length() * curvature))
		s.QuadraticCurveTo(cp.X, cp.Y, to.X, to.Y)
	}

	s.Stroke()
}
