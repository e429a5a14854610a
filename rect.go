package sketch

import "math"

// DrawRoundRect draws a rectangle with rounded corners at (x, y), filled or
// stroked. The radius is clamped so the corner arcs never overlap: first
// against half the width, then against half the height, so an over-large
// radius degrades the box into a pill shape instead of a broken outline.
//
// An optional dash pattern is applied before path construction. The dash
// pattern is caller-owned state: it is NOT restored when this function
// returns, so pass nil and reset it yourself if you mix dashed and solid
// strokes. All other touched style fields are restored.
func DrawRoundRect(s Surface, x, y, w, h, radius float64, filled bool, c RGBA, dash []float64) {
	defer saveStyle(s).restore(s)

	if w < 2*radius {
		radius = w / 2
	}
	if h < 2*radius {
		radius = h / 2
	}

	edgeSmoothing(s, 1, c)
	if dash != nil {
		s.SetLineDash(dash)
	}

	s.BeginPath()
	s.MoveTo(x+radius, y)
	s.LineTo(x+w-radius, y)
	s.Arc(x+w-radius, y+radius, radius, -math.Pi/2, 0)
	s.LineTo(x+w, y+h-radius)
	s.Arc(x+w-radius, y+h-radius, radius, 0, math.Pi/2)
	s.LineTo(x+radius, y+h)
	s.Arc(x+radius, y+h-radius, radius, math.Pi/2, math.Pi)
	s.LineTo(x, y+radius)
	s.Arc(x+radius, y+radius, radius, math.Pi, 3*math.Pi/2)
	s.ClosePath()

	paint(s, filled, c)
}

// DrawRect draws an axis-aligned rectangle at (x, y), filled or stroked,
// using the surface's native rectangle path. The optional dash pattern
// follows the same caller-owned rule as DrawRoundRect. All other touched
// style fields are restored.
func DrawRect(s Surface, x, y, w, h float64, filled bool, c RGBA, dash []float64) {
	defer saveStyle(s).restore(s)

	edgeSmoothing(s, 1, c)
	if dash != nil {
		s.SetLineDash(dash)
	}

	s.BeginPath()
	s.Rect(x, y, w, h)

	paint(s, filled, c)
}
