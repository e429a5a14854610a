// Package raster flattens recorded canvas paths and rasterizes them onto
// an image.RGBA with anti-aliasing via golang.org/x/image/vector.
package raster

import "math"

// Point represents a 2D point (internal copy to avoid import cycles).
type Point struct {
	X, Y float64
}

// Tolerance is the maximum distance from the true curve when flattening.
const Tolerance = 0.1

// Element represents an element of a recorded canvas path.
type Element interface {
	isElement()
}

// MoveTo starts a new subpath at a point.
type MoveTo struct{ Point Point }

func (MoveTo) isElement() {}

// LineTo draws a line to a point.
type LineTo struct{ Point Point }

func (LineTo) isElement() {}

// QuadTo draws a quadratic Bezier curve.
type QuadTo struct{ Control, Point Point }

func (QuadTo) isElement() {}

// CubicTo draws a cubic Bezier curve.
type CubicTo struct{ Control1, Control2, Point Point }

func (CubicTo) isElement() {}

// ArcTo draws a circular arc between two angles. Per canvas semantics, if
// a subpath is in progress a line connects the current point to the arc's
// start point; otherwise a new subpath starts there.
type ArcTo struct {
	Center     Point
	Radius     float64
	Start, End float64
}

func (ArcTo) isElement() {}

// RectTo adds an axis-aligned rectangle as its own closed subpath.
type RectTo struct {
	Min  Point
	W, H float64
}

func (RectTo) isElement() {}

// Close closes the current subpath.
type Close struct{}

func (Close) isElement() {}

// SubPath is a flattened subpath: a polyline, optionally closed.
type SubPath struct {
	Points []Point
	Closed bool
}

// Flatten converts a recorded path into straight-line subpaths.
func Flatten(elements []Element) []SubPath {
	var subpaths []SubPath
	var cur []Point
	var current Point
	closed := false

	flush := func() {
		if len(cur) > 1 || (len(cur) == 1 && closed) {
			subpaths = append(subpaths, SubPath{Points: cur, Closed: closed})
		}
		cur = nil
		closed = false
	}

	for _, elem := range elements {
		switch e := elem.(type) {
		case MoveTo:
			flush()
			current = e.Point
			cur = append(cur, current)

		case LineTo:
			cur = append(cur, e.Point)
			current = e.Point

		case QuadTo:
			cur = appendQuadratic(cur, current, e.Control, e.Point, Tolerance)
			current = e.Point

		case CubicTo:
			cur = appendCubic(cur, current, e.Control1, e.Control2, e.Point, Tolerance)
			current = e.Point

		case ArcTo:
			pts := flattenArc(e.Center, e.Radius, e.Start, e.End, Tolerance)
			if len(pts) == 0 {
				continue
			}
			cur = append(cur, pts...)
			current = pts[len(pts)-1]

		case RectTo:
			flush()
			subpaths = append(subpaths, SubPath{
				Points: []Point{
					e.Min,
					{X: e.Min.X + e.W, Y: e.Min.Y},
					{X: e.Min.X + e.W, Y: e.Min.Y + e.H},
					{X: e.Min.X, Y: e.Min.Y + e.H},
				},
				Closed: true,
			})
			current = e.Min

		case Close:
			if len(cur) > 0 {
				closed = true
				current = cur[0]
				flush()
			}
		}
	}
	flush()

	return subpaths
}

// appendQuadratic flattens a quadratic Bezier curve onto a polyline.
func appendQuadratic(dst []Point, p0, p1, p2 Point, tolerance float64) []Point {
	if len(dst) == 0 {
		dst = append(dst, p0)
	}
	return flattenQuadraticRec(p0, p1, p2, tolerance, dst)
}

func flattenQuadraticRec(p0, p1, p2 Point, tolerance float64, dst []Point) []Point {
	if distanceToLine(p1, p0, p2) < tolerance {
		return append(dst, p2)
	}

	q0 := p0.lerp(p1, 0.5)
	q1 := p1.lerp(p2, 0.5)
	q2 := q0.lerp(q1, 0.5)

	dst = flattenQuadraticRec(p0, q0, q2, tolerance, dst)
	return flattenQuadraticRec(q2, q1, p2, tolerance, dst)
}

// appendCubic flattens a cubic Bezier curve onto a polyline.
func appendCubic(dst []Point, p0, p1, p2, p3 Point, tolerance float64) []Point {
	if len(dst) == 0 {
		dst = append(dst, p0)
	}
	return flattenCubicRec(p0, p1, p2, p3, tolerance, dst)
}

func flattenCubicRec(p0, p1, p2, p3 Point, tolerance float64, dst []Point) []Point {
	d1 := distanceToLine(p1, p0, p3)
	d2 := distanceToLine(p2, p0, p3)
	if math.Max(d1, d2) < tolerance {
		return append(dst, p3)
	}

	// de Casteljau subdivision at t=0.5.
	q0 := p0.lerp(p1, 0.5)
	q1 := p1.lerp(p2, 0.5)
	q2 := p2.lerp(p3, 0.5)
	r0 := q0.lerp(q1, 0.5)
	r1 := q1.lerp(q2, 0.5)
	s := r0.lerp(r1, 0.5)

	dst = flattenCubicRec(p0, q0, r0, s, tolerance, dst)
	return flattenCubicRec(s, r1, q2, p3, tolerance, dst)
}

// flattenArc converts a circular arc to a polyline, choosing the angular
// step so the chord error stays within the tolerance.
func flattenArc(center Point, radius, start, end, tolerance float64) []Point {
	if radius <= 0 {
		return []Point{center}
	}

	sweep := end - start
	maxStep := 2 * math.Acos(math.Max(-1, 1-tolerance/radius))
	if maxStep <= 0 || math.IsNaN(maxStep) {
		maxStep = math.Pi / 16
	}
	n := int(math.Ceil(math.Abs(sweep) / maxStep))
	if n < 1 {
		n = 1
	}

	pts := make([]Point, 0, n+1)
	for i := 0; i <= n; i++ {
		a := start + sweep*float64(i)/float64(n)
		sin, cos := math.Sincos(a)
		pts = append(pts, Point{X: center.X + radius*cos, Y: center.Y + radius*sin})
	}
	return pts
}

func (p Point) lerp(q Point, t float64) Point {
	return Point{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

func (p Point) sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

func (p Point) add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

func (p Point) mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

func (p Point) dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

func (p Point) length() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

func (p Point) distance(q Point) float64 {
	return p.sub(q).length()
}

// distanceToLine is the perpendicular distance from p to segment (a, b).
func distanceToLine(p, a, b Point) float64 {
	ab := b.sub(a)
	abLen := ab.length()
	if abLen < 1e-10 {
		return p.distance(a)
	}

	ap := p.sub(a)
	t := ap.dot(ab) / (abLen * abLen)
	if t < 0 {
		return p.distance(a)
	}
	if t > 1 {
		return p.distance(b)
	}
	return p.distance(a.add(ab.mul(t)))
}
