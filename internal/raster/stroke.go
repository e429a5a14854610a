package raster

import (
	"image"
	"image/color"
	"math"
)

// joinSegments is the polygon vertex count used for round join wedges.
const joinSegments = 12

// Stroke rasterizes the subpaths as stroked polylines of the given width
// onto dst. A non-empty dash pattern splits each polyline into alternating
// on/off runs first. Segments get quad outlines with butt ends; interior
// vertices (and every vertex of a closed subpath) get round joins so the
// outline has no cracks.
func Stroke(dst *image.RGBA, subpaths []SubPath, width float64, dash []float64, c color.Color) {
	if width <= 0 {
		width = 1
	}
	half := width / 2

	var polys [][]Point
	for _, sp := range subpaths {
		pts := sp.Points
		if sp.Closed && len(pts) > 1 {
			pts = append(append([]Point{}, pts...), pts[0])
		}

		runs := [][]Point{pts}
		if len(dash) > 0 {
			runs = splitDashes(pts, dash)
		}

		for _, run := range runs {
			polys = append(polys, strokePolyline(run, half)...)
		}
		// Close the seam of an undashed closed outline.
		if sp.Closed && len(dash) == 0 && len(pts) > 2 {
			polys = append(polys, circlePolygon(pts[0], half))
		}
	}

	fillPolygons(dst, polys, c)
}

// strokePolyline builds the outline polygons for one polyline.
func strokePolyline(pts []Point, half float64) [][]Point {
	var polys [][]Point
	for i := 0; i+1 < len(pts); i++ {
		a, b := pts[i], pts[i+1]
		d := b.sub(a)
		length := d.length()
		if length == 0 {
			continue
		}
		n := Point{X: -d.Y / length, Y: d.X / length}.mul(half)
		polys = append(polys, []Point{
			a.add(n), b.add(n), b.sub(n), a.sub(n),
		})
		// Round join at interior vertices.
		if i+2 < len(pts) {
			polys = append(polys, circlePolygon(b, half))
		}
	}
	return polys
}

// circlePolygon approximates a circle as a polygon.
func circlePolygon(center Point, r float64) []Point {
	pts := make([]Point, 0, joinSegments)
	for i := 0; i < joinSegments; i++ {
		a := 2 * math.Pi * float64(i) / joinSegments
		sin, cos := math.Sincos(a)
		pts = append(pts, Point{X: center.X + r*cos, Y: center.Y + r*sin})
	}
	return pts
}

// splitDashes walks a polyline with an alternating on/off pattern and
// returns the "on" runs. An odd-length pattern is logically duplicated to
// make it even, following the usual canvas dash convention. A pattern with
// a negative entry, or one that sums to zero, is invalid and yields the
// whole polyline as a single solid run; a negative remain would otherwise
// keep the walk below from ever advancing.
func splitDashes(pts []Point, pattern []float64) [][]Point {
	total := 0.0
	for _, l := range pattern {
		if l < 0 {
			return [][]Point{pts}
		}
		total += l
	}
	if total <= 0 {
		return [][]Point{pts}
	}
	patt := pattern
	if len(patt)%2 != 0 {
		patt = append(append([]float64{}, patt...), patt...)
	}

	var runs [][]Point
	var run []Point
	idx := 0              // index into patt
	remain := patt[0]     // distance left in the current pattern entry
	on := true            // even entries are dashes, odd are gaps
	if remain > 0 && on { // the first dash starts at the first point
		run = append(run, pts[0])
	}

	advance := func() {
		idx = (idx + 1) % len(patt)
		remain = patt[idx]
		on = idx%2 == 0
	}

	for i := 0; i+1 < len(pts); i++ {
		a, b := pts[i], pts[i+1]
		segLen := a.distance(b)
		pos := 0.0
		for segLen-pos > remain {
			pos += remain
			cut := a.lerp(b, pos/segLen)
			if on {
				run = append(run, cut)
				runs = append(runs, run)
				run = nil
			} else {
				run = []Point{cut}
			}
			advance()
			for remain == 0 { // skip zero-length entries
				advance()
			}
		}
		remain -= segLen - pos
		if on {
			run = append(run, b)
		}
	}
	if on && len(run) > 1 {
		runs = append(runs, run)
	}
	return runs
}
