package raster

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/vector"
)

// Fill rasterizes the subpaths as a filled region onto dst with
// anti-aliasing. Open subpaths are implicitly closed, matching canvas fill
// semantics. Coverage accumulates across subpaths with the nonzero rule.
func Fill(dst *image.RGBA, subpaths []SubPath, c color.Color) {
	if len(subpaths) == 0 {
		return
	}

	b := dst.Bounds()
	r := vector.NewRasterizer(b.Dx(), b.Dy())
	r.DrawOp = draw.Over

	any := false
	for _, sp := range subpaths {
		if len(sp.Points) < 3 {
			continue
		}
		any = true
		r.MoveTo(float32(sp.Points[0].X), float32(sp.Points[0].Y))
		for _, p := range sp.Points[1:] {
			r.LineTo(float32(p.X), float32(p.Y))
		}
		r.ClosePath()
	}
	if !any {
		return
	}

	r.Draw(dst, b, image.NewUniform(c), image.Point{})
}

// fillPolygons rasterizes closed polygons onto dst. Used for stroke
// outlines, where overlapping segment quads and join wedges must merge
// into solid coverage. The rasterizer accumulates signed winding, so every
// polygon is normalized to the same orientation first; otherwise an
// overlap between opposite windings cancels to a hole.
func fillPolygons(dst *image.RGBA, polys [][]Point, c color.Color) {
	if len(polys) == 0 {
		return
	}

	b := dst.Bounds()
	r := vector.NewRasterizer(b.Dx(), b.Dy())
	r.DrawOp = draw.Over

	any := false
	for _, poly := range polys {
		if len(poly) < 3 {
			continue
		}
		if signedArea(poly) < 0 {
			reversePoints(poly)
		}
		any = true
		r.MoveTo(float32(poly[0].X), float32(poly[0].Y))
		for _, p := range poly[1:] {
			r.LineTo(float32(p.X), float32(p.Y))
		}
		r.ClosePath()
	}
	if !any {
		return
	}

	r.Draw(dst, b, image.NewUniform(c), image.Point{})
}

// signedArea is twice the shoelace area of the polygon; the sign encodes
// the winding direction.
func signedArea(pts []Point) float64 {
	var area float64
	for i := range pts {
		j := (i + 1) % len(pts)
		area += pts[i].X*pts[j].Y - pts[j].X*pts[i].Y
	}
	return area
}

func reversePoints(pts []Point) {
	for i, j := 0, len(pts)-1; i < j; i, j = i+1, j-1 {
		pts[i], pts[j] = pts[j], pts[i]
	}
}
