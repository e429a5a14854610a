// Package soft provides a software implementation of the sketch.Surface
// drawing surface: paths are recorded, flattened, and rasterized with
// anti-aliasing onto an in-memory RGBA image. It also implements the
// sketch.Element and sketch.Document host boundary, so the full canvas
// setup and pointer mapping flow works headlessly.
package soft

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/anthonynsimon/bild/blur"

	"github.com/gogpu/sketch"
	"github.com/gogpu/sketch/internal/raster"
	"github.com/gogpu/sketch/text"
)

// Canvas is a software drawing surface. The zero value is not usable; use
// NewCanvas. Canvas is not safe for concurrent use, matching the
// single-threaded drawing model.
type Canvas struct {
	width  int
	height int
	img    *image.RGBA

	// Recorded path under construction.
	elems []raster.Element

	// Style state.
	matrix      sketch.Matrix
	fill        sketch.RGBA
	stroke      sketch.RGBA
	lineWidth   float64
	shadowBlur  float64
	shadowColor sketch.RGBA
	font        string
	dash        []float64

	smoothing bool
	quality   sketch.SmoothingQuality

	fonts *text.Registry

	// Element state: the layout size may differ from the buffer size.
	layoutW, layoutH float64
}

var (
	_ sketch.Surface       = (*Canvas)(nil)
	_ sketch.ImageSmoother = (*Canvas)(nil)
	_ sketch.Element       = (*Canvas)(nil)
)

// NewCanvas creates a canvas with the given drawing-buffer dimensions.
// The buffer starts fully transparent. The layout size defaults to the
// buffer size; use WithLayoutSize when the canvas is displayed scaled.
func NewCanvas(width, height int, opts ...Option) *Canvas {
	options := defaultOptions(width, height)
	for _, opt := range opts {
		opt(&options)
	}

	c := &Canvas{
		width:     width,
		height:    height,
		img:       image.NewRGBA(image.Rect(0, 0, width, height)),
		matrix:    sketch.Identity(),
		fill:      sketch.Black,
		stroke:    sketch.Black,
		lineWidth: 1,
		font:      "10px sans-serif",
		smoothing: true,
		quality:   sketch.SmoothingLow,
		fonts:     options.fonts,
		layoutW:   options.layoutW,
		layoutH:   options.layoutH,
	}
	return c
}

// Image returns the backing image. The returned image shares memory with
// the canvas; drawing after the call mutates it.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Fonts returns the canvas font registry, for registering font sources
// after creation.
func (c *Canvas) Fonts() *text.Registry {
	return c.fonts
}

// Clear fills the whole buffer with a color.
func (c *Canvas) Clear(col sketch.RGBA) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(col.Color()), image.Point{}, draw.Src)
}

// BeginPath discards the recorded path.
func (c *Canvas) BeginPath() {
	c.elems = c.elems[:0]
}

// MoveTo starts a new subpath.
func (c *Canvas) MoveTo(x, y float64) {
	c.elems = append(c.elems, raster.MoveTo{Point: raster.Point{X: x, Y: y}})
}

// LineTo appends a line segment.
func (c *Canvas) LineTo(x, y float64) {
	c.elems = append(c.elems, raster.LineTo{Point: raster.Point{X: x, Y: y}})
}

// QuadraticCurveTo appends a quadratic Bezier segment.
func (c *Canvas) QuadraticCurveTo(cpx, cpy, x, y float64) {
	c.elems = append(c.elems, raster.QuadTo{
		Control: raster.Point{X: cpx, Y: cpy},
		Point:   raster.Point{X: x, Y: y},
	})
}

// BezierCurveTo appends a cubic Bezier segment.
func (c *Canvas) BezierCurveTo(cp1x, cp1y, cp2x, cp2y, x, y float64) {
	c.elems = append(c.elems, raster.CubicTo{
		Control1: raster.Point{X: cp1x, Y: cp1y},
		Control2: raster.Point{X: cp2x, Y: cp2y},
		Point:    raster.Point{X: x, Y: y},
	})
}

// Arc appends a circular arc between two angles.
func (c *Canvas) Arc(cx, cy, radius, startAngle, endAngle float64) {
	c.elems = append(c.elems, raster.ArcTo{
		Center: raster.Point{X: cx, Y: cy},
		Radius: radius,
		Start:  startAngle,
		End:    endAngle,
	})
}

// Rect appends an axis-aligned rectangle as a closed subpath.
func (c *Canvas) Rect(x, y, w, h float64) {
	c.elems = append(c.elems, raster.RectTo{Min: raster.Point{X: x, Y: y}, W: w, H: h})
}

// ClosePath closes the current subpath.
func (c *Canvas) ClosePath() {
	c.elems = append(c.elems, raster.Close{})
}

// Fill rasterizes the recorded path as a filled region in the fill color.
// The path is kept, so a caller may also stroke it.
func (c *Canvas) Fill() {
	subpaths := c.flattened()
	c.withShadow(func(dst *image.RGBA, col color.Color) {
		raster.Fill(dst, subpaths, col)
	}, c.fill)
}

// Stroke rasterizes the recorded path as stroked outlines in the stroke
// color, honoring the line width and dash pattern. The path is kept.
func (c *Canvas) Stroke() {
	subpaths := c.flattened()
	c.withShadow(func(dst *image.RGBA, col color.Color) {
		raster.Stroke(dst, subpaths, c.lineWidth, c.dash, col)
	}, c.stroke)
}

// flattened flattens the recorded path and applies the current transform.
func (c *Canvas) flattened() []raster.SubPath {
	subpaths := raster.Flatten(c.elems)
	if c.matrix.IsIdentity() {
		return subpaths
	}
	for _, sp := range subpaths {
		for i, p := range sp.Points {
			t := c.matrix.TransformPoint(sketch.Pt(p.X, p.Y))
			sp.Points[i] = raster.Point{X: t.X, Y: t.Y}
		}
	}
	return subpaths
}

// withShadow runs a rasterization pass, preceded by a blurred silhouette
// pass in the shadow color when shadow state is set. The shadow has no
// offset; with small blur radii it acts as edge softening, which is how
// the drawing utilities use it.
func (c *Canvas) withShadow(pass func(dst *image.RGBA, col color.Color), col sketch.RGBA) {
	if c.shadowBlur > 0 && c.shadowColor.A > 0 {
		off := image.NewRGBA(c.img.Bounds())
		pass(off, c.shadowColor.Color())
		blurred := blur.Gaussian(off, c.shadowBlur)
		draw.Draw(c.img, c.img.Bounds(), blurred, image.Point{}, draw.Over)
	}
	pass(c.img, col.Color())
}
