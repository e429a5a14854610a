package sketch

import "image"

// Surface is the drawing surface all utilities in this package operate on.
// It models an immediate-mode 2D canvas: a current path under construction,
// one-shot fill/stroke operations, text drawing and measurement, and a set
// of mutable style fields (colors, shadow, line width, font, dash pattern)
// that persist between calls.
//
// Helpers in this package snapshot the style fields they touch and restore
// them before returning, so drawing never leaks visual state into subsequent
// calls. The dash pattern set via SetLineDash is the one exception: it is
// caller-owned state and is documented per function.
type Surface interface {
	// Path construction. BeginPath discards the current path; the other
	// methods append segments to it.
	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	QuadraticCurveTo(cpx, cpy, x, y float64)
	BezierCurveTo(cp1x, cp1y, cp2x, cp2y, x, y float64)
	Arc(cx, cy, radius, startAngle, endAngle float64)
	Rect(x, y, w, h float64)
	ClosePath()

	// Fill and Stroke commit the current path using the fill and stroke
	// colors respectively. The path is left in place so a caller may both
	// fill and stroke the same outline.
	Fill()
	Stroke()

	// Text drawing and measurement, using the current font string.
	FillText(s string, x, y float64)
	StrokeText(s string, x, y float64)
	MeasureText(s string) TextMetrics

	// DrawImage blits an already-decoded image at (x, y). A width or
	// height of 0 uses the image's natural size.
	DrawImage(img image.Image, x, y, w, h float64)

	// Transform state.
	Transform() Matrix
	SetTransform(m Matrix)
	Translate(x, y float64)

	// Mutable style state.
	FillColor() RGBA
	SetFillColor(c RGBA)
	StrokeColor() RGBA
	SetStrokeColor(c RGBA)
	LineWidth() float64
	SetLineWidth(w float64)
	ShadowBlur() float64
	SetShadowBlur(b float64)
	ShadowColor() RGBA
	SetShadowColor(c RGBA)
	Font() string
	SetFont(font string)
	SetLineDash(pattern []float64)
}

// SmoothingQuality is the resampling quality hint for image smoothing.
type SmoothingQuality int

const (
	// SmoothingLow selects fast nearest-neighbour style resampling.
	SmoothingLow SmoothingQuality = iota
	// SmoothingMedium selects bilinear resampling.
	SmoothingMedium
	// SmoothingHigh selects the highest quality resampling available.
	SmoothingHigh
)

// ImageSmoother is an optional capability a Surface may implement to
// control resampling of scaled images. SmoothImages is a no-op for
// surfaces that do not implement it.
type ImageSmoother interface {
	SetImageSmoothing(enabled bool)
	SetImageSmoothingQuality(q SmoothingQuality)
}

// TextMetrics describes measured text: the horizontal advance plus the
// font's ascent and descent at the measured size, so callers can lay out
// adjacent content.
type TextMetrics struct {
	Width   float64
	Ascent  float64
	Descent float64
}

// Height returns the line height (ascent + descent).
func (m TextMetrics) Height() float64 {
	return m.Ascent + m.Descent
}

// BoundingRect describes an element's layout box. Width and Height are the
// element's drawing-buffer size, not the layout size: after a CSS resize the
// two differ, and coordinate mapping must scale to the buffer resolution.
type BoundingRect struct {
	Top, Bottom   float64
	Left, Right   float64
	Width, Height float64
}

// PointerEvent is a pointer event in client (viewport) coordinates.
type PointerEvent struct {
	ClientX, ClientY float64
}

// Element is the host-side handle for a canvas element: it exposes the
// layout box, the distinction between layout size and drawing-buffer size,
// and the drawable surface itself.
type Element interface {
	// BoundingRect returns the element's layout box with Width/Height set
	// to the drawing-buffer resolution.
	BoundingRect() BoundingRect

	// LayoutSize returns the element's CSS layout size in points.
	LayoutSize() (w, h float64)

	// SetBufferSize resizes the element's drawing buffer.
	SetBufferSize(w, h int)

	// Surface returns the element's drawing surface, or nil if the
	// element is not renderable.
	Surface() Surface
}

// Document looks up elements by selector, mirroring a DOM document.
// QuerySelector returns nil when no element matches.
type Document interface {
	QuerySelector(selector string) Element
}
