package sketch

import (
	"image"
	"math"
)

// op records one surface call: the method name and its numeric arguments.
type op struct {
	name string
	args []float64
}

// testSurface is a recording Surface for tests: it logs every path and
// draw call and keeps the mutable style fields, so tests can inspect both
// the geometry a helper produced and the style it left behind.
type testSurface struct {
	ops []op

	fill        RGBA
	stroke      RGBA
	lineWidth   float64
	shadowBlur  float64
	shadowColor RGBA
	font        string
	dash        []float64
	matrix      Matrix

	smoothing bool
	quality   SmoothingQuality

	// charWidth is the fake advance per rune for MeasureText.
	charWidth float64

	// commits snapshots the style at every Fill/Stroke, so tests can
	// observe the style that was in effect when a path was committed.
	commits []commitStyle

	// texts records every FillText/StrokeText call with the font that
	// was in effect.
	texts []textOp

	images []image.Image
}

// textOp is one recorded text draw.
type textOp struct {
	text   string
	x, y   float64
	font   string
	filled bool
}

// commitStyle is the style in effect at a Fill or Stroke call.
type commitStyle struct {
	fill   RGBA
	stroke RGBA
	width  float64
	blur   float64
	shadow RGBA
	font   string
}

func newTestSurface() *testSurface {
	return &testSurface{
		fill:      Black,
		stroke:    Black,
		lineWidth: 1,
		font:      "10px sans-serif",
		matrix:    Identity(),
		charWidth: 8,
	}
}

func (s *testSurface) record(name string, args ...float64) {
	s.ops = append(s.ops, op{name: name, args: args})
}

// opNames returns the sequence of recorded call names.
func (s *testSurface) opNames() []string {
	names := make([]string, len(s.ops))
	for i, o := range s.ops {
		names[i] = o.name
	}
	return names
}

// count returns how many recorded calls have the given name.
func (s *testSurface) count(name string) int {
	n := 0
	for _, o := range s.ops {
		if o.name == name {
			n++
		}
	}
	return n
}

// vertices returns the (x, y) arguments of all MoveTo and LineTo calls.
func (s *testSurface) vertices() []Point {
	var pts []Point
	for _, o := range s.ops {
		if o.name == "MoveTo" || o.name == "LineTo" {
			pts = append(pts, Pt(o.args[0], o.args[1]))
		}
	}
	return pts
}

func (s *testSurface) BeginPath()         { s.record("BeginPath") }
func (s *testSurface) MoveTo(x, y float64) { s.record("MoveTo", x, y) }
func (s *testSurface) LineTo(x, y float64) { s.record("LineTo", x, y) }

func (s *testSurface) QuadraticCurveTo(cpx, cpy, x, y float64) {
	s.record("QuadraticCurveTo", cpx, cpy, x, y)
}

func (s *testSurface) BezierCurveTo(c1x, c1y, c2x, c2y, x, y float64) {
	s.record("BezierCurveTo", c1x, c1y, c2x, c2y, x, y)
}

func (s *testSurface) Arc(cx, cy, r, a0, a1 float64) {
	s.record("Arc", cx, cy, r, a0, a1)
}

func (s *testSurface) Rect(x, y, w, h float64) { s.record("Rect", x, y, w, h) }
func (s *testSurface) ClosePath()              { s.record("ClosePath") }

func (s *testSurface) Fill() {
	s.record("Fill")
	s.commits = append(s.commits, commitStyle{
		fill: s.fill, stroke: s.stroke, width: s.lineWidth,
		blur: s.shadowBlur, shadow: s.shadowColor, font: s.font,
	})
}

func (s *testSurface) Stroke() {
	s.record("Stroke")
	s.commits = append(s.commits, commitStyle{
		fill: s.fill, stroke: s.stroke, width: s.lineWidth,
		blur: s.shadowBlur, shadow: s.shadowColor, font: s.font,
	})
}

func (s *testSurface) FillText(str string, x, y float64) {
	s.record("FillText", x, y)
	s.texts = append(s.texts, textOp{text: str, x: x, y: y, font: s.font, filled: true})
}

func (s *testSurface) StrokeText(str string, x, y float64) {
	s.record("StrokeText", x, y)
	s.texts = append(s.texts, textOp{text: str, x: x, y: y, font: s.font, filled: false})
}

func (s *testSurface) MeasureText(str string) TextMetrics {
	return TextMetrics{
		Width:   s.charWidth * float64(len([]rune(str))),
		Ascent:  10,
		Descent: 3,
	}
}

func (s *testSurface) DrawImage(img image.Image, x, y, w, h float64) {
	s.record("DrawImage", x, y, w, h)
	s.images = append(s.images, img)
}

func (s *testSurface) Transform() Matrix     { return s.matrix }
func (s *testSurface) SetTransform(m Matrix) { s.matrix = m }
func (s *testSurface) Translate(x, y float64) {
	s.matrix = s.matrix.Multiply(Translation(x, y))
}

func (s *testSurface) FillColor() RGBA         { return s.fill }
func (s *testSurface) SetFillColor(c RGBA)     { s.fill = c }
func (s *testSurface) StrokeColor() RGBA       { return s.stroke }
func (s *testSurface) SetStrokeColor(c RGBA)   { s.stroke = c }
func (s *testSurface) LineWidth() float64      { return s.lineWidth }
func (s *testSurface) SetLineWidth(w float64)  { s.lineWidth = w }
func (s *testSurface) ShadowBlur() float64     { return s.shadowBlur }
func (s *testSurface) SetShadowBlur(b float64) { s.shadowBlur = b }
func (s *testSurface) ShadowColor() RGBA       { return s.shadowColor }
func (s *testSurface) SetShadowColor(c RGBA)   { s.shadowColor = c }
func (s *testSurface) Font() string            { return s.font }
func (s *testSurface) SetFont(f string)        { s.font = f }

func (s *testSurface) SetLineDash(pattern []float64) {
	s.dash = append([]float64(nil), pattern...)
}

func (s *testSurface) SetImageSmoothing(enabled bool)           { s.smoothing = enabled }
func (s *testSurface) SetImageSmoothingQuality(q SmoothingQuality) { s.quality = q }

// testElement is a minimal Element for setup and pointer-mapping tests.
type testElement struct {
	rect    BoundingRect
	layoutW float64
	layoutH float64
	bufW    int
	bufH    int
	surface Surface
}

func (e *testElement) BoundingRect() BoundingRect    { return e.rect }
func (e *testElement) LayoutSize() (float64, float64) { return e.layoutW, e.layoutH }
func (e *testElement) SetBufferSize(w, h int)         { e.bufW, e.bufH = w, h }
func (e *testElement) Surface() Surface               { return e.surface }

// testDocument maps selectors to elements.
type testDocument map[string]Element

func (d testDocument) QuerySelector(selector string) Element {
	return d[selector]
}

// almostEqual reports whether two floats differ by less than a tolerance.
func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) < tol
}

// pointsAlmostEqual compares two points with a tolerance.
func pointsAlmostEqual(a, b Point, tol float64) bool {
	return almostEqual(a.X, b.X, tol) && almostEqual(a.Y, b.Y, tol)
}
