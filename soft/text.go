package soft

import (
	"github.com/gogpu/sketch"
	"github.com/gogpu/sketch/text"
)

// face resolves the current font string to a sized face.
func (c *Canvas) face() text.Face {
	return c.fonts.Face(text.ParseFont(c.font))
}

// FillText draws a string in the fill color with the baseline at (x, y).
// Glyph rasterization is already anti-aliased, so the shadow state is not
// applied to text.
func (c *Canvas) FillText(s string, x, y float64) {
	p := c.matrix.TransformPoint(sketch.Pt(x, y))
	c.face().Draw(c.img, s, p.X, p.Y, c.fill.Color())
}

// StrokeText draws a string in the stroke color. Glyphs are rendered with
// the same rasterizer as FillText; at the small line widths used for text
// this thin-fill approximation is visually equivalent to an outline.
func (c *Canvas) StrokeText(s string, x, y float64) {
	p := c.matrix.TransformPoint(sketch.Pt(x, y))
	c.face().Draw(c.img, s, p.X, p.Y, c.stroke.Color())
}

// MeasureText measures a string with the current font.
func (c *Canvas) MeasureText(s string) sketch.TextMetrics {
	face := c.face()
	ascent, descent := face.Metrics()
	return sketch.TextMetrics{
		Width:   face.Advance(s),
		Ascent:  ascent,
		Descent: descent,
	}
}
