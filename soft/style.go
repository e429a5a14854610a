package soft

import "github.com/gogpu/sketch"

// Style state accessors. These are the mutable surface fields the sketch
// utilities snapshot and restore around every call.

func (c *Canvas) Transform() sketch.Matrix {
	return c.matrix
}

func (c *Canvas) SetTransform(m sketch.Matrix) {
	c.matrix = m
}

func (c *Canvas) Translate(x, y float64) {
	c.matrix = c.matrix.Multiply(sketch.Translation(x, y))
}

func (c *Canvas) FillColor() sketch.RGBA {
	return c.fill
}

func (c *Canvas) SetFillColor(col sketch.RGBA) {
	c.fill = col
}

func (c *Canvas) StrokeColor() sketch.RGBA {
	return c.stroke
}

func (c *Canvas) SetStrokeColor(col sketch.RGBA) {
	c.stroke = col
}

func (c *Canvas) LineWidth() float64 {
	return c.lineWidth
}

func (c *Canvas) SetLineWidth(w float64) {
	if w > 0 {
		c.lineWidth = w
	}
}

func (c *Canvas) ShadowBlur() float64 {
	return c.shadowBlur
}

func (c *Canvas) SetShadowBlur(b float64) {
	if b >= 0 {
		c.shadowBlur = b
	}
}

func (c *Canvas) ShadowColor() sketch.RGBA {
	return c.shadowColor
}

func (c *Canvas) SetShadowColor(col sketch.RGBA) {
	c.shadowColor = col
}

func (c *Canvas) Font() string {
	return c.font
}

func (c *Canvas) SetFont(font string) {
	if font != "" {
		c.font = font
	}
}

// SetLineDash sets the dash pattern for strokes. The slice is copied.
// An empty or nil pattern restores solid strokes. A pattern containing a
// negative entry is ignored, keeping the current pattern, per canvas
// setLineDash semantics.
func (c *Canvas) SetLineDash(pattern []float64) {
	if len(pattern) == 0 {
		c.dash = nil
		return
	}
	for _, l := range pattern {
		if l < 0 {
			return
		}
	}
	c.dash = append([]float64(nil), pattern...)
}

// LineDash returns a copy of the current dash pattern, or nil for solid
// strokes.
func (c *Canvas) LineDash() []float64 {
	if c.dash == nil {
		return nil
	}
	return append([]float64(nil), c.dash...)
}

// SetImageSmoothing implements sketch.ImageSmoother.
func (c *Canvas) SetImageSmoothing(enabled bool) {
	c.smoothing = enabled
}

// SetImageSmoothingQuality implements sketch.ImageSmoother.
func (c *Canvas) SetImageSmoothingQuality(q sketch.SmoothingQuality) {
	c.quality = q
}
