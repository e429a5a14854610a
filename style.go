package sketch

// styleState is a snapshot of the surface style fields the helpers in this
// package mutate. Each drawing function captures a snapshot on entry and
// restores it with defer, so the surface's style is identical before and
// after every call, on every exit path including panics.
//
// The dash pattern is deliberately not part of the snapshot: SetLineDash is
// caller-owned state (see DrawRect and DrawRoundRect).
type styleState struct {
	fill        RGBA
	stroke      RGBA
	shadowBlur  float64
	shadowColor RGBA
	lineWidth   float64
	font        string
}

// saveStyle captures the current style fields of the surface.
func saveStyle(s Surface) styleState {
	return styleState{
		fill:        s.FillColor(),
		stroke:      s.StrokeColor(),
		shadowBlur:  s.ShadowBlur(),
		shadowColor: s.ShadowColor(),
		lineWidth:   s.LineWidth(),
		font:        s.Font(),
	}
}

// restore writes the snapshot back, in reverse order of capture.
func (st styleState) restore(s Surface) {
	s.SetFont(st.font)
	s.SetLineWidth(st.lineWidth)
	s.SetShadowColor(st.shadowColor)
	s.SetShadowBlur(st.shadowBlur)
	s.SetStrokeColor(st.stroke)
	s.SetFillColor(st.fill)
}

// paint applies a color to both fill and stroke, then fills or strokes the
// current path per the filled flag. Most shape helpers end with this.
func paint(s Surface, filled bool, c RGBA) {
	if filled {
		s.SetFillColor(c)
		s.Fill()
	} else {
		s.SetStrokeColor(c)
		s.Stroke()
	}
}

// edgeSmoothing sets a slight shadow in the draw color before a fill or
// stroke. On raster surfaces without analytic anti-aliasing this softens
// shape edges; surfaces that already anti-alias may treat it as a hint.
func edgeSmoothing(s Surface, blur float64, c RGBA) {
	s.SetShadowBlur(blur)
	s.SetShadowColor(c)
}
