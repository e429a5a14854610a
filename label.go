package sketch

// labelPadding is the horizontal inset between the box edge and the text.
const labelPadding = 10

// Label describes a text string drawn on a background box sized to fit it.
// The box and the text have independent fill flags and colors, so either
// can be an outline while the other is solid.
type Label struct {
	Text string

	// X, Y is the top-left origin of the background box.
	X, Y float64

	// Height is the box height; the font size is derived from it.
	Height float64

	FillBox  bool
	FillText bool

	BoxColor  RGBA
	TextColor RGBA

	// Radius is the corner radius of the rounded variant.
	Radius float64

	// Dash is the optional dash pattern of the plain variant. Like
	// DrawRect, a non-nil pattern is left on the surface after drawing.
	Dash []float64

	// BoxOffsetY and TextOffsetY shift the box and the text baseline
	// from their computed positions.
	BoxOffsetY  float64
	TextOffsetY float64
}

// DrawTextOnRoundRect draws a label on a rounded background box. The font
// size is the box height minus the padding margin, keeping the family
// of the surface's current font; the box width is the measured text width
// plus padding on each side, so the box always fits the text exactly.
//
// Returns the measured text metrics. The surface style is restored before
// returning.
func DrawTextOnRoundRect(s Surface, l Label) TextMetrics {
	return drawLabel(s, l, true)
}

// DrawTextOnRect is DrawTextOnRoundRect with a plain rectangular box,
// optionally dashed.
func DrawTextOnRect(s Surface, l Label) TextMetrics {
	return drawLabel(s, l, false)
}

func drawLabel(s Surface, l Label, rounded bool) TextMetrics {
	defer saveStyle(s).restore(s)

	size := l.Height - labelPadding
	s.SetFont(fontString("", size, fontFamily(s.Font())))
	m := s.MeasureText(l.Text)
	boxWidth := m.Width + 2*labelPadding

	if rounded {
		DrawRoundRect(s, l.X, l.Y+l.BoxOffsetY, boxWidth, l.Height, l.Radius, l.FillBox, l.BoxColor, nil)
	} else {
		DrawRect(s, l.X, l.Y+l.BoxOffsetY, boxWidth, l.Height, l.FillBox, l.BoxColor, l.Dash)
	}

	// height/1.5 places the baseline so typical latin text sits centered
	// in the box.
	baseline := l.Y + l.Height/1.5 + l.TextOffsetY
	if l.FillText {
		s.SetFillColor(l.TextColor)
		s.FillText(l.Text, l.X+labelPadding, baseline)
	} else {
		s.SetStrokeColor(l.TextColor)
		s.StrokeText(l.Text, l.X+labelPadding, baseline)
	}

	return m
}
