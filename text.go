package sketch

import (
	"fmt"
	"strings"
)

// defaultFamily is the font family used when the surface's font string does
// not name one.
const defaultFamily = "sans-serif"

// fontFamily extracts the family suffix from a canvas font string such as
// "bold 16px Go Mono". Everything after the size token is the family.
func fontFamily(font string) string {
	if i := strings.Index(font, "px "); i >= 0 {
		return font[i+len("px "):]
	}
	return defaultFamily
}

// fontString composes a canvas font string from an optional style keyword,
// a pixel size, and a family.
func fontString(style string, size float64, family string) string {
	if style == "" {
		return fmt.Sprintf("%gpx %s", size, family)
	}
	return fmt.Sprintf("%s %gpx %s", style, size, family)
}

// DrawText draws a text string at (x, y) with y at the baseline, in the
// given pixel size, keeping the family of the surface's current font. The
// text is filled or stroked per the filled flag, with a shadow blur of 1 in
// the text color to soften glyph edges.
//
// The measured metrics of the drawn text are returned so callers can lay
// out adjacent content. The surface style is restored before returning.
func DrawText(s Surface, pos Point, text string, size float64, filled bool, c RGBA) TextMetrics {
	return drawStyledText(s, pos, text, size, "", filled, c)
}

// DrawTextBold is DrawText with the bold style keyword injected into the
// font string.
func DrawTextBold(s Surface, pos Point, text string, size float64, filled bool, c RGBA) TextMetrics {
	return drawStyledText(s, pos, text, size, "bold", filled, c)
}

// DrawTextItalic is DrawText with the italic style keyword injected into
// the font string.
func DrawTextItalic(s Surface, pos Point, text string, size float64, filled bool, c RGBA) TextMetrics {
	return drawStyledText(s, pos, text, size, "italic", filled, c)
}

func drawStyledText(s Surface, pos Point, text string, size float64, style string, filled bool, c RGBA) TextMetrics {
	defer saveStyle(s).restore(s)

	s.SetFont(fontString(style, size, fontFamily(s.Font())))
	edgeSmoothing(s, 1, c)

	if filled {
		s.SetFillColor(c)
		s.FillText(text, pos.X, pos.Y)
	} else {
		s.SetStrokeColor(c)
		s.StrokeText(text, pos.X, pos.Y)
	}

	return s.MeasureText(text)
}
