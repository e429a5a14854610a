package text

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Face is a font at a specific size, ready for measurement and drawing.
// Faces are not safe for concurrent use; the drawing model is
// single-threaded.
type Face interface {
	// Metrics returns the ascent and descent in pixels.
	Metrics() (ascent, descent float64)

	// Advance returns the horizontal advance of the string in pixels.
	Advance(s string) float64

	// Draw renders the string onto dst with the baseline at (x, y).
	Draw(dst draw.Image, s string, x, y float64, c color.Color)
}

// builtinFace wraps the fixed-size bitmap face from x/image/font/basicfont.
// It is the fallback when no font source matches a family, so text drawing
// never silently disappears.
type builtinFace struct {
	face font.Face
}

func newBuiltinFace() *builtinFace {
	return &builtinFace{face: basicfont.Face7x13}
}

func (b *builtinFace) Metrics() (float64, float64) {
	m := b.face.Metrics()
	return fixedToFloat(m.Ascent), fixedToFloat(m.Descent)
}

func (b *builtinFace) Advance(s string) float64 {
	return fixedToFloat(font.MeasureString(b.face, s))
}

func (b *builtinFace) Draw(dst draw.Image, s string, x, y float64, c color.Color) {
	drawString(dst, b.face, s, x, y, c)
}

// sourceFace is a sized face over a parsed FontSource. Drawing rasterizes
// glyphs through x/image/font/opentype; measurement goes through HarfBuzz
// shaping so kerning and ligatures are reflected in the advance.
type sourceFace struct {
	source *FontSource
	size   float64
	face   font.Face
	shaper *Shaper
}

func newSourceFace(source *FontSource, size float64, shaper *Shaper) (*sourceFace, error) {
	face, err := opentype.NewFace(source.sfnt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, err
	}
	return &sourceFace{source: source, size: size, face: face, shaper: shaper}, nil
}

func (f *sourceFace) Metrics() (float64, float64) {
	m := f.face.Metrics()
	return fixedToFloat(m.Ascent), fixedToFloat(m.Descent)
}

func (f *sourceFace) Advance(s string) float64 {
	return f.shaper.Advance(s, f.source, f.size)
}

func (f *sourceFace) Draw(dst draw.Image, s string, x, y float64, c color.Color) {
	drawString(dst, f.face, s, x, y, c)
}

// drawString renders s onto dst using an x/image font.Face.
func drawString(dst draw.Image, face font.Face, s string, x, y float64, c color.Color) {
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.Point26_6{X: floatToFixed(x), Y: floatToFixed(y)},
	}
	d.DrawString(s)
}

// fixedToFloat converts a 26.6 fixed-point value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

// floatToFixed converts a float64 to 26.6 fixed point.
func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}
