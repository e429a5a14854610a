// Package text provides the font handling behind the sketch drawing
// surface: canvas font-string parsing, font sources and faces, HarfBuzz
// text measurement via go-text/typesetting, and raster glyph drawing via
// golang.org/x/image/font.
//
// A Registry maps font family names to parsed font sources. Resolving a
// face for an unknown family falls back to a builtin bitmap face, so text
// drawing always works even with no fonts registered.
package text
