// Package sketch provides stateless, higher-level drawing helpers on top
// of an immediate-mode 2D drawing surface: arrows, curved and self-looping
// lines, dashed arcs, rounded rectangles, labeled boxes, circles, and
// styled text, plus canvas setup and coordinate utilities.
//
// # Overview
//
// Every helper takes the surface as its first argument, builds one path,
// commits it with a single fill or stroke, and restores the style fields
// it touched before returning. There is no retained state between calls:
// the surface itself is the only shared object.
//
//	dc := soft.NewCanvas(512, 512)
//
//	sketch.DrawArrow(dc, sketch.Pt(40, 40), sketch.Pt(200, 120), nil, true, sketch.Black)
//	sketch.DrawCurvedLine(dc, sketch.Pt(40, 200), sketch.Pt(300, 200), 0.3, 2, sketch.Blue)
//	sketch.DrawTextOnRoundRect(dc, sketch.Label{
//	    Text: "hello", X: 60, Y: 300, Height: 40, Radius: 8,
//	    FillBox: true, FillText: true,
//	    BoxColor: sketch.Hex("#eee"), TextColor: sketch.Black,
//	})
//
// # Surfaces
//
// The Surface interface models a 2D canvas: path construction, one-shot
// fill/stroke, text drawing and measurement, transform control, and a set
// of mutable style fields. The soft package provides a software raster
// implementation; any other canvas-like backend can be adapted.
//
// # Style discipline
//
// Helpers snapshot the style fields they mutate and restore them with
// defer, so drawing never leaks colors, shadows, line widths, or fonts
// into subsequent calls — on any exit path, including panics. The dash
// pattern set by DrawRect and DrawRoundRect is the documented exception:
// it is caller-owned state.
//
// # Logging
//
// sketch produces no log output by default. Call SetLogger with a
// log/slog logger to enable diagnostics.
package sketch
