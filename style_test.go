package sketch

import (
	"math"
	"testing"
)

// TestStyleRestoredByEveryHelper drives every drawing helper over a surface
// with a distinctive style and verifies the fill, stroke, shadow, line
// width, and font state all come back untouched. The dash pattern is
// excluded: it is documented caller-owned state.
func TestStyleRestoredByEveryHelper(t *testing.T) {
	helpers := []struct {
		name string
		draw func(Surface)
	}{
		{"DrawArrow", func(s Surface) {
			DrawArrow(s, Pt(0, 0), Pt(50, 50), nil, true, Red)
		}},
		{"DrawCurvedLine straight", func(s Surface) {
			DrawCurvedLine(s, Pt(0, 0), Pt(50, 0), 0, 5, Red)
		}},
		{"DrawCurvedLine loop", func(s Surface) {
			DrawCurvedLine(s, Pt(10, 10), Pt(10, 10), 1, 5, Red)
		}},
		{"DrawCurvedLine quadratic", func(s Surface) {
			DrawCurvedLine(s, Pt(0, 0), Pt(50, 20), 0.4, 5, Red)
		}},
		{"DrawDashedArc", func(s Surface) {
			DrawDashedArc(s, Pt(30, 30), 20, 0, math.Pi, 0, Red)
		}},
		{"DrawRoundRect", func(s Surface) {
			DrawRoundRect(s, 0, 0, 40, 30, 5, false, Red, []float64{4, 2})
		}},
		{"DrawRect", func(s Surface) {
			DrawRect(s, 0, 0, 40, 30, true, Red, nil)
		}},
		{"DrawCircle", func(s Surface) {
			DrawCircle(s, Pt(20, 20), 10, 0, 0, true, Red)
		}},
		{"DrawText", func(s Surface) {
			DrawText(s, Pt(5, 15), "hello", 14, true, Red)
		}},
		{"DrawTextBold", func(s Surface) {
			DrawTextBold(s, Pt(5, 15), "hello", 14, false, Red)
		}},
		{"DrawTextItalic", func(s Surface) {
			DrawTextItalic(s, Pt(5, 15), "hello", 14, true, Red)
		}},
		{"DrawTextOnRoundRect", func(s Surface) {
			DrawTextOnRoundRect(s, Label{Text: "hi", X: 1, Y: 2, Height: 30, FillBox: true, FillText: true})
		}},
		{"DrawTextOnRect", func(s Surface) {
			DrawTextOnRect(s, Label{Text: "hi", X: 1, Y: 2, Height: 30})
		}},
	}

	for _, h := range helpers {
		t.Run(h.name, func(t *testing.T) {
			s := newTestSurface()
			s.SetFillColor(Hex("#123456"))
			s.SetStrokeColor(Hex("#abcdef"))
			s.SetLineWidth(7)
			s.SetShadowBlur(9)
			s.SetShadowColor(Green)
			s.SetFont("bold 22px Testface")
			before := saveStyle(s)

			h.draw(s)

			after := saveStyle(s)
			if before != after {
				t.Errorf("style leaked:\n before %+v\n after  %+v", before, after)
			}
		})
	}
}
