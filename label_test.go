package sketch

import "testing"

func TestDrawTextOnRoundRectGeometry(t *testing.T) {
	s := newTestSurface()
	m := DrawTextOnRoundRect(s, Label{
		Text:      "abcd", // 4 runes * charWidth 8 = 32 wide
		X:         100,
		Y:         50,
		Height:    40,
		Radius:    6,
		FillBox:   true,
		FillText:  true,
		BoxColor:  White,
		TextColor: Black,
	})

	if m.Width != 32 {
		t.Fatalf("measured width = %g, want 32", m.Width)
	}

	// Background box: rounded (four corner arcs), sized to the text
	// plus 10px padding each side.
	if s.count("Arc") != 4 {
		t.Errorf("corner arc count = %d, want 4 (rounded box)", s.count("Arc"))
	}
	// MoveTo of the rounded box starts at x+radius.
	var firstMove *op
	for i := range s.ops {
		if s.ops[i].name == "MoveTo" {
			firstMove = &s.ops[i]
			break
		}
	}
	if firstMove == nil || firstMove.args[0] != 106 || firstMove.args[1] != 50 {
		t.Errorf("box path start = %v, want MoveTo(106, 50)", firstMove)
	}

	// Text: 10px left inset, baseline at y + height/1.5.
	if len(s.texts) != 1 {
		t.Fatalf("text draw count = %d, want 1", len(s.texts))
	}
	txt := s.texts[0]
	if txt.x != 110 {
		t.Errorf("text x = %g, want 110", txt.x)
	}
	if !almostEqual(txt.y, 50+40/1.5, 1e-9) {
		t.Errorf("text baseline = %g, want %g", txt.y, 50+40/1.5)
	}
	// Font size is the box height minus the padding.
	if txt.font != "30px sans-serif" {
		t.Errorf("text font = %q, want %q", txt.font, "30px sans-serif")
	}
}

func TestDrawTextOnRectPlain(t *testing.T) {
	s := newTestSurface()
	DrawTextOnRect(s, Label{
		Text:      "x",
		X:         0,
		Y:         0,
		Height:    30,
		FillBox:   false,
		FillText:  false,
		BoxColor:  Black,
		TextColor: Black,
		Dash:      []float64{2, 2},
	})

	if s.count("Rect") != 1 {
		t.Errorf("Rect count = %d, want 1 (plain box)", s.count("Rect"))
	}
	if s.count("Arc") != 0 {
		t.Errorf("plain label drew arcs: %v", s.opNames())
	}
	// Dashed outline box, stroked text.
	if len(s.dash) != 2 {
		t.Errorf("dash after call = %v, want [2 2] (caller-owned)", s.dash)
	}
	if len(s.texts) != 1 || s.texts[0].filled {
		t.Errorf("text draw = %+v, want one stroked draw", s.texts)
	}
}

func TestDrawLabelOffsets(t *testing.T) {
	s := newTestSurface()
	DrawTextOnRoundRect(s, Label{
		Text: "x", X: 0, Y: 100, Height: 30,
		FillBox: true, FillText: true,
		BoxOffsetY:  -5,
		TextOffsetY: 2,
	})

	// Box path shifts by the box offset.
	var firstMove *op
	for i := range s.ops {
		if s.ops[i].name == "MoveTo" {
			firstMove = &s.ops[i]
			break
		}
	}
	if firstMove == nil || firstMove.args[1] != 95 {
		t.Errorf("box path start y = %v, want 95", firstMove)
	}
	// Baseline shifts by the text offset.
	if !almostEqual(s.texts[0].y, 100+30/1.5+2, 1e-9) {
		t.Errorf("baseline = %g, want %g", s.texts[0].y, 100+30/1.5+2)
	}
}

func TestDrawLabelIndependentFillFlags(t *testing.T) {
	s := newTestSurface()
	DrawTextOnRoundRect(s, Label{
		Text: "x", X: 0, Y: 0, Height: 30,
		FillBox:  false, // outlined box
		FillText: true,  // filled text
	})

	if s.count("Stroke") != 1 {
		t.Errorf("box Stroke count = %d, want 1", s.count("Stroke"))
	}
	if len(s.texts) != 1 || !s.texts[0].filled {
		t.Errorf("text draw = %+v, want one filled draw", s.texts)
	}
}
