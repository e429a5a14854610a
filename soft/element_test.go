package soft

import (
	"testing"

	"github.com/gogpu/sketch"
)

func TestBoundingRect(t *testing.T) {
	c := NewCanvas(200, 100, WithLayoutSize(100, 50))
	r := c.BoundingRect()

	if r.Left != 0 || r.Top != 0 || r.Right != 100 || r.Bottom != 50 {
		t.Errorf("layout box = (%g,%g)-(%g,%g), want (0,0)-(100,50)",
			r.Left, r.Top, r.Right, r.Bottom)
	}
	if r.Width != 200 || r.Height != 100 {
		t.Errorf("buffer size = %gx%g, want 200x100", r.Width, r.Height)
	}
}

func TestLayoutDefaultsToBufferSize(t *testing.T) {
	c := NewCanvas(80, 60)
	w, h := c.LayoutSize()
	if w != 80 || h != 60 {
		t.Errorf("LayoutSize() = %g, %g, want 80, 60", w, h)
	}
}

func TestSetBufferSize(t *testing.T) {
	c := NewCanvas(10, 10)
	c.SetFillColor(sketch.Red)
	c.BeginPath()
	c.MoveTo(0, 0)

	c.SetBufferSize(32, 16)

	b := c.Image().Bounds()
	if b.Dx() != 32 || b.Dy() != 16 {
		t.Errorf("buffer = %dx%d, want 32x16", b.Dx(), b.Dy())
	}
	if c.FillColor() != sketch.Red {
		t.Error("resize discarded style state")
	}

	// Degenerate sizes clamp to 1x1.
	c.SetBufferSize(0, -5)
	b = c.Image().Bounds()
	if b.Dx() != 1 || b.Dy() != 1 {
		t.Errorf("clamped buffer = %dx%d, want 1x1", b.Dx(), b.Dy())
	}
}

func TestDocumentQuerySelector(t *testing.T) {
	doc := NewDocument()
	c := NewCanvas(10, 10)
	doc.SetElement("#canvas", c)

	if got := doc.QuerySelector("#canvas"); got != sketch.Element(c) {
		t.Error("registered element not returned")
	}
	if got := doc.QuerySelector("#missing"); got != nil {
		t.Error("unknown selector returned an element")
	}
}

func TestSetupIntegration(t *testing.T) {
	c := NewCanvas(1, 1, WithLayoutSize(300, 150))
	doc := NewDocument()
	doc.SetElement("#canvas", c)

	s := sketch.Setup(doc, "#canvas", sketch.WithScale(2))
	if s == nil {
		t.Fatal("Setup returned nil for a registered canvas")
	}

	b := c.Image().Bounds()
	if b.Dx() != 600 || b.Dy() != 300 {
		t.Errorf("buffer after Setup = %dx%d, want 600x300", b.Dx(), b.Dy())
	}
	// Line smoothing leaves the surface translated by half a pixel.
	m := s.Transform()
	if m.C != 0.5 || m.F != 0.5 {
		t.Errorf("transform offset = (%g, %g), want (0.5, 0.5)", m.C, m.F)
	}

	if got := sketch.Setup(doc, "#missing"); got != nil {
		t.Error("Setup returned a surface for a missing element")
	}
}

func TestMousePositionOnCanvas(t *testing.T) {
	c := NewCanvas(200, 100, WithLayoutSize(100, 50))
	ev := sketch.PointerEvent{ClientX: 60, ClientY: 30}
	p := sketch.MousePosition(ev, c)
	if p.X != 120 || p.Y != 60 {
		t.Errorf("MousePosition = %v, want (120, 60)", p)
	}
}
