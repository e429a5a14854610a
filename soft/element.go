package soft

import (
	"image"
	"sync"

	"github.com/gogpu/sketch"
)

// Element implementation: a Canvas doubles as its own host element, with a
// layout box anchored at the origin and a drawing buffer that may differ
// from the layout size.

// BoundingRect implements sketch.Element: the canvas layout box with
// Width/Height set to the drawing-buffer resolution.
func (c *Canvas) BoundingRect() sketch.BoundingRect {
	return sketch.BoundingRect{
		Top:    0,
		Bottom: c.layoutH,
		Left:   0,
		Right:  c.layoutW,
		Width:  float64(c.width),
		Height: float64(c.height),
	}
}

// LayoutSize implements sketch.Element.
func (c *Canvas) LayoutSize() (w, h float64) {
	return c.layoutW, c.layoutH
}

// SetBufferSize implements sketch.Element: it reallocates the drawing
// buffer at the new resolution. The buffer content is discarded, as with a
// host canvas resize; style state is kept.
func (c *Canvas) SetBufferSize(w, h int) {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	c.width = w
	c.height = h
	c.img = image.NewRGBA(image.Rect(0, 0, w, h))
	c.elems = c.elems[:0]
}

// Surface implements sketch.Element.
func (c *Canvas) Surface() sketch.Surface {
	return c
}

// Document is an in-memory selector-to-element table implementing
// sketch.Document. Useful for headless rendering and tests.
type Document struct {
	mu       sync.RWMutex
	elements map[string]sketch.Element
}

// NewDocument creates an empty Document.
func NewDocument() *Document {
	return &Document{elements: make(map[string]sketch.Element)}
}

// SetElement registers an element under a selector.
func (d *Document) SetElement(selector string, el sketch.Element) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.elements[selector] = el
}

// QuerySelector implements sketch.Document. Returns nil when no element is
// registered under the selector.
func (d *Document) QuerySelector(selector string) sketch.Element {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.elements[selector]
}
