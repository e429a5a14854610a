package soft

import "github.com/gogpu/sketch/text"

// Option configures a Canvas during creation.
type Option func(*options)

type options struct {
	fonts   *text.Registry
	layoutW float64
	layoutH float64
}

func defaultOptions(width, height int) options {
	return options{
		fonts:   text.NewRegistry(),
		layoutW: float64(width),
		layoutH: float64(height),
	}
}

// WithFonts sets a shared font registry. Canvases created without one get
// their own empty registry, which resolves every family to the builtin
// bitmap face until sources are registered.
func WithFonts(r *text.Registry) Option {
	return func(o *options) {
		if r != nil {
			o.fonts = r
		}
	}
}

// WithLayoutSize sets the element layout size independently of the
// drawing-buffer size, emulating a canvas scaled by stylesheet layout.
// Pointer mapping and high-density setup depend on this distinction.
func WithLayoutSize(w, h float64) Option {
	return func(o *options) {
		if w > 0 && h > 0 {
			o.layoutW = w
			o.layoutH = h
		}
	}
}
