package sketch

// MousePosition maps a pointer event to surface-space coordinates: the
// pointer's offset within the element's bounding box, scaled linearly to
// the drawing-buffer resolution. The buffer size is used for the scale, not
// the bounding-rect size, so the mapping stays correct when the element is
// scaled by layout relative to its internal pixel buffer.
func MousePosition(ev PointerEvent, el Element) Point {
	r := el.BoundingRect()
	return Point{
		X: (ev.ClientX - r.Left) * r.Width / (r.Right - r.Left),
		Y: (ev.ClientY - r.Top) * r.Height / (r.Bottom - r.Top),
	}
}

// FastInt rounds a float to the nearest integer by adding 0.5 and
// truncating through a 32-bit integer conversion. This is the fast pixel
// snapping used throughout the package. For values outside the int32
// range the result of the conversion is implementation-defined; callers
// pass pixel coordinates, which are far inside it.
func FastInt(x float64) int {
	return int(int32(x + 0.5))
}

// SmoothLines toggles line anti-aliasing by nudging the surface transform:
// a half-pixel translation aligns 1px strokes with pixel centers so the
// rasterizer feathers them; a full-pixel translation keeps them on hard
// pixel boundaries.
func SmoothLines(s Surface, enabled bool) {
	if enabled {
		s.Translate(0.5, 0.5)
	} else {
		s.Translate(1, 1)
	}
}

// SmoothImages toggles image smoothing and sets the quality hint to the
// highest level. A no-op for surfaces that do not implement ImageSmoother.
func SmoothImages(s Surface, enabled bool) {
	sm, ok := s.(ImageSmoother)
	if !ok {
		return
	}
	sm.SetImageSmoothing(enabled)
	if enabled {
		sm.SetImageSmoothingQuality(SmoothingHigh)
	}
}

// ResetTransform sets the surface's transform to the identity matrix.
func ResetTransform(s Surface) {
	s.SetTransform(Identity())
}

// WithIdentityTransform runs the given draw callbacks with the surface
// transform reset to identity, then restores the prior transform. The
// restore is guaranteed even if a callback panics.
func WithIdentityTransform(s Surface, draws ...func()) {
	saved := s.Transform()
	defer s.SetTransform(saved)

	s.SetTransform(Identity())
	for _, draw := range draws {
		draw()
	}
}

// SetupOption configures Setup.
type SetupOption func(*setupOptions)

type setupOptions struct {
	scale float64
}

// WithScale sets the ratio between the drawing-buffer resolution and the
// element's layout size. Use the display's device pixel ratio for crisp
// rendering on high-density screens. The default is 1.
func WithScale(scale float64) SetupOption {
	return func(o *setupOptions) {
		o.scale = scale
	}
}

// Setup prepares a canvas element for drawing: it looks the element up by
// selector, sizes its drawing buffer to the layout size times the scale
// factor, resets the transform, and enables line and image smoothing.
//
// Returns nil if no element matches the selector or the element has no
// renderable surface; callers must check.
func Setup(doc Document, selector string, opts ...SetupOption) Surface {
	options := setupOptions{scale: 1}
	for _, opt := range opts {
		opt(&options)
	}

	el := doc.QuerySelector(selector)
	if el == nil {
		Logger().Warn("canvas element not found", "selector", selector)
		return nil
	}
	s := el.Surface()
	if s == nil {
		Logger().Warn("canvas element has no drawing surface", "selector", selector)
		return nil
	}

	w, h := el.LayoutSize()
	el.SetBufferSize(FastInt(w*options.scale), FastInt(h*options.scale))

	ResetTransform(s)
	SmoothLines(s, true)
	SmoothImages(s, true)
	return s
}
