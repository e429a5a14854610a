package soft

import (
	"fmt"
	"image"
	"image/png"
	"os"

	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/sketch"
)

// DrawImage blits an image at (x, y). A width or height of 0 uses the
// image's natural size. When the target size differs from the natural
// size, the image is resampled with a scaler chosen by the smoothing flag
// and quality hint.
func (c *Canvas) DrawImage(img image.Image, x, y, w, h float64) {
	if img == nil {
		return
	}
	b := img.Bounds()
	if w == 0 {
		w = float64(b.Dx())
	}
	if h == 0 {
		h = float64(b.Dy())
	}
	p := c.matrix.TransformPoint(sketch.Pt(x, y))
	dr := image.Rect(
		sketch.FastInt(p.X), sketch.FastInt(p.Y),
		sketch.FastInt(p.X+w), sketch.FastInt(p.Y+h),
	)

	c.scaler().Scale(c.img, dr, img, b, xdraw.Over, nil)
}

// scaler picks the resampling kernel for DrawImage.
func (c *Canvas) scaler() xdraw.Scaler {
	if !c.smoothing {
		return xdraw.NearestNeighbor
	}
	switch c.quality {
	case sketch.SmoothingHigh:
		return xdraw.CatmullRom
	case sketch.SmoothingMedium:
		return xdraw.BiLinear
	default:
		return xdraw.ApproxBiLinear
	}
}

// SavePNG writes the canvas buffer to a PNG file.
func (c *Canvas) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("soft: create %q: %w", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, c.img); err != nil {
		return fmt.Errorf("soft: encode %q: %w", path, err)
	}
	return nil
}
