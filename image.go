package sketch

import (
	"fmt"
	"image"
	"net/http"
	"os"
	"strings"
	"time"

	// Decoders registered for the default image loader.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Loader fetches and decodes an image resource for DrawImage.
type Loader interface {
	Load(src string) (image.Image, error)
}

// FileLoader is the default Loader: it treats the source as an http(s) URL
// or otherwise as a file path, and decodes it with the registered image
// formats (PNG, JPEG, GIF, BMP, TIFF, WebP).
type FileLoader struct {
	// Client is the HTTP client used for URL sources.
	// Nil uses a client with a 30 second timeout.
	Client *http.Client
}

// Load implements Loader.
func (l FileLoader) Load(src string) (image.Image, error) {
	if strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://") {
		client := l.Client
		if client == nil {
			client = &http.Client{Timeout: 30 * time.Second}
		}
		resp, err := client.Get(src)
		if err != nil {
			return nil, fmt.Errorf("fetch image %q: %w", src, err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("fetch image %q: %s", src, resp.Status)
		}
		img, _, err := image.Decode(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("decode image %q: %w", src, err)
		}
		return img, nil
	}

	f, err := os.Open(src)
	if err != nil {
		return nil, fmt.Errorf("open image %q: %w", src, err)
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode image %q: %w", src, err)
	}
	return img, nil
}

// ImageOp is the completion handle of an asynchronous DrawImage call.
// Done is closed once the image has either been drawn or failed to load;
// Err reports the load error, if any, after Done is closed.
type ImageOp struct {
	done chan struct{}
	err  error
}

// Done returns a channel that is closed when the operation completes.
func (op *ImageOp) Done() <-chan struct{} {
	return op.done
}

// Err returns the load error, or nil if the image was drawn. It must only
// be called after Done is closed.
func (op *ImageOp) Err() error {
	return op.err
}

// Wait blocks until the operation completes and returns its error.
func (op *ImageOp) Wait() error {
	<-op.done
	return op.err
}

// ImageOption configures a DrawImage call.
type ImageOption func(*imageOptions)

type imageOptions struct {
	loader Loader
}

// WithLoader overrides the image loader for a DrawImage call.
func WithLoader(l Loader) ImageOption {
	return func(o *imageOptions) {
		o.loader = l
	}
}

// DrawImage loads the image named by src off-band and blits it onto the
// surface at pos once loading finishes. A width or height of 0 uses the
// image's natural size.
//
// The call returns immediately, before anything is drawn; the actual draw
// happens on a background goroutine when the load completes. Draw order
// relative to synchronous calls issued in the same turn is therefore not
// guaranteed — serialize on the returned handle if ordering matters. A
// failed load never draws; the failure is reported only through the handle
// (and the package logger). In-flight loads cannot be cancelled.
func DrawImage(s Surface, src string, pos Point, w, h float64, opts ...ImageOption) *ImageOp {
	options := imageOptions{loader: FileLoader{}}
	for _, opt := range opts {
		opt(&options)
	}

	op := &ImageOp{done: make(chan struct{})}
	go func() {
		defer close(op.done)
		img, err := options.loader.Load(src)
		if err != nil {
			Logger().Warn("image load failed", "src", src, "err", err)
			op.err = err
			return
		}
		Logger().Debug("image loaded", "src", src, "bounds", img.Bounds())
		s.DrawImage(img, pos.X, pos.Y, w, h)
	}()
	return op
}
