package text

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	gotext "github.com/go-text/typesetting/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// ErrEmptyFontData is returned when a font source is created from no data.
var ErrEmptyFontData = errors.New("text: empty font data")

// FontSource represents a loaded font file (TTF or OTF). One FontSource can
// create faces at multiple sizes. FontSource is heavyweight and should be
// shared across the application; the parsed forms are read-only and safe
// for concurrent use.
type FontSource struct {
	data   []byte
	sfnt   *sfnt.Font   // x/image parse, used for glyph rasterization
	shaped *gotext.Font // go-text parse, used for HarfBuzz measurement
	family string
}

// NewFontSource creates a FontSource from font data. The data slice is
// copied internally and can be reused after this call. The family is the
// name the source is registered under.
func NewFontSource(data []byte, family string) (*FontSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)

	parsed, err := opentype.Parse(dataCopy)
	if err != nil {
		return nil, fmt.Errorf("text: parse font %q: %w", family, err)
	}
	// ParseTTF returns a Face embedding the thread-safe Font; keep the
	// Font and create throwaway faces per shaping call.
	face, err := gotext.ParseTTF(bytes.NewReader(dataCopy))
	if err != nil {
		return nil, fmt.Errorf("text: parse font %q for shaping: %w", family, err)
	}

	return &FontSource{
		data:   dataCopy,
		sfnt:   parsed,
		shaped: face.Font,
		family: family,
	}, nil
}

// NewFontSourceFromFile loads a FontSource from a font file path.
func NewFontSourceFromFile(path, family string) (*FontSource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("text: read font file: %w", err)
	}
	return NewFontSource(data, family)
}

// Family returns the family name the source was created with.
func (s *FontSource) Family() string {
	return s.family
}
