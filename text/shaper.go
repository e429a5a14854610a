package text

import (
	"sync"

	"github.com/go-text/typesetting/di"
	gotext "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/text/unicode/bidi"
)

// Shaper measures text through go-text/typesetting's HarfBuzz
// implementation, so advances reflect kerning, ligatures, and complex
// script shaping rather than a naive per-glyph sum.
//
// Shaper is safe for concurrent use: gotext.Font is read-only, the
// lightweight gotext.Face instances are created per call (they are NOT
// concurrent-safe), and HarfbuzzShaper instances are pooled since they
// carry mutable buffers.
type Shaper struct {
	pool sync.Pool
}

// NewShaper creates a Shaper.
func NewShaper() *Shaper {
	return &Shaper{
		pool: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
	}
}

// Advance returns the horizontal advance of s in pixels when shaped with
// the given font source at the given size.
func (sh *Shaper) Advance(s string, source *FontSource, size float64) float64 {
	if s == "" || source == nil {
		return 0
	}

	runes := []rune(s)
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: detectDirection(s),
		Face:      gotext.NewFace(source.shaped),
		Size:      floatToFixed(size),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}

	hb := sh.pool.Get().(*shaping.HarfbuzzShaper)
	output := hb.Shape(input)
	sh.pool.Put(hb)

	return fixedToFloat(output.Advance)
}

// detectDirection resolves the paragraph direction of s with the Unicode
// bidi algorithm, defaulting to left-to-right for neutral text.
func detectDirection(s string) di.Direction {
	p := bidi.Paragraph{}
	if _, err := p.SetString(s); err != nil {
		return di.DirectionLTR
	}
	if p.IsLeftToRight() {
		return di.DirectionLTR
	}
	return di.DirectionRTL
}

// detectScript inspects the runes and returns the script of the first
// non-space character. A simple heuristic; mixed-script text should be
// split into runs before shaping.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}
