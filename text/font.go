package text

import (
	"strconv"
	"strings"
)

// Style is the font style keyword of a canvas font string.
type Style int

const (
	StyleNormal Style = iota
	StyleBold
	StyleItalic
)

// Font is a parsed canvas font string such as "bold 16px Go Mono".
type Font struct {
	Style  Style
	Size   float64
	Family string
}

// DefaultFont is the font used when a string cannot be parsed.
var DefaultFont = Font{Style: StyleNormal, Size: 10, Family: "sans-serif"}

// ParseFont parses a canvas-style font string: optional style keywords,
// a "<size>px" token, and the remainder as the family name. Unparsable
// strings yield DefaultFont.
//
//	ParseFont("16px Go Mono")     // {StyleNormal, 16, "Go Mono"}
//	ParseFont("bold 12.5px serif") // {StyleBold, 12.5, "serif"}
func ParseFont(s string) Font {
	f := DefaultFont
	fields := strings.Fields(s)

	i := 0
	for ; i < len(fields); i++ {
		switch strings.ToLower(fields[i]) {
		case "bold":
			f.Style = StyleBold
		case "italic":
			f.Style = StyleItalic
		case "normal":
			f.Style = StyleNormal
		default:
			goto size
		}
	}
size:
	if i >= len(fields) {
		return f
	}
	tok := fields[i]
	if !strings.HasSuffix(tok, "px") {
		return f
	}
	size, err := strconv.ParseFloat(strings.TrimSuffix(tok, "px"), 64)
	if err != nil || size <= 0 {
		return f
	}
	f.Size = size

	if rest := strings.Join(fields[i+1:], " "); rest != "" {
		f.Family = rest
	}
	return f
}

// String formats the font back into a canvas font string.
func (f Font) String() string {
	var b strings.Builder
	switch f.Style {
	case StyleBold:
		b.WriteString("bold ")
	case StyleItalic:
		b.WriteString("italic ")
	}
	b.WriteString(strconv.FormatFloat(f.Size, 'g', -1, 64))
	b.WriteString("px ")
	b.WriteString(f.Family)
	return b.String()
}
