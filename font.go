package bmfont

import (
	"io"
	"slices"
	"strings"
)

// OrdinateOrientation selects which way y grows on the output surface.
// It affects line advancement and the vertical placement of each glyph;
// atlas coordinates are unaffected.
type OrdinateOrientation int

const (
	// BottomToTop is the OpenGL-style convention: y grows upward, so each
	// new line of text lowers the pen by subtracting the line height.
	BottomToTop OrdinateOrientation = iota
	// TopToBottom is the raster convention: y grows downward.
	TopToBottom
)

// String returns the string representation of the orientation.
func (o OrdinateOrientation) String() string {
	switch o {
	case BottomToTop:
		return "BottomToTop"
	case TopToBottom:
		return "TopToBottom"
	default:
		return "Unknown"
	}
}

// Font is an immutable bitmap font built from a BMFont descriptor.
//
// A Font holds glyph metrics and atlas references only. Once constructed it
// is read-only; any number of goroutines may query it concurrently, each
// CharPositions call owning its own cursor state.
type Font struct {
	baseHeight  uint32
	lineHeight  uint32
	chars       []Char
	kernings    []KerningValue
	pages       []Page
	orientation OrdinateOrientation
}

// New builds a Font from a text-format BMFont descriptor.
//
// The source is read in full before parsing. Construction is atomic: the
// first missing or malformed field aborts with an error and no partially
// built Font is ever returned.
func New(r io.Reader, orientation OrdinateOrientation) (*Font, error) {
	s, err := splitSections(r)
	if err != nil {
		return nil, err
	}

	// Only positions 2 and 3 of the common line are read. A generator that
	// reordered the lineHeight and base fields would be mis-parsed; none
	// are known to.
	fields := strings.Fields(s.common)
	c, ok := component(fields, 1)
	lineHeight, err := extractUint(c, ok, "common", "lineHeight")
	if err != nil {
		return nil, err
	}
	c, ok = component(fields, 2)
	base, err := extractUint(c, ok, "common", "base")
	if err != nil {
		return nil, err
	}

	f := &Font{
		baseHeight:  base,
		lineHeight:  lineHeight,
		orientation: orientation,
		pages:       make([]Page, 0, len(s.pages)),
		chars:       make([]Char, 0, len(s.chars)),
		kernings:    make([]KerningValue, 0, len(s.kernings)),
	}
	for _, line := range s.pages {
		p, err := parsePage(line)
		if err != nil {
			return nil, err
		}
		f.pages = append(f.pages, p)
	}
	for _, line := range s.chars {
		ch, err := parseChar(line)
		if err != nil {
			return nil, err
		}
		f.chars = append(f.chars, ch)
	}
	for _, line := range s.kernings {
		k, err := parseKerning(line)
		if err != nil {
			return nil, err
		}
		f.kernings = append(f.kernings, k)
	}
	return f, nil
}

// BaseHeight returns the distance in pixels from the top of a line to the
// glyph baseline.
func (f *Font) BaseHeight() uint32 { return f.baseHeight }

// LineHeight returns the vertical distance in pixels between consecutive
// lines of text.
func (f *Font) LineHeight() uint32 { return f.lineHeight }

// Orientation returns the vertical coordinate convention the font lays
// text out with.
func (f *Font) Orientation() OrdinateOrientation { return f.orientation }

// Pages returns the font's atlas page references in descriptor order.
// The returned slice is a copy; the Font stays immutable.
func (f *Font) Pages() []Page {
	return slices.Clone(f.pages)
}

// lookupChar returns the first glyph whose id matches the code point.
// First match wins, which makes duplicate ids deterministic.
func (f *Font) lookupChar(id uint32) (*Char, bool) {
	for i := range f.chars {
		if f.chars[i].ID == id {
			return &f.chars[i], true
		}
	}
	return nil, false
}

// kerning returns the advance adjustment for second following first, or 0
// when the pair has none. The first matching pair wins.
func (f *Font) kerning(first, second uint32) int32 {
	for i := range f.kernings {
		if f.kernings[i].First == first && f.kernings[i].Second == second {
			return f.kernings[i].Amount
		}
	}
	return 0
}
