package bmfont

import (
	"image"
	"unicode/utf16"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Face adapts the font to golang.org/x/image/font.Face so consumers that
// draw through x/image (font.Drawer and friends) can use it directly.
//
// pages holds the decoded atlas images in page-id order. The caller decodes
// them; the font itself never performs pixel I/O. Glyph returns the page
// image as its mask with the atlas position as the mask point, the same
// scheme x/image's basicfont uses. A nil page entry, or a page index past
// the end of the slice, makes the affected glyphs report ok=false.
//
// The face follows the TopToBottom convention x/image assumes, with the
// baseline BaseHeight() pixels below the top of each line. The orientation
// the Font was constructed with does not apply here.
func (f *Font) Face(pages []image.Image) font.Face {
	return &atlasFace{font: f, pages: pages}
}

type atlasFace struct {
	font  *Font
	pages []image.Image
}

func (a *atlasFace) Close() error { return nil }

func (a *atlasFace) Metrics() font.Metrics {
	return font.Metrics{
		Height:  fixed.I(int(a.font.lineHeight)),
		Ascent:  fixed.I(int(a.font.baseHeight)),
		Descent: fixed.I(int(a.font.lineHeight) - int(a.font.baseHeight)),
	}
}

func (a *atlasFace) Kern(r0, r1 rune) fixed.Int26_6 {
	if r0 < 0 || r1 < 0 {
		return 0
	}
	return fixed.I(int(a.font.kerning(uint32(r0), uint32(r1))))
}

func (a *atlasFace) lookup(r rune) (*Char, bool) {
	if utf16.RuneLen(r) != 1 {
		return nil, false
	}
	return a.font.lookupChar(uint32(r))
}

func (a *atlasFace) Glyph(dot fixed.Point26_6, r rune) (dr image.Rectangle, mask image.Image, maskp image.Point, advance fixed.Int26_6, ok bool) {
	c, ok := a.lookup(r)
	if !ok {
		return
	}
	if int(c.Page) >= len(a.pages) || a.pages[c.Page] == nil {
		return image.Rectangle{}, nil, image.Point{}, 0, false
	}
	x := dot.X.Floor() + int(c.XOffset)
	y := dot.Y.Floor() - int(a.font.baseHeight) + int(c.YOffset)
	dr = image.Rect(x, y, x+int(c.Width), y+int(c.Height))
	mask = a.pages[c.Page]
	maskp = image.Pt(int(c.X), int(c.Y))
	advance = fixed.I(int(c.XAdvance))
	return dr, mask, maskp, advance, true
}

func (a *atlasFace) GlyphBounds(r rune) (bounds fixed.Rectangle26_6, advance fixed.Int26_6, ok bool) {
	c, ok := a.lookup(r)
	if !ok {
		return
	}
	minX := fixed.I(int(c.XOffset))
	minY := fixed.I(int(c.YOffset) - int(a.font.baseHeight))
	bounds = fixed.Rectangle26_6{
		Min: fixed.Point26_6{X: minX, Y: minY},
		Max: fixed.Point26_6{
			X: minX + fixed.I(int(c.Width)),
			Y: minY + fixed.I(int(c.Height)),
		},
	}
	return bounds, fixed.I(int(c.XAdvance)), true
}

func (a *atlasFace) GlyphAdvance(r rune) (advance fixed.Int26_6, ok bool) {
	c, ok := a.lookup(r)
	if !ok {
		return
	}
	return fixed.I(int(c.XAdvance)), true
}
