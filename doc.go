// Package bmfont parses BMFont bitmap-font descriptors and lays out text as
// textured quads.
//
// A BMFont descriptor is the line-oriented text (or XML) file emitted by
// bitmap-font generators such as AngelCode BMFont. It pairs per-character
// metrics with one or more atlas images holding the pre-rendered glyphs.
// This package reads the descriptor only; it never rasterizes glyphs or
// loads atlas pixels. Rendering is the caller's concern.
//
// The layout pipeline walks an input string, resolves each code point to a
// glyph, applies kerning, and advances a pen position across lines. Each
// resolved character yields a CharPosition: the rectangle to sample from the
// atlas page and the rectangle to draw on screen.
//
// # Example usage
//
//	file, err := os.Open("arial.fnt")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer file.Close()
//
//	font, err := bmfont.New(file, bmfont.TopToBottom)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for pos, err := range font.CharPositions("Hello, world") {
//	    if err != nil {
//	        continue // skip characters the font cannot render
//	    }
//	    drawQuad(pos.ScreenRect, pos.PageRect, pos.PageIndex)
//	}
//
// A Font is immutable after construction, so any number of goroutines may
// lay out text with it concurrently.
//
// For consumers that draw through golang.org/x/image, [Font.Face] adapts a
// Font plus caller-decoded atlas images to the font.Face interface.
package bmfont
