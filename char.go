package bmfont

// Char describes one renderable code point: its atlas rectangle, its
// placement offsets relative to the pen, and its horizontal advance.
type Char struct {
	// ID is the Unicode code point this glyph renders.
	ID uint32

	// X, Y locate the glyph's top-left corner inside its atlas page.
	X, Y uint32

	// Width, Height are the glyph's dimensions in pixels.
	Width, Height uint32

	// XOffset, YOffset displace the glyph from the pen position when drawn.
	XOffset, YOffset int32

	// XAdvance is how far the pen moves after this glyph, before kerning.
	XAdvance int32

	// Page is the index of the atlas page holding the glyph.
	Page uint32
}

// parseChar parses one char line of a text descriptor. Components are read
// positionally after the tag word; trailing fields such as chnl are ignored.
func parseChar(line string) (Char, error) {
	r := newFieldReader("char", line)
	c := Char{
		ID:       r.nextUint("id"),
		X:        r.nextUint("x"),
		Y:        r.nextUint("y"),
		Width:    r.nextUint("width"),
		Height:   r.nextUint("height"),
		XOffset:  r.nextInt("xoffset"),
		YOffset:  r.nextInt("yoffset"),
		XAdvance: r.nextInt("xadvance"),
		Page:     r.nextUint("page"),
	}
	if r.err != nil {
		return Char{}, r.err
	}
	return c, nil
}
