package bmfont

// Rect is an axis-aligned box in either atlas-page space or screen space.
// X and Y locate the top-left corner under the TopToBottom convention and
// the bottom-left corner under BottomToTop.
type Rect struct {
	X, Y          int32
	Width, Height uint32
}

// MaxX returns the exclusive right edge of the rectangle.
func (r Rect) MaxX() int32 {
	return r.X + int32(r.Width)
}

// MaxY returns the exclusive far edge of the rectangle along y.
func (r Rect) MaxY() int32 {
	return r.Y + int32(r.Height)
}
