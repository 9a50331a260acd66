package bmfont

import (
	"iter"
	"strings"
	"unicode/utf16"
)

// CharPosition places one resolved character: where its pixels live in the
// atlas and where to draw them on screen.
type CharPosition struct {
	// PageRect is the character's rectangle inside its atlas page.
	// Atlas coordinates are unaffected by the ordinate orientation.
	PageRect Rect

	// ScreenRect is the rectangle to draw the character into, expressed in
	// the orientation the font was constructed with.
	ScreenRect Rect

	// PageIndex selects the atlas page holding the character.
	PageIndex uint32
}

// CharPositions lays out text and returns a lazy sequence of one
// CharPosition per resolved character.
//
// The sequence is produced on demand; nothing is resolved until it is
// ranged over, and stopping early does no further work. Characters the
// font cannot render yield an inline error instead of a position: an
// UnsupportedCharError for a code point outside the Basic Multilingual
// Plane, or a MissingCharError for one absent from the character table.
// The sequence then continues with the next character; the pen does not
// move for characters that fail to resolve.
//
// A newline resets the pen x to 0 and shifts the pen y by one line height,
// downward for TopToBottom and upward for BottomToTop. Both "\n" and
// "\r\n" are accepted as line breaks. An empty input produces an empty
// sequence.
func (f *Font) CharPositions(text string) iter.Seq2[CharPosition, error] {
	return func(yield func(CharPosition, error) bool) {
		var penX, penY int32
		var prevID uint32
		firstLine := true

		for line := range strings.SplitSeq(text, "\n") {
			line = strings.TrimSuffix(line, "\r")
			if firstLine {
				firstLine = false
			} else {
				penX = 0
				switch f.orientation {
				case TopToBottom:
					penY += int32(f.lineHeight)
				case BottomToTop:
					penY -= int32(f.lineHeight)
				}
			}

			for _, r := range line {
				if utf16.RuneLen(r) != 1 {
					if !yield(CharPosition{}, &UnsupportedCharError{Char: r}) {
						return
					}
					continue
				}
				c, ok := f.lookupChar(uint32(r))
				if !ok {
					if !yield(CharPosition{}, &MissingCharError{Char: r}) {
						return
					}
					continue
				}

				// prevID starts at 0, which is never a real character id,
				// so the first character of the text picks up no kerning.
				// It is carried across line breaks on purpose.
				kerning := f.kerning(prevID, c.ID)
				pos := CharPosition{
					PageRect: Rect{
						X:      int32(c.X),
						Y:      int32(c.Y),
						Width:  c.Width,
						Height: c.Height,
					},
					ScreenRect: Rect{
						X:      penX + c.XOffset + kerning,
						Y:      f.screenY(penY, c),
						Width:  c.Width,
						Height: c.Height,
					},
					PageIndex: c.Page,
				}
				penX += c.XAdvance + kerning
				prevID = c.ID
				if !yield(pos, nil) {
					return
				}
			}
		}
	}
}

// screenY computes the vertical placement of one glyph for the font's
// orientation, relative to the current line's pen y.
func (f *Font) screenY(penY int32, c *Char) int32 {
	if f.orientation == BottomToTop {
		return penY + int32(f.baseHeight) - c.YOffset - int32(c.Height)
	}
	return penY + c.YOffset
}
