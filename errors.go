package bmfont

import (
	"errors"
	"fmt"
)

// Sentinel errors for descriptor construction.
var (
	// ErrMissingCommon is returned when the descriptor has no common section.
	ErrMissingCommon = errors.New("bmfont: missing common section")

	// ErrInvalidText is returned when the descriptor bytes are not valid text.
	ErrInvalidText = errors.New("bmfont: descriptor is not valid text")
)

// errMissingField is wrapped by ParseError when a required component is
// absent from a section line.
var errMissingField = errors.New("missing")

// ParseError reports a missing or malformed field in a descriptor section.
// It wraps the underlying conversion error, so callers can match against
// strconv errors with errors.Is.
type ParseError struct {
	// Section is the descriptor section the field belongs to,
	// e.g. "common" or "char".
	Section string

	// Field is the name of the offending field, e.g. "xadvance".
	Field string

	// Err is the underlying cause.
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("bmfont: %s section: field %s: %v", e.Section, e.Field, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// UnsupportedCharError is yielded by CharPositions for a code point that
// does not fit in a single UTF-16 code unit, i.e. one outside the Basic
// Multilingual Plane.
type UnsupportedCharError struct {
	Char rune
}

func (e *UnsupportedCharError) Error() string {
	return fmt.Sprintf("bmfont: unsupported character %q", e.Char)
}

// MissingCharError is yielded by CharPositions for a code point with no
// matching glyph in the font's character table.
type MissingCharError struct {
	Char rune
}

func (e *MissingCharError) Error() string {
	return fmt.Sprintf("bmfont: no glyph for character %q", e.Char)
}
