package bmfont

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// sections holds the raw descriptor lines grouped by section tag, in
// source order.
type sections struct {
	common   string
	pages    []string
	chars    []string
	kernings []string
}

// splitSections reads the whole descriptor and groups its lines by their
// leading tag word.
//
// Generators emit descriptors as plain UTF-8, UTF-8 with a BOM, or UTF-16
// with a BOM; a byte order mark switches decoding accordingly and is
// stripped. Unknown tags (info, chars count=..., kernings count=...) are
// ignored for forward compatibility with richer generator output. If the
// common line appears more than once the last one is kept; its absence is
// an error.
func splitSections(r io.Reader) (*sections, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("bmfont: reading descriptor: %w", err)
	}

	data, _, err := transform.Bytes(unicode.BOMOverride(encoding.Nop.NewDecoder()), raw)
	if err != nil {
		return nil, fmt.Errorf("bmfont: decoding descriptor: %w", err)
	}
	if !utf8.Valid(data) {
		return nil, ErrInvalidText
	}

	var s sections
	seenCommon := false
	for line := range strings.SplitSeq(string(data), "\n") {
		line = strings.TrimSuffix(line, "\r")
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "common":
			s.common = line
			seenCommon = true
		case "page":
			s.pages = append(s.pages, line)
		case "char":
			s.chars = append(s.chars, line)
		case "kerning":
			s.kernings = append(s.kernings, line)
		}
	}
	if !seenCommon {
		return nil, ErrMissingCommon
	}
	return &s, nil
}
