package bmfont

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"unicode/utf16"
)

// TestSplitSections_Grouping checks that lines are grouped by tag in source
// order and that unrecognized tags are ignored.
func TestSplitSections_Grouping(t *testing.T) {
	s, err := splitSections(strings.NewReader(testDescriptor))
	if err != nil {
		t.Fatalf("splitSections failed: %v", err)
	}

	if !strings.HasPrefix(s.common, "common lineHeight=12") {
		t.Errorf("common = %q, want the common line", s.common)
	}
	if len(s.pages) != 1 {
		t.Errorf("len(pages) = %d, want 1", len(s.pages))
	}
	if len(s.chars) != 3 {
		t.Fatalf("len(chars) = %d, want 3", len(s.chars))
	}
	// Source order must be preserved.
	for i, id := range []string{"id=65", "id=66", "id=67"} {
		if !strings.Contains(s.chars[i], id) {
			t.Errorf("chars[%d] = %q, want it to contain %q", i, s.chars[i], id)
		}
	}
	if len(s.kernings) != 1 {
		t.Errorf("len(kernings) = %d, want 1", len(s.kernings))
	}
}

// TestSplitSections_MissingCommon checks the mandatory common line.
func TestSplitSections_MissingCommon(t *testing.T) {
	_, err := splitSections(strings.NewReader("page id=0 file=\"a.png\"\n"))
	if !errors.Is(err, ErrMissingCommon) {
		t.Errorf("splitSections error = %v, want ErrMissingCommon", err)
	}
}

// TestSplitSections_UTF8BOM checks that a UTF-8 byte order mark is stripped
// before the first tag word is read.
func TestSplitSections_UTF8BOM(t *testing.T) {
	s, err := splitSections(strings.NewReader("\uFEFF" + testDescriptor))
	if err != nil {
		t.Fatalf("splitSections failed: %v", err)
	}
	if !strings.HasPrefix(s.common, "common ") {
		t.Errorf("common = %q, want no leading BOM", s.common)
	}
}

// utf16leBytes encodes s as UTF-16LE with a byte order mark.
func utf16leBytes(s string) []byte {
	units := utf16.Encode([]rune(s))
	buf := make([]byte, 0, 2+2*len(units))
	buf = append(buf, 0xFF, 0xFE)
	for _, u := range units {
		buf = append(buf, byte(u), byte(u>>8))
	}
	return buf
}

// TestSplitSections_UTF16 checks that a UTF-16 descriptor with a BOM is
// transcoded before splitting.
func TestSplitSections_UTF16(t *testing.T) {
	s, err := splitSections(bytes.NewReader(utf16leBytes(testDescriptor)))
	if err != nil {
		t.Fatalf("splitSections failed: %v", err)
	}
	if len(s.chars) != 3 {
		t.Errorf("len(chars) = %d, want 3", len(s.chars))
	}
	if !strings.Contains(s.pages[0], `file="test_0.png"`) {
		t.Errorf("pages[0] = %q, want the page line", s.pages[0])
	}
}

// TestSplitSections_InvalidText checks that non-text bytes are rejected.
func TestSplitSections_InvalidText(t *testing.T) {
	_, err := splitSections(bytes.NewReader([]byte("common \x80\xFF\xFE\n")))
	if !errors.Is(err, ErrInvalidText) {
		t.Errorf("splitSections error = %v, want ErrInvalidText", err)
	}
}

// TestSplitSections_CRLF checks that carriage returns are trimmed from the
// stored lines.
func TestSplitSections_CRLF(t *testing.T) {
	src := "common lineHeight=12 base=10\r\nchar id=65 x=0 y=0 width=8 height=8 xoffset=0 yoffset=0 xadvance=10 page=0\r\n"
	s, err := splitSections(strings.NewReader(src))
	if err != nil {
		t.Fatalf("splitSections failed: %v", err)
	}
	if strings.ContainsRune(s.common, '\r') {
		t.Errorf("common = %q, want no carriage return", s.common)
	}
	if len(s.chars) != 1 || strings.ContainsRune(s.chars[0], '\r') {
		t.Errorf("chars = %q, want one line without carriage return", s.chars)
	}
}

// TestSplitSections_BlankAndUnknownLines checks that blank lines and richer
// generator output do not disturb the recognized sections.
func TestSplitSections_BlankAndUnknownLines(t *testing.T) {
	src := "\ninfo face=\"x\"\n\ncommon lineHeight=12 base=10\nchars count=0\nkernings count=0\n\n"
	s, err := splitSections(strings.NewReader(src))
	if err != nil {
		t.Fatalf("splitSections failed: %v", err)
	}
	if len(s.chars) != 0 || len(s.kernings) != 0 || len(s.pages) != 0 {
		t.Errorf("sections = %+v, want only the common line", s)
	}
}
