package bmfont

import (
	"encoding/xml"
	"fmt"
	"io"
)

// BMFont-compatible generators can emit the same descriptor as XML.
// These structs mirror that layout; attributes beyond the ones named are
// ignored by encoding/xml, matching the text parser's leniency.

type xmlFont struct {
	XMLName  xml.Name     `xml:"font"`
	Common   *xmlCommon   `xml:"common"`
	Pages    []xmlPage    `xml:"pages>page"`
	Chars    []xmlChar    `xml:"chars>char"`
	Kernings []xmlKerning `xml:"kernings>kerning"`
}

type xmlCommon struct {
	LineHeight uint32 `xml:"lineHeight,attr"`
	Base       uint32 `xml:"base,attr"`
}

type xmlPage struct {
	ID   uint32 `xml:"id,attr"`
	File string `xml:"file,attr"`
}

type xmlChar struct {
	ID       uint32 `xml:"id,attr"`
	X        uint32 `xml:"x,attr"`
	Y        uint32 `xml:"y,attr"`
	Width    uint32 `xml:"width,attr"`
	Height   uint32 `xml:"height,attr"`
	XOffset  int32  `xml:"xoffset,attr"`
	YOffset  int32  `xml:"yoffset,attr"`
	XAdvance int32  `xml:"xadvance,attr"`
	Page     uint32 `xml:"page,attr"`
}

type xmlKerning struct {
	First  uint32 `xml:"first,attr"`
	Second uint32 `xml:"second,attr"`
	Amount int32  `xml:"amount,attr"`
}

// NewXML builds a Font from an XML-format BMFont descriptor. It takes the
// same orientation choice as New and yields an identical Font for the same
// logical content, so text laid out with either loads the same way.
func NewXML(r io.Reader, orientation OrdinateOrientation) (*Font, error) {
	var doc xmlFont
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("bmfont: decoding XML descriptor: %w", err)
	}
	if doc.Common == nil {
		return nil, ErrMissingCommon
	}

	f := &Font{
		baseHeight:  doc.Common.Base,
		lineHeight:  doc.Common.LineHeight,
		orientation: orientation,
		pages:       make([]Page, 0, len(doc.Pages)),
		chars:       make([]Char, 0, len(doc.Chars)),
		kernings:    make([]KerningValue, 0, len(doc.Kernings)),
	}
	for _, p := range doc.Pages {
		f.pages = append(f.pages, Page{ID: p.ID, Filename: p.File})
	}
	for _, c := range doc.Chars {
		f.chars = append(f.chars, Char{
			ID:       c.ID,
			X:        c.X,
			Y:        c.Y,
			Width:    c.Width,
			Height:   c.Height,
			XOffset:  c.XOffset,
			YOffset:  c.YOffset,
			XAdvance: c.XAdvance,
			Page:     c.Page,
		})
	}
	for _, k := range doc.Kernings {
		f.kernings = append(f.kernings, KerningValue{
			First:  k.First,
			Second: k.Second,
			Amount: k.Amount,
		})
	}
	return f, nil
}
