package bmfont

// Page references one external atlas image by filename. The font records
// the reference only; it never opens or decodes the image.
type Page struct {
	ID       uint32
	Filename string
}

// parsePage parses one page line of a text descriptor.
func parsePage(line string) (Page, error) {
	r := newFieldReader("page", line)
	p := Page{
		ID:       r.nextUint("id"),
		Filename: r.nextString("file"),
	}
	if r.err != nil {
		return Page{}, r.err
	}
	return p, nil
}
