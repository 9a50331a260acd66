package bmfont

import (
	"strconv"
	"strings"
)

// componentValue strips the key= prefix and any surrounding quotes from one
// whitespace-delimited descriptor component, e.g. `file="arial_0.png"`.
// Components are matched by position, so the key itself is only informative.
func componentValue(component string) string {
	if i := strings.IndexByte(component, '='); i >= 0 {
		component = component[i+1:]
	}
	return strings.Trim(component, `"`)
}

// component returns the i'th whitespace-split component of a line.
func component(fields []string, i int) (string, bool) {
	if i < len(fields) {
		return fields[i], true
	}
	return "", false
}

// extractUint parses the value of a descriptor component as a uint32.
// ok reports whether the component was present at all; absence, a
// non-numeric value, and overflow all produce a ParseError labeled with
// the section and field names.
func extractUint(c string, ok bool, section, field string) (uint32, error) {
	if !ok {
		return 0, &ParseError{Section: section, Field: field, Err: errMissingField}
	}
	v, err := strconv.ParseUint(componentValue(c), 10, 32)
	if err != nil {
		return 0, &ParseError{Section: section, Field: field, Err: err}
	}
	return uint32(v), nil
}

// extractInt is extractUint for signed 32-bit values.
func extractInt(c string, ok bool, section, field string) (int32, error) {
	if !ok {
		return 0, &ParseError{Section: section, Field: field, Err: errMissingField}
	}
	v, err := strconv.ParseInt(componentValue(c), 10, 32)
	if err != nil {
		return 0, &ParseError{Section: section, Field: field, Err: err}
	}
	return int32(v), nil
}

// fieldReader walks the components of one section line in positional order,
// skipping the leading tag word. The first failure latches and turns the
// remaining reads into no-ops, so record parsers can read all their fields
// and check the error once.
type fieldReader struct {
	section string
	fields  []string
	pos     int
	err     error
}

func newFieldReader(section, line string) *fieldReader {
	return &fieldReader{section: section, fields: strings.Fields(line), pos: 1}
}

func (r *fieldReader) next() (string, bool) {
	if r.pos >= len(r.fields) {
		return "", false
	}
	c := r.fields[r.pos]
	r.pos++
	return c, true
}

func (r *fieldReader) nextUint(field string) uint32 {
	if r.err != nil {
		return 0
	}
	c, ok := r.next()
	v, err := extractUint(c, ok, r.section, field)
	if err != nil {
		r.err = err
	}
	return v
}

func (r *fieldReader) nextInt(field string) int32 {
	if r.err != nil {
		return 0
	}
	c, ok := r.next()
	v, err := extractInt(c, ok, r.section, field)
	if err != nil {
		r.err = err
	}
	return v
}

func (r *fieldReader) nextString(field string) string {
	if r.err != nil {
		return ""
	}
	c, ok := r.next()
	if !ok {
		r.err = &ParseError{Section: r.section, Field: field, Err: errMissingField}
		return ""
	}
	return componentValue(c)
}
