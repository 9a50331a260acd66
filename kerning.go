package bmfont

// KerningValue adjusts the horizontal advance for one ordered pair of
// characters: Amount is added to the advance when Second immediately
// follows First.
type KerningValue struct {
	First  uint32
	Second uint32
	Amount int32
}

// parseKerning parses one kerning line of a text descriptor.
func parseKerning(line string) (KerningValue, error) {
	r := newFieldReader("kerning", line)
	k := KerningValue{
		First:  r.nextUint("first"),
		Second: r.nextUint("second"),
		Amount: r.nextInt("amount"),
	}
	if r.err != nil {
		return KerningValue{}, r.err
	}
	return k, nil
}
