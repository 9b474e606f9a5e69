package calloutmath

// UTF16Len returns the length of text measured in UTF-16 code units.
//
// Decorations carry Go byte offsets. Hosts built on JavaScript editors
// measure positions in UTF-16 code units: characters outside the BMP
// take 2 code units, all others take 1.
func UTF16Len(text string) int {
	count := 0
	for _, r := range text {
		if r > 0xFFFF {
			count += 2
		} else {
			count++
		}
	}
	return count
}

// buildUTF16OffsetTable builds a cumulative UTF-16 offset table for each byte position.
// result[i] is the UTF-16 offset at byte position i; positions inside a
// multi-byte rune map to the offset of that rune.
func buildUTF16OffsetTable(text string) []int {
	offsets := make([]int, len(text)+1)
	cum := 0
	bytePos := 0
	for _, r := range text {
		size := len(string(r))
		for i := 0; i < size && bytePos+i < len(text); i++ {
			offsets[bytePos+i] = cum
		}
		if r > 0xFFFF {
			cum += 2
		} else {
			cum++
		}
		bytePos += size
	}
	offsets[len(text)] = cum
	return offsets
}

// ToUTF16 returns a copy of decorations with every position converted from
// byte offsets in text to UTF-16 offsets. Positions past the end of text
// are clamped to its length.
func ToUTF16(text string, decorations []Decoration) []Decoration {
	if len(decorations) == 0 {
		return decorations
	}
	offsets := buildUTF16OffsetTable(text)
	at := func(pos int) int {
		if pos < 0 {
			return 0
		}
		if pos >= len(offsets) {
			return offsets[len(offsets)-1]
		}
		return offsets[pos]
	}

	out := make([]Decoration, len(decorations))
	for i, d := range decorations {
		d.From = at(d.From)
		d.To = at(d.To)
		if d.Math != nil {
			m := d.Math.WithPos(at(d.Math.From), at(d.Math.To))
			d.Math = &m
		}
		out[i] = d
	}
	return out
}
