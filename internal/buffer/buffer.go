package buffer

import "sort"

// Line is a single line of a Doc. To is the offset of the line break (or
// the document end) and is excluded from Text.
type Line struct {
	Number int
	From   int
	To     int
	Text   string
}

// Doc is an immutable, line-addressable document text. Offsets are byte
// offsets into the UTF-8 text.
type Doc struct {
	text   string
	starts []int
}

// New creates a Doc over text.
func New(text string) *Doc {
	starts := make([]int, 1, 16)
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &Doc{
		text:   text,
		starts: starts,
	}
}

// Length returns the document length in bytes.
func (d *Doc) Length() int {
	return len(d.text)
}

// Lines returns the number of lines. An empty document has one empty line.
func (d *Doc) Lines() int {
	return len(d.starts)
}

// Line returns the 1-indexed line n, clamped to the document.
func (d *Doc) Line(n int) Line {
	if n < 1 {
		n = 1
	}
	if n > len(d.starts) {
		n = len(d.starts)
	}
	from := d.starts[n-1]
	to := len(d.text)
	if n < len(d.starts) {
		to = d.starts[n] - 1
	}
	return Line{
		Number: n,
		From:   from,
		To:     to,
		Text:   d.text[from:to],
	}
}

// LineAt returns the line containing offset pos, clamped to the document.
func (d *Doc) LineAt(pos int) Line {
	if pos < 0 {
		pos = 0
	}
	if pos > len(d.text) {
		pos = len(d.text)
	}
	n := sort.Search(len(d.starts), func(i int) bool {
		return d.starts[i] > pos
	})
	return d.Line(n)
}

// SliceString returns the text between from and to, clamped to the document.
func (d *Doc) SliceString(from, to int) string {
	if from < 0 {
		from = 0
	}
	if to > len(d.text) {
		to = len(d.text)
	}
	if from >= to {
		return ""
	}
	return d.text[from:to]
}

// String returns the whole text.
func (d *Doc) String() string {
	return d.text
}
