package syntax

import (
	"regexp"
	"strings"

	"github.com/riverfjs/calloutmath-go/internal/buffer"
	"github.com/riverfjs/calloutmath-go/internal/ranges"
)

var calloutRe = regexp.MustCompile(`^\[![^\]\s]+\][+-]?`)

// ScanMarkers returns the line offsets of the quote glyphs in the leading
// run of "up to 3 spaces, then '>'" groups of text.
func ScanMarkers(text string) []int {
	var glyphs []int
	i := 0
	for {
		j, spaces := i, 0
		for j < len(text) && text[j] == ' ' && spaces < 3 {
			j++
			spaces++
		}
		if j >= len(text) || text[j] != '>' {
			return glyphs
		}
		glyphs = append(glyphs, j)
		i = j + 1
	}
}

// Build tokenises doc into line nodes named the way Live Preview names
// them. Math delimiters inside code are not tokenised.
func Build(doc *buffer.Doc, code []ranges.Range) *Tree {
	b := &builder{
		doc:  doc,
		code: code,
	}

	lines := make([]*Node, 0, doc.Lines())
	for n := 1; n <= doc.Lines(); n++ {
		lines = append(lines, b.line(doc.Line(n)))
	}
	return NewTree(doc.Length(), lines)
}

type builder struct {
	doc  *buffer.Doc
	code []ranges.Range

	level     int  // quote level of the previous line
	callout   bool // current quote region opened as a callout
	mathBlock bool // inside $$ ... $$
}

func (b *builder) line(line buffer.Line) *Node {
	glyphs := ScanMarkers(line.Text)
	level := len(glyphs)

	content := 0
	if level > 0 {
		content = glyphs[level-1] + 1
	}

	switch {
	case level == 0:
		b.callout = false
	case b.level == 0:
		b.callout = calloutRe.MatchString(strings.TrimLeft(line.Text[content:], " \t"))
	}
	b.level = level

	node := &Node{
		Name: LineName(level, b.callout),
		From: line.From,
		To:   line.To,
	}
	for k, g := range glyphs {
		node.Children = append(node.Children, &Node{
			Name: FormattingQuoteName(k+1, level),
			From: line.From + g,
			To:   line.From + g + 1,
		})
	}
	node.Children = append(node.Children, b.math(line, content)...)
	return node
}

// math tokenises the dollar delimiters of line from offset start on.
// Display math continues across lines; inline math must close on its line.
func (b *builder) math(line buffer.Line, start int) []*Node {
	var tokens []*Node
	text := line.Text

	for i := start; i < len(text); {
		if ranges.Contains(b.code, line.From+i) {
			i++
			continue
		}
		switch {
		case text[i] == '\\':
			i += 2
			continue
		case text[i] != '$':
			i++
			continue
		}

		pos := line.From + i
		if strings.HasPrefix(text[i:], "$$") {
			if b.mathBlock {
				tokens = append(tokens, &Node{Name: MathEndName(true), From: pos, To: pos + 2})
			} else {
				tokens = append(tokens, &Node{Name: MathBeginName(true), From: pos, To: pos + 2})
			}
			b.mathBlock = !b.mathBlock
			i += 2
			continue
		}
		if b.mathBlock {
			i++
			continue
		}

		if j := b.closeInline(line, i); j > 0 {
			tokens = append(tokens,
				&Node{Name: MathBeginName(false), From: pos, To: pos + 1},
				&Node{Name: MathEndName(false), From: line.From + j, To: line.From + j + 1},
			)
			i = j + 1
			continue
		}
		i++
	}
	return tokens
}

// closeInline returns the line offset of the '$' closing the inline math
// opened at open, or -1.
func (b *builder) closeInline(line buffer.Line, open int) int {
	text := line.Text
	if open+1 >= len(text) || text[open+1] == ' ' {
		return -1
	}
	for j := open + 1; j < len(text); j++ {
		if ranges.Contains(b.code, line.From+j) {
			return -1
		}
		switch text[j] {
		case '\\':
			j++
		case '$':
			if text[j-1] == ' ' || strings.HasPrefix(text[j:], "$$") {
				return -1
			}
			return j
		}
	}
	return -1
}
