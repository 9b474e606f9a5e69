package syntax

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riverfjs/calloutmath-go/internal/buffer"
	"github.com/riverfjs/calloutmath-go/internal/ranges"
)

func TestScanMarkers(t *testing.T) {
	tests := []struct {
		text string
		want []int
	}{
		{"plain", nil},
		{"> a", []int{0}},
		{"> > a", []int{0, 2}},
		{">>>", []int{0, 1, 2}},
		{"   > a", []int{3}},
		{"    > code", nil},
		{"> a > b", []int{0}},
		{"", nil},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, ScanMarkers(tt.text))
		})
	}
}

func TestNames(t *testing.T) {
	line := LineName(2, true)
	assert.Equal(t, 2, QuoteLevel(line))
	assert.True(t, IsCallout(line))
	assert.False(t, IsCallout(LineName(2, false)))
	assert.Equal(t, PlainLineName, LineName(0, true))
	assert.Equal(t, 0, QuoteLevel(PlainLineName))

	glyph := FormattingQuoteName(3, 12)
	assert.True(t, IsFormattingQuote(glyph))
	assert.Equal(t, 3, FormattingQuoteIndex(glyph))

	assert.True(t, IsMathBegin(MathBeginName(true)))
	assert.True(t, IsMathBlock(MathBeginName(true)))
	assert.False(t, IsMathBlock(MathBeginName(false)))
	assert.True(t, IsMathEnd(MathEndName(false)))
	assert.False(t, IsMathEnd(MathBeginName(false)))
}

type token struct {
	name     string
	from, to int
}

func tokens(tree *Tree) []token {
	var out []token
	tree.Iterate(0, tree.Length, func(n *Node) bool {
		if IsMathBegin(n.Name) || IsMathEnd(n.Name) || IsFormattingQuote(n.Name) {
			out = append(out, token{n.Name, n.From, n.To})
		}
		return true
	})
	return out
}

func TestBuildCalloutMath(t *testing.T) {
	doc := buffer.New("> [!note]\n> $$\n> x\n> $$")
	tree := Build(doc, nil)

	require.Len(t, tree.Root.Children, 4)
	for _, line := range tree.Root.Children {
		assert.Equal(t, LineName(1, true), line.Name)
	}

	assert.Equal(t, []token{
		{FormattingQuoteName(1, 1), 0, 1},
		{FormattingQuoteName(1, 1), 10, 11},
		{MathBeginName(true), 12, 14},
		{FormattingQuoteName(1, 1), 15, 16},
		{FormattingQuoteName(1, 1), 19, 20},
		{MathEndName(true), 21, 23},
	}, tokens(tree))
}

func TestBuildInlineMath(t *testing.T) {
	doc := buffer.New("a $x$ b $ y$ \\$z$ $w")
	got := tokens(Build(doc, nil))
	assert.Equal(t, []token{
		{MathBeginName(false), 2, 3},
		{MathEndName(false), 4, 5},
	}, got)
}

func TestBuildSkipsCode(t *testing.T) {
	doc := buffer.New("`$x$` $y$")
	got := tokens(Build(doc, []ranges.Range{{From: 0, To: 5}}))
	assert.Equal(t, []token{
		{MathBeginName(false), 6, 7},
		{MathEndName(false), 8, 9},
	}, got)
}

func TestBuildCalloutInheritance(t *testing.T) {
	doc := buffer.New("> [!tip]\n> > nested\n> back\n\n> plain\n> > [!note] inner")
	tree := Build(doc, nil)

	names := make([]string, 0)
	for _, line := range tree.Root.Children {
		names = append(names, line.Name)
	}
	assert.Equal(t, []string{
		LineName(1, true),
		LineName(2, true),
		LineName(1, true),
		PlainLineName,
		LineName(1, false),
		LineName(2, false),
	}, names)
}

func TestBuildUnterminatedBlock(t *testing.T) {
	doc := buffer.New("$$\nx\n")
	assert.Equal(t, []token{{MathBeginName(true), 0, 2}}, tokens(Build(doc, nil)))
}

func TestLineNodeAt(t *testing.T) {
	doc := buffer.New("ab\n> c\n")
	tree := Build(doc, nil)

	assert.Equal(t, PlainLineName, tree.LineNodeAt(0).Name)
	assert.Equal(t, PlainLineName, tree.LineNodeAt(2).Name)
	assert.Equal(t, LineName(1, false), tree.LineNodeAt(3).Name)
	assert.Equal(t, 7, tree.LineNodeAt(7).From)
	assert.Nil(t, tree.LineNodeAt(-1))
	assert.Nil(t, (*Tree)(nil).LineNodeAt(0))
}

func TestIterateSkipChildren(t *testing.T) {
	tree := Build(buffer.New("> $a$"), nil)
	visited := 0
	tree.Iterate(0, tree.Length, func(n *Node) bool {
		visited++
		return false
	})
	assert.Equal(t, 1, visited)
}
