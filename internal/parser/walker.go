package parser

import (
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/riverfjs/calloutmath-go/internal/ranges"
)

// regionWalker collects code regions while walking a goldmark AST.
type regionWalker struct {
	source  []byte
	regions []ranges.Range
}

func newRegionWalker(source []byte) *regionWalker {
	return &regionWalker{
		source:  source,
		regions: make([]ranges.Range, 0),
	}
}

// Walk visits one AST node.
func (w *regionWalker) Walk(node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}

	switch n := node.(type) {
	case *ast.FencedCodeBlock, *ast.CodeBlock:
		w.addLines(n.Lines())
		return ast.WalkSkipChildren, nil

	case *ast.CodeSpan:
		// Spans carry their content as Text children. Widen by one byte on
		// each side to cover the backticks.
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			if t, ok := c.(*ast.Text); ok {
				w.add(t.Segment.Start-1, t.Segment.Stop+1)
			}
		}
		return ast.WalkSkipChildren, nil
	}

	return ast.WalkContinue, nil
}

func (w *regionWalker) addLines(lines *text.Segments) {
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		w.add(seg.Start, seg.Stop)
	}
}

func (w *regionWalker) add(from, to int) {
	if from < 0 {
		from = 0
	}
	if to > len(w.source) {
		to = len(w.source)
	}
	if from < to {
		w.regions = append(w.regions, ranges.Range{From: from, To: to})
	}
}

// Result returns the merged regions.
func (w *regionWalker) Result() []ranges.Range {
	return ranges.Merge(w.regions)
}
