package deco

import (
	"github.com/riverfjs/calloutmath-go/internal/ranges"
	"github.com/riverfjs/calloutmath-go/internal/syntax"
	"github.com/riverfjs/calloutmath-go/internal/widget"
)

// Borders returns the quote glyph decorations for lines the selection does
// not touch: the outermost glyph turns transparent and every deeper glyph
// is replaced by a border widget.
func Borders(in Input) []Decoration {
	if !in.LivePreview || in.Doc == nil {
		return nil
	}

	sel := in.selection()
	classes := in.classes()
	border := widget.NewBorder(classes.Border)

	var out []Decoration
	for _, vr := range in.visible() {
		in.Tree.Iterate(vr.From, vr.To, func(n *syntax.Node) bool {
			if !syntax.IsFormattingQuote(n.Name) {
				return true
			}
			line := in.Doc.LineAt(n.From)
			if ranges.AnyOverlap(sel, line.From, line.To) {
				return true
			}
			d := Decoration{
				Kind:  Mark,
				From:  n.From,
				To:    n.From + 1,
				Class: classes.Transparent,
			}
			if syntax.FormattingQuoteIndex(n.Name) != 1 {
				b := border
				d.Kind = Replace
				d.Class = ""
				d.Border = &b
			}
			out = append(out, d)
			return true
		})
	}

	Sort(out)
	return out
}
