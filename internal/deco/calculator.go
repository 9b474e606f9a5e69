package deco

import (
	"strings"

	"github.com/riverfjs/calloutmath-go/internal/buffer"
	"github.com/riverfjs/calloutmath-go/internal/quote"
	"github.com/riverfjs/calloutmath-go/internal/ranges"
	"github.com/riverfjs/calloutmath-go/internal/syntax"
	"github.com/riverfjs/calloutmath-go/internal/types"
	"github.com/riverfjs/calloutmath-go/internal/widget"
)

// Input is everything one decoration pass reads. Nothing is fetched from
// ambient state.
type Input struct {
	Doc    *buffer.Doc
	Tree   *syntax.Tree
	Quotes *quote.Index

	// Visible lists the rendered ranges; nil means the whole document.
	Visible []ranges.Range
	// Selection holds the selection and cursor ranges.
	Selection []ranges.Range
	// Focus reports whether the view has focus. Without focus the
	// selection is ignored.
	Focus bool
	// LivePreview is false in source mode, which gets no decorations.
	LivePreview bool

	Settings *types.Settings
	Classes  *types.Classes
	Factory  widget.Factory
}

func (in *Input) selection() []ranges.Range {
	if !in.Focus {
		return nil
	}
	return in.Selection
}

func (in *Input) visible() []ranges.Range {
	if in.Visible == nil {
		return []ranges.Range{{From: 0, To: in.Doc.Length()}}
	}
	return ranges.Merge(in.Visible)
}

func (in *Input) settings() *types.Settings {
	if in.Settings == nil {
		return types.DefaultSettings()
	}
	return in.Settings
}

func (in *Input) classes() *types.Classes {
	if in.Classes == nil {
		return types.DefaultClasses()
	}
	return in.Classes
}

func (in *Input) factory() widget.Factory {
	if in.Factory == nil {
		return widget.DefaultFactory
	}
	return in.Factory
}

// mathSpan is a delimited math region: [Begin, End) including the
// delimiters, [ContentBegin, ContentEnd) the source between them.
type mathSpan struct {
	Begin, ContentBegin, ContentEnd, End int
	Block                                bool
}

// Compute returns the math and quote decorations for the visible ranges,
// sorted. Math opened but not closed within a visible range is dropped.
func Compute(in Input) []Decoration {
	if !in.LivePreview || in.Doc == nil || !in.settings().Callout {
		return nil
	}

	c := &calculator{
		in:       &in,
		sel:      in.selection(),
		settings: in.settings(),
		classes:  in.classes(),
		factory:  in.factory(),
	}
	for _, vr := range in.visible() {
		var open *mathSpan
		in.Tree.Iterate(vr.From, vr.To, func(n *syntax.Node) bool {
			switch {
			case syntax.IsMathBegin(n.Name):
				open = &mathSpan{
					Begin:        n.From,
					ContentBegin: n.To,
					Block:        syntax.IsMathBlock(n.Name),
				}
			case open != nil && syntax.IsMathEnd(n.Name):
				open.ContentEnd = n.From
				open.End = n.To
				c.span(*open)
				open = nil
			}
			return true
		})
	}

	Sort(c.out)
	return c.out
}

type calculator struct {
	in       *Input
	sel      []ranges.Range
	settings *types.Settings
	classes  *types.Classes
	factory  widget.Factory
	out      []Decoration
}

func (c *calculator) span(s mathSpan) {
	doc := c.in.Doc
	src := types.RawMath(doc.SliceString(s.ContentBegin, s.ContentEnd))

	// One offset back: a quote interval closes on the glyph that starts
	// the next line, which would otherwise claim math opened before it.
	info, inQuote := c.in.Quotes.At(s.ContentBegin - 1)
	if inQuote && c.settings.MultiLine {
		src = info.Correct(src)
	}

	from, to := s.ContentBegin, s.ContentEnd
	if s.Block && strings.HasPrefix(src.Text, "\n") {
		src = src.WithText(src.Text[1:])
		from++
	}
	if s.Block && strings.HasSuffix(src.Text, "\n") {
		src = src.WithText(src.Text[:len(src.Text)-1])
		to--
	}
	w := c.factory.NewMath(src, s.Block).WithPos(from, to)

	overlap := ranges.AnyOverlap(c.sel, s.Begin, s.End)

	if inQuote && (info.IsBaseCallout || overlap) {
		c.quoteMarks(info, s)
	}

	switch {
	case !inQuote || !info.IsBaseCallout:
		// Plain blockquotes keep the host's own rendering.
	case overlap:
		if s.Block {
			c.out = append(c.out, Decoration{
				Kind: Widget,
				From: s.End,
				To:   s.End,
				Math: &w,
				Side: 1,
			})
		}
	default:
		c.out = append(c.out, Decoration{
			Kind:  Replace,
			From:  s.Begin,
			To:    s.End,
			Math:  &w,
			Block: s.Block,
			Side:  1,
		})
	}
}

// quoteMarks restores the quote styling of every line the span covers:
// a line class plus a mark on each of the first info.Level glyphs.
func (c *calculator) quoteMarks(info quote.Info, s mathSpan) {
	doc := c.in.Doc
	first := doc.LineAt(s.Begin)
	last := doc.LineAt(s.End)

	for n := first.Number; n <= last.Number; n++ {
		line := doc.Line(n)
		c.out = append(c.out, Decoration{
			Kind:  Line,
			From:  line.From,
			To:    line.From,
			Class: c.classes.QuoteLine,
		})

		transparent := !ranges.AnyOverlap(c.sel, line.From, line.To)
		glyphs := syntax.ScanMarkers(line.Text)
		if len(glyphs) > info.Level {
			glyphs = glyphs[:info.Level]
		}
		for i, g := range glyphs {
			class := c.classes.Formatting
			switch {
			case transparent && i == 0:
				class = c.classes.Transparent
			case transparent:
				class = c.classes.Border
			}
			pos := line.From + g
			c.out = append(c.out, Decoration{
				Kind:  Mark,
				From:  pos,
				To:    pos + 1,
				Class: class,
			})
		}
	}

	// Hide the math styling the host puts on a closing line that holds
	// nothing but glyphs before the delimiter.
	if s.ContentEnd > last.From && onlyMarkers(doc.SliceString(last.From, s.ContentEnd)) {
		c.out = append(c.out, Decoration{
			Kind:  Mark,
			From:  last.From,
			To:    s.ContentEnd,
			Class: c.classes.CancelMath,
		})
	}
}

func onlyMarkers(prefix string) bool {
	for _, part := range strings.Split(prefix, ">") {
		if strings.TrimSpace(part) != "" {
			return false
		}
	}
	return true
}
