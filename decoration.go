package calloutmath

import (
	"github.com/riverfjs/calloutmath-go/internal/deco"
	"github.com/riverfjs/calloutmath-go/internal/quote"
	"github.com/riverfjs/calloutmath-go/internal/ranges"
	"github.com/riverfjs/calloutmath-go/internal/types"
	"github.com/riverfjs/calloutmath-go/internal/widget"
)

// Exported type aliases.
type (
	Range             = ranges.Range
	Decoration        = deco.Decoration
	DecorationKind    = deco.Kind
	QuoteInfo         = quote.Info
	QuoteInterval     = quote.Interval
	MathSource        = types.MathSource
	MathWidget        = widget.MathWidget
	MathWidgetFactory = widget.Factory
	FactoryFunc       = widget.FactoryFunc
	BorderWidget      = widget.BorderWidget
)

const (
	// DecorationReplace hides a range behind a widget.
	DecorationReplace = deco.Replace
	// DecorationWidget inserts a widget without hiding text.
	DecorationWidget = deco.Widget
	// DecorationMark styles a range.
	DecorationMark = deco.Mark
	// DecorationLine styles a line.
	DecorationLine = deco.Line
)

// DefaultFactory builds widgets previewing math as Unicode text.
var DefaultFactory = widget.DefaultFactory

// RawMath wraps math text read straight from the document.
func RawMath(text string) MathSource {
	return types.RawMath(text)
}

// NewQuoteInfo creates a QuoteInfo.
func NewQuoteInfo(level int, isBaseCallout bool) QuoteInfo {
	return quote.NewInfo(level, isBaseCallout)
}
