package widget

import (
	"github.com/riverfjs/calloutmath-go/internal/latex"
	"github.com/riverfjs/calloutmath-go/internal/types"
)

// MathWidget is a rendered math region handed to the host renderer.
// From and To locate the math source it was built from.
type MathWidget struct {
	Source  types.MathSource `json:"source" yaml:"source"`
	Block   bool             `json:"block" yaml:"block"`
	From    int              `json:"from" yaml:"from"`
	To      int              `json:"to" yaml:"to"`
	Preview string           `json:"preview,omitempty" yaml:"preview,omitempty"`
}

// WithPos returns w positioned over [from, to).
func (w MathWidget) WithPos(from, to int) MathWidget {
	w.From = from
	w.To = to
	return w
}

// Eq reports whether w and other display the same math.
func (w MathWidget) Eq(other MathWidget) bool {
	return w.Block == other.Block && w.Source.Text == other.Source.Text
}

// Corrector strips quote markers from math found at a document offset.
type Corrector interface {
	CorrectAt(pos int, src types.MathSource) types.MathSource
}

// CorrectIfNecessary returns w with its source corrected by c. Inline
// widgets and already corrected widgets are returned as they are.
func (w MathWidget) CorrectIfNecessary(c Corrector) MathWidget {
	if !w.Block || w.Source.Corrected || c == nil {
		return w
	}
	w.Source = c.CorrectAt(w.From, w.Source)
	return w
}

// EqCorrected compares a and b after correcting block widgets with c, so a
// raw widget and its corrected twin compare equal.
func EqCorrected(a, b MathWidget, c Corrector) bool {
	if a.Block && b.Block {
		a = a.CorrectIfNecessary(c)
		b = b.CorrectIfNecessary(c)
	}
	return a.Eq(b)
}

// Factory builds renderable math widgets.
type Factory interface {
	NewMath(source types.MathSource, block bool) MathWidget
}

// FactoryFunc adapts a function to Factory.
type FactoryFunc func(source types.MathSource, block bool) MathWidget

// NewMath calls f.
func (f FactoryFunc) NewMath(source types.MathSource, block bool) MathWidget {
	return f(source, block)
}

var previewer = latex.NewParser()

// DefaultFactory builds widgets previewing their source as Unicode text.
var DefaultFactory Factory = FactoryFunc(func(source types.MathSource, block bool) MathWidget {
	return MathWidget{
		Source:  source,
		Block:   block,
		Preview: previewer.Convert(source.Text),
	}
})

// BorderWidget stands in for a nested quote glyph.
type BorderWidget struct {
	Glyph string `json:"glyph" yaml:"glyph"`
	Class string `json:"class" yaml:"class"`
}

// NewBorder creates the border widget shown for a '>' glyph.
func NewBorder(class string) BorderWidget {
	return BorderWidget{Glyph: ">", Class: class}
}
