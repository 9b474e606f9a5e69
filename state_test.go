package calloutmath

import (
	"bytes"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const calloutDoc = "> [!note]\n> $$\n> x\n> $$"

func TestStateQuotes(t *testing.T) {
	s := NewState("plain\n> [!tip]\n> > nested\nafter")
	assert.Equal(t, 1, s.Revision())

	quotes := s.Quotes()
	require.Len(t, quotes, 2)
	assert.Equal(t, QuoteInterval{From: 6, To: 15, Info: NewQuoteInfo(1, true)}, quotes[0])
	assert.Equal(t, QuoteInterval{From: 15, To: 26, Info: NewQuoteInfo(2, true)}, quotes[1])

	info, ok := s.QuoteAt(20)
	require.True(t, ok)
	assert.Equal(t, 2, info.Level)

	_, ok = s.QuoteAt(2)
	assert.False(t, ok)
}

func TestStateUpdateRebuilds(t *testing.T) {
	s := NewState(calloutDoc)
	next := s.Update("no quotes")

	assert.Equal(t, 2, next.Revision())
	assert.Empty(t, next.Quotes())
	assert.Len(t, s.Quotes(), 1, "previous revision is untouched")
	assert.Equal(t, calloutDoc, s.Text())
}

func TestStateCorrectWidget(t *testing.T) {
	s := NewState(calloutDoc)

	raw := MathWidget{Source: RawMath("> x"), Block: true, From: 15, To: 18}
	got := s.CorrectWidget(raw)
	assert.Equal(t, "x", got.Source.Text)
	assert.True(t, got.Source.Corrected)
	assert.Equal(t, got, s.CorrectWidget(got), "correcting twice changes nothing")

	inline := MathWidget{Source: RawMath("> x"), From: 15, To: 18}
	assert.Equal(t, inline, s.CorrectWidget(inline))

	assert.True(t, s.WidgetsEqual(raw, got))
	assert.False(t, raw.Eq(got))
}

func TestStateCorrectWidgetFollowsMultiLine(t *testing.T) {
	s := NewState(calloutDoc)
	off := WithSettings(&Settings{Callout: true, MultiLine: false})

	raw := MathWidget{Source: RawMath("> x"), Block: true, From: 15, To: 18}
	assert.Equal(t, raw, s.CorrectWidget(raw, off))
	assert.False(t, s.WidgetsEqual(raw, s.CorrectWidget(raw), off))

	for _, d := range s.Decorations(off) {
		if d.Kind == DecorationReplace {
			assert.Equal(t, *d.Math, s.CorrectWidget(*d.Math, off), "both paths leave the source raw")
		}
	}
}

func TestStateDecorations(t *testing.T) {
	s := NewState(calloutDoc)

	var replaced int
	for _, d := range s.Decorations() {
		if d.Kind == DecorationReplace {
			replaced++
			require.NotNil(t, d.Math)
			assert.Equal(t, "x", d.Math.Source.Text)
		}
	}
	assert.Equal(t, 1, replaced)

	assert.Nil(t, s.Decorations(WithLivePreview(false)))

	withBorders := s.Decorations(WithBorders(true))
	assert.Greater(t, len(withBorders), len(s.Decorations()))
}

func TestWorkspace(t *testing.T) {
	var buf bytes.Buffer
	prev := Logger
	SetLogger(log.New(&buf, "", 0))
	defer SetLogger(prev)

	w := NewWorkspace()
	s := w.Open("a.md", calloutDoc)

	info, ok := w.QuoteAt("a.md", s.Revision(), 12)
	require.True(t, ok)
	assert.True(t, info.IsBaseCallout)

	next, err := w.Apply("a.md", "text")
	require.NoError(t, err)
	assert.Equal(t, 2, next.Revision())

	_, err = w.Lookup("a.md", 1)
	assert.ErrorIs(t, err, ErrStaleRevision)

	_, ok = w.QuoteAt("a.md", 1, 12)
	assert.False(t, ok)
	assert.Contains(t, buf.String(), "stale document revision")

	_, err = w.Apply("b.md", "x")
	assert.ErrorIs(t, err, ErrUnknownDocument)

	w.Close("a.md")
	_, err = w.State("a.md")
	assert.ErrorIs(t, err, ErrUnknownDocument)
}
