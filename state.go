package calloutmath

import (
	"fmt"

	"github.com/riverfjs/calloutmath-go/internal/buffer"
	"github.com/riverfjs/calloutmath-go/internal/deco"
	"github.com/riverfjs/calloutmath-go/internal/parser"
	"github.com/riverfjs/calloutmath-go/internal/quote"
	"github.com/riverfjs/calloutmath-go/internal/syntax"
	"github.com/riverfjs/calloutmath-go/internal/widget"
)

// EditorState is one immutable document revision together with its syntax
// tree and quote index. Edits produce a new EditorState; the quote index is
// rebuilt from scratch for every revision.
type EditorState struct {
	revision int
	doc      *buffer.Doc
	tree     *syntax.Tree
	quotes   *quote.Index
}

// NewState analyzes text as revision 1.
func NewState(text string) *EditorState {
	return newState(1, text)
}

func newState(revision int, text string) *EditorState {
	doc := buffer.New(text)
	tree := syntax.Build(doc, parser.CodeRegions([]byte(text)))
	return &EditorState{
		revision: revision,
		doc:      doc,
		tree:     tree,
		quotes:   quote.Analyze(doc, tree),
	}
}

// Update returns the next revision holding text. s is not modified.
func (s *EditorState) Update(text string) *EditorState {
	return newState(s.revision+1, text)
}

// Revision returns the revision number.
func (s *EditorState) Revision() int {
	return s.revision
}

// Text returns the document text.
func (s *EditorState) Text() string {
	return s.doc.String()
}

// Quotes returns the quote intervals in document order.
func (s *EditorState) Quotes() []QuoteInterval {
	return s.quotes.Intervals()
}

// QuoteAt returns the quote covering pos.
func (s *EditorState) QuoteAt(pos int) (QuoteInfo, bool) {
	return s.quotes.At(pos)
}

// CorrectAt corrects src with the quote owning a widget that starts at pos.
func (s *EditorState) CorrectAt(pos int, src MathSource) MathSource {
	return s.quotes.CorrectAt(pos, src)
}

// CorrectWidget strips quote markers from a block widget built elsewhere,
// before it is displayed. Corrected and inline widgets are returned as is,
// and so is every widget when the settings disable multi-line correction.
func (s *EditorState) CorrectWidget(w MathWidget, opts ...Option) MathWidget {
	return w.CorrectIfNecessary(s.corrector(opts))
}

// WidgetsEqual compares two widgets after correcting their sources, so a
// widget does not re-render only because its twin was corrected first.
// Without multi-line correction the raw sources are compared.
func (s *EditorState) WidgetsEqual(a, b MathWidget, opts ...Option) bool {
	return widget.EqCorrected(a, b, s.corrector(opts))
}

// corrector returns s, or nil when multi-line correction is off.
func (s *EditorState) corrector(opts []Option) widget.Corrector {
	settings := applyOptions(opts...).Settings
	if settings != nil && !settings.MultiLine {
		return nil
	}
	return s
}

// Decorations computes the decorations of this revision for a view.
func (s *EditorState) Decorations(opts ...Option) []Decoration {
	options := applyOptions(opts...)

	in := deco.Input{
		Doc:         s.doc,
		Tree:        s.tree,
		Quotes:      s.quotes,
		Visible:     options.Visible,
		Selection:   options.Selection,
		Focus:       options.Focus,
		LivePreview: options.LivePreview,
		Settings:    options.Settings,
		Classes:     options.Classes,
		Factory:     options.Factory,
	}

	decorations := deco.Compute(in)
	if options.Borders {
		decorations = append(decorations, deco.Borders(in)...)
		deco.Sort(decorations)
	}
	return decorations
}

// Workspace keeps the current EditorState of every open document, so
// read paths holding only a document ID and revision can reach the quote
// index. It is not safe for concurrent use; hosts drive it from their
// single UI thread.
type Workspace struct {
	docs map[string]*EditorState
}

// NewWorkspace creates an empty Workspace.
func NewWorkspace() *Workspace {
	return &Workspace{
		docs: make(map[string]*EditorState),
	}
}

// Open starts tracking a document, replacing any previous state for id.
func (w *Workspace) Open(id, text string) *EditorState {
	s := NewState(text)
	w.docs[id] = s
	return s
}

// Apply replaces the document text with a new revision.
func (w *Workspace) Apply(id, text string) (*EditorState, error) {
	prev, ok := w.docs[id]
	if !ok {
		return nil, fmt.Errorf("apply %q: %w", id, ErrUnknownDocument)
	}
	next := prev.Update(text)
	w.docs[id] = next
	return next, nil
}

// Close stops tracking a document.
func (w *Workspace) Close(id string) {
	delete(w.docs, id)
}

// State returns the current state of a document.
func (w *Workspace) State(id string) (*EditorState, error) {
	s, ok := w.docs[id]
	if !ok {
		return nil, fmt.Errorf("state %q: %w", id, ErrUnknownDocument)
	}
	return s, nil
}

// Lookup returns the state of a document at a given revision. Only the
// current revision is kept.
func (w *Workspace) Lookup(id string, revision int) (*EditorState, error) {
	s, err := w.State(id)
	if err != nil {
		return nil, err
	}
	if s.revision != revision {
		return nil, fmt.Errorf("lookup %q@%d (current %d): %w", id, revision, s.revision, ErrStaleRevision)
	}
	return s, nil
}

// QuoteAt returns the quote covering pos in a document revision. A missing
// document or revision means no quote information.
func (w *Workspace) QuoteAt(id string, revision, pos int) (QuoteInfo, bool) {
	s, err := w.Lookup(id, revision)
	if err != nil {
		Logger.Printf("no quote index: %v", err)
		return QuoteInfo{}, false
	}
	return s.QuoteAt(pos)
}
