package quote

import (
	"sort"

	"github.com/riverfjs/calloutmath-go/internal/buffer"
	"github.com/riverfjs/calloutmath-go/internal/syntax"
	"github.com/riverfjs/calloutmath-go/internal/types"
)

// Interval is an Info attached to the offsets [From, To).
type Interval struct {
	From int  `json:"from" yaml:"from"`
	To   int  `json:"to" yaml:"to"`
	Info Info `json:"info" yaml:"info"`
}

// Index holds the quote intervals of one document revision, ordered and
// non-overlapping. Offsets outside every interval are not quoted. A nil
// *Index is an empty index.
type Index struct {
	intervals []Interval
}

// Analyze scans doc line by line and records one interval per maximal run
// of lines with the same quote level. Whether a run is a callout is decided
// when it opens from level 0, by the name of the tree's line node there,
// and inherited until the run closes back to level 0.
func Analyze(doc *buffer.Doc, tree *syntax.Tree) *Index {
	ix := &Index{}

	var (
		level         = 0
		from          = -1
		isBaseCallout = false
	)
	for n := 1; n <= doc.Lines(); n++ {
		line := doc.Line(n)
		newLevel := len(syntax.ScanMarkers(line.Text))
		if newLevel == level {
			continue
		}

		if level > 0 {
			ix.add(from, line.From, NewInfo(level, isBaseCallout))
		}
		if level == 0 {
			isBaseCallout = calloutAt(tree, line.From)
		}

		from = line.From
		level = newLevel
	}

	if level > 0 {
		ix.add(from, doc.Length(), NewInfo(level, isBaseCallout))
	}
	return ix
}

func calloutAt(tree *syntax.Tree, pos int) bool {
	node := tree.LineNodeAt(pos)
	return node != nil && syntax.IsCallout(node.Name)
}

func (ix *Index) add(from, to int, info Info) {
	if from >= to {
		return
	}
	ix.intervals = append(ix.intervals, Interval{From: from, To: to, Info: info})
}

// At returns the Info of the interval covering pos.
func (ix *Index) At(pos int) (Info, bool) {
	if ix == nil {
		return Info{}, false
	}
	i := sort.Search(len(ix.intervals), func(i int) bool {
		return ix.intervals[i].To > pos
	})
	if i == len(ix.intervals) || ix.intervals[i].From > pos {
		return Info{}, false
	}
	return ix.intervals[i].Info, true
}

// CorrectAt corrects src with the quote covering the offset just before
// pos. Math widgets in a quote start on the glyph-side of the boundary, so
// the lookup steps back one offset.
func (ix *Index) CorrectAt(pos int, src types.MathSource) types.MathSource {
	info, ok := ix.At(pos - 1)
	if !ok {
		return src
	}
	return info.Correct(src)
}

// Intervals returns a copy of the intervals.
func (ix *Index) Intervals() []Interval {
	if ix == nil {
		return nil
	}
	out := make([]Interval, len(ix.intervals))
	copy(out, ix.intervals)
	return out
}

// Len returns the number of intervals.
func (ix *Index) Len() int {
	if ix == nil {
		return 0
	}
	return len(ix.intervals)
}
