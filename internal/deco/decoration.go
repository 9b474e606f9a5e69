package deco

import (
	"fmt"
	"sort"

	"github.com/riverfjs/calloutmath-go/internal/widget"
)

// Kind is the type of a decoration instruction.
type Kind int

const (
	// Replace hides [From, To) behind a widget.
	Replace Kind = iota
	// Widget inserts a widget at From without hiding text.
	Widget
	// Mark styles [From, To) with Class.
	Mark
	// Line styles the line starting at From with Class.
	Line
)

// String returns the string representation of Kind.
func (k Kind) String() string {
	switch k {
	case Replace:
		return "replace"
	case Widget:
		return "widget"
	case Mark:
		return "mark"
	case Line:
		return "line"
	default:
		return "unknown"
	}
}

// MarshalText encodes the kind by name.
func (k Kind) MarshalText() ([]byte, error) {
	if k < Replace || k > Line {
		return nil, fmt.Errorf("unknown decoration kind %d", int(k))
	}
	return []byte(k.String()), nil
}

// Decoration is one instruction to the rendering layer.
type Decoration struct {
	Kind   Kind                 `json:"kind" yaml:"kind"`
	From   int                  `json:"from" yaml:"from"`
	To     int                  `json:"to" yaml:"to"`
	Class  string               `json:"class,omitempty" yaml:"class,omitempty"`
	Math   *widget.MathWidget   `json:"math,omitempty" yaml:"math,omitempty"`
	Border *widget.BorderWidget `json:"border,omitempty" yaml:"border,omitempty"`

	// Block marks display-math replacements.
	Block bool `json:"block,omitempty" yaml:"block,omitempty"`
	// Side orders widgets sharing a position; positive sits after the text.
	Side int `json:"side,omitempty" yaml:"side,omitempty"`
	// InclusiveEnd lets the replacement absorb a cursor at To. Compute
	// never sets it, so a block replacement ending at the document end
	// cannot swallow the trailing position.
	InclusiveEnd bool `json:"inclusive_end,omitempty" yaml:"inclusive_end,omitempty"`
}

// rank puts line decorations before everything else at the same offset.
var rank = map[Kind]int{Line: 0, Replace: 1, Mark: 2, Widget: 3}

// Sort orders ds by start, kind, then end.
func Sort(ds []Decoration) {
	sort.SliceStable(ds, func(i, j int) bool {
		a, b := ds[i], ds[j]
		if a.From != b.From {
			return a.From < b.From
		}
		if rank[a.Kind] != rank[b.Kind] {
			return rank[a.Kind] < rank[b.Kind]
		}
		return a.To < b.To
	})
}
