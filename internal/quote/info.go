package quote

import (
	"strings"

	"github.com/riverfjs/calloutmath-go/internal/syntax"
	"github.com/riverfjs/calloutmath-go/internal/types"
)

// Info describes the quote nesting shared by every line of an interval.
type Info struct {
	Level         int  `json:"level" yaml:"level"`
	IsBaseCallout bool `json:"is_base_callout" yaml:"is_base_callout"`
}

// NewInfo creates an Info.
func NewInfo(level int, isBaseCallout bool) Info {
	if level < 0 {
		level = 0
	}
	return Info{Level: level, IsBaseCallout: isBaseCallout}
}

// Eq reports whether q and other describe the same nesting.
func (q Info) Eq(other Info) bool {
	return q.Level == other.Level && q.IsBaseCallout == other.IsBaseCallout
}

// Prefix returns the length of the quote prefix of line that correction
// strips: up to Level glyphs, each after at most 3 spaces, then one
// optional space. It is 0 at level 0 or when line is not quoted.
func (q Info) Prefix(line string) int {
	glyphs := syntax.ScanMarkers(line)
	if len(glyphs) > q.Level {
		glyphs = glyphs[:q.Level]
	}
	if len(glyphs) == 0 {
		return 0
	}
	end := glyphs[len(glyphs)-1] + 1
	if end < len(line) && line[end] == ' ' {
		end++
	}
	return end
}

// CorrectString strips the quote prefix from every line of math. Lines
// without a prefix are left alone.
func (q Info) CorrectString(math string) string {
	if q.Level <= 0 {
		return math
	}
	lines := strings.Split(math, "\n")
	for i, line := range lines {
		lines[i] = line[q.Prefix(line):]
	}
	return strings.Join(lines, "\n")
}

// Correct strips quote markers from a raw source. A corrected source is
// returned unchanged, so applying Correct twice equals applying it once.
func (q Info) Correct(src types.MathSource) types.MathSource {
	if src.Corrected {
		return src
	}
	return types.CorrectedMath(q.CorrectString(src.Text))
}
