package ranges

import "sort"

// Range is an offset interval. Selections use it as a closed interval when
// tested for overlap; everything else treats To as exclusive.
type Range struct {
	From int `json:"from" yaml:"from"`
	To   int `json:"to" yaml:"to"`
}

// Empty reports whether r covers no offsets (a bare cursor).
func (r Range) Empty() bool {
	return r.From >= r.To
}

// HasOverlap reports whether r touches [start, to]. A cursor sitting on
// either edge counts as touching.
func HasOverlap(r Range, start, to int) bool {
	return r.From <= to && r.To >= start
}

// AnyOverlap reports whether any of rs touches [start, to].
func AnyOverlap(rs []Range, start, to int) bool {
	for _, r := range rs {
		if HasOverlap(r, start, to) {
			return true
		}
	}
	return false
}

// Contains reports whether pos lies in one of rs, ends excluded.
func Contains(rs []Range, pos int) bool {
	for _, r := range rs {
		if r.From <= pos && pos < r.To {
			return true
		}
	}
	return false
}

// Clip returns the part of r within bounds, and false if nothing is left.
func Clip(r, bounds Range) (Range, bool) {
	if r.From < bounds.From {
		r.From = bounds.From
	}
	if r.To > bounds.To {
		r.To = bounds.To
	}
	if r.From > r.To {
		return Range{}, false
	}
	return r, true
}

// Merge sorts rs and joins ranges that overlap or abut.
func Merge(rs []Range) []Range {
	if len(rs) == 0 {
		return nil
	}
	sorted := make([]Range, len(rs))
	copy(sorted, rs)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].From < sorted[j].From
	})

	merged := sorted[:1]
	for _, r := range sorted[1:] {
		last := &merged[len(merged)-1]
		if r.From <= last.To {
			if r.To > last.To {
				last.To = r.To
			}
			continue
		}
		merged = append(merged, r)
	}
	return merged
}
