package syntax

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Node names follow the token classes of Obsidian's Live Preview, joined
// with underscores, so predicates match on substrings.
const (
	PlainLineName = "line"

	calloutClass    = "HyperMD-callout"
	quoteFormatting = "formatting-quote"
	mathBegin       = "formatting-math-begin"
	mathEnd         = "formatting-math-end"
	mathBlock       = "math-block"
)

var (
	quoteLineRe  = regexp.MustCompile(`HyperMD-quote_HyperMD-quote-(?P<level>[1-9][0-9]*)`)
	quoteIndexRe = regexp.MustCompile(`formatting-quote-(?P<index>[1-9][0-9]*)`)
)

// LineName names a line node at quote level (0 for a plain line).
func LineName(level int, callout bool) string {
	if level <= 0 {
		return PlainLineName
	}
	name := fmt.Sprintf("HyperMD-quote_HyperMD-quote-%d", level)
	if callout {
		name += "_" + calloutClass
	}
	return name
}

// FormattingQuoteName names the index-th quote glyph (1-based) of a line at
// the given level.
func FormattingQuoteName(index, level int) string {
	return fmt.Sprintf("formatting_formatting-quote_formatting-quote-%d_quote_quote-%d", index, level)
}

// MathBeginName names an opening math delimiter.
func MathBeginName(block bool) string {
	return mathDelimiterName(mathBegin, block)
}

// MathEndName names a closing math delimiter.
func MathEndName(block bool) string {
	return mathDelimiterName(mathEnd, block)
}

func mathDelimiterName(kind string, block bool) string {
	name := "formatting_formatting-math_" + kind + "_keyword_math"
	if block {
		name += "_" + mathBlock
	}
	return name
}

// IsCallout reports whether name denotes a callout line.
func IsCallout(name string) bool {
	return strings.Contains(name, calloutClass)
}

// IsFormattingQuote reports whether name denotes a quote glyph.
func IsFormattingQuote(name string) bool {
	return strings.Contains(name, quoteFormatting)
}

// IsMathBegin reports whether name denotes an opening math delimiter.
func IsMathBegin(name string) bool {
	return strings.Contains(name, mathBegin)
}

// IsMathEnd reports whether name denotes a closing math delimiter.
func IsMathEnd(name string) bool {
	return strings.Contains(name, mathEnd)
}

// IsMathBlock reports whether name belongs to display ($$) math.
func IsMathBlock(name string) bool {
	return strings.Contains(name, mathBlock)
}

// QuoteLevel returns the quote level encoded in a line node name, or 0.
func QuoteLevel(name string) int {
	return submatchInt(quoteLineRe, name)
}

// FormattingQuoteIndex returns the 1-based glyph index encoded in a quote
// glyph name, or 0.
func FormattingQuoteIndex(name string) int {
	return submatchInt(quoteIndexRe, name)
}

func submatchInt(re *regexp.Regexp, name string) int {
	m := re.FindStringSubmatch(name)
	if m == nil {
		return 0
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return n
}
