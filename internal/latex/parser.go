package latex

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Parser is a small recursive-descent LaTeX to Unicode converter used for
// plain-text math previews. Unknown commands are kept as written.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Convert converts latex and trims surrounding whitespace.
func (p *Parser) Convert(latex string) string {
	return strings.TrimSpace(p.Parse(latex))
}

// Parse converts latex to its Unicode approximation.
func (p *Parser) Parse(latex string) string {
	var out strings.Builder
	for i := 0; i < len(latex); {
		switch c := latex[i]; c {
		case '\\':
			s, next := p.handleCommand(latex, i)
			out.WriteString(s)
			i = next
		case '{':
			inner, next := p.parseBlock(latex, i)
			out.WriteString(p.Parse(inner))
			i = next
		case '}':
			i++
		case '^', '_':
			arg, next := p.parseArgument(latex, i+1)
			conv := p.Parse(arg)
			if c == '^' {
				out.WriteString(MakeSuperscript(conv))
			} else {
				out.WriteString(MakeSubscript(conv))
			}
			i = next
		case '&':
			out.WriteByte(' ')
			i++
		case '\n':
			out.WriteByte(' ')
			i++
		default:
			out.WriteByte(c)
			i++
		}
	}
	return out.String()
}

var commandRegex = regexp.MustCompile(`^\\([a-zA-Z]+|.)`)

// parseCommand returns the command name starting at start and the index
// after it.
func (p *Parser) parseCommand(latex string, start int) (string, int) {
	m := commandRegex.FindStringSubmatch(latex[start:])
	if m == nil {
		return "", start + 1
	}
	return m[1], start + len(m[0])
}

func (p *Parser) handleCommand(latex string, index int) (string, int) {
	name, next := p.parseCommand(latex, index)
	if name == "" {
		return "\\", next
	}

	switch name {
	case "frac", "dfrac", "tfrac":
		num, i := p.parseArgument(latex, next)
		den, i := p.parseArgument(latex, i)
		return MakeFraction(p.Parse(num), p.Parse(den)), i

	case "sqrt":
		opt, i := p.parseOptional(latex, next)
		rad, i := p.parseArgument(latex, i)
		return MakeSqrt(p.Parse(opt), p.Parse(rad)), i

	case "text", "textrm", "textit", "textbf", "mbox":
		arg, i := p.parseArgument(latex, next)
		return arg, i

	case "mathrm", "mathit", "mathbf", "mathsf", "mathtt", "operatorname", "boldsymbol":
		arg, i := p.parseArgument(latex, next)
		return p.Parse(arg), i

	case "left", "right", "big", "Big", "bigg", "Bigg":
		return p.parseDelimiter(latex, next)

	case "begin", "end":
		_, i := p.parseArgument(latex, next)
		return "", i

	case "\\":
		return " ", next
	}

	if s, ok := spacing[name]; ok {
		return s, next
	}
	if s, ok := escapes[name]; ok {
		return s, next
	}
	if s, ok := Symbols[name]; ok {
		return s, next
	}
	return latex[index:next], next
}

// parseBlock returns the content of the braced group opening at start and
// the index after its closing brace. An unclosed group runs to the end.
func (p *Parser) parseBlock(latex string, start int) (string, int) {
	depth := 0
	for i := start; i < len(latex); i++ {
		switch latex[i] {
		case '\\':
			i++
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return latex[start+1 : i], i + 1
			}
		}
	}
	return latex[start+1:], len(latex)
}

// parseArgument returns one macro argument: a braced group, a command, or
// a single character.
func (p *Parser) parseArgument(latex string, start int) (string, int) {
	i := p.skipSpaces(latex, start)
	if i >= len(latex) {
		return "", i
	}
	switch latex[i] {
	case '{':
		return p.parseBlock(latex, i)
	case '\\':
		_, next := p.parseCommand(latex, i)
		return latex[i:next], next
	}
	_, size := utf8.DecodeRuneInString(latex[i:])
	return latex[i : i+size], i + size
}

// parseOptional returns the content of a [...] argument at start, if any.
func (p *Parser) parseOptional(latex string, start int) (string, int) {
	i := p.skipSpaces(latex, start)
	if i >= len(latex) || latex[i] != '[' {
		return "", start
	}
	end := strings.IndexByte(latex[i:], ']')
	if end < 0 {
		return "", start
	}
	return latex[i+1 : i+end], i + end + 1
}

func (p *Parser) skipSpaces(latex string, start int) int {
	for start < len(latex) && (latex[start] == ' ' || latex[start] == '\n') {
		start++
	}
	return start
}

// parseDelimiter renders the delimiter following \left, \right and the
// \big family. "." is the empty delimiter.
func (p *Parser) parseDelimiter(latex string, index int) (string, int) {
	i := p.skipSpaces(latex, index)
	if i >= len(latex) {
		return "", i
	}
	switch latex[i] {
	case '.':
		return "", i + 1
	case '\\':
		return p.handleCommand(latex, i)
	}
	_, size := utf8.DecodeRuneInString(latex[i:])
	return latex[i : i+size], i + size
}

// MakeSuperscript renders text raised, using Unicode superscripts when
// every character has one.
func MakeSuperscript(text string) string {
	return script(text, Superscripts, "^")
}

// MakeSubscript renders text lowered, using Unicode subscripts when every
// character has one.
func MakeSubscript(text string) string {
	return script(text, Subscripts, "_")
}

func script(text string, table map[rune]rune, marker string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	var out strings.Builder
	for _, r := range text {
		m, ok := table[r]
		if !ok {
			return marker + maybeParenthesize(text)
		}
		out.WriteRune(m)
	}
	return out.String()
}

// MakeFraction renders numerator/denominator.
func MakeFraction(numerator, denominator string) string {
	return maybeParenthesize(strings.TrimSpace(numerator)) + "/" + maybeParenthesize(strings.TrimSpace(denominator))
}

// MakeSqrt renders a root of radicand with an optional index.
func MakeSqrt(index, radicand string) string {
	var sign string
	switch index = strings.TrimSpace(index); index {
	case "", "2":
		sign = "√"
	case "3":
		sign = "∛"
	case "4":
		sign = "∜"
	default:
		sign = MakeSuperscript(index) + "√"
	}
	return sign + maybeParenthesize(strings.TrimSpace(radicand))
}

func maybeParenthesize(text string) string {
	if utf8.RuneCountInString(text) <= 1 || !strings.ContainsAny(text, " +-*/=,") {
		return text
	}
	return "(" + text + ")"
}
