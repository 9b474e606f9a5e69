package parser

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"

	"github.com/riverfjs/calloutmath-go/internal/ranges"
)

// StandardOptions is the goldmark configuration used to find code regions.
var StandardOptions = []goldmark.Option{
	goldmark.WithExtensions(
		extension.GFM, // tables, strikethrough, task lists, autolinks
	),
	goldmark.WithParserOptions(
		parser.WithAutoHeadingID(),
	),
}

// ParseAST parses source into a goldmark AST without walking it.
func ParseAST(source []byte) ast.Node {
	md := goldmark.New(StandardOptions...)
	return md.Parser().Parse(text.NewReader(source))
}

// CodeRegions returns the merged byte ranges of code block content and
// inline code spans in source. Math delimiters inside them are literal.
func CodeRegions(source []byte) []ranges.Range {
	node := ParseAST(source)

	walker := newRegionWalker(source)
	_ = ast.Walk(node, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		return walker.Walk(n, entering)
	})

	return walker.Result()
}
