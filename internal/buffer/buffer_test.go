package buffer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDocLines(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		lines []Line
	}{
		{
			name:  "empty",
			text:  "",
			lines: []Line{{Number: 1, From: 0, To: 0, Text: ""}},
		},
		{
			name: "two lines",
			text: "ab\ncd",
			lines: []Line{
				{Number: 1, From: 0, To: 2, Text: "ab"},
				{Number: 2, From: 3, To: 5, Text: "cd"},
			},
		},
		{
			name: "trailing newline",
			text: "> a\n",
			lines: []Line{
				{Number: 1, From: 0, To: 3, Text: "> a"},
				{Number: 2, From: 4, To: 4, Text: ""},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := New(tt.text)
			assert.Equal(t, len(tt.text), doc.Length())
			assert.Equal(t, len(tt.lines), doc.Lines())
			for _, want := range tt.lines {
				assert.Equal(t, want, doc.Line(want.Number))
			}
		})
	}
}

func TestDocLineAt(t *testing.T) {
	doc := New("ab\ncd\n")
	assert.Equal(t, 1, doc.LineAt(0).Number)
	assert.Equal(t, 1, doc.LineAt(2).Number, "line break belongs to its line")
	assert.Equal(t, 2, doc.LineAt(3).Number)
	assert.Equal(t, 3, doc.LineAt(6).Number)
	assert.Equal(t, 3, doc.LineAt(100).Number, "clamped past the end")
	assert.Equal(t, 1, doc.LineAt(-4).Number, "clamped before the start")
}

func TestDocLineClamps(t *testing.T) {
	doc := New("a\nb")
	assert.Equal(t, 1, doc.Line(0).Number)
	assert.Equal(t, 2, doc.Line(9).Number)
}

func TestDocSliceString(t *testing.T) {
	doc := New("hello world")
	assert.Equal(t, "hello", doc.SliceString(0, 5))
	assert.Equal(t, "world", doc.SliceString(6, 50))
	assert.Equal(t, "", doc.SliceString(5, 5))
	assert.Equal(t, "", doc.SliceString(7, 3))
	assert.Equal(t, "he", doc.SliceString(-3, 2))
}
