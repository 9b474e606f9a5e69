package main

import (
	"bytes"
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/riverfjs/calloutmath-go"
)

const calloutDoc = "> [!note]\n> $$\n> x\n> $$"

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	err := cmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, dir, name, text string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(text), 0o644))
	return path
}

type decoJSON struct {
	File        string `json:"file"`
	Decorations []struct {
		Kind string `json:"kind"`
		From int    `json:"from"`
		To   int    `json:"to"`
		Math *struct {
			Source struct {
				Text string `json:"text"`
			} `json:"source"`
		} `json:"math"`
	} `json:"decorations"`
}

func kinds(d decoJSON) map[string]int {
	out := map[string]int{}
	for _, x := range d.Decorations {
		out[x.Kind]++
	}
	return out
}

func TestDecorateJSON(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "a.md", calloutDoc)

	out, err := run(t, "", "decorate", "--format", "json", path)
	require.NoError(t, err)

	var got []decoJSON
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 1)
	assert.Equal(t, path, got[0].File)
	assert.Equal(t, 1, kinds(got[0])["replace"])

	for _, d := range got[0].Decorations {
		if d.Kind == "replace" {
			require.NotNil(t, d.Math)
			assert.Equal(t, "x", d.Math.Source.Text)
			assert.Equal(t, 12, d.From)
		}
	}
}

func TestDecorateSelection(t *testing.T) {
	out, err := run(t, calloutDoc, "decorate", "--format", "json", "-s", "16")
	require.NoError(t, err)

	var got []decoJSON
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "-", got[0].File)
	assert.Equal(t, 0, kinds(got[0])["replace"])
	assert.Equal(t, 1, kinds(got[0])["widget"])

	out, err = run(t, calloutDoc, "decorate", "--format", "json", "-s", "16", "--no-focus")
	require.NoError(t, err)
	got = nil
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, 1, kinds(got[0])["replace"])
}

func TestDecorateGlob(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.md", calloutDoc)
	writeFile(t, dir, "sub/b.md", "> $a$")
	writeFile(t, dir, "sub/c.txt", calloutDoc)

	out, err := run(t, "", "decorate", "--format", "json", filepath.Join(dir, "**", "*.md"))
	require.NoError(t, err)

	var got []decoJSON
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Len(t, got, 2)

	_, err = run(t, "", "decorate", filepath.Join(dir, "*.nothing"))
	assert.Error(t, err)
}

func TestDecorateConfigFile(t *testing.T) {
	dir := t.TempDir()
	doc := writeFile(t, dir, "a.md", calloutDoc)
	cfg := writeFile(t, dir, "calloutmath.yaml", "callout: false\n")

	out, err := run(t, "", "decorate", "--format", "json", "--config", cfg, doc)
	require.NoError(t, err)

	var got []decoJSON
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 1)
	assert.Empty(t, got[0].Decorations)
}

func TestDecorateEnv(t *testing.T) {
	t.Setenv("CALLOUTMATH_MULTI_LINE", "false")

	out, err := run(t, calloutDoc, "decorate", "--format", "json")
	require.NoError(t, err)

	var got []decoJSON
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	for _, d := range got[0].Decorations {
		if d.Kind == "replace" {
			assert.Equal(t, "> x\n> ", d.Math.Source.Text)
		}
	}
}

func TestDecorateBadSelection(t *testing.T) {
	_, err := run(t, calloutDoc, "decorate", "-s", "a:b")
	assert.Error(t, err)
}

func TestQuotesYAML(t *testing.T) {
	out, err := run(t, "a\n> [!tip]\n> > b\nc", "quotes")
	require.NoError(t, err)

	var got []struct {
		File   string `yaml:"file"`
		Quotes []struct {
			From int `yaml:"from"`
			To   int `yaml:"to"`
			Info struct {
				Level         int  `yaml:"level"`
				IsBaseCallout bool `yaml:"is_base_callout"`
			} `yaml:"info"`
		} `yaml:"quotes"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	require.Len(t, got, 1)
	require.Len(t, got[0].Quotes, 2)
	assert.Equal(t, 2, got[0].Quotes[0].From)
	assert.Equal(t, 1, got[0].Quotes[0].Info.Level)
	assert.True(t, got[0].Quotes[1].Info.IsBaseCallout)
	assert.Equal(t, 2, got[0].Quotes[1].Info.Level)
}

func TestCorrect(t *testing.T) {
	out, err := run(t, "> > a\n> > b", "correct", "--level", "2")
	require.NoError(t, err)
	assert.Equal(t, "a\nb", out)

	dir := t.TempDir()
	in := writeFile(t, dir, "m.txt", "> a\n> b")
	dest := filepath.Join(dir, "out.txt")
	_, err = run(t, "", "correct", "-o", dest, in)
	require.NoError(t, err)
	b, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "a\nb", string(b))

	_, err = run(t, "", "correct", "--level", "-1")
	assert.Error(t, err)
}

func TestOutputFile(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "out.yaml")
	out, err := run(t, calloutDoc, "quotes", "-o", dest)
	require.NoError(t, err)
	assert.Empty(t, out)

	b, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Contains(t, string(b), "is_base_callout: true")
}

func TestUnknownFormat(t *testing.T) {
	_, err := run(t, calloutDoc, "quotes", "--format", "xml")
	assert.Error(t, err)
}

func TestUnreadableInputIsSkipped(t *testing.T) {
	var logs bytes.Buffer
	prev := calloutmath.Logger
	calloutmath.SetLogger(log.New(&logs, "", 0))
	defer calloutmath.SetLogger(prev)

	dir := t.TempDir()
	doc := writeFile(t, dir, "a.md", calloutDoc)

	out, err := run(t, "", "quotes", "--format", "json", doc, dir)
	assert.Error(t, err)
	assert.Contains(t, logs.String(), "skipping "+dir)

	var got []json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(firstJSON(out)), &got))
	assert.Len(t, got, 1)
}

// firstJSON drops cobra's trailing error line from combined output.
func firstJSON(out string) string {
	if i := strings.LastIndex(out, "]"); i >= 0 {
		return out[:i+1]
	}
	return out
}
