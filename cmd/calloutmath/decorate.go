package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/riverfjs/calloutmath-go"
)

type fileDecorations struct {
	File        string                   `json:"file" yaml:"file"`
	Decorations []calloutmath.Decoration `json:"decorations" yaml:"decorations"`
}

func newDecorateCmd(c *cli) *cobra.Command {
	var (
		selections []string
		noFocus    bool
		borders    bool
		utf16      bool
		source     bool
	)

	cmd := &cobra.Command{
		Use:   "decorate [file|glob|-]...",
		Short: "Print the decorations of each document",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.load()
			if err != nil {
				return err
			}
			sel, err := parseRanges(selections)
			if err != nil {
				return err
			}
			if len(args) == 0 {
				args = []string{"-"}
			}
			files, err := expandInputs(args)
			if err != nil {
				return err
			}

			opts := []calloutmath.Option{
				calloutmath.WithSettings(&cfg.Settings),
				calloutmath.WithClasses(&cfg.Classes),
				calloutmath.WithSelection(sel...),
				calloutmath.WithFocus(!noFocus),
				calloutmath.WithBorders(borders),
				calloutmath.WithLivePreview(!source),
			}

			out := make([]fileDecorations, 0, len(files))
			readErr := eachInput(cmd, files, func(name, text string) {
				ds := calloutmath.Render(text, opts...)
				if utf16 {
					ds = calloutmath.ToUTF16(text, ds)
				}
				out = append(out, fileDecorations{File: name, Decorations: ds})
			})
			if err := c.emit(cmd, out); err != nil {
				return err
			}
			return readErr
		},
	}

	flags := cmd.Flags()
	flags.StringArrayVarP(&selections, "selection", "s", nil, "selection range as from:to or a cursor offset (repeatable)")
	flags.BoolVar(&noFocus, "no-focus", false, "render as an unfocused view, ignoring the selection")
	flags.BoolVar(&borders, "borders", false, "include blockquote border decorations")
	flags.BoolVar(&utf16, "utf16", false, "report offsets in UTF-16 code units")
	flags.BoolVar(&source, "source-mode", false, "render as source mode")
	return cmd
}

// parseRanges parses "from:to" or "pos" values into ranges.
func parseRanges(values []string) ([]calloutmath.Range, error) {
	var out []calloutmath.Range
	for _, value := range values {
		fromStr, toStr, ok := strings.Cut(value, ":")
		if !ok {
			toStr = fromStr
		}
		from, err := strconv.Atoi(strings.TrimSpace(fromStr))
		if err != nil {
			return nil, fmt.Errorf("bad selection %q: %w", value, err)
		}
		to, err := strconv.Atoi(strings.TrimSpace(toStr))
		if err != nil {
			return nil, fmt.Errorf("bad selection %q: %w", value, err)
		}
		if to < from {
			from, to = to, from
		}
		out = append(out, calloutmath.Range{From: from, To: to})
	}
	return out, nil
}
