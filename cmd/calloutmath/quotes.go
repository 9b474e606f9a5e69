package main

import (
	"github.com/spf13/cobra"

	"github.com/riverfjs/calloutmath-go"
)

type fileQuotes struct {
	File   string                      `json:"file" yaml:"file"`
	Quotes []calloutmath.QuoteInterval `json:"quotes" yaml:"quotes"`
}

func newQuotesCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "quotes [file|glob|-]...",
		Short: "Print the quote intervals of each document",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{"-"}
			}
			files, err := expandInputs(args)
			if err != nil {
				return err
			}

			out := make([]fileQuotes, 0, len(files))
			readErr := eachInput(cmd, files, func(name, text string) {
				out = append(out, fileQuotes{File: name, Quotes: calloutmath.NewState(text).Quotes()})
			})
			if err := c.emit(cmd, out); err != nil {
				return err
			}
			return readErr
		},
	}
}
