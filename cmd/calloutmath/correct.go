package main

import (
	"fmt"
	"os"

	"github.com/google/renameio"
	"github.com/spf13/cobra"

	"github.com/riverfjs/calloutmath-go"
)

func newCorrectCmd(c *cli) *cobra.Command {
	var level int

	cmd := &cobra.Command{
		Use:   "correct [file|-]",
		Short: "Strip quote markers from math source",
		Long: `correct removes up to --level quote markers from the start of every
line of its input and prints the result as plain text.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if level < 0 {
				return fmt.Errorf("level must not be negative, got %d", level)
			}
			name := "-"
			if len(args) == 1 {
				name = args[0]
			}
			text, err := readInput(cmd, name)
			if err != nil {
				return err
			}

			corrected := calloutmath.Correct(level, calloutmath.RawMath(text)).Text
			if c.output == "" {
				_, err = fmt.Fprint(cmd.OutOrStdout(), corrected)
				return err
			}
			return renameio.WriteFile(c.output, []byte(corrected), os.FileMode(0o644))
		},
	}

	cmd.Flags().IntVarP(&level, "level", "l", 1, "number of quote levels to strip")
	return cmd
}
