package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/google/renameio"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/riverfjs/calloutmath-go"
)

// expandInputs resolves glob patterns to file names. A pattern matching
// nothing is an error. "-" stands for standard input.
func expandInputs(patterns []string) ([]string, error) {
	var files []string
	for _, pattern := range patterns {
		if pattern == "-" {
			files = append(files, pattern)
			continue
		}
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("bad pattern %q: %w", pattern, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("no files match %q", pattern)
		}
		files = append(files, matches...)
	}
	return files, nil
}

func readInput(cmd *cobra.Command, name string) (string, error) {
	if name == "-" {
		b, err := io.ReadAll(cmd.InOrStdin())
		return string(b), err
	}
	b, err := os.ReadFile(name)
	return string(b), err
}

// eachInput calls fn for every readable input. Unreadable inputs are
// logged and skipped; the returned error counts them.
func eachInput(cmd *cobra.Command, files []string, fn func(name, text string)) error {
	failed := 0
	for _, name := range files {
		text, err := readInput(cmd, name)
		if err != nil {
			calloutmath.Logger.Printf("skipping %s: %v", name, err)
			failed++
			continue
		}
		fn(name, text)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d inputs could not be read", failed, len(files))
	}
	return nil
}

// encode serializes v in the selected format.
func (c *cli) encode(v any) ([]byte, error) {
	switch c.format {
	case "yaml", "":
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return nil, err
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case "json":
		b, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(b, '\n'), nil
	default:
		return nil, fmt.Errorf("unknown format %q", c.format)
	}
}

// emit writes v to --output, atomically, or to the command's stdout.
func (c *cli) emit(cmd *cobra.Command, v any) error {
	data, err := c.encode(v)
	if err != nil {
		return err
	}
	if c.output == "" {
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}
	if err := renameio.WriteFile(c.output, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", c.output, err)
	}
	return nil
}
