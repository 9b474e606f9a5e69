package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// cli holds the persistent flags and the configuration they feed.
type cli struct {
	v          *viper.Viper
	configFile string
	format     string
	output     string
}

func newRootCmd() *cobra.Command {
	c := &cli{v: viper.New()}

	root := &cobra.Command{
		Use:   "calloutmath",
		Short: "Compute Live Preview decorations for math inside callouts",
		Long: `calloutmath analyzes Markdown documents the way an editor's Live Preview
sees them and prints the decorations that render math inside callouts.

Examples:
  calloutmath decorate notes.md
  calloutmath decorate 'vault/**/*.md' --selection 12:12
  calloutmath quotes notes.md --format json
  calloutmath correct --level 2 < math.txt`,
		SilenceUsage:      true,
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&c.configFile, "config", "", "config file (default ./calloutmath.yaml)")
	flags.StringVar(&c.format, "format", "yaml", "output format: yaml or json")
	flags.StringVarP(&c.output, "output", "o", "", "write output to this file instead of stdout")
	flags.Bool("callout", true, "decorate math inside callouts")
	flags.Bool("multi-line", true, "strip quote markers from multi-line math")
	flags.Bool("show-setup-notice", true, "log a notice when no widget factory was installed")

	bind(c.v, "callout", flags.Lookup("callout"))
	bind(c.v, "multi_line", flags.Lookup("multi-line"))
	bind(c.v, "show_setup_notice", flags.Lookup("show-setup-notice"))

	root.AddCommand(
		newDecorateCmd(c),
		newQuotesCmd(c),
		newCorrectCmd(c),
	)
	return root
}
