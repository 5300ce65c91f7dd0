package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/denfren/cco/internal/config"
	"github.com/denfren/cco/internal/output"
)

// newRootCmd builds the cco command tree: eval and check, sharing the
// global --dir/--format/--indent flags.
func newRootCmd() *cobra.Command {
	cfg := config.Default()

	root := &cobra.Command{
		Use:           "cco",
		Short:         "cco evaluates expressions against cascading configuration documents",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	var format string
	root.PersistentFlags().StringVarP(&cfg.Dir, "dir", "C", cfg.Dir, "directory to load *cco.hcl documents from")
	root.PersistentFlags().StringVar(&format, "format", string(cfg.Format), "output format: json or yaml")
	root.PersistentFlags().IntVar(&cfg.Indent, "indent", cfg.Indent, "number of spaces of indentation")

	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		cfg.Format = output.Format(format)
		if cfg.Format != output.FormatJSON && cfg.Format != output.FormatYAML {
			return fmt.Errorf("unknown --format %q: must be json or yaml", format)
		}
		return nil
	}

	root.AddCommand(newEvalCmd(&cfg))
	root.AddCommand(newCheckCmd(&cfg))
	return root
}
