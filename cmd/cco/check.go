package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/denfren/cco/internal/config"
)

func newCheckCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "validate the documents in --dir without evaluating an expression",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, diags := build(cfg.Dir)
			if diags.HasErrors() {
				return diags
			}
			fmt.Fprintln(os.Stdout, "ok")
			return nil
		},
	}
}
