package main

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/spf13/cobra"

	"github.com/denfren/cco/internal/config"
	"github.com/denfren/cco/internal/output"
)

func newEvalCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "eval <expression>",
		Short: "evaluate an expression against the documents in --dir",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, diags := build(cfg.Dir)
			if diags.HasErrors() {
				return diags
			}

			expr, diags := hclsyntax.ParseExpression([]byte(args[0]), "<expression>", hcl.InitialPos)
			if diags.HasErrors() {
				return diags
			}

			val, err := doc.EvaluateInContext(expr)
			if err != nil {
				return err
			}

			rendered, err := output.Render(val, cfg.Format, cfg.Indent)
			if err != nil {
				return err
			}
			fmt.Fprintln(os.Stdout, string(rendered))
			return nil
		},
	}
}
