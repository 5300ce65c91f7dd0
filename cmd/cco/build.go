package main

import (
	"github.com/hashicorp/hcl/v2"

	"github.com/denfren/cco/internal/cco"
	"github.com/denfren/cco/internal/loader"
)

// build loads every *cco.hcl document under dir and constructs the
// unified document. Builder issues are surfaced as hcl.Diagnostics so
// the CLI has one uniform error-reporting path for load-time and
// parse-time failures alike.
func build(dir string) (*cco.CcoDocument, hcl.Diagnostics) {
	ds, diags := loader.Load(dir)
	if diags.HasErrors() {
		return nil, diags
	}

	doc, parseErrs := cco.New(ds)
	if parseErrs != nil {
		for _, issue := range parseErrs.All() {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  issue.Kind.String(),
				Detail:   issue.Error(),
				// Builder issues have no source position of their own, but
				// a non-nil zero Range keeps hcl.Diagnostic.Error()'s
				// "%s: %s; %s" formatting well-behaved rather than
				// formatting a nil *hcl.Range.
				Subject: &hcl.Range{},
			})
		}
		return nil, diags
	}

	return doc, diags
}
