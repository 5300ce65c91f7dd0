// Package loader discovers and parses *cco.hcl documents from a working
// directory, kept deliberately separate from the core: the core never
// touches a filesystem.
package loader

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"

	"github.com/denfren/cco/internal/cco"
)

// Pattern is the glob (relative to a directory root) identifying cco
// documents. It is deliberately single-level, matching only direct
// children of dir — nested directories are never walked into.
const Pattern = "*cco.hcl"

// Load walks dir for files matching Pattern, parses each as an HCL body,
// and inserts it into a new DocumentStore in a stable, sorted-path
// order (so Builder output stays deterministic across filesystems whose
// own directory-entry order is not).
func Load(dir string) (*cco.DocumentStore, hcl.Diagnostics) {
	paths, err := discover(dir)
	if err != nil {
		return nil, hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  "Failed to discover documents",
			Detail:   err.Error(),
		}}
	}

	ds := cco.NewDocumentStore()
	var diags hcl.Diagnostics

	for _, p := range paths {
		src, err := os.ReadFile(p)
		if err != nil {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Failed to read document",
				Detail:   fmt.Sprintf("%s: %s", p, err),
			})
			continue
		}
		file, parseDiags := hclsyntax.ParseConfig(src, p, hcl.InitialPos)
		diags = append(diags, parseDiags...)
		if file == nil {
			continue
		}
		body, ok := file.Body.(*hclsyntax.Body)
		if !ok {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Unexpected document body",
				Detail:   fmt.Sprintf("%s: parsed body was not hclsyntax.Body", p),
			})
			continue
		}
		path := p
		ds.Insert(body, &path)
	}

	return ds, diags
}

// discover returns every path under dir matching Pattern, in sorted
// order.
func discover(dir string) ([]string, error) {
	fsys := os.DirFS(dir)
	matches, err := doublestar.Glob(fsys, Pattern)
	if err != nil {
		return nil, fmt.Errorf("globbing %s: %w", dir, err)
	}
	sort.Strings(matches)

	paths := make([]string, len(matches))
	for i, m := range matches {
		paths[i] = filepath.Join(dir, m)
	}
	return paths, nil
}
