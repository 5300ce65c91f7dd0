package cco

import (
	"sort"

	"github.com/hashicorp/hcl/v2/hclsyntax"
)

// sortedAttributes recovers the source order of a body's attributes.
// hclsyntax.Body.Attributes is a map, so its range order is unspecified;
// every place that must preserve source insertion order sorts by each
// attribute's starting source position instead.
func sortedAttributes(attrs hclsyntax.Attributes) []*hclsyntax.Attribute {
	out := make([]*hclsyntax.Attribute, 0, len(attrs))
	for _, a := range attrs {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool {
		pi, pj := out[i].SrcRange.Start, out[j].SrcRange.Start
		if pi.Line != pj.Line {
			return pi.Line < pj.Line
		}
		return pi.Column < pj.Column
	})
	return out
}
