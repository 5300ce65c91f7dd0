package cco

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
)

// RewriteAttributeReferences rewrites every path-style reference inside
// expr to the most-specific known substitution identifier, using table for
// lookup. A traversal whose root already starts with the reserved prefix
// is assumed already rewritten and is left alone.
func RewriteAttributeReferences(expr hclsyntax.Expression, table *AddressableTable) hclsyntax.Expression {
	tree := table.Tree()
	return walk(expr, func(n *hclsyntax.ScopeTraversalExpr) hclsyntax.Expression {
		root, ok := n.Traversal[0].(hcl.TraverseRoot)
		if !ok {
			return n
		}
		if hasReservedPrefix(root.Name) {
			return n
		}

		// Longest path: the root identifier plus each leading GetAttr step,
		// stopping at the first non-GetAttr operator (indexing, splat, ...).
		path := Path{Identifier(root.Name)}
		for _, step := range n.Traversal[1:] {
			attr, ok := step.(hcl.TraverseAttr)
			if !ok {
				break
			}
			path = append(path, Identifier(attr.Name))
		}

		idx, suffix, ok := tree.Get(path)
		if !ok {
			return n
		}
		matchedLen := len(path) - len(suffix)
		subst := table.Get(idx).Subst

		newTraversal := make(hcl.Traversal, 0, 1+len(n.Traversal)-matchedLen)
		newTraversal = append(newTraversal, hcl.TraverseRoot{Name: string(subst), SrcRange: synthRange})
		newTraversal = append(newTraversal, n.Traversal[matchedLen:]...)

		return &hclsyntax.ScopeTraversalExpr{Traversal: newTraversal, SrcRange: synthRange}
	})
}
