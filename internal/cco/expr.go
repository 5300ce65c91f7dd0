package cco

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
)

// synthRange is used for every AST node the Builder and the rewriters
// synthesize. These nodes have no position in any source document, so an
// empty range is all that's meaningful; nothing downstream inspects it for
// more than diagnostics formatting.
var synthRange = hcl.Range{}

// traversalExpr builds a single-step traversal expression referencing name,
// e.g. a reference to a substitution identifier.
func traversalExpr(name Identifier) hclsyntax.Expression {
	return &hclsyntax.ScopeTraversalExpr{
		Traversal: hcl.Traversal{
			hcl.TraverseRoot{Name: string(name), SrcRange: synthRange},
		},
		SrcRange: synthRange,
	}
}

// objectKeyExpr builds the key expression for a bare object-literal member
// named key, matching how hclsyntax parses unquoted object keys (as a
// traversal wrapped so it is always interpreted as a literal string, never
// resolved as a variable reference).
func objectKeyExpr(key string) hclsyntax.Expression {
	return &hclsyntax.ObjectConsKeyExpr{
		Wrapped: &hclsyntax.ScopeTraversalExpr{
			Traversal: hcl.Traversal{
				hcl.TraverseRoot{Name: key, SrcRange: synthRange},
			},
			SrcRange: synthRange,
		},
	}
}

// rollupExpr builds the object-literal expression for a Block or Virtual
// addressable: one member per child identifier of node, in the child's
// insertion order, each value a reference to that child's substitution
// identifier.
//
// skipNil controls what happens when a child has no addressable of its
// own (child.value == nil). A Block rollup's direct children are always
// an Attribute or DefaultAttribute synthesized moments earlier in the
// same Phase 2 pass, so skipNil is false there and a nil value indicates
// a Builder invariant violation worth panicking on. A Virtual rollup's
// children are top-level path-tree nodes that may have been created only
// as waypoints for a deeper group (e.g. a "data x a b" group with 3+
// labels leaves "x.a" with no addressable of its own) — skipNil is true
// there, and such a child is simply omitted from the object, the way a
// value-less child is left out of its parent group.
func rollupExpr(node *pathNode, table *AddressableTable, skipNil bool) hclsyntax.Expression {
	order := node.ChildOrder()
	items := make([]hclsyntax.ObjectConsItem, 0, len(order))
	for _, id := range order {
		child := node.children[id]
		if child.value == nil {
			if skipNil {
				continue
			}
			panic("cco: rollup child without an addressable: " + string(id))
		}
		subst := table.Get(*child.value).Subst
		items = append(items, hclsyntax.ObjectConsItem{
			KeyExpr:   objectKeyExpr(string(id)),
			ValueExpr: traversalExpr(subst),
		})
	}
	return &hclsyntax.ObjectConsExpr{Items: items, SrcRange: synthRange}
}
