package cco

import "github.com/hashicorp/hcl/v2/hclsyntax"

// traversalRoot is called for every ScopeTraversalExpr encountered while
// walking an expression tree. It returns the (possibly unchanged, possibly
// replaced) expression that should take that node's place.
//
// Each rewriter returns a node to substitute instead of mutating the matched
// traversal itself; walk stores that node into the containing node's field,
// so the containing nodes of the walked tree are modified in place (stored
// expressions are copied with cloneExpr before being rewritten). Both observe the same contract spec prescribes for
// the mutate-in-place design (§9): the caller always gets back the fully
// rewritten tree, and repeated application is idempotent once no node
// matches the rewriter's precondition.
type traversalRoot func(*hclsyntax.ScopeTraversalExpr) hclsyntax.Expression

// walk recursively rewrites every ScopeTraversalExpr reachable from e,
// assigning each replacement back into its containing node in place. Node kinds without nested
// expressions (literals, anonymous symbols, and the like) are returned
// unchanged.
func walk(e hclsyntax.Expression, f traversalRoot) hclsyntax.Expression {
	switch n := e.(type) {
	case *hclsyntax.ScopeTraversalExpr:
		return f(n)

	case *hclsyntax.RelativeTraversalExpr:
		n.Source = walk(n.Source, f)
		return n

	case *hclsyntax.TemplateExpr:
		for i, p := range n.Parts {
			n.Parts[i] = walk(p, f)
		}
		return n

	case *hclsyntax.TemplateWrapExpr:
		n.Wrapped = walk(n.Wrapped, f)
		return n

	case *hclsyntax.TupleConsExpr:
		for i, x := range n.Exprs {
			n.Exprs[i] = walk(x, f)
		}
		return n

	case *hclsyntax.ObjectConsExpr:
		for i := range n.Items {
			n.Items[i].KeyExpr = walk(n.Items[i].KeyExpr, f)
			n.Items[i].ValueExpr = walk(n.Items[i].ValueExpr, f)
		}
		return n

	case *hclsyntax.ObjectConsKeyExpr:
		// A bare identifier key (ForceNonLiteral == false wrapping a
		// single-step traversal) is always interpreted as a literal string
		// by the expression library, never resolved as a variable — so it
		// must never be rewritten. Only a parenthesized, explicitly
		// dynamic key is a real reference.
		if n.ForceNonLiteral {
			n.Wrapped = walk(n.Wrapped, f)
		}
		return n

	case *hclsyntax.FunctionCallExpr:
		for i, a := range n.Args {
			n.Args[i] = walk(a, f)
		}
		return n

	case *hclsyntax.ConditionalExpr:
		n.Condition = walk(n.Condition, f)
		n.TrueResult = walk(n.TrueResult, f)
		n.FalseResult = walk(n.FalseResult, f)
		return n

	case *hclsyntax.BinaryOpExpr:
		n.LHS = walk(n.LHS, f)
		n.RHS = walk(n.RHS, f)
		return n

	case *hclsyntax.UnaryOpExpr:
		n.Val = walk(n.Val, f)
		return n

	case *hclsyntax.ParenthesesExpr:
		n.Expression = walk(n.Expression, f)
		return n

	case *hclsyntax.IndexExpr:
		n.Collection = walk(n.Collection, f)
		n.Key = walk(n.Key, f)
		return n

	case *hclsyntax.SplatExpr:
		n.Source = walk(n.Source, f)
		n.Each = walk(n.Each, f)
		return n

	case *hclsyntax.ForExpr:
		n.CollExpr = walk(n.CollExpr, f)
		if n.KeyExpr != nil {
			n.KeyExpr = walk(n.KeyExpr, f)
		}
		n.ValExpr = walk(n.ValExpr, f)
		if n.CondExpr != nil {
			n.CondExpr = walk(n.CondExpr, f)
		}
		return n

	default:
		// LiteralValueExpr, AnonSymbolExpr, and any other leaf/unsupported
		// node: nothing to rewrite.
		return e
	}
}

// hasReservedPrefix reports whether name already identifies a synthesized
// substitution, i.e. rewriting has already been applied to it.
func hasReservedPrefix(name string) bool {
	return len(name) >= len(ReservedPrefix) && name[:len(ReservedPrefix)] == ReservedPrefix
}
