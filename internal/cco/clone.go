package cco

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
)

// cloneExpr deep-copies every node of e that the rewriters can mutate in
// place (object/tuple literals, operator nodes, and so on), so that
// rewriting one demand's copy of a stored addressable expression can never
// race with, or corrupt, another concurrent evaluation's copy of the same
// expression. Leaf nodes that rewriting never mutates in place (literals,
// anonymous symbols) are safe to share and are returned as-is.
func cloneExpr(e hclsyntax.Expression) hclsyntax.Expression {
	switch n := e.(type) {
	case *hclsyntax.ScopeTraversalExpr:
		cp := *n
		cp.Traversal = append(hcl.Traversal{}, n.Traversal...)
		return &cp

	case *hclsyntax.RelativeTraversalExpr:
		cp := *n
		cp.Source = cloneExpr(n.Source)
		cp.Traversal = append(hcl.Traversal{}, n.Traversal...)
		return &cp

	case *hclsyntax.TemplateExpr:
		cp := *n
		cp.Parts = make([]hclsyntax.Expression, len(n.Parts))
		for i, p := range n.Parts {
			cp.Parts[i] = cloneExpr(p)
		}
		return &cp

	case *hclsyntax.TemplateWrapExpr:
		cp := *n
		cp.Wrapped = cloneExpr(n.Wrapped)
		return &cp

	case *hclsyntax.TupleConsExpr:
		cp := *n
		cp.Exprs = make([]hclsyntax.Expression, len(n.Exprs))
		for i, x := range n.Exprs {
			cp.Exprs[i] = cloneExpr(x)
		}
		return &cp

	case *hclsyntax.ObjectConsExpr:
		cp := *n
		cp.Items = make([]hclsyntax.ObjectConsItem, len(n.Items))
		for i, item := range n.Items {
			cp.Items[i] = hclsyntax.ObjectConsItem{
				KeyExpr:   cloneExpr(item.KeyExpr),
				ValueExpr: cloneExpr(item.ValueExpr),
			}
		}
		return &cp

	case *hclsyntax.ObjectConsKeyExpr:
		cp := *n
		cp.Wrapped = cloneExpr(n.Wrapped)
		return &cp

	case *hclsyntax.FunctionCallExpr:
		cp := *n
		cp.Args = make([]hclsyntax.Expression, len(n.Args))
		for i, a := range n.Args {
			cp.Args[i] = cloneExpr(a)
		}
		return &cp

	case *hclsyntax.ConditionalExpr:
		cp := *n
		cp.Condition = cloneExpr(n.Condition)
		cp.TrueResult = cloneExpr(n.TrueResult)
		cp.FalseResult = cloneExpr(n.FalseResult)
		return &cp

	case *hclsyntax.BinaryOpExpr:
		cp := *n
		cp.LHS = cloneExpr(n.LHS)
		cp.RHS = cloneExpr(n.RHS)
		return &cp

	case *hclsyntax.UnaryOpExpr:
		cp := *n
		cp.Val = cloneExpr(n.Val)
		return &cp

	case *hclsyntax.ParenthesesExpr:
		cp := *n
		cp.Expression = cloneExpr(n.Expression)
		return &cp

	case *hclsyntax.IndexExpr:
		cp := *n
		cp.Collection = cloneExpr(n.Collection)
		cp.Key = cloneExpr(n.Key)
		return &cp

	case *hclsyntax.SplatExpr:
		cp := *n
		cp.Source = cloneExpr(n.Source)
		cp.Each = cloneExpr(n.Each)
		return &cp

	case *hclsyntax.ForExpr:
		cp := *n
		cp.CollExpr = cloneExpr(n.CollExpr)
		if n.KeyExpr != nil {
			cp.KeyExpr = cloneExpr(n.KeyExpr)
		}
		cp.ValExpr = cloneExpr(n.ValExpr)
		if n.CondExpr != nil {
			cp.CondExpr = cloneExpr(n.CondExpr)
		}
		return &cp

	default:
		return e
	}
}
