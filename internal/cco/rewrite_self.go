package cco

import (
	"math/big"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"
)

// RewriteSelf expands every occurrence of the "self" traversal inside expr,
// in the context of blockPath, the enclosing data block's label path.
//
//   - self[k], k an integer literal with 0 <= k < len(blockPath): becomes
//     the string literal blockPath[k], consuming the variable and the
//     index (two traversal elements).
//   - bare self (any other shape, including self[k] out of range or with a
//     non-literal index): becomes the traversal
//     blockPath[0].blockPath[1]....blockPath[n-1], consuming only the
//     variable, with any trailing operators preserved after it.
//
// self only has meaning inside a data/type block's own expressions; it
// must never be applied to a root expression handed to the evaluator
// directly.
func RewriteSelf(expr hclsyntax.Expression, blockPath Path) hclsyntax.Expression {
	return walk(expr, func(n *hclsyntax.ScopeTraversalExpr) hclsyntax.Expression {
		root, ok := n.Traversal[0].(hcl.TraverseRoot)
		if !ok || root.Name != "self" {
			return n
		}
		if len(blockPath) == 0 {
			// Block/Virtual rollup expressions never contain self; a bare
			// top-level data block has no enclosing label to expand into.
			return n
		}

		if len(n.Traversal) >= 2 {
			if idx, ok := n.Traversal[1].(hcl.TraverseIndex); ok {
				if i, ok := traverseIndexAsInt(idx); ok && i >= 0 && i < len(blockPath) {
					lit := &hclsyntax.LiteralValueExpr{
						Val:      cty.StringVal(string(blockPath[i])),
						SrcRange: synthRange,
					}
					rest := n.Traversal[2:]
					if len(rest) == 0 {
						return lit
					}
					return &hclsyntax.RelativeTraversalExpr{
						Source:    lit,
						Traversal: rest,
						SrcRange:  synthRange,
					}
				}
			}
		}

		steps := make(hcl.Traversal, 0, len(blockPath)+len(n.Traversal))
		steps = append(steps, hcl.TraverseRoot{Name: string(blockPath[0]), SrcRange: synthRange})
		for _, id := range blockPath[1:] {
			steps = append(steps, hcl.TraverseAttr{Name: string(id), SrcRange: synthRange})
		}
		steps = append(steps, n.Traversal[1:]...)
		return &hclsyntax.ScopeTraversalExpr{Traversal: steps, SrcRange: synthRange}
	})
}

// traverseIndexAsInt extracts an integer key from a TraverseIndex step,
// reporting false for non-numeric or non-integral keys.
func traverseIndexAsInt(idx hcl.TraverseIndex) (int, bool) {
	if idx.Key.Type() != cty.Number {
		return 0, false
	}
	bf := idx.Key.AsBigFloat()
	i64, acc := bf.Int64()
	if acc != big.Exact {
		return 0, false
	}
	return int(i64), true
}
