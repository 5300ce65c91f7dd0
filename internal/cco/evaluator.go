package cco

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"
)

// EvalErrorKind distinguishes the evaluation-time failure classes of §7.
type EvalErrorKind int

const (
	// EvalErrorOther wraps an error surfaced unchanged from the
	// underlying expression evaluator (anything but an undefined
	// variable).
	EvalErrorOther EvalErrorKind = iota
	// EvalErrorUndefinedVariable is a user-facing unknown identifier: an
	// undefined variable whose name does not carry the reserved prefix.
	EvalErrorUndefinedVariable
	// EvalErrorMissingDependency is an undefined cco__... variable with
	// no matching addressable in the table.
	EvalErrorMissingDependency
	// EvalErrorCycle is a cco__... name that was already on the resolve
	// stack when re-demanded.
	EvalErrorCycle
)

// EvalError is returned by EvaluateInContext for every evaluation-time
// failure. Name carries the offending variable for the Undefined/Missing
// kinds; Path carries the offending addressable's path for a Cycle error,
// when it could be resolved.
type EvalError struct {
	Kind EvalErrorKind
	Name string
	Path Path
	Err  error
}

func (e *EvalError) Error() string {
	switch e.Kind {
	case EvalErrorUndefinedVariable:
		return fmt.Sprintf("undefined variable %q", e.Name)
	case EvalErrorMissingDependency:
		return fmt.Sprintf("missing internal dependency %q", e.Name)
	case EvalErrorCycle:
		if e.Path != nil {
			return fmt.Sprintf("cyclic reference through %q", e.Path.String())
		}
		return fmt.Sprintf("cyclic reference through %q", e.Name)
	default:
		return fmt.Sprintf("evaluation failed: %s", e.Err)
	}
}

func (e *EvalError) Unwrap() error { return e.Err }

// frame is one entry of the evaluator's explicit work stack: a pending
// demand for name's value, to be obtained by (re-)attempting expr.
type frame struct {
	name Identifier
	expr hclsyntax.Expression
}

// outputName is the bookkeeping name of the root demand. It is never
// bound into the variable context; once its frame reduces, the loop
// returns straight to the caller.
const outputName = Identifier("output")

// EvaluateInContext evaluates root against core, resolving cco__...
// substitution identifiers on demand: a depth-first, memoizing,
// cycle-safe resolver driven by an explicit stack rather than
// host-stack recursion, so reference chains are bounded only by
// available memory.
//
// root is first rewritten with AttributeReferenceRewriter only; self has
// no meaning at this level, since it is never applied outside a stored
// block/attribute expression.
func EvaluateInContext(core *BuiltCore, root hclsyntax.Expression) (Value, error) {
	root = RewriteAttributeReferences(root, core.Table)

	ctx := &hcl.EvalContext{Variables: map[string]cty.Value{}}
	stack := []frame{{name: outputName, expr: root}}

	for len(stack) > 0 {
		top := stack[len(stack)-1]

		if name, ok := firstUndefinedVariable(top.expr, ctx); ok {
			if !hasReservedPrefix(name) {
				return nil, &EvalError{Kind: EvalErrorUndefinedVariable, Name: name}
			}
			if onStack(stack, Identifier(name)) {
				err := &EvalError{Kind: EvalErrorCycle, Name: name}
				if path, ok := pathForSubst(core.Table, Identifier(name)); ok {
					err.Path = path
				}
				return nil, err
			}

			idx, found := core.Table.GetBySubst(Identifier(name))
			if !found {
				return nil, &EvalError{Kind: EvalErrorMissingDependency, Name: name}
			}
			addr := core.Table.Get(idx)
			blockPath := addr.Path[:len(addr.Path)-1]

			demanded := cloneExpr(addr.Expression)
			demanded = RewriteSelf(demanded, blockPath)
			demanded = RewriteAttributeReferences(demanded, core.Table)

			stack = append(stack, frame{name: Identifier(name), expr: demanded})
			continue
		}

		val, diags := top.expr.Value(ctx)
		if diags.HasErrors() {
			return nil, &EvalError{Kind: EvalErrorOther, Err: diags}
		}

		stack = stack[:len(stack)-1]
		if len(stack) == 0 {
			return ValueTreeOf(core.Table, top.expr, ctx)
		}
		ctx.Variables[string(top.name)] = val
	}

	// Unreachable: the loop above only exits via an explicit return.
	return nil, fmt.Errorf("cco: evaluator stack emptied without a result")
}

// firstUndefinedVariable reports the name of the first free variable in
// expr (via its own Variables() accounting, hclsyntax's means of
// enumerating an expression's referenced traversal roots) not yet bound
// in ctx. This proactively detects an unresolved dependency before
// attempting evaluation, since the underlying HCL evaluator does not
// expose a distinctly typed undefined-variable error.
func firstUndefinedVariable(expr hclsyntax.Expression, ctx *hcl.EvalContext) (string, bool) {
	for _, tr := range expr.Variables() {
		root, ok := tr[0].(hcl.TraverseRoot)
		if !ok {
			continue
		}
		if _, bound := ctx.Variables[root.Name]; !bound {
			return root.Name, true
		}
	}
	return "", false
}

// onStack reports whether name already has a pending frame.
func onStack(stack []frame, name Identifier) bool {
	for _, f := range stack {
		if f.name == name {
			return true
		}
	}
	return false
}

// pathForSubst resolves subst back to its addressable's path, for
// cycle-error reporting.
func pathForSubst(table *AddressableTable, subst Identifier) (Path, bool) {
	idx, ok := table.GetBySubst(subst)
	if !ok {
		return nil, false
	}
	return table.Get(idx).Path, true
}
