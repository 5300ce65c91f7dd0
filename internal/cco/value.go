package cco

import (
	"fmt"
	"math/big"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"
)

// Value is a node of the Value Tree (§4.7): boolean, integer, decimal,
// string, array, or ordered object. null and any unresolved node are
// contract violations of the evaluator layer, reported as a
// *ConversionError rather than produced as a Value.
type Value interface {
	isValue()
}

// BoolValue is a Value Tree boolean.
type BoolValue bool

func (BoolValue) isValue() {}

// IntValue is a Value Tree signed 64-bit integer.
type IntValue int64

func (IntValue) isValue() {}

// FloatValue is a Value Tree 64-bit decimal.
type FloatValue float64

func (FloatValue) isValue() {}

// StringValue is a Value Tree UTF-8 string.
type StringValue string

func (StringValue) isValue() {}

// ArrayValue is an ordered Value Tree array.
type ArrayValue []Value

func (ArrayValue) isValue() {}

// ObjectValue is an ordered Value Tree object: Keys records field order,
// Fields holds the values. Keys and Fields always have matching entries.
type ObjectValue struct {
	Keys   []string
	Fields map[string]Value
}

func (ObjectValue) isValue() {}

// Get returns the value at key, and whether it is present.
func (o ObjectValue) Get(key string) (Value, bool) {
	v, ok := o.Fields[key]
	return v, ok
}

// ConversionError reports a contract violation surfaced while converting
// an evaluated expression into the Value Tree: a null result or an
// expression node that did not fully resolve. This is an invariant
// violation of the evaluator layer, not a user error, so it is reported
// rather than left to panic in production use.
type ConversionError struct {
	Detail string
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("cco: internal error: %s", e.Detail)
}

// FromCty converts a fully-known, non-null cty.Value into a Value Tree
// node. Object and map values are ordered by sorted key, since cty's
// object/map representation carries no insertion order of its own;
// ValueTreeOf recovers the builder's true insertion order wherever the
// originating expression is still available to walk.
func FromCty(v cty.Value) (Value, error) {
	if v.IsNull() {
		return nil, &ConversionError{Detail: "encountered null value"}
	}
	if !v.IsWhollyKnown() {
		return nil, &ConversionError{Detail: "encountered an unresolved expression node"}
	}

	ty := v.Type()
	switch {
	case ty == cty.Bool:
		return BoolValue(v.True()), nil

	case ty == cty.Number:
		bf := v.AsBigFloat()
		if i64, acc := bf.Int64(); acc == big.Exact {
			return IntValue(i64), nil
		}
		if bf.IsInt() {
			// A whole number that Int64 could not represent exactly is out
			// of signed-64-bit range, not fractional; round-tripping it
			// through FloatValue would silently truncate it instead.
			return nil, &ConversionError{Detail: "integer literal out of range: " + bf.Text('f', -1)}
		}
		f64, _ := bf.Float64()
		return FloatValue(f64), nil

	case ty == cty.String:
		return StringValue(v.AsString()), nil

	case ty.IsTupleType(), ty.IsListType(), ty.IsSetType():
		arr := make(ArrayValue, 0, v.LengthInt())
		for it := v.ElementIterator(); it.Next(); {
			_, ev := it.Element()
			cv, err := FromCty(ev)
			if err != nil {
				return nil, err
			}
			arr = append(arr, cv)
		}
		return arr, nil

	case ty.IsObjectType(), ty.IsMapType():
		keys := make([]string, 0)
		fields := map[string]Value{}
		for it := v.ElementIterator(); it.Next(); {
			kv, ev := it.Element()
			key := kv.AsString()
			cv, err := FromCty(ev)
			if err != nil {
				return nil, err
			}
			keys = append(keys, key)
			fields[key] = cv
		}
		sort.Strings(keys)
		return ObjectValue{Keys: keys, Fields: fields}, nil

	default:
		return nil, &ConversionError{Detail: fmt.Sprintf("unsupported value type %s", ty.FriendlyName())}
	}
}

// ValueTreeOf converts expr's value into the Value Tree under ctx,
// preserving true source/builder insertion order wherever possible.
//
// Because every Block/Virtual rollup's object-literal expression is
// still an *hclsyntax.ObjectConsExpr at conversion time (the Builder
// never reduces it), and because the evaluator's demand-driven loop
// leaves every frame's own expression unreduced too, walking expr's own
// structure recovers the exact child order the Builder recorded — a
// plain cty object value cannot, since cty has no notion of attribute
// order. A bare reference to another addressable is followed by
// re-deriving that addressable's rewritten expression (self-expansion
// plus attribute-reference rewriting are both pure functions of the
// addressable and the table) and recursing, rather than trusting the
// already-reduced cty.Value cached in ctx. Any other expression shape
// (operators, function calls, indexing, splats) fall back to ordinary
// evaluation through the expression library, at which point object-typed
// results lose their order to cty's representation.
func ValueTreeOf(table *AddressableTable, expr hclsyntax.Expression, ctx *hcl.EvalContext) (Value, error) {
	switch n := expr.(type) {
	case *hclsyntax.ObjectConsExpr:
		keys := make([]string, 0, len(n.Items))
		fields := make(map[string]Value, len(n.Items))
		for _, item := range n.Items {
			keyVal, diags := item.KeyExpr.Value(ctx)
			if diags.HasErrors() {
				return nil, &EvalError{Kind: EvalErrorOther, Err: diags}
			}
			key := keyVal.AsString()
			v, err := ValueTreeOf(table, item.ValueExpr, ctx)
			if err != nil {
				return nil, err
			}
			keys = append(keys, key)
			fields[key] = v
		}
		return ObjectValue{Keys: keys, Fields: fields}, nil

	case *hclsyntax.TupleConsExpr:
		arr := make(ArrayValue, 0, len(n.Exprs))
		for _, sub := range n.Exprs {
			v, err := ValueTreeOf(table, sub, ctx)
			if err != nil {
				return nil, err
			}
			arr = append(arr, v)
		}
		return arr, nil

	case *hclsyntax.ScopeTraversalExpr:
		if len(n.Traversal) == 1 {
			if root, ok := n.Traversal[0].(hcl.TraverseRoot); ok && hasReservedPrefix(root.Name) {
				if idx, found := table.GetBySubst(Identifier(root.Name)); found {
					addr := table.Get(idx)
					blockPath := addr.Path[:len(addr.Path)-1]
					rewritten := cloneExpr(addr.Expression)
					rewritten = RewriteSelf(rewritten, blockPath)
					rewritten = RewriteAttributeReferences(rewritten, table)
					return ValueTreeOf(table, rewritten, ctx)
				}
			}
		}
	}

	val, diags := expr.Value(ctx)
	if diags.HasErrors() {
		return nil, &EvalError{Kind: EvalErrorOther, Err: diags}
	}
	return FromCty(val)
}
