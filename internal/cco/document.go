package cco

import "github.com/hashicorp/hcl/v2/hclsyntax"

// CcoDocument is the built, read-only unified namespace for one document
// set, exposed to callers such as the CLI and expression evaluator.
type CcoDocument struct {
	core *BuiltCore
}

// New builds a CcoDocument from ds. If ds's root structure is invalid,
// New returns the collected *ParseErrors and a nil document.
func New(ds *DocumentStore) (*CcoDocument, *ParseErrors) {
	core, errs := Build(ds)
	if errs != nil {
		return nil, errs
	}
	return &CcoDocument{core: core}, nil
}

// EvaluateInContext evaluates expression against the document's built
// core, resolving substitution identifiers on demand.
func (d *CcoDocument) EvaluateInContext(expression hclsyntax.Expression) (Value, error) {
	return EvaluateInContext(d.core, expression)
}

// GetBySubst returns the addressable whose substitution identifier is
// subst.
func (d *CcoDocument) GetBySubst(subst Identifier) (*Addressable, bool) {
	idx, ok := d.core.Table.GetBySubst(subst)
	if !ok {
		return nil, false
	}
	return d.core.Table.Get(idx), true
}

// GetMostSpecificNode resolves path against the document's Path Tree,
// returning the most-specific matching addressable and the unmatched
// suffix.
func (d *CcoDocument) GetMostSpecificNode(path Path) (addr *Addressable, suffix Path, ok bool) {
	idx, suffix, ok := d.core.Table.Tree().Get(path)
	if !ok {
		return nil, nil, false
	}
	return d.core.Table.Get(idx), suffix, true
}

// Len returns the number of addressables in the document's table.
func (d *CcoDocument) Len() int { return d.core.Table.Len() }
