package cco

import "github.com/hashicorp/hcl/v2/hclsyntax"

// Kind tags the four ways an Addressable can arise.
type Kind int

const (
	// KindAttribute is a literal attribute directly under a data block.
	KindAttribute Kind = iota
	// KindDefaultAttribute is inherited from a matching type block.
	KindDefaultAttribute
	// KindBlock is the object formed by a data block's contents.
	KindBlock
	// KindVirtual is a synthesized rollup of a top-level identifier
	// grouping multiple data blocks that share no single Block addressable.
	KindVirtual
)

// tag returns the kind-tag used inside a substitution identifier:
// cco__<tag>_<path...>.
func (k Kind) tag() string {
	switch k {
	case KindAttribute:
		return "attribute"
	case KindDefaultAttribute:
		return "defaultattribute"
	case KindBlock:
		return "block"
	case KindVirtual:
		return "virtual"
	default:
		panic("cco: unknown Kind")
	}
}

func (k Kind) String() string {
	switch k {
	case KindAttribute:
		return "Attribute"
	case KindDefaultAttribute:
		return "DefaultAttribute"
	case KindBlock:
		return "Block"
	case KindVirtual:
		return "Virtual"
	default:
		return "Unknown"
	}
}

// Addressable is a named, path-indexed expression in the unified namespace.
type Addressable struct {
	Path       Path
	Kind       Kind
	Expression hclsyntax.Expression
	Subst      Identifier
}

// AddressableTable is an ordered list of Addressables, backed by a PathTree
// for lookup. Addressables never share a Path (enforced by insert, which is
// the table's only mutator).
type AddressableTable struct {
	entries []Addressable
	tree    *PathTree
}

// NewAddressableTable returns an empty table with a fresh backing PathTree.
func NewAddressableTable() *AddressableTable {
	return &AddressableTable{tree: NewPathTree()}
}

// Tree exposes the backing PathTree for rewriters and diagnostics.
func (t *AddressableTable) Tree() *PathTree { return t.tree }

// Get returns the addressable at idx.
func (t *AddressableTable) Get(idx AddressableIndex) *Addressable { return &t.entries[idx] }

// Len returns the number of addressables in the table.
func (t *AddressableTable) Len() int { return len(t.entries) }

// GetBySubst returns the addressable whose substitution identifier is
// subst, scanning the table. Returns false if none matches.
//
// This is a linear scan: it is used only off the evaluator's hot path (a
// handful of times per evaluation, to resolve one demanded substitution
// variable), not while iterating the whole table.
func (t *AddressableTable) GetBySubst(subst Identifier) (AddressableIndex, bool) {
	for i := range t.entries {
		if t.entries[i].Subst == subst {
			return AddressableIndex(i), true
		}
	}
	return 0, false
}

// insert locates or creates the node at path. If a value is already present
// there, insert returns the existing index and ok=false (a collision). Else
// it allocates a new addressable, appends it to the table, assigns it to
// the node, and returns its new index with ok=true.
func (t *AddressableTable) insert(kind Kind, path Path, expr hclsyntax.Expression) (AddressableIndex, bool) {
	node := t.tree.GetOrInsert(path)
	if node.value != nil {
		return *node.value, false
	}
	idx := AddressableIndex(len(t.entries))
	t.entries = append(t.entries, Addressable{
		Path:       path,
		Kind:       kind,
		Expression: expr,
		Subst:      substName(kind.tag(), path),
	})
	node.value = &idx
	return idx, true
}
