package cco

import "strings"

// Path is a non-empty ordered sequence of Identifiers addressing a position
// in the configuration namespace.
type Path []Identifier

// Equal reports whether p and other address the same position.
func (p Path) Equal(other Path) bool {
	if len(p) != len(other) {
		return false
	}
	for i := range p {
		if p[i] != other[i] {
			return false
		}
	}
	return true
}

// Append returns a new Path with ids appended. The receiver is not mutated.
func (p Path) Append(ids ...Identifier) Path {
	out := make(Path, 0, len(p)+len(ids))
	out = append(out, p...)
	out = append(out, ids...)
	return out
}

// String renders p as a dot-joined identifier sequence, for diagnostics.
func (p Path) String() string {
	parts := make([]string, len(p))
	for i, id := range p {
		parts[i] = string(id)
	}
	return strings.Join(parts, ".")
}

// substName deterministically synthesizes the substitution identifier for
// an addressable of the given kind tag at path p: cco__<tag>_<p[0]>__<p[1]>__....
func substName(tag string, p Path) Identifier {
	parts := make([]string, len(p))
	for i, id := range p {
		parts[i] = string(id)
	}
	return Identifier(ReservedPrefix + tag + "_" + strings.Join(parts, "__"))
}
