// Package cco implements the cascading configuration engine: it turns a set
// of parsed HCL document bodies into an addressable namespace and evaluates
// expressions against that namespace with on-demand, cycle-safe dependency
// resolution.
package cco

import "strings"

// Identifier is a name drawn from the restricted alphabet letters, digits,
// and underscore. Identifiers address positions in the configuration
// namespace and name substitution variables.
type Identifier string

// ReservedPrefix marks identifiers synthesized by the Builder. User
// documents that define identifiers starting with this prefix may produce
// spurious "missing dependency" diagnostics at evaluation time; this is not
// otherwise enforced.
const ReservedPrefix = "cco__"

// Sanitize maps an arbitrary label string to an Identifier by replacing each
// disallowed character with "_". Sanitize is idempotent but not injective:
// distinct inputs may sanitize to the same identifier.
func Sanitize(label string) Identifier {
	return Identifier(strings.Map(func(r rune) rune {
		if isIdentRune(r) {
			return r
		}
		return '_'
	}, label))
}

func isIdentRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z':
		return true
	case r >= 'A' && r <= 'Z':
		return true
	case r >= '0' && r <= '9':
		return true
	case r == '_':
		return true
	default:
		return false
	}
}
