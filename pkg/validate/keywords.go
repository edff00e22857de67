package validate

import "strings"

// reservedKeywords are SQL keywords that can appear as the whole of a
// partial clause (a bare ELSE, a dangling WHERE). A lenient parser may
// read them as identifiers; they are never column references.
var reservedKeywords = map[string]struct{}{
	"and":     {},
	"between": {},
	"case":    {},
	"else":    {},
	"end":     {},
	"false":   {},
	"in":      {},
	"is":      {},
	"like":    {},
	"not":     {},
	"null":    {},
	"or":      {},
	"then":    {},
	"true":    {},
	"when":    {},
	"where":   {},
}

// isReservedKeyword reports whether a bare identifier is a SQL keyword.
func isReservedKeyword(name string) bool {
	_, ok := reservedKeywords[strings.ToLower(name)]
	return ok
}
