package validate

import (
	"strings"

	"github.com/viant/parsly"
	"github.com/viant/sqlparser"
	"github.com/viant/sqlparser/expr"
	"github.com/viant/sqlparser/node"

	"github.com/leapstack-labs/linklint/pkg/dialect"
)

// Extractor parses SQL predicate fragments and collects the column
// references they contain.
//
// Parsing fails soft: a fragment that cannot be parsed yields no result
// rather than an error. Blocking rules are free-form predicate text and
// partial clauses (a bare ELSE, for example) are expected, so "cannot
// analyze" must never be confused with "invalid".
type Extractor struct {
	// Dialect normalizes dialect-specific identifier quoting before
	// parsing. Nil means the default dialect.
	Dialect *dialect.Dialect
}

// Extract parses one SQL fragment and returns every column reference in
// it. The second return value is false when the fragment could not be
// parsed; callers must skip such fragments silently.
func (e *Extractor) Extract(fragment string) (refs []ColumnRef, ok bool) {
	// A malformed fragment must never abort a validation pass.
	defer func() {
		if r := recover(); r != nil {
			refs, ok = nil, false
		}
	}()

	qualify := expr.Qualify{}
	cursor := parsly.NewCursor("", []byte(e.normalizeQuotes(fragment)), 0)
	if err := sqlparser.ParseQualify(cursor, &qualify); err != nil {
		return nil, false
	}
	if qualify.X == nil {
		return nil, false
	}

	return collectColumnRefs(qualify.X), true
}

// normalizeQuotes rewrites the dialect's identifier delimiters to the
// double-quote form the parser understands.
func (e *Extractor) normalizeQuotes(fragment string) string {
	d := e.Dialect
	if d == nil {
		d, _ = dialect.Get(dialect.DefaultName)
	}
	if d == nil || d.Quote.Start == `"` {
		return fragment
	}
	fragment = strings.ReplaceAll(fragment, d.Quote.Start, `"`)
	if d.Quote.End != d.Quote.Start {
		fragment = strings.ReplaceAll(fragment, d.Quote.End, `"`)
	}
	return fragment
}

// collectColumnRefs walks an expression tree and gathers every column
// reference node, cleaning quote characters as it goes.
func collectColumnRefs(root node.Node) []ColumnRef {
	var refs []ColumnRef
	// Identifiers nested inside a qualified selector are part of that
	// reference, not standalone columns; track them so the walk does not
	// report them twice.
	consumed := make(map[node.Node]bool)

	sqlparser.Traverse(root, func(n node.Node) bool {
		if consumed[n] {
			return true
		}
		switch actual := n.(type) {
		case *expr.Selector:
			refs = append(refs, ColumnRef{
				Name:  CleanIdentifier(sqlparser.Stringify(actual.X)),
				Table: CleanIdentifier(actual.Name),
				Raw:   strings.TrimSpace(sqlparser.Stringify(actual)),
			})
			markConsumed(actual.X, consumed)
		case *expr.Ident:
			// A lenient parse of a partial clause can read a dangling
			// keyword as an identifier; those are not column references.
			if isReservedKeyword(actual.Name) {
				return true
			}
			refs = append(refs, ColumnRef{
				Name: CleanIdentifier(actual.Name),
				Raw:  strings.TrimSpace(sqlparser.Stringify(actual)),
			})
		}
		return true
	})

	return refs
}

func markConsumed(n node.Node, consumed map[node.Node]bool) {
	if n == nil {
		return
	}
	consumed[n] = true
	sqlparser.Traverse(n, func(child node.Node) bool {
		consumed[child] = true
		return true
	})
}
