package validate

import (
	"regexp"
	"strings"

	"github.com/leapstack-labs/linklint/pkg/dialect"
)

// ColumnRef is a single column reference extracted from a SQL fragment.
type ColumnRef struct {
	// Name is the column identifier with quote characters removed.
	Name string

	// Table is the table qualifier ("l" in "l.first_name"), empty when
	// the reference is unqualified.
	Table string

	// Raw is the original surface form, used for diagnostics.
	Raw string
}

// Clone returns an independent copy of the reference.
func (c ColumnRef) Clone() ColumnRef {
	return ColumnRef{Name: c.Name, Table: c.Table, Raw: c.Raw}
}

// cloneRefs copies a reference list so that one check mutating its view
// cannot leak into another check's view.
func cloneRefs(refs []ColumnRef) []ColumnRef {
	out := make([]ColumnRef, len(refs))
	for i, r := range refs {
		out[i] = r.Clone()
	}
	return out
}

// sideSuffix matches exactly one trailing _l or _r side marker.
// The letter is matched case-insensitively; nothing else qualifies.
var sideSuffix = regexp.MustCompile(`(?i)_[lr]$`)

// CleanIdentifier strips delimiting quote characters from an identifier,
// covering the quote styles of every registered dialect. It preserves
// case and is idempotent.
func CleanIdentifier(name string) string {
	for _, pair := range dialect.QuotePairs() {
		if len(name) > len(pair.Start)+len(pair.End) &&
			strings.HasPrefix(name, pair.Start) && strings.HasSuffix(name, pair.End) {
			return name[len(pair.Start) : len(name)-len(pair.End)]
		}
	}
	return name
}

// CanonicalName reduces a reference to the bare column name used for
// schema membership: quote characters removed, table qualifier dropped,
// and a single trailing _l/_r side suffix stripped.
func CanonicalName(ref ColumnRef) string {
	return StripSideSuffix(CleanIdentifier(ref.Name))
}

// StripSideSuffix removes one trailing _l or _r marker, if present.
func StripSideSuffix(name string) string {
	return sideSuffix.ReplaceAllString(name, "")
}
