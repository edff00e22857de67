package validate

import (
	"fmt"
	"sort"
	"strings"
)

// =============================================================================
// Invalid column results
// =============================================================================

// InvalidKind classifies why a set of column references failed a check.
type InvalidKind int

const (
	// KindMissingColumn means the column is absent from at least one
	// input dataset.
	KindMissingColumn InvalidKind = iota
	// KindInvalidTableAlias means a reference is qualified with a table
	// alias other than "l" or "r".
	KindInvalidTableAlias
	// KindInvalidSideSuffix means a column carries a side marker other
	// than "_l" or "_r". Reserved for suffix-specific diagnostics.
	KindInvalidSideSuffix
)

// String returns the identifier for the kind.
func (k InvalidKind) String() string {
	switch k {
	case KindMissingColumn:
		return "missing_column"
	case KindInvalidTableAlias:
		return "invalid_table_alias"
	case KindInvalidSideSuffix:
		return "invalid_side_suffix"
	default:
		return "unknown"
	}
}

// InvalidSet is one check's finding: the kind of failure and the
// offending identifiers. An InvalidSet with no columns is the valid
// sentinel and must not be surfaced.
type InvalidSet struct {
	Kind    InvalidKind `json:"kind"`
	Columns []string    `json:"columns"`
}

// IsValid reports whether the set actually contains findings.
func (s InvalidSet) IsValid() bool {
	return len(s.Columns) > 0
}

// columnsAsText renders the offending identifiers for diagnostics.
func (s InvalidSet) columnsAsText() string {
	quoted := make([]string, len(s.Columns))
	for i, c := range s.Columns {
		quoted[i] = "`" + c + "`"
	}
	return strings.Join(quoted, ", ")
}

// plural returns "s" when more than one column is listed.
func (s InvalidSet) plural() string {
	if len(s.Columns) > 1 {
		return "s"
	}
	return ""
}

// Message renders the human-readable description for the finding.
func (s InvalidSet) Message() string {
	switch s.Kind {
	case KindMissingColumn:
		return fmt.Sprintf(
			"The following column%s are missing from one or more of your input dataset(s):\n%s",
			s.plural(), s.columnsAsText())
	case KindInvalidTableAlias:
		return fmt.Sprintf(
			"The following column reference%s contain invalid table aliases (only `l.` and `r.` are valid):\n%s",
			s.plural(), s.columnsAsText())
	case KindInvalidSideSuffix:
		return fmt.Sprintf(
			"The following column reference%s contain invalid side suffixes (only `_l` and `_r` are valid):\n%s",
			s.plural(), s.columnsAsText())
	default:
		return fmt.Sprintf("Invalid column%s:\n%s", s.plural(), s.columnsAsText())
	}
}

// =============================================================================
// Checks
// =============================================================================

// CheckFunc inspects a list of column references and returns the subset
// that fails, tagged by failure kind. Checks are independent and may run
// in any order; each receives its own copy of the reference list.
type CheckFunc func(refs []ColumnRef) InvalidSet

// MissingColumnCheck returns a check that canonicalizes every reference
// (drop the table qualifier, strip one _l/_r suffix) and flags names not
// present in every input dataset.
func MissingColumnCheck(catalog *SchemaCatalog) CheckFunc {
	return func(refs []ColumnRef) InvalidSet {
		names := make(map[string]struct{}, len(refs))
		for i := range refs {
			refs[i].Table = ""
			names[CanonicalName(refs[i])] = struct{}{}
		}

		var missing []string
		for name := range names {
			if !catalog.Contains(name) {
				missing = append(missing, name)
			}
		}
		sort.Strings(missing)
		return InvalidSet{Kind: KindMissingColumn, Columns: missing}
	}
}

// TableAliasCheck flags references whose table qualifier is present but
// not exactly "l" or "r". Unqualified references are never flagged.
func TableAliasCheck(refs []ColumnRef) InvalidSet {
	var invalid []string
	for _, ref := range refs {
		if ref.Table == "" {
			continue
		}
		if ref.Table != "l" && ref.Table != "r" {
			invalid = append(invalid, ref.Raw)
		}
	}
	return InvalidSet{Kind: KindInvalidTableAlias, Columns: invalid}
}
