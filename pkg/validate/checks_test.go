package validate

import (
	"reflect"
	"strings"
	"testing"
)

func TestInvalidKind_String(t *testing.T) {
	tests := []struct {
		kind InvalidKind
		want string
	}{
		{KindMissingColumn, "missing_column"},
		{KindInvalidTableAlias, "invalid_table_alias"},
		{KindInvalidSideSuffix, "invalid_side_suffix"},
		{InvalidKind(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("InvalidKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestInvalidSet_IsValid(t *testing.T) {
	if (InvalidSet{Kind: KindMissingColumn}).IsValid() {
		t.Error("empty set must not count as a finding")
	}
	if !(InvalidSet{Kind: KindMissingColumn, Columns: []string{"dob"}}).IsValid() {
		t.Error("non-empty set must count as a finding")
	}
}

func TestInvalidSet_Message(t *testing.T) {
	single := InvalidSet{Kind: KindMissingColumn, Columns: []string{"dob"}}
	if msg := single.Message(); !strings.Contains(msg, "`dob`") || strings.Contains(msg, "columns are") {
		t.Errorf("unexpected singular message: %q", msg)
	}

	multi := InvalidSet{Kind: KindInvalidTableAlias, Columns: []string{"x.name_l", "y.name_r"}}
	msg := multi.Message()
	if !strings.Contains(msg, "`x.name_l`, `y.name_r`") {
		t.Errorf("message should list every offender: %q", msg)
	}
	if !strings.Contains(msg, "only `l.` and `r.`") {
		t.Errorf("alias message should state the convention: %q", msg)
	}
}

func TestMissingColumnCheck(t *testing.T) {
	catalog := BuildSchemaCatalog(map[string][]string{
		"a": {"name", "dob"},
		"b": {"name", "dob"},
	})
	check := MissingColumnCheck(catalog)

	result := check([]ColumnRef{
		{Name: "name_l", Table: "l", Raw: "l.name_l"},
		{Name: "name_r", Table: "r", Raw: "r.name_r"},
		{Name: "missing_l", Table: "l", Raw: "l.missing_l"},
		{Name: "missing_r", Table: "r", Raw: "r.missing_r"},
	})

	if result.Kind != KindMissingColumn {
		t.Errorf("Kind = %v, want KindMissingColumn", result.Kind)
	}
	// Both sides of a missing column canonicalize to one name.
	want := []string{"missing"}
	if !reflect.DeepEqual(result.Columns, want) {
		t.Errorf("Columns = %v, want %v", result.Columns, want)
	}
}

func TestMissingColumnCheck_AllPresent(t *testing.T) {
	catalog := BuildSchemaCatalog(map[string][]string{
		"a": {"name"},
	})
	result := MissingColumnCheck(catalog)([]ColumnRef{
		{Name: "name_l", Table: "l"},
		{Name: "name", Table: ""},
	})
	if result.IsValid() {
		t.Errorf("expected no findings, got %v", result.Columns)
	}
}

func TestMissingColumnCheck_SortedOutput(t *testing.T) {
	catalog := BuildSchemaCatalog(map[string][]string{"a": {}})
	result := MissingColumnCheck(catalog)([]ColumnRef{
		{Name: "zeta"},
		{Name: "alpha"},
		{Name: "mid"},
	})
	want := []string{"alpha", "mid", "zeta"}
	if !reflect.DeepEqual(result.Columns, want) {
		t.Errorf("Columns = %v, want sorted %v", result.Columns, want)
	}
}

func TestTableAliasCheck(t *testing.T) {
	result := TableAliasCheck([]ColumnRef{
		{Name: "name_l", Table: "l", Raw: "l.name_l"},
		{Name: "name_r", Table: "x", Raw: "x.name_r"},
		{Name: "dob", Table: "", Raw: "dob"},
		{Name: "city_l", Table: "left", Raw: "left.city_l"},
	})

	if result.Kind != KindInvalidTableAlias {
		t.Errorf("Kind = %v, want KindInvalidTableAlias", result.Kind)
	}
	want := []string{"x.name_r", "left.city_l"}
	if !reflect.DeepEqual(result.Columns, want) {
		t.Errorf("Columns = %v, want %v", result.Columns, want)
	}
}

func TestTableAliasCheck_CaseSensitive(t *testing.T) {
	result := TableAliasCheck([]ColumnRef{
		{Name: "name_l", Table: "L", Raw: "L.name_l"},
	})
	if !result.IsValid() {
		t.Error("aliases must match l/r exactly; L is invalid")
	}
}
