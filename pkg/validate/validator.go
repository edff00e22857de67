// Package validate checks record-linkage settings against the schemas of
// the input datasets they will run against.
//
// The pipeline parses each blocking rule into column references,
// canonicalizes them, and reports references that cannot be satisfied:
// columns missing from the dataset intersection and table aliases outside
// the two-sided l/r convention. Validation is advisory; the caller
// decides whether findings halt anything.
package validate

import (
	"log/slog"
	"sort"

	"github.com/leapstack-labs/linklint/pkg/dialect"
)

// ScalarResult is a finding for a single scalar settings field, such as
// the unique-id column name.
type ScalarResult struct {
	SettingsID string     `json:"settings_id"`
	Invalid    InvalidSet `json:"invalid"`
}

// RuleFailures maps blocking-rule source text to the findings for that
// rule. Rules with no findings are absent.
type RuleFailures map[string][]InvalidSet

// Validator runs settings checks against a schema catalog. Build one per
// validation pass; the catalog is read-only for its lifetime.
type Validator struct {
	catalog   *SchemaCatalog
	extractor *Extractor
	checks    []CheckFunc
	logger    *slog.Logger
}

// Option configures a Validator.
type Option func(*Validator)

// WithDialect sets the SQL dialect used when parsing blocking rules.
func WithDialect(d *dialect.Dialect) Option {
	return func(v *Validator) {
		v.extractor.Dialect = d
	}
}

// WithLogger sets the logger. Nil restores the discard default.
func WithLogger(logger *slog.Logger) Option {
	return func(v *Validator) {
		if logger == nil {
			logger = slog.New(slog.DiscardHandler)
		}
		v.logger = logger
	}
}

// New creates a Validator over the given catalog.
func New(catalog *SchemaCatalog, opts ...Option) *Validator {
	v := &Validator{
		catalog:   catalog,
		extractor: &Extractor{},
		logger:    slog.New(slog.DiscardHandler),
	}
	v.checks = []CheckFunc{
		MissingColumnCheck(catalog),
		TableAliasCheck,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Catalog returns the schema catalog the validator was built over.
func (v *Validator) Catalog() *SchemaCatalog {
	return v.catalog
}

// ValidateScalar checks a scalar settings field holding plain column
// names (no SQL parsing involved). It returns a result only when at
// least one of the names is missing from the dataset intersection.
func (v *Validator) ValidateScalar(settingsID string, columns []string) *ScalarResult {
	names := make(map[string]struct{}, len(columns))
	for _, c := range columns {
		names[CleanIdentifier(c)] = struct{}{}
	}

	var missing []string
	for name := range names {
		if !v.catalog.Contains(name) {
			missing = append(missing, name)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	sort.Strings(missing)

	v.logger.Debug("scalar setting failed validation",
		slog.String("settings_id", settingsID),
		slog.Int("missing", len(missing)))

	return &ScalarResult{
		SettingsID: settingsID,
		Invalid:    InvalidSet{Kind: KindMissingColumn, Columns: missing},
	}
}

// ValidateBlockingRules runs every check against every blocking rule and
// aggregates the failures by rule text. Rules that fail to parse are
// skipped silently; an empty rule list yields an empty map.
func (v *Validator) ValidateBlockingRules(rules []string) RuleFailures {
	failures := make(RuleFailures)

	for _, rule := range rules {
		refs, ok := v.extractor.Extract(rule)
		if !ok {
			v.logger.Debug("skipping unparseable blocking rule", slog.String("rule", rule))
			continue
		}

		var invalid []InvalidSet
		for _, check := range v.checks {
			// Each check gets its own copy: a check may rewrite its view
			// of the references and must not corrupt the next one's.
			if result := check(cloneRefs(refs)); result.IsValid() {
				invalid = append(invalid, result)
			}
		}
		if len(invalid) > 0 {
			failures[rule] = invalid
		}
	}

	return failures
}
