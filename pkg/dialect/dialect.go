// Package dialect provides SQL dialect configuration for linklint.
//
// A dialect carries the identifier quoting convention used when cleaning
// column references and rendering diagnostics. Concrete dialects are
// registered at package load time; the settings file selects one by name.
package dialect

import (
	"fmt"
	"strings"
)

// QuotePair is a dialect's identifier delimiter pair.
type QuotePair struct {
	Start string
	End   string
}

// Dialect represents a SQL dialect configuration.
type Dialect struct {
	// Name is the canonical dialect name (lowercase).
	Name string

	// Quote is the identifier delimiter pair, e.g. `"`/`"` for DuckDB
	// or "`"/"`" for MySQL-family dialects.
	Quote QuotePair

	// Aliases are alternative names accepted in configuration
	// (e.g. "postgresql" for "postgres").
	Aliases []string
}

// QuoteIdentifier wraps a name in the dialect's quote characters.
func (d *Dialect) QuoteIdentifier(name string) string {
	escaped := strings.ReplaceAll(name, d.Quote.End, d.Quote.End+d.Quote.End)
	return d.Quote.Start + escaped + d.Quote.End
}

// UnknownDialectError is returned when a configured dialect name is not
// registered.
type UnknownDialectError struct {
	Name      string
	Available []string
}

func (e *UnknownDialectError) Error() string {
	return fmt.Sprintf("unknown sql dialect %q (available: %s)",
		e.Name, strings.Join(e.Available, ", "))
}
