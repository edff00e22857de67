// Package config provides settings loading for linklint.
//
// A settings file describes a record-linkage job: the unique-id column,
// extra columns to retain, the blocking rules used to restrict record
// pair comparisons, and where the input datasets live.
package config

import (
	"fmt"

	"github.com/leapstack-labs/linklint/internal/adapter"
	"github.com/leapstack-labs/linklint/pkg/dialect"
)

// Config is the fully resolved linklint configuration.
type Config struct {
	// SQLDialect names the dialect blocking rules are written in.
	SQLDialect string `koanf:"sql_dialect"`

	// UniqueIDColumnName is the column holding each record's unique id.
	UniqueIDColumnName string `koanf:"unique_id_column_name"`

	// AdditionalColumnsToRetain lists extra columns carried through the
	// matching job.
	AdditionalColumnsToRetain []string `koanf:"additional_columns_to_retain"`

	// BlockingRules are the SQL predicates restricting which record
	// pairs are compared.
	BlockingRules []string `koanf:"blocking_rules_to_generate_predictions"`

	// Datasets are the input datasets whose schemas are validated
	// against.
	Datasets []DatasetConfig `koanf:"datasets"`

	// Target is the database used to resolve table-backed and
	// CSV-backed datasets.
	Target *TargetConfig `koanf:"target"`

	// CLI behavior
	Verbose      bool   `koanf:"verbose"`
	Quiet        bool   `koanf:"quiet"`
	OutputFormat string `koanf:"output"`
}

// DatasetConfig describes one input dataset. Exactly one of Columns,
// CSV, or Table should be set.
type DatasetConfig struct {
	// Name identifies the dataset in diagnostics.
	Name string `koanf:"name"`

	// Columns lists the dataset's columns inline.
	Columns []string `koanf:"columns"`

	// CSV is a path to a CSV file whose header supplies the columns.
	CSV string `koanf:"csv"`

	// Table is a (optionally schema-qualified) table in the target
	// database.
	Table string `koanf:"table"`
}

// Source describes which backing source a dataset uses.
func (d *DatasetConfig) Source() string {
	switch {
	case len(d.Columns) > 0:
		return "inline"
	case d.CSV != "":
		return "csv"
	case d.Table != "":
		return "table"
	default:
		return "empty"
	}
}

// Validate checks that the dataset has a name and a single source.
func (d *DatasetConfig) Validate() error {
	if d.Name == "" {
		return fmt.Errorf("dataset is missing a name")
	}
	sources := 0
	if len(d.Columns) > 0 {
		sources++
	}
	if d.CSV != "" {
		sources++
	}
	if d.Table != "" {
		sources++
	}
	if sources == 0 {
		return fmt.Errorf("dataset %q has no columns, csv, or table source", d.Name)
	}
	if sources > 1 {
		return fmt.Errorf("dataset %q has multiple sources; use exactly one of columns, csv, table", d.Name)
	}
	return nil
}

// TargetConfig holds database target configuration.
type TargetConfig struct {
	Type string `koanf:"type"` // duckdb, sqlite, postgres

	// File-based databases (DuckDB, SQLite)
	Database string `koanf:"database"` // file path or database name

	// Network databases
	Host     string `koanf:"host"`
	Port     int    `koanf:"port"`
	User     string `koanf:"user"`
	Password string `koanf:"password"`

	// Common
	Schema string `koanf:"schema"`

	// Additional driver-specific options
	Options map[string]string `koanf:"options"`
}

// Validate checks if the target configuration is valid.
// It uses the adapter registry to determine which types are available.
func (t *TargetConfig) Validate() error {
	if t.Type == "" {
		return fmt.Errorf("target type is required")
	}
	if !adapter.IsRegistered(t.Type) {
		return &adapter.UnknownAdapterError{
			Type:      t.Type,
			Available: adapter.List(),
		}
	}
	return nil
}

// ToAdapterConfig converts the target to an adapter connection config.
func (t *TargetConfig) ToAdapterConfig() adapter.Config {
	return adapter.Config{
		Type:     t.Type,
		Path:     t.Database,
		Database: t.Database,
		Host:     t.Host,
		Port:     t.Port,
		Username: t.User,
		Password: t.Password,
		Schema:   t.Schema,
		Options:  t.Options,
	}
}

// Validate checks the configuration as a whole: a resolvable dialect,
// well-formed datasets, and a valid target when any dataset needs one.
func (c *Config) Validate() error {
	if _, err := dialect.Resolve(c.SQLDialect); err != nil {
		return err
	}

	seen := make(map[string]bool, len(c.Datasets))
	needsTarget := false
	for i := range c.Datasets {
		d := &c.Datasets[i]
		if err := d.Validate(); err != nil {
			return err
		}
		if seen[d.Name] {
			return fmt.Errorf("duplicate dataset name %q", d.Name)
		}
		seen[d.Name] = true
		if d.Source() != "inline" {
			needsTarget = true
		}
	}

	if needsTarget {
		if c.Target == nil {
			return fmt.Errorf("csv or table datasets require a target configuration")
		}
		if err := c.Target.Validate(); err != nil {
			return fmt.Errorf("invalid target configuration: %w", err)
		}
	}

	return nil
}
