// Package adapter provides database adapters used to read the column
// schemas of input datasets.
package adapter

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Config holds the configuration for connecting to a database.
type Config struct {
	// Type specifies the database type (e.g., "duckdb", "postgres")
	Type string

	// Path is the file path for file-based databases (DuckDB, SQLite).
	// Use ":memory:" for in-memory databases.
	Path string

	// Host is the hostname for network-based databases
	Host string

	// Port is the port number for network-based databases
	Port int

	// Database is the database name
	Database string

	// Username for authentication
	Username string

	// Password for authentication
	Password string

	// Schema is the default schema to use
	Schema string

	// Options contains additional driver-specific options
	Options map[string]string
}

// Column describes one column of a dataset.
type Column struct {
	// Name is the column name
	Name string

	// Type is the declared data type
	Type string

	// Position is the ordinal position of the column in the table
	Position int
}

// Adapter reads dataset schemas from a database. Implementations
// register themselves via Register in their init() functions.
type Adapter interface {
	// Connect establishes a connection using the provided config.
	Connect(ctx context.Context, cfg Config) error

	// Close closes the connection and releases resources.
	Close() error

	// TableColumns returns the columns of a table. The table may be
	// schema-qualified ("schema.table").
	TableColumns(ctx context.Context, table string) ([]Column, error)

	// CSVColumns probes the header of a CSV file and returns its
	// columns. Adapters without CSV support return an error.
	CSVColumns(ctx context.Context, path string) ([]Column, error)

	// DialectName returns the SQL dialect name for this adapter.
	DialectName() string
}

// UnknownAdapterError is returned when a target type has no registered
// adapter.
type UnknownAdapterError struct {
	Type      string
	Available []string
}

func (e *UnknownAdapterError) Error() string {
	return fmt.Sprintf("unknown target type %q (available: %s)",
		e.Type, strings.Join(e.Available, ", "))
}

// Adapter registry
var (
	registryMu sync.RWMutex
	registry   = make(map[string]func() Adapter)
)

// Register registers an adapter factory under a type name.
// Called by adapter implementations in their init() functions.
func Register(name string, factory func() Adapter) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[strings.ToLower(name)] = factory
}

// New creates an adapter for the given type name.
func New(name string) (Adapter, error) {
	registryMu.RLock()
	factory, ok := registry[strings.ToLower(name)]
	registryMu.RUnlock()
	if !ok {
		return nil, &UnknownAdapterError{Type: name, Available: List()}
	}
	return factory(), nil
}

// IsRegistered reports whether an adapter type is available.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := registry[strings.ToLower(name)]
	return ok
}

// List returns all registered adapter type names (sorted).
func List() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
