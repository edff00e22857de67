// Package catalog resolves configured input datasets to their raw column
// lists, ready for schema validation.
package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/leapstack-labs/linklint/internal/adapter"
	"github.com/leapstack-labs/linklint/internal/config"
)

// Resolver turns dataset configurations into column lists. Inline
// datasets resolve locally; CSV and table datasets go through the target
// database adapter.
type Resolver struct {
	target *config.TargetConfig
	logger *slog.Logger

	// conn is lazily opened on first CSV/table dataset and reused.
	conn adapter.Adapter
}

// NewResolver creates a resolver. target may be nil when every dataset
// is inline. A nil logger discards.
func NewResolver(target *config.TargetConfig, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Resolver{target: target, logger: logger}
}

// Resolve returns the raw column names of every configured dataset,
// keyed by dataset name.
func (r *Resolver) Resolve(ctx context.Context, datasets []config.DatasetConfig) (map[string][]string, error) {
	columns := make(map[string][]string, len(datasets))

	for i := range datasets {
		d := &datasets[i]
		cols, err := r.resolveOne(ctx, d)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve dataset %q: %w", d.Name, err)
		}
		r.logger.Debug("resolved dataset",
			slog.String("dataset", d.Name),
			slog.String("source", d.Source()),
			slog.Int("columns", len(cols)))
		columns[d.Name] = cols
	}

	return columns, nil
}

func (r *Resolver) resolveOne(ctx context.Context, d *config.DatasetConfig) ([]string, error) {
	switch d.Source() {
	case "inline":
		return d.Columns, nil
	case "csv":
		conn, err := r.connect(ctx)
		if err != nil {
			return nil, err
		}
		cols, err := conn.CSVColumns(ctx, d.CSV)
		if err != nil {
			return nil, err
		}
		return columnNames(cols), nil
	case "table":
		conn, err := r.connect(ctx)
		if err != nil {
			return nil, err
		}
		cols, err := conn.TableColumns(ctx, d.Table)
		if err != nil {
			return nil, err
		}
		return columnNames(cols), nil
	default:
		return nil, fmt.Errorf("dataset has no source")
	}
}

// connect opens the target adapter on first use.
func (r *Resolver) connect(ctx context.Context) (adapter.Adapter, error) {
	if r.conn != nil {
		return r.conn, nil
	}
	if r.target == nil {
		return nil, fmt.Errorf("no target configured")
	}

	conn, err := adapter.New(r.target.Type)
	if err != nil {
		return nil, err
	}
	if err := conn.Connect(ctx, r.target.ToAdapterConfig()); err != nil {
		return nil, err
	}

	r.logger.Debug("connected to target", slog.String("type", r.target.Type))
	r.conn = conn
	return conn, nil
}

// Close releases the target connection, if one was opened.
func (r *Resolver) Close() error {
	if r.conn == nil {
		return nil
	}
	err := r.conn.Close()
	r.conn = nil
	return err
}

func columnNames(cols []adapter.Column) []string {
	names := make([]string, len(cols))
	for i, c := range cols {
		names[i] = c.Name
	}
	return names
}
