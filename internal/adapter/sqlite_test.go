package adapter

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openSQLite(t *testing.T) *SQLiteAdapter {
	t.Helper()
	a := NewSQLiteAdapter()
	require.NoError(t, a.Connect(context.Background(), Config{Path: ":memory:"}))
	t.Cleanup(func() { _ = a.Close() })
	return a
}

func TestSQLiteAdapter_TableColumns(t *testing.T) {
	a := openSQLite(t)
	ctx := context.Background()

	_, err := a.db.ExecContext(ctx,
		`CREATE TABLE people (unique_id INTEGER, name TEXT, dob TEXT)`)
	require.NoError(t, err)

	columns, err := a.TableColumns(ctx, "people")
	require.NoError(t, err)
	require.Len(t, columns, 3)

	assert.Equal(t, "unique_id", columns[0].Name)
	assert.Equal(t, 1, columns[0].Position)
	assert.Equal(t, "name", columns[1].Name)
	assert.Equal(t, "dob", columns[2].Name)
}

func TestSQLiteAdapter_TableNotFound(t *testing.T) {
	a := openSQLite(t)
	_, err := a.TableColumns(context.Background(), "missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing")
}

func TestSQLiteAdapter_CSVUnsupported(t *testing.T) {
	a := openSQLite(t)
	_, err := a.CSVColumns(context.Background(), "people.csv")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duckdb")
}

func TestSQLiteAdapter_NotConnected(t *testing.T) {
	a := NewSQLiteAdapter()
	_, err := a.TableColumns(context.Background(), "people")
	require.Error(t, err)

	// Close on a never-connected adapter is a no-op.
	assert.NoError(t, a.Close())
}
