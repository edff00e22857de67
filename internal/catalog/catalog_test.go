package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/linklint/internal/config"
)

func TestResolve_Inline(t *testing.T) {
	r := NewResolver(nil, nil)
	defer func() { _ = r.Close() }()

	datasets := []config.DatasetConfig{
		{Name: "customers_2024", Columns: []string{"id", "name", "dob"}},
		{Name: "customers_2025", Columns: []string{"id", "name"}},
	}

	schemas, err := r.Resolve(context.Background(), datasets)
	require.NoError(t, err)
	require.Len(t, schemas, 2)
	assert.Equal(t, []string{"id", "name", "dob"}, schemas["customers_2024"])
	assert.Equal(t, []string{"id", "name"}, schemas["customers_2025"])
}

func TestResolve_Empty(t *testing.T) {
	r := NewResolver(nil, nil)
	schemas, err := r.Resolve(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, schemas)
}

func TestResolve_CSVWithoutTarget(t *testing.T) {
	r := NewResolver(nil, nil)
	_, err := r.Resolve(context.Background(), []config.DatasetConfig{
		{Name: "people", CSV: "people.csv"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `dataset "people"`)
	assert.Contains(t, err.Error(), "no target configured")
}

func TestResolve_UnknownTargetType(t *testing.T) {
	r := NewResolver(&config.TargetConfig{Type: "mariadb"}, nil)
	_, err := r.Resolve(context.Background(), []config.DatasetConfig{
		{Name: "people", Table: "people"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mariadb")
}

func TestResolve_Table(t *testing.T) {
	r := NewResolver(&config.TargetConfig{Type: "sqlite"}, nil)
	defer func() { _ = r.Close() }()

	// An empty sqlite database has no tables; the resolver should surface
	// the adapter's not-found error with the dataset name attached.
	_, err := r.Resolve(context.Background(), []config.DatasetConfig{
		{Name: "people", Table: "people"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `dataset "people"`)
}

func TestClose_Idempotent(t *testing.T) {
	r := NewResolver(nil, nil)
	assert.NoError(t, r.Close())
	assert.NoError(t, r.Close())
}
