package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "linklint.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const validSettings = `
sql_dialect: duckdb
unique_id_column_name: id
additional_columns_to_retain:
  - cluster
blocking_rules_to_generate_predictions:
  - "l.name_l = r.name_r"
  - "l.dob = r.dob"
datasets:
  - name: customers_2024
    columns: [id, name, dob, cluster]
  - name: customers_2025
    columns: [id, name, dob, cluster]
`

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, "datasets:\n  - name: a\n    columns: [id]\n"), nil)
	require.NoError(t, err)

	assert.Equal(t, "duckdb", cfg.SQLDialect)
	assert.Equal(t, DefaultUniqueIDColumn, cfg.UniqueIDColumnName)
	assert.Equal(t, DefaultOutput, cfg.OutputFormat)
	assert.False(t, cfg.Verbose)
}

func TestLoadConfig_File(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, validSettings), nil)
	require.NoError(t, err)

	assert.Equal(t, "id", cfg.UniqueIDColumnName)
	assert.Equal(t, []string{"cluster"}, cfg.AdditionalColumnsToRetain)
	assert.Len(t, cfg.BlockingRules, 2)
	require.Len(t, cfg.Datasets, 2)
	assert.Equal(t, "customers_2024", cfg.Datasets[0].Name)
	assert.Equal(t, "inline", cfg.Datasets[0].Source())
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	t.Setenv("LINKLINT_SQL_DIALECT", "postgres")
	cfg, err := LoadConfig(writeConfig(t, validSettings), nil)
	require.NoError(t, err)
	assert.Equal(t, "postgres", cfg.SQLDialect)
}

func TestLoadConfig_FlagsOverrideEnv(t *testing.T) {
	t.Setenv("LINKLINT_SQL_DIALECT", "postgres")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("dialect", "", "")
	flags.Bool("verbose", false, "")
	require.NoError(t, flags.Parse([]string{"--dialect", "spark"}))

	cfg, err := LoadConfig(writeConfig(t, validSettings), flags)
	require.NoError(t, err)
	assert.Equal(t, "spark", cfg.SQLDialect)
	// Unchanged flags must not clobber lower layers.
	assert.False(t, cfg.Verbose)
}

func TestLoadConfig_UnknownDialect(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, "sql_dialect: oracle9i\n"), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "oracle9i")
}

func TestLoadConfig_DatasetValidation(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errText string
	}{
		{
			"missing name",
			"datasets:\n  - columns: [id]\n",
			"missing a name",
		},
		{
			"no source",
			"datasets:\n  - name: a\n",
			"no columns, csv, or table source",
		},
		{
			"multiple sources",
			"datasets:\n  - name: a\n    columns: [id]\n    csv: a.csv\n",
			"multiple sources",
		},
		{
			"duplicate names",
			"datasets:\n  - name: a\n    columns: [id]\n  - name: a\n    columns: [id]\n",
			"duplicate dataset name",
		},
		{
			"csv without target",
			"datasets:\n  - name: a\n    csv: a.csv\n",
			"require a target",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.content), nil)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errText)
		})
	}
}

func TestLoadConfig_TargetEnvExpansion(t *testing.T) {
	t.Setenv("LL_TEST_PASSWORD", "s3cret")
	content := `
datasets:
  - name: a
    table: people
target:
  type: postgres
  host: localhost
  database: linkage
  user: linklint
  password: ${LL_TEST_PASSWORD}
`
	cfg, err := LoadConfig(writeConfig(t, content), nil)
	require.NoError(t, err)
	require.NotNil(t, cfg.Target)
	assert.Equal(t, "s3cret", cfg.Target.Password)
}

func TestLoadConfig_UnknownTargetType(t *testing.T) {
	content := `
datasets:
  - name: a
    table: people
target:
  type: mariadb
`
	_, err := LoadConfig(writeConfig(t, content), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mariadb")
}

func TestLoadConfig_MissingExplicitFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"), nil)
	require.Error(t, err)
}

func TestDatasetConfig_Source(t *testing.T) {
	assert.Equal(t, "inline", (&DatasetConfig{Columns: []string{"id"}}).Source())
	assert.Equal(t, "csv", (&DatasetConfig{CSV: "a.csv"}).Source())
	assert.Equal(t, "table", (&DatasetConfig{Table: "people"}).Source())
	assert.Equal(t, "empty", (&DatasetConfig{}).Source())
}

func TestTargetConfig_ToAdapterConfig(t *testing.T) {
	target := &TargetConfig{
		Type:     "postgres",
		Host:     "db.internal",
		Port:     5432,
		Database: "linkage",
		User:     "linklint",
		Password: "pw",
		Schema:   "public",
	}
	ac := target.ToAdapterConfig()
	assert.Equal(t, "postgres", ac.Type)
	assert.Equal(t, "db.internal", ac.Host)
	assert.Equal(t, 5432, ac.Port)
	assert.Equal(t, "linkage", ac.Database)
	assert.Equal(t, "linklint", ac.Username)
	assert.Equal(t, "public", ac.Schema)
}
