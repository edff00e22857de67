package commands

import (
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/linklint/internal/catalog"
	"github.com/leapstack-labs/linklint/internal/cli/output"
	"github.com/leapstack-labs/linklint/pkg/validate"
)

// SchemaOptions holds options for the schema command.
type SchemaOptions struct {
	Format string // Output format: text, json
}

// NewSchemaCommand creates the schema command.
func NewSchemaCommand() *cobra.Command {
	opts := &SchemaOptions{}
	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Show resolved dataset schemas and their common columns",
		Long: `Resolve every configured input dataset and print its cleaned columns,
plus the set of columns present in all datasets. Blocking rules may only
reference columns from that common set.`,
		Example: `  # Show schemas for ./linklint.yaml
  linklint schema

  # Machine-readable output
  linklint schema --format json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSchema(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, json")

	return cmd
}

// schemaOutput is the JSON shape of the schema command.
type schemaOutput struct {
	Datasets      map[string][]string `json:"datasets"`
	CommonColumns []string            `json:"common_columns"`
}

func runSchema(cmd *cobra.Command, opts *SchemaOptions) error {
	ctx := cmd.Context()
	cfg := ConfigFrom(ctx)
	r := RendererFrom(ctx)
	logger := LoggerFrom(ctx)

	if opts.Format != "" {
		r = output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(opts.Format))
	}

	resolver := catalog.NewResolver(cfg.Target, logger)
	defer func() { _ = resolver.Close() }()

	datasets, err := resolver.Resolve(ctx, cfg.Datasets)
	if err != nil {
		return err
	}
	schemas := validate.BuildSchemaCatalog(datasets)

	if r.EffectiveMode() == output.ModeJSON {
		out := schemaOutput{
			Datasets:      make(map[string][]string, len(datasets)),
			CommonColumns: schemas.Common(),
		}
		for _, name := range schemas.Datasets() {
			out.Datasets[name] = schemas.DatasetColumns(name)
		}
		return r.JSON(out)
	}

	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.AppendHeader(table.Row{"Dataset", "Columns"})
	for _, name := range schemas.Datasets() {
		t.AppendRow(table.Row{name, strings.Join(schemas.DatasetColumns(name), ", ")})
	}
	t.AppendFooter(table.Row{"common", strings.Join(schemas.Common(), ", ")})
	t.SetStyle(table.StyleLight)
	t.Render()

	return nil
}
