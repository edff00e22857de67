package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/linklint/internal/catalog"
	"github.com/leapstack-labs/linklint/internal/cli/output"
	"github.com/leapstack-labs/linklint/pkg/dialect"
	"github.com/leapstack-labs/linklint/pkg/validate"
)

// CheckOptions holds options for the check command.
type CheckOptions struct {
	Format string // Output format: text, json
	Strict bool   // Exit non-zero when findings exist
}

// NewCheckCommand creates the check command.
func NewCheckCommand() *cobra.Command {
	opts := &CheckOptions{}
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate settings against input dataset schemas",
		Long: `Validate the record-linkage settings file.

Resolves the schema of every configured input dataset and checks that:
  - the unique-id column and retain-columns exist in every dataset
  - every column referenced in a blocking rule exists in every dataset
  - blocking rules only qualify columns with the l. and r. aliases

Findings are advisory; use --strict to turn them into a non-zero exit.`,
		Example: `  # Validate ./linklint.yaml
  linklint check

  # Validate a specific settings file
  linklint check --config settings.yaml

  # Machine-readable output
  linklint check --format json

  # Fail the pipeline on findings
  linklint check --strict`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCheck(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, json")
	cmd.Flags().BoolVar(&opts.Strict, "strict", false, "Exit with code 1 when findings exist")

	return cmd
}

// checkOutput is the JSON shape of a validation run.
type checkOutput struct {
	Summary       checkSummary       `json:"summary"`
	Settings      []settingResult    `json:"settings,omitempty"`
	BlockingRules []blockingRuleList `json:"blocking_rules,omitempty"`
}

type checkSummary struct {
	Datasets      int `json:"datasets"`
	CommonColumns int `json:"common_columns"`
	RulesChecked  int `json:"rules_checked"`
	TotalFindings int `json:"total_findings"`
}

type settingResult struct {
	SettingsID string   `json:"settings_id"`
	Kind       string   `json:"kind"`
	Columns    []string `json:"columns"`
	Message    string   `json:"message"`
}

type blockingRuleList struct {
	Rule     string          `json:"rule"`
	Findings []settingResult `json:"findings"`
}

func runCheck(cmd *cobra.Command, opts *CheckOptions) error {
	ctx := cmd.Context()
	cfg := ConfigFrom(ctx)
	r := RendererFrom(ctx)
	logger := LoggerFrom(ctx)

	if opts.Format != "" {
		r = output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(opts.Format))
	}

	// Resolve input dataset schemas
	resolver := catalog.NewResolver(cfg.Target, logger)
	defer func() { _ = resolver.Close() }()

	datasets, err := resolver.Resolve(ctx, cfg.Datasets)
	if err != nil {
		return err
	}

	d, err := dialect.Resolve(cfg.SQLDialect)
	if err != nil {
		return err
	}

	schemas := validate.BuildSchemaCatalog(datasets)
	v := validate.New(schemas,
		validate.WithDialect(d),
		validate.WithLogger(logger),
	)

	// Scalar settings
	var scalars []*validate.ScalarResult
	if cfg.UniqueIDColumnName != "" {
		if res := v.ValidateScalar("unique_id_column_name", []string{cfg.UniqueIDColumnName}); res != nil {
			scalars = append(scalars, res)
		}
	}
	if len(cfg.AdditionalColumnsToRetain) > 0 {
		if res := v.ValidateScalar("additional_columns_to_retain", cfg.AdditionalColumnsToRetain); res != nil {
			scalars = append(scalars, res)
		}
	}

	// Blocking rules
	failures := v.ValidateBlockingRules(cfg.BlockingRules)

	total := len(scalars)
	for _, sets := range failures {
		total += len(sets)
	}

	if r.EffectiveMode() == output.ModeJSON {
		if err := r.JSON(buildCheckOutput(cfg.BlockingRules, schemas, scalars, failures, total)); err != nil {
			return err
		}
	} else {
		renderCheckResults(r, cfg.BlockingRules, scalars, failures, cfg.Quiet)
	}

	if total > 0 && opts.Strict {
		return fmt.Errorf("validation issues found")
	}
	return nil
}

func buildCheckOutput(rules []string, schemas *validate.SchemaCatalog, scalars []*validate.ScalarResult, failures validate.RuleFailures, total int) checkOutput {
	out := checkOutput{
		Summary: checkSummary{
			Datasets:      len(schemas.Datasets()),
			CommonColumns: len(schemas.Common()),
			RulesChecked:  len(rules),
			TotalFindings: total,
		},
	}
	for _, s := range scalars {
		out.Settings = append(out.Settings, settingResult{
			SettingsID: s.SettingsID,
			Kind:       s.Invalid.Kind.String(),
			Columns:    s.Invalid.Columns,
			Message:    s.Invalid.Message(),
		})
	}
	// Preserve the settings file's rule order in the output.
	for _, rule := range rules {
		sets, ok := failures[rule]
		if !ok {
			continue
		}
		entry := blockingRuleList{Rule: rule}
		for _, set := range sets {
			entry.Findings = append(entry.Findings, settingResult{
				Kind:    set.Kind.String(),
				Columns: set.Columns,
				Message: set.Message(),
			})
		}
		out.BlockingRules = append(out.BlockingRules, entry)
	}
	return out
}

func renderCheckResults(r *output.Renderer, rules []string, scalars []*validate.ScalarResult, failures validate.RuleFailures, quiet bool) {
	styles := r.Styles()

	if len(scalars) == 0 && len(failures) == 0 {
		r.Success("Settings are valid against all input dataset schemas")
		return
	}

	for _, s := range scalars {
		r.Println(styles.Bold.Render(
			fmt.Sprintf("A problem was found within your setting `%s`:", s.SettingsID)))
		r.Println(s.Invalid.Message())
		r.Println("")
	}

	if len(failures) > 0 {
		r.Println(styles.Bold.Render(
			"The following blocking rule(s) were found to contain invalid column(s):"))
		for _, rule := range rules {
			sets, ok := failures[rule]
			if !ok {
				continue
			}
			r.Println(styles.BoldUnderline.Render("`"+rule+"`") + ":")
			messages := make([]string, len(sets))
			for i, set := range sets {
				messages[i] = set.Message()
			}
			r.Println(strings.Join(messages, "\n"))
		}
		r.Println("")
	}

	if !quiet {
		r.Warning("You may want to verify your settings dictionary has valid inputs in all fields before continuing.")
	}
}
