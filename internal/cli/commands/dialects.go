package commands

import (
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/linklint/internal/cli/output"
	"github.com/leapstack-labs/linklint/pkg/dialect"
)

// NewDialectsCommand creates the dialects command.
func NewDialectsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "dialects",
		Short: "List supported SQL dialects",
		RunE: func(cmd *cobra.Command, _ []string) error {
			r := RendererFrom(cmd.Context())

			if r.EffectiveMode() == output.ModeJSON {
				return r.JSON(dialect.List())
			}

			for _, name := range dialect.List() {
				marker := "  "
				if name == dialect.DefaultName {
					marker = "* "
				}
				r.Println(marker + name)
			}
			r.Println("")
			r.Println(r.Styles().Muted.Render("* default"))
			return nil
		},
	}
}
