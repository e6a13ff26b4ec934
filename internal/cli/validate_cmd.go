package cli

import (
	"fmt"

	"github.com/alexanderramin/timeplan/internal/cli/formatter"
	"github.com/alexanderramin/timeplan/internal/snapshot"
	"github.com/spf13/cobra"
)

func newValidateCmd(app *App) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "validate [plan]",
		Short: "Check a plan document and report every problem",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := resolveDocument(cmd.Context(), app, file, args)
			if err != nil {
				return err
			}

			errs := snapshot.ValidateDocument(doc)
			out := cmd.OutOrStdout()
			if len(errs) == 0 {
				fmt.Fprintln(out, formatter.Bold("OK"), "plan document is valid")
				return nil
			}

			for _, e := range errs {
				fmt.Fprintln(out, "  -", e)
			}
			return fmt.Errorf("%d validation error(s)", len(errs))
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Plan document to validate (instead of a stored plan)")

	return cmd
}
