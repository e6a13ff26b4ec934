package cli

import (
	"fmt"

	"github.com/alexanderramin/timeplan/internal/cli/formatter"
	"github.com/alexanderramin/timeplan/internal/scheduler"
	"github.com/spf13/cobra"
)

func newCalcCmd(app *App) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "calc [plan]",
		Short: "Compute work ranges for every timeline in a plan",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := resolveDocument(cmd.Context(), app, file, args)
			if err != nil {
				return err
			}
			g, cal, cfg, err := prepare(doc)
			if err != nil {
				return err
			}

			calc, err := scheduler.New(cal, cfg)
			if err != nil {
				return err
			}
			result := calc.Run(g)

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSchedule(g, result))
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Plan document to calculate (instead of a stored plan)")

	return cmd
}
