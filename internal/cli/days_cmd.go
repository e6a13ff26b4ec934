package cli

import (
	"fmt"

	"github.com/alexanderramin/timeplan/internal/cli/formatter"
	"github.com/alexanderramin/timeplan/internal/scheduler"
	"github.com/spf13/cobra"
)

func newDaysCmd(app *App) *cobra.Command {
	var file string
	var conflictsOnly bool

	cmd := &cobra.Command{
		Use:   "days [plan]",
		Short: "Show the per-day resource index of a plan",
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
			index := scheduler.BuildDayIndex(g, calc.Run(g).Ranges, cal)

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatDayIndex(index, cal, conflictsOnly))
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Plan document to inspect (instead of a stored plan)")
	cmd.Flags().BoolVar(&conflictsOnly, "conflicts", false, "Show only days with double-booked resources")

	return cmd
}
