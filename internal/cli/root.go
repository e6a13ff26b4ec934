package cli

import (
	"github.com/alexanderramin/timeplan/internal/repository"
	"github.com/spf13/cobra"
)

// App holds the dependencies CLI commands need.
type App struct {
	Plans repository.PlanRepo
}

// NewRootCmd creates the top-level "timeplan" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "timeplan",
		Short:         "Timeline scheduling engine for plan snapshots",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newCalcCmd(app),
		newDaysCmd(app),
		newValidateCmd(app),
		newPlanCmd(app),
	)

	return root
}
