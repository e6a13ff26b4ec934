package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/alexanderramin/timeplan/internal/cli/formatter"
	"github.com/alexanderramin/timeplan/internal/domain"
	"github.com/alexanderramin/timeplan/internal/snapshot"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func newPlanCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Manage stored plan snapshots",
	}
	cmd.AddCommand(
		newPlanImportCmd(app),
		newPlanListCmd(app),
		newPlanShowCmd(app),
		newPlanDeleteCmd(app),
	)
	return cmd
}

func newPlanImportCmd(app *App) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Validate a plan document and store it under a name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := snapshot.LoadDocument(args[0])
			if err != nil {
				return err
			}
			if errs := snapshot.ValidateDocument(doc); len(errs) > 0 {
				for _, e := range errs {
					fmt.Fprintln(cmd.ErrOrStderr(), "  -", e)
				}
				return fmt.Errorf("%d validation error(s), nothing stored", len(errs))
			}

			if name == "" {
				name = doc.Name
			}
			if name == "" {
				return fmt.Errorf("the document has no name; use --name")
			}

			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			now := time.Now().UTC()
			plan := &domain.Plan{
				ID:        uuid.New().String(),
				Name:      name,
				Document:  data,
				CreatedAt: now,
				UpdatedAt: now,
			}
			if err := app.Plans.Save(cmd.Context(), plan); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Stored plan %s\n", formatter.Bold(name))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Name to store the plan under (defaults to the document name)")

	return cmd
}

func newPlanListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored plans",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			plans, err := app.Plans.List(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(plans) == 0 {
				fmt.Fprintln(out, formatter.Dim("No stored plans."))
				return nil
			}

			rows := make([][]string, 0, len(plans))
			for _, p := range plans {
				rows = append(rows, []string{
					p.Name,
					p.UpdatedAt.Format("2006-01-02 15:04"),
				})
			}
			fmt.Fprint(out, formatter.RenderTable([]string{"NAME", "UPDATED"}, rows))
			return nil
		},
	}
}

func newPlanShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show NAME",
		Short: "Print a stored plan document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := app.Plans.GetByName(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			doc, err := snapshot.ParseDocument(plan.Document)
			if err != nil {
				return err
			}
			data, err := doc.Marshal()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}
}

func newPlanDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete NAME",
		Short: "Delete a stored plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Plans.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted plan %s\n", args[0])
			return nil
		},
	}
}
