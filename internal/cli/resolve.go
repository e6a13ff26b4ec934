package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/timeplan/internal/calendar"
	"github.com/alexanderramin/timeplan/internal/scheduler"
	"github.com/alexanderramin/timeplan/internal/snapshot"
	"github.com/alexanderramin/timeplan/internal/timeline"
)

// resolveDocument loads a plan document either from --file or from the plan
// store by name. Exactly one source must be given.
func resolveDocument(ctx context.Context, app *App, file string, args []string) (*snapshot.Document, error) {
	switch {
	case file != "" && len(args) > 0:
		return nil, fmt.Errorf("give either --file or a plan name, not both")

	case file != "":
		return snapshot.LoadDocument(file)

	case len(args) == 1:
		plan, err := app.Plans.GetByName(ctx, args[0])
		if err != nil {
			return nil, err
		}
		return snapshot.ParseDocument(plan.Document)

	default:
		return nil, fmt.Errorf("a plan name or --file is required")
	}
}

// prepare validates a document and converts it into engine inputs.
func prepare(doc *snapshot.Document) (*timeline.Graph, *calendar.Calendar, scheduler.Config, error) {
	if errs := snapshot.ValidateDocument(doc); len(errs) > 0 {
		return nil, nil, scheduler.Config{}, fmt.Errorf("invalid plan document: %v (run \"timeplan validate\" for the full report)", errs[0])
	}
	return snapshot.Convert(doc)
}
