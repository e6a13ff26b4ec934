package snapshot

import (
	"fmt"
	"time"

	"github.com/alexanderramin/timeplan/internal/calendar"
	"github.com/alexanderramin/timeplan/internal/domain"
	"github.com/alexanderramin/timeplan/internal/scheduler"
	"github.com/alexanderramin/timeplan/internal/timeline"
)

// Convert transforms a validated document into the engine's inputs: the
// graph snapshot, the calendar and the calculator configuration. Call
// ValidateDocument first; Convert assumes the document is valid.
func Convert(doc *Document) (*timeline.Graph, *calendar.Calendar, scheduler.Config, error) {
	cal, err := convertCalendar(&doc.Calendar)
	if err != nil {
		return nil, nil, scheduler.Config{}, err
	}

	g := timeline.NewGraph()
	if err := convertNodes(g, domain.RootID, doc.Timeline, cal.Location()); err != nil {
		return nil, nil, scheduler.Config{}, err
	}

	cfg := scheduler.DefaultConfig()
	if doc.RecursiveMax > 0 {
		cfg.RecursiveMax = doc.RecursiveMax
	}

	return g, cal, cfg, nil
}

func convertNodes(g *timeline.Graph, parentID string, docs []NodeDoc, loc *time.Location) error {
	for i := range docs {
		doc := &docs[i]
		switch domain.NodeKind(doc.Kind) {
		case domain.KindGroup:
			group, err := g.AddGroup(parentID, doc.ID, doc.Title)
			if err != nil {
				return fmt.Errorf("adding group %q: %w", doc.Title, err)
			}
			if err := convertNodes(g, group.ID, doc.Children, loc); err != nil {
				return err
			}

		case domain.KindTask:
			task, err := g.AddTask(parentID, doc.ID, doc.Title)
			if err != nil {
				return fmt.Errorf("adding task %q: %w", doc.Title, err)
			}
			if doc.Workload != nil {
				if err := g.SetWorkload(task.ID, *doc.Workload); err != nil {
					return err
				}
			}
			if doc.Progress != nil {
				if err := g.SetProgress(task.ID, *doc.Progress); err != nil {
					return err
				}
			}
			if len(doc.Previous) > 0 {
				if err := g.SetPrevious(task.ID, doc.Previous); err != nil {
					return err
				}
			}
			if len(doc.Resources) > 0 {
				if err := g.SetResources(task.ID, doc.Resources); err != nil {
					return err
				}
			}
			if doc.StaticBegin != nil {
				begin, err := time.ParseInLocation(dateLayout, *doc.StaticBegin, loc)
				if err != nil {
					return fmt.Errorf("parsing static_begin of %q: %w", doc.Title, err)
				}
				if err := g.SetStaticBegin(task.ID, &begin); err != nil {
					return err
				}
			}

		default:
			return fmt.Errorf("invalid node kind %q", doc.Kind)
		}
	}
	return nil
}

func convertCalendar(doc *CalendarDoc) (*calendar.Calendar, error) {
	loc, err := calendar.ParseZone(doc.Zone)
	if err != nil {
		return nil, err
	}

	begin, err := time.ParseInLocation(dateLayout, doc.Begin, loc)
	if err != nil {
		return nil, fmt.Errorf("parsing calendar.begin: %w", err)
	}
	end, err := time.ParseInLocation(dateLayout, doc.End, loc)
	if err != nil {
		return nil, fmt.Errorf("parsing calendar.end: %w", err)
	}

	weekdays := make([]time.Weekday, 0, len(doc.RegularHolidays))
	for _, wd := range doc.RegularHolidays {
		weekdays = append(weekdays, time.Weekday(wd))
	}

	events := make([]calendar.Event, 0, len(doc.Events))
	for _, ev := range doc.Events {
		date, err := time.ParseInLocation(dateLayout, ev.Date, loc)
		if err != nil {
			return nil, fmt.Errorf("parsing event date %q: %w", ev.Date, err)
		}
		events = append(events, calendar.Event{Date: date, Kind: calendar.EventKind(ev.Kind)})
	}

	return calendar.New(calendar.Config{
		Zone:            doc.Zone,
		Begin:           begin,
		End:             end,
		RegularHolidays: weekdays,
		Events:          events,
	})
}
