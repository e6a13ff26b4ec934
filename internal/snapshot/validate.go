package snapshot

import (
	"fmt"
	"time"

	"github.com/alexanderramin/timeplan/internal/calendar"
	"github.com/alexanderramin/timeplan/internal/domain"
)

const dateLayout = "2006-01-02"

// ValidateDocument checks a parsed plan document before conversion and
// returns every problem found. A self-referencing dependency is deliberately
// not a load error: the calculator owns that condition and reports it per
// node.
func ValidateDocument(doc *Document) []error {
	var errs []error

	ids := make(map[string]bool)
	walkNodes(doc.Timeline, "timeline", func(n *NodeDoc, path string) {
		errs = append(errs, validateNodeIdentity(n, path, ids)...)
	})
	walkNodes(doc.Timeline, "timeline", func(n *NodeDoc, path string) {
		errs = append(errs, validateNodeFields(n, path, ids)...)
	})

	errs = append(errs, validateCalendar(&doc.Calendar)...)

	if doc.RecursiveMax < 0 {
		errs = append(errs, fmt.Errorf("recursive_max must not be negative"))
	}

	return errs
}

// walkNodes visits every node of the nested tree depth-first.
func walkNodes(nodes []NodeDoc, path string, visit func(*NodeDoc, string)) {
	for i := range nodes {
		p := fmt.Sprintf("%s[%d]", path, i)
		visit(&nodes[i], p)
		if len(nodes[i].Children) > 0 {
			walkNodes(nodes[i].Children, p+".children", visit)
		}
	}
}

func validateNodeIdentity(n *NodeDoc, path string, ids map[string]bool) []error {
	var errs []error
	if !domain.ValidNodeKinds[n.Kind] {
		errs = append(errs, fmt.Errorf("%s: invalid kind %q", path, n.Kind))
	}
	if n.ID == domain.RootID {
		errs = append(errs, fmt.Errorf("%s: id %s is reserved for the root group", path, n.ID))
	}
	if n.ID != "" {
		if ids[n.ID] {
			errs = append(errs, fmt.Errorf("%s: duplicate id %s", path, n.ID))
		}
		ids[n.ID] = true
	}
	return errs
}

func validateNodeFields(n *NodeDoc, path string, ids map[string]bool) []error {
	var errs []error

	switch domain.NodeKind(n.Kind) {
	case domain.KindGroup:
		if n.Workload != nil || n.Progress != nil || len(n.Previous) > 0 ||
			n.StaticBegin != nil || len(n.Resources) > 0 {
			errs = append(errs, fmt.Errorf("%s: group must not carry task fields", path))
		}

	case domain.KindTask:
		if len(n.Children) > 0 {
			errs = append(errs, fmt.Errorf("%s: task must not have children", path))
		}
		if n.Workload != nil && *n.Workload < 0 {
			errs = append(errs, fmt.Errorf("%s: workload %v must not be negative", path, *n.Workload))
		}
		if n.Progress != nil && (*n.Progress < 0 || *n.Progress > 1) {
			errs = append(errs, fmt.Errorf("%s: progress %v outside [0,1]", path, *n.Progress))
		}
		if n.StaticBegin != nil {
			if _, err := time.Parse(dateLayout, *n.StaticBegin); err != nil {
				errs = append(errs, fmt.Errorf("%s: invalid static_begin %q (expected YYYY-MM-DD)", path, *n.StaticBegin))
			}
		}
		for _, prev := range n.Previous {
			if prev == domain.RootID {
				errs = append(errs, fmt.Errorf("%s: root group cannot be a dependency target", path))
				continue
			}
			if !ids[prev] {
				errs = append(errs, fmt.Errorf("%s: unknown dependency target %s", path, prev))
			}
		}
	}

	return errs
}

func validateCalendar(c *CalendarDoc) []error {
	var errs []error

	if _, err := calendar.ParseZone(c.Zone); err != nil {
		errs = append(errs, fmt.Errorf("calendar.zone: %w", err))
	}

	begin, beginErr := time.Parse(dateLayout, c.Begin)
	if c.Begin == "" || beginErr != nil {
		errs = append(errs, fmt.Errorf("calendar.begin: invalid date %q (expected YYYY-MM-DD)", c.Begin))
	}
	end, endErr := time.Parse(dateLayout, c.End)
	if c.End == "" || endErr != nil {
		errs = append(errs, fmt.Errorf("calendar.end: invalid date %q (expected YYYY-MM-DD)", c.End))
	}
	if beginErr == nil && endErr == nil && end.Before(begin) {
		errs = append(errs, fmt.Errorf("calendar.end %q before calendar.begin %q", c.End, c.Begin))
	}

	for i, wd := range c.RegularHolidays {
		if wd < 0 || wd > 6 {
			errs = append(errs, fmt.Errorf("calendar.regular_holidays[%d]: weekday %d outside 0..6", i, wd))
		}
	}

	for i, ev := range c.Events {
		if _, err := time.Parse(dateLayout, ev.Date); err != nil {
			errs = append(errs, fmt.Errorf("calendar.events[%d]: invalid date %q", i, ev.Date))
		}
		if !calendar.ValidEventKinds[ev.Kind] {
			errs = append(errs, fmt.Errorf("calendar.events[%d]: invalid kind %q", i, ev.Kind))
		}
	}

	return errs
}
