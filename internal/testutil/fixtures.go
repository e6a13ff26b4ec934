package testutil

import (
	"testing"
	"time"

	"github.com/alexanderramin/timeplan/internal/calendar"
	"github.com/alexanderramin/timeplan/internal/domain"
	"github.com/alexanderramin/timeplan/internal/timeline"
)

// WeekdayCalendar builds a calendar with Saturday/Sunday as regular
// holidays and no events, covering [begin, end] in UTC.
func WeekdayCalendar(t *testing.T, begin, end time.Time) *calendar.Calendar {
	t.Helper()
	cal, err := calendar.New(calendar.Config{
		Zone:            "Z",
		Begin:           begin,
		End:             end,
		RegularHolidays: []time.Weekday{time.Saturday, time.Sunday},
	})
	if err != nil {
		t.Fatalf("building test calendar: %v", err)
	}
	return cal
}

// Task options
type TaskOption func(*taskSpec)

type taskSpec struct {
	workload    float64
	progress    float64
	previous    []string
	staticBegin *time.Time
	resources   []string
}

func WithWorkload(days float64) TaskOption {
	return func(s *taskSpec) {
		s.workload = days
	}
}

func WithProgress(ratio float64) TaskOption {
	return func(s *taskSpec) {
		s.progress = ratio
	}
}

func WithPrevious(ids ...string) TaskOption {
	return func(s *taskSpec) {
		s.previous = ids
	}
}

func WithStaticBegin(d time.Time) TaskOption {
	return func(s *taskSpec) {
		s.staticBegin = &d
	}
}

func WithResources(ids ...string) TaskOption {
	return func(s *taskSpec) {
		s.resources = ids
	}
}

// AddTask creates a task under parentID with the given id and options.
func AddTask(t *testing.T, g *timeline.Graph, parentID, id string, opts ...TaskOption) *domain.Node {
	t.Helper()
	spec := taskSpec{}
	for _, opt := range opts {
		opt(&spec)
	}

	task, err := g.AddTask(parentID, id, "task "+id)
	if err != nil {
		t.Fatalf("adding task %s: %v", id, err)
	}
	if err := g.SetWorkload(id, spec.workload); err != nil {
		t.Fatalf("setting workload of %s: %v", id, err)
	}
	if spec.progress > 0 {
		if err := g.SetProgress(id, spec.progress); err != nil {
			t.Fatalf("setting progress of %s: %v", id, err)
		}
	}
	if len(spec.previous) > 0 {
		if err := g.SetPrevious(id, spec.previous); err != nil {
			t.Fatalf("setting previous of %s: %v", id, err)
		}
	}
	if spec.staticBegin != nil {
		if err := g.SetStaticBegin(id, spec.staticBegin); err != nil {
			t.Fatalf("setting static begin of %s: %v", id, err)
		}
	}
	if len(spec.resources) > 0 {
		if err := g.SetResources(id, spec.resources); err != nil {
			t.Fatalf("setting resources of %s: %v", id, err)
		}
	}
	return task
}

// AddGroup creates a group under parentID with the given id.
func AddGroup(t *testing.T, g *timeline.Graph, parentID, id string) *domain.Node {
	t.Helper()
	group, err := g.AddGroup(parentID, id, "group "+id)
	if err != nil {
		t.Fatalf("adding group %s: %v", id, err)
	}
	return group
}
