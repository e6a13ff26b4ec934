package scheduler

import (
	"sort"
	"time"

	"github.com/alexanderramin/timeplan/internal/calendar"
	"github.com/alexanderramin/timeplan/internal/domain"
	"github.com/alexanderramin/timeplan/internal/timeline"
)

// DayIndex maps every day of the plan's bounding range to its activity
// index. Keys are midnights in the calendar's zone; build lookup keys with
// Calendar.Midnight.
type DayIndex map[time.Time]*domain.DayInfo

// BuildDayIndex derives the per-day resource index from resolved ranges.
// Each task whose successful range covers a day registers its id and its
// resources there. Coverage is half-open: the day a range ends on is free
// for a successor starting at that same instant.
func BuildDayIndex(g *timeline.Graph, ranges map[string]domain.WorkRange, cal *calendar.Calendar) DayIndex {
	index := make(DayIndex)
	for _, day := range cal.Days() {
		index[day] = domain.NewDayInfo(day)
	}

	for _, id := range g.Tasks() {
		r, ok := ranges[id]
		if !ok || !r.IsSuccess() {
			continue
		}
		resources := g.Resources(id)
		for day := cal.Midnight(r.Begin); day.Before(r.End); day = day.AddDate(0, 0, 1) {
			if info, ok := index[day]; ok {
				info.Register(id, resources)
			}
		}
	}

	return index
}

// OverbookedDays returns the days on which at least one resource is claimed
// by more than one task, in ascending date order.
func (idx DayIndex) OverbookedDays() []*domain.DayInfo {
	var out []*domain.DayInfo
	for _, info := range idx {
		if len(info.Overbooked()) > 0 {
			out = append(out, info)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}
