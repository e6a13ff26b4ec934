// Package calendar provides the time-zone-aware business-day arithmetic the
// scheduler builds on: a Calendar owns one location, an inclusive plan
// range, a weekly holiday set and a holiday-event index, and every
// operation normalizes instants into that location so values from two
// different declared zones can never meet inside one computation.
package calendar

import (
	"fmt"
	"time"
)

// EventKind classifies a dated holiday event.
type EventKind string

const (
	EventHoliday EventKind = "holiday"
	EventSpecial EventKind = "special"
)

// ValidEventKinds is the canonical set of accepted event kind strings.
var ValidEventKinds = map[string]bool{
	"holiday": true, "special": true,
}

// Event is a single dated holiday entry.
type Event struct {
	Date time.Time
	Kind EventKind
}

// Config describes a plan calendar before construction.
type Config struct {
	// Zone is a UTC offset such as "+09:00" or "-05:30", or "Z"/"UTC",
	// or an IANA zone name.
	Zone string

	// Begin and End bound the whole plan, inclusive.
	Begin time.Time
	End   time.Time

	// RegularHolidays are the weekly non-business days (e.g. Saturday,
	// Sunday).
	RegularHolidays []time.Weekday

	Events []Event
}

// Calendar answers business-day questions for one plan. Construct with New;
// the zero value is not usable.
type Calendar struct {
	loc    *time.Location
	begin  time.Time // midnight in loc
	end    time.Time // midnight in loc
	weekly [7]bool
	events map[time.Time]EventKind
}

// New validates the config and builds a Calendar. Misuse (bad zone,
// inverted range, out-of-range weekday, all seven weekdays off, bad event
// kind) is rejected here rather than branched on during calculation.
func New(cfg Config) (*Calendar, error) {
	loc, err := ParseZone(cfg.Zone)
	if err != nil {
		return nil, err
	}

	c := &Calendar{
		loc:    loc,
		events: make(map[time.Time]EventKind, len(cfg.Events)),
	}
	c.begin = c.Midnight(cfg.Begin)
	c.end = c.Midnight(cfg.End)
	if c.end.Before(c.begin) {
		return nil, fmt.Errorf("calendar: end %s before begin %s",
			c.end.Format(dateLayout), c.begin.Format(dateLayout))
	}

	for _, wd := range cfg.RegularHolidays {
		if wd < time.Sunday || wd > time.Saturday {
			return nil, fmt.Errorf("calendar: invalid weekday %d", wd)
		}
		c.weekly[wd] = true
	}
	all := true
	for _, off := range c.weekly {
		if !off {
			all = false
			break
		}
	}
	if all {
		return nil, fmt.Errorf("calendar: every weekday is a regular holiday")
	}

	for _, ev := range cfg.Events {
		if !ValidEventKinds[string(ev.Kind)] {
			return nil, fmt.Errorf("calendar: invalid event kind %q", ev.Kind)
		}
		c.events[c.Midnight(ev.Date)] = ev.Kind
	}

	return c, nil
}

const dateLayout = "2006-01-02"

// ParseZone resolves a zone description to a location. Accepts "Z", "UTC",
// the empty string, fixed offsets of the form ±HH:MM, and IANA zone names.
func ParseZone(s string) (*time.Location, error) {
	switch s {
	case "", "Z", "UTC":
		return time.UTC, nil
	}
	if len(s) == 6 && (s[0] == '+' || s[0] == '-') && s[3] == ':' {
		t, err := time.Parse("-07:00", s)
		if err != nil {
			return nil, fmt.Errorf("calendar: invalid zone offset %q", s)
		}
		_, secs := t.Zone()
		return time.FixedZone("UTC"+s, secs), nil
	}
	loc, err := time.LoadLocation(s)
	if err != nil {
		return nil, fmt.Errorf("calendar: unknown zone %q", s)
	}
	return loc, nil
}

// Location returns the calendar's declared zone.
func (c *Calendar) Location() *time.Location { return c.loc }

// Begin returns the first day of the plan range, at midnight.
func (c *Calendar) Begin() time.Time { return c.begin }

// End returns the last day of the plan range, at midnight. The range is
// inclusive of this day.
func (c *Calendar) End() time.Time { return c.end }

// Midnight truncates t to midnight in the calendar's zone.
func (c *Calendar) Midnight(t time.Time) time.Time {
	t = t.In(c.loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, c.loc)
}

// Contains reports whether t falls inside the plan's bounding range.
func (c *Calendar) Contains(t time.Time) bool {
	day := c.Midnight(t)
	return !day.Before(c.begin) && !day.After(c.end)
}

// EventAt returns the holiday event declared on t's day, if any.
func (c *Calendar) EventAt(t time.Time) (EventKind, bool) {
	kind, ok := c.events[c.Midnight(t)]
	return kind, ok
}

// IsBusinessDay reports whether t falls on a working day: its weekday is
// not a regular holiday and its day carries no holiday event.
func (c *Calendar) IsBusinessDay(t time.Time) bool {
	day := c.Midnight(t)
	if c.weekly[day.Weekday()] {
		return false
	}
	_, holiday := c.events[day]
	return !holiday
}

// NextBusinessDay returns t unchanged if it already falls on a business
// day, otherwise the midnight of the next business day.
func (c *Calendar) NextBusinessDay(t time.Time) time.Time {
	t = t.In(c.loc)
	for !c.IsBusinessDay(t) {
		t = c.Midnight(t).AddDate(0, 0, 1)
	}
	return t
}

// AddBusinessDays advances begin by days business days. Whole days are
// consumed one at a time, skipping regular and event holidays; a
// fractional remainder lands within the following business day instead of
// spilling past further holidays. Zero (or negative) days returns begin
// unchanged.
func (c *Calendar) AddBusinessDays(begin time.Time, days float64) time.Time {
	cur := begin.In(c.loc)
	for days >= 1 {
		cur = c.NextBusinessDay(cur.AddDate(0, 0, 1))
		days--
	}
	if days > 0 {
		cur = cur.Add(time.Duration(days * 24 * float64(time.Hour)))
	}
	return cur
}

// Days returns every day of the plan's bounding range, inclusive, as
// midnights in the calendar's zone.
func (c *Calendar) Days() []time.Time {
	var out []time.Time
	for day := c.begin; !day.After(c.end); day = day.AddDate(0, 0, 1) {
		out = append(out, day)
	}
	return out
}
