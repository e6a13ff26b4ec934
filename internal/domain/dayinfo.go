package domain

import "time"

// DayInfo indexes one calendar day: which tasks are active and which
// resources those tasks claim. More than one task per resource on the same
// day is a double-booking; judging whether that matters is the caller's
// policy, the index only surfaces the cardinality.
type DayInfo struct {
	Date time.Time

	// Tasks holds the ids of tasks whose resolved range covers this day.
	Tasks map[string]bool

	// Assignments maps a resource id to the ids of tasks claiming it.
	Assignments map[string][]string
}

func NewDayInfo(date time.Time) *DayInfo {
	return &DayInfo{
		Date:        date,
		Tasks:       make(map[string]bool),
		Assignments: make(map[string][]string),
	}
}

// Register records a task active on this day together with its resources.
// Registering the same task twice is a no-op.
func (d *DayInfo) Register(taskID string, resources []string) {
	if d.Tasks[taskID] {
		return
	}
	d.Tasks[taskID] = true
	for _, res := range resources {
		d.Assignments[res] = append(d.Assignments[res], taskID)
	}
}

// Overbooked returns the resources claimed by more than one task this day.
func (d *DayInfo) Overbooked() []string {
	var out []string
	for res, tasks := range d.Assignments {
		if len(tasks) > 1 {
			out = append(out, res)
		}
	}
	return out
}
