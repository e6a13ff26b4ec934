package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/timeplan/internal/calendar"
	"github.com/alexanderramin/timeplan/internal/domain"
	"github.com/alexanderramin/timeplan/internal/scheduler"
	"github.com/alexanderramin/timeplan/internal/timeline"
)

const dateLayout = "2006-01-02"

// FormatSchedule renders the per-node calculation result as an indented
// tree table: title, state, resolved range and workload per row, followed
// by the total success range.
func FormatSchedule(g *timeline.Graph, result scheduler.Result) string {
	var b strings.Builder
	b.WriteString(Header("schedule"))
	b.WriteString("\n")

	var rows [][]string
	appendRows(g, domain.RootID, 0, result.Ranges, &rows)
	b.WriteString(RenderTable(
		[]string{"TIMELINE", "STATE", "BEGIN", "END", "DAYS"},
		rows,
	))

	if span, ok := scheduler.TotalSuccessRange(result.Ranges); ok {
		b.WriteString(fmt.Sprintf("\n%s %s → %s\n",
			Bold("Total:"),
			span.Begin.Format(dateLayout),
			span.End.Format(dateLayout)))
	} else {
		b.WriteString("\n" + Dim("No timeline resolved successfully.") + "\n")
	}
	b.WriteString(Dim(fmt.Sprintf("Converged after %d iteration(s).", result.Iterations)) + "\n")

	return b.String()
}

func appendRows(g *timeline.Graph, id string, depth int, ranges map[string]domain.WorkRange, rows *[][]string) {
	node, ok := g.Node(id)
	if !ok {
		return
	}

	if id != domain.RootID {
		*rows = append(*rows, scheduleRow(node, ranges[id], depth))
	}
	for _, child := range node.Children {
		appendRows(g, child, depth+1, ranges, rows)
	}
}

func scheduleRow(node *domain.Node, r domain.WorkRange, depth int) []string {
	indent := strings.Repeat("  ", depth-1)
	title := node.Title
	if title == "" {
		title = shortID(node.ID)
	}
	if node.IsGroup() {
		title = Bold(title)
	}

	begin, end := "", ""
	if r.IsSuccess() {
		begin = r.Begin.Format(dateLayout)
		end = r.End.Format(dateLayout)
	} else {
		begin = Dim(r.Reason())
	}

	days := ""
	if node.IsTask() {
		days = strconv.FormatFloat(node.Workload, 'f', -1, 64)
	}

	return []string{indent + title, StateIndicator(r.State), begin, end, days}
}

// FormatDayIndex renders the per-day resource index. With conflictsOnly,
// only days carrying a double-booked resource appear.
func FormatDayIndex(index scheduler.DayIndex, cal *calendar.Calendar, conflictsOnly bool) string {
	var b strings.Builder
	b.WriteString(Header("days"))
	b.WriteString("\n")

	var rows [][]string
	for _, day := range cal.Days() {
		info, ok := index[day]
		if !ok {
			continue
		}
		overbooked := info.Overbooked()
		if conflictsOnly && len(overbooked) == 0 {
			continue
		}
		if conflictsOnly || len(info.Tasks) > 0 {
			rows = append(rows, dayRow(info, overbooked, cal))
		}
	}

	if len(rows) == 0 {
		if conflictsOnly {
			b.WriteString(Dim("No resource conflicts.") + "\n")
		} else {
			b.WriteString(Dim("No active days.") + "\n")
		}
		return b.String()
	}

	b.WriteString(RenderTable(
		[]string{"DATE", "DAY", "TASKS", "CONFLICTS"},
		rows,
	))
	return b.String()
}

func dayRow(info *domain.DayInfo, overbooked []string, cal *calendar.Calendar) []string {
	date := info.Date.Format(dateLayout)
	weekday := info.Date.Format("Mon")
	if !cal.IsBusinessDay(info.Date) {
		weekday = Dim(weekday + " (off)")
	}

	conflicts := ""
	if len(overbooked) > 0 {
		conflicts = paint(StyleRed, strings.Join(overbooked, ", "))
	}

	return []string{date, weekday, strconv.Itoa(len(info.Tasks)), conflicts}
}

func shortID(id string) string {
	if len(id) >= 8 {
		return id[:8]
	}
	return id
}
