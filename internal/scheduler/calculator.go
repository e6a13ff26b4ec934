// Package scheduler resolves a date range for every node of a plan tree.
// Dependencies may point at groups whose own ranges depend on further
// predecessors, and the user can create true cycles, so a single
// topological pass is not enough: the calculator runs bounded fixed-point
// relaxation with RangeLoading as the "not yet known" sentinel, converting
// anything still unresolved at the iteration cap into a recursive-error
// marker. Every per-node problem becomes a typed WorkRange state; nothing
// escapes the per-node boundary except through the unknown-error catch-all.
package scheduler

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/alexanderramin/timeplan/internal/calendar"
	"github.com/alexanderramin/timeplan/internal/domain"
	"github.com/alexanderramin/timeplan/internal/timeline"
)

// DefaultRecursiveMax bounds the relaxation loop when no explicit cap is
// configured.
const DefaultRecursiveMax = 1000

// Config tunes one calculator.
type Config struct {
	// RecursiveMax caps the number of relaxation iterations. Must be
	// positive.
	RecursiveMax int
}

// DefaultConfig returns the standard calculator configuration.
func DefaultConfig() Config {
	return Config{RecursiveMax: DefaultRecursiveMax}
}

// Option customizes a Calculator.
type Option func(*Calculator)

// WithLogger routes internal-fault logging to the given logger.
func WithLogger(log *slog.Logger) Option {
	return func(c *Calculator) {
		if log != nil {
			c.log = log
		}
	}
}

// Calculator computes work ranges for plan graphs against one calendar.
// A Calculator is pure and reusable: Run never mutates the graph and keeps
// no state between invocations.
type Calculator struct {
	cal *calendar.Calendar
	cfg Config
	log *slog.Logger
}

// New builds a Calculator. A nil calendar or non-positive RecursiveMax is a
// contract violation and fails here rather than during a pass.
func New(cal *calendar.Calendar, cfg Config, opts ...Option) (*Calculator, error) {
	if cal == nil {
		return nil, fmt.Errorf("scheduler: calendar is required")
	}
	if cfg.RecursiveMax <= 0 {
		return nil, fmt.Errorf("scheduler: recursive max must be positive, got %d", cfg.RecursiveMax)
	}
	c := &Calculator{
		cal: cal,
		cfg: cfg,
		log: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Result is the outcome of one calculation pass.
type Result struct {
	// Ranges maps every node id in the graph to its resolved range. No
	// entry is ever left in the loading state after a completed pass.
	Ranges map[string]domain.WorkRange

	// Iterations is the number of relaxation rounds the pass took.
	Iterations int
}

// Run resolves every node of the graph in one synchronous pass.
func (c *Calculator) Run(g *timeline.Graph) Result {
	ids := g.IDs()
	ranges := make(map[string]domain.WorkRange, len(ids))
	for _, id := range ids {
		ranges[id] = domain.NewFailure(domain.RangeLoading)
	}

	iterations := 0
	for iterations < c.cfg.RecursiveMax {
		iterations++
		changed := false
		for _, id := range ids {
			cur := ranges[id]
			if cur.Resolved() {
				continue
			}
			next := c.resolve(g, id, ranges)
			if !next.Equal(cur) {
				ranges[id] = next
				changed = true
			}
		}
		if !changed {
			break
		}
	}

	// Whatever is still loading sits on a true cycle (or a chain the cap
	// could not reach); it must not stay indeterminate.
	for id, r := range ranges {
		if !r.Resolved() {
			ranges[id] = domain.NewFailure(domain.RangeRecursiveError)
		}
	}

	return Result{Ranges: ranges, Iterations: iterations}
}

// resolve attempts one node. A panic inside node resolution is recovered
// into an unknown-error range for that node alone; the pass continues for
// every other node.
func (c *Calculator) resolve(g *timeline.Graph, id string, ranges map[string]domain.WorkRange) (out domain.WorkRange) {
	defer func() {
		if rec := recover(); rec != nil {
			c.log.Error("timeline resolution fault", "node", id, "panic", rec)
			out = domain.NewFailure(domain.RangeUnknownError)
		}
	}()

	node, ok := g.Node(id)
	if !ok {
		return domain.NewFailure(domain.RangeUnknownError)
	}
	if node.IsGroup() {
		return c.resolveGroup(node, ranges)
	}
	return c.resolveTask(node, ranges)
}

func (c *Calculator) resolveTask(node *domain.Node, ranges map[string]domain.WorkRange) domain.WorkRange {
	// Checked before anything else; not subject to relaxation.
	if node.DependsOnSelf() {
		return domain.NewFailure(domain.RangeSelfSelected)
	}

	var begin time.Time
	switch {
	case node.StaticBegin != nil:
		begin = c.cal.NextBusinessDay(*node.StaticBegin)

	case len(node.Previous) == 0:
		return domain.NewFailure(domain.RangeNoInput)

	default:
		latest, waiting, failures := predecessorEnds(node.Previous, ranges)
		if waiting {
			return domain.NewFailure(domain.RangeLoading)
		}
		if latest == nil {
			return relationFailure(failures)
		}
		begin = c.cal.NextBusinessDay(*latest)
	}

	end := c.cal.AddBusinessDays(begin, node.Workload)
	return domain.NewSuccess(begin, end)
}

func (c *Calculator) resolveGroup(node *domain.Node, ranges map[string]domain.WorkRange) domain.WorkRange {
	if len(node.Children) == 0 {
		return domain.NewFailure(domain.RangeNoChildren)
	}

	var (
		begin, end time.Time
		successes  int
		failures   []domain.RangeState
	)
	for _, childID := range node.Children {
		r, ok := ranges[childID]
		if !ok {
			failures = append(failures, domain.RangeUnknownError)
			continue
		}
		if !r.Resolved() {
			return domain.NewFailure(domain.RangeLoading)
		}
		if !r.IsSuccess() {
			failures = append(failures, r.State)
			continue
		}
		if successes == 0 || r.Begin.Before(begin) {
			begin = r.Begin
		}
		if successes == 0 || r.End.After(end) {
			end = r.End
		}
		successes++
	}

	// Best-effort union: one successful child is enough for the group to
	// display a range, regardless of failed siblings.
	if successes == 0 {
		return relationFailure(failures)
	}
	return domain.NewSuccess(begin, end)
}

// predecessorEnds scans a dependency set. It returns the latest successful
// end, whether any referenced node is still loading, and the failure states
// of the rest. Unknown references count as failed predecessors.
func predecessorEnds(previous []string, ranges map[string]domain.WorkRange) (latest *time.Time, waiting bool, failures []domain.RangeState) {
	for _, prev := range previous {
		r, ok := ranges[prev]
		if !ok {
			failures = append(failures, domain.RangeUnknownError)
			continue
		}
		if !r.Resolved() {
			return nil, true, nil
		}
		if !r.IsSuccess() {
			failures = append(failures, r.State)
			continue
		}
		if latest == nil || r.End.After(*latest) {
			end := r.End
			latest = &end
		}
	}
	return latest, false, failures
}

// relationFailure classifies an all-predecessors-failed (or
// all-children-failed) condition: pure missing-input failures propagate as
// relation-no-input, anything harder as relation-error.
func relationFailure(failures []domain.RangeState) domain.WorkRange {
	if len(failures) == 0 {
		return domain.NewFailure(domain.RangeRelationNoInput)
	}
	for _, state := range failures {
		switch state {
		case domain.RangeNoInput, domain.RangeRelationNoInput, domain.RangeNoChildren:
		default:
			return domain.NewFailure(domain.RangeRelationError)
		}
	}
	return domain.NewFailure(domain.RangeRelationNoInput)
}
