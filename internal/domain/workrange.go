package domain

import (
	"fmt"
	"time"
)

// WorkRange is the resolved (or failed) date span for one timeline node.
// Begin and End are meaningful only when State is RangeSuccess; every other
// state is a marker whose Reason the UI renders per row.
type WorkRange struct {
	State RangeState
	Begin time.Time
	End   time.Time
}

// NewSuccess builds a successful range. Begin must not be after end.
func NewSuccess(begin, end time.Time) WorkRange {
	if end.Before(begin) {
		panic(fmt.Sprintf("domain: work range end %s before begin %s", end, begin))
	}
	return WorkRange{State: RangeSuccess, Begin: begin, End: end}
}

// NewFailure builds a non-success range carrying only its state.
func NewFailure(state RangeState) WorkRange {
	return WorkRange{State: state}
}

func (r WorkRange) IsSuccess() bool { return r.State == RangeSuccess }

// Resolved reports whether the range has reached a terminal state,
// successful or not. Only RangeLoading is unresolved.
func (r WorkRange) Resolved() bool { return r.State != RangeLoading }

func (r WorkRange) Equal(o WorkRange) bool {
	if r.State != o.State {
		return false
	}
	if r.State != RangeSuccess {
		return true
	}
	return r.Begin.Equal(o.Begin) && r.End.Equal(o.End)
}

// Reason returns the display string for a failure state and "" for success.
func (r WorkRange) Reason() string {
	switch r.State {
	case RangeSuccess:
		return ""
	case RangeLoading:
		return "waiting for other timelines"
	case RangeNoInput:
		return "no start date and no predecessors"
	case RangeSelfSelected:
		return "timeline depends on itself"
	case RangeNoChildren:
		return "group has no children"
	case RangeRelationNoInput:
		return "predecessors have no start input"
	case RangeRelationError:
		return "predecessors failed to resolve"
	case RangeRecursiveError:
		return "dependency loop detected"
	default:
		return "internal error while resolving"
	}
}

// Span is the envelope {earliest begin, latest end} over a set of ranges.
type Span struct {
	Begin time.Time
	End   time.Time
}
