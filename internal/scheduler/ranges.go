package scheduler

import "github.com/alexanderramin/timeplan/internal/domain"

// TotalSuccessRange returns the envelope {earliest begin, latest end} over
// every successful range in the map. The second return is false when
// nothing resolved successfully.
func TotalSuccessRange(ranges map[string]domain.WorkRange) (domain.Span, bool) {
	var span domain.Span
	found := false
	for _, r := range ranges {
		if !r.IsSuccess() {
			continue
		}
		if !found {
			span = domain.Span{Begin: r.Begin, End: r.End}
			found = true
			continue
		}
		if r.Begin.Before(span.Begin) {
			span.Begin = r.Begin
		}
		if r.End.After(span.End) {
			span.End = r.End
		}
	}
	return span, found
}

// MaxByEnd returns the successful range with the latest end. It is a
// primitive with a caller-side contract: the slice must contain at least
// one successful range, otherwise MaxByEnd panics.
func MaxByEnd(ranges []domain.WorkRange) domain.WorkRange {
	var best domain.WorkRange
	found := false
	for _, r := range ranges {
		if !r.IsSuccess() {
			continue
		}
		if !found || r.End.After(best.End) {
			best = r
			found = true
		}
	}
	if !found {
		panic("scheduler: MaxByEnd called without a successful range")
	}
	return best
}
