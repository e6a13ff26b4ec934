package domain

type NodeKind string

const (
	KindGroup NodeKind = "group"
	KindTask  NodeKind = "task"
)

// ValidNodeKinds is the canonical set of accepted node kind strings.
var ValidNodeKinds = map[string]bool{
	"group": true, "task": true,
}

// RangeState classifies the outcome of resolving one timeline node.
// RangeSuccess is the only state that carries begin/end data; everything
// else is a terminal failure marker rendered as a per-row reason.
type RangeState string

const (
	RangeSuccess RangeState = "success"

	// RangeLoading is the "not yet known" sentinel used inside a
	// calculation pass. A completed pass never reports it.
	RangeLoading RangeState = "loading"

	RangeNoInput         RangeState = "no_input"
	RangeSelfSelected    RangeState = "self_selected_error"
	RangeNoChildren      RangeState = "no_children"
	RangeRelationNoInput RangeState = "relation_no_input"
	RangeRelationError   RangeState = "relation_error"
	RangeRecursiveError  RangeState = "recursive_error"
	RangeUnknownError    RangeState = "unknown_error"
)
