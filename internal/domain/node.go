package domain

import "time"

// RootID identifies the implicit root group of every plan. The root always
// exists, cannot be moved or removed, and is never a legal dependency target.
const RootID = "00000000-0000-0000-0000-000000000000"

// Node is one entry in the plan tree, either a group or a task. The two
// kinds share only identity and title; group fields and task fields are
// disjoint and the scheduler matches exhaustively on Kind.
type Node struct {
	ID    string
	Kind  NodeKind
	Title string

	// Group: ordered child node ids. A child has exactly one parent.
	Children []string

	// Task
	Workload    float64 // business days to complete, fractional allowed
	Progress    float64 // completion ratio in [0,1]
	Previous    []string
	StaticBegin *time.Time // fixed start overriding predecessor-derived begin
	Resources   []string

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (n *Node) IsGroup() bool { return n.Kind == KindGroup }

func (n *Node) IsTask() bool { return n.Kind == KindTask }

// DependsOnSelf reports whether the node lists its own id as a predecessor.
// The scheduler treats this as a distinct failure, not as a cycle.
func (n *Node) DependsOnSelf() bool {
	for _, id := range n.Previous {
		if id == n.ID {
			return true
		}
	}
	return false
}

// HasPredecessor reports whether id appears in the node's dependency set.
func (n *Node) HasPredecessor(id string) bool {
	for _, p := range n.Previous {
		if p == id {
			return true
		}
	}
	return false
}
