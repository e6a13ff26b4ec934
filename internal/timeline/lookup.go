package timeline

import (
	"time"

	"github.com/alexanderramin/timeplan/internal/domain"
)

// The lookup side of the graph. A calculation pass uses only these; none of
// them mutate, and slice results are copies.

// Node returns the node with the given id.
func (g *Graph) Node(id string) (*domain.Node, bool) {
	node, ok := g.nodes[id]
	return node, ok
}

// Contains reports whether id names a node in the graph.
func (g *Graph) Contains(id string) bool {
	_, ok := g.nodes[id]
	return ok
}

// Len returns the number of nodes, including the root group.
func (g *Graph) Len() int { return len(g.nodes) }

// Parent returns the parent id of a node; the root (and unknown ids) have
// none.
func (g *Graph) Parent(id string) (string, bool) {
	parent, ok := g.parents[id]
	return parent, ok
}

// Children returns a copy of a group's ordered child ids.
func (g *Graph) Children(id string) []string {
	node, ok := g.nodes[id]
	if !ok {
		return nil
	}
	return append([]string(nil), node.Children...)
}

// Kind returns the node kind, or "" for an unknown id.
func (g *Graph) Kind(id string) domain.NodeKind {
	node, ok := g.nodes[id]
	if !ok {
		return ""
	}
	return node.Kind
}

// Workload returns a task's workload in business days.
func (g *Graph) Workload(id string) float64 {
	node, ok := g.nodes[id]
	if !ok {
		return 0
	}
	return node.Workload
}

// Progress returns a task's completion ratio.
func (g *Graph) Progress(id string) float64 {
	node, ok := g.nodes[id]
	if !ok {
		return 0
	}
	return node.Progress
}

// Previous returns a copy of a task's dependency set.
func (g *Graph) Previous(id string) []string {
	node, ok := g.nodes[id]
	if !ok {
		return nil
	}
	return append([]string(nil), node.Previous...)
}

// StaticBegin returns a task's fixed start date, if set.
func (g *Graph) StaticBegin(id string) *time.Time {
	node, ok := g.nodes[id]
	if !ok {
		return nil
	}
	return node.StaticBegin
}

// Resources returns a copy of a task's resource assignment.
func (g *Graph) Resources(id string) []string {
	node, ok := g.nodes[id]
	if !ok {
		return nil
	}
	return append([]string(nil), node.Resources...)
}

// IDs returns every node id in deterministic depth-first order starting at
// the root. The scheduler iterates in this order so repeated passes over an
// unmodified graph behave identically.
func (g *Graph) IDs() []string {
	out := make([]string, 0, len(g.nodes))
	g.walk(domain.RootID, &out)
	return out
}

func (g *Graph) walk(id string, out *[]string) {
	node, ok := g.nodes[id]
	if !ok {
		return
	}
	*out = append(*out, id)
	for _, child := range node.Children {
		g.walk(child, out)
	}
}

// Tasks returns the ids of every task node, in depth-first order.
func (g *Graph) Tasks() []string {
	var out []string
	for _, id := range g.IDs() {
		if g.nodes[id].IsTask() {
			out = append(out, id)
		}
	}
	return out
}
