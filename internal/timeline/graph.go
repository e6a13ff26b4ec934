// Package timeline holds the plan tree the scheduler reads: groups and
// tasks keyed by id, with parent/child structure and dependency edges.
// Mutation happens through Graph methods that keep the tree shape intact;
// a calculation pass only uses the lookup side.
package timeline

import (
	"fmt"
	"time"

	"github.com/alexanderramin/timeplan/internal/domain"
	"github.com/google/uuid"
)

// Graph is a snapshot of the plan tree. Every graph owns an implicit root
// group with id domain.RootID; all other nodes hang below it.
type Graph struct {
	nodes   map[string]*domain.Node
	parents map[string]string // child id -> parent id; root has no entry
}

// NewGraph creates an empty graph containing only the implicit root group.
func NewGraph() *Graph {
	g := &Graph{
		nodes:   make(map[string]*domain.Node),
		parents: make(map[string]string),
	}
	g.nodes[domain.RootID] = &domain.Node{
		ID:   domain.RootID,
		Kind: domain.KindGroup,
	}
	return g
}

// AddGroup appends a new group under parentID. An empty id mints a UUID.
func (g *Graph) AddGroup(parentID, id, title string) (*domain.Node, error) {
	return g.add(parentID, id, title, domain.KindGroup)
}

// AddTask appends a new task under parentID. An empty id mints a UUID.
func (g *Graph) AddTask(parentID, id, title string) (*domain.Node, error) {
	return g.add(parentID, id, title, domain.KindTask)
}

func (g *Graph) add(parentID, id, title string, kind domain.NodeKind) (*domain.Node, error) {
	parent, ok := g.nodes[parentID]
	if !ok {
		return nil, fmt.Errorf("timeline: parent %s not found", parentID)
	}
	if !parent.IsGroup() {
		return nil, fmt.Errorf("timeline: parent %s is not a group", parentID)
	}
	if id == "" {
		id = uuid.New().String()
	}
	if id == domain.RootID {
		return nil, fmt.Errorf("timeline: id %s is reserved for the root group", id)
	}
	if _, exists := g.nodes[id]; exists {
		return nil, fmt.Errorf("timeline: duplicate node id %s", id)
	}

	now := time.Now().UTC()
	node := &domain.Node{
		ID:        id,
		Kind:      kind,
		Title:     title,
		CreatedAt: now,
		UpdatedAt: now,
	}
	g.nodes[id] = node
	g.parents[id] = parentID
	parent.Children = append(parent.Children, id)
	return node, nil
}

// Remove deletes a node and its whole subtree, and strips every dependency
// edge that pointed at a removed node. The root cannot be removed.
func (g *Graph) Remove(id string) error {
	if id == domain.RootID {
		return fmt.Errorf("timeline: cannot remove the root group")
	}
	node, ok := g.nodes[id]
	if !ok {
		return fmt.Errorf("timeline: node %s not found", id)
	}

	removed := make(map[string]bool)
	g.collect(node, removed)

	parentID := g.parents[id]
	parent := g.nodes[parentID]
	parent.Children = without(parent.Children, id)

	for rid := range removed {
		delete(g.nodes, rid)
		delete(g.parents, rid)
	}
	for _, n := range g.nodes {
		if !n.IsTask() || len(n.Previous) == 0 {
			continue
		}
		kept := n.Previous[:0]
		for _, prev := range n.Previous {
			if !removed[prev] {
				kept = append(kept, prev)
			}
		}
		n.Previous = kept
	}
	return nil
}

func (g *Graph) collect(node *domain.Node, into map[string]bool) {
	into[node.ID] = true
	for _, childID := range node.Children {
		if child, ok := g.nodes[childID]; ok {
			g.collect(child, into)
		}
	}
}

// Move reparents a node under newParentID at the given child index (clamped
// to the sibling count). Moving the root, moving under a non-group, or
// moving a node under its own subtree is rejected.
func (g *Graph) Move(id, newParentID string, index int) error {
	if id == domain.RootID {
		return fmt.Errorf("timeline: cannot move the root group")
	}
	if _, ok := g.nodes[id]; !ok {
		return fmt.Errorf("timeline: node %s not found", id)
	}
	newParent, ok := g.nodes[newParentID]
	if !ok {
		return fmt.Errorf("timeline: parent %s not found", newParentID)
	}
	if !newParent.IsGroup() {
		return fmt.Errorf("timeline: parent %s is not a group", newParentID)
	}
	if g.isDescendant(newParentID, id) {
		return fmt.Errorf("timeline: cannot move %s under its own subtree", id)
	}

	oldParent := g.nodes[g.parents[id]]
	oldParent.Children = without(oldParent.Children, id)

	if index < 0 {
		index = 0
	}
	if index > len(newParent.Children) {
		index = len(newParent.Children)
	}
	children := newParent.Children
	children = append(children, "")
	copy(children[index+1:], children[index:])
	children[index] = id
	newParent.Children = children
	g.parents[id] = newParentID
	g.touch(id)
	return nil
}

// isDescendant reports whether id lies inside (or is) ancestor's subtree.
func (g *Graph) isDescendant(id, ancestor string) bool {
	for {
		if id == ancestor {
			return true
		}
		parent, ok := g.parents[id]
		if !ok {
			return false
		}
		id = parent
	}
}

// SetWorkload sets a task's workload in business days.
func (g *Graph) SetWorkload(id string, workload float64) error {
	node, err := g.task(id)
	if err != nil {
		return err
	}
	if workload < 0 {
		return fmt.Errorf("timeline: workload must not be negative")
	}
	node.Workload = workload
	g.touch(id)
	return nil
}

// SetProgress sets a task's completion ratio.
func (g *Graph) SetProgress(id string, progress float64) error {
	node, err := g.task(id)
	if err != nil {
		return err
	}
	if progress < 0 || progress > 1 {
		return fmt.Errorf("timeline: progress %v outside [0,1]", progress)
	}
	node.Progress = progress
	g.touch(id)
	return nil
}

// SetStaticBegin sets or clears a task's fixed start date.
func (g *Graph) SetStaticBegin(id string, begin *time.Time) error {
	node, err := g.task(id)
	if err != nil {
		return err
	}
	node.StaticBegin = begin
	g.touch(id)
	return nil
}

// SetPrevious replaces a task's dependency set. The root group is never a
// legal target. A self-reference is stored as-is; the scheduler reports it
// as a per-node failure rather than the model rejecting the edit.
func (g *Graph) SetPrevious(id string, previous []string) error {
	node, err := g.task(id)
	if err != nil {
		return err
	}
	for _, prev := range previous {
		if prev == domain.RootID {
			return fmt.Errorf("timeline: root group cannot be a dependency target")
		}
	}
	node.Previous = append([]string(nil), previous...)
	g.touch(id)
	return nil
}

// SetResources replaces a task's resource assignment.
func (g *Graph) SetResources(id string, resources []string) error {
	node, err := g.task(id)
	if err != nil {
		return err
	}
	node.Resources = append([]string(nil), resources...)
	g.touch(id)
	return nil
}

func (g *Graph) task(id string) (*domain.Node, error) {
	node, ok := g.nodes[id]
	if !ok {
		return nil, fmt.Errorf("timeline: node %s not found", id)
	}
	if !node.IsTask() {
		return nil, fmt.Errorf("timeline: node %s is not a task", id)
	}
	return node, nil
}

func (g *Graph) touch(id string) {
	if node, ok := g.nodes[id]; ok {
		node.UpdatedAt = time.Now().UTC()
	}
}

func without(ids []string, id string) []string {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
