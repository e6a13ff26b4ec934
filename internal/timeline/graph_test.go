package timeline

import (
	"testing"
	"time"

	"github.com/alexanderramin/timeplan/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGraph_HasRoot(t *testing.T) {
	g := NewGraph()
	root, ok := g.Node(domain.RootID)
	require.True(t, ok)
	assert.True(t, root.IsGroup())
	assert.Equal(t, 1, g.Len())

	_, hasParent := g.Parent(domain.RootID)
	assert.False(t, hasParent)
}

func TestAddTask_MintsIDWhenEmpty(t *testing.T) {
	g := NewGraph()
	task, err := g.AddTask(domain.RootID, "", "reading")
	require.NoError(t, err)
	assert.NotEmpty(t, task.ID)
	assert.Equal(t, domain.KindTask, g.Kind(task.ID))

	parent, ok := g.Parent(task.ID)
	require.True(t, ok)
	assert.Equal(t, domain.RootID, parent)
}

func TestAdd_Rejections(t *testing.T) {
	g := NewGraph()
	_, err := g.AddTask(domain.RootID, "t1", "first")
	require.NoError(t, err)

	_, err = g.AddTask(domain.RootID, "t1", "duplicate")
	assert.Error(t, err, "duplicate id")

	_, err = g.AddTask(domain.RootID, domain.RootID, "reserved")
	assert.Error(t, err, "root id is reserved")

	_, err = g.AddTask("missing", "t2", "orphan")
	assert.Error(t, err, "unknown parent")

	_, err = g.AddGroup("t1", "g1", "under a task")
	assert.Error(t, err, "tasks cannot have children")
}

func TestChildren_OrderedAndCopied(t *testing.T) {
	g := NewGraph()
	for _, id := range []string{"a", "b", "c"} {
		_, err := g.AddTask(domain.RootID, id, id)
		require.NoError(t, err)
	}

	children := g.Children(domain.RootID)
	assert.Equal(t, []string{"a", "b", "c"}, children)

	children[0] = "mutated"
	assert.Equal(t, []string{"a", "b", "c"}, g.Children(domain.RootID), "lookup returns a copy")
}

func TestRemove_SubtreeAndDependencyDetach(t *testing.T) {
	g := NewGraph()
	_, err := g.AddGroup(domain.RootID, "g1", "phase")
	require.NoError(t, err)
	_, err = g.AddTask("g1", "t1", "inner")
	require.NoError(t, err)
	_, err = g.AddTask(domain.RootID, "t2", "outer")
	require.NoError(t, err)
	require.NoError(t, g.SetPrevious("t2", []string{"t1", "g1"}))

	require.NoError(t, g.Remove("g1"))

	assert.False(t, g.Contains("g1"))
	assert.False(t, g.Contains("t1"))
	assert.Empty(t, g.Previous("t2"), "edges to removed nodes are stripped")
	assert.Equal(t, []string{"t2"}, g.Children(domain.RootID))
}

func TestRemove_Rejections(t *testing.T) {
	g := NewGraph()
	assert.Error(t, g.Remove(domain.RootID))
	assert.Error(t, g.Remove("missing"))
}

func TestMove_ReordersAndReparents(t *testing.T) {
	g := NewGraph()
	_, err := g.AddGroup(domain.RootID, "g1", "phase")
	require.NoError(t, err)
	for _, id := range []string{"a", "b", "c"} {
		_, err := g.AddTask(domain.RootID, id, id)
		require.NoError(t, err)
	}

	require.NoError(t, g.Move("c", domain.RootID, 1))
	assert.Equal(t, []string{"g1", "c", "a", "b"}, g.Children(domain.RootID))

	require.NoError(t, g.Move("a", "g1", 99), "index is clamped")
	assert.Equal(t, []string{"a"}, g.Children("g1"))
	parent, _ := g.Parent("a")
	assert.Equal(t, "g1", parent)
}

func TestMove_Rejections(t *testing.T) {
	g := NewGraph()
	_, err := g.AddGroup(domain.RootID, "g1", "outer")
	require.NoError(t, err)
	_, err = g.AddGroup("g1", "g2", "inner")
	require.NoError(t, err)
	_, err = g.AddTask(domain.RootID, "t1", "task")
	require.NoError(t, err)

	assert.Error(t, g.Move(domain.RootID, "g1", 0), "root cannot move")
	assert.Error(t, g.Move("g1", "g2", 0), "cannot move under own subtree")
	assert.Error(t, g.Move("g1", "g1", 0), "cannot move under itself")
	assert.Error(t, g.Move("g1", "t1", 0), "target parent must be a group")
}

func TestSetters_Validation(t *testing.T) {
	g := NewGraph()
	_, err := g.AddTask(domain.RootID, "t1", "task")
	require.NoError(t, err)
	_, err = g.AddGroup(domain.RootID, "g1", "group")
	require.NoError(t, err)

	assert.Error(t, g.SetWorkload("t1", -1))
	assert.Error(t, g.SetProgress("t1", 1.5))
	assert.Error(t, g.SetWorkload("g1", 2), "groups carry no workload")
	assert.Error(t, g.SetPrevious("t1", []string{domain.RootID}), "root is never a dependency target")

	require.NoError(t, g.SetWorkload("t1", 2.5))
	require.NoError(t, g.SetProgress("t1", 0.4))
	require.NoError(t, g.SetPrevious("t1", []string{"t1"}), "self-reference is stored; the scheduler reports it")
	assert.Equal(t, 2.5, g.Workload("t1"))
	assert.Equal(t, 0.4, g.Progress("t1"))
	assert.Equal(t, []string{"t1"}, g.Previous("t1"))
}

func TestSetStaticBegin(t *testing.T) {
	g := NewGraph()
	_, err := g.AddTask(domain.RootID, "t1", "task")
	require.NoError(t, err)

	begin := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	require.NoError(t, g.SetStaticBegin("t1", &begin))
	require.NotNil(t, g.StaticBegin("t1"))
	assert.Equal(t, begin, *g.StaticBegin("t1"))

	require.NoError(t, g.SetStaticBegin("t1", nil))
	assert.Nil(t, g.StaticBegin("t1"))
}

func TestIDs_DepthFirstOrder(t *testing.T) {
	g := NewGraph()
	_, err := g.AddGroup(domain.RootID, "g1", "phase")
	require.NoError(t, err)
	_, err = g.AddTask("g1", "t1", "inner")
	require.NoError(t, err)
	_, err = g.AddTask(domain.RootID, "t2", "outer")
	require.NoError(t, err)

	assert.Equal(t, []string{domain.RootID, "g1", "t1", "t2"}, g.IDs())
	assert.Equal(t, []string{"t1", "t2"}, g.Tasks())
}
