package scheduler

import (
	"testing"

	"github.com/alexanderramin/timeplan/internal/domain"
	"github.com/alexanderramin/timeplan/internal/testutil"
	"github.com/alexanderramin/timeplan/internal/timeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildDayIndex(t *testing.T) {
	cal := testutil.WeekdayCalendar(t, day(1), day(14))
	g := timeline.NewGraph()
	// Mon 8th + 2 business days -> covers Mon and Tue.
	testutil.AddTask(t, g, domain.RootID, "t1",
		testutil.WithStaticBegin(day(8)), testutil.WithWorkload(2),
		testutil.WithResources("alice"))
	// Tue 9th + 1 business day -> covers Tue.
	testutil.AddTask(t, g, domain.RootID, "t2",
		testutil.WithStaticBegin(day(9)), testutil.WithWorkload(1),
		testutil.WithResources("alice", "bob"))

	calc, err := New(cal, DefaultConfig())
	require.NoError(t, err)
	ranges := calc.Run(g).Ranges
	index := BuildDayIndex(g, ranges, cal)

	require.Len(t, index, 14, "one entry per day of the bounding range")

	mon := index[day(8)]
	require.NotNil(t, mon)
	assert.True(t, mon.Tasks["t1"])
	assert.False(t, mon.Tasks["t2"])
	assert.Empty(t, mon.Overbooked())

	tue := index[day(9)]
	require.NotNil(t, tue)
	assert.True(t, tue.Tasks["t1"])
	assert.True(t, tue.Tasks["t2"])
	assert.Equal(t, []string{"alice"}, tue.Overbooked())

	wed := index[day(10)]
	require.NotNil(t, wed)
	assert.Empty(t, wed.Tasks, "coverage is half-open; the end day is free")
}

func TestBuildDayIndex_IgnoresFailedRanges(t *testing.T) {
	cal := testutil.WeekdayCalendar(t, day(1), day(14))
	g := timeline.NewGraph()
	testutil.AddTask(t, g, domain.RootID, "t1",
		testutil.WithWorkload(2), testutil.WithResources("alice"))

	calc, err := New(cal, DefaultConfig())
	require.NoError(t, err)
	index := BuildDayIndex(g, calc.Run(g).Ranges, cal)

	for _, info := range index {
		assert.Empty(t, info.Tasks)
	}
}

func TestBuildDayIndex_ClipsToCalendarRange(t *testing.T) {
	cal := testutil.WeekdayCalendar(t, day(1), day(9))
	g := timeline.NewGraph()
	// Runs past the calendar end; days beyond the range are not indexed.
	testutil.AddTask(t, g, domain.RootID, "t1",
		testutil.WithStaticBegin(day(8)), testutil.WithWorkload(10),
		testutil.WithResources("alice"))

	calc, err := New(cal, DefaultConfig())
	require.NoError(t, err)
	index := BuildDayIndex(g, calc.Run(g).Ranges, cal)

	require.Len(t, index, 9)
	assert.True(t, index[day(8)].Tasks["t1"])
	assert.True(t, index[day(9)].Tasks["t1"])
}

func TestOverbookedDays_SortedByDate(t *testing.T) {
	cal := testutil.WeekdayCalendar(t, day(1), day(14))
	g := timeline.NewGraph()
	testutil.AddTask(t, g, domain.RootID, "t1",
		testutil.WithStaticBegin(day(8)), testutil.WithWorkload(4),
		testutil.WithResources("alice"))
	testutil.AddTask(t, g, domain.RootID, "t2",
		testutil.WithStaticBegin(day(8)), testutil.WithWorkload(4),
		testutil.WithResources("alice"))

	calc, err := New(cal, DefaultConfig())
	require.NoError(t, err)
	index := BuildDayIndex(g, calc.Run(g).Ranges, cal)

	overbooked := index.OverbookedDays()
	require.Len(t, overbooked, 4, "Mon through Thu")
	for i := 1; i < len(overbooked); i++ {
		assert.True(t, overbooked[i-1].Date.Before(overbooked[i].Date))
	}
}
