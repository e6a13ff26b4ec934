package snapshot

import (
	"testing"
	"time"

	"github.com/alexanderramin/timeplan/internal/domain"
	"github.com/alexanderramin/timeplan/internal/scheduler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvert_BuildsGraphAndCalendar(t *testing.T) {
	doc := validDocument()
	require.Empty(t, ValidateDocument(doc))

	g, cal, cfg, err := Convert(doc)
	require.NoError(t, err)

	// Tree shape survives the conversion.
	assert.ElementsMatch(t, []string{"g1", "t3"}, g.Children(domain.RootID))
	assert.Equal(t, []string{"t1", "t2"}, g.Children("g1"))
	assert.Equal(t, domain.KindGroup, g.Kind("g1"))
	assert.Equal(t, domain.KindTask, g.Kind("t2"))

	// Task fields land on the right nodes.
	assert.Equal(t, 3.0, g.Workload("t1"))
	assert.Equal(t, []string{"t1"}, g.Previous("t2"))
	assert.Equal(t, []string{"g1"}, g.Previous("t3"))

	// static_begin is parsed in the calendar zone.
	begin := g.StaticBegin("t1")
	require.NotNil(t, begin)
	assert.Equal(t, "2024-01-02", begin.Format("2006-01-02"))
	assert.Same(t, cal.Location(), begin.Location())

	assert.Equal(t, 100, cfg.RecursiveMax)
}

func TestConvert_PreservesChildOrder(t *testing.T) {
	doc := &Document{
		Timeline: []NodeDoc{
			{ID: "c", Kind: "task"},
			{ID: "a", Kind: "task"},
			{ID: "b", Kind: "task"},
		},
		Calendar: CalendarDoc{Zone: "Z", Begin: "2024-01-01", End: "2024-01-31"},
	}
	g, _, _, err := Convert(doc)
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "a", "b"}, g.Children(domain.RootID))
}

func TestConvert_MintsMissingIDs(t *testing.T) {
	doc := &Document{
		Timeline: []NodeDoc{{Kind: "task", Title: "unnamed"}},
		Calendar: CalendarDoc{Zone: "Z", Begin: "2024-01-01", End: "2024-01-31"},
	}
	g, _, _, err := Convert(doc)
	require.NoError(t, err)
	ids := g.IDs()
	require.Len(t, ids, 2)
	assert.NotEmpty(t, ids[1])
	assert.NotEqual(t, domain.RootID, ids[1])
}

func TestConvert_DefaultRecursiveMax(t *testing.T) {
	doc := validDocument()
	doc.RecursiveMax = 0
	_, _, cfg, err := Convert(doc)
	require.NoError(t, err)
	assert.Equal(t, scheduler.DefaultRecursiveMax, cfg.RecursiveMax)
}

func TestConvert_CalendarHonoursHolidays(t *testing.T) {
	doc := validDocument()
	_, cal, _, err := Convert(doc)
	require.NoError(t, err)

	// 2024-01-06 is a Saturday, 2024-01-08 is a declared event holiday.
	sat := time.Date(2024, 1, 6, 0, 0, 0, 0, cal.Location())
	mon := time.Date(2024, 1, 8, 0, 0, 0, 0, cal.Location())
	tue := time.Date(2024, 1, 9, 0, 0, 0, 0, cal.Location())
	assert.False(t, cal.IsBusinessDay(sat))
	assert.False(t, cal.IsBusinessDay(mon))
	assert.True(t, cal.IsBusinessDay(tue))
}

func TestDocument_RoundTrip(t *testing.T) {
	doc := validDocument()

	data, err := doc.Marshal()
	require.NoError(t, err)

	parsed, err := ParseDocument(data)
	require.NoError(t, err)
	assert.Equal(t, doc, parsed)
}

func TestParseDocument_RejectsMalformedJSON(t *testing.T) {
	_, err := ParseDocument([]byte("{not json"))
	assert.Error(t, err)
}

func TestConvert_ScheduleEndToEnd(t *testing.T) {
	doc := validDocument()
	g, cal, cfg, err := Convert(doc)
	require.NoError(t, err)

	calc, err := scheduler.New(cal, cfg)
	require.NoError(t, err)
	result := calc.Run(g)

	// t1 starts Tue 2nd, three workload days end Friday the 5th.
	r := result.Ranges["t1"]
	require.True(t, r.IsSuccess())
	assert.Equal(t, "2024-01-02", r.Begin.Format("2006-01-02"))
	assert.Equal(t, "2024-01-05", r.End.Format("2006-01-02"))
}
