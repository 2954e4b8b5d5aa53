package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ukkm-backend/internal/models"
	"ukkm-backend/internal/timeutil"
)

func dayCells(g Grid) []Cell {
	var out []Cell
	for _, c := range g.Cells {
		if !c.Padding {
			out = append(out, c)
		}
	}
	return out
}

func eventsFor(g Grid, recordID int) map[int][]int {
	out := make(map[int][]int)
	for _, c := range g.Cells {
		for _, e := range c.Events {
			if e.RecordID == recordID {
				out[c.Day] = append(out[c.Day], e.Slot)
			}
		}
	}
	return out
}

func TestProjectGridShape(t *testing.T) {
	tests := []struct {
		year    int
		month   time.Month
		days    int
		padding int
	}{
		{2025, time.April, 30, 2},    // 1 April 2025 is a Tuesday
		{2025, time.June, 30, 0},     // Sunday
		{2025, time.February, 28, 6}, // Saturday
		{2024, time.February, 29, 4}, // Thursday
		{2025, time.November, 30, 6},
	}
	for _, tc := range tests {
		g := Project(tc.year, tc.month, nil, time.Time{})
		assert.Equal(t, tc.days, len(dayCells(g)), "%d-%d", tc.year, tc.month)
		assert.Equal(t, tc.padding, g.Padding, "%d-%d", tc.year, tc.month)
		assert.Equal(t, tc.padding+tc.days, len(g.Cells))
		for i := 0; i < tc.padding; i++ {
			assert.True(t, g.Cells[i].Padding)
			assert.Empty(t, g.Cells[i].Events)
		}
		assert.Equal(t, 1, g.Cells[tc.padding].Day)
	}
}

func TestProjectPlacesSlotOneEvent(t *testing.T) {
	records := []models.Inspection{
		{ID: 1, Name: "SK SIK", Visits: [3]models.Visit{{Date: "28/4/2025"}}},
	}
	g := Project(2025, time.April, records, time.Time{})

	assert.Equal(t, map[int][]int{28: {1}}, eventsFor(g, 1))

	cell := g.Cells[g.Padding+27]
	require.Equal(t, 28, cell.Day)
	require.Len(t, cell.Events, 1)
	assert.Equal(t, "SK SIK", cell.Events[0].Name)
	assert.Equal(t, models.ToneBlue, cell.Events[0].Style.Tone)
}

func TestProjectMultipleSlots(t *testing.T) {
	records := []models.Inspection{
		{ID: 7, Name: "A", Visits: [3]models.Visit{{Date: "2/9/2025"}, {Date: "2/9/2025"}, {Date: "21/9/2025"}}},
		{ID: 8, Name: "B", Visits: [3]models.Visit{{Date: "2/9/2025"}}},
		{ID: 9, Name: "C", Visits: [3]models.Visit{{Date: "2/10/2025"}, {Date: "garbage"}}},
	}
	g := Project(2025, time.September, records, time.Time{})

	assert.Equal(t, map[int][]int{2: {1, 2}, 21: {3}}, eventsFor(g, 7))
	assert.Equal(t, map[int][]int{2: {1}}, eventsFor(g, 8))
	assert.Empty(t, eventsFor(g, 9))

	day2 := g.Cells[g.Padding+1]
	require.Len(t, day2.Events, 3)
	assert.Equal(t, []int{7, 7, 8}, []int{day2.Events[0].RecordID, day2.Events[1].RecordID, day2.Events[2].RecordID})
}

func TestProjectTwoDigitYear(t *testing.T) {
	records := []models.Inspection{{ID: 10, Name: "SK KOTA AUR", Visits: [3]models.Visit{{Date: "28/5/2025"}, {Date: "28/10/25"}}}}
	g := Project(2025, time.October, records, time.Time{})
	assert.Equal(t, map[int][]int{28: {2}}, eventsFor(g, 10))
}

func TestProjectIgnoresOtherYears(t *testing.T) {
	records := []models.Inspection{{ID: 1, Visits: [3]models.Visit{{Date: "28/4/2024"}}}}
	g := Project(2025, time.April, records, time.Time{})
	assert.Empty(t, eventsFor(g, 1))
}

func TestProjectMarksToday(t *testing.T) {
	today := time.Date(2025, time.April, 16, 15, 30, 0, 0, timeutil.MYT)
	g := Project(2025, time.April, nil, today)

	var marked []int
	for _, c := range g.Cells {
		if c.IsToday {
			marked = append(marked, c.Day)
		}
	}
	assert.Equal(t, []int{16}, marked)

	other := Project(2025, time.May, nil, today)
	for _, c := range other.Cells {
		assert.False(t, c.IsToday)
	}
}

func TestNavigation(t *testing.T) {
	assert.Equal(t, Month{2026, time.January}, Month{2025, time.December}.Next())
	assert.Equal(t, Month{2024, time.December}, Month{2025, time.January}.Prev())
	assert.Equal(t, Month{2025, time.May}, Month{2025, time.April}.Next())

	g := Project(2025, time.January, nil, time.Time{})
	assert.Equal(t, Month{2024, time.December}, g.Previous)
	assert.Equal(t, Month{2025, time.February}, g.Following)
	assert.Equal(t, "Januari 2025", g.Title)
}

func TestProjectNormalizesMonthOverflow(t *testing.T) {
	g := Project(2025, 13, nil, time.Time{})
	assert.Equal(t, Month{2026, time.January}, g.Month)

	g = Project(2025, 0, nil, time.Time{})
	assert.Equal(t, Month{2024, time.December}, g.Month)
}
