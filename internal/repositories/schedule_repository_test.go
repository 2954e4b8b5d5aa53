package repositories

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ukkm-backend/internal/models"
	"ukkm-backend/internal/timeutil"
)

func scheduleSeed() []models.ScheduleWeek {
	return []models.ScheduleWeek{
		{Week: 1, StartDate: "30/12/2024", EndDate: "5/1/2025", Month: 1},
		{Week: 2, StartDate: "6/1/2025", EndDate: "12/1/2025", Month: 1},
		{Week: 48, StartDate: "24/11/2025", EndDate: "30/11/2025", Month: 11},
	}
}

func TestWeekContaining(t *testing.T) {
	repo := NewScheduleRepository(scheduleSeed())

	w, ok := repo.WeekContaining(timeutil.Date(2024, time.December, 31))
	require.True(t, ok)
	assert.Equal(t, 1, w.Week)

	w, ok = repo.WeekContaining(time.Date(2025, time.November, 30, 22, 0, 0, 0, timeutil.MYT))
	require.True(t, ok)
	assert.Equal(t, 48, w.Week)

	_, ok = repo.WeekContaining(timeutil.Date(2025, time.June, 1))
	assert.False(t, ok)
}

func TestLatestStartedBefore(t *testing.T) {
	repo := NewScheduleRepository(scheduleSeed())

	w, ok := repo.LatestStartedBefore(timeutil.Date(2025, time.June, 1))
	require.True(t, ok)
	assert.Equal(t, 2, w.Week)

	_, ok = repo.LatestStartedBefore(timeutil.Date(2024, time.January, 1))
	assert.False(t, ok)
}

func TestFindByWeek(t *testing.T) {
	repo := NewScheduleRepository(scheduleSeed())
	w, ok := repo.FindByWeek(48)
	require.True(t, ok)
	assert.Equal(t, 11, w.Month)

	_, ok = repo.FindByWeek(30)
	assert.False(t, ok)
}
