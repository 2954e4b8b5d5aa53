package repositories

import (
	"time"

	"ukkm-backend/internal/models"
	"ukkm-backend/internal/timeutil"
)

// ScheduleRepository serves the static epidemiological week table
type ScheduleRepository struct {
	weeks []models.ScheduleWeek
}

func NewScheduleRepository(seed []models.ScheduleWeek) *ScheduleRepository {
	weeks := make([]models.ScheduleWeek, len(seed))
	copy(weeks, seed)
	return &ScheduleRepository{weeks: weeks}
}

// List returns a copy of all weeks in table order
func (r *ScheduleRepository) List() []models.ScheduleWeek {
	out := make([]models.ScheduleWeek, len(r.weeks))
	copy(out, r.weeks)
	return out
}

// FindByWeek looks up a week by its number
func (r *ScheduleRepository) FindByWeek(week int) (models.ScheduleWeek, bool) {
	for _, w := range r.weeks {
		if w.Week == week {
			return w, true
		}
	}
	return models.ScheduleWeek{}, false
}

// WeekContaining returns the week whose start..end range covers day.
// Weeks with unparseable dates are skipped.
func (r *ScheduleRepository) WeekContaining(day time.Time) (models.ScheduleWeek, bool) {
	d := timeutil.StartOfDay(day)
	for _, w := range r.weeks {
		start, ok1 := timeutil.ParseDisplayDate(w.StartDate)
		end, ok2 := timeutil.ParseDisplayDate(w.EndDate)
		if !ok1 || !ok2 {
			continue
		}
		if !d.Before(start) && !d.After(end) {
			return w, true
		}
	}
	return models.ScheduleWeek{}, false
}

// LatestStartedBefore returns the week with the latest start date on or before day
func (r *ScheduleRepository) LatestStartedBefore(day time.Time) (models.ScheduleWeek, bool) {
	d := timeutil.StartOfDay(day)
	var (
		best      models.ScheduleWeek
		bestStart time.Time
		found     bool
	)
	for _, w := range r.weeks {
		start, ok := timeutil.ParseDisplayDate(w.StartDate)
		if !ok || start.After(d) {
			continue
		}
		if !found || start.After(bestStart) {
			best, bestStart, found = w, start, true
		}
	}
	return best, found
}
