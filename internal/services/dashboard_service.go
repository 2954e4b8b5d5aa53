package services

import (
	"context"
	"fmt"
	"time"

	"ukkm-backend/internal/aggregate"
	"ukkm-backend/internal/calendar"
	"ukkm-backend/internal/models"
	"ukkm-backend/internal/repositories"
	"ukkm-backend/internal/timeutil"
)

// DashboardService assembles the overview page from every collection
type DashboardService struct {
	Store       *repositories.Store
	Inspections *InspectionService
	Schedule    *ScheduleService
	Stats       []models.StatCategory
	Compliance  []models.ComplianceSlice
}

func NewDashboardService(store *repositories.Store, inspections *InspectionService, schedule *ScheduleService, stats []models.StatCategory, compliance []models.ComplianceSlice) *DashboardService {
	return &DashboardService{
		Store:       store,
		Inspections: inspections,
		Schedule:    schedule,
		Stats:       stats,
		Compliance:  compliance,
	}
}

func (s *DashboardService) Summary(ctx context.Context, now time.Time) *models.DashboardSummary {
	now = now.In(timeutil.MYT)
	summary := &models.DashboardSummary{
		Today:          LongDate(now),
		Progress:       aggregate.Progress(s.Stats),
		Compliance:     aggregate.ComplianceShares(s.Compliance),
		Inspections:    s.Store.Inspections.Count(),
		Samples:        aggregate.SampleStatusCounts(s.Store.Samples.List()),
		Seizures:       aggregate.SeizureSummary(s.Store.Seizures.List()),
		UpcomingVisits: s.Inspections.UpcomingVisits(now),
	}
	if w, err := s.Schedule.Current(ctx, now); err == nil {
		summary.CurrentWeek = &w
	}
	return summary
}

// LongDate renders t as e.g. "Isnin, 28 April 2025"
func LongDate(t time.Time) string {
	return fmt.Sprintf("%s, %d %s %d", calendar.WeekdayHeaders[t.Weekday()], t.Day(), models.MonthName(int(t.Month())), t.Year())
}
