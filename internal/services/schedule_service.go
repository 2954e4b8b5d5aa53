package services

import (
	"context"
	"time"

	"ukkm-backend/internal/aggregate"
	"ukkm-backend/internal/models"
	"ukkm-backend/internal/query"
	"ukkm-backend/internal/repositories"
)

type ScheduleService struct {
	Repo *repositories.ScheduleRepository
}

func NewScheduleService(repo *repositories.ScheduleRepository) *ScheduleService {
	return &ScheduleService{Repo: repo}
}

// Months returns the weeks matching q grouped into month sections
func (s *ScheduleService) Months(ctx context.Context, q string) []models.MonthSection {
	return aggregate.GroupByMonth(query.Schedule(s.Repo.List(), q))
}

// Current is the week whose range contains day, else the latest week that
// started before it.
func (s *ScheduleService) Current(ctx context.Context, day time.Time) (models.ScheduleWeek, error) {
	if w, ok := s.Repo.WeekContaining(day); ok {
		return w, nil
	}
	if w, ok := s.Repo.LatestStartedBefore(day); ok {
		return w, nil
	}
	return models.ScheduleWeek{}, ErrNotFound
}
