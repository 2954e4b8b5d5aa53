package services

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"ukkm-backend/internal/aggregate"
	"ukkm-backend/internal/models"
	"ukkm-backend/internal/query"
	"ukkm-backend/internal/repositories"
	"ukkm-backend/internal/timeutil"
)

type SampleService struct {
	Repo      *repositories.SampleRepository
	Schedule  *repositories.ScheduleRepository
	publisher ChangePublisher
	logger    *zap.Logger
}

func NewSampleService(repo *repositories.SampleRepository, schedule *repositories.ScheduleRepository, publisher ChangePublisher, logger *zap.Logger) *SampleService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SampleService{Repo: repo, Schedule: schedule, publisher: publisherOrDiscard(publisher), logger: logger}
}

// SampleList is the sample page. Counts cover the whole collection, not
// just the filtered records.
type SampleList struct {
	Filter  query.SampleFilter  `json:"filter"`
	Counts  models.SampleCounts `json:"counts"`
	Records []models.Sample     `json:"records"`
}

func (s *SampleService) List(ctx context.Context, filter query.SampleFilter) *SampleList {
	all := s.Repo.List()
	return &SampleList{
		Filter:  filter,
		Counts:  aggregate.SampleStatusCounts(all),
		Records: filter.Apply(all),
	}
}

func (s *SampleService) Create(ctx context.Context, req *models.CreateSampleRequest) (models.Sample, error) {
	sample := models.Sample{
		Week:         req.Week,
		Date:         timeutil.FromInputDate(strings.TrimSpace(req.Date)),
		Time:         strings.TrimSpace(req.Time),
		FoodType:     strings.TrimSpace(req.FoodType),
		AnalysisType: strings.TrimSpace(req.AnalysisType),
		Location:     strings.TrimSpace(req.Location),
		Lab:          strings.TrimSpace(req.Lab),
		Status:       req.Status,
		Notes:        strings.TrimSpace(req.Notes),
	}

	switch {
	case sample.Date == "":
		return models.Sample{}, invalid("date is required")
	case sample.FoodType == "":
		return models.Sample{}, invalid("food type is required")
	case sample.AnalysisType == "":
		return models.Sample{}, invalid("analysis type is required")
	case sample.Location == "":
		return models.Sample{}, invalid("location is required")
	case sample.Lab == "":
		return models.Sample{}, invalid("lab is required")
	}

	if sample.Status == "" {
		sample.Status = models.SamplePending
	}
	if !sample.Status.Valid() {
		return models.Sample{}, invalid("status must be PENDING, GAGAL or BERJAYA")
	}
	if sample.Week < 0 {
		return models.Sample{}, invalid("week must not be negative")
	}
	if sample.Week == 0 {
		sample.Week = s.weekOf(sample.Date)
	}

	created := s.Repo.Create(sample)
	s.logger.Info("sample registered", zap.Int("id", created.ID), zap.String("food_type", created.FoodType))
	recordMutation(s.publisher, KindSample, ActionCreated, created.ID)
	return created, nil
}

// weekOf finds the epidemiological week containing a display date, or 0
func (s *SampleService) weekOf(display string) int {
	if s.Schedule == nil {
		return 0
	}
	day, ok := timeutil.ParseDisplayDate(display)
	if !ok {
		return 0
	}
	if w, ok := s.Schedule.WeekContaining(day); ok {
		return w.Week
	}
	return 0
}
