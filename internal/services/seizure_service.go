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

type SeizureService struct {
	Repo      *repositories.SeizureRepository
	publisher ChangePublisher
	logger    *zap.Logger
}

func NewSeizureService(repo *repositories.SeizureRepository, publisher ChangePublisher, logger *zap.Logger) *SeizureService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SeizureService{Repo: repo, publisher: publisherOrDiscard(publisher), logger: logger}
}

// SeizureList is the seizure page. Stats cover the whole collection.
type SeizureList struct {
	Query   string              `json:"q"`
	Stats   models.SeizureStats `json:"stats"`
	Records []models.Seizure    `json:"records"`
}

func (s *SeizureService) List(ctx context.Context, q string) *SeizureList {
	all := s.Repo.List()
	return &SeizureList{
		Query:   q,
		Stats:   aggregate.SeizureSummary(all),
		Records: query.Seizures(all, q),
	}
}

// NewSeizureForm is the blank form with its defaults filled in
func NewSeizureForm() models.CreateSeizureRequest {
	return models.CreateSeizureRequest{
		Unit:   models.DefaultSeizureUnit,
		Reason: models.ReasonExpired,
		Act:    models.DefaultSeizureAct,
	}
}

func (s *SeizureService) Create(ctx context.Context, req *models.CreateSeizureRequest) (models.Seizure, error) {
	defaults := NewSeizureForm()
	seizure := models.Seizure{
		Date:     timeutil.FromInputDate(strings.TrimSpace(req.Date)),
		Premise:  strings.TrimSpace(req.Premise),
		Item:     strings.TrimSpace(req.Item),
		Quantity: req.Quantity,
		Unit:     strings.TrimSpace(req.Unit),
		Value:    req.Value,
		Reason:   req.Reason,
		Act:      strings.TrimSpace(req.Act),
	}
	if seizure.Unit == "" {
		seizure.Unit = defaults.Unit
	}
	if seizure.Reason == "" {
		seizure.Reason = defaults.Reason
	}
	if seizure.Act == "" {
		seizure.Act = defaults.Act
	}

	switch {
	case seizure.Premise == "":
		return models.Seizure{}, invalid("premise is required")
	case seizure.Date == "":
		return models.Seizure{}, invalid("date is required")
	case seizure.Item == "":
		return models.Seizure{}, invalid("item is required")
	case seizure.Quantity < 0:
		return models.Seizure{}, invalid("quantity must not be negative")
	case seizure.Value < 0:
		return models.Seizure{}, invalid("value must not be negative")
	case !seizure.Reason.Valid():
		return models.Seizure{}, invalid("unknown reason")
	}

	created := s.Repo.Create(seizure)
	s.logger.Info("seizure recorded", zap.Int("id", created.ID), zap.String("premise", created.Premise), zap.Float64("value", created.Value))
	recordMutation(s.publisher, KindSeizure, ActionCreated, created.ID)
	return created, nil
}

// Delete removes a seizure. Confirmation happens in the client.
func (s *SeizureService) Delete(ctx context.Context, id int) error {
	if !s.Repo.Delete(id) {
		return ErrNotFound
	}
	s.logger.Info("seizure deleted", zap.Int("id", id))
	recordMutation(s.publisher, KindSeizure, ActionDeleted, id)
	return nil
}
