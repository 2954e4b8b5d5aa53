package services

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"ukkm-backend/internal/aggregate"
	"ukkm-backend/internal/calendar"
	"ukkm-backend/internal/models"
	"ukkm-backend/internal/query"
	"ukkm-backend/internal/repositories"
	"ukkm-backend/internal/timeutil"
)

type InspectionService struct {
	Repo      *repositories.InspectionRepository
	publisher ChangePublisher
	logger    *zap.Logger
}

func NewInspectionService(repo *repositories.InspectionRepository, publisher ChangePublisher, logger *zap.Logger) *InspectionService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InspectionService{Repo: repo, publisher: publisherOrDiscard(publisher), logger: logger}
}

// InspectionList is the inspection page: filtered records, their grouped
// sections and the category dropdown options.
type InspectionList struct {
	Filter     query.InspectionFilter      `json:"filter"`
	Categories []models.InspectionCategory `json:"categories"`
	Total      int                         `json:"total"`
	Visible    int                         `json:"visible"`
	Records    []models.Inspection         `json:"records"`
	Sections   []aggregate.InspectionGroup `json:"sections"`
}

// Filtered returns the records visible under filter, in collection order
func (s *InspectionService) Filtered(filter query.InspectionFilter) []models.Inspection {
	return filter.Apply(s.Repo.List())
}

func (s *InspectionService) List(ctx context.Context, filter query.InspectionFilter) *InspectionList {
	all := s.Repo.List()
	visible := filter.Apply(all)
	groups := aggregate.GroupByCategorySet(visible, aggregate.InspectionBuckets)

	return &InspectionList{
		Filter:     filter,
		Categories: s.Repo.Categories(),
		Total:      len(all),
		Visible:    len(visible),
		Records:    visible,
		Sections:   aggregate.Sections(groups, aggregate.InspectionBuckets),
	}
}

func (s *InspectionService) Get(ctx context.Context, id int) (models.Inspection, error) {
	rec, ok := s.Repo.Get(id)
	if !ok {
		return models.Inspection{}, ErrNotFound
	}
	return rec, nil
}

// EditForm pre-populates the edit form: display dates become ISO input
// values and absent values become empty strings.
func (s *InspectionService) EditForm(ctx context.Context, id int) (models.InspectionForm, error) {
	rec, ok := s.Repo.Get(id)
	if !ok {
		return models.InspectionForm{}, ErrNotFound
	}
	return models.InspectionForm{
		Name:       rec.Name,
		Category:   rec.Category,
		VisitDate1: timeutil.ToInputDate(rec.Visits[0].Date),
		Markah1:    rec.Visits[0].Score,
		VisitDate2: timeutil.ToInputDate(rec.Visits[1].Date),
		Markah2:    rec.Visits[1].Score,
		VisitDate3: timeutil.ToInputDate(rec.Visits[2].Date),
		Markah3:    rec.Visits[2].Score,
	}, nil
}

func (s *InspectionService) Create(ctx context.Context, form *models.InspectionForm) (models.Inspection, error) {
	patch, err := patchFromForm(form)
	if err != nil {
		return models.Inspection{}, err
	}

	rec := s.Repo.Create(patch)
	s.logger.Info("inspection created", zap.Int("id", rec.ID), zap.String("name", rec.Name))
	recordMutation(s.publisher, KindInspection, ActionCreated, rec.ID)
	return rec, nil
}

// Update replaces name, category, dates and scores. FOSIM flags are kept.
func (s *InspectionService) Update(ctx context.Context, id int, form *models.InspectionForm) (models.Inspection, error) {
	patch, err := patchFromForm(form)
	if err != nil {
		return models.Inspection{}, err
	}

	rec, ok := s.Repo.Update(id, patch)
	if !ok {
		return models.Inspection{}, ErrNotFound
	}
	s.logger.Info("inspection updated", zap.Int("id", id))
	recordMutation(s.publisher, KindInspection, ActionUpdated, id)
	return rec, nil
}

func (s *InspectionService) ToggleFosim(ctx context.Context, id, slot int) (models.Inspection, error) {
	if slot < 1 || slot > models.VisitSlots {
		return models.Inspection{}, invalid("slot must be 1, 2 or 3")
	}
	rec, ok := s.Repo.ToggleFosim(id, slot)
	if !ok {
		return models.Inspection{}, ErrNotFound
	}
	recordMutation(s.publisher, KindInspection, ActionFosim, id)
	return rec, nil
}

// Calendar projects the visible inspections onto year/month
func (s *InspectionService) Calendar(ctx context.Context, year int, month time.Month, filter query.InspectionFilter, today time.Time) calendar.Grid {
	return calendar.Project(year, month, s.Filtered(filter), today)
}

// UpcomingVisits counts visit slots dated on or after today
func (s *InspectionService) UpcomingVisits(today time.Time) int {
	start := timeutil.StartOfDay(today)
	n := 0
	for _, rec := range s.Repo.List() {
		for _, v := range rec.Visits {
			if t, ok := timeutil.ParseDisplayDate(v.Date); ok && !t.Before(start) {
				n++
			}
		}
	}
	return n
}

func patchFromForm(form *models.InspectionForm) (repositories.InspectionPatch, error) {
	name := strings.TrimSpace(form.Name)
	if name == "" {
		return repositories.InspectionPatch{}, invalid("name is required")
	}
	category := form.Category
	if category == "" {
		category = models.CategorySekolahKPM
	}
	if !category.Valid() {
		return repositories.InspectionPatch{}, invalid("unknown category")
	}

	patch := repositories.InspectionPatch{Name: name, Category: category}
	dates := form.Dates()
	scores := form.Scores()
	for i := 0; i < models.VisitSlots; i++ {
		patch.Dates[i] = timeutil.FromInputDate(strings.TrimSpace(dates[i]))
		patch.Scores[i] = strings.TrimSpace(scores[i])
	}
	return patch, nil
}
