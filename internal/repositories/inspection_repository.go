package repositories

import "ukkm-backend/internal/models"

// InspectionPatch holds every editable field of an inspection.
// Empty strings clear the corresponding value.
type InspectionPatch struct {
	Name     string
	Category models.InspectionCategory
	Dates    [models.VisitSlots]string
	Scores   [models.VisitSlots]string
}

type InspectionRepository struct {
	records *Collection[models.Inspection]
}

func NewInspectionRepository(seed []models.Inspection) *InspectionRepository {
	return &InspectionRepository{records: NewCollection(seed)}
}

// List returns all inspections, newest first
func (r *InspectionRepository) List() []models.Inspection {
	return r.records.List()
}

// Get retrieves an inspection by ID
func (r *InspectionRepository) Get(id int) (models.Inspection, bool) {
	return r.records.Find(id)
}

// Count returns the number of inspections
func (r *InspectionRepository) Count() int {
	return r.records.Len()
}

// Create stores a new inspection at the front of the list
func (r *InspectionRepository) Create(patch InspectionPatch) models.Inspection {
	return r.records.Create(func(id int) models.Inspection {
		rec := models.Inspection{ID: id}
		applyPatch(&rec, patch)
		return rec
	})
}

// Update replaces the editable fields of an inspection. FOSIM flags are kept.
func (r *InspectionRepository) Update(id int, patch InspectionPatch) (models.Inspection, bool) {
	return r.records.UpdateByID(id, func(rec *models.Inspection) {
		applyPatch(rec, patch)
	})
}

// ToggleFosim flips the FOSIM flag of visit slot 1..3.
// Unknown ids and slots leave the collection unchanged.
func (r *InspectionRepository) ToggleFosim(id, slot int) (models.Inspection, bool) {
	if slot < 1 || slot > models.VisitSlots {
		return models.Inspection{}, false
	}
	return r.records.UpdateByID(id, func(rec *models.Inspection) {
		v, _ := rec.Visit(slot)
		v.Fosim = !v.Fosim
	})
}

// Categories returns the distinct categories present, in first-seen order
func (r *InspectionRepository) Categories() []models.InspectionCategory {
	seen := make(map[models.InspectionCategory]bool)
	var out []models.InspectionCategory
	for _, rec := range r.records.List() {
		if !seen[rec.Category] {
			seen[rec.Category] = true
			out = append(out, rec.Category)
		}
	}
	return out
}

func applyPatch(rec *models.Inspection, patch InspectionPatch) {
	rec.Name = patch.Name
	rec.Category = patch.Category
	for i := range rec.Visits {
		rec.Visits[i].Date = patch.Dates[i]
		rec.Visits[i].Score = patch.Scores[i]
	}
}
