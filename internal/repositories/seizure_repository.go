package repositories

import "ukkm-backend/internal/models"

type SeizureRepository struct {
	records *Collection[models.Seizure]
}

func NewSeizureRepository(seed []models.Seizure) *SeizureRepository {
	return &SeizureRepository{records: NewCollection(seed)}
}

// List returns all seizures, newest first
func (r *SeizureRepository) List() []models.Seizure {
	return r.records.List()
}

// Get retrieves a seizure by ID
func (r *SeizureRepository) Get(id int) (models.Seizure, bool) {
	return r.records.Find(id)
}

// Count is the number of stored records
func (r *SeizureRepository) Count() int {
	return r.records.Len()
}

// Create prepends a new seizure; the ID field of s is overwritten
func (r *SeizureRepository) Create(s models.Seizure) models.Seizure {
	return r.records.Create(func(id int) models.Seizure {
		s.ID = id
		return s
	})
}

// Delete removes a seizure. Returns false when the id is unknown.
func (r *SeizureRepository) Delete(id int) bool {
	return r.records.DeleteByID(id)
}
