package repositories

import "ukkm-backend/internal/models"

type SampleRepository struct {
	records *Collection[models.Sample]
}

func NewSampleRepository(seed []models.Sample) *SampleRepository {
	return &SampleRepository{records: NewCollection(seed)}
}

// List returns all samples, newest first
func (r *SampleRepository) List() []models.Sample {
	return r.records.List()
}

// Get retrieves a sample by ID
func (r *SampleRepository) Get(id int) (models.Sample, bool) {
	return r.records.Find(id)
}

// Count is the number of stored records
func (r *SampleRepository) Count() int {
	return r.records.Len()
}

// Create prepends a new sample; the ID field of s is overwritten
func (r *SampleRepository) Create(s models.Sample) models.Sample {
	return r.records.Create(func(id int) models.Sample {
		s.ID = id
		return s
	})
}
