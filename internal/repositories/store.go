package repositories

import "ukkm-backend/internal/models"

// Seed is the initial content of a Store
type Seed struct {
	Inspections []models.Inspection
	Samples     []models.Sample
	Seizures    []models.Seizure
	Schedule    []models.ScheduleWeek
}

// Store owns one collection per record kind. Build one per process and
// pass it to the services that need it.
type Store struct {
	Inspections *InspectionRepository
	Samples     *SampleRepository
	Seizures    *SeizureRepository
	Schedule    *ScheduleRepository
}

func NewStore(seed Seed) *Store {
	return &Store{
		Inspections: NewInspectionRepository(seed.Inspections),
		Samples:     NewSampleRepository(seed.Samples),
		Seizures:    NewSeizureRepository(seed.Seizures),
		Schedule:    NewScheduleRepository(seed.Schedule),
	}
}

// Counts is the number of records per collection
func (s *Store) Counts() map[string]int {
	return map[string]int{
		"inspections": s.Inspections.Count(),
		"samples":     s.Samples.Count(),
		"seizures":    s.Seizures.Count(),
		"schedule":    len(s.Schedule.List()),
	}
}
