package models

// SampleStatus is the lab result state of a sample
type SampleStatus string

const (
	SamplePending SampleStatus = "PENDING"
	SampleFailed  SampleStatus = "GAGAL"
	SamplePassed  SampleStatus = "BERJAYA"
)

// Valid reports whether s is one of the three statuses
func (s SampleStatus) Valid() bool {
	return s == SamplePending || s == SampleFailed || s == SamplePassed
}

// Sample represents a food sample sent for laboratory analysis
type Sample struct {
	ID           int          `json:"id"`
	Week         int          `json:"week"` // epidemiological week
	Date         string       `json:"date"`
	Time         string       `json:"time"`
	FoodType     string       `json:"food_type"`
	AnalysisType string       `json:"analysis_type"`
	Location     string       `json:"location"`
	Lab          string       `json:"lab"`
	Status       SampleStatus `json:"status"`
	Notes        string       `json:"notes,omitempty"`
}

// RecordID implements repositories.Record
func (s Sample) RecordID() int { return s.ID }

// CreateSampleRequest represents the request body for registering a sample
type CreateSampleRequest struct {
	Week         int          `json:"week"`
	Date         string       `json:"date"` // ISO YYYY-MM-DD
	Time         string       `json:"time"`
	FoodType     string       `json:"food_type"`
	AnalysisType string       `json:"analysis_type"`
	Location     string       `json:"location"`
	Lab          string       `json:"lab"`
	Status       SampleStatus `json:"status"`
	Notes        string       `json:"notes"`
}

// SampleCounts is the per-status badge row of the sample page
type SampleCounts struct {
	Total   int `json:"total"`
	Berjaya int `json:"berjaya"`
	Gagal   int `json:"gagal"`
	Pending int `json:"pending"`
}
