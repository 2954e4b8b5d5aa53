package models

// SeizureReason is why goods were seized
type SeizureReason string

const (
	ReasonExpired SeizureReason = "TAMAT TARIKH"
	ReasonDamaged SeizureReason = "KEMIK/ROSAK"
	ReasonLabel   SeizureReason = "LABEL"
	ReasonOther   SeizureReason = "LAIN-LAIN"
)

// Valid reports whether r is a known reason
func (r SeizureReason) Valid() bool {
	switch r {
	case ReasonExpired, ReasonDamaged, ReasonLabel, ReasonOther:
		return true
	}
	return false
}

// Seizure represents a rampasan record: goods seized from a premise
type Seizure struct {
	ID       int           `json:"id"`
	Date     string        `json:"date"`
	Premise  string        `json:"premise"`
	Item     string        `json:"item"`
	Quantity int           `json:"quantity"`
	Unit     string        `json:"unit"`
	Value    float64       `json:"value"` // RM
	Reason   SeizureReason `json:"reason"`
	Act      string        `json:"act"` // legal reference, e.g. "Peraturan 14(9)(b)"
}

// RecordID implements repositories.Record
func (s Seizure) RecordID() int { return s.ID }

// CreateSeizureRequest represents the request body for a new seizure
type CreateSeizureRequest struct {
	Date     string        `json:"date"` // ISO YYYY-MM-DD
	Premise  string        `json:"premise"`
	Item     string        `json:"item"`
	Quantity int           `json:"quantity"`
	Unit     string        `json:"unit"`
	Value    float64       `json:"value"`
	Reason   SeizureReason `json:"reason"`
	Act      string        `json:"act"`
}

// Form defaults for a new seizure
const (
	DefaultSeizureUnit = "Unit"
	DefaultSeizureAct  = "Peraturan 14(9)(b)"
)

// SeizureStats are the summary cards above the seizure list
type SeizureStats struct {
	TotalValue    float64 `json:"total_value"`
	TotalQuantity int     `json:"total_quantity"`
	ExpiredCount  int     `json:"expired_count"`
	DamagedCount  int     `json:"damaged_count"`
	Records       int     `json:"records"`
}
