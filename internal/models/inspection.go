package models

// InspectionCategory is the premise type an inspection belongs to
type InspectionCategory string

const (
	CategorySekolahKPM    InspectionCategory = "SEKOLAH KPM"
	CategorySekolahJHEAIK InspectionCategory = "SEKOLAH JHEAIK"
	CategoryAsrama        InspectionCategory = "ASRAMA"
	CategoryFasilitiKKM   InspectionCategory = "FASILITI KKM"
	CategoryIPT           InspectionCategory = "IPT"
	CategorySwasta        InspectionCategory = "SWASTA"
)

// InspectionCategories lists every selectable category in form order
var InspectionCategories = []InspectionCategory{
	CategorySekolahKPM,
	CategorySekolahJHEAIK,
	CategoryAsrama,
	CategoryFasilitiKKM,
	CategoryIPT,
	CategorySwasta,
}

// Valid reports whether c is one of the known categories
func (c InspectionCategory) Valid() bool {
	for _, known := range InspectionCategories {
		if c == known {
			return true
		}
	}
	return false
}

// VisitSlots is the number of visits tracked per premise
const VisitSlots = 3

// Visit is one inspection visit. Empty strings mean the value is absent.
type Visit struct {
	Date  string `json:"date,omitempty"`  // D/M/YYYY
	Score string `json:"score,omitempty"` // markah, free text
	Fosim bool   `json:"fosim,omitempty"` // FOSIM registration checked
}

// Inspection represents a school canteen / hostel kitchen inspection record
type Inspection struct {
	ID       int                `json:"id"`
	Name     string             `json:"name"`
	Category InspectionCategory `json:"category"`
	Visits   [VisitSlots]Visit  `json:"visits"`
}

// RecordID implements repositories.Record
func (i Inspection) RecordID() int { return i.ID }

// Visit returns a pointer to the visit at slot (1-based)
func (i *Inspection) Visit(slot int) (*Visit, bool) {
	if slot < 1 || slot > VisitSlots {
		return nil, false
	}
	return &i.Visits[slot-1], true
}

// InspectionForm mirrors the add/edit form. Visit dates arrive as ISO
// YYYY-MM-DD values from date inputs.
type InspectionForm struct {
	Name       string             `json:"name"`
	Category   InspectionCategory `json:"category"`
	VisitDate1 string             `json:"visit_date_1"`
	Markah1    string             `json:"markah_1"`
	VisitDate2 string             `json:"visit_date_2"`
	Markah2    string             `json:"markah_2"`
	VisitDate3 string             `json:"visit_date_3"`
	Markah3    string             `json:"markah_3"`
}

// Dates returns the three ISO visit dates in slot order
func (f InspectionForm) Dates() [VisitSlots]string {
	return [VisitSlots]string{f.VisitDate1, f.VisitDate2, f.VisitDate3}
}

// Scores returns the three scores in slot order
func (f InspectionForm) Scores() [VisitSlots]string {
	return [VisitSlots]string{f.Markah1, f.Markah2, f.Markah3}
}

// DefaultInspectionForm is the blank form shown for a new record
func DefaultInspectionForm() InspectionForm {
	return InspectionForm{Category: CategorySekolahKPM}
}
