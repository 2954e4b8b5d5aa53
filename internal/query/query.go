// Package query filters in-memory record collections by free-text search
// and exact-match selectors.
package query

import (
	"strconv"
	"strings"

	"golang.org/x/text/cases"

	"ukkm-backend/internal/models"
)

// All is the selector value that disables an exact-match filter
const All = "ALL"

var folder = cases.Fold()

// Fold case-folds s for comparison
func Fold(s string) string {
	return folder.String(s)
}

// Matches reports whether q is a case-insensitive substring of any field.
// An empty query matches everything. Whitespace is significant.
func Matches(q string, fields ...string) bool {
	if q == "" {
		return true
	}
	needle := Fold(q)
	for _, f := range fields {
		if strings.Contains(Fold(f), needle) {
			return true
		}
	}
	return false
}

// Predicate selects records
type Predicate[T any] func(T) bool

// And combines predicates; a record must satisfy all of them.
// Nil predicates are ignored.
func And[T any](preds ...Predicate[T]) Predicate[T] {
	return func(v T) bool {
		for _, p := range preds {
			if p != nil && !p(v) {
				return false
			}
		}
		return true
	}
}

// Filter returns the records satisfying pred, preserving order.
// The result is never nil.
func Filter[T any](records []T, pred Predicate[T]) []T {
	out := make([]T, 0, len(records))
	for _, r := range records {
		if pred == nil || pred(r) {
			out = append(out, r)
		}
	}
	return out
}

// Text builds a search predicate over the fields returned by fields
func Text[T any](q string, fields func(T) []string) Predicate[T] {
	if strings.TrimSpace(q) == "" {
		return nil
	}
	return func(v T) bool {
		return Matches(q, fields(v)...)
	}
}

// Category matches inspections of exactly one category; All disables it
func Category(category string) Predicate[models.Inspection] {
	if category == "" || category == All {
		return nil
	}
	return func(r models.Inspection) bool {
		return string(r.Category) == category
	}
}

// Status matches samples with exactly one status; All disables it
func Status(status string) Predicate[models.Sample] {
	if status == "" || status == All {
		return nil
	}
	return func(s models.Sample) bool {
		return string(s.Status) == status
	}
}

// FilterByCategory keeps inspections in category. All returns the input unchanged.
func FilterByCategory(records []models.Inspection, category string) []models.Inspection {
	if category == "" || category == All {
		return records
	}
	return Filter(records, Category(category))
}

// FilterByStatus keeps samples with status. All returns the input unchanged.
func FilterByStatus(records []models.Sample, status string) []models.Sample {
	if status == "" || status == All {
		return records
	}
	return Filter(records, Status(status))
}

// InspectionFilter is the search box plus category dropdown of the inspection page
type InspectionFilter struct {
	Query    string `json:"q"`
	Category string `json:"category"`
}

// Apply returns the inspections visible under f
func (f InspectionFilter) Apply(records []models.Inspection) []models.Inspection {
	return Filter(records, And(
		Text(f.Query, func(r models.Inspection) []string { return []string{r.Name} }),
		Category(f.Category),
	))
}

// SampleFilter is the status dropdown (plus optional search) of the sample page
type SampleFilter struct {
	Query  string `json:"q"`
	Status string `json:"status"`
}

// Apply returns the samples visible under f
func (f SampleFilter) Apply(records []models.Sample) []models.Sample {
	return Filter(records, And(
		Text(f.Query, func(s models.Sample) []string {
			return []string{s.FoodType, s.AnalysisType, s.Location, s.Lab}
		}),
		Status(f.Status),
	))
}

// Seizures searches seizures by premise or item name
func Seizures(records []models.Seizure, q string) []models.Seizure {
	return Filter(records, Text(q, func(s models.Seizure) []string {
		return []string{s.Premise, s.Item}
	}))
}

// Schedule searches weeks by week number, start/end date text and Malay month name
func Schedule(weeks []models.ScheduleWeek, q string) []models.ScheduleWeek {
	return Filter(weeks, Text(q, func(w models.ScheduleWeek) []string {
		return []string{strconv.Itoa(w.Week), w.StartDate, w.EndDate, models.MonthName(w.Month)}
	}))
}
