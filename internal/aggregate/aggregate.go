// Package aggregate partitions record collections into named buckets and
// computes the scalar statistics shown on summary cards.
package aggregate

import (
	"math"
	"sort"

	"ukkm-backend/internal/models"
)

// CategorySet maps categories to bucket names. Categories not listed fall
// into Fallback.
type CategorySet struct {
	Buckets  map[models.InspectionCategory]models.Bucket
	Fallback models.Bucket
	Order    []models.Bucket
}

// InspectionBuckets is the kantin / das / lain split of the inspection page
var InspectionBuckets = CategorySet{
	Buckets: map[models.InspectionCategory]models.Bucket{
		models.CategorySekolahKPM:    models.BucketKantin,
		models.CategorySekolahJHEAIK: models.BucketKantin,
		models.CategoryAsrama:        models.BucketDAS,
	},
	Fallback: models.BucketLain,
	Order:    models.Buckets,
}

// BucketOf returns the bucket a category belongs to
func (s CategorySet) BucketOf(c models.InspectionCategory) models.Bucket {
	if b, ok := s.Buckets[c]; ok {
		return b
	}
	return s.Fallback
}

// GroupByCategorySet partitions records by category. Every bucket named in
// set.Order is present in the result, possibly empty. Input order is kept
// within each bucket.
func GroupByCategorySet(records []models.Inspection, set CategorySet) map[models.Bucket][]models.Inspection {
	groups := make(map[models.Bucket][]models.Inspection, len(set.Order)+1)
	for _, b := range set.Order {
		groups[b] = []models.Inspection{}
	}
	for _, r := range records {
		b := set.BucketOf(r.Category)
		groups[b] = append(groups[b], r)
	}
	return groups
}

// InspectionGroup is one rendered section of the inspection list
type InspectionGroup struct {
	Bucket  models.Bucket       `json:"bucket"`
	Label   string              `json:"label"`
	Tone    models.Tone         `json:"tone"`
	Count   int                 `json:"count"`
	Records []models.Inspection `json:"records"`
}

// Sections returns the groups in render order, skipping empty ones
func Sections(groups map[models.Bucket][]models.Inspection, set CategorySet) []InspectionGroup {
	out := make([]InspectionGroup, 0, len(set.Order))
	for _, b := range set.Order {
		records := groups[b]
		if len(records) == 0 {
			continue
		}
		d := b.Descriptor()
		out = append(out, InspectionGroup{Bucket: b, Label: d.Label, Tone: d.Tone, Count: len(records), Records: records})
	}
	return out
}

// GroupByMonth partitions weeks into month sections in ascending month
// order. Weeks keep their input order within a month.
func GroupByMonth(weeks []models.ScheduleWeek) []models.MonthSection {
	index := make(map[int]int)
	var sections []models.MonthSection
	for _, w := range weeks {
		i, ok := index[w.Month]
		if !ok {
			i = len(sections)
			index[w.Month] = i
			sections = append(sections, models.MonthSection{Month: w.Month, MonthName: models.MonthName(w.Month)})
		}
		sections[i].Weeks = append(sections[i].Weeks, w)
	}
	sort.SliceStable(sections, func(a, b int) bool { return sections[a].Month < sections[b].Month })
	if sections == nil {
		sections = []models.MonthSection{}
	}
	return sections
}

// Number is any summable field type
type Number interface {
	~int | ~int64 | ~float64
}

// Sum adds field(r) over records
func Sum[T any, N Number](records []T, field func(T) N) N {
	var total N
	for _, r := range records {
		total += field(r)
	}
	return total
}

// CountWhere counts records satisfying pred
func CountWhere[T any](records []T, pred func(T) bool) int {
	n := 0
	for _, r := range records {
		if pred(r) {
			n++
		}
	}
	return n
}

// Percentage is round(100*n/d), or 0 when d is not positive
func Percentage(n, d int) int {
	if d <= 0 {
		return 0
	}
	return int(math.Floor(100*float64(n)/float64(d) + 0.5))
}

// RoundCents rounds a currency amount to two decimals
func RoundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
