package aggregate

import "ukkm-backend/internal/models"

// SampleStatusCounts counts samples per status
func SampleStatusCounts(samples []models.Sample) models.SampleCounts {
	is := func(status models.SampleStatus) func(models.Sample) bool {
		return func(s models.Sample) bool { return s.Status == status }
	}
	return models.SampleCounts{
		Total:   len(samples),
		Berjaya: CountWhere(samples, is(models.SamplePassed)),
		Gagal:   CountWhere(samples, is(models.SampleFailed)),
		Pending: CountWhere(samples, is(models.SamplePending)),
	}
}

// SeizureSummary computes the seizure stat cards
func SeizureSummary(records []models.Seizure) models.SeizureStats {
	reason := func(r models.SeizureReason) func(models.Seizure) bool {
		return func(s models.Seizure) bool { return s.Reason == r }
	}
	return models.SeizureStats{
		TotalValue:    RoundCents(Sum(records, func(s models.Seizure) float64 { return s.Value })),
		TotalQuantity: Sum(records, func(s models.Seizure) int { return s.Quantity }),
		ExpiredCount:  CountWhere(records, reason(models.ReasonExpired)),
		DamagedCount:  CountWhere(records, reason(models.ReasonDamaged)),
		Records:       len(records),
	}
}

// Progress decorates stat categories with their completion percentage
func Progress(stats []models.StatCategory) []models.ProgressStat {
	out := make([]models.ProgressStat, 0, len(stats))
	for _, s := range stats {
		pct := Percentage(s.Value, s.Total)
		out = append(out, models.ProgressStat{
			StatCategory: s,
			ShortName:    shortName(s.Label),
			Percentage:   pct,
			Complete:     pct >= 100,
		})
	}
	return out
}

// ComplianceShares fills in each slice's share of the whole
func ComplianceShares(slices []models.ComplianceSlice) []models.ComplianceSlice {
	total := Sum(slices, func(c models.ComplianceSlice) int { return c.Value })
	out := make([]models.ComplianceSlice, len(slices))
	for i, c := range slices {
		c.Percentage = Percentage(c.Value, total)
		out[i] = c
	}
	return out
}

// shortName keeps the first two words of a label for chart axes
func shortName(label string) string {
	words := 0
	for i, r := range label {
		if r == ' ' {
			words++
			if words == 2 {
				return label[:i]
			}
		}
	}
	return label
}
