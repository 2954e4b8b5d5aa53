package models

// StatCategory is a target-tracked activity shown on the dashboard
type StatCategory struct {
	Label string `json:"label"`
	Value int    `json:"value"`
	Total int    `json:"total"`
}

// ProgressStat is a StatCategory with its computed completion
type ProgressStat struct {
	StatCategory
	ShortName  string `json:"short_name"`
	Percentage int    `json:"percentage"`
	Complete   bool   `json:"complete"`
}

// ComplianceSlice is one segment of the compliance donut
type ComplianceSlice struct {
	Name       string `json:"name"`
	Value      int    `json:"value"`
	Percentage int    `json:"percentage"`
	Tone       Tone   `json:"tone"`
}

// DashboardSummary is everything the overview page renders
type DashboardSummary struct {
	Today          string            `json:"today"`
	CurrentWeek    *ScheduleWeek     `json:"current_week,omitempty"`
	Progress       []ProgressStat    `json:"progress"`
	Compliance     []ComplianceSlice `json:"compliance"`
	Inspections    int               `json:"inspections"`
	Samples        SampleCounts      `json:"samples"`
	Seizures       SeizureStats      `json:"seizures"`
	UpcomingVisits int               `json:"upcoming_visits"`
}
