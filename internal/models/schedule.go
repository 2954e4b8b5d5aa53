package models

// ScheduleWeek is one epidemiological week of the yearly takwim
type ScheduleWeek struct {
	Week      int    `json:"week"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Month     int    `json:"month"`
}

// RecordID implements repositories.Record; weeks are keyed by number
func (w ScheduleWeek) RecordID() int { return w.Week }

// MonthNames are the Malay month names, index 1..12
var MonthNames = [...]string{"", "Januari", "Februari", "Mac", "April", "Mei", "Jun", "Julai", "Ogos", "September", "Oktober", "November", "Disember"}

// MonthName returns the Malay name for month 1..12, or "" when out of range
func MonthName(month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return MonthNames[month]
}

// MonthSection is a month heading with its weeks, as rendered by the takwim page
type MonthSection struct {
	Month     int            `json:"month"`
	MonthName string         `json:"month_name"`
	Weeks     []ScheduleWeek `json:"weeks"`
}
