// Package calendar projects inspection visit dates onto a month grid.
package calendar

import (
	"strconv"
	"time"

	"ukkm-backend/internal/models"
	"ukkm-backend/internal/timeutil"
)

// WeekdayHeaders are the Sunday-first column headings
var WeekdayHeaders = [7]string{"Ahad", "Isnin", "Selasa", "Rabu", "Khamis", "Jumaat", "Sabtu"}

// Event is one visit slot of one inspection landing on a day
type Event struct {
	RecordID int               `json:"record_id"`
	Name     string            `json:"name"`
	Slot     int               `json:"slot"`
	Style    models.Descriptor `json:"style"`
}

// Cell is one box of the grid. Padding cells have Day == 0 and no events.
type Cell struct {
	Day     int     `json:"day"`
	Padding bool    `json:"padding,omitempty"`
	IsToday bool    `json:"is_today,omitempty"`
	Events  []Event `json:"events"`
}

// Month identifies a displayed month
type Month struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
}

// Next advances one month, rolling into January of the next year
func (m Month) Next() Month {
	return normalize(m.Year, m.Month+1)
}

// Prev goes back one month, rolling into December of the previous year
func (m Month) Prev() Month {
	return normalize(m.Year, m.Month-1)
}

func normalize(year int, month time.Month) Month {
	t := timeutil.Date(year, month, 1)
	return Month{Year: t.Year(), Month: t.Month()}
}

// Grid is the projected month
type Grid struct {
	Month     Month     `json:"current"`
	Title     string    `json:"title"`
	Headers   [7]string `json:"headers"`
	Padding   int       `json:"padding"`
	Days      int       `json:"days"`
	Cells     []Cell    `json:"cells"`
	Previous  Month     `json:"previous"`
	Following Month     `json:"next"`
}

// Project builds the grid for year/month. Padding cells align day 1 under
// its weekday column; each visit slot whose date parses to a day of this
// month becomes an event on that day. today marks the matching cell.
func Project(year int, month time.Month, records []models.Inspection, today time.Time) Grid {
	m := normalize(year, month)
	first := timeutil.Date(m.Year, m.Month, 1)
	padding := int(first.Weekday())
	days := timeutil.DaysIn(m.Year, m.Month)

	cells := make([]Cell, 0, padding+days)
	for i := 0; i < padding; i++ {
		cells = append(cells, Cell{Padding: true, Events: []Event{}})
	}

	byDay := eventsByDay(m, records)
	for d := 1; d <= days; d++ {
		events := byDay[d]
		if events == nil {
			events = []Event{}
		}
		cells = append(cells, Cell{
			Day:     d,
			IsToday: timeutil.SameDay(today.In(timeutil.MYT), timeutil.Date(m.Year, m.Month, d)),
			Events:  events,
		})
	}

	return Grid{
		Month:     m,
		Title:     models.MonthName(int(m.Month)) + " " + strconv.Itoa(m.Year),
		Headers:   WeekdayHeaders,
		Padding:   padding,
		Days:      days,
		Cells:     cells,
		Previous:  m.Prev(),
		Following: m.Next(),
	}
}

// eventsByDay scans every slot of every record once. Events within a day
// follow record order, then slot order.
func eventsByDay(m Month, records []models.Inspection) map[int][]Event {
	out := make(map[int][]Event)
	for _, r := range records {
		for i, v := range r.Visits {
			t, ok := timeutil.ParseDisplayDate(v.Date)
			if !ok || t.Year() != m.Year || t.Month() != m.Month {
				continue
			}
			slot := i + 1
			out[t.Day()] = append(out[t.Day()], Event{
				RecordID: r.ID,
				Name:     r.Name,
				Slot:     slot,
				Style:    models.SlotDescriptor(slot),
			})
		}
	}
	return out
}
