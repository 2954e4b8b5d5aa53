package timeutil

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// MYT is the Malaysia Time location (UTC+8)
var MYT *time.Location

func init() {
	var err error
	MYT, err = time.LoadLocation("Asia/Kuala_Lumpur")
	if err != nil {
		// Fallback: create fixed zone if tzdata is not available
		MYT = time.FixedZone("MYT", 8*60*60)
	}
}

// Now returns the current time in MYT
func Now() time.Time {
	return time.Now().In(MYT)
}

// Date builds midnight of the given calendar day in MYT. Out of range
// months and days normalize the same way time.Date does.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, MYT)
}

// StartOfDay returns the start of day (00:00:00) in MYT for the given time
func StartOfDay(t time.Time) time.Time {
	m := t.In(MYT)
	return Date(m.Year(), m.Month(), m.Day())
}

// SameDay reports whether a and b fall on the same calendar date.
// Time of day and location are ignored.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// DaysIn returns the number of days in the given month.
func DaysIn(year int, month time.Month) int {
	return Date(year, month+1, 0).Day()
}

// ParseDisplayDate parses the D/M/YYYY (or D/M/YY) form used across the
// dashboard. A year field of at most two digits means 2000+YY. Empty or malformed input yields
// ok == false rather than an error.
func ParseDisplayDate(s string) (t time.Time, ok bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	parts := strings.Split(s, "/")
	if len(parts) != 3 {
		return time.Time{}, false
	}
	nums := make([]int, 3)
	for i, p := range parts {
		n, err := parseDigits(p)
		if err != nil {
			return time.Time{}, false
		}
		nums[i] = n
	}
	day, month, year := nums[0], nums[1], expandYear(strings.TrimSpace(parts[2]), nums[2])
	return Date(year, time.Month(month), day), true
}

// FormatDisplayDate renders t as D/M/YYYY. Day and month are not padded;
// the year always has four digits.
func FormatDisplayDate(t time.Time) string {
	return fmt.Sprintf("%d/%d/%04d", t.Day(), int(t.Month()), t.Year())
}

// expandYear applies the 2000+YY rule to a year field of at most two digits
func expandYear(field string, year int) int {
	if len(field) <= 2 {
		return year + 2000
	}
	return year
}

// ToInputDate converts a display date into the ISO YYYY-MM-DD form used by
// date inputs. Unparseable values become "".
func ToInputDate(display string) string {
	parts := strings.Split(strings.TrimSpace(display), "/")
	if len(parts) != 3 {
		return ""
	}
	nums := make([]int, 3)
	for i, p := range parts {
		n, err := parseDigits(p)
		if err != nil {
			return ""
		}
		nums[i] = n
	}
	year := expandYear(strings.TrimSpace(parts[2]), nums[2])
	return fmt.Sprintf("%04d-%s-%s", year, padTwo(parts[1]), padTwo(parts[0]))
}

// FromInputDate converts an ISO YYYY-MM-DD value to the display form.
// Empty stays empty; anything that does not parse is returned unchanged.
func FromInputDate(iso string) string {
	iso = strings.TrimSpace(iso)
	if iso == "" {
		return ""
	}
	t, err := time.ParseInLocation(DateLayout, iso, MYT)
	if err != nil {
		return iso
	}
	return FormatDisplayDate(t)
}

func parseDigits(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, strconv.ErrSyntax
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, strconv.ErrSyntax
		}
	}
	return strconv.Atoi(s)
}

func padTwo(s string) string {
	s = strings.TrimSpace(s)
	if len(s) < 2 {
		return "0" + s
	}
	return s
}

// Common layouts for MYT formatting
const (
	DateLayout     = "2006-01-02"
	DateTimeLayout = "2006-01-02 15:04:05"
	ReportLayout   = "2/1/2006"
)
