// Package period maps calendar dates onto billing periods according to an
// account's closing-day convention. Everything here is pure calendar
// arithmetic; the same inputs always yield the same interval.
package period

import (
	"fmt"
	"time"

	"github.com/alexanderramin/punchclock/internal/domain"
)

// Period is an inclusive day-granularity interval. Start and End are
// midnights in the location of the date the period was derived from.
type Period struct {
	Start time.Time
	End   time.Time
}

// Of returns the billing period containing date.
//
// Closing day 31 (month end): the calendar month of date, however many days
// it has. Closing day 15: [16th of previous month, 15th of this month] when
// date.Day ≤ 15, otherwise [16th of this month, 15th of next month].
// time.Date normalizes month overflow, so December/January roll correctly.
func Of(date time.Time, closingDay int) Period {
	y, m, d := date.Date()
	loc := date.Location()

	switch closingDay {
	case domain.ClosingMid:
		if d <= 15 {
			return Period{
				Start: time.Date(y, m-1, 16, 0, 0, 0, 0, loc),
				End:   time.Date(y, m, 15, 0, 0, 0, 0, loc),
			}
		}
		return Period{
			Start: time.Date(y, m, 16, 0, 0, 0, 0, loc),
			End:   time.Date(y, m+1, 15, 0, 0, 0, 0, loc),
		}
	default:
		// Day 0 of the next month is the last day of this one.
		return Period{
			Start: time.Date(y, m, 1, 0, 0, 0, 0, loc),
			End:   time.Date(y, m+1, 0, 0, 0, 0, 0, loc),
		}
	}
}

// FromKey returns the period identified by Key for the given convention:
// the period whose Key() is "year-month".
func FromKey(year int, month time.Month, closingDay int, loc *time.Location) Period {
	if closingDay == domain.ClosingMid {
		return Of(time.Date(year, month, 16, 0, 0, 0, 0, loc), closingDay)
	}
	return Of(time.Date(year, month, 1, 0, 0, 0, 0, loc), closingDay)
}

// Key returns a stable grouping key, "YYYY-MM" of the month containing the
// period start. Distinct across years by construction.
func (p Period) Key() string {
	return p.Start.Format("2006-01")
}

// Contains reports whether the calendar date of t falls inside the period.
func (p Period) Contains(t time.Time) bool {
	y, m, d := t.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, p.Start.Location())
	return !day.Before(p.Start) && !day.After(p.End)
}

// Days returns the number of calendar days in the period.
func (p Period) Days() int {
	return int(p.End.Sub(p.Start).Hours()/24) + 1
}

func (p Period) String() string {
	return fmt.Sprintf("%s – %s", p.Start.Format("2006-01-02"), p.End.Format("2006-01-02"))
}

// Trailing returns the n consecutive periods ending with the one that
// contains ref, oldest first.
func Trailing(ref time.Time, closingDay int, n int) []Period {
	if n <= 0 {
		return nil
	}
	out := make([]Period, n)
	p := Of(ref, closingDay)
	for i := n - 1; i >= 0; i-- {
		out[i] = p
		p = Of(p.Start.AddDate(0, 0, -1), closingDay)
	}
	return out
}
