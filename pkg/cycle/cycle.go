// Package cycle models monthly billing cycles that run from the 25th of one
// month through the 24th of the next.
package cycle

import (
	"fmt"
	"time"

	"github.com/ogulcanaydogan/billable-hours/pkg/workdays"
)

// StartDay is the day of month on which every cycle begins.
const StartDay = 25

// Cycle is an inclusive range of calendar dates.
type Cycle struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	Name  string    `json:"name"`
}

// ForDate returns the cycle containing t.
func ForDate(t time.Time) Cycle {
	d := workdays.Date(t)

	start := time.Date(d.Year(), d.Month(), StartDay, 0, 0, 0, 0, time.UTC)
	if d.Day() < StartDay {
		start = start.AddDate(0, -1, 0)
	}
	end := time.Date(start.Year(), start.Month()+1, StartDay-1, 0, 0, 0, 0, time.UTC)

	return Cycle{
		Start: start,
		End:   end,
		Name:  fmt.Sprintf("%s - %s", start.Format("Jan 2006"), end.Format("Jan 2006")),
	}
}

// Current returns the cycle containing now.
func Current(now time.Time) Cycle {
	return ForDate(now)
}

// Previous returns n cycles, newest first, beginning with the one that
// contains now.
func Previous(now time.Time, n int) []Cycle {
	if n <= 0 {
		return nil
	}

	cycles := make([]Cycle, 0, n)
	c := Current(now)
	cycles = append(cycles, c)
	for i := 1; i < n; i++ {
		c = c.Prev()
		cycles = append(cycles, c)
	}
	return cycles
}

// Prev returns the cycle immediately before c.
func (c Cycle) Prev() Cycle {
	return ForDate(c.Start.AddDate(0, 0, -1))
}

// Next returns the cycle immediately after c.
func (c Cycle) Next() Cycle {
	return ForDate(c.End.AddDate(0, 0, 1))
}

// Contains reports whether the calendar date of t lies within c.
func (c Cycle) Contains(t time.Time) bool {
	d := workdays.Date(t)
	return !d.Before(c.Start) && !d.After(c.End)
}

// Days returns the number of calendar days in c.
func (c Cycle) Days() int {
	return int(c.End.Sub(c.Start).Hours()/24) + 1
}

// WorkingDays returns the number of Monday-to-Friday days in c.
func (c Cycle) WorkingDays() int {
	return workdays.Count(c.Start, c.End)
}
