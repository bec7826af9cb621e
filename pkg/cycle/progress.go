package cycle

import (
	"time"

	"github.com/ogulcanaydogan/billable-hours/pkg/workdays"
)

// Progress summarizes billed hours against a cycle's goal.
type Progress struct {
	Cycle              Cycle   `json:"cycle"`
	Total              float64 `json:"total"`
	Goal               float64 `json:"goal"`
	Remaining          float64 `json:"remaining"`
	Percent            float64 `json:"percent"`
	WorkingDays        int     `json:"working_days"`
	WorkingDaysElapsed int     `json:"working_days_elapsed"`
	Expected           float64 `json:"expected"`
}

// Behind reports whether the total trails the expected baseline.
func (p Progress) Behind() bool {
	return p.Total < p.Expected
}

// Compute measures total against goal for c as of today. The expected
// baseline is dailyHours for every working day from the cycle start up to
// and including today, capped at the cycle end.
func Compute(c Cycle, total, goal, dailyHours float64, today time.Time) Progress {
	p := Progress{
		Cycle:       c,
		Total:       total,
		Goal:        goal,
		Remaining:   max(0, goal-total),
		WorkingDays: c.WorkingDays(),
	}

	if goal > 0 {
		p.Percent = min(100, total/goal*100)
	}

	upTo := workdays.Date(today)
	if upTo.After(c.End) {
		upTo = c.End
	}
	p.WorkingDaysElapsed = workdays.Count(c.Start, upTo)
	p.Expected = float64(p.WorkingDaysElapsed) * dailyHours

	return p
}
