package timesheet

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/ogulcanaydogan/billable-hours/pkg/hours"
	"github.com/ogulcanaydogan/billable-hours/pkg/workdays"
)

// Validate checks every entry and returns the problems found, in file
// order, followed by any day whose total exceeds maxPerDay. A maxPerDay of
// zero disables the daily check.
func (s *Sheet) Validate(maxPerDay float64) []Problem {
	var problems []Problem
	perDay := make(map[string]float64)

	for i, e := range s.Entries {
		ok := true
		if _, err := workdays.ParseDate(e.Date); err != nil {
			problems = append(problems, Problem{EntryID: e.ID, Index: i + 1, Field: "date",
				Message: fmt.Sprintf("invalid date %q (want YYYY-MM-DD)", e.Date)})
			ok = false
		}
		if strings.TrimSpace(e.Project) == "" {
			problems = append(problems, Problem{EntryID: e.ID, Index: i + 1, Field: "project",
				Message: "project is required"})
			ok = false
		}
		if !hours.Validate(strings.TrimSpace(e.Hours)) {
			problems = append(problems, Problem{EntryID: e.ID, Index: i + 1, Field: "hours",
				Message: fmt.Sprintf("%q: %s", e.Hours, hours.InvalidMessage)})
			ok = false
		}
		if ok {
			perDay[e.Date] += hours.Parse(strings.TrimSpace(e.Hours))
		}
	}

	if maxPerDay <= 0 {
		return problems
	}

	for _, d := range sortedKeys(perDay) {
		if perDay[d] > maxPerDay {
			problems = append(problems, Problem{Field: "date",
				Message: fmt.Sprintf("%s: %s logged, exceeds %s hours per day",
					d, hours.FormatClock(perDay[d]), strconv.FormatFloat(maxPerDay, 'f', -1, 64))})
		}
	}

	return problems
}

// Summarize totals the valid entries matching filter. Entries that fail
// validation are counted in Skipped rather than contributing zero hours.
func (s *Sheet) Summarize(filter Filter) Summary {
	rows, skipped := s.matching(filter)

	sum := Summary{
		Skipped:   skipped,
		ByProject: make(map[string]float64),
		ByDay:     make(map[string]float64),
	}
	for _, r := range rows {
		sum.TotalHours += r.value
		sum.EntryCount++
		sum.ByProject[r.Project] += r.value
		sum.ByDay[r.Date] += r.value
	}

	return sum
}

// row is an entry that passed filtering, with its parsed values.
type row struct {
	Entry
	date  time.Time
	value float64
}

// matching returns the entries selected by filter whose date and hours
// parse, in file order, and how many selected entries were skipped.
func (s *Sheet) matching(filter Filter) ([]row, int) {
	var rows []row
	skipped := 0

	for _, e := range s.Entries {
		if filter.Project != "" && e.Project != filter.Project {
			continue
		}

		d, err := workdays.ParseDate(e.Date)
		if err != nil {
			skipped++
			continue
		}
		if !filter.StartDate.IsZero() && d.Before(workdays.Date(filter.StartDate)) {
			continue
		}
		if !filter.EndDate.IsZero() && d.After(workdays.Date(filter.EndDate)) {
			continue
		}

		v, err := hours.ParseStrict(strings.TrimSpace(e.Hours))
		if err != nil || v <= 0 {
			skipped++
			continue
		}

		rows = append(rows, row{Entry: e, date: d, value: v})
	}

	return rows, skipped
}

// sortedKeys returns the keys of m in ascending order
// (Go 1.21 equivalent of slices.Sorted(maps.Keys(m))).
func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
