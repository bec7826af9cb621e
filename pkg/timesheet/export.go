package timesheet

import (
	"encoding/csv"
	"fmt"
	"io"
	"slices"

	"github.com/ogulcanaydogan/billable-hours/pkg/hours"
)

// ExportOptions controls the columns and trailing rows of a CSV export.
type ExportOptions struct {
	Descriptions bool
	Totals       bool
}

// Export writes the valid entries matching filter as CSV, newest date
// first. With Totals set, a SUMMARY block follows holding one TOTAL row per
// project and a GRAND TOTAL row, each in decimal and H:MM form.
func (s *Sheet) Export(w io.Writer, filter Filter, opts ExportOptions) error {
	rows, _ := s.matching(filter)
	slices.SortStableFunc(rows, func(a, b row) int {
		return b.date.Compare(a.date)
	})

	cw := csv.NewWriter(w)

	header := []string{"Date", "Project", "Hours (Decimal)", "Hours (HH:MM)"}
	if opts.Descriptions {
		header = append(header, "Description")
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	byProject := make(map[string]float64)
	var total float64
	for _, r := range rows {
		rec := []string{r.Date, r.Project, decimal(r.value), hours.FormatClock(r.value)}
		if opts.Descriptions {
			rec = append(rec, r.Description)
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("write csv row %s: %w", r.ID, err)
		}
		byProject[r.Project] += r.value
		total += r.value
	}

	if opts.Totals && len(rows) > 0 {
		summary := [][]string{{}, {"SUMMARY"}}
		for _, name := range sortedKeys(byProject) {
			v := byProject[name]
			summary = append(summary, []string{"TOTAL", name, decimal(v), hours.FormatClock(v)})
		}
		summary = append(summary, []string{"GRAND TOTAL", "All Projects", decimal(total), hours.FormatClock(total)})

		if err := cw.WriteAll(summary); err != nil {
			return fmt.Errorf("write csv totals: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func decimal(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
