package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/ogulcanaydogan/billable-hours/pkg/workdays"
	"github.com/tj/go-naturaldate"
)

// parseDateArg accepts YYYY-MM-DD or a natural-language date such as
// "today" or "last friday", resolved against ref and looking backwards.
func parseDateArg(s string, ref time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return workdays.Date(ref), nil
	}

	if d, err := workdays.ParseDate(s); err == nil {
		return d, nil
	}

	t, err := naturaldate.Parse(s, ref, naturaldate.WithDirection(naturaldate.Past))
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return workdays.Date(t), nil
}
