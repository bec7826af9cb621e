package workdays_test

import (
	"testing"
	"time"

	"github.com/ogulcanaydogan/billable-hours/pkg/workdays"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := workdays.ParseDate(s)
	require.NoError(t, err)
	return d
}

func TestCount_FullWeek(t *testing.T) {
	assert.Equal(t, 5, workdays.Count(date(t, "2024-01-01"), date(t, "2024-01-07")))
}

func TestCount_SingleDay(t *testing.T) {
	assert.Equal(t, 0, workdays.Count(date(t, "2024-01-06"), date(t, "2024-01-06")))
	assert.Equal(t, 0, workdays.Count(date(t, "2024-01-07"), date(t, "2024-01-07")))
	assert.Equal(t, 1, workdays.Count(date(t, "2024-01-03"), date(t, "2024-01-03")))
}

func TestCount_Reversed(t *testing.T) {
	assert.Equal(t, 0, workdays.Count(date(t, "2024-01-07"), date(t, "2024-01-01")))
}

func TestCount_LongRanges(t *testing.T) {
	// 2024 is a leap year starting on a Monday.
	assert.Equal(t, 262, workdays.Count(date(t, "2024-01-01"), date(t, "2024-12-31")))
	assert.Equal(t, 21, workdays.Count(date(t, "2024-02-01"), date(t, "2024-02-29")))
}

func TestCount_IgnoresTimeOfDay(t *testing.T) {
	start := time.Date(2024, 1, 1, 23, 59, 0, 0, time.UTC)
	end := time.Date(2024, 1, 5, 0, 1, 0, 0, time.UTC)
	assert.Equal(t, 5, workdays.Count(start, end))
}

func TestCount_AcrossDST(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Berlin")
	if err != nil {
		t.Skip("tzdata not available")
	}

	// Clocks move forward on 2024-03-31 and back on 2024-10-27.
	spring := workdays.Count(
		time.Date(2024, 3, 25, 0, 0, 0, 0, loc),
		time.Date(2024, 4, 7, 0, 0, 0, 0, loc),
	)
	assert.Equal(t, 10, spring)

	autumn := workdays.Count(
		time.Date(2024, 10, 21, 0, 0, 0, 0, loc),
		time.Date(2024, 11, 3, 0, 0, 0, 0, loc),
	)
	assert.Equal(t, 10, autumn)
}

func TestCountBetween(t *testing.T) {
	n, err := workdays.CountBetween("2024-01-01", "2024-01-07")
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	_, err = workdays.CountBetween("2024-13-01", "2024-01-07")
	assert.Error(t, err)

	_, err = workdays.CountBetween("2024-01-01", "next week")
	assert.Error(t, err)
}

func TestIsWorkingDay(t *testing.T) {
	assert.True(t, workdays.IsWorkingDay(date(t, "2024-01-05")))
	assert.False(t, workdays.IsWorkingDay(date(t, "2024-01-06")))
}

func TestFormatDisplay(t *testing.T) {
	assert.Equal(t, "Mon, Jan 1, 2024", workdays.FormatDisplay(date(t, "2024-01-01")))
	assert.Equal(t, "Sat, Dec 14, 2024", workdays.FormatDisplay(date(t, "2024-12-14")))
}
