package cli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the root command with a clean environment and a fixed
// reference date of Wednesday 2024-01-10.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	testChdir(t, t.TempDir())

	prevNow := now
	now = func() time.Time { return time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC) }
	t.Cleanup(func() {
		now = prevNow
		cfgFile = ""
		resetFlags(rootCmd)
	})

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func resetFlags(cmd *cobra.Command) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	})
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "bht version dev\n", out)
}

func TestHoursValidate(t *testing.T) {
	out, err := run(t, "hours", "validate", "8:30", "8.5")
	require.NoError(t, err)
	assert.Contains(t, out, "[OK]")
	assert.Contains(t, out, "8:30")
}

func TestHoursValidate_Rejects(t *testing.T) {
	out, err := run(t, "hours", "validate", "8:30", "8:60", "25")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2 of 3")
	assert.Contains(t, out, "[INVALID]")
	assert.Contains(t, out, "[OVER LIMIT]")
	assert.Contains(t, out, "Hours cannot exceed 24 per day")
}

func TestHoursValidate_MaxFlag(t *testing.T) {
	_, err := run(t, "hours", "validate", "--max", "30", "25")
	require.NoError(t, err)
}

func TestHoursValidate_MaxZeroDisablesLimit(t *testing.T) {
	out, err := run(t, "hours", "validate", "--max", "0", "100")
	require.NoError(t, err)
	assert.Contains(t, out, "100:00")
	assert.NotContains(t, out, "[OVER LIMIT]")
}

func TestHoursParse(t *testing.T) {
	out, err := run(t, "hours", "parse", "8:30", "7", "abc")
	require.NoError(t, err)
	assert.Equal(t, "8.5\n7\n0\n", out)
}

func TestHoursParse_Strict(t *testing.T) {
	_, err := run(t, "hours", "parse", "--strict", "abc")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unparseable")
}

func TestHoursFormat(t *testing.T) {
	out, err := run(t, "hours", "format", "8.5", "1.999", "0")
	require.NoError(t, err)
	assert.Equal(t, "8:30\n2:00\n0:00\n", out)

	_, err = run(t, "hours", "format", "eight")
	assert.Error(t, err)
}

func TestHoursNormalize(t *testing.T) {
	out, err := run(t, "hours", "normalize", "8.5", "8:05", "abc")
	require.NoError(t, err)
	assert.Equal(t, "8:30\n8:05\nabc\n", out)
}

func TestWorkdays(t *testing.T) {
	out, err := run(t, "workdays", "2024-01-01", "2024-01-07", "--expected")
	require.NoError(t, err)
	assert.Contains(t, out, "Mon, Jan 1, 2024 to Sun, Jan 7, 2024: 5 working days")
	assert.Contains(t, out, "Expected hours: 40.00")
}

func TestWorkdays_Reversed(t *testing.T) {
	out, err := run(t, "workdays", "2024-01-07", "2024-01-01")
	require.NoError(t, err)
	assert.Contains(t, out, ": 0 working days")
}

func TestWorkdays_Today(t *testing.T) {
	out, err := run(t, "workdays", "2024-01-08", "today")
	require.NoError(t, err)
	assert.Contains(t, out, "Wed, Jan 10, 2024: 3 working days")
}

func TestCycleCurrent(t *testing.T) {
	out, err := run(t, "cycle", "current")
	require.NoError(t, err)
	assert.Contains(t, out, "Dec 2023 - Jan 2024")
	assert.Contains(t, out, "Working days: 23")
}

func TestCycleList(t *testing.T) {
	out, err := run(t, "cycle", "list", "--count", "2", "--date", "2024-02-01")
	require.NoError(t, err)
	assert.Contains(t, out, "Jan 2024 - Feb 2024")
	assert.Contains(t, out, "Dec 2023 - Jan 2024")
	assert.NotContains(t, out, "Nov 2023")
}

func TestProgress(t *testing.T) {
	out, err := run(t, "progress", "--total", "60:00")
	require.NoError(t, err)
	// 2023-12-25 .. 2024-01-10 holds 13 working days.
	assert.Contains(t, out, "Working days:  13 of 23")
	assert.Contains(t, out, "Expected:      104:00")
	assert.Contains(t, out, "[BEHIND]")
	assert.Contains(t, out, "Progress:      37.5%")
}

func TestProgress_InvalidTotal(t *testing.T) {
	_, err := run(t, "progress", "--total", "lots")
	assert.Error(t, err)
}

const cliSheet = `
owner: jane
entries:
  - date: "2024-01-02"
    project: acme
    hours: "8:30"
  - date: "2024-01-03"
    project: globex
    hours: "1.5"
  - date: "2023-11-03"
    project: acme
    hours: "4"
`

func writeCLISheet(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sheet.yaml")
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	return path
}

func TestSheetCheck(t *testing.T) {
	path := writeCLISheet(t, cliSheet)
	out, err := run(t, "sheet", "check", path)
	require.NoError(t, err)
	assert.Contains(t, out, "3 entries")
}

func TestSheetCheck_Problems(t *testing.T) {
	path := writeCLISheet(t, cliSheet+`  - date: "2024-01-04"
    project: acme
    hours: "9:99"
`)
	out, err := run(t, "sheet", "check", path)
	require.Error(t, err)
	assert.Contains(t, out, "#4")
	assert.Contains(t, out, "9:99")
}

func TestSheetReport(t *testing.T) {
	path := writeCLISheet(t, cliSheet)
	out, err := run(t, "sheet", "report", path, "--daily")
	require.NoError(t, err)
	assert.Contains(t, out, "Owner:   jane")
	assert.Contains(t, out, "Total:   14:00")
	assert.Contains(t, out, "Tue, Jan 2, 2024")
}

func TestSheetReport_Cycle(t *testing.T) {
	path := writeCLISheet(t, cliSheet)
	out, err := run(t, "sheet", "report", path, "--cycle", "--project", "acme")
	require.NoError(t, err)
	assert.Contains(t, out, "Period:  2023-12-25 to 2024-01-24")
	assert.Contains(t, out, "Total:   8:30")
	assert.Contains(t, out, "Entries: 1")
}

func TestSheetExport_Totals(t *testing.T) {
	path := writeCLISheet(t, cliSheet)
	out, err := run(t, "sheet", "export", path, "--totals", "--descriptions=false")
	require.NoError(t, err)

	want := `Date,Project,Hours (Decimal),Hours (HH:MM)
2024-01-03,globex,1.50,1:30
2024-01-02,acme,8.50,8:30
2023-11-03,acme,4.00,4:00

SUMMARY
TOTAL,acme,12.50,12:30
TOTAL,globex,1.50,1:30
GRAND TOTAL,All Projects,14.00,14:00
`
	assert.Equal(t, want, out)
}

func TestSheetExport_Cycle(t *testing.T) {
	path := writeCLISheet(t, cliSheet)
	out, err := run(t, "sheet", "export", path, "--cycle")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Date,Project,Hours (Decimal),Hours (HH:MM),Description", lines[0])
	assert.Equal(t, "2024-01-03,globex,1.50,1:30,", lines[1])
	assert.Equal(t, "2024-01-02,acme,8.50,8:30,", lines[2])
	assert.NotContains(t, out, "SUMMARY")
}

// testChdir changes the working directory for the duration of the test
// and restores it on cleanup (Go 1.21 stand-in for t.Chdir).
func testChdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatal(err)
		}
	})
}
