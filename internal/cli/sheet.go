package cli

import (
	"fmt"
	"slices"
	"text/tabwriter"
	"time"

	"github.com/ogulcanaydogan/billable-hours/pkg/cycle"
	"github.com/ogulcanaydogan/billable-hours/pkg/hours"
	"github.com/ogulcanaydogan/billable-hours/pkg/timesheet"
	"github.com/ogulcanaydogan/billable-hours/pkg/workdays"
	"github.com/spf13/cobra"
)

var sheetCmd = &cobra.Command{
	Use:   "sheet",
	Short: "Check and total YAML timesheets",
}

var sheetCheckCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Report entries with invalid dates, projects or hours",
	Args:  cobra.ExactArgs(1),
	RunE:  runSheetCheck,
}

var sheetReportCmd = &cobra.Command{
	Use:   "report <file>",
	Short: "Total timesheet hours by project and day",
	Args:  cobra.ExactArgs(1),
	RunE:  runSheetReport,
}

var sheetExportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Write timesheet entries as CSV",
	Args:  cobra.ExactArgs(1),
	RunE:  runSheetExport,
}

func init() {
	rootCmd.AddCommand(sheetCmd)
	sheetCmd.AddCommand(sheetCheckCmd)
	sheetCmd.AddCommand(sheetReportCmd)
	sheetCmd.AddCommand(sheetExportCmd)

	for _, c := range []*cobra.Command{sheetReportCmd, sheetExportCmd} {
		c.Flags().StringP("project", "p", "", "Filter by project")
		c.Flags().String("from", "", "First date to include")
		c.Flags().String("to", "", "Last date to include")
		c.Flags().Bool("cycle", false, "Limit to the current billing cycle")
	}
	sheetReportCmd.Flags().Bool("daily", false, "Show totals per day")
	sheetExportCmd.Flags().Bool("totals", false, "Append per-project and grand totals")
	sheetExportCmd.Flags().Bool("descriptions", true, "Include the description column")
}

func runSheetCheck(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}

	sheet, err := timesheet.Load(args[0])
	if err != nil {
		return err
	}

	problems := sheet.Validate(cfg.Hours.MaxPerDay)
	logger.Info("timesheet checked", "file", args[0], "entries", len(sheet.Entries), "problems", len(problems))

	out := cmd.OutOrStdout()
	if len(problems) == 0 {
		fmt.Fprintf(out, "%s %d entries\n", successStyle.Render("[OK]"), len(sheet.Entries))
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "ENTRY\tFIELD\tPROBLEM\n")
	for _, p := range problems {
		entry := "-"
		if p.Index > 0 {
			entry = fmt.Sprintf("#%d", p.Index)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", entry, p.Field, p.Message)
	}
	w.Flush()

	return fmt.Errorf("%d problems in %s", len(problems), args[0])
}

func runSheetReport(cmd *cobra.Command, args []string) error {
	_, logger, err := setup()
	if err != nil {
		return err
	}

	daily, _ := cmd.Flags().GetBool("daily")

	filter, err := sheetFilter(cmd)
	if err != nil {
		return err
	}

	sheet, err := timesheet.Load(args[0])
	if err != nil {
		return err
	}

	summary := sheet.Summarize(filter)
	if summary.Skipped > 0 {
		logger.Warn("invalid entries skipped", "file", args[0], "skipped", summary.Skipped)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "=== Timesheet Report ===\n")
	if sheet.Owner != "" {
		fmt.Fprintf(out, "Owner:   %s\n", sheet.Owner)
	}
	fmt.Fprintf(out, "Period:  %s to %s\n", dateOrAny(filter.StartDate), dateOrAny(filter.EndDate))
	fmt.Fprintf(out, "Total:   %s (%.2f h)\n", hours.FormatClock(summary.TotalHours), summary.TotalHours)
	fmt.Fprintf(out, "Entries: %d\n", summary.EntryCount)
	if summary.Skipped > 0 {
		fmt.Fprintf(out, "Skipped: %d %s\n", summary.Skipped, warningStyle.Render("[INVALID]"))
	}

	if len(summary.ByProject) > 0 {
		fmt.Fprintf(out, "\nBy Project:\n")
		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  PROJECT\tDECIMAL\tHOURS\n")
		for _, name := range sortedKeys(summary.ByProject) {
			v := summary.ByProject[name]
			fmt.Fprintf(w, "  %s\t%.2f\t%s\n", name, v, hours.FormatClock(v))
		}
		w.Flush()
	}

	if daily && len(summary.ByDay) > 0 {
		fmt.Fprintf(out, "\nBy Day:\n")
		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  DATE\tDECIMAL\tHOURS\n")
		for _, day := range sortedKeys(summary.ByDay) {
			v := summary.ByDay[day]
			label := day
			if d, err := workdays.ParseDate(day); err == nil {
				label = workdays.FormatDisplay(d)
			}
			fmt.Fprintf(w, "  %s\t%.2f\t%s\n", label, v, hours.FormatClock(v))
		}
		w.Flush()
	}

	return nil
}

func runSheetExport(cmd *cobra.Command, args []string) error {
	_, logger, err := setup()
	if err != nil {
		return err
	}

	totals, _ := cmd.Flags().GetBool("totals")
	descriptions, _ := cmd.Flags().GetBool("descriptions")

	filter, err := sheetFilter(cmd)
	if err != nil {
		return err
	}

	sheet, err := timesheet.Load(args[0])
	if err != nil {
		return err
	}

	if skipped := sheet.Summarize(filter).Skipped; skipped > 0 {
		logger.Warn("invalid entries skipped", "file", args[0], "skipped", skipped)
	}

	opts := timesheet.ExportOptions{Descriptions: descriptions, Totals: totals}
	if err := sheet.Export(cmd.OutOrStdout(), filter, opts); err != nil {
		return fmt.Errorf("export %s: %w", args[0], err)
	}
	return nil
}

// sheetFilter builds an entry filter from --project, --cycle, --from and
// --to. Explicit dates override the cycle bounds.
func sheetFilter(cmd *cobra.Command) (timesheet.Filter, error) {
	project, _ := cmd.Flags().GetString("project")
	from, _ := cmd.Flags().GetString("from")
	to, _ := cmd.Flags().GetString("to")
	inCycle, _ := cmd.Flags().GetBool("cycle")

	filter := timesheet.Filter{Project: project}
	ref := now()
	if inCycle {
		c := cycle.Current(ref)
		filter.StartDate, filter.EndDate = c.Start, c.End
	}

	var err error
	if from != "" {
		if filter.StartDate, err = parseDateArg(from, ref); err != nil {
			return filter, err
		}
	}
	if to != "" {
		if filter.EndDate, err = parseDateArg(to, ref); err != nil {
			return filter, err
		}
	}
	return filter, nil
}

func dateOrAny(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format(workdays.DateLayout)
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
