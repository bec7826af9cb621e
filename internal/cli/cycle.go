package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/ogulcanaydogan/billable-hours/pkg/cycle"
	"github.com/ogulcanaydogan/billable-hours/pkg/hours"
	"github.com/ogulcanaydogan/billable-hours/pkg/workdays"
	"github.com/spf13/cobra"
)

var cycleCmd = &cobra.Command{
	Use:   "cycle",
	Short: "Show monthly billing cycles (25th to 24th)",
}

var cycleCurrentCmd = &cobra.Command{
	Use:   "current",
	Short: "Show the billing cycle containing a date",
	RunE:  runCycleCurrent,
}

var cycleListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent billing cycles, newest first",
	RunE:  runCycleList,
}

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show progress towards the monthly goal for a billing cycle",
	RunE:  runProgress,
}

func init() {
	rootCmd.AddCommand(cycleCmd)
	rootCmd.AddCommand(progressCmd)
	cycleCmd.AddCommand(cycleCurrentCmd)
	cycleCmd.AddCommand(cycleListCmd)

	cycleCurrentCmd.Flags().StringP("date", "d", "", "Date inside the cycle (default today)")
	cycleListCmd.Flags().StringP("date", "d", "", "Date inside the newest cycle (default today)")
	cycleListCmd.Flags().IntP("count", "n", 0, "Number of cycles (default from config)")

	progressCmd.Flags().StringP("total", "t", "", "Hours billed so far, e.g. 96:30 or 96.5")
	progressCmd.Flags().StringP("date", "d", "", "As-of date (default today)")
	progressCmd.Flags().Float64("goal", 0, "Monthly goal in hours (default from config)")
	_ = progressCmd.MarkFlagRequired("total")
}

func runCycleCurrent(cmd *cobra.Command, _ []string) error {
	dateArg, _ := cmd.Flags().GetString("date")
	d, err := parseDateArg(dateArg, now())
	if err != nil {
		return err
	}

	c := cycle.ForDate(d)
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s\n", titleStyle.Render(c.Name))
	fmt.Fprintf(out, "  Start:        %s\n", workdays.FormatDisplay(c.Start))
	fmt.Fprintf(out, "  End:          %s\n", workdays.FormatDisplay(c.End))
	fmt.Fprintf(out, "  Days:         %d\n", c.Days())
	fmt.Fprintf(out, "  Working days: %d\n", c.WorkingDays())
	return nil
}

func runCycleList(cmd *cobra.Command, _ []string) error {
	cfg, _, err := setup()
	if err != nil {
		return err
	}

	count, _ := cmd.Flags().GetInt("count")
	if count <= 0 {
		count = cfg.Cycle.Count
	}
	dateArg, _ := cmd.Flags().GetString("date")
	d, err := parseDateArg(dateArg, now())
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "CYCLE\tSTART\tEND\tWORKING DAYS\n")
	for _, c := range cycle.Previous(d, count) {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\n",
			c.Name,
			c.Start.Format(workdays.DateLayout),
			c.End.Format(workdays.DateLayout),
			c.WorkingDays(),
		)
	}
	w.Flush()
	return nil
}

func runProgress(cmd *cobra.Command, _ []string) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}

	totalArg, _ := cmd.Flags().GetString("total")
	total, err := hours.ParseStrict(totalArg)
	if err != nil {
		return fmt.Errorf("total: %w", err)
	}

	goal, _ := cmd.Flags().GetFloat64("goal")
	if goal <= 0 {
		goal = cfg.Goals.MonthlyHours
	}

	dateArg, _ := cmd.Flags().GetString("date")
	d, err := parseDateArg(dateArg, now())
	if err != nil {
		return err
	}

	c := cycle.ForDate(d)
	p := cycle.Compute(c, total, goal, cfg.Goals.DailyHours, d)
	logger.Debug("progress computed", "cycle", c.Name, "total", total, "goal", goal, "expected", p.Expected)

	status := successStyle.Render("[ON TRACK]")
	if p.Behind() {
		status = warningStyle.Render("[BEHIND]")
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "=== %s ===\n", titleStyle.Render(c.Name))
	fmt.Fprintf(out, "Billed:        %s (%.2f h)\n", hours.FormatClock(p.Total), p.Total)
	fmt.Fprintf(out, "Goal:          %s (%.2f h)\n", hours.FormatClock(p.Goal), p.Goal)
	fmt.Fprintf(out, "Remaining:     %s\n", hours.FormatClock(p.Remaining))
	fmt.Fprintf(out, "Progress:      %.1f%%\n", p.Percent)
	fmt.Fprintf(out, "Working days:  %d of %d\n", p.WorkingDaysElapsed, p.WorkingDays)
	fmt.Fprintf(out, "Expected:      %s %s\n", hours.FormatClock(p.Expected), status)
	return nil
}
