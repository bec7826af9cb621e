package cli

import (
	"fmt"

	"github.com/ogulcanaydogan/billable-hours/pkg/workdays"
	"github.com/spf13/cobra"
)

var workdaysCmd = &cobra.Command{
	Use:   "workdays <start> <end>",
	Short: "Count Monday-to-Friday days between two dates, inclusive",
	Long: `Count working days between two dates, both inclusive.

Dates are YYYY-MM-DD or natural language ("today", "last monday").
A start date after the end date counts zero days.`,
	Args: cobra.ExactArgs(2),
	RunE: runWorkdays,
}

func init() {
	rootCmd.AddCommand(workdaysCmd)
	workdaysCmd.Flags().Bool("expected", false, "Also print the expected hours for the range")
}

func runWorkdays(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}

	ref := now()
	start, err := parseDateArg(args[0], ref)
	if err != nil {
		return err
	}
	end, err := parseDateArg(args[1], ref)
	if err != nil {
		return err
	}

	n := workdays.Count(start, end)
	logger.Debug("working days counted", "start", start.Format(workdays.DateLayout), "end", end.Format(workdays.DateLayout), "days", n)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s to %s: %d working days\n", workdays.FormatDisplay(start), workdays.FormatDisplay(end), n)

	if expected, _ := cmd.Flags().GetBool("expected"); expected {
		fmt.Fprintf(out, "Expected hours: %.2f (%.2f per day)\n", float64(n)*cfg.Goals.DailyHours, cfg.Goals.DailyHours)
	}
	return nil
}
