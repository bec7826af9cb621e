package cli

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/ogulcanaydogan/billable-hours/pkg/hours"
	"github.com/spf13/cobra"
)

var hoursCmd = &cobra.Command{
	Use:   "hours",
	Short: "Check, parse and format hour entries",
}

var hoursValidateCmd = &cobra.Command{
	Use:   "validate <text>...",
	Short: "Check hour entries as a form field would",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runHoursValidate,
}

var hoursParseCmd = &cobra.Command{
	Use:   "parse <text>...",
	Short: "Convert hour entries to decimal hours",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runHoursParse,
}

var hoursFormatCmd = &cobra.Command{
	Use:   "format <decimal>...",
	Short: "Render decimal hours as H:MM",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runHoursFormat,
}

var hoursNormalizeCmd = &cobra.Command{
	Use:   "normalize <text>...",
	Short: "Rewrite hour entries the way a field does when it loses focus",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runHoursNormalize,
}

func init() {
	rootCmd.AddCommand(hoursCmd)
	hoursCmd.AddCommand(hoursValidateCmd)
	hoursCmd.AddCommand(hoursParseCmd)
	hoursCmd.AddCommand(hoursFormatCmd)
	hoursCmd.AddCommand(hoursNormalizeCmd)

	hoursValidateCmd.Flags().Float64("max", 0, "Daily limit, 0 disables the check (default from config)")
	hoursParseCmd.Flags().Bool("strict", false, "Fail on unparseable input instead of reporting 0")
}

func runHoursValidate(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}

	limit := cfg.Hours.MaxPerDay
	if cmd.Flags().Changed("max") {
		limit, _ = cmd.Flags().GetFloat64("max")
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "INPUT\tSTATUS\tHOURS\tMESSAGE\n")

	failed := 0
	for _, arg := range args {
		fb := hours.Check(arg, limit)
		if !fb.OK() {
			failed++
		}
		logger.Debug("hours checked", "input", arg, "status", fb.Status, "value", fb.Value)

		value := "-"
		if fb.Status == hours.StatusValid || fb.Status == hours.StatusOverLimit {
			value = hours.FormatClock(fb.Value)
		}
		fmt.Fprintf(w, "%q\t%s\t%s\t%s\n", arg, statusLabel(fb.Status), value, fb.Message)
	}
	w.Flush()

	if failed > 0 {
		return fmt.Errorf("%d of %d entries rejected", failed, len(args))
	}
	return nil
}

func runHoursParse(cmd *cobra.Command, args []string) error {
	_, logger, err := setup()
	if err != nil {
		return err
	}

	strict, _ := cmd.Flags().GetBool("strict")

	for _, arg := range args {
		v, err := hours.ParseStrict(arg)
		if err != nil {
			if strict {
				return err
			}
			logger.Warn("unparseable hours, using 0", "input", arg)
		}
		fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatFloat(v, 'f', -1, 64))
	}
	return nil
}

func runHoursFormat(cmd *cobra.Command, args []string) error {
	for _, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return fmt.Errorf("parse decimal %q: %w", arg, err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), hours.FormatClock(v))
	}
	return nil
}

func runHoursNormalize(cmd *cobra.Command, args []string) error {
	for _, arg := range args {
		fmt.Fprintln(cmd.OutOrStdout(), hours.Normalize(arg))
	}
	return nil
}
