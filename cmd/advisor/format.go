package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"task-scheduling-advisor/internal/model"
	"task-scheduling-advisor/internal/scheduler/policy"
)

// formatCmd exposes the pure formatters; none of them need config.
func formatCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "format",
		Short: "Render durations, weekdays and time-of-day buckets",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "duration [minutes]",
		Short: "Format minutes as 1h 30m",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			minutes, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("minutes must be an integer: %q", args[0])
			}
			fmt.Fprintln(cmd.OutOrStdout(), policy.FormatDuration(minutes))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "day [0-6]",
		Short: "Format a day of week, 0 is Sunday",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("day must be an integer: %q", args[0])
			}
			fmt.Fprintln(cmd.OutOrStdout(), policy.FormatDayOfWeek(day))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "time-of-day [bucket]",
		Short: "Format morning, afternoon, evening or any",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), policy.FormatTimeOfDay(model.TimeOfDay(args[0])))
			return nil
		},
	})

	return cmd
}
