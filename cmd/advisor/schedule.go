package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"task-scheduling-advisor/internal/model"
	"task-scheduling-advisor/internal/scheduler"
	"task-scheduling-advisor/internal/scheduler/policy"
)

func scheduleCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "schedule [task-id] [when]",
		Short: "Schedule a task",
		Long: `Schedule a task at an instant. [when] accepts:
- RFC 3339, e.g. 2024-01-02T09:00:00Z
- "YYYY-MM-DD HH:MM" in the configured timezone
- relative input such as "tomorrow 9:30" or "next monday 2:00 pm"`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			app, err := c.load(ctx)
			if err != nil {
				return err
			}

			at, err := app.Parser.ParseInstant(strings.Join(args[1:], " "), time.Now())
			if err != nil {
				return fmt.Errorf("%w: %w", scheduler.ErrInvalidScheduledTime, err)
			}

			out, err := app.UseCase.Schedule(ctx, scheduler.ScheduleInput{TaskID: args[0], ScheduledTime: at})
			if err != nil {
				return err
			}
			return c.printSchedule(cmd.OutOrStdout(), out, app.Policy.Preferences())
		},
	}
}

func scheduleSlotCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "schedule-slot [task-id] [index]",
		Short: "Schedule a task at one of its recommended slots",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("%w: %q", scheduler.ErrInvalidSlot, args[1])
			}

			ctx := cmd.Context()
			app, err := c.load(ctx)
			if err != nil {
				return err
			}

			out, err := app.UseCase.ScheduleSlot(ctx, scheduler.ScheduleSlotInput{TaskID: args[0], SlotIndex: idx})
			if err != nil {
				return err
			}
			return c.printSchedule(cmd.OutOrStdout(), out, app.Policy.Preferences())
		},
	}
}

func (c *cli) printSchedule(w io.Writer, out scheduler.ScheduleOutput, prefs policy.Preferences) error {
	if c.jsonOut {
		return c.printJSON(w, out)
	}

	fmt.Fprintf(w, "Scheduled %s for %s\n", taskName(out.Task), formatInstant(out.Task.ScheduledTime, prefs))
	if out.Previous != nil {
		fmt.Fprintf(w, "  was: %s\n", formatInstant(out.Previous, prefs))
	}
	return nil
}

func formatInstant(t *time.Time, prefs policy.Preferences) string {
	if t == nil {
		return "unscheduled"
	}
	layout := "Mon Jan 2 3:04 PM MST"
	if prefs.Clock24h {
		layout = "Mon Jan 2 15:04 MST"
	}
	return t.In(prefs.Location).Format(layout)
}

func taskName(t model.ScheduledTask) string {
	if t.Title == "" {
		return t.ID
	}
	return fmt.Sprintf("%q (%s)", t.Title, t.ID)
}
