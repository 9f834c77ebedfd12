package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"task-scheduling-advisor/internal/scheduler"
	"task-scheduling-advisor/internal/scheduler/policy"
)

func startCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "start [task-id]",
		Short: "Mark a task as in progress",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			app, err := c.load(ctx)
			if err != nil {
				return err
			}

			out, err := app.UseCase.StartTask(ctx, args[0])
			if err != nil {
				return err
			}
			return c.printTask(cmd.OutOrStdout(), out, app.Policy.Preferences())
		},
	}
}

func taskCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "task [task-id]",
		Short: "Show a task's scheduling fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			app, err := c.load(ctx)
			if err != nil {
				return err
			}

			out, err := app.UseCase.Track(ctx, args[0])
			if err != nil {
				return err
			}
			return c.printTask(cmd.OutOrStdout(), out, app.Policy.Preferences())
		},
	}
}

func (c *cli) printTask(w io.Writer, out scheduler.TaskOutput, prefs policy.Preferences) error {
	if c.jsonOut {
		return c.printJSON(w, out.Task)
	}

	t := out.Task
	fmt.Fprintf(w, "%s [%s]\n", taskName(t), t.Status)
	fmt.Fprintf(w, "  scheduled: %s\n", formatInstant(t.ScheduledTime, prefs))
	fmt.Fprintf(w, "  estimate:  %s\n", policy.FormatDuration(t.EstimatedDuration))
	fmt.Fprintf(w, "  best time: %s\n", policy.FormatTimeOfDay(t.OptimalTimeOfDay))
	fmt.Fprintf(w, "  type:      %s\n", t.TaskType)
	return nil
}
