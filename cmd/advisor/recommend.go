package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"task-scheduling-advisor/internal/scheduler/policy"
)

func recommendCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "recommend [task-id]",
		Short: "Show scheduling recommendations for a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			app, err := c.load(ctx)
			if err != nil {
				return err
			}

			out, err := app.UseCase.Recommend(ctx, args[0])
			if err != nil {
				return err
			}

			if c.jsonOut {
				return c.printJSON(cmd.OutOrStdout(), out.Presentation)
			}
			printPresentation(cmd.OutOrStdout(), out.Presentation)
			return nil
		},
	}
}

func printPresentation(w io.Writer, p policy.Presentation) {
	fmt.Fprintf(w, "Task %s: %s (confidence %.0f%%)\n", p.TaskID, p.Status, p.Confidence*100)

	if !p.Actionable() {
		fmt.Fprintln(w, p.Message)
		return
	}

	fmt.Fprintf(w, "Best time: %s on %s\n", p.BestTimeOfDayLabel, p.BestDayOfWeekLabel)
	if len(p.Slots) == 0 {
		fmt.Fprintln(w, "No open slots suggested.")
		return
	}
	for i, s := range p.Slots {
		fmt.Fprintf(w, "  [%d] %s (%s)\n", i, s.Label, policy.FormatDuration(s.DurationMinutes))
	}
}
