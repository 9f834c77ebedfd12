package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"task-scheduling-advisor/internal/model"
	"task-scheduling-advisor/internal/scheduler/policy"
	"task-scheduling-advisor/pkg/gcalendar"
)

// mirrorToCalendar creates a calendar event for a committed schedule.
// Failures are logged only; the store already holds the schedule.
func (uc *implUseCase) mirrorToCalendar(ctx context.Context, t model.ScheduledTask) {
	if uc.calendar == nil || t.ScheduledTime == nil {
		return
	}

	ev, err := uc.calendar.CreateEvent(ctx, uc.buildEventRequest(t))
	if err != nil {
		uc.l.Warnf(ctx, "uc.Schedule calendar mirror %s: %v", t.ID, err)
		return
	}
	uc.l.Infof(ctx, "uc.Schedule mirrored %s to calendar event %s", t.ID, ev.ID)
}

func (uc *implUseCase) buildEventRequest(t model.ScheduledTask) gcalendar.CreateEventRequest {
	duration := t.EstimatedDuration
	if duration <= 0 {
		duration = uc.policy.Preferences().DefaultDuration
	}
	loc := uc.policy.Preferences().Location
	start := t.ScheduledTime.In(loc)

	summary := t.Title
	if summary == "" {
		summary = fmt.Sprintf("Task %s", t.ID)
	}

	return gcalendar.CreateEventRequest{
		CalendarID:  uc.calendarID,
		TaskID:      t.ID,
		Summary:     summary,
		Description: buildEventDescription(t, duration),
		StartTime:   start,
		EndTime:     start.Add(time.Duration(duration) * time.Minute),
		Timezone:    loc.String(),
	}
}

func buildEventDescription(t model.ScheduledTask, duration int) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Type: %s\n", t.TaskType))
	sb.WriteString(fmt.Sprintf("Estimated: %s\n", policy.FormatDuration(duration)))
	sb.WriteString(fmt.Sprintf("Best time: %s\n", policy.FormatTimeOfDay(t.OptimalTimeOfDay)))
	if t.DueDate != nil {
		sb.WriteString(fmt.Sprintf("Due: %s\n", t.DueDate.Format("2006-01-02")))
	}
	return sb.String()
}
