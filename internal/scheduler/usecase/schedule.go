package usecase

import (
	"context"
	"fmt"

	"task-scheduling-advisor/internal/model"
	"task-scheduling-advisor/internal/scheduler"
	"task-scheduling-advisor/internal/scheduler/repository"
)

// Schedule commits input.ScheduledTime through the task store. The view is
// updated optimistically and restored if the store rejects the update.
// Past instants and overlaps with other tasks are allowed.
func (uc *implUseCase) Schedule(ctx context.Context, input scheduler.ScheduleInput) (scheduler.ScheduleOutput, error) {
	if input.TaskID == "" {
		return scheduler.ScheduleOutput{}, scheduler.ErrEmptyTaskID
	}
	if input.ScheduledTime.IsZero() {
		return scheduler.ScheduleOutput{}, scheduler.ErrInvalidScheduledTime
	}

	at := input.ScheduledTime
	res, err := uc.board.Transact(ctx, input.TaskID,
		func(cur model.ScheduledTask) model.ScheduledTask {
			cur.ScheduledTime = &at
			return cur
		},
		func(ctx context.Context) (model.ScheduledTask, error) {
			return uc.repo.ScheduleTask(ctx, repository.ScheduleTaskOptions{
				TaskID:        input.TaskID,
				ScheduledTime: at,
			})
		},
	)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Schedule ScheduleTask %s: %v", input.TaskID, err)
		return scheduler.ScheduleOutput{}, scheduler.NewOpError(scheduler.OpSchedule, input.TaskID, scheduler.ErrSchedulingFailed, err)
	}

	uc.mirrorToCalendar(ctx, res.Committed)

	return scheduler.ScheduleOutput{
		Task:     res.Committed,
		Previous: res.Before.ScheduledTime,
	}, nil
}

// ScheduleSlot fetches fresh recommendations and schedules the task at the
// start of the chosen slot.
func (uc *implUseCase) ScheduleSlot(ctx context.Context, input scheduler.ScheduleSlotInput) (scheduler.ScheduleOutput, error) {
	out, err := uc.Recommend(ctx, input.TaskID)
	if err != nil {
		return scheduler.ScheduleOutput{}, err
	}

	p := out.Presentation
	if !p.Actionable() {
		return scheduler.ScheduleOutput{}, fmt.Errorf("%w: %s", scheduler.ErrRecommendationsNotReady, p.Status)
	}
	if input.SlotIndex < 0 || input.SlotIndex >= len(p.Slots) {
		return scheduler.ScheduleOutput{}, fmt.Errorf("%w: %d of %d", scheduler.ErrInvalidSlot, input.SlotIndex, len(p.Slots))
	}

	return uc.Schedule(ctx, scheduler.ScheduleInput{
		TaskID:        input.TaskID,
		ScheduledTime: p.Slots[input.SlotIndex].Start,
	})
}
