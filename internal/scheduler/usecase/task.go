package usecase

import (
	"context"

	"task-scheduling-advisor/internal/scheduler"
)

// StartTask marks the task as in progress and refreshes the view with the store's copy.
func (uc *implUseCase) StartTask(ctx context.Context, taskID string) (scheduler.TaskOutput, error) {
	if taskID == "" {
		return scheduler.TaskOutput{}, scheduler.ErrEmptyTaskID
	}

	t, err := uc.repo.StartTask(ctx, taskID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.StartTask StartTask %s: %v", taskID, err)
		return scheduler.TaskOutput{}, scheduler.NewOpError(scheduler.OpStartTask, taskID, scheduler.ErrStartFailed, err)
	}

	uc.board.Put(t)
	return scheduler.TaskOutput{Task: t}, nil
}

// Track loads the task from the store and refreshes the view with it.
func (uc *implUseCase) Track(ctx context.Context, taskID string) (scheduler.TaskOutput, error) {
	if taskID == "" {
		return scheduler.TaskOutput{}, scheduler.ErrEmptyTaskID
	}

	t, err := uc.repo.GetTask(ctx, taskID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Track GetTask %s: %v", taskID, err)
		return scheduler.TaskOutput{}, scheduler.NewOpError(scheduler.OpTrack, taskID, scheduler.ErrTrackFailed, err)
	}

	uc.board.Put(t)
	return scheduler.TaskOutput{Task: t}, nil
}
