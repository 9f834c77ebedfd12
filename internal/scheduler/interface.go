package scheduler

import "context"

// UseCase defines the scheduling advisor operations.
type UseCase interface {
	// Recommend fetches a fresh recommendation for a task and gates it through the policy.
	Recommend(ctx context.Context, taskID string) (RecommendOutput, error)

	// Schedule commits an instant as the task's scheduled time.
	Schedule(ctx context.Context, input ScheduleInput) (ScheduleOutput, error)

	// ScheduleSlot schedules the task at the start of one of its presented slots.
	ScheduleSlot(ctx context.Context, input ScheduleSlotInput) (ScheduleOutput, error)

	// StartTask marks the task as actively being worked on.
	StartTask(ctx context.Context, taskID string) (TaskOutput, error)

	// Track loads a task from the store and refreshes the caller's view of it.
	Track(ctx context.Context, taskID string) (TaskOutput, error)
}
