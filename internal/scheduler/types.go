package scheduler

import (
	"time"

	"task-scheduling-advisor/internal/model"
	"task-scheduling-advisor/internal/scheduler/policy"
)

// RecommendOutput is the result of a recommendation fetch.
type RecommendOutput struct {
	Presentation policy.Presentation
}

// ScheduleInput commits ScheduledTime for TaskID.
type ScheduleInput struct {
	TaskID        string
	ScheduledTime time.Time
}

// ScheduleSlotInput schedules TaskID at the start of the presented slot at SlotIndex.
type ScheduleSlotInput struct {
	TaskID    string
	SlotIndex int
}

// ScheduleOutput carries the committed task and what the view held before.
type ScheduleOutput struct {
	Task     model.ScheduledTask
	Previous *time.Time
}

// TaskOutput wraps a single task view.
type TaskOutput struct {
	Task model.ScheduledTask
}
