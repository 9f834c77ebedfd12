package model

import "time"

// TimeOfDay is a productivity bucket a task is best done in.
type TimeOfDay string

const (
	TimeOfDayMorning   TimeOfDay = "morning"
	TimeOfDayAfternoon TimeOfDay = "afternoon"
	TimeOfDayEvening   TimeOfDay = "evening"
	TimeOfDayAny       TimeOfDay = "any"
)

// ParseTimeOfDay maps s onto a known bucket, falling back to TimeOfDayAny.
func ParseTimeOfDay(s string) TimeOfDay {
	switch TimeOfDay(s) {
	case TimeOfDayMorning, TimeOfDayAfternoon, TimeOfDayEvening:
		return TimeOfDay(s)
	default:
		return TimeOfDayAny
	}
}

// TaskType classifies the kind of work a task involves.
type TaskType string

const (
	TaskTypeFocused  TaskType = "focused"
	TaskTypeCreative TaskType = "creative"
	TaskTypeMeeting  TaskType = "meeting"
	TaskTypeLearning TaskType = "learning"
	TaskTypeAdmin    TaskType = "admin"
	TaskTypeGeneral  TaskType = "general"
)

// ParseTaskType maps s onto a known task type, falling back to TaskTypeGeneral.
func ParseTaskType(s string) TaskType {
	switch TaskType(s) {
	case TaskTypeFocused, TaskTypeCreative, TaskTypeMeeting, TaskTypeLearning, TaskTypeAdmin:
		return TaskType(s)
	default:
		return TaskTypeGeneral
	}
}

// DefaultEstimatedDuration is used when the store omits or sends a non-positive duration.
const DefaultEstimatedDuration = 30

// ScheduledTask is the projection of a task that scheduling reads and writes.
// The task store owns persistence; only ScheduledTime is written from here.
type ScheduledTask struct {
	ID                string
	Title             string
	Status            string
	DueDate           *time.Time
	ScheduledTime     *time.Time // nil means not yet scheduled
	EstimatedDuration int        // minutes
	OptimalTimeOfDay  TimeOfDay
	TaskType          TaskType
}

// IsScheduled reports whether the task has a scheduled time.
func (t ScheduledTask) IsScheduled() bool {
	return t.ScheduledTime != nil
}
