package repository

import "time"

// ScheduleTaskOptions holds the parameters for setting a task's scheduled time.
type ScheduleTaskOptions struct {
	TaskID        string
	ScheduledTime time.Time
}
