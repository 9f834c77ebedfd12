package scheduler

import (
	"errors"
	"fmt"

	"task-scheduling-advisor/internal/scheduler/policy"
)

// Domain-specific errors for the scheduler package.
var (
	ErrEmptyTaskID             = errors.New("task id is empty")
	ErrInvalidScheduledTime    = errors.New("scheduled time is not a valid instant")
	ErrInvalidSlot             = errors.New("slot index is out of range")
	ErrRecommendationsNotReady = errors.New("no actionable recommendations for task")
	ErrTaskNotFound            = errors.New("task not found")
	ErrMalformedRecommendation = policy.ErrMalformedRecommendation
	ErrProviderUnavailable     = errors.New("recommendation provider unavailable")
	ErrSchedulingFailed        = errors.New("scheduling failed")
	ErrStartFailed             = errors.New("start task failed")
	ErrTrackFailed             = errors.New("task lookup failed")
)

// Op names the operation an OpError was raised by.
type Op string

const (
	OpRecommend Op = "recommend"
	OpSchedule  Op = "schedule"
	OpStartTask Op = "start-task"
	OpTrack     Op = "track"
)

// OpError reports a failed remote operation on a task.
// errors.Is matches both Kind and the underlying cause.
type OpError struct {
	Op     Op
	TaskID string
	Kind   error
	Err    error
}

func (e *OpError) Error() string {
	return fmt.Sprintf("%s task %s: %v: %v", e.Op, e.TaskID, e.Kind, e.Err)
}

func (e *OpError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

// NewOpError builds an OpError.
func NewOpError(op Op, taskID string, kind, err error) *OpError {
	return &OpError{Op: op, TaskID: taskID, Kind: kind, Err: err}
}
