package repository

import (
	"context"

	"task-scheduling-advisor/internal/model"
)

// Repository is the composed interface for the scheduler's remote collaborators.
type Repository interface {
	RecommendationProvider
	TaskStore
}

// RecommendationProvider returns raw recommendation payloads. The payload is
// left untyped so validation stays in the policy.
type RecommendationProvider interface {
	GetRecommendation(ctx context.Context, taskID string) (map[string]any, error)
}

// TaskStore owns task persistence.
type TaskStore interface {
	GetTask(ctx context.Context, id string) (model.ScheduledTask, error)
	ScheduleTask(ctx context.Context, opt ScheduleTaskOptions) (model.ScheduledTask, error)
	StartTask(ctx context.Context, id string) (model.ScheduledTask, error)
}
