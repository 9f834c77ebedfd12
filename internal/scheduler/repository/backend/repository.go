package backend

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"task-scheduling-advisor/internal/model"
	"task-scheduling-advisor/internal/scheduler"
	"task-scheduling-advisor/internal/scheduler/repository"
	pkgLog "task-scheduling-advisor/pkg/log"
)

type implRepository struct {
	client *Client
	l      pkgLog.Logger
}

// New creates a backend-backed Repository.
func New(client *Client, l pkgLog.Logger) repository.Repository {
	if client == nil {
		panic("scheduler/repository/backend: client is required")
	}
	return &implRepository{client: client, l: l}
}

func (r *implRepository) GetRecommendation(ctx context.Context, taskID string) (map[string]any, error) {
	payload, err := r.client.GetRecommendations(ctx, taskID)
	if errors.Is(err, repository.ErrMalformedPayload) {
		r.l.Warnf(ctx, "%s: %v", r.dsn("GetRecommendation"), err)
		return nil, err
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetRecommendation"), err)
		return nil, r.mapErr(err, repository.ErrFailedToFetch)
	}
	return payload, nil
}

func (r *implRepository) GetTask(ctx context.Context, id string) (model.ScheduledTask, error) {
	t, err := r.client.GetTask(ctx, id)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetTask"), err)
		return model.ScheduledTask{}, r.mapErr(err, repository.ErrFailedToFetch)
	}
	return r.toModel(ctx, id, t)
}

func (r *implRepository) ScheduleTask(ctx context.Context, opt repository.ScheduleTaskOptions) (model.ScheduledTask, error) {
	t, err := r.client.ScheduleTask(ctx, opt.TaskID, ScheduleRequest{
		ScheduledTime: opt.ScheduledTime.UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ScheduleTask"), err)
		return model.ScheduledTask{}, r.mapErr(err, repository.ErrFailedToUpdate)
	}

	task, err := r.toModel(ctx, opt.TaskID, t)
	if err != nil {
		return model.ScheduledTask{}, err
	}
	if task.ScheduledTime == nil {
		return model.ScheduledTask{}, fmt.Errorf("%w: scheduledTime", repository.ErrIncompleteTask)
	}
	return task, nil
}

func (r *implRepository) StartTask(ctx context.Context, id string) (model.ScheduledTask, error) {
	t, err := r.client.StartTask(ctx, id)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("StartTask"), err)
		return model.ScheduledTask{}, r.mapErr(err, repository.ErrFailedToUpdate)
	}
	return r.toModel(ctx, id, t)
}

// mapErr keeps the transport error and tags it with a repository sentinel;
// 404 responses become scheduler.ErrTaskNotFound.
func (r *implRepository) mapErr(err error, kind error) error {
	var statusErr *StatusError
	if errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%w: %w", scheduler.ErrTaskNotFound, err)
	}
	return fmt.Errorf("%w: %w", kind, err)
}

// toModel converts a backend Task into the scheduling projection, applying defaults.
func (r *implRepository) toModel(ctx context.Context, requestedID string, t *Task) (model.ScheduledTask, error) {
	id := t.Identity()
	if id == "" {
		id = requestedID
	}

	task := model.ScheduledTask{
		ID:                id,
		Title:             t.Title,
		Status:            t.Status,
		EstimatedDuration: t.EstimatedDuration,
		OptimalTimeOfDay:  model.ParseTimeOfDay(t.OptimalTimeOfDay),
		TaskType:          model.ParseTaskType(t.TaskType),
	}
	if task.EstimatedDuration <= 0 {
		task.EstimatedDuration = model.DefaultEstimatedDuration
	}

	var err error
	if task.ScheduledTime, err = parseOptionalTime(t.ScheduledTime); err != nil {
		r.l.Errorf(ctx, "%s: scheduledTime %q: %v", r.dsn("toModel"), *t.ScheduledTime, err)
		return model.ScheduledTask{}, fmt.Errorf("%w: scheduledTime: %w", repository.ErrInvalidResponse, err)
	}
	if task.DueDate, err = parseOptionalTime(t.DueDate); err != nil {
		// A bad due date does not block scheduling.
		r.l.Warnf(ctx, "%s: ignoring dueDate %q: %v", r.dsn("toModel"), *t.DueDate, err)
		task.DueDate = nil
	}
	return task, nil
}

func parseOptionalTime(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, *s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// dsn returns a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("scheduler/repository/backend.%s", method)
}
