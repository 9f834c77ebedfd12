package usecase

import (
	"context"
	"errors"

	"task-scheduling-advisor/internal/scheduler"
	"task-scheduling-advisor/internal/scheduler/policy"
	"task-scheduling-advisor/internal/scheduler/repository"
)

// Recommend fetches a fresh recommendation and gates it through the policy.
// Malformed payloads, including bodies that are not JSON objects, degrade to
// a FAILED presentation without an error;
// provider failures return the FAILED presentation and an OpError.
func (uc *implUseCase) Recommend(ctx context.Context, taskID string) (scheduler.RecommendOutput, error) {
	if taskID == "" {
		return scheduler.RecommendOutput{}, scheduler.ErrEmptyTaskID
	}

	raw, err := uc.repo.GetRecommendation(ctx, taskID)
	if errors.Is(err, repository.ErrMalformedPayload) {
		uc.l.Warnf(ctx, "uc.Recommend %s: degrading to unavailable: %v", taskID, err)
		return scheduler.RecommendOutput{Presentation: policy.Unavailable(taskID)}, nil
	}
	if err != nil {
		uc.l.Errorf(ctx, "uc.Recommend GetRecommendation %s: %v", taskID, err)
		return scheduler.RecommendOutput{Presentation: policy.Unavailable(taskID)},
			scheduler.NewOpError(scheduler.OpRecommend, taskID, scheduler.ErrProviderUnavailable, err)
	}

	p, err := uc.policy.Present(raw)
	if err != nil {
		uc.l.Warnf(ctx, "uc.Recommend %s: degrading to unavailable: %v", taskID, err)
		return scheduler.RecommendOutput{Presentation: policy.Unavailable(taskID)}, nil
	}
	if p.TaskID != taskID {
		uc.l.Warnf(ctx, "uc.Recommend %s: provider answered for task %s, discarding", taskID, p.TaskID)
		return scheduler.RecommendOutput{Presentation: policy.Unavailable(taskID)}, nil
	}

	uc.l.Debugf(ctx, "uc.Recommend %s: status=%s confidence=%.2f slots=%d", taskID, p.Status, p.Confidence, len(p.Slots))
	return scheduler.RecommendOutput{Presentation: p}, nil
}
