package http

import (
	"time"

	"task-scheduling-advisor/internal/model"
	"task-scheduling-advisor/internal/scheduler"
	"task-scheduling-advisor/internal/scheduler/policy"
)

// --- Request DTOs ---

type scheduleReq struct {
	ID            string `json:"-"` // populated from URI param
	ScheduledTime string `json:"scheduled_time" example:"tomorrow 9:30"`

	at time.Time
}

func (r scheduleReq) toInput() scheduler.ScheduleInput {
	return scheduler.ScheduleInput{
		TaskID:        r.ID,
		ScheduledTime: r.at,
	}
}

type scheduleSlotReq struct {
	ID    string
	Index int
}

func (r scheduleSlotReq) toInput() scheduler.ScheduleSlotInput {
	return scheduler.ScheduleSlotInput{
		TaskID:    r.ID,
		SlotIndex: r.Index,
	}
}

// --- Response DTOs ---

type slotResp struct {
	Start           time.Time `json:"start"`
	End             time.Time `json:"end"`
	DurationMinutes int       `json:"duration_minutes"`
	Label           string    `json:"label"`
}

type recommendationResp struct {
	Status             string     `json:"status"`
	TaskID             string     `json:"task_id"`
	Confidence         float64    `json:"confidence"`
	BestTimeOfDay      string     `json:"best_time_of_day,omitempty"`
	BestTimeOfDayLabel string     `json:"best_time_of_day_label,omitempty"`
	BestDayOfWeek      *int       `json:"best_day_of_week,omitempty"`
	BestDayOfWeekLabel string     `json:"best_day_of_week_label,omitempty"`
	Slots              []slotResp `json:"slots"`
	Message            string     `json:"message,omitempty"`
}

func (h *handler) newRecommendationResp(out scheduler.RecommendOutput) recommendationResp {
	p := out.Presentation
	resp := recommendationResp{
		Status:     string(p.Status),
		TaskID:     p.TaskID,
		Confidence: p.Confidence,
		Slots:      make([]slotResp, len(p.Slots)),
		Message:    p.Message,
	}
	for i, s := range p.Slots {
		resp.Slots[i] = slotResp{
			Start:           s.Start,
			End:             s.End,
			DurationMinutes: s.DurationMinutes,
			Label:           s.Label,
		}
	}
	if p.Actionable() {
		resp.BestTimeOfDay = string(p.BestTimeOfDay)
		resp.BestTimeOfDayLabel = p.BestTimeOfDayLabel
		resp.BestDayOfWeekLabel = p.BestDayOfWeekLabel
		if p.BestDayOfWeek >= 0 {
			day := p.BestDayOfWeek
			resp.BestDayOfWeek = &day
		}
	}
	return resp
}

type taskResp struct {
	ID                     string     `json:"id"`
	Title                  string     `json:"title"`
	Status                 string     `json:"status"`
	DueDate                *time.Time `json:"due_date"`
	ScheduledTime          *time.Time `json:"scheduled_time"`
	EstimatedDuration      int        `json:"estimated_duration"`
	EstimatedDurationLabel string     `json:"estimated_duration_label"`
	OptimalTimeOfDay       string     `json:"optimal_time_of_day"`
	TaskType               string     `json:"task_type"`
}

func newTaskResp(t model.ScheduledTask) taskResp {
	return taskResp{
		ID:                     t.ID,
		Title:                  t.Title,
		Status:                 t.Status,
		DueDate:                t.DueDate,
		ScheduledTime:          t.ScheduledTime,
		EstimatedDuration:      t.EstimatedDuration,
		EstimatedDurationLabel: policy.FormatDuration(t.EstimatedDuration),
		OptimalTimeOfDay:       string(t.OptimalTimeOfDay),
		TaskType:               string(t.TaskType),
	}
}

type scheduleResp struct {
	Task                  taskResp   `json:"task"`
	PreviousScheduledTime *time.Time `json:"previous_scheduled_time"`
}

func (h *handler) newScheduleResp(out scheduler.ScheduleOutput) scheduleResp {
	return scheduleResp{
		Task:                  newTaskResp(out.Task),
		PreviousScheduledTime: out.Previous,
	}
}

type taskDetailResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newTaskDetailResp(out scheduler.TaskOutput) taskDetailResp {
	return taskDetailResp{Task: newTaskResp(out.Task)}
}

type formatResp struct {
	Input string `json:"input"`
	Label string `json:"label"`
}
