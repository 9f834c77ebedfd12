package http

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"task-scheduling-advisor/internal/model"
	"task-scheduling-advisor/internal/scheduler/policy"
	"task-scheduling-advisor/pkg/response"
)

// Recommendations godoc
// @Summary     Get scheduling recommendations
// @Description Fetches fresh recommendations for a task and gates them by confidence.
// @Description Below the threshold the response carries no slots and status INSUFFICIENT_DATA.
// @Tags        Scheduler
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} recommendationResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     502 {object} response.Resp "Recommendation provider unavailable"
// @Router      /api/v1/scheduler/recommendations/{id} [GET]
func (h *handler) Recommendations(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Recommend(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Recommend: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newRecommendationResp(output))
}

// Schedule godoc
// @Summary     Schedule a task
// @Description Sets the task's scheduled time. Accepts RFC 3339, "YYYY-MM-DD HH:MM" in the
// @Description configured timezone, or relative input such as "tomorrow 9:30".
// @Tags        Scheduler
// @Accept      json
// @Produce     json
// @Param       id   path string      true "Task ID"
// @Param       body body scheduleReq true "Scheduled time"
// @Success     200 {object} scheduleResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     502 {object} response.Resp "Task store rejected the update"
// @Router      /api/v1/scheduler/schedule/{id} [PATCH]
func (h *handler) Schedule(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processScheduleReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Schedule(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Schedule: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newScheduleResp(output))
}

// ScheduleSlot godoc
// @Summary     Schedule a task at a recommended slot
// @Description Fetches fresh recommendations and schedules the task at the start of the slot at index.
// @Tags        Scheduler
// @Produce     json
// @Param       id    path string true "Task ID"
// @Param       index path int    true "Slot index, 0-based"
// @Success     200 {object} scheduleResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     409 {object} response.Resp "No actionable recommendations"
// @Failure     502 {object} response.Resp "Upstream failure"
// @Router      /api/v1/scheduler/schedule/{id}/slots/{index} [POST]
func (h *handler) ScheduleSlot(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processScheduleSlotReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.ScheduleSlot(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ScheduleSlot: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newScheduleResp(output))
}

// StartTask godoc
// @Summary     Start a task
// @Description Marks the task as in progress.
// @Tags        Scheduler
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} taskDetailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     502 {object} response.Resp "Task store rejected the update"
// @Router      /api/v1/scheduler/start-task/{id} [PATCH]
func (h *handler) StartTask(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.StartTask(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.StartTask: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newTaskDetailResp(output))
}

// Task godoc
// @Summary     Load a task from the store
// @Tags        Scheduler
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} taskDetailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/scheduler/tasks/{id} [GET]
func (h *handler) Task(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Track(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Track: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newTaskDetailResp(output))
}

// FormatDuration godoc
// @Summary     Format a duration
// @Tags        Format
// @Produce     json
// @Param       minutes path int true "Minutes"
// @Success     200 {object} formatResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/scheduler/format/duration/{minutes} [GET]
func (h *handler) FormatDuration(c *gin.Context) {
	raw := c.Param("minutes")
	minutes, err := strconv.Atoi(raw)
	if err != nil {
		response.Error(c, errInvalidMinutes, nil)
		return
	}
	response.OK(c, formatResp{Input: raw, Label: policy.FormatDuration(minutes)})
}

// FormatDay godoc
// @Summary     Format a day of week
// @Description 0 is Sunday. Out-of-range values render as "Unknown".
// @Tags        Format
// @Produce     json
// @Param       day path int true "Day of week"
// @Success     200 {object} formatResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/scheduler/format/day/{day} [GET]
func (h *handler) FormatDay(c *gin.Context) {
	raw := c.Param("day")
	day, err := strconv.Atoi(raw)
	if err != nil {
		response.Error(c, errInvalidDay, nil)
		return
	}
	response.OK(c, formatResp{Input: raw, Label: policy.FormatDayOfWeek(day)})
}

// FormatTimeOfDay godoc
// @Summary     Format a time-of-day bucket
// @Description Unknown buckets render as "Any time".
// @Tags        Format
// @Produce     json
// @Param       bucket path string true "morning, afternoon, evening or any"
// @Success     200 {object} formatResp
// @Router      /api/v1/scheduler/format/time-of-day/{bucket} [GET]
func (h *handler) FormatTimeOfDay(c *gin.Context) {
	raw := c.Param("bucket")
	response.OK(c, formatResp{Input: raw, Label: policy.FormatTimeOfDay(model.TimeOfDay(raw))})
}
