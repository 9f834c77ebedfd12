package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	pkgErrors "task-scheduling-advisor/pkg/errors"
)

// processScheduleReq binds the body and resolves scheduled_time to an instant.
func (h *handler) processScheduleReq(c *gin.Context) (scheduleReq, error) {
	var req scheduleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	req.ID = c.Param("id")
	if req.ID == "" {
		return req, errTaskIDRequired
	}
	if req.ScheduledTime == "" {
		return req, errScheduledTimeNeeded
	}

	at, err := h.parser.ParseInstant(req.ScheduledTime, h.now())
	if err != nil {
		return req, pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	req.at = at
	return req, nil
}

// processScheduleSlotReq reads the task id and slot index from the path.
func (h *handler) processScheduleSlotReq(c *gin.Context) (scheduleSlotReq, error) {
	req := scheduleSlotReq{ID: c.Param("id")}
	if req.ID == "" {
		return req, errTaskIDRequired
	}

	idx, err := strconv.Atoi(c.Param("index"))
	if err != nil || idx < 0 {
		return req, errInvalidSlotIndex
	}
	req.Index = idx
	return req, nil
}

func (h *handler) processIDReq(c *gin.Context) (string, error) {
	id := c.Param("id")
	if id == "" {
		return "", errTaskIDRequired
	}
	return id, nil
}
