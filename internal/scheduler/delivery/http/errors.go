package http

import (
	"errors"
	"net/http"

	"task-scheduling-advisor/internal/scheduler"
	pkgErrors "task-scheduling-advisor/pkg/errors"
)

var (
	errTaskIDRequired      = pkgErrors.NewHTTPError(http.StatusBadRequest, "task id is required")
	errInvalidSlotIndex    = pkgErrors.NewHTTPError(http.StatusBadRequest, "slot index must be a non-negative integer")
	errInvalidMinutes      = pkgErrors.NewHTTPError(http.StatusBadRequest, "minutes must be an integer")
	errInvalidDay          = pkgErrors.NewHTTPError(http.StatusBadRequest, "day must be an integer")
	errScheduledTimeNeeded = pkgErrors.NewHTTPError(http.StatusBadRequest, "scheduled_time is required")
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
// A missing task wins over the operation kind it was reported under.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, scheduler.ErrEmptyTaskID),
		errors.Is(err, scheduler.ErrInvalidScheduledTime),
		errors.Is(err, scheduler.ErrInvalidSlot):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, scheduler.ErrTaskNotFound):
		return pkgErrors.ErrNotFound
	case errors.Is(err, scheduler.ErrRecommendationsNotReady):
		return pkgErrors.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, scheduler.ErrProviderUnavailable):
		return pkgErrors.NewHTTPError(http.StatusBadGateway, scheduler.ErrProviderUnavailable.Error())
	case errors.Is(err, scheduler.ErrSchedulingFailed):
		return pkgErrors.NewHTTPError(http.StatusBadGateway, scheduler.ErrSchedulingFailed.Error())
	case errors.Is(err, scheduler.ErrStartFailed):
		return pkgErrors.NewHTTPError(http.StatusBadGateway, scheduler.ErrStartFailed.Error())
	case errors.Is(err, scheduler.ErrTrackFailed):
		return pkgErrors.NewHTTPError(http.StatusBadGateway, scheduler.ErrTrackFailed.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
