package http

import (
	"errors"
	"net/http"

	"task-master/internal/task"
	pkgErrors "task-master/pkg/errors"
)

var (
	errTaskNotFound   = pkgErrors.NewHTTPError(http.StatusNotFound, "task not found")
	errEmptyTitle     = pkgErrors.NewHTTPError(http.StatusBadRequest, "title is required")
	errEmptyID        = pkgErrors.NewHTTPError(http.StatusBadRequest, "task id is required")
	errInvalidOrder   = pkgErrors.NewHTTPError(http.StatusBadRequest, "ids must list every task exactly once")
	errInvalidFilter  = pkgErrors.NewHTTPError(http.StatusBadRequest, "filter must be one of all, active, completed")
	errEmptySession   = pkgErrors.NewHTTPError(http.StatusBadRequest, "session id is required")
	errInvalidDate    = pkgErrors.NewHTTPError(http.StatusBadRequest, "date must be formatted YYYY-MM-DD")
	errInvalidMonth   = pkgErrors.NewHTTPError(http.StatusBadRequest, "month must be formatted YYYY-MM")
	errInvalidTime    = pkgErrors.NewHTTPError(http.StatusBadRequest, "time must be formatted HH:MM")
	errInvalidPrio    = pkgErrors.NewHTTPError(http.StatusBadRequest, "priority must be one of low, medium, high")
	errMissingDueDate = pkgErrors.NewHTTPError(http.StatusBadRequest, "due_date is required")
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
// Anything unrecognized, store failures included, becomes a 500.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, task.ErrTaskNotFound):
		return errTaskNotFound
	case errors.Is(err, task.ErrEmptyTitle):
		return errEmptyTitle
	case errors.Is(err, task.ErrEmptyID):
		return errEmptyID
	case errors.Is(err, task.ErrInvalidOrder):
		return errInvalidOrder
	case errors.Is(err, task.ErrInvalidFilter):
		return errInvalidFilter
	case errors.Is(err, task.ErrEmptySession):
		return errEmptySession
	default:
		return pkgErrors.ErrInternalServerError
	}
}
