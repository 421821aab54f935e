package http

import (
	"errors"
	"net/http"

	"mom-planner/internal/intake"
	"mom-planner/internal/plan"
	pkgErrors "mom-planner/pkg/errors"
	"mom-planner/pkg/notify"
)

var (
	errInvalidIndex = pkgErrors.NewHTTPError(http.StatusBadRequest, "item index must be a non-negative integer")
	errMissingFile  = pkgErrors.NewHTTPError(http.StatusBadRequest, "a PDF file is required in the \"file\" field")
	errFileTooLarge = pkgErrors.NewHTTPError(http.StatusRequestEntityTooLarge, "file is too large")
)

// mapError translates domain errors into HTTP errors from pkg/errors.
// Generation details never reach the client. Unknown errors are returned
// unchanged.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, plan.ErrEmptyInput):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, plan.EmptyInputMessage)
	case errors.Is(err, plan.ErrInvalidTone):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "tone must be one of the supported tones")
	case errors.Is(err, plan.ErrInvalidStatus):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "status must be Not Started, In Progress or Completed")
	case errors.Is(err, plan.ErrSessionNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "session not found")
	case errors.Is(err, plan.ErrItemNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "plan item not found")
	case errors.Is(err, intake.ErrFormBusy):
		return pkgErrors.NewHTTPError(http.StatusConflict, "a file is being read or a plan is being generated")
	case errors.Is(err, plan.ErrGenerationCancelled):
		return pkgErrors.NewHTTPError(http.StatusConflict, "plan generation was cancelled")
	case errors.Is(err, plan.ErrGeneration):
		return pkgErrors.NewHTTPError(http.StatusBadGateway, plan.GenerationFailedMessage)
	case errors.Is(err, plan.ErrNotificationsBlocked):
		return pkgErrors.NewHTTPError(http.StatusForbidden, notify.PermissionDenied.Tooltip())
	case errors.Is(err, notify.ErrUnsupported):
		return pkgErrors.NewHTTPError(http.StatusServiceUnavailable, "no notification channel is available")
	default:
		return err
	}
}
