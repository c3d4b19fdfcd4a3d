package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mukhtar-travel/trip-platform/internal/core/domain"
	"github.com/mukhtar-travel/trip-platform/pkg/logger"
)

// HTTPErrorHandler maps domain errors to HTTP responses so handlers can
// return service errors directly.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		_ = c.JSON(httpErr.Code, map[string]interface{}{"error": httpErr.Message})
		return
	}

	code := resolveStatus(err)
	if code == http.StatusInternalServerError {
		log := logger.Get()
		log.Error().Err(err).
			Str("path", c.Path()).
			Str("method", c.Request().Method).
			Msg("unhandled error")
		_ = c.JSON(code, map[string]string{"error": "internal server error"})
		return
	}

	_ = c.JSON(code, map[string]string{"error": err.Error()})
}

func resolveStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrInvalidRole),
		errors.Is(err, domain.ErrInvalidRating),
		errors.Is(err, domain.ErrInvalidPreference):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNoSession):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrTripNotFound),
		errors.Is(err, domain.ErrBookingNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrSessionBusy):
		return http.StatusConflict
	case errors.Is(err, domain.ErrInvalidTransition):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
