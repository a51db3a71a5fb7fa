package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/greenroomlab/greenroom/pkg/services"
)

// mapServiceError maps service-layer errors to HTTP error responses.
// Bodies carry a stable machine-readable error code.
func mapServiceError(err error) *echo.HTTPError {
	var validErr *services.ValidationError
	if errors.As(err, &validErr) {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]string{
			"error":   "invalid_input",
			"message": validErr.Error(),
		})
	}
	if errors.Is(err, services.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, map[string]string{
			"error": "not_found",
		})
	}
	if errors.Is(err, services.ErrAuthRequired) {
		return echo.NewHTTPError(http.StatusUnauthorized, map[string]string{
			"error": "authentication_required",
		})
	}
	if errors.Is(err, services.ErrSessionBlocked) {
		return echo.NewHTTPError(http.StatusConflict, map[string]string{
			"error":   "session_blocked",
			"status":  "blocked",
			"message": "This study has already been completed.",
		})
	}
	if errors.Is(err, services.ErrSessionEnded) {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]string{
			"error": "session_ended",
		})
	}
	if errors.Is(err, services.ErrForbidden) {
		return echo.NewHTTPError(http.StatusForbidden, map[string]string{
			"error": "not_a_member",
		})
	}

	// Unexpected error
	slog.Error("Unexpected service error", "error", err)
	return echo.NewHTTPError(http.StatusInternalServerError, map[string]string{
		"error": "internal_error",
	})
}
