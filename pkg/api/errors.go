package api

import (
	"errors"
	"log/slog"
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/windlassio/windlass/ent"
	"github.com/windlassio/windlass/pkg/config"
	"github.com/windlassio/windlass/pkg/services"
)

// mapServiceError maps service-layer errors to HTTP error responses.
func mapServiceError(err error) *echo.HTTPError {
	var validErr *services.ValidationError
	if errors.As(err, &validErr) {
		return echo.NewHTTPError(http.StatusBadRequest, validErr.Error())
	}
	if errors.Is(err, config.ErrCascadeNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "cascade not found")
	}
	if errors.Is(err, services.ErrNotFound) || ent.IsNotFound(err) {
		return echo.NewHTTPError(http.StatusNotFound, "resource not found")
	}
	if errors.Is(err, services.ErrAlreadyExists) {
		return echo.NewHTTPError(http.StatusConflict, "resource already exists")
	}
	if errors.Is(err, services.ErrInvalidTransition) {
		return echo.NewHTTPError(http.StatusConflict, "session is not in a state that allows this operation")
	}

	// Unexpected error
	slog.Error("Unexpected service error", "error", err)
	return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
}
