package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mukhtar-travel/trip-platform/internal/core/ports"
)

type HealthHandler struct {
	store ports.KVStore
}

func NewHealthHandler(store ports.KVStore) *HealthHandler {
	return &HealthHandler{store: store}
}

// Liveness reports that the process is up.
//
// @Summary      Liveness probe
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *HealthHandler) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// Readiness probes the durable store before reporting ready.
//
// @Summary      Readiness probe
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      503  {object}  map[string]string
// @Router       /health/ready [get]
func (h *HealthHandler) Readiness(c echo.Context) error {
	if _, _, err := h.store.Get(c.Request().Context(), "health_probe"); err != nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "unavailable", "error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ready"})
}
