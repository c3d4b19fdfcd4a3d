package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/mukhtar-travel/trip-platform/internal/core/domain"
)

// currentIdentity extracts the identity injected by the Gate middleware.
// Returns ErrNoSession when the route was reached without one, which
// only happens when a route is misregistered outside its gate.
func currentIdentity(c echo.Context) (*domain.Identity, error) {
	identity, _ := c.Get("identity").(*domain.Identity)
	if identity == nil {
		return nil, domain.ErrNoSession
	}
	return identity, nil
}
