package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mukhtar-travel/trip-platform/internal/api/metrics"
	"github.com/mukhtar-travel/trip-platform/internal/core/gate"
	"github.com/mukhtar-travel/trip-platform/internal/core/ports"
)

// IdentityKey is the echo context key under which Gate stores the
// current identity when a request is allowed through.
const IdentityKey = "identity"

// Gate evaluates the access policy against the current session before
// letting the request reach its handler. Requests arriving while the
// session is restoring get a loading response, unauthenticated or
// wrong-role requests get a redirect to the appropriate page.
func Gate(sessions ports.SessionService, req gate.Requirements) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			snap := sessions.Snapshot()
			decision := gate.Evaluate(snap.Loading, snap.Identity, req)
			metrics.GateDecisionsTotal.WithLabelValues(decision.Kind.String()).Inc()

			switch decision.Kind {
			case gate.Loading:
				return c.JSON(http.StatusOK, map[string]string{"state": "loading"})
			case gate.Redirect:
				return c.Redirect(http.StatusFound, decision.Target)
			default:
				if snap.Identity != nil {
					c.Set(IdentityKey, snap.Identity)
				}
				return next(c)
			}
		}
	}
}
