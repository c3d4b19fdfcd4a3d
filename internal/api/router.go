package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/mukhtar-travel/trip-platform/docs"
	"github.com/mukhtar-travel/trip-platform/internal/api/handler"
	"github.com/mukhtar-travel/trip-platform/internal/api/middleware"
	"github.com/mukhtar-travel/trip-platform/internal/core/domain"
	"github.com/mukhtar-travel/trip-platform/internal/core/gate"
	"github.com/mukhtar-travel/trip-platform/internal/core/ports"
)

// Services bundles everything the router needs wired in.
type Services struct {
	Sessions ports.SessionService
	Trips    ports.TripService
	Bookings ports.BookingService
	Reviews  ports.ReviewService
	Prefs    ports.PrefsService
	Reports  ports.ReportService
	Resets   ports.ResetService
	Store    ports.KVStore
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(svc Services, jwtSecret string, tokenTTL time.Duration) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = HTTPErrorHandler

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("mukhtar"))

	// --- Handlers ---
	tokens := handler.NewTokenIssuer(jwtSecret, tokenTTL)
	sessionHandler := handler.NewSessionHandler(svc.Sessions, svc.Resets, tokens)
	tripHandler := handler.NewTripHandler(svc.Trips)
	bookingHandler := handler.NewBookingHandler(svc.Bookings, svc.Trips)
	reviewHandler := handler.NewReviewHandler(svc.Reviews)
	prefsHandler := handler.NewPrefsHandler(svc.Prefs)
	reportHandler := handler.NewReportHandler(svc.Reports)
	healthHandler := handler.NewHealthHandler(svc.Store)

	authMW := middleware.Auth(jwtSecret)

	// --- Auth routes ---
	e.POST("/auth/login", sessionHandler.Login)
	e.POST("/auth/signup", sessionHandler.Signup)
	e.POST("/auth/forgot-password", sessionHandler.ForgotPassword)
	e.POST("/auth/reset-password", sessionHandler.ResetPassword)
	e.GET("/auth/me", sessionHandler.Me, authMW)
	e.POST("/auth/logout", sessionHandler.Logout, authMW)
	e.PUT("/auth/profile", sessionHandler.UpdateProfile, authMW)

	// --- Public catalog and settings ---
	e.GET("/trips", tripHandler.List)
	e.GET("/trips/:id/reviews", reviewHandler.ListByTrip)
	e.GET("/settings/theme", prefsHandler.GetTheme)
	e.PUT("/settings/theme", prefsHandler.SetTheme)
	e.GET("/settings/language", prefsHandler.GetLanguage)
	e.PUT("/settings/language", prefsHandler.SetLanguage)

	// --- Session-gated routes ---
	// Trip detail needs a session but either role may view it.
	e.GET("/trips/:id", tripHandler.Get, middleware.Gate(svc.Sessions, gate.Protected()))

	touristGate := middleware.Gate(svc.Sessions, gate.ForRole(domain.RoleTourist))
	e.POST("/bookings", bookingHandler.Create, touristGate)
	e.GET("/bookings", bookingHandler.List, touristGate)
	e.POST("/bookings/:id/cancel", bookingHandler.Cancel, touristGate)
	e.GET("/favorites", tripHandler.Favorites, touristGate)
	e.POST("/favorites/:id", tripHandler.ToggleFavorite, touristGate)
	e.POST("/trips/:id/reviews", reviewHandler.Rate, touristGate)

	organizerGate := middleware.Gate(svc.Sessions, gate.ForRole(domain.RoleOrganizer))
	e.GET("/dashboard", reportHandler.Dashboard, organizerGate)
	e.GET("/dashboard/reports", reportHandler.Dashboard, organizerGate)
	e.GET("/organizer/trips", tripHandler.OrganizerTrips, organizerGate)
	e.POST("/organizer/trips", tripHandler.Create, organizerGate)
	e.PUT("/organizer/trips/:id", tripHandler.Update, organizerGate)
	e.DELETE("/organizer/trips/:id", tripHandler.Delete, organizerGate)
	e.GET("/organizer/bookings", bookingHandler.OrganizerList, organizerGate)
	e.POST("/organizer/bookings/:id/confirm", bookingHandler.Confirm, organizerGate)
	e.POST("/organizer/bookings/:id/complete", bookingHandler.Complete, organizerGate)
	e.GET("/organizer/reviews", reviewHandler.OrganizerList, organizerGate)

	// --- Operational endpoints ---
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
