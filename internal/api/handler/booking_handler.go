package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/mukhtar-travel/trip-platform/internal/api/metrics"
	"github.com/mukhtar-travel/trip-platform/internal/core/ports"
)

type BookingHandler struct {
	bookings ports.BookingService
	trips    ports.TripService
}

func NewBookingHandler(bookings ports.BookingService, trips ports.TripService) *BookingHandler {
	return &BookingHandler{bookings: bookings, trips: trips}
}

type createBookingRequest struct {
	TripID   string `json:"trip_id" validate:"required"`
	Guests   int    `json:"guests" validate:"required,gt=0"`
	TripDate string `json:"trip_date" validate:"required"`
}

// Create books a trip for the current tourist.
//
// @Summary      Create booking
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createBookingRequest  true  "Booking details"
// @Success      201   {object}  domain.Booking
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /bookings [post]
func (h *BookingHandler) Create(c echo.Context) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return err
	}

	var req createBookingRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	tripDate, err := time.Parse("2006-01-02", req.TripDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid trip_date, expected YYYY-MM-DD"})
	}

	booking, err := h.bookings.Create(c.Request().Context(), ports.CreateBookingInput{
		TripID:    req.TripID,
		TouristID: identity.ID,
		Guests:    req.Guests,
		TripDate:  tripDate,
	})
	if err != nil {
		return err
	}

	if trip, err := h.trips.Get(c.Request().Context(), req.TripID); err == nil {
		metrics.BookingsCreatedTotal.WithLabelValues(string(trip.Category)).Inc()
	}

	return c.JSON(http.StatusCreated, booking)
}

// List returns the current tourist's bookings.
//
// @Summary      List bookings
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Booking
// @Router       /bookings [get]
func (h *BookingHandler) List(c echo.Context) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return err
	}

	bookings, err := h.bookings.ListForTourist(c.Request().Context(), identity.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, bookings)
}

// Cancel cancels one of the current tourist's bookings.
//
// @Summary      Cancel booking
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Booking ID"
// @Success      200  {object}  domain.Booking
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      422  {object}  map[string]string
// @Router       /bookings/{id}/cancel [post]
func (h *BookingHandler) Cancel(c echo.Context) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return err
	}

	booking, err := h.bookings.Cancel(c.Request().Context(), c.Param("id"), identity.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, booking)
}

// OrganizerList returns bookings across the current organizer's trips.
//
// @Summary      List organizer bookings
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Booking
// @Router       /organizer/bookings [get]
func (h *BookingHandler) OrganizerList(c echo.Context) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return err
	}

	bookings, err := h.bookings.ListForOrganizer(c.Request().Context(), identity.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, bookings)
}

// Confirm moves a pending booking to confirmed.
//
// @Summary      Confirm booking
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Booking ID"
// @Success      200  {object}  domain.Booking
// @Failure      403  {object}  map[string]string
// @Failure      422  {object}  map[string]string
// @Router       /organizer/bookings/{id}/confirm [post]
func (h *BookingHandler) Confirm(c echo.Context) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return err
	}

	booking, err := h.bookings.Confirm(c.Request().Context(), c.Param("id"), identity.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, booking)
}

// Complete moves a confirmed booking to completed.
//
// @Summary      Complete booking
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Booking ID"
// @Success      200  {object}  domain.Booking
// @Failure      403  {object}  map[string]string
// @Failure      422  {object}  map[string]string
// @Router       /organizer/bookings/{id}/complete [post]
func (h *BookingHandler) Complete(c echo.Context) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return err
	}

	booking, err := h.bookings.Complete(c.Request().Context(), c.Param("id"), identity.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, booking)
}
