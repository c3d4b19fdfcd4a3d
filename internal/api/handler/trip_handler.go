package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/mukhtar-travel/trip-platform/internal/core/domain"
	"github.com/mukhtar-travel/trip-platform/internal/core/ports"
)

type TripHandler struct {
	trips ports.TripService
}

func NewTripHandler(trips ports.TripService) *TripHandler {
	return &TripHandler{trips: trips}
}

type createTripRequest struct {
	TitleAr       string  `json:"title_ar" validate:"required"`
	TitleEn       string  `json:"title_en" validate:"required"`
	DescriptionAr string  `json:"description_ar"`
	DescriptionEn string  `json:"description_en"`
	LocationAr    string  `json:"location_ar"`
	LocationEn    string  `json:"location_en"`
	DurationAr    string  `json:"duration_ar"`
	DurationEn    string  `json:"duration_en"`
	Category      string  `json:"category" validate:"required,oneof=adventure cultural relaxation nature"`
	PriceJOD      float64 `json:"price_jod" validate:"required,gt=0"`
	MaxGuests     int     `json:"max_guests" validate:"required,gt=0"`
	Image         string  `json:"image"`
}

// List returns trips matching the optional filters.
//
// @Summary      List trips
// @Tags         trips
// @Produce      json
// @Param        category  query  string  false  "Trip category"
// @Param        q         query  string  false  "Search query"
// @Param        max_price query  number  false  "Maximum price in JOD"
// @Success      200  {array}  domain.Trip
// @Router       /trips [get]
func (h *TripHandler) List(c echo.Context) error {
	filter := ports.TripFilter{
		Category: domain.TripCategory(c.QueryParam("category")),
		Query:    c.QueryParam("q"),
	}
	if raw := c.QueryParam("max_price"); raw != "" {
		maxPrice, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid max_price"})
		}
		filter.MaxPrice = maxPrice
	}

	trips, err := h.trips.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, trips)
}

// Get returns a single trip by ID.
//
// @Summary      Get trip
// @Tags         trips
// @Produce      json
// @Param        id  path  string  true  "Trip ID"
// @Success      200  {object}  domain.Trip
// @Failure      404  {object}  map[string]string
// @Router       /trips/{id} [get]
func (h *TripHandler) Get(c echo.Context) error {
	trip, err := h.trips.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, trip)
}

// Create registers a new trip for the current organizer.
//
// @Summary      Create trip
// @Tags         trips
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createTripRequest  true  "Trip details"
// @Success      201   {object}  domain.Trip
// @Failure      400   {object}  map[string]string
// @Router       /organizer/trips [post]
func (h *TripHandler) Create(c echo.Context) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return err
	}

	var req createTripRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	trip, err := h.trips.Create(c.Request().Context(), ports.CreateTripInput{
		OrganizerID: identity.ID,
		Title:       domain.LocalizedText{Ar: req.TitleAr, En: req.TitleEn},
		Description: domain.LocalizedText{Ar: req.DescriptionAr, En: req.DescriptionEn},
		Location:    domain.LocalizedText{Ar: req.LocationAr, En: req.LocationEn},
		Duration:    domain.LocalizedText{Ar: req.DurationAr, En: req.DurationEn},
		Category:    domain.TripCategory(req.Category),
		PriceJOD:    req.PriceJOD,
		MaxGuests:   req.MaxGuests,
		Image:       req.Image,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, trip)
}

// Update replaces an existing trip owned by the current organizer.
//
// @Summary      Update trip
// @Tags         trips
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string             true  "Trip ID"
// @Param        body  body  createTripRequest  true  "Trip details"
// @Success      200   {object}  domain.Trip
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /organizer/trips/{id} [put]
func (h *TripHandler) Update(c echo.Context) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return err
	}

	var req createTripRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	trip, err := h.trips.Update(c.Request().Context(), identity.ID, c.Param("id"), ports.UpdateTripInput{
		Title:       domain.LocalizedText{Ar: req.TitleAr, En: req.TitleEn},
		Description: domain.LocalizedText{Ar: req.DescriptionAr, En: req.DescriptionEn},
		Location:    domain.LocalizedText{Ar: req.LocationAr, En: req.LocationEn},
		Duration:    domain.LocalizedText{Ar: req.DurationAr, En: req.DurationEn},
		Category:    domain.TripCategory(req.Category),
		PriceJOD:    req.PriceJOD,
		MaxGuests:   req.MaxGuests,
		Image:       req.Image,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, trip)
}

// Delete removes a trip owned by the current organizer.
//
// @Summary      Delete trip
// @Tags         trips
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Trip ID"
// @Success      204  "No Content"
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /organizer/trips/{id} [delete]
func (h *TripHandler) Delete(c echo.Context) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return err
	}

	if err := h.trips.Delete(c.Request().Context(), identity.ID, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// OrganizerTrips lists the trips owned by the current organizer.
//
// @Summary      List organizer trips
// @Tags         trips
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Trip
// @Router       /organizer/trips [get]
func (h *TripHandler) OrganizerTrips(c echo.Context) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return err
	}

	trips, err := h.trips.ListByOrganizer(c.Request().Context(), identity.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, trips)
}

// ToggleFavorite flips the favorite state of a trip for the current tourist.
//
// @Summary      Toggle favorite
// @Tags         favorites
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Trip ID"
// @Success      200  {object}  map[string]bool
// @Failure      404  {object}  map[string]string
// @Router       /favorites/{id} [post]
func (h *TripHandler) ToggleFavorite(c echo.Context) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return err
	}

	favorited, err := h.trips.ToggleFavorite(c.Request().Context(), identity.ID, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]bool{"favorited": favorited})
}

// Favorites lists the current tourist's favorite trips.
//
// @Summary      List favorites
// @Tags         favorites
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Trip
// @Router       /favorites [get]
func (h *TripHandler) Favorites(c echo.Context) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return err
	}

	trips, err := h.trips.ListFavorites(c.Request().Context(), identity.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, trips)
}
