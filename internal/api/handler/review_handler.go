package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mukhtar-travel/trip-platform/internal/core/ports"
)

type ReviewHandler struct {
	reviews ports.ReviewService
}

func NewReviewHandler(reviews ports.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviews: reviews}
}

type rateTripRequest struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

// Rate submits a rating for a trip.
//
// @Summary      Rate trip
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string           true  "Trip ID"
// @Param        body  body  rateTripRequest  true  "Rating"
// @Success      201   {object}  domain.Review
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /trips/{id}/reviews [post]
func (h *ReviewHandler) Rate(c echo.Context) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return err
	}

	var req rateTripRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	review, err := h.reviews.RateTrip(c.Request().Context(), ports.RateTripInput{
		TripID:    c.Param("id"),
		TouristID: identity.ID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, review)
}

// ListByTrip returns reviews for one trip.
//
// @Summary      List trip reviews
// @Tags         reviews
// @Produce      json
// @Param        id  path  string  true  "Trip ID"
// @Success      200  {array}  domain.Review
// @Router       /trips/{id}/reviews [get]
func (h *ReviewHandler) ListByTrip(c echo.Context) error {
	reviews, err := h.reviews.ListByTrip(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, reviews)
}

// OrganizerList returns reviews across the current organizer's trips.
//
// @Summary      List organizer reviews
// @Tags         reviews
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Review
// @Router       /organizer/reviews [get]
func (h *ReviewHandler) OrganizerList(c echo.Context) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return err
	}

	reviews, err := h.reviews.ListForOrganizer(c.Request().Context(), identity.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, reviews)
}
