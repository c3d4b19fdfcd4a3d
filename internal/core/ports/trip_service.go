package ports

import (
	"context"

	"github.com/mukhtar-travel/trip-platform/internal/core/domain"
)

// CreateTripInput is what an organizer supplies when publishing a trip.
type CreateTripInput struct {
	OrganizerID string
	Title       domain.LocalizedText
	Description domain.LocalizedText
	Location    domain.LocalizedText
	Duration    domain.LocalizedText
	Category    domain.TripCategory
	PriceJOD    float64
	MaxGuests   int
	Image       string
}

// UpdateTripInput carries the full replacement form for an existing trip.
// Ownership, rating and creation time are never editable.
type UpdateTripInput struct {
	Title       domain.LocalizedText
	Description domain.LocalizedText
	Location    domain.LocalizedText
	Duration    domain.LocalizedText
	Category    domain.TripCategory
	PriceJOD    float64
	MaxGuests   int
	Image       string
}

type TripService interface {
	List(ctx context.Context, filter TripFilter) ([]domain.Trip, error)
	Get(ctx context.Context, id string) (*domain.Trip, error)
	ListByOrganizer(ctx context.Context, organizerID string) ([]domain.Trip, error)
	Create(ctx context.Context, in CreateTripInput) (*domain.Trip, error)
	// Update and Delete are restricted to the owning organizer.
	Update(ctx context.Context, organizerID, tripID string, in UpdateTripInput) (*domain.Trip, error)
	Delete(ctx context.Context, organizerID, tripID string) error
	// ToggleFavorite flips the saved state of a trip for a tourist and
	// reports the new state.
	ToggleFavorite(ctx context.Context, touristID, tripID string) (bool, error)
	ListFavorites(ctx context.Context, touristID string) ([]domain.Trip, error)
}
