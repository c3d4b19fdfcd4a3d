package ports

import (
	"context"

	"github.com/mukhtar-travel/trip-platform/internal/core/domain"
)

// ReviewRepository defines review persistence.
type ReviewRepository interface {
	Create(ctx context.Context, r *domain.Review) error
	ListByTrip(ctx context.Context, tripID string) ([]domain.Review, error)
}

// RateTripInput carries a tourist's rating of a trip.
type RateTripInput struct {
	TripID    string
	TouristID string
	Rating    int
	Comment   string
}

type ReviewService interface {
	RateTrip(ctx context.Context, in RateTripInput) (*domain.Review, error)
	ListByTrip(ctx context.Context, tripID string) ([]domain.Review, error)
	ListForOrganizer(ctx context.Context, organizerID string) ([]domain.Review, error)
}
