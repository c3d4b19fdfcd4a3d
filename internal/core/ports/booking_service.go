package ports

import (
	"context"
	"time"

	"github.com/mukhtar-travel/trip-platform/internal/core/domain"
)

// CreateBookingInput carries a tourist's reservation request.
type CreateBookingInput struct {
	TripID    string
	TouristID string
	Guests    int
	TripDate  time.Time
}

type BookingService interface {
	Create(ctx context.Context, in CreateBookingInput) (*domain.Booking, error)
	ListForTourist(ctx context.Context, touristID string) ([]domain.Booking, error)
	ListForOrganizer(ctx context.Context, organizerID string) ([]domain.Booking, error)
	// Cancel is invoked by the booking tourist; ownership is enforced.
	Cancel(ctx context.Context, bookingID, touristID string) (*domain.Booking, error)
	// Confirm and Complete are invoked by the trip organizer.
	Confirm(ctx context.Context, bookingID, organizerID string) (*domain.Booking, error)
	Complete(ctx context.Context, bookingID, organizerID string) (*domain.Booking, error)
}
