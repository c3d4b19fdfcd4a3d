package ports

import (
	"context"
	"time"

	"github.com/mukhtar-travel/trip-platform/internal/core/domain"
)

// BookingRepository defines booking persistence.
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	FindByID(ctx context.Context, id string) (*domain.Booking, error)
	ListByTourist(ctx context.Context, touristID string) ([]domain.Booking, error)
	ListByOrganizer(ctx context.Context, organizerID string) ([]domain.Booking, error)
	UpdateStatus(ctx context.Context, id string, status domain.BookingStatus, at time.Time) error
}
