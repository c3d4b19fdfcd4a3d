package ports

import (
	"context"

	"github.com/mukhtar-travel/trip-platform/internal/core/domain"
)

// TripFilter narrows a catalog listing. Zero values mean "no constraint".
type TripFilter struct {
	Category domain.TripCategory
	Query    string // matched against title and location, both languages
	MaxPrice float64
}

// TripRepository defines trip catalog persistence.
type TripRepository interface {
	List(ctx context.Context, filter TripFilter) ([]domain.Trip, error)
	FindByID(ctx context.Context, id string) (*domain.Trip, error)
	ListByOrganizer(ctx context.Context, organizerID string) ([]domain.Trip, error)
	Create(ctx context.Context, trip *domain.Trip) error
	Update(ctx context.Context, trip *domain.Trip) error
	Delete(ctx context.Context, id string) error
}

// FavoriteRepository tracks which trips a tourist has saved.
type FavoriteRepository interface {
	Add(ctx context.Context, touristID, tripID string) error
	Remove(ctx context.Context, touristID, tripID string) error
	Has(ctx context.Context, touristID, tripID string) (bool, error)
	ListTripIDs(ctx context.Context, touristID string) ([]string, error)
}
