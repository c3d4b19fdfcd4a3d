package memory

import (
	"context"
	"sync"
	"time"

	"github.com/mukhtar-travel/trip-platform/internal/core/domain"
)

type BookingRepository struct {
	mu       sync.RWMutex
	bookings map[string]domain.Booking
	order    []string
}

func NewBookingRepository() *BookingRepository {
	return &BookingRepository{bookings: make(map[string]domain.Booking)}
}

func (r *BookingRepository) Create(_ context.Context, b *domain.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.bookings[b.ID] = *b
	r.order = append(r.order, b.ID)
	return nil
}

func (r *BookingRepository) FindByID(_ context.Context, id string) (*domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.bookings[id]
	if !ok {
		return nil, domain.ErrBookingNotFound
	}
	return &b, nil
}

func (r *BookingRepository) ListByTourist(_ context.Context, touristID string) ([]domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []domain.Booking
	for _, id := range r.order {
		if b := r.bookings[id]; b.TouristID == touristID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *BookingRepository) ListByOrganizer(_ context.Context, organizerID string) ([]domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []domain.Booking
	for _, id := range r.order {
		if b := r.bookings[id]; b.OrganizerID == organizerID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *BookingRepository) UpdateStatus(_ context.Context, id string, status domain.BookingStatus, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.bookings[id]
	if !ok {
		return domain.ErrBookingNotFound
	}
	b.Status = status
	b.UpdatedAt = at
	r.bookings[id] = b
	return nil
}
