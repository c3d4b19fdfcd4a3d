// Package memory provides the in-process repositories backing the catalog,
// bookings, reviews, and favorites. Content starts from seeded sample trips;
// nothing here survives a restart.
package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/mukhtar-travel/trip-platform/internal/core/domain"
	"github.com/mukhtar-travel/trip-platform/internal/core/ports"
)

type TripRepository struct {
	mu    sync.RWMutex
	trips map[string]domain.Trip
	order []string // insertion order for stable listings
}

// NewTripRepository returns a repository pre-populated with the sample
// catalog.
func NewTripRepository() *TripRepository {
	r := &TripRepository{trips: make(map[string]domain.Trip)}
	for _, t := range seedTrips() {
		r.trips[t.ID] = t
		r.order = append(r.order, t.ID)
	}
	return r
}

func (r *TripRepository) List(_ context.Context, filter ports.TripFilter) ([]domain.Trip, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []domain.Trip
	for _, id := range r.order {
		t := r.trips[id]
		if filter.Category != "" && t.Category != filter.Category {
			continue
		}
		if filter.MaxPrice > 0 && t.PriceJOD > filter.MaxPrice {
			continue
		}
		if filter.Query != "" && !matchesQuery(t, filter.Query) {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

func (r *TripRepository) FindByID(_ context.Context, id string) (*domain.Trip, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.trips[id]
	if !ok {
		return nil, domain.ErrTripNotFound
	}
	return &t, nil
}

func (r *TripRepository) ListByOrganizer(_ context.Context, organizerID string) ([]domain.Trip, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []domain.Trip
	for _, id := range r.order {
		if t := r.trips[id]; t.OrganizerID == organizerID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *TripRepository) Create(_ context.Context, trip *domain.Trip) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.trips[trip.ID] = *trip
	r.order = append(r.order, trip.ID)
	return nil
}

func (r *TripRepository) Update(_ context.Context, trip *domain.Trip) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.trips[trip.ID]; !ok {
		return domain.ErrTripNotFound
	}
	r.trips[trip.ID] = *trip
	return nil
}

func (r *TripRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.trips[id]; !ok {
		return domain.ErrTripNotFound
	}
	delete(r.trips, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func matchesQuery(t domain.Trip, q string) bool {
	q = strings.ToLower(q)
	for _, s := range []string{t.Title.Ar, t.Title.En, t.Location.Ar, t.Location.En} {
		if strings.Contains(strings.ToLower(s), q) {
			return true
		}
	}
	return false
}
