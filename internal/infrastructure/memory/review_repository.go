package memory

import (
	"context"
	"sync"

	"github.com/mukhtar-travel/trip-platform/internal/core/domain"
)

type ReviewRepository struct {
	mu      sync.RWMutex
	reviews []domain.Review
}

func NewReviewRepository() *ReviewRepository {
	return &ReviewRepository{}
}

func (r *ReviewRepository) Create(_ context.Context, review *domain.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.reviews = append(r.reviews, *review)
	return nil
}

func (r *ReviewRepository) ListByTrip(_ context.Context, tripID string) ([]domain.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []domain.Review
	for _, rv := range r.reviews {
		if rv.TripID == tripID {
			out = append(out, rv)
		}
	}
	return out, nil
}
