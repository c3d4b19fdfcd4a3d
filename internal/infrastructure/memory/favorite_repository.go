package memory

import (
	"context"
	"sync"
)

type FavoriteRepository struct {
	mu  sync.RWMutex
	set map[string]map[string]struct{} // tourist → trip ids
	ord map[string][]string            // insertion order per tourist
}

func NewFavoriteRepository() *FavoriteRepository {
	return &FavoriteRepository{
		set: make(map[string]map[string]struct{}),
		ord: make(map[string][]string),
	}
}

func (r *FavoriteRepository) Add(_ context.Context, touristID, tripID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.set[touristID] == nil {
		r.set[touristID] = make(map[string]struct{})
	}
	if _, ok := r.set[touristID][tripID]; ok {
		return nil
	}
	r.set[touristID][tripID] = struct{}{}
	r.ord[touristID] = append(r.ord[touristID], tripID)
	return nil
}

func (r *FavoriteRepository) Remove(_ context.Context, touristID, tripID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.set[touristID], tripID)
	ids := r.ord[touristID]
	for i, id := range ids {
		if id == tripID {
			r.ord[touristID] = append(ids[:i], ids[i+1:]...)
			break
		}
	}
	return nil
}

func (r *FavoriteRepository) Has(_ context.Context, touristID, tripID string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.set[touristID][tripID]
	return ok, nil
}

func (r *FavoriteRepository) ListTripIDs(_ context.Context, touristID string) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, len(r.ord[touristID]))
	copy(ids, r.ord[touristID])
	return ids, nil
}
