package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mukhtar-travel/trip-platform/internal/core/domain"
	"github.com/mukhtar-travel/trip-platform/internal/core/ports"
)

// TripService serves the trip catalog: public browsing, organizer publishing,
// and per-tourist favorites.
type TripService struct {
	trips     ports.TripRepository
	favorites ports.FavoriteRepository
	log       zerolog.Logger
}

func NewTripService(trips ports.TripRepository, favorites ports.FavoriteRepository, log zerolog.Logger) *TripService {
	return &TripService{trips: trips, favorites: favorites, log: log}
}

func (s *TripService) List(ctx context.Context, filter ports.TripFilter) ([]domain.Trip, error) {
	return s.trips.List(ctx, filter)
}

func (s *TripService) Get(ctx context.Context, id string) (*domain.Trip, error) {
	return s.trips.FindByID(ctx, id)
}

func (s *TripService) ListByOrganizer(ctx context.Context, organizerID string) ([]domain.Trip, error) {
	return s.trips.ListByOrganizer(ctx, organizerID)
}

// Create publishes a new trip for the organizer. Titles must be present in at
// least one language and the price must be positive.
func (s *TripService) Create(ctx context.Context, in ports.CreateTripInput) (*domain.Trip, error) {
	if in.OrganizerID == "" || (in.Title.Ar == "" && in.Title.En == "") {
		return nil, domain.ErrInvalidInput
	}
	if in.PriceJOD <= 0 || in.MaxGuests <= 0 {
		return nil, domain.ErrInvalidInput
	}

	trip := &domain.Trip{
		ID:          uuid.NewString(),
		OrganizerID: in.OrganizerID,
		Title:       in.Title,
		Description: in.Description,
		Location:    in.Location,
		Duration:    in.Duration,
		Category:    in.Category,
		PriceJOD:    in.PriceJOD,
		MaxGuests:   in.MaxGuests,
		Image:       in.Image,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.trips.Create(ctx, trip); err != nil {
		return nil, err
	}
	s.log.Info().Str("trip_id", trip.ID).Str("organizer_id", in.OrganizerID).Msg("trip published")
	return trip, nil
}

// Update replaces a trip's editable fields. Only the owning organizer may
// edit, and the same validation as Create applies. Rating, review count and
// creation time are preserved.
func (s *TripService) Update(ctx context.Context, organizerID, tripID string, in ports.UpdateTripInput) (*domain.Trip, error) {
	trip, err := s.trips.FindByID(ctx, tripID)
	if err != nil {
		return nil, err
	}
	if trip.OrganizerID != organizerID {
		return nil, domain.ErrForbidden
	}
	if in.Title.Ar == "" && in.Title.En == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.PriceJOD <= 0 || in.MaxGuests <= 0 {
		return nil, domain.ErrInvalidInput
	}

	trip.Title = in.Title
	trip.Description = in.Description
	trip.Location = in.Location
	trip.Duration = in.Duration
	trip.Category = in.Category
	trip.PriceJOD = in.PriceJOD
	trip.MaxGuests = in.MaxGuests
	trip.Image = in.Image

	if err := s.trips.Update(ctx, trip); err != nil {
		return nil, err
	}
	s.log.Info().Str("trip_id", tripID).Str("organizer_id", organizerID).Msg("trip updated")
	return trip, nil
}

// Delete removes a trip from the catalog. Only the owning organizer may
// delete. Existing bookings and reviews keep their trip id; favorites
// pointing at the removed trip are skipped on listing.
func (s *TripService) Delete(ctx context.Context, organizerID, tripID string) error {
	trip, err := s.trips.FindByID(ctx, tripID)
	if err != nil {
		return err
	}
	if trip.OrganizerID != organizerID {
		return domain.ErrForbidden
	}

	if err := s.trips.Delete(ctx, tripID); err != nil {
		return err
	}
	s.log.Info().Str("trip_id", tripID).Str("organizer_id", organizerID).Msg("trip removed")
	return nil
}

// ToggleFavorite flips the saved state of a trip and reports the new state.
func (s *TripService) ToggleFavorite(ctx context.Context, touristID, tripID string) (bool, error) {
	if _, err := s.trips.FindByID(ctx, tripID); err != nil {
		return false, err
	}

	saved, err := s.favorites.Has(ctx, touristID, tripID)
	if err != nil {
		return false, err
	}
	if saved {
		return false, s.favorites.Remove(ctx, touristID, tripID)
	}
	return true, s.favorites.Add(ctx, touristID, tripID)
}

func (s *TripService) ListFavorites(ctx context.Context, touristID string) ([]domain.Trip, error) {
	ids, err := s.favorites.ListTripIDs(ctx, touristID)
	if err != nil {
		return nil, err
	}

	trips := make([]domain.Trip, 0, len(ids))
	for _, id := range ids {
		trip, err := s.trips.FindByID(ctx, id)
		if err != nil {
			// A favorite can outlive its trip; skip rather than fail the list.
			continue
		}
		trips = append(trips, *trip)
	}
	return trips, nil
}
