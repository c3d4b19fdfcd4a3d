package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mukhtar-travel/trip-platform/internal/core/domain"
	"github.com/mukhtar-travel/trip-platform/internal/core/ports"
)

// ReviewService records tourist ratings and exposes them per trip and per
// organizer. Submitted reviews feed the reporting pipeline.
type ReviewService struct {
	reviews  ports.ReviewRepository
	trips    ports.TripRepository
	activity ports.ActivityPublisher
	log      zerolog.Logger
}

func NewReviewService(reviews ports.ReviewRepository, trips ports.TripRepository, activity ports.ActivityPublisher, log zerolog.Logger) *ReviewService {
	return &ReviewService{reviews: reviews, trips: trips, activity: activity, log: log}
}

func (s *ReviewService) RateTrip(ctx context.Context, in ports.RateTripInput) (*domain.Review, error) {
	if in.Rating < 1 || in.Rating > 5 {
		return nil, domain.ErrInvalidRating
	}
	trip, err := s.trips.FindByID(ctx, in.TripID)
	if err != nil {
		return nil, err
	}

	review := &domain.Review{
		ID:        uuid.NewString(),
		TripID:    in.TripID,
		TouristID: in.TouristID,
		Rating:    in.Rating,
		Comment:   in.Comment,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.reviews.Create(ctx, review); err != nil {
		return nil, err
	}

	// Fold the new rating into the trip's running average.
	total := trip.Rating*float64(trip.ReviewCount) + float64(in.Rating)
	trip.ReviewCount++
	trip.Rating = total / float64(trip.ReviewCount)
	if err := s.trips.Update(ctx, trip); err != nil {
		s.log.Warn().Err(err).Str("trip_id", trip.ID).Msg("failed to refresh trip rating")
	}

	s.activity.Publish(domain.ActivityEvent{
		Type:        domain.ActivityReviewSubmitted,
		TripID:      trip.ID,
		OrganizerID: trip.OrganizerID,
		Rating:      in.Rating,
		Timestamp:   review.CreatedAt,
	})

	s.log.Info().Str("trip_id", trip.ID).Int("rating", in.Rating).Msg("review submitted")
	return review, nil
}

func (s *ReviewService) ListByTrip(ctx context.Context, tripID string) ([]domain.Review, error) {
	return s.reviews.ListByTrip(ctx, tripID)
}

func (s *ReviewService) ListForOrganizer(ctx context.Context, organizerID string) ([]domain.Review, error) {
	trips, err := s.trips.ListByOrganizer(ctx, organizerID)
	if err != nil {
		return nil, err
	}

	var all []domain.Review
	for _, trip := range trips {
		reviews, err := s.reviews.ListByTrip(ctx, trip.ID)
		if err != nil {
			return nil, err
		}
		all = append(all, reviews...)
	}
	return all, nil
}
