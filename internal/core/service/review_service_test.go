package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/mukhtar-travel/trip-platform/internal/core/domain"
	"github.com/mukhtar-travel/trip-platform/internal/core/ports"
	"github.com/mukhtar-travel/trip-platform/internal/infrastructure/memory"
)

func newReviewFixture() (*ReviewService, *memory.TripRepository, *stubPublisher) {
	trips := memory.NewTripRepository()
	pub := &stubPublisher{}
	svc := NewReviewService(memory.NewReviewRepository(), trips, pub, zerolog.Nop())
	return svc, trips, pub
}

func TestReviewService_RateTrip(t *testing.T) {
	svc, trips, pub := newReviewFixture()

	before, err := trips.FindByID(context.Background(), "trip-jerash")
	if err != nil {
		t.Fatalf("find trip: %v", err)
	}

	review, err := svc.RateTrip(context.Background(), ports.RateTripInput{
		TripID:    "trip-jerash",
		TouristID: "tourist-1",
		Rating:    5,
		Comment:   "الدليل كان رائعاً",
	})
	if err != nil {
		t.Fatalf("rate trip: %v", err)
	}
	if review.ID == "" {
		t.Fatalf("expected generated review id")
	}

	after, err := trips.FindByID(context.Background(), "trip-jerash")
	if err != nil {
		t.Fatalf("find trip: %v", err)
	}
	if after.ReviewCount != before.ReviewCount+1 {
		t.Fatalf("review count not bumped: %d vs %d", after.ReviewCount, before.ReviewCount)
	}
	if after.Rating <= before.Rating {
		t.Fatalf("a 5-star review should raise a %.2f average, got %.2f", before.Rating, after.Rating)
	}

	events := pub.all()
	if len(events) != 1 || events[0].Type != domain.ActivityReviewSubmitted || events[0].Rating != 5 {
		t.Fatalf("expected review_submitted event, got %+v", events)
	}
}

func TestReviewService_RateTrip_InvalidRating(t *testing.T) {
	svc, _, _ := newReviewFixture()

	for _, rating := range []int{0, 6, -1} {
		_, err := svc.RateTrip(context.Background(), ports.RateTripInput{
			TripID: "trip-petra", TouristID: "tourist-1", Rating: rating,
		})
		if !errors.Is(err, domain.ErrInvalidRating) {
			t.Fatalf("rating=%d: expected ErrInvalidRating, got %v", rating, err)
		}
	}
}

func TestReviewService_ListForOrganizer(t *testing.T) {
	svc, _, _ := newReviewFixture()

	for _, tripID := range []string{"trip-petra", "trip-wadi-rum"} {
		if _, err := svc.RateTrip(context.Background(), ports.RateTripInput{
			TripID: tripID, TouristID: "tourist-1", Rating: 4,
		}); err != nil {
			t.Fatalf("rate %s: %v", tripID, err)
		}
	}

	reviews, err := svc.ListForOrganizer(context.Background(), memory.SeedOrganizerID)
	if err != nil {
		t.Fatalf("list for organizer: %v", err)
	}
	if len(reviews) != 2 {
		t.Fatalf("expected 2 reviews across the organizer's trips, got %d", len(reviews))
	}
}
