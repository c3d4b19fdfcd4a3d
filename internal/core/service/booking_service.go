package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mukhtar-travel/trip-platform/internal/core/domain"
	"github.com/mukhtar-travel/trip-platform/internal/core/ports"
)

// BookingService handles reservations end to end: creation by tourists,
// confirmation and completion by organizers, and cancellation with ownership
// checks. Every state change feeds the reporting pipeline.
type BookingService struct {
	bookings ports.BookingRepository
	trips    ports.TripRepository
	activity ports.ActivityPublisher
	log      zerolog.Logger
}

func NewBookingService(bookings ports.BookingRepository, trips ports.TripRepository, activity ports.ActivityPublisher, log zerolog.Logger) *BookingService {
	return &BookingService{bookings: bookings, trips: trips, activity: activity, log: log}
}

func (s *BookingService) Create(ctx context.Context, in ports.CreateBookingInput) (*domain.Booking, error) {
	trip, err := s.trips.FindByID(ctx, in.TripID)
	if err != nil {
		return nil, err
	}
	if in.Guests < 1 || in.Guests > trip.MaxGuests {
		return nil, fmt.Errorf("%w: guests must be between 1 and %d", domain.ErrInvalidInput, trip.MaxGuests)
	}

	now := time.Now().UTC()
	booking := &domain.Booking{
		ID:          uuid.NewString(),
		TripID:      trip.ID,
		TouristID:   in.TouristID,
		OrganizerID: trip.OrganizerID,
		Guests:      in.Guests,
		TotalJOD:    trip.PriceJOD * float64(in.Guests),
		Status:      domain.BookingPending,
		TripDate:    in.TripDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.bookings.Create(ctx, booking); err != nil {
		return nil, err
	}

	s.activity.Publish(domain.ActivityEvent{
		Type:        domain.ActivityBookingCreated,
		TripID:      trip.ID,
		OrganizerID: trip.OrganizerID,
		AmountJOD:   booking.TotalJOD,
		Timestamp:   now,
	})

	s.log.Info().
		Str("booking_id", booking.ID).
		Str("trip_id", trip.ID).
		Int("guests", in.Guests).
		Msg("booking created")

	return booking, nil
}

func (s *BookingService) ListForTourist(ctx context.Context, touristID string) ([]domain.Booking, error) {
	return s.bookings.ListByTourist(ctx, touristID)
}

func (s *BookingService) ListForOrganizer(ctx context.Context, organizerID string) ([]domain.Booking, error) {
	return s.bookings.ListByOrganizer(ctx, organizerID)
}

// Cancel moves a booking to cancelled on behalf of the owning tourist.
func (s *BookingService) Cancel(ctx context.Context, bookingID, touristID string) (*domain.Booking, error) {
	booking, err := s.bookings.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.TouristID != touristID {
		return nil, domain.ErrForbidden
	}

	cancelled, err := s.transition(ctx, booking, domain.BookingCancelled)
	if err != nil {
		return nil, err
	}

	s.activity.Publish(domain.ActivityEvent{
		Type:        domain.ActivityBookingCancelled,
		TripID:      booking.TripID,
		OrganizerID: booking.OrganizerID,
		AmountJOD:   booking.TotalJOD,
		Timestamp:   cancelled.UpdatedAt,
	})

	return cancelled, nil
}

// Confirm moves a pending booking to confirmed on behalf of the organizer.
func (s *BookingService) Confirm(ctx context.Context, bookingID, organizerID string) (*domain.Booking, error) {
	return s.organizerTransition(ctx, bookingID, organizerID, domain.BookingConfirmed)
}

// Complete marks a confirmed booking as completed after the trip took place.
func (s *BookingService) Complete(ctx context.Context, bookingID, organizerID string) (*domain.Booking, error) {
	return s.organizerTransition(ctx, bookingID, organizerID, domain.BookingCompleted)
}

func (s *BookingService) organizerTransition(ctx context.Context, bookingID, organizerID string, next domain.BookingStatus) (*domain.Booking, error) {
	booking, err := s.bookings.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.OrganizerID != organizerID {
		return nil, domain.ErrForbidden
	}
	return s.transition(ctx, booking, next)
}

func (s *BookingService) transition(ctx context.Context, booking *domain.Booking, next domain.BookingStatus) (*domain.Booking, error) {
	if !booking.Status.CanTransitionTo(next) {
		return nil, fmt.Errorf("%w (from %s to %s)", domain.ErrInvalidTransition, booking.Status, next)
	}

	now := time.Now().UTC()
	if err := s.bookings.UpdateStatus(ctx, booking.ID, next, now); err != nil {
		return nil, err
	}

	updated := *booking
	updated.Status = next
	updated.UpdatedAt = now

	s.log.Info().
		Str("booking_id", booking.ID).
		Str("from", string(booking.Status)).
		Str("to", string(next)).
		Msg("booking transitioned")

	return &updated, nil
}
