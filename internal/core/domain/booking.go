package domain

import (
	"errors"
	"time"
)

// BookingStatus represents the lifecycle state of a booking.
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
)

// validBookingTransitions defines the allowed state machine transitions.
var validBookingTransitions = map[BookingStatus][]BookingStatus{
	BookingPending:   {BookingConfirmed, BookingCancelled},
	BookingConfirmed: {BookingCompleted, BookingCancelled},
}

var (
	ErrBookingNotFound   = errors.New("booking not found")
	ErrInvalidTransition = errors.New("invalid booking transition")
)

// CanTransitionTo reports whether a transition from the current status to next is valid.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	for _, allowed := range validBookingTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Booking records a tourist's reservation on a trip.
type Booking struct {
	ID          string        `json:"id"`
	TripID      string        `json:"trip_id"`
	TouristID   string        `json:"tourist_id"`
	OrganizerID string        `json:"organizer_id"`
	Guests      int           `json:"guests"`
	TotalJOD    float64       `json:"total_jod"`
	Status      BookingStatus `json:"status"`
	TripDate    time.Time     `json:"trip_date"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}
