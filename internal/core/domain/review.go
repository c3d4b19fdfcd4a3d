package domain

import (
	"errors"
	"time"
)

var ErrInvalidRating = errors.New("rating must be between 1 and 5")

// Review is a tourist's rating of a trip they took.
type Review struct {
	ID        string    `json:"id"`
	TripID    string    `json:"trip_id"`
	TouristID string    `json:"tourist_id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// ActivityType labels events fed into the organizer reporting pipeline.
type ActivityType string

const (
	ActivityBookingCreated   ActivityType = "booking_created"
	ActivityBookingCancelled ActivityType = "booking_cancelled"
	ActivityReviewSubmitted  ActivityType = "review_submitted"
)

// ActivityEvent is a single unit of organizer activity. Events for the same
// trip are processed in order.
type ActivityEvent struct {
	Type        ActivityType
	TripID      string
	OrganizerID string
	AmountJOD   float64
	Rating      int
	Timestamp   time.Time
}
