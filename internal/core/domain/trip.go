package domain

import (
	"errors"
	"time"
)

var ErrTripNotFound = errors.New("trip not found")

// TripCategory groups trips for browsing and filtering.
type TripCategory string

const (
	CategoryAdventure  TripCategory = "adventure"
	CategoryCultural   TripCategory = "cultural"
	CategoryRelaxation TripCategory = "relaxation"
	CategoryNature     TripCategory = "nature"
)

// LocalizedText holds the Arabic and English variants of a display string.
type LocalizedText struct {
	Ar string `json:"ar"`
	En string `json:"en"`
}

// In returns the variant for the given language, falling back to Arabic.
func (t LocalizedText) In(lang Language) string {
	if lang == LanguageEnglish && t.En != "" {
		return t.En
	}
	return t.Ar
}

// Trip is a bookable offering published by an organizer.
type Trip struct {
	ID          string        `json:"id"`
	OrganizerID string        `json:"organizer_id"`
	Title       LocalizedText `json:"title"`
	Description LocalizedText `json:"description"`
	Location    LocalizedText `json:"location"`
	Duration    LocalizedText `json:"duration"`
	Category    TripCategory  `json:"category"`
	PriceJOD    float64       `json:"price_jod"`
	Rating      float64       `json:"rating"`
	ReviewCount int           `json:"review_count"`
	MaxGuests   int           `json:"max_guests"`
	Image       string        `json:"image,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
}
