package ports

import (
	"context"

	"github.com/mukhtar-travel/trip-platform/internal/core/domain"
)

// ActivityProcessor consumes organizer activity events from the dispatcher.
type ActivityProcessor interface {
	Process(ctx context.Context, ev domain.ActivityEvent) error
}

// ActivityPublisher hands events to the reporting pipeline without blocking
// the request path.
type ActivityPublisher interface {
	Publish(ev domain.ActivityEvent)
}

// OrganizerReport aggregates one organizer's activity.
type OrganizerReport struct {
	OrganizerID   string  `json:"organizer_id"`
	Bookings      int     `json:"bookings"`
	Cancellations int     `json:"cancellations"`
	RevenueJOD    float64 `json:"revenue_jod"`
	Reviews       int     `json:"reviews"`
	AverageRating float64 `json:"average_rating"`
}

type ReportService interface {
	Report(ctx context.Context, organizerID string) (OrganizerReport, error)
}
