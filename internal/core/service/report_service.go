package service

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/mukhtar-travel/trip-platform/internal/core/domain"
	"github.com/mukhtar-travel/trip-platform/internal/core/ports"
)

type organizerStats struct {
	bookings      int
	cancellations int
	revenueJOD    float64
	reviews       int
	ratingSum     int
}

// ReportService aggregates organizer activity fed in by the dispatcher and
// answers the dashboard reports view.
type ReportService struct {
	mu    sync.RWMutex
	stats map[string]*organizerStats
	log   zerolog.Logger
}

func NewReportService(log zerolog.Logger) *ReportService {
	return &ReportService{stats: make(map[string]*organizerStats), log: log}
}

// Process consumes one activity event. Implements ports.ActivityProcessor.
func (s *ReportService) Process(_ context.Context, ev domain.ActivityEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.stats[ev.OrganizerID]
	if st == nil {
		st = &organizerStats{}
		s.stats[ev.OrganizerID] = st
	}

	switch ev.Type {
	case domain.ActivityBookingCreated:
		st.bookings++
		st.revenueJOD += ev.AmountJOD
	case domain.ActivityBookingCancelled:
		st.cancellations++
		st.revenueJOD -= ev.AmountJOD
	case domain.ActivityReviewSubmitted:
		st.reviews++
		st.ratingSum += ev.Rating
	default:
		s.log.Warn().Str("type", string(ev.Type)).Msg("unknown activity event dropped")
	}
	return nil
}

// Report returns the aggregated figures for one organizer. An organizer with
// no recorded activity gets a zero report, not an error.
func (s *ReportService) Report(_ context.Context, organizerID string) (ports.OrganizerReport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	report := ports.OrganizerReport{OrganizerID: organizerID}
	st := s.stats[organizerID]
	if st == nil {
		return report, nil
	}

	report.Bookings = st.bookings
	report.Cancellations = st.cancellations
	report.RevenueJOD = st.revenueJOD
	report.Reviews = st.reviews
	if st.reviews > 0 {
		report.AverageRating = float64(st.ratingSum) / float64(st.reviews)
	}
	return report, nil
}
