package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/mukhtar-travel/trip-platform/internal/core/domain"
	"github.com/mukhtar-travel/trip-platform/internal/core/ports"
)

func TestReportService_Aggregates(t *testing.T) {
	svc := NewReportService(zerolog.Nop())
	now := time.Now()

	events := []domain.ActivityEvent{
		{Type: domain.ActivityBookingCreated, TripID: "t1", OrganizerID: "org-1", AmountJOD: 170, Timestamp: now},
		{Type: domain.ActivityBookingCreated, TripID: "t2", OrganizerID: "org-1", AmountJOD: 65, Timestamp: now},
		{Type: domain.ActivityBookingCancelled, TripID: "t2", OrganizerID: "org-1", AmountJOD: 65, Timestamp: now},
		{Type: domain.ActivityReviewSubmitted, TripID: "t1", OrganizerID: "org-1", Rating: 5, Timestamp: now},
		{Type: domain.ActivityReviewSubmitted, TripID: "t1", OrganizerID: "org-1", Rating: 4, Timestamp: now},
		{Type: domain.ActivityBookingCreated, TripID: "t9", OrganizerID: "org-2", AmountJOD: 120, Timestamp: now},
	}
	for _, ev := range events {
		if err := svc.Process(context.Background(), ev); err != nil {
			t.Fatalf("process: %v", err)
		}
	}

	report, err := svc.Report(context.Background(), "org-1")
	if err != nil {
		t.Fatalf("report: %v", err)
	}
	if report.Bookings != 2 || report.Cancellations != 1 {
		t.Fatalf("unexpected booking counts: %+v", report)
	}
	if report.RevenueJOD != 170 {
		t.Fatalf("expected 170 JD net revenue, got %.2f", report.RevenueJOD)
	}
	if report.Reviews != 2 || report.AverageRating != 4.5 {
		t.Fatalf("unexpected review figures: %+v", report)
	}

	other, err := svc.Report(context.Background(), "org-2")
	if err != nil {
		t.Fatalf("report: %v", err)
	}
	if other.Bookings != 1 || other.RevenueJOD != 120 {
		t.Fatalf("organizer isolation broken: %+v", other)
	}
}

func TestReportService_UnknownOrganizerIsZero(t *testing.T) {
	svc := NewReportService(zerolog.Nop())

	report, err := svc.Report(context.Background(), "ghost")
	if err != nil {
		t.Fatalf("report: %v", err)
	}
	if report != (ports.OrganizerReport{OrganizerID: "ghost"}) {
		t.Fatalf("expected zero report, got %+v", report)
	}
}
