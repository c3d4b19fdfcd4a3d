package memory

import (
	"time"

	"github.com/mukhtar-travel/trip-platform/internal/core/domain"
)

// SeedOrganizerID owns the sample catalog. Sign in with an organizer account
// and this id to see the seeded trips on the dashboard.
const SeedOrganizerID = "1"

// seedTrips is the sample catalog: the classic Jordanian destinations the
// platform launched with, in both languages.
func seedTrips() []domain.Trip {
	created := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	return []domain.Trip{
		{
			ID:          "trip-petra",
			OrganizerID: SeedOrganizerID,
			Title:       domain.LocalizedText{Ar: "رحلة البتراء الساحرة", En: "Magical Petra Journey"},
			Description: domain.LocalizedText{Ar: "استكشف عجائب البتراء الوردية مع دليل محلي خبير", En: "Explore the wonders of Rose Red Petra with an expert local guide"},
			Location:    domain.LocalizedText{Ar: "البتراء", En: "Petra"},
			Duration:    domain.LocalizedText{Ar: "يوم كامل", En: "Full Day"},
			Category:    domain.CategoryCultural,
			PriceJOD:    85,
			Rating:      4.9,
			ReviewCount: 124,
			MaxGuests:   15,
			CreatedAt:   created,
		},
		{
			ID:          "trip-wadi-rum",
			OrganizerID: SeedOrganizerID,
			Title:       domain.LocalizedText{Ar: "مغامرة وادي رم الصحراوية", En: "Wadi Rum Desert Adventure"},
			Description: domain.LocalizedText{Ar: "ليلة تحت النجوم في قلب الصحراء مع جولات بالجيب", En: "A night under the stars in the heart of the desert with jeep tours"},
			Location:    domain.LocalizedText{Ar: "وادي رم", En: "Wadi Rum"},
			Duration:    domain.LocalizedText{Ar: "يومين", En: "2 Days"},
			Category:    domain.CategoryAdventure,
			PriceJOD:    120,
			Rating:      4.8,
			ReviewCount: 98,
			MaxGuests:   10,
			CreatedAt:   created,
		},
		{
			ID:          "trip-dead-sea",
			OrganizerID: SeedOrganizerID,
			Title:       domain.LocalizedText{Ar: "تجربة البحر الميت المميزة", En: "Premium Dead Sea Experience"},
			Description: domain.LocalizedText{Ar: "استرخ واستمتع بالعلاج الطبيعي في البحر الميت", En: "Relax and enjoy natural therapy at the Dead Sea"},
			Location:    domain.LocalizedText{Ar: "البحر الميت", En: "Dead Sea"},
			Duration:    domain.LocalizedText{Ar: "نصف يوم", En: "Half Day"},
			Category:    domain.CategoryRelaxation,
			PriceJOD:    65,
			Rating:      4.7,
			ReviewCount: 156,
			MaxGuests:   20,
			CreatedAt:   created,
		},
		{
			ID:          "trip-jerash",
			OrganizerID: SeedOrganizerID,
			Title:       domain.LocalizedText{Ar: "جولة جرش الرومانية", En: "Roman Jerash Tour"},
			Description: domain.LocalizedText{Ar: "تجول بين أعمدة المدينة الرومانية الأفضل حفظاً خارج إيطاليا", En: "Walk the colonnades of the best-preserved Roman city outside Italy"},
			Location:    domain.LocalizedText{Ar: "جرش", En: "Jerash"},
			Duration:    domain.LocalizedText{Ar: "نصف يوم", En: "Half Day"},
			Category:    domain.CategoryCultural,
			PriceJOD:    45,
			Rating:      4.6,
			ReviewCount: 84,
			MaxGuests:   25,
			CreatedAt:   created,
		},
		{
			ID:          "trip-aqaba",
			OrganizerID: SeedOrganizerID,
			Title:       domain.LocalizedText{Ar: "غوص في شعاب العقبة", En: "Aqaba Reef Diving"},
			Description: domain.LocalizedText{Ar: "اكتشف الشعاب المرجانية في البحر الأحمر مع مدربين معتمدين", En: "Discover Red Sea coral reefs with certified instructors"},
			Location:    domain.LocalizedText{Ar: "العقبة", En: "Aqaba"},
			Duration:    domain.LocalizedText{Ar: "يوم كامل", En: "Full Day"},
			Category:    domain.CategoryNature,
			PriceJOD:    95,
			Rating:      4.8,
			ReviewCount: 61,
			MaxGuests:   8,
			CreatedAt:   created,
		},
	}
}
