package service

import (
	"context"
	"errors"
	"testing"

	"github.com/mukhtar-travel/trip-platform/internal/core/domain"
)

func TestPrefsService_Defaults(t *testing.T) {
	svc := NewPrefsService(newMemStore())

	theme, err := svc.Theme(context.Background())
	if err != nil {
		t.Fatalf("theme: %v", err)
	}
	if theme != domain.ThemeLight {
		t.Fatalf("expected light default, got %s", theme)
	}

	lang, err := svc.Language(context.Background())
	if err != nil {
		t.Fatalf("language: %v", err)
	}
	if lang != domain.LanguageArabic {
		t.Fatalf("expected arabic default, got %s", lang)
	}
}

func TestPrefsService_RoundTrip(t *testing.T) {
	store := newMemStore()
	svc := NewPrefsService(store)

	if err := svc.SetTheme(context.Background(), domain.ThemeDark); err != nil {
		t.Fatalf("set theme: %v", err)
	}
	if err := svc.SetLanguage(context.Background(), domain.LanguageEnglish); err != nil {
		t.Fatalf("set language: %v", err)
	}

	if theme, _ := svc.Theme(context.Background()); theme != domain.ThemeDark {
		t.Fatalf("theme not persisted: %s", theme)
	}
	if lang, _ := svc.Language(context.Background()); lang != domain.LanguageEnglish {
		t.Fatalf("language not persisted: %s", lang)
	}
	if store.raw(ThemeKey) != "dark" || store.raw(LanguageKey) != "en" {
		t.Fatalf("unexpected stored values: %q %q", store.raw(ThemeKey), store.raw(LanguageKey))
	}
}

func TestPrefsService_RejectsUnknownValues(t *testing.T) {
	svc := NewPrefsService(newMemStore())

	if err := svc.SetTheme(context.Background(), domain.Theme("sepia")); !errors.Is(err, domain.ErrInvalidPreference) {
		t.Fatalf("expected ErrInvalidPreference, got %v", err)
	}
	if err := svc.SetLanguage(context.Background(), domain.Language("fr")); !errors.Is(err, domain.ErrInvalidPreference) {
		t.Fatalf("expected ErrInvalidPreference, got %v", err)
	}
}

func TestPrefsService_UnrecognisedStoredValueFallsBack(t *testing.T) {
	store := newMemStore()
	store.data[ThemeKey] = "solarized"
	svc := NewPrefsService(store)

	theme, err := svc.Theme(context.Background())
	if err != nil {
		t.Fatalf("theme: %v", err)
	}
	if theme != domain.ThemeLight {
		t.Fatalf("expected fallback to light, got %s", theme)
	}
}
