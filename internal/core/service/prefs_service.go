package service

import (
	"context"

	"github.com/mukhtar-travel/trip-platform/internal/core/domain"
	"github.com/mukhtar-travel/trip-platform/internal/core/ports"
)

// Storage keys for the device-local display preferences.
const (
	ThemeKey    = "theme"
	LanguageKey = "language"
)

// PrefsService reads and writes theme and language preferences through the
// durable store. Unset or unrecognised values resolve to light theme and
// Arabic, matching the platform defaults.
type PrefsService struct {
	store ports.KVStore
}

func NewPrefsService(store ports.KVStore) *PrefsService {
	return &PrefsService{store: store}
}

func (p *PrefsService) Theme(ctx context.Context) (domain.Theme, error) {
	raw, ok, err := p.store.Get(ctx, ThemeKey)
	if err != nil {
		return "", err
	}
	t := domain.Theme(raw)
	if !ok || !t.Valid() {
		return domain.ThemeLight, nil
	}
	return t, nil
}

func (p *PrefsService) SetTheme(ctx context.Context, t domain.Theme) error {
	if !t.Valid() {
		return domain.ErrInvalidPreference
	}
	return p.store.Set(ctx, ThemeKey, string(t))
}

func (p *PrefsService) Language(ctx context.Context) (domain.Language, error) {
	raw, ok, err := p.store.Get(ctx, LanguageKey)
	if err != nil {
		return "", err
	}
	l := domain.Language(raw)
	if !ok || !l.Valid() {
		return domain.LanguageArabic, nil
	}
	return l, nil
}

func (p *PrefsService) SetLanguage(ctx context.Context, l domain.Language) error {
	if !l.Valid() {
		return domain.ErrInvalidPreference
	}
	return p.store.Set(ctx, LanguageKey, string(l))
}
