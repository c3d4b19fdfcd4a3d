package ports

import (
	"context"

	"github.com/mukhtar-travel/trip-platform/internal/core/domain"
)

// PrefsService reads and writes the device-local display preferences.
// Absent or unrecognised stored values resolve to the defaults.
type PrefsService interface {
	Theme(ctx context.Context) (domain.Theme, error)
	SetTheme(ctx context.Context, t domain.Theme) error
	Language(ctx context.Context) (domain.Language, error)
	SetLanguage(ctx context.Context, l domain.Language) error
}
