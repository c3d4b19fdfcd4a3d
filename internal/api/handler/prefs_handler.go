package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mukhtar-travel/trip-platform/internal/core/domain"
	"github.com/mukhtar-travel/trip-platform/internal/core/ports"
)

type PrefsHandler struct {
	prefs ports.PrefsService
}

func NewPrefsHandler(prefs ports.PrefsService) *PrefsHandler {
	return &PrefsHandler{prefs: prefs}
}

type themeRequest struct {
	Theme string `json:"theme" validate:"required,oneof=light dark"`
}

type languageRequest struct {
	Language string `json:"language" validate:"required,oneof=ar en"`
}

// GetTheme returns the stored display theme.
//
// @Summary      Get theme
// @Tags         settings
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /settings/theme [get]
func (h *PrefsHandler) GetTheme(c echo.Context) error {
	theme, err := h.prefs.Theme(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"theme": string(theme)})
}

// SetTheme stores the display theme.
//
// @Summary      Set theme
// @Tags         settings
// @Accept       json
// @Produce      json
// @Param        body  body      themeRequest  true  "Theme"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  map[string]string
// @Router       /settings/theme [put]
func (h *PrefsHandler) SetTheme(c echo.Context) error {
	var req themeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	if err := h.prefs.SetTheme(c.Request().Context(), domain.Theme(req.Theme)); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"theme": req.Theme})
}

// GetLanguage returns the stored interface language.
//
// @Summary      Get language
// @Tags         settings
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /settings/language [get]
func (h *PrefsHandler) GetLanguage(c echo.Context) error {
	lang, err := h.prefs.Language(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"language": string(lang)})
}

// SetLanguage stores the interface language.
//
// @Summary      Set language
// @Tags         settings
// @Accept       json
// @Produce      json
// @Param        body  body      languageRequest  true  "Language"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  map[string]string
// @Router       /settings/language [put]
func (h *PrefsHandler) SetLanguage(c echo.Context) error {
	var req languageRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	if err := h.prefs.SetLanguage(c.Request().Context(), domain.Language(req.Language)); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"language": req.Language})
}
