package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mukhtar-travel/trip-platform/internal/core/ports"
)

type ReportHandler struct {
	reports ports.ReportService
}

func NewReportHandler(reports ports.ReportService) *ReportHandler {
	return &ReportHandler{reports: reports}
}

// Dashboard returns the activity report for the current organizer.
//
// @Summary      Organizer dashboard
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.OrganizerReport
// @Router       /dashboard [get]
func (h *ReportHandler) Dashboard(c echo.Context) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return err
	}

	report, err := h.reports.Report(c.Request().Context(), identity.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, report)
}
