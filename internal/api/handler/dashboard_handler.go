package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/angelb-studio/studio-api/internal/core/ports"
)

// DashboardHandler serves the admin dashboard aggregates.
type DashboardHandler struct {
	service ports.DashboardService
}

func NewDashboardHandler(service ports.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// Stats handles GET /v1/admin/stats.
//
// @Summary      Dashboard totals (admin)
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.DashboardStats
// @Failure      403  {object}  map[string]string
// @Router       /v1/admin/stats [get]
func (h *DashboardHandler) Stats(c echo.Context) error {
	stats, err := h.service.Stats(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}

// AllContent handles GET /v1/admin/content.
//
// @Summary      Every artwork and post in the system (admin)
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.AllContent
// @Failure      403  {object}  map[string]string
// @Router       /v1/admin/content [get]
func (h *DashboardHandler) AllContent(c echo.Context) error {
	content, err := h.service.AllContent(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, content)
}
