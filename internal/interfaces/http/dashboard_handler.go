package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/scges/scges-api/internal/application/dashboard"
)

// DashboardHandler maneja as requisições HTTP do painel.
type DashboardHandler struct {
	uc *dashboard.UseCase
}

// NewDashboardHandler constrói o handler.
func NewDashboardHandler(uc *dashboard.UseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetStats GET /api/dashboard/stats
func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	out, err := h.uc.GetStats()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetRecentMovements GET /api/dashboard/recent-movements?limit=
func (h *DashboardHandler) GetRecentMovements(c *fiber.Ctx) error {
	out, err := h.uc.GetRecentMovements(c.QueryInt("limit", 0))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetLowStock GET /api/dashboard/low-stock?limit=
func (h *DashboardHandler) GetLowStock(c *fiber.Ctx) error {
	out, err := h.uc.GetLowStock(c.QueryInt("limit", 0))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
