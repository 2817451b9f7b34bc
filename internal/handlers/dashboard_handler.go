package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/playtube/playtube-backend/internal/middleware"
	"github.com/playtube/playtube-backend/internal/services"
)

type DashboardHandler struct {
	dashboardService *services.DashboardService
}

func NewDashboardHandler(dashboardService *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Stats returns the aggregate figures for the authenticated user's channel.
func (h *DashboardHandler) Stats(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return fail(c, err)
	}

	stats, err := h.dashboardService.ChannelStats(userID)
	if err != nil {
		return fail(c, err)
	}

	return ok(c, fiber.StatusOK, stats, "Channel stats fetched successfully")
}

// Videos lists every video the authenticated user has uploaded, published or not.
func (h *DashboardHandler) Videos(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return fail(c, err)
	}

	page, err := h.dashboardService.ChannelVideos(userID, c.QueryInt("page", 1), c.QueryInt("limit", 10))
	if err != nil {
		return fail(c, err)
	}

	return ok(c, fiber.StatusOK, page, "Channel videos fetched successfully")
}
