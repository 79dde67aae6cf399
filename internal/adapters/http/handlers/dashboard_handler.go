package handlers

import (
	"tabaro3-api/internal/core/services"
	"tabaro3-api/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// DashboardHandler serves the member dashboard view
type DashboardHandler struct {
	userService    *services.UserService
	requestService *services.RequestService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(userService *services.UserService, requestService *services.RequestService) *DashboardHandler {
	return &DashboardHandler{
		userService:    userService,
		requestService: requestService,
	}
}

// GetDashboard handles the dashboard endpoint: the user's profile plus
// their own blood requests, newest first
// @Summary Get dashboard
// @Description Get the authenticated user's profile and own blood requests
// @Tags Dashboard
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /dashboard [get]
func (h *DashboardHandler) GetDashboard(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	user, err := h.userService.GetProfile(c.Context(), userID)
	if err != nil {
		return response.InternalServerError(c, "Failed to load dashboard")
	}

	requests, err := h.requestService.ListByRequester(c.Context(), userID)
	if err != nil {
		return response.InternalServerError(c, "Failed to load dashboard")
	}

	return response.Success(c, "Dashboard retrieved successfully", fiber.Map{
		"user":     user,
		"requests": requests,
	})
}
