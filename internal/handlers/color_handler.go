package handlers

import (
	"tokoadmin/internal/services"

	"github.com/gofiber/fiber/v2"
)

// ColorHandler handles HTTP requests for colors.
type ColorHandler struct {
	service *services.ColorService
}

// NewColorHandler creates a new ColorHandler.
func NewColorHandler(service *services.ColorService) *ColorHandler {
	return &ColorHandler{service: service}
}

// RegisterRoutes registers the color routes under /:storeId/colors.
func (h *ColorHandler) RegisterRoutes(router fiber.Router) {
	colorRoutes := router.Group("/:storeId/colors")
	colorRoutes.Get("/", handleList("COLORS_GET", h.service.ListColors))
	colorRoutes.Post("/", handleCreate("COLORS_POST", h.service.CreateColor))
	colorRoutes.Get("/:colorId", handleGet("COLOR_GET", "colorId", h.service.GetColor))
	colorRoutes.Patch("/:colorId", handleUpdate("COLOR_PATCH", "colorId", h.service.UpdateColor))
	colorRoutes.Delete("/:colorId", handleDelete("COLOR_DELETE", "colorId", h.service.DeleteColor))
}
