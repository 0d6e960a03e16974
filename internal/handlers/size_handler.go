package handlers

import (
	"tokoadmin/internal/services"

	"github.com/gofiber/fiber/v2"
)

// SizeHandler handles HTTP requests for sizes.
type SizeHandler struct {
	service *services.SizeService
}

// NewSizeHandler creates a new SizeHandler.
func NewSizeHandler(service *services.SizeService) *SizeHandler {
	return &SizeHandler{service: service}
}

// RegisterRoutes registers the size routes under /:storeId/sizes.
func (h *SizeHandler) RegisterRoutes(router fiber.Router) {
	sizeRoutes := router.Group("/:storeId/sizes")
	sizeRoutes.Get("/", handleList("SIZES_GET", h.service.ListSizes))
	sizeRoutes.Post("/", handleCreate("SIZES_POST", h.service.CreateSize))
	sizeRoutes.Get("/:sizeId", handleGet("SIZE_GET", "sizeId", h.service.GetSize))
	sizeRoutes.Patch("/:sizeId", handleUpdate("SIZE_PATCH", "sizeId", h.service.UpdateSize))
	sizeRoutes.Delete("/:sizeId", handleDelete("SIZE_DELETE", "sizeId", h.service.DeleteSize))
}
