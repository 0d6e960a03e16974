package handlers

import (
	"tokoadmin/internal/services"

	"github.com/gofiber/fiber/v2"
)

// CategoryHandler handles HTTP requests for categories.
type CategoryHandler struct {
	service *services.CategoryService
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(service *services.CategoryService) *CategoryHandler {
	return &CategoryHandler{service: service}
}

// RegisterRoutes registers the category routes under /:storeId/categories.
func (h *CategoryHandler) RegisterRoutes(router fiber.Router) {
	categoryRoutes := router.Group("/:storeId/categories")
	categoryRoutes.Get("/", handleList("CATEGORIES_GET", h.service.ListCategories))
	categoryRoutes.Post("/", handleCreate("CATEGORIES_POST", h.service.CreateCategory))
	categoryRoutes.Get("/:categoryId", handleGet("CATEGORY_GET", "categoryId", h.service.GetCategory))
	categoryRoutes.Patch("/:categoryId", handleUpdate("CATEGORY_PATCH", "categoryId", h.service.UpdateCategory))
	categoryRoutes.Delete("/:categoryId", handleDelete("CATEGORY_DELETE", "categoryId", h.service.DeleteCategory))
}
