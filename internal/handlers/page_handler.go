package handlers

import (
	"errors"

	"tokoadmin/internal/middleware"
	"tokoadmin/internal/models"
	"tokoadmin/internal/pages"

	"github.com/gofiber/fiber/v2"
)

// PageHandler serves the dashboard page compositions.
type PageHandler struct {
	loader *pages.Loader
}

// NewPageHandler creates a new PageHandler.
func NewPageHandler(loader *pages.Loader) *PageHandler {
	return &PageHandler{loader: loader}
}

// RegisterRoutes registers the page routes under /:storeId. Mount it behind
// AuthRequired.
func (h *PageHandler) RegisterRoutes(router fiber.Router) {
	pageRoutes := router.Group("/:storeId")
	pageRoutes.Get("/:kind", h.HandleListPage)
	pageRoutes.Get("/:kind/:id", h.HandleDetailPage)
}

func (h *PageHandler) HandleListPage(c *fiber.Ctx) error {
	kind, err := models.ParseKind(c.Params("kind"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).SendString("Page not found")
	}
	page, err := h.loader.List(c.UserContext(), middleware.CallerID(c), c.Params("storeId"), kind)
	if err != nil {
		return h.pageFail(c, "PAGE_LIST", err)
	}
	return c.JSON(page)
}

func (h *PageHandler) HandleDetailPage(c *fiber.Ctx) error {
	kind, err := models.ParseKind(c.Params("kind"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).SendString("Page not found")
	}
	page, err := h.loader.Detail(c.UserContext(), middleware.CallerID(c), c.Params("storeId"), kind, c.Params("id"))
	if err != nil {
		return h.pageFail(c, "PAGE_DETAIL", err)
	}
	return c.JSON(page)
}

func (h *PageHandler) pageFail(c *fiber.Ctx, op string, err error) error {
	if errors.Is(err, pages.ErrStoreNotFound) {
		return c.Status(fiber.StatusNotFound).SendString("Store not found")
	}
	return fail(c, op, err)
}
