package handlers

import (
	"tokoadmin/internal/middleware"
	"tokoadmin/internal/services"

	"github.com/gofiber/fiber/v2"
)

// StoreHandler handles HTTP requests for the caller's stores. Routes must be
// mounted behind middleware.AuthRequired.
type StoreHandler struct {
	service *services.StoreService
}

// NewStoreHandler creates a new StoreHandler.
func NewStoreHandler(service *services.StoreService) *StoreHandler {
	return &StoreHandler{service: service}
}

// RegisterRoutes registers the store routes under /stores. Every store route
// needs a caller, so pass middleware.AuthRequired as a guard.
func (h *StoreHandler) RegisterRoutes(router fiber.Router, guards ...fiber.Handler) {
	storeRoutes := router.Group("/stores", guards...)
	storeRoutes.Get("/", h.HandleGetStores)
	storeRoutes.Post("/", h.HandleCreateStore)
	storeRoutes.Get("/:storeId", h.HandleGetStore)
	storeRoutes.Patch("/:storeId", h.HandleRenameStore)
	storeRoutes.Delete("/:storeId", h.HandleDeleteStore)
}

func (h *StoreHandler) HandleGetStores(c *fiber.Ctx) error {
	stores, err := h.service.ListStores(c.UserContext(), middleware.CallerID(c))
	if err != nil {
		return fail(c, "STORES_GET", err)
	}
	return c.JSON(stores)
}

func (h *StoreHandler) HandleGetStore(c *fiber.Ctx) error {
	store, err := h.service.GetStore(c.UserContext(), middleware.CallerID(c), c.Params("storeId"))
	if err != nil {
		return fail(c, "STORE_GET", err)
	}
	return c.JSON(store)
}

func (h *StoreHandler) HandleCreateStore(c *fiber.Ctx) error {
	var in services.StoreInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).SendString("Invalid request body")
	}
	store, err := h.service.CreateStore(c.UserContext(), middleware.CallerID(c), in)
	if err != nil {
		return fail(c, "STORES_POST", err)
	}
	return c.JSON(store)
}

func (h *StoreHandler) HandleRenameStore(c *fiber.Ctx) error {
	var in services.StoreInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).SendString("Invalid request body")
	}
	store, err := h.service.RenameStore(c.UserContext(), middleware.CallerID(c), c.Params("storeId"), in)
	if err != nil {
		return fail(c, "STORE_PATCH", err)
	}
	return c.JSON(store)
}

func (h *StoreHandler) HandleDeleteStore(c *fiber.Ctx) error {
	store, err := h.service.DeleteStore(c.UserContext(), middleware.CallerID(c), c.Params("storeId"))
	if err != nil {
		return fail(c, "STORE_DELETE", err)
	}
	return c.JSON(store)
}
