package handlers

import (
	"tokoadmin/internal/services"

	"github.com/gofiber/fiber/v2"
)

// ProductHandler handles HTTP requests for products.
type ProductHandler struct {
	service *services.ProductService
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService) *ProductHandler {
	return &ProductHandler{service: service}
}

// RegisterRoutes registers the product routes under /:storeId/products.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	productRoutes := router.Group("/:storeId/products")
	productRoutes.Get("/", h.HandleGetProducts)
	productRoutes.Post("/", handleCreate("PRODUCTS_POST", h.service.CreateProduct))
	productRoutes.Get("/:productId", handleGet("PRODUCT_GET", "productId", h.service.GetProduct))
	productRoutes.Patch("/:productId", handleUpdate("PRODUCT_PATCH", "productId", h.service.UpdateProduct))
	productRoutes.Delete("/:productId", handleDelete("PRODUCT_DELETE", "productId", h.service.DeleteProduct))
}

// HandleGetProducts lists the store's non-archived products. The query
// parameters categoryId, colorId, sizeId and isFeatured narrow the result.
func (h *ProductHandler) HandleGetProducts(c *fiber.Ctx) error {
	filter := services.ProductFilter{
		CategoryID: c.Query("categoryId"),
		ColorID:    c.Query("colorId"),
		SizeID:     c.Query("sizeId"),
		IsFeatured: services.ParseFeatured(c.Query("isFeatured")),
	}
	products, err := h.service.ListProducts(c.UserContext(), c.Params("storeId"), filter)
	if err != nil {
		return fail(c, "PRODUCTS_GET", err)
	}
	return c.JSON(products)
}
