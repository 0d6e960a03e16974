package handlers

import (
	"tokoadmin/internal/services"

	"github.com/gofiber/fiber/v2"
)

// BoardHandler handles HTTP requests for boards.
type BoardHandler struct {
	service *services.BoardService
}

// NewBoardHandler creates a new BoardHandler.
func NewBoardHandler(service *services.BoardService) *BoardHandler {
	return &BoardHandler{service: service}
}

// RegisterRoutes registers the board routes under /:storeId/boards.
func (h *BoardHandler) RegisterRoutes(router fiber.Router) {
	boardRoutes := router.Group("/:storeId/boards")
	boardRoutes.Get("/", handleList("BOARDS_GET", h.service.ListBoards))
	boardRoutes.Post("/", handleCreate("BOARDS_POST", h.service.CreateBoard))
	boardRoutes.Get("/:boardId", handleGet("BOARD_GET", "boardId", h.service.GetBoard))
	boardRoutes.Patch("/:boardId", handleUpdate("BOARD_PATCH", "boardId", h.service.UpdateBoard))
	boardRoutes.Delete("/:boardId", handleDelete("BOARD_DELETE", "boardId", h.service.DeleteBoard))
}
