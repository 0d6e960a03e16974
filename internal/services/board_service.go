package services

import (
	"context"

	"tokoadmin/internal/models"
	"tokoadmin/internal/repositories"
	"tokoadmin/internal/validation"

	"github.com/go-playground/validator/v10"
)

// BoardInput is the writable field set of a board.
type BoardInput struct {
	Label    string `json:"label" label:"Label" validate:"required,notblank"`
	ImageURL string `json:"imageUrl" label:"Image URL" validate:"required,notblank"`
}

// BoardService handles business logic related to boards.
type BoardService struct {
	catalog  catalog[models.Board]
	validate *validator.Validate
}

// NewBoardService creates a new BoardService.
func NewBoardService(repo repositories.CatalogRepository[models.Board], guard *OwnershipGuard, events EventPublisher) *BoardService {
	return &BoardService{
		catalog:  newCatalog(repo, guard, events),
		validate: validation.New(),
	}
}

func (s *BoardService) ListBoards(ctx context.Context, storeID string) ([]models.Board, error) {
	return s.catalog.list(ctx, storeID, nil)
}

func (s *BoardService) GetBoard(ctx context.Context, id string) (*models.Board, error) {
	return s.catalog.get(ctx, id)
}

func (s *BoardService) CreateBoard(ctx context.Context, callerID, storeID string, in BoardInput) (*models.Board, error) {
	if callerID == "" {
		return nil, ErrUnauthenticated
	}
	if err := check(s.validate, in); err != nil {
		return nil, err
	}
	return s.catalog.create(ctx, callerID, storeID, &models.Board{
		StoreID:  storeID,
		Label:    in.Label,
		ImageURL: in.ImageURL,
	})
}

func (s *BoardService) UpdateBoard(ctx context.Context, callerID, storeID, id string, in BoardInput) (*models.Board, error) {
	if callerID == "" {
		return nil, ErrUnauthenticated
	}
	if err := check(s.validate, in); err != nil {
		return nil, err
	}
	return s.catalog.update(ctx, callerID, storeID, id, map[string]interface{}{
		"label":     in.Label,
		"image_url": in.ImageURL,
	})
}

// DeleteBoard removes the board. It fails while categories are shown on it.
func (s *BoardService) DeleteBoard(ctx context.Context, callerID, storeID, id string) (*models.Board, error) {
	return s.catalog.delete(ctx, callerID, storeID, id)
}
