package forms

import "tokoadmin/internal/models"

// ColorValues are the inputs of the color form.
type ColorValues struct {
	Name       string `json:"name" label:"Name" validate:"required,notblank"`
	ColorValue string `json:"colorValue" label:"Color value" validate:"required,min=4,hexprefix"`
}

// NewColorForm builds the color form; a nil initial means "create".
func NewColorForm(storeID string, initial *models.Color, deps Deps) *Form[ColorValues] {
	var values *ColorValues
	var id string
	if initial != nil {
		values = &ColorValues{Name: initial.Name, ColorValue: initial.ColorValue}
		id = initial.ID
	}
	return newForm(models.KindColor, storeID, id, values,
		"Make sure you removed all products using this color first.", deps)
}

// SizeValues are the inputs of the size form.
type SizeValues struct {
	Name  string `json:"name" label:"Name" validate:"required,notblank"`
	Value string `json:"value" label:"Value" validate:"required,notblank"`
}

func NewSizeForm(storeID string, initial *models.Size, deps Deps) *Form[SizeValues] {
	var values *SizeValues
	var id string
	if initial != nil {
		values = &SizeValues{Name: initial.Name, Value: initial.Value}
		id = initial.ID
	}
	return newForm(models.KindSize, storeID, id, values,
		"Make sure you removed all products using this size first.", deps)
}

// BoardValues are the inputs of the board form.
type BoardValues struct {
	Label    string `json:"label" label:"Label" validate:"required,notblank"`
	ImageURL string `json:"imageUrl" label:"Image URL" validate:"required,notblank"`
}

func NewBoardForm(storeID string, initial *models.Board, deps Deps) *Form[BoardValues] {
	var values *BoardValues
	var id string
	if initial != nil {
		values = &BoardValues{Label: initial.Label, ImageURL: initial.ImageURL}
		id = initial.ID
	}
	return newForm(models.KindBoard, storeID, id, values,
		"Make sure you removed all categories using this board first.", deps)
}

// CategoryValues are the inputs of the category form.
type CategoryValues struct {
	Name    string `json:"name" label:"Name" validate:"required,notblank"`
	BoardID string `json:"boardId" label:"Board" validate:"required,min=1"`
}

// CategoryForm also carries the boards a category can be shown on.
type CategoryForm struct {
	*Form[CategoryValues]
	Boards []models.Board
}

func NewCategoryForm(storeID string, initial *models.Category, boards []models.Board, deps Deps) *CategoryForm {
	var values *CategoryValues
	var id string
	if initial != nil {
		values = &CategoryValues{Name: initial.Name, BoardID: initial.BoardID}
		id = initial.ID
	}
	return &CategoryForm{
		Form: newForm(models.KindCategory, storeID, id, values,
			"Make sure you removed all products using this category first.", deps),
		Boards: boards,
	}
}

// ImageValue is one uploaded product image.
type ImageValue struct {
	URL string `json:"url" label:"Image URL" validate:"required,notblank"`
}

// ProductValues are the inputs of the product form.
type ProductValues struct {
	Name       string       `json:"name" label:"Name" validate:"required,notblank"`
	Images     []ImageValue `json:"images" label:"Images" validate:"min=1,dive"`
	Price      float64      `json:"price" label:"Price" validate:"min=1"`
	CategoryID string       `json:"categoryId" label:"Category" validate:"required,min=1"`
	ColorID    string       `json:"colorId" label:"Color" validate:"required,min=1"`
	SizeID     string       `json:"sizeId" label:"Size" validate:"required,min=1"`
	IsFeatured bool         `json:"isFeatured"`
	IsArchived bool         `json:"isArchived"`
}

// ProductForm also carries the lookup lists its selection inputs offer.
type ProductForm struct {
	*Form[ProductValues]
	Categories []models.Category
	Sizes      []models.Size
	Colors     []models.Color
}

func NewProductForm(storeID string, initial *models.Product, categories []models.Category, sizes []models.Size, colors []models.Color, deps Deps) *ProductForm {
	var values *ProductValues
	var id string
	if initial != nil {
		images := make([]ImageValue, len(initial.Images))
		for i, img := range initial.Images {
			images[i] = ImageValue{URL: img.URL}
		}
		values = &ProductValues{
			Name:       initial.Name,
			Images:     images,
			Price:      initial.Price,
			CategoryID: initial.CategoryID,
			ColorID:    initial.ColorID,
			SizeID:     initial.SizeID,
			IsFeatured: initial.IsFeatured,
			IsArchived: initial.IsArchived,
		}
		id = initial.ID
	}
	return &ProductForm{
		Form:       newForm(models.KindProduct, storeID, id, values, GenericFailure, deps),
		Categories: categories,
		Sizes:      sizes,
		Colors:     colors,
	}
}
