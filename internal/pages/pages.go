// Package pages composes the dashboard's server-rendered pages: an entity
// with the lookup lists its form needs, or the table rows of a kind.
package pages

import (
	"context"
	"errors"
	"fmt"

	"tokoadmin/internal/forms"
	"tokoadmin/internal/models"
	"tokoadmin/internal/services"
	"tokoadmin/internal/tables"
)

// NewEntityID is the path segment that opens a form in create mode.
const NewEntityID = "new"

// ErrStoreNotFound means the store does not exist or is not the caller's.
var ErrStoreNotFound = errors.New("store not found")

// FormPage carries the render state of an entity form. Entity is nil in
// create mode.
type FormPage[V any, E any] struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Action      string `json:"action"`
	Editing     bool   `json:"editing"`
	InitialData V      `json:"initialData"`
	Entity      *E     `json:"entity"`
}

func formPage[V, E any](f *forms.Form[V], entity *E) FormPage[V, E] {
	return FormPage[V, E]{
		Title:       f.Title(),
		Description: f.Description(),
		Action:      f.Action(),
		Editing:     f.Editing(),
		InitialData: f.Defaults(),
		Entity:      entity,
	}
}

type CategoryPage struct {
	FormPage[forms.CategoryValues, models.Category]
	Boards []models.Board `json:"boards"`
}

type ProductPage struct {
	FormPage[forms.ProductValues, models.Product]
	Categories []models.Category `json:"categories"`
	Sizes      []models.Size     `json:"sizes"`
	Colors     []models.Color    `json:"colors"`
}

// Endpoint documents one API route of a kind on its list page.
type Endpoint struct {
	Title   string `json:"title"`
	Method  string `json:"method"`
	URL     string `json:"url"`
	Private bool   `json:"private"`
}

// ListPage is a kind's table with its heading and API reference.
type ListPage[R tables.Row] struct {
	Heading     string     `json:"heading"`
	Description string     `json:"description"`
	NewPath     string     `json:"newPath"`
	Rows        []R        `json:"rows"`
	Endpoints   []Endpoint `json:"endpoints"`
}

// Loader reads everything a page shows. It never writes.
type Loader struct {
	stores     *services.StoreService
	boards     *services.BoardService
	categories *services.CategoryService
	sizes      *services.SizeService
	colors     *services.ColorService
	products   *services.ProductService
	baseURL    string
}

// NewLoader creates a Loader. baseURL prefixes the API reference URLs.
func NewLoader(
	stores *services.StoreService,
	boards *services.BoardService,
	categories *services.CategoryService,
	sizes *services.SizeService,
	colors *services.ColorService,
	products *services.ProductService,
	baseURL string,
) *Loader {
	return &Loader{
		stores:     stores,
		boards:     boards,
		categories: categories,
		sizes:      sizes,
		colors:     colors,
		products:   products,
		baseURL:    baseURL,
	}
}

// requireStore lets only the owner of storeID see its dashboard.
func (l *Loader) requireStore(ctx context.Context, callerID, storeID string) error {
	store, err := l.stores.GetStore(ctx, callerID, storeID)
	if err != nil {
		return err
	}
	if store == nil {
		return ErrStoreNotFound
	}
	return nil
}

// lookup fetches an entity unless id asks for a new one. An unknown id
// also yields nil, which renders the form in create mode.
func lookup[E any](ctx context.Context, id string, get func(context.Context, string) (*E, error)) (*E, error) {
	if id == NewEntityID {
		return nil, nil
	}
	return get(ctx, id)
}

// Detail composes the form page of one entity of kind.
func (l *Loader) Detail(ctx context.Context, callerID, storeID string, kind models.Kind, id string) (interface{}, error) {
	if err := l.requireStore(ctx, callerID, storeID); err != nil {
		return nil, err
	}

	switch kind {
	case models.KindColor:
		color, err := lookup(ctx, id, l.colors.GetColor)
		if err != nil {
			return nil, err
		}
		return formPage(forms.NewColorForm(storeID, color, forms.Deps{}), color), nil

	case models.KindSize:
		size, err := lookup(ctx, id, l.sizes.GetSize)
		if err != nil {
			return nil, err
		}
		return formPage(forms.NewSizeForm(storeID, size, forms.Deps{}), size), nil

	case models.KindBoard:
		board, err := lookup(ctx, id, l.boards.GetBoard)
		if err != nil {
			return nil, err
		}
		return formPage(forms.NewBoardForm(storeID, board, forms.Deps{}), board), nil

	case models.KindCategory:
		category, err := lookup(ctx, id, l.categories.GetCategory)
		if err != nil {
			return nil, err
		}
		boards, err := l.boards.ListBoards(ctx, storeID)
		if err != nil {
			return nil, err
		}
		form := forms.NewCategoryForm(storeID, category, boards, forms.Deps{})
		return CategoryPage{FormPage: formPage(form.Form, category), Boards: form.Boards}, nil

	case models.KindProduct:
		return l.productDetail(ctx, storeID, id)
	}
	return nil, fmt.Errorf("no detail page for kind %q", kind)
}

func (l *Loader) productDetail(ctx context.Context, storeID, id string) (*ProductPage, error) {
	product, err := lookup(ctx, id, l.products.GetProduct)
	if err != nil {
		return nil, err
	}
	categories, err := l.categories.ListCategories(ctx, storeID)
	if err != nil {
		return nil, err
	}
	sizes, err := l.sizes.ListSizes(ctx, storeID)
	if err != nil {
		return nil, err
	}
	colors, err := l.colors.ListColors(ctx, storeID)
	if err != nil {
		return nil, err
	}

	form := forms.NewProductForm(storeID, product, categories, sizes, colors, forms.Deps{})
	return &ProductPage{
		FormPage:   formPage(form.Form, product),
		Categories: form.Categories,
		Sizes:      form.Sizes,
		Colors:     form.Colors,
	}, nil
}

// List composes the table page of kind. Archived products are listed too.
func (l *Loader) List(ctx context.Context, callerID, storeID string, kind models.Kind) (interface{}, error) {
	if err := l.requireStore(ctx, callerID, storeID); err != nil {
		return nil, err
	}

	switch kind {
	case models.KindColor:
		colors, err := l.colors.ListColors(ctx, storeID)
		if err != nil {
			return nil, err
		}
		return listPage(l, storeID, kind, tables.ColorRows(colors)), nil

	case models.KindSize:
		sizes, err := l.sizes.ListSizes(ctx, storeID)
		if err != nil {
			return nil, err
		}
		return listPage(l, storeID, kind, tables.SizeRows(sizes)), nil

	case models.KindBoard:
		boards, err := l.boards.ListBoards(ctx, storeID)
		if err != nil {
			return nil, err
		}
		return listPage(l, storeID, kind, tables.BoardRows(boards)), nil

	case models.KindCategory:
		categories, err := l.categories.ListCategories(ctx, storeID)
		if err != nil {
			return nil, err
		}
		return listPage(l, storeID, kind, tables.CategoryRows(categories)), nil

	case models.KindProduct:
		products, err := l.products.ListProducts(ctx, storeID, services.ProductFilter{IncludeArchived: true})
		if err != nil {
			return nil, err
		}
		return listPage(l, storeID, kind, tables.ProductRows(products)), nil
	}
	return nil, fmt.Errorf("no list page for kind %q", kind)
}

func listPage[R tables.Row](l *Loader, storeID string, kind models.Kind, rows []R) ListPage[R] {
	label := kind.Label()
	plural := label + "s"
	if kind == models.KindCategory {
		plural = "Categories"
	}
	return ListPage[R]{
		Heading:     fmt.Sprintf("%s (%d)", plural, len(rows)),
		Description: fmt.Sprintf("Manage %s for your store", kind.Route()),
		NewPath:     forms.ListPath(storeID, kind) + "/" + NewEntityID,
		Rows:        rows,
		Endpoints:   l.endpoints(storeID, kind),
	}
}

func (l *Loader) endpoints(storeID string, kind models.Kind) []Endpoint {
	base := fmt.Sprintf("%s/api/%s/%s", l.baseURL, storeID, kind.Route())
	item := base + "/{" + kind.Noun() + "Id}"
	return []Endpoint{
		{Title: "GET", Method: "GET", URL: base},
		{Title: "GET", Method: "GET", URL: item},
		{Title: "POST", Method: "POST", URL: base, Private: true},
		{Title: "PATCH", Method: "PATCH", URL: item, Private: true},
		{Title: "DELETE", Method: "DELETE", URL: item, Private: true},
	}
}
