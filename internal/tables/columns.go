// Package tables builds the rows of the dashboard's entity tables and the
// action menu shown on each row.
package tables

import (
	"time"

	"tokoadmin/internal/models"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const dateLayout = "January 2, 2006"

// Row is one table row. Kind is set by the producer of the row, never
// inferred from its fields.
type Row interface {
	RowID() string
	RowKind() models.Kind
}

type BoardColumn struct {
	Kind      models.Kind `json:"kind"`
	ID        string      `json:"id"`
	Label     string      `json:"label"`
	CreatedAt string      `json:"createdAt"`
}

func (r BoardColumn) RowID() string        { return r.ID }
func (r BoardColumn) RowKind() models.Kind { return r.Kind }

type CategoryColumn struct {
	Kind       models.Kind `json:"kind"`
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	BoardLabel string      `json:"boardLabel"`
	CreatedAt  string      `json:"createdAt"`
}

func (r CategoryColumn) RowID() string        { return r.ID }
func (r CategoryColumn) RowKind() models.Kind { return r.Kind }

type SizeColumn struct {
	Kind      models.Kind `json:"kind"`
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Value     string      `json:"value"`
	CreatedAt string      `json:"createdAt"`
}

func (r SizeColumn) RowID() string        { return r.ID }
func (r SizeColumn) RowKind() models.Kind { return r.Kind }

type ColorColumn struct {
	Kind       models.Kind `json:"kind"`
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	ColorValue string      `json:"colorValue"`
	CreatedAt  string      `json:"createdAt"`
}

func (r ColorColumn) RowID() string        { return r.ID }
func (r ColorColumn) RowKind() models.Kind { return r.Kind }

type ProductColumn struct {
	Kind       models.Kind `json:"kind"`
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	IsFeatured bool        `json:"isFeatured"`
	IsArchived bool        `json:"isArchived"`
	Price      string      `json:"price"`
	Category   string      `json:"category"`
	Size       string      `json:"size"`
	Color      string      `json:"color"`
	CreatedAt  string      `json:"createdAt"`
}

func (r ProductColumn) RowID() string        { return r.ID }
func (r ProductColumn) RowKind() models.Kind { return r.Kind }

func formatDate(t time.Time) string {
	return t.Format(dateLayout)
}

var usd = message.NewPrinter(language.English)

// FormatPrice renders a price in US dollars, e.g. "$1,234.50".
func FormatPrice(v float64) string {
	if v < 0 {
		return usd.Sprintf("-$%.2f", -v)
	}
	return usd.Sprintf("$%.2f", v)
}

func BoardRows(boards []models.Board) []BoardColumn {
	rows := make([]BoardColumn, len(boards))
	for i, b := range boards {
		rows[i] = BoardColumn{Kind: models.KindBoard, ID: b.ID, Label: b.Label, CreatedAt: formatDate(b.CreatedAt)}
	}
	return rows
}

// CategoryRows expects categories loaded with their board.
func CategoryRows(categories []models.Category) []CategoryColumn {
	rows := make([]CategoryColumn, len(categories))
	for i, c := range categories {
		label := ""
		if c.Board != nil {
			label = c.Board.Label
		}
		rows[i] = CategoryColumn{Kind: models.KindCategory, ID: c.ID, Name: c.Name, BoardLabel: label, CreatedAt: formatDate(c.CreatedAt)}
	}
	return rows
}

func SizeRows(sizes []models.Size) []SizeColumn {
	rows := make([]SizeColumn, len(sizes))
	for i, s := range sizes {
		rows[i] = SizeColumn{Kind: models.KindSize, ID: s.ID, Name: s.Name, Value: s.Value, CreatedAt: formatDate(s.CreatedAt)}
	}
	return rows
}

func ColorRows(colors []models.Color) []ColorColumn {
	rows := make([]ColorColumn, len(colors))
	for i, c := range colors {
		rows[i] = ColorColumn{Kind: models.KindColor, ID: c.ID, Name: c.Name, ColorValue: c.ColorValue, CreatedAt: formatDate(c.CreatedAt)}
	}
	return rows
}

// ProductRows expects products loaded with category, size and color.
func ProductRows(products []models.Product) []ProductColumn {
	rows := make([]ProductColumn, len(products))
	for i, p := range products {
		row := ProductColumn{
			Kind:       models.KindProduct,
			ID:         p.ID,
			Name:       p.Name,
			IsFeatured: p.IsFeatured,
			IsArchived: p.IsArchived,
			Price:      FormatPrice(p.Price),
			CreatedAt:  formatDate(p.CreatedAt),
		}
		if p.Category != nil {
			row.Category = p.Category.Name
		}
		if p.Size != nil {
			row.Size = p.Size.Name
		}
		if p.Color != nil {
			row.Color = p.Color.ColorValue
		}
		rows[i] = row
	}
	return rows
}
