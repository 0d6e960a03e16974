package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Product represents a product in the store catalog.
type Product struct {
	ID         string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	StoreID    string    `json:"storeId" gorm:"index;type:varchar(36);not null"`
	CategoryID string    `json:"categoryId" gorm:"index;type:varchar(36);not null"`
	Category   *Category `json:"category,omitempty" gorm:"foreignKey:CategoryID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	SizeID     string    `json:"sizeId" gorm:"index;type:varchar(36);not null"`
	Size       *Size     `json:"size,omitempty" gorm:"foreignKey:SizeID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	ColorID    string    `json:"colorId" gorm:"index;type:varchar(36);not null"`
	Color      *Color    `json:"color,omitempty" gorm:"foreignKey:ColorID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Name       string    `json:"name" gorm:"type:varchar(255)"`
	Price      float64   `json:"price" gorm:"type:decimal(12,2)"`
	IsFeatured bool      `json:"isFeatured" gorm:"default:false"`
	IsArchived bool      `json:"isArchived" gorm:"default:false"`
	Images     []Image   `json:"images" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func (p Product) EntityID() string      { return p.ID }
func (p Product) EntityStoreID() string { return p.StoreID }
func (Product) EntityKind() Kind        { return KindProduct }

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}

// Image is one picture of a product, kept in insertion order.
type Image struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	ProductID string    `json:"productId" gorm:"index;type:varchar(36);not null"`
	URL       string    `json:"url" gorm:"type:text"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (i *Image) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.New().String()
	}
	return nil
}
