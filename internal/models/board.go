package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Board is a billboard: a labelled hero image categories are displayed on.
type Board struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	StoreID   string    `json:"storeId" gorm:"index;type:varchar(36);not null"`
	Label     string    `json:"label" gorm:"type:varchar(255)"`
	ImageURL  string    `json:"imageUrl" gorm:"type:text"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (b Board) EntityID() string      { return b.ID }
func (b Board) EntityStoreID() string { return b.StoreID }
func (Board) EntityKind() Kind        { return KindBoard }

func (b *Board) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	return nil
}
