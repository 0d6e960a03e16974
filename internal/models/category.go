package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category groups products and is shown on a board.
type Category struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	StoreID   string    `json:"storeId" gorm:"index;type:varchar(36);not null"`
	BoardID   string    `json:"boardId" gorm:"index;type:varchar(36);not null"`
	Board     *Board    `json:"board,omitempty" gorm:"foreignKey:BoardID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Name      string    `json:"name" gorm:"type:varchar(255)"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (c Category) EntityID() string      { return c.ID }
func (c Category) EntityStoreID() string { return c.StoreID }
func (Category) EntityKind() Kind        { return KindCategory }

func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return nil
}
