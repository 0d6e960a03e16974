package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Color is a named color option. ColorValue holds a hex code such as "#FF0000".
type Color struct {
	ID         string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	StoreID    string    `json:"storeId" gorm:"index;type:varchar(36);not null"`
	Name       string    `json:"name" gorm:"type:varchar(255)"`
	ColorValue string    `json:"colorValue" gorm:"type:varchar(32)"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func (c Color) EntityID() string      { return c.ID }
func (c Color) EntityStoreID() string { return c.StoreID }
func (Color) EntityKind() Kind        { return KindColor }

func (c *Color) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return nil
}
