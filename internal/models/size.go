package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Size is a named size option, e.g. Name "Large" with Value "L".
type Size struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	StoreID   string    `json:"storeId" gorm:"index;type:varchar(36);not null"`
	Name      string    `json:"name" gorm:"type:varchar(255)"`
	Value     string    `json:"value" gorm:"type:varchar(255)"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (s Size) EntityID() string      { return s.ID }
func (s Size) EntityStoreID() string { return s.StoreID }
func (Size) EntityKind() Kind        { return KindSize }

func (s *Size) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	return nil
}
