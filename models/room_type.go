package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RoomType is a named category that rooms may reference.
// ID is assigned by the store on creation and never changes afterwards.
type RoomType struct {
	ID   string  `gorm:"primaryKey;type:varchar(36)" json:"_id"`
	Name *string `gorm:"type:varchar(255)" json:"name,omitempty"`
}

func (RoomType) TableName() string {
	return "room_types"
}

// BeforeCreate sets a UUID rather than relying on an auto-increment key.
func (rt *RoomType) BeforeCreate(tx *gorm.DB) error {
	if rt.ID == "" {
		rt.ID = uuid.NewString()
	}
	return nil
}
