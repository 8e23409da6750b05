package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Room is a bookable unit. RoomType holds the id of a RoomType but is not
// checked against the room_types collection; every field may be absent.
type Room struct {
	ID       string   `gorm:"primaryKey;type:varchar(36)" json:"_id"`
	Name     *string  `gorm:"type:varchar(255)" json:"name,omitempty"`
	RoomType *string  `gorm:"column:room_type;type:varchar(64);index" json:"roomType,omitempty"`
	Price    *float64 `json:"price,omitempty"`
}

func (Room) TableName() string {
	return "rooms"
}

func (r *Room) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

// RoomFields are the writable fields of a Room. A nil field is written as
// absent, never skipped.
type RoomFields struct {
	Name     *string
	RoomType *string
	Price    *float64
}

// Apply overwrites all three fields of r with f.
func (f RoomFields) Apply(r *Room) {
	r.Name = f.Name
	r.RoomType = f.RoomType
	r.Price = f.Price
}
