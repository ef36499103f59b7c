package models

import (
	"time"
)

// Status values observed in seed data. The column stays free text; callers
// may introduce further values through the status-update endpoint.
const (
	RoomStatusAvailable = "available"
	RoomStatusOccupied  = "occupied"
	RoomStatusDirty     = "dirty"
)

type Room struct {
	ID          string    `gorm:"primarykey;size:64" json:"id"`
	RoomNumber  string    `gorm:"column:room_number;size:50;uniqueIndex;not null" json:"roomNumber"`
	RoomType    string    `gorm:"column:room_type;size:50;not null" json:"roomType"`
	Price       float64   `gorm:"not null" json:"price"`
	Status      string    `gorm:"size:50;not null;default:'available'" json:"status"`
	Floor       *int      `json:"floor"`
	Capacity    int       `gorm:"default:2" json:"capacity"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	CreatedBy   string    `gorm:"column:created_by;size:100;not null" json:"createdBy"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime:false" json:"updatedAt"`
	UpdatedBy   string    `gorm:"column:updated_by;size:100;not null" json:"updatedBy"`
}

func (Room) TableName() string {
	return "rooms"
}
