package dto

import (
	"time"

	"github.com/jaypeewhat/rooms-sana/models"
)

// RoomPayload is the caller-supplied room record on create. Audit fields are
// taken from the payload as-is; the server only duplicates createdBy into
// updatedBy and fills a blank id.
type RoomPayload struct {
	ID          string    `json:"id"`
	RoomNumber  string    `json:"roomNumber" binding:"required"`
	RoomType    string    `json:"roomType" binding:"required"`
	Price       float64   `json:"price" binding:"gte=0"`
	Status      string    `json:"status"`
	Floor       *int      `json:"floor"`
	Capacity    int       `json:"capacity"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	CreatedBy   string    `json:"createdBy"`
	UpdatedAt   time.Time `json:"updatedAt"`
	UpdatedBy   string    `json:"updatedBy"`
}

// RoomUpdates is the full-replace payload for PUT. It is echoed back to the
// caller verbatim on success, so the JSON tags double as the response shape.
type RoomUpdates struct {
	RoomNumber  string    `json:"roomNumber" binding:"required"`
	RoomType    string    `json:"roomType"`
	Price       float64   `json:"price" binding:"gte=0"`
	Status      string    `json:"status"`
	Floor       *int      `json:"floor"`
	Capacity    int       `json:"capacity"`
	Description string    `json:"description"`
	UpdatedAt   time.Time `json:"updatedAt"`
	UpdatedBy   string    `json:"updatedBy"`
}

type CreateRoomRequest struct {
	Room *RoomPayload  `json:"room" binding:"required"`
	User *models.Actor `json:"user"`
}

type UpdateRoomRequest struct {
	Updates *RoomUpdates  `json:"updates" binding:"required"`
	User    *models.Actor `json:"user"`
}

type DeleteRoomRequest struct {
	User *models.Actor `json:"user"`
}

type UpdateRoomStatusRequest struct {
	Status string        `json:"status" binding:"required"`
	User   *models.Actor `json:"user"`
}
