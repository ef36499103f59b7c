package mappers

import (
	"github.com/jaypeewhat/rooms-sana/dto"
	"github.com/jaypeewhat/rooms-sana/models"
)

func MapRoomPayloadToModel(p dto.RoomPayload) models.Room {
	capacity := p.Capacity
	if capacity == 0 {
		capacity = 2
	}
	status := p.Status
	if status == "" {
		status = models.RoomStatusAvailable
	}
	return models.Room{
		ID:          p.ID,
		RoomNumber:  p.RoomNumber,
		RoomType:    p.RoomType,
		Price:       p.Price,
		Status:      status,
		Floor:       p.Floor,
		Capacity:    capacity,
		Description: p.Description,
		CreatedAt:   p.CreatedAt,
		CreatedBy:   p.CreatedBy,
		UpdatedAt:   p.UpdatedAt,
		UpdatedBy:   p.CreatedBy, // createdBy wins over the caller's updatedBy
	}
}

// MapUpdatesToColumns flattens the PUT payload into the column set the
// update statement replaces.
func MapUpdatesToColumns(u dto.RoomUpdates) map[string]interface{} {
	return map[string]interface{}{
		"room_number": u.RoomNumber,
		"room_type":   u.RoomType,
		"price":       u.Price,
		"status":      u.Status,
		"floor":       u.Floor,
		"capacity":    u.Capacity,
		"description": u.Description,
		"updated_at":  u.UpdatedAt,
		"updated_by":  u.UpdatedBy,
	}
}
