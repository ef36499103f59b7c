package database

import (
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/jaypeewhat/rooms-sana/models"
)

func intPtr(v int) *int { return &v }

// SeedRooms inserts the three demo rooms when the table is empty.
func SeedRooms(db *gorm.DB, log *zap.Logger) error {
	var count int64
	if err := db.Model(&models.Room{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	now := time.Now().UTC()
	sampleRooms := []models.Room{
		{
			ID:          "room_1",
			RoomNumber:  "101",
			RoomType:    "standard",
			Price:       2500.00,
			Status:      models.RoomStatusAvailable,
			Floor:       intPtr(1),
			Capacity:    2,
			Description: "Standard room with garden view",
			CreatedAt:   now,
			CreatedBy:   "system",
			UpdatedAt:   now,
			UpdatedBy:   "system",
		},
		{
			ID:          "room_2",
			RoomNumber:  "102",
			RoomType:    "deluxe",
			Price:       3500.00,
			Status:      models.RoomStatusOccupied,
			Floor:       intPtr(1),
			Capacity:    2,
			Description: "Deluxe room with city view",
			CreatedAt:   now,
			CreatedBy:   "system",
			UpdatedAt:   now,
			UpdatedBy:   "system",
		},
		{
			ID:          "room_3",
			RoomNumber:  "201",
			RoomType:    "suite",
			Price:       5000.00,
			Status:      models.RoomStatusDirty,
			Floor:       intPtr(2),
			Capacity:    4,
			Description: "Executive suite with balcony",
			CreatedAt:   now,
			CreatedBy:   "system",
			UpdatedAt:   now,
			UpdatedBy:   "system",
		},
	}

	if err := db.Create(&sampleRooms).Error; err != nil {
		return err
	}
	log.Info("seeded sample rooms", zap.Int("count", len(sampleRooms)))
	return nil
}
