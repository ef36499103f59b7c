package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/jaypeewhat/rooms-sana/dto"
	"github.com/jaypeewhat/rooms-sana/mappers"
	"github.com/jaypeewhat/rooms-sana/models"
)

type RoomService struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewRoomService(db *gorm.DB, log *zap.Logger) *RoomService {
	return &RoomService{db: db, log: log}
}

// StatusUpdate is the confirmation payload for UpdateStatus.
type StatusUpdate struct {
	Status    string    `json:"status"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ListAll returns every room ordered by room number. The order is
// lexicographic on the text column, so "1000" sorts before "201".
func (s *RoomService) ListAll(ctx context.Context) ([]models.Room, error) {
	rooms := make([]models.Room, 0)
	err := s.db.WithContext(ctx).Order("room_number ASC").Find(&rooms).Error
	if err != nil {
		s.log.Error("failed to fetch rooms", zap.Error(err))
		return nil, err
	}
	return rooms, nil
}

// Create persists an admin-authored room record. Audit fields come from the
// payload, except that createdBy is duplicated into updatedBy. A blank id is
// filled server-side so a second blank-id create cannot collide.
func (s *RoomService) Create(ctx context.Context, payload dto.RoomPayload, actor *models.Actor) (*models.Room, error) {
	if err := Authorize(actor, models.RoleAdmin); err != nil {
		return nil, err
	}

	room := mappers.MapRoomPayloadToModel(payload)
	if room.ID == "" {
		room.ID = "room_" + uuid.NewString()
	}

	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Room{}).
		Where("room_number = ?", room.RoomNumber).
		Count(&count).Error; err != nil {
		s.log.Error("failed to check room number", zap.Error(err))
		return nil, err
	}
	if count > 0 {
		return nil, ErrRoomNumberTaken
	}

	if err := s.db.WithContext(ctx).Create(&room).Error; err != nil {
		s.log.Error("failed to insert room", zap.String("room_id", room.ID), zap.Error(err))
		return nil, err
	}
	return &room, nil
}

// Update replaces the mutable columns of the room matching id and echoes the
// updates payload back. It deliberately does not re-read the row.
func (s *RoomService) Update(ctx context.Context, id string, updates dto.RoomUpdates, actor *models.Actor) (*dto.RoomUpdates, error) {
	if err := Authorize(actor, models.RoleAdmin); err != nil {
		return nil, err
	}

	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Room{}).
		Where("room_number = ? AND id <> ?", updates.RoomNumber, id).
		Count(&count).Error; err != nil {
		s.log.Error("failed to check room number", zap.Error(err))
		return nil, err
	}
	if count > 0 {
		return nil, ErrRoomNumberTaken
	}

	tx := s.db.WithContext(ctx).Model(&models.Room{}).
		Where("id = ?", id).
		Updates(mappers.MapUpdatesToColumns(updates))
	if tx.Error != nil {
		s.log.Error("failed to update room", zap.String("room_id", id), zap.Error(tx.Error))
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, ErrRoomNotFound
	}
	return &updates, nil
}

// Delete removes the room matching id. Deleting an already-deleted id is a
// NotFound, same as the first delete after it succeeded.
func (s *RoomService) Delete(ctx context.Context, id string, actor *models.Actor) error {
	if err := Authorize(actor, models.RoleAdmin); err != nil {
		return err
	}

	tx := s.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Room{})
	if tx.Error != nil {
		s.log.Error("failed to delete room", zap.String("room_id", id), zap.Error(tx.Error))
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrRoomNotFound
	}
	return nil
}

// UpdateStatus is the relaxed-permission mutation: students may flip a room's
// status as well as admins. The audit stamp records the acting email.
func (s *RoomService) UpdateStatus(ctx context.Context, id string, status string, actor *models.Actor) (*StatusUpdate, error) {
	if err := Authorize(actor, models.RoleAdmin, models.RoleStudent); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	tx := s.db.WithContext(ctx).Model(&models.Room{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": now,
			"updated_by": actor.Email,
		})
	if tx.Error != nil {
		s.log.Error("failed to update room status", zap.String("room_id", id), zap.Error(tx.Error))
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, ErrRoomNotFound
	}
	return &StatusUpdate{Status: status, UpdatedAt: now}, nil
}
