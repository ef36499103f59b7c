package services

import (
	"context"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/jaypeewhat/rooms-sana/dto"
	"github.com/jaypeewhat/rooms-sana/models"
)

type SubmissionService struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewSubmissionService(db *gorm.DB, log *zap.Logger) *SubmissionService {
	return &SubmissionService{db: db, log: log}
}

// Submit stamps both timestamps with the current time and persists the
// record, returning the generated id.
func (s *SubmissionService) Submit(ctx context.Context, req dto.CreateSubmissionRequest) (uint, error) {
	now := time.Now().UTC()
	submission := models.WorkSubmission{
		StudentName:    req.StudentName,
		SubmissionDate: now,
		WorkType:       req.WorkType,
		Content:        req.Content,
		CreatedAt:      now,
	}

	if err := s.db.WithContext(ctx).Create(&submission).Error; err != nil {
		s.log.Error("failed to insert submission", zap.Error(err))
		return 0, err
	}
	return submission.ID, nil
}

// ListAll returns every submission, newest first.
func (s *SubmissionService) ListAll(ctx context.Context) ([]models.WorkSubmission, error) {
	submissions := make([]models.WorkSubmission, 0)
	err := s.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Find(&submissions).Error
	if err != nil {
		s.log.Error("failed to fetch submissions", zap.Error(err))
		return nil, err
	}
	return submissions, nil
}
