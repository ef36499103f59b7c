package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/jaypeewhat/rooms-sana/database"
	"github.com/jaypeewhat/rooms-sana/dto"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Connect("sqlite", "file::memory:")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func TestSubmissionService_SubmitAndList(t *testing.T) {
	db := newTestDB(t)
	svc := NewSubmissionService(db, zap.NewNop())
	ctx := context.Background()

	first, err := svc.Submit(ctx, dto.CreateSubmissionRequest{
		StudentName: "Alice",
		WorkType:    "essay",
		Content:     "first draft",
	})
	require.NoError(t, err)
	assert.Equal(t, uint(1), first)

	second, err := svc.Submit(ctx, dto.CreateSubmissionRequest{
		StudentName: "Bob",
		WorkType:    "homework",
		Content:     "chapter 3 exercises",
	})
	require.NoError(t, err)
	assert.Greater(t, second, first)

	submissions, err := svc.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, submissions, 2)

	// Newest first, even when both rows share a creation timestamp.
	assert.Equal(t, second, submissions[0].ID)
	assert.Equal(t, "Bob", submissions[0].StudentName)
	assert.Equal(t, first, submissions[1].ID)

	assert.False(t, submissions[0].SubmissionDate.IsZero())
	assert.False(t, submissions[0].CreatedAt.IsZero())
}

func TestSubmissionService_ListAllEmpty(t *testing.T) {
	db := newTestDB(t)
	svc := NewSubmissionService(db, zap.NewNop())

	submissions, err := svc.ListAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, submissions)
	assert.Empty(t, submissions)
}
