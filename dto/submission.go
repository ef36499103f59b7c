package dto

type CreateSubmissionRequest struct {
	StudentName string `json:"studentName" binding:"required"`
	WorkType    string `json:"workType" binding:"required"`
	Content     string `json:"content" binding:"required"`
}
