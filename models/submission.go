package models

import (
	"time"
)

// WorkSubmission is append-only: rows are inserted once and never updated
// or deleted.
type WorkSubmission struct {
	ID             uint      `gorm:"primarykey" json:"id"`
	StudentName    string    `gorm:"column:student_name;size:100;not null" json:"studentName"`
	SubmissionDate time.Time `gorm:"column:submission_date;not null" json:"submissionDate"`
	WorkType       string    `gorm:"column:work_type;size:50;not null" json:"workType"`
	Content        string    `gorm:"type:text;not null" json:"content"`
	CreatedAt      time.Time `json:"createdAt"`
}

func (WorkSubmission) TableName() string {
	return "work_submissions"
}
