package dto

import (
	"time"

	"github.com/akshat/marksheet/internal/app/models"
)

// MarksRequest carries the validated field set for marks create and
// update operations. StudentID is the roll number of an existing student.
type MarksRequest struct {
	StudentID string    `json:"student_id" binding:"required"`
	Subject   string    `json:"subject" binding:"required"`
	Marks     float64   `json:"marks" binding:"min=0"`
	MaxMarks  float64   `json:"max_marks" binding:"required,gtefield=Marks"`
	ExamDate  time.Time `json:"exam_date" binding:"required"`
}

// ToModel converts the request into a marks document.
func (r *MarksRequest) ToModel() *models.Marks {
	return &models.Marks{
		StudentID: r.StudentID,
		Subject:   r.Subject,
		Marks:     r.Marks,
		MaxMarks:  r.MaxMarks,
		ExamDate:  r.ExamDate,
	}
}
