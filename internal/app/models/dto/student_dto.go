package dto

import "github.com/akshat/marksheet/internal/app/models"

// StudentRequest carries the validated field set for student create and
// update operations. Unknown fields are dropped at the binding boundary.
type StudentRequest struct {
	Name       string                 `json:"name" binding:"required"`
	RollNumber string                 `json:"roll_number" binding:"required"`
	ClassName  string                 `json:"class_name" binding:"required"`
	Section    string                 `json:"section" binding:"required"`
	Subjects   map[string]interface{} `json:"subjects"`
}

// ToModel converts the request into a student document.
func (r *StudentRequest) ToModel() *models.Student {
	return &models.Student{
		Name:       r.Name,
		RollNumber: r.RollNumber,
		ClassName:  r.ClassName,
		Section:    r.Section,
		Subjects:   r.Subjects,
	}
}
