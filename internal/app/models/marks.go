package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Marks defines a document in the 'marks' collection. StudentID holds the
// roll number of the student the record belongs to; the reference is
// checked at creation time only, the store enforces no integrity.
type Marks struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	StudentID string             `json:"student_id" bson:"student_id"`
	Subject   string             `json:"subject" bson:"subject"`
	Marks     float64            `json:"marks" bson:"marks"`
	MaxMarks  float64            `json:"max_marks" bson:"max_marks"`
	ExamDate  time.Time          `json:"exam_date" bson:"exam_date"`
}

// MarksWithStudent is a marks document joined with the owning student's
// name, produced by the all-marks lookup pipeline. StudentName falls back
// to a placeholder when the referenced student no longer exists.
type MarksWithStudent struct {
	Marks       `bson:",inline"`
	StudentName string `json:"student_name" bson:"student_name"`
}

// ClassGroup is one bucket of the students-by-class grouping used by the
// class performance report.
type ClassGroup struct {
	ClassName     string   `json:"class_name" bson:"_id"`
	TotalStudents int64    `json:"total_students" bson:"total_students"`
	RollNumbers   []string `json:"roll_numbers" bson:"roll_numbers"`
}

// ClassMarksStats aggregates the marks belonging to one class group.
type ClassMarksStats struct {
	AverageScore float64 `bson:"average_score"`
	PassCount    int64   `bson:"pass_count"`
	TotalEntries int64   `bson:"total_entries"`
}

// ClassPerformance is one row of the class performance report.
type ClassPerformance struct {
	ClassName     string  `json:"_id" bson:"_id"`
	TotalStudents int64   `json:"total_students" bson:"total_students"`
	AverageScore  float64 `json:"average_score" bson:"average_score"`
	PassRate      float64 `json:"pass_rate" bson:"pass_rate"`
}

// SubjectPerformance is one row of the subject performance report.
type SubjectPerformance struct {
	Subject      string  `json:"_id" bson:"_id"`
	AverageScore float64 `json:"average_score" bson:"average_score"`
	HighestScore float64 `json:"highest_score" bson:"highest_score"`
	LowestScore  float64 `json:"lowest_score" bson:"lowest_score"`
	TotalEntries int64   `json:"total_students" bson:"total_students"`
	PassRate     float64 `json:"pass_rate" bson:"pass_rate"`
}

// TopPerformer is one row of the top performers report, keyed by roll
// number.
type TopPerformer struct {
	RollNumber    string  `json:"_id" bson:"_id"`
	StudentName   string  `json:"student_name" bson:"student_name"`
	ClassName     string  `json:"class_name" bson:"class_name"`
	AverageScore  float64 `json:"average_score" bson:"average_score"`
	TotalMarks    float64 `json:"total_marks" bson:"total_marks"`
	SubjectsCount int64   `json:"subjects_count" bson:"subjects_count"`
}
