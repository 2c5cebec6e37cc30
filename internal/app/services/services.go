package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/akshat/marksheet/internal/app/models"
)

// Repository interfaces consumed by the services. The concrete Mongo
// implementations live in the repositories package; tests substitute
// in-memory fakes.

// UserRepository is the users collection as seen by the services
type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	Insert(ctx context.Context, user *models.User) error
}

// StudentRepository is the students collection as seen by the services
type StudentRepository interface {
	Insert(ctx context.Context, student *models.Student) error
	FindAll(ctx context.Context) ([]models.Student, error)
	FindByRoll(ctx context.Context, rollNumber string) (*models.Student, error)
	FindByIDOrRoll(ctx context.Context, key string) (*models.Student, models.LookupVia, error)
	UpdateByRoll(ctx context.Context, rollNumber string, student *models.Student) (int64, error)
	UpdateByID(ctx context.Context, id primitive.ObjectID, student *models.Student) (matched, modified int64, err error)
	DeleteByRoll(ctx context.Context, rollNumber string) (int64, error)
	DeleteByID(ctx context.Context, id primitive.ObjectID) (int64, error)
}

// MarksRepository is the marks collection as seen by the services
type MarksRepository interface {
	Insert(ctx context.Context, marks *models.Marks) error
	FindByStudent(ctx context.Context, rollNumber string) ([]models.Marks, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Marks, error)
	FindAllWithStudent(ctx context.Context) ([]models.MarksWithStudent, error)
	UpdateByID(ctx context.Context, id primitive.ObjectID, marks *models.Marks) (matched, modified int64, err error)
	DeleteByID(ctx context.Context, id primitive.ObjectID) (int64, error)
	DeleteByStudent(ctx context.Context, rollNumber string) (int64, error)
}

// ReportRepository runs the report aggregations as seen by the services
type ReportRepository interface {
	ClassGroups(ctx context.Context) ([]models.ClassGroup, error)
	ClassMarksStats(ctx context.Context, rollNumbers []string) (*models.ClassMarksStats, error)
	SubjectPerformance(ctx context.Context) ([]models.SubjectPerformance, error)
	TopPerformers(ctx context.Context, limit int64) ([]models.TopPerformer, error)
}
