package repositories

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/akshat/marksheet/internal/app/models"
	"github.com/akshat/marksheet/internal/pkg/apperrors"
)

// StudentRepository handles store operations on the 'students' collection
type StudentRepository struct {
	col *mongo.Collection
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(database *mongo.Database) *StudentRepository {
	return &StudentRepository{
		col: database.Collection("students"),
	}
}

// Insert stores a new student document and fills in the generated id
func (r *StudentRepository) Insert(ctx context.Context, student *models.Student) error {
	result, err := r.col.InsertOne(ctx, student)
	if err != nil {
		return fmt.Errorf("error inserting student: %w", err)
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		student.ID = oid
	}
	return nil
}

// FindAll retrieves all students
func (r *StudentRepository) FindAll(ctx context.Context) ([]models.Student, error) {
	cursor, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("error listing students: %w", err)
	}
	defer cursor.Close(ctx)

	students := make([]models.Student, 0)
	if err := cursor.All(ctx, &students); err != nil {
		return nil, fmt.Errorf("error decoding students: %w", err)
	}
	return students, nil
}

// FindByRoll retrieves a student by roll number
func (r *StudentRepository) FindByRoll(ctx context.Context, rollNumber string) (*models.Student, error) {
	var student models.Student
	err := r.col.FindOne(ctx, bson.M{"roll_number": rollNumber}).Decode(&student)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}
	return &student, nil
}

// FindByIDOrRoll resolves a student identifier that may be either a
// store-generated object id or a roll number. An id-shaped key is tried
// as a primary-key lookup first, falling back to the roll number; the
// returned LookupVia tags which strategy matched.
func (r *StudentRepository) FindByIDOrRoll(ctx context.Context, key string) (*models.Student, models.LookupVia, error) {
	if oid, err := primitive.ObjectIDFromHex(key); err == nil {
		var student models.Student
		err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&student)
		if err == nil {
			return &student, models.LookupByID, nil
		}
		if !errors.Is(err, mongo.ErrNoDocuments) {
			return nil, models.LookupNone, fmt.Errorf("error retrieving student: %w", err)
		}
	}

	student, err := r.FindByRoll(ctx, key)
	if err != nil {
		return nil, models.LookupNone, err
	}
	return student, models.LookupByRoll, nil
}

// UpdateByRoll replaces the mutable fields of a student matched by roll
// number and returns the modified document count.
func (r *StudentRepository) UpdateByRoll(ctx context.Context, rollNumber string, student *models.Student) (int64, error) {
	result, err := r.col.UpdateOne(ctx, bson.M{"roll_number": rollNumber}, bson.M{"$set": studentFields(student)})
	if err != nil {
		return 0, fmt.Errorf("error updating student: %w", err)
	}
	return result.ModifiedCount, nil
}

// UpdateByID replaces the mutable fields of a student matched by object
// id and returns the matched and modified counts.
func (r *StudentRepository) UpdateByID(ctx context.Context, id primitive.ObjectID, student *models.Student) (matched, modified int64, err error) {
	result, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": studentFields(student)})
	if err != nil {
		return 0, 0, fmt.Errorf("error updating student: %w", err)
	}
	return result.MatchedCount, result.ModifiedCount, nil
}

// DeleteByRoll removes a student by roll number and returns the deleted count
func (r *StudentRepository) DeleteByRoll(ctx context.Context, rollNumber string) (int64, error) {
	result, err := r.col.DeleteOne(ctx, bson.M{"roll_number": rollNumber})
	if err != nil {
		return 0, fmt.Errorf("error deleting student: %w", err)
	}
	return result.DeletedCount, nil
}

// DeleteByID removes a student by object id and returns the deleted count
func (r *StudentRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) (int64, error) {
	result, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, fmt.Errorf("error deleting student: %w", err)
	}
	return result.DeletedCount, nil
}

// studentFields is the $set document for updates; the generated id is
// never rewritten.
func studentFields(student *models.Student) bson.M {
	return bson.M{
		"name":        student.Name,
		"roll_number": student.RollNumber,
		"class_name":  student.ClassName,
		"section":     student.Section,
		"subjects":    student.Subjects,
	}
}
