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

// MarksRepository handles store operations on the 'marks' collection
type MarksRepository struct {
	col *mongo.Collection
}

// NewMarksRepository creates a new marks repository
func NewMarksRepository(database *mongo.Database) *MarksRepository {
	return &MarksRepository{
		col: database.Collection("marks"),
	}
}

// Insert stores a new marks document and fills in the generated id
func (r *MarksRepository) Insert(ctx context.Context, marks *models.Marks) error {
	result, err := r.col.InsertOne(ctx, marks)
	if err != nil {
		return fmt.Errorf("error inserting marks: %w", err)
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		marks.ID = oid
	}
	return nil
}

// FindByStudent retrieves all marks for a student's roll number
func (r *MarksRepository) FindByStudent(ctx context.Context, rollNumber string) ([]models.Marks, error) {
	cursor, err := r.col.Find(ctx, bson.M{"student_id": rollNumber})
	if err != nil {
		return nil, fmt.Errorf("error listing marks: %w", err)
	}
	defer cursor.Close(ctx)

	marks := make([]models.Marks, 0)
	if err := cursor.All(ctx, &marks); err != nil {
		return nil, fmt.Errorf("error decoding marks: %w", err)
	}
	return marks, nil
}

// FindByID retrieves a single marks document by object id
func (r *MarksRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Marks, error) {
	var marks models.Marks
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&marks)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrMarksNotFound
		}
		return nil, fmt.Errorf("error retrieving marks: %w", err)
	}
	return &marks, nil
}

// FindAllWithStudent lists every marks document joined with the owning
// student's name. Marks whose student is gone keep a placeholder name.
func (r *MarksRepository) FindAllWithStudent(ctx context.Context) ([]models.MarksWithStudent, error) {
	cursor, err := r.col.Aggregate(ctx, allMarksPipeline())
	if err != nil {
		return nil, fmt.Errorf("error aggregating marks: %w", err)
	}
	defer cursor.Close(ctx)

	marks := make([]models.MarksWithStudent, 0)
	if err := cursor.All(ctx, &marks); err != nil {
		return nil, fmt.Errorf("error decoding marks: %w", err)
	}
	return marks, nil
}

// UpdateByID replaces the mutable fields of a marks document and returns
// the matched and modified counts.
func (r *MarksRepository) UpdateByID(ctx context.Context, id primitive.ObjectID, marks *models.Marks) (matched, modified int64, err error) {
	result, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{
		"student_id": marks.StudentID,
		"subject":    marks.Subject,
		"marks":      marks.Marks,
		"max_marks":  marks.MaxMarks,
		"exam_date":  marks.ExamDate,
	}})
	if err != nil {
		return 0, 0, fmt.Errorf("error updating marks: %w", err)
	}
	return result.MatchedCount, result.ModifiedCount, nil
}

// DeleteByID removes a marks document by object id
func (r *MarksRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) (int64, error) {
	result, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, fmt.Errorf("error deleting marks: %w", err)
	}
	return result.DeletedCount, nil
}

// DeleteByStudent removes every marks document referencing a roll number.
// Used by the student delete cascade.
func (r *MarksRepository) DeleteByStudent(ctx context.Context, rollNumber string) (int64, error) {
	result, err := r.col.DeleteMany(ctx, bson.M{"student_id": rollNumber})
	if err != nil {
		return 0, fmt.Errorf("error deleting marks for student: %w", err)
	}
	return result.DeletedCount, nil
}

// allMarksPipeline joins marks to students on roll number, keeping marks
// without a matching student.
func allMarksPipeline() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$lookup", Value: bson.M{
			"from":         "students",
			"localField":   "student_id",
			"foreignField": "roll_number",
			"as":           "student_info",
		}}},
		{{Key: "$unwind", Value: bson.M{
			"path":                       "$student_info",
			"preserveNullAndEmptyArrays": true,
		}}},
		{{Key: "$project", Value: bson.M{
			"_id":          1,
			"student_id":   1,
			"subject":      1,
			"marks":        1,
			"max_marks":    1,
			"exam_date":    1,
			"student_name": bson.M{"$ifNull": bson.A{"$student_info.name", "Unknown Student"}},
		}}},
	}
}
